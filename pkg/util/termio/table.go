// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths  []uint
	rows    [][]string
	colours [][]*color.Color
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	colours := make([][]*color.Color, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
		colours[i] = make([]*color.Color, width)
	}

	return &TablePrinter{widths, rows, colours}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(len(val)))
	p.rows[row][col] = val
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// Width returns the width of this table.
func (p *TablePrinter) Width() uint {
	return uint(len(p.widths))
}

// SetColour sets the colour to use when printing the contents of a given
// cell.  Whether colour output is actually produced is governed globally by
// the color package (e.g. colour is disabled when stdout is not a terminal).
func (p *TablePrinter) SetColour(col uint, row uint, colour *color.Color) {
	p.colours[row][col] = colour
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	// Done
	p.rows[row] = vals
}

// SetMaxWidths puts an upper bound on the width of any column.
func (p *TablePrinter) SetMaxWidths(width uint) {
	for i := uint(0); i < uint(len(p.widths)); i++ {
		p.SetMaxWidth(i, width)
	}
}

// SetMaxWidth puts an upper bound on the width of a given column.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], width)
}

// Print the table to a given writer.
func (p *TablePrinter) Print(w io.Writer) {
	for i := 0; i < len(p.rows); i++ {
		row := p.rows[i]
		colours := p.colours[i]
		//
		for j, col := range row {
			jth := col
			jth_width := p.widths[j]
			jth_colour := colours[j]
			// Truncate overly wide cells
			if uint(len(col)) > jth_width {
				jth = fmt.Sprintf("%s..", col[0:jth_width-2])
			}
			// Print cell (in colour, if applicable)
			if jth_colour != nil {
				jth_colour.Fprintf(w, " %*s", jth_width, jth)
			} else {
				fmt.Fprintf(w, " %*s", jth_width, jth)
			}
		}
		//
		fmt.Fprintln(w)
	}
}
