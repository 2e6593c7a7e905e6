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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-prop/pkg/truthtable"
	"github.com/consensys/go-prop/pkg/util/termio"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var (
	trueColour  = color.New(color.FgGreen)
	falseColour = color.New(color.FgRed)
)

// printVerdict reports the verdict of an operation followed by the truth
// table it was decided over.
func printVerdict(verdict string, table *truthtable.Table, config *Config) {
	log.Debugf("table has %d variables and %d rows", len(table.Variables()), table.Height())
	//
	fmt.Println(verdict)
	printTable(table, config)
}

// printTable renders a truth table to stdout, one column per variable
// followed by one column per tracked formula (headed by its rendered form),
// one row per valuation.
func printTable(table *truthtable.Table, config *Config) {
	var (
		nVars   = uint(len(table.Variables()))
		nExprs  = uint(len(table.Formulas()))
		printer = termio.NewTablePrinter(nVars+nExprs, table.Height()+1)
	)
	// Header row
	for i, name := range table.Variables() {
		printer.Set(uint(i), 0, name)
	}
	//
	for i, expr := range table.Formulas() {
		printer.Set(nVars+uint(i), 0, expr.String())
	}
	// Valuation rows
	for row := uint(0); row < table.Height(); row++ {
		for col := uint(0); col < nVars; col++ {
			setTruthCell(printer, col, row+1, table.Row(row).Value(col), config)
		}
		//
		for col := uint(0); col < nExprs; col++ {
			setTruthCell(printer, nVars+col, row+1, table.Row(row).Result(col), config)
		}
	}
	// Clamp column widths to the available terminal width.  Very narrow
	// terminals are left alone, since truncated cells need room for "..".
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if cols := printer.Width(); cols > 0 && uint(width)/cols >= 3 {
			printer.SetMaxWidths(uint(width) / cols)
		}
	}
	//
	printer.Print(os.Stdout)
}

func setTruthCell(printer *termio.TablePrinter, col, row uint, value bool, config *Config) {
	if value {
		printer.Set(col, row, config.Table.True)
		printer.SetColour(col, row, trueColour)
	} else {
		printer.Set(col, row, config.Table.False)
		printer.SetColour(col, row, falseColour)
	}
}

// compactTable renders a truth table on a single line, as used by the batch
// driver: one element per row, being the variable values followed by the
// formula values, separated by a colon (e.g. "VF:V").
func compactTable(table *truthtable.Table, config *Config) string {
	var rows []string
	//
	for i := uint(0); i < table.Height(); i++ {
		var builder strings.Builder
		//
		for j := range table.Variables() {
			builder.WriteString(truthSymbol(table.Row(i).Value(uint(j)), config))
		}
		//
		builder.WriteString(":")
		//
		for j := range table.Formulas() {
			builder.WriteString(truthSymbol(table.Row(i).Result(uint(j)), config))
		}
		//
		rows = append(rows, builder.String())
	}
	//
	return strings.Join(rows, ", ")
}

func truthSymbol(value bool, config *Config) string {
	if value {
		return config.Table.True
	}
	//
	return config.Table.False
}
