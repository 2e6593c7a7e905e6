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

// Package truthtable implements exhaustive truth-table semantics for
// propositional formulas: enumeration of every valuation over the variable
// universe of one or more formulas, evaluation of each formula under each
// valuation, and model-set queries over the resulting table.
package truthtable

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-prop/pkg/logic"
)

// VariablesOf returns the union of variable names across all given formulas,
// deduplicated and ordered by first occurrence in a pre-order scan of the
// inputs.  The order is deterministic: the same inputs always yield the same
// sequence, which fixes the valuation enumeration order of tables built over
// them.
func VariablesOf(exprs ...logic.Expr) []string {
	var (
		names []string
		seen  = make(map[string]bool)
	)
	//
	for _, expr := range exprs {
		for _, sub := range expr.Subformulas() {
			if v, ok := sub.(logic.Variable); ok && !seen[v.Name] {
				seen[v.Name] = true
				names = append(names, v.Name)
			}
		}
	}
	//
	return names
}

// Row pairs one valuation with the truth value of every tracked formula under
// that valuation.
type Row struct {
	// Truth values of the variables, aligned with Table.Variables().
	values []bool
	// Truth values of the tracked formulas, in input order.
	results []bool
}

// Value returns the truth value of the ith variable under this row's
// valuation.
func (r Row) Value(i uint) bool {
	return r.values[i]
}

// Result returns the truth value of the ith tracked formula under this row's
// valuation.
func (r Row) Result(i uint) bool {
	return r.results[i]
}

// Table is an immutable truth table over one or more formulas sharing a
// single variable universe.  With n distinct variables the table holds
// exactly 2^n rows, enumerated in the canonical order: the first variable is
// the most significant bit (true for the entire first half of the rows) and
// the last variable is the least significant (alternating every row).
type Table struct {
	vars  []string
	exprs []logic.Expr
	rows  []Row
}

// New builds the truth table of the given formulas.  Note that zero distinct
// variables still produce exactly one row, the empty valuation.
func New(exprs ...logic.Expr) *Table {
	var (
		vars   = VariablesOf(exprs...)
		n      = uint(len(vars))
		height = uint(1) << n
		rows   = make([]Row, height)
	)
	//
	for i := uint(0); i < height; i++ {
		var (
			values    = make([]bool, n)
			results   = make([]bool, len(exprs))
			valuation = make(map[string]bool, n)
		)
		//
		for j := uint(0); j < n; j++ {
			// Zero bit means true, so the first rows carry true.
			values[j] = (i>>(n-1-j))&1 == 0
			valuation[vars[j]] = values[j]
		}
		//
		for j, expr := range exprs {
			results[j] = expr.Eval(valuation)
		}
		//
		rows[i] = Row{values, results}
	}
	//
	return &Table{vars, exprs, rows}
}

// Variables returns the variable universe of this table, in enumeration
// order.
func (t *Table) Variables() []string {
	return t.vars
}

// Formulas returns the formulas tracked by this table, in input order.
func (t *Table) Formulas() []logic.Expr {
	return t.exprs
}

// Height returns the number of rows in this table.
func (t *Table) Height() uint {
	return uint(len(t.rows))
}

// Row returns the ith row of this table.
func (t *Table) Row(i uint) Row {
	return t.rows[i]
}

// Valuation reconstructs the valuation of the ith row as a binding from
// variable name to truth value.
func (t *Table) Valuation(i uint) map[string]bool {
	valuation := make(map[string]bool, len(t.vars))
	//
	for j, name := range t.vars {
		valuation[name] = t.rows[i].values[j]
	}
	//
	return valuation
}

// ModelsOf returns the set of row indices at which the ith tracked formula is
// true (i.e. its models within this table).
func (t *Table) ModelsOf(i uint) *bitset.BitSet {
	models := bitset.New(t.Height())
	//
	for r := uint(0); r < t.Height(); r++ {
		if t.rows[r].results[i] {
			models.Set(r)
		}
	}
	//
	return models
}

// CommonModels returns the set of row indices at which all of the given
// tracked formulas are simultaneously true.  Given no formulas, every row
// qualifies vacuously, matching the semantics of logical consequence from the
// empty premise set.
func (t *Table) CommonModels(indices ...uint) *bitset.BitSet {
	models := bitset.New(t.Height())
	// Start from the full row-index set.
	for r := uint(0); r < t.Height(); r++ {
		models.Set(r)
	}
	//
	for _, i := range indices {
		models.InPlaceIntersection(t.ModelsOf(i))
	}
	//
	return models
}
