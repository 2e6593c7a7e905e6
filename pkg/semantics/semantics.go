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

// Package semantics answers the classical semantic questions about
// propositional formulas and formula sets (status, equivalence, consistency
// and logical consequence) by exhaustive truth-table enumeration.  Each
// operation returns its verdict along with the fully materialized table it
// was decided over, so callers can render the table; none of them
// short-circuit in a way that would discard rows.
package semantics

import (
	"github.com/consensys/go-prop/pkg/logic"
	"github.com/consensys/go-prop/pkg/truthtable"
)

// Status classifies a formula by its truth profile across all valuations.
type Status int

const (
	// Contingency means true under some valuations and false under others.
	Contingency Status = iota
	// Tautology means true under every valuation.
	Tautology
	// Contradiction means false under every valuation.
	Contradiction
)

func (s Status) String() string {
	switch s {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		return "contingency"
	}
}

// EvaluateStatus determines whether a given formula is a tautology, a
// contradiction or a contingency.
func EvaluateStatus(expr logic.Expr) (Status, *truthtable.Table) {
	table := truthtable.New(expr)
	//
	return statusOf(table), table
}

func statusOf(table *truthtable.Table) Status {
	models := table.ModelsOf(0)
	//
	switch models.Count() {
	case table.Height():
		return Tautology
	case 0:
		return Contradiction
	default:
		return Contingency
	}
}

// EvaluateEquivalence determines whether two formulas are semantically
// equivalent, i.e. have identical model sets over a table built on the union
// of their variables.
func EvaluateEquivalence(lhs, rhs logic.Expr) (bool, *truthtable.Table) {
	table := truthtable.New(lhs, rhs)
	// Both inclusions at once.
	return table.ModelsOf(0).Equal(table.ModelsOf(1)), table
}

// EvaluateConsistency determines whether a set of formulas is jointly
// satisfiable, i.e. some valuation over the union of their variables makes
// every formula true.
func EvaluateConsistency(exprs []logic.Expr) (bool, *truthtable.Table) {
	table := truthtable.New(exprs...)
	//
	return table.CommonModels(formulaIndices(len(exprs))...).Any(), table
}

// EvaluateConsequence determines whether a formula is a logical consequence
// of a set of premises, i.e. every common model of the premises is also a
// model of the formula.  A formula is a consequence of the empty premise set
// exactly when it is a tautology, decided over its own single-formula table.
func EvaluateConsequence(premises []logic.Expr, conclusion logic.Expr) (bool, *truthtable.Table) {
	if len(premises) == 0 {
		status, table := EvaluateStatus(conclusion)
		return status == Tautology, table
	}
	//
	table := truthtable.New(append(append([]logic.Expr{}, premises...), conclusion)...)
	//
	var (
		premiseModels    = table.CommonModels(formulaIndices(len(premises))...)
		conclusionModels = table.ModelsOf(uint(len(premises)))
	)
	// Premise rows are never dropped; vacuous satisfaction is covered since
	// an empty common-model set is a subset of anything.
	return conclusionModels.IsSuperSet(premiseModels), table
}

func formulaIndices(n int) []uint {
	indices := make([]uint, n)
	//
	for i := range indices {
		indices[i] = uint(i)
	}
	//
	return indices
}
