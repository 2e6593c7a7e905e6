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
package logic

// Expr is a formula of classical propositional logic, represented as a tree
// whose leaves are propositional variables and whose internal nodes are
// operator applications.  Expressions are immutable once constructed: each
// node owns its children exclusively (no sharing, no cycles).
//
// Expr is a closed sum: the only implementations are Variable, Not, And, Or,
// Implies and Iff.
type Expr interface {
	// Subformulas returns this formula followed by the subformulas of each
	// child, in pre-order.  Duplicates are retained.
	Subformulas() []Expr
	// Eval computes the truth value of this formula under the given
	// valuation.  The valuation must bind every variable occurring in the
	// formula; encountering an unbound variable panics with an
	// UnboundVariableError, since it indicates a broken variable-universe
	// computation rather than a user error.
	Eval(valuation map[string]bool) bool
	// String returns a reparseable surface form of this formula, using the
	// minimum-parenthesization rule (see renderOperand).
	String() string
	// Seals the sum.
	isExpr()
}

// Variable is a propositional variable leaf.  Its identity is its textual
// name.
type Variable struct {
	Name string
}

// Not is the negation of a formula.
type Not struct {
	Arg Expr
}

// And is the conjunction of two formulas.
type And struct {
	Lhs Expr
	Rhs Expr
}

// Or is the disjunction of two formulas.
type Or struct {
	Lhs Expr
	Rhs Expr
}

// Implies is the (material) implication of one formula by another.
type Implies struct {
	Lhs Expr
	Rhs Expr
}

// Iff is the bi-implication of two formulas.
type Iff struct {
	Lhs Expr
	Rhs Expr
}

func (e Variable) isExpr() {}
func (e Not) isExpr()      {}
func (e And) isExpr()      {}
func (e Or) isExpr()       {}
func (e Implies) isExpr()  {}
func (e Iff) isExpr()      {}

// OperatorOf returns the operator applied at the root of a given expression,
// or false if the expression is a variable leaf.
func OperatorOf(e Expr) (Operator, bool) {
	switch e.(type) {
	case Not:
		return Negation, true
	case And:
		return Conjunction, true
	case Or:
		return Disjunction, true
	case Implies:
		return Implication, true
	case Iff:
		return BiImplication, true
	}
	//
	return 0, false
}

// ============================================================================
// Subformulas
// ============================================================================

// Subformulas implementation for the Expr interface.
func (e Variable) Subformulas() []Expr {
	return []Expr{e}
}

// Subformulas implementation for the Expr interface.
func (e Not) Subformulas() []Expr {
	return append([]Expr{e}, e.Arg.Subformulas()...)
}

// Subformulas implementation for the Expr interface.
func (e And) Subformulas() []Expr {
	return binarySubformulas(e, e.Lhs, e.Rhs)
}

// Subformulas implementation for the Expr interface.
func (e Or) Subformulas() []Expr {
	return binarySubformulas(e, e.Lhs, e.Rhs)
}

// Subformulas implementation for the Expr interface.
func (e Implies) Subformulas() []Expr {
	return binarySubformulas(e, e.Lhs, e.Rhs)
}

// Subformulas implementation for the Expr interface.
func (e Iff) Subformulas() []Expr {
	return binarySubformulas(e, e.Lhs, e.Rhs)
}

func binarySubformulas(self, lhs, rhs Expr) []Expr {
	exprs := append([]Expr{self}, lhs.Subformulas()...)
	return append(exprs, rhs.Subformulas()...)
}

// ============================================================================
// Evaluation
// ============================================================================

// Eval implementation for the Expr interface.
func (e Variable) Eval(valuation map[string]bool) bool {
	val, ok := valuation[e.Name]
	//
	if !ok {
		panic(&UnboundVariableError{e.Name})
	}
	//
	return val
}

// Eval implementation for the Expr interface.
func (e Not) Eval(valuation map[string]bool) bool {
	return !e.Arg.Eval(valuation)
}

// Eval implementation for the Expr interface.
func (e And) Eval(valuation map[string]bool) bool {
	return e.Lhs.Eval(valuation) && e.Rhs.Eval(valuation)
}

// Eval implementation for the Expr interface.
func (e Or) Eval(valuation map[string]bool) bool {
	return e.Lhs.Eval(valuation) || e.Rhs.Eval(valuation)
}

// Eval implementation for the Expr interface.
func (e Implies) Eval(valuation map[string]bool) bool {
	return !e.Lhs.Eval(valuation) || e.Rhs.Eval(valuation)
}

// Eval implementation for the Expr interface.
func (e Iff) Eval(valuation map[string]bool) bool {
	return e.Lhs.Eval(valuation) == e.Rhs.Eval(valuation)
}

// ============================================================================
// Rendering
// ============================================================================

func (e Variable) String() string {
	return e.Name
}

func (e Not) String() string {
	// A unary operand is only ever bare when it is a variable.  In
	// particular, stacked negations render as "-(-p)" rather than "--p".
	if v, ok := e.Arg.(Variable); ok {
		return Negation.Token() + v.Name
	}
	//
	return Negation.Token() + "(" + e.Arg.String() + ")"
}

func (e And) String() string {
	return renderBinary(Conjunction, e.Lhs, e.Rhs)
}

func (e Or) String() string {
	return renderBinary(Disjunction, e.Lhs, e.Rhs)
}

func (e Implies) String() string {
	return renderBinary(Implication, e.Lhs, e.Rhs)
}

func (e Iff) String() string {
	return renderBinary(BiImplication, e.Lhs, e.Rhs)
}

func renderBinary(op Operator, lhs, rhs Expr) string {
	return renderOperand(op, lhs) + op.Token() + renderOperand(op, rhs)
}

// renderOperand determines the surface form of one operand of a binary
// operator.  The operand is bare when it is a variable, or when it is itself
// an operator application binding at least as tightly as its parent;
// otherwise it is wrapped in parentheses.  Note this rule does not consult
// associativity, so same-precedence right operands of left-associative
// operators are rendered bare as well.
func renderOperand(parent Operator, child Expr) string {
	if _, ok := child.(Variable); ok {
		return child.String()
	}
	//
	if op, ok := OperatorOf(child); ok && op.Precedence() >= parent.Precedence() {
		return child.String()
	}
	//
	return "(" + child.String() + ")"
}
