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

// Package logic defines the grammar of classical propositional logic: the
// symbol and operator model, the expression tree, and the parser from the
// compact surface notation into that tree.
package logic

// Associativity determines how operators of the same precedence group in the
// absence of parentheses.
type Associativity int

const (
	// RightAssociative operators group to the right (e.g. negation).
	RightAssociative Associativity = iota
	// LeftAssociative operators group to the left (all binary operators).
	LeftAssociative
)

// Operator identifies one of the five connectives of classical propositional
// logic.  Operators form a closed enumeration: there is no mechanism for
// registering new connectives at runtime.
type Operator int

const (
	// Negation is the unary operator "-".
	Negation Operator = iota
	// Conjunction is the binary operator "&".
	Conjunction
	// Disjunction is the binary operator "|".
	Disjunction
	// Implication is the binary operator "->".
	Implication
	// BiImplication is the binary operator "<->".
	BiImplication
)

// operatorInfo records the fixed grammatical properties of an operator.
type operatorInfo struct {
	token         string
	arity         uint
	precedence    uint
	associativity Associativity
}

// Precedence is a total order over the operators, where a higher number binds
// tighter.  It decides both how ambiguity is resolved during parsing and when
// parentheses are required on output.
var operators = [...]operatorInfo{
	Negation:      {"-", 1, 6, RightAssociative},
	Conjunction:   {"&", 2, 5, LeftAssociative},
	Disjunction:   {"|", 2, 4, LeftAssociative},
	Implication:   {"->", 2, 3, LeftAssociative},
	BiImplication: {"<->", 2, 2, LeftAssociative},
}

// Token returns the canonical surface token for this operator.
func (op Operator) Token() string {
	return operators[op].token
}

// Arity returns the number of operands this operator takes.
func (op Operator) Arity() uint {
	return operators[op].arity
}

// Precedence returns the binding strength of this operator, where higher
// numbers bind tighter.
func (op Operator) Precedence() uint {
	return operators[op].precedence
}

// Associativity returns the grouping direction of this operator.
func (op Operator) Associativity() Associativity {
	return operators[op].associativity
}

func (op Operator) String() string {
	return operators[op].token
}

// IsVariableStart checks whether a given character can start a propositional
// variable token.
func IsVariableStart(c rune) bool {
	return c >= 'a' && c <= 'z'
}

// IsDigit checks whether a given character can continue a propositional
// variable token.
func IsDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// IsFormulaChar checks whether a given character belongs to the accepted
// character class of well-formed formulas.  Note that '<' and '>' only ever
// appear as part of the "<->" token, and whitespace is not accepted.
func IsFormulaChar(c rune) bool {
	switch c {
	case '&', '|', '>', '<', '(', ')', '-':
		return true
	}
	//
	return IsVariableStart(c) || IsDigit(c)
}

// IsVariableName checks whether a given string is a well-formed propositional
// variable name, being one lowercase letter followed by an optional
// non-negative integer index (e.g. "p", "q1", "r23").
func IsVariableName(name string) bool {
	runes := []rune(name)
	//
	if len(runes) == 0 || !IsVariableStart(runes[0]) {
		return false
	}
	//
	for _, c := range runes[1:] {
		if !IsDigit(c) {
			return false
		}
	}
	//
	return true
}
