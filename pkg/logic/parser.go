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

// Parse a given string into a propositional formula, or return a SyntaxError
// if the string is malformed.  The accepted surface grammar is (from lowest to
// highest precedence):
//
// - for a bi-implication, the "<->" operator,
// - for an implication, the "->" operator,
// - for a disjunction, the "|" operator,
// - for a conjunction, the "&" operator,
// - for a negation, the "-" unary operator.
//
// Binary operators of equal precedence group to the left, whilst stacked
// negations group to the right.  Parentheses can be used to group
// subformulas.  Whitespace is not part of the accepted character class and,
// hence, is rejected rather than skipped; callers wanting to be lenient must
// strip it beforehand.
func Parse(text string) (Expr, error) {
	p := NewParser(text)
	// Parse the input
	expr, err := p.Parse()
	// Sanity check everything was parsed
	if err != nil {
		return nil, err
	} else if p.index != len(p.text) {
		return nil, p.error("unexpected remainder")
	}
	//
	return expr, nil
}

// Parser represents a parser in the process of parsing a given string into a
// propositional formula.
type Parser struct {
	// Text being parsed
	text []rune
	// Determine current position within text
	index int
}

// NewParser constructs a new instance of Parser
func NewParser(text string) *Parser {
	return &Parser{
		text:  []rune(text),
		index: 0,
	}
}

// Parse the entire text into a formula, or produce an error.
func (p *Parser) Parse() (Expr, error) {
	// Reject invalid characters upfront, so the tier functions below only
	// ever see the accepted character class.
	for i, c := range p.text {
		if !IsFormulaChar(c) {
			return nil, NewSyntaxError(NewSpan(i, i+1), "invalid character")
		}
	}
	// Kick off at the lowest-precedence tier.
	return p.parseBiImplication()
}

// Each binary tier parses a sequence of operands at the next-higher tier,
// reducing left-to-right as the operators are left associative.
func (p *Parser) parseBiImplication() (Expr, error) {
	lhs, err := p.parseImplication()
	//
	for err == nil && p.match("<->") {
		var rhs Expr
		//
		if rhs, err = p.parseImplication(); err == nil {
			lhs = Iff{lhs, rhs}
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseImplication() (Expr, error) {
	lhs, err := p.parseDisjunction()
	//
	for err == nil && p.match("->") {
		var rhs Expr
		//
		if rhs, err = p.parseDisjunction(); err == nil {
			lhs = Implies{lhs, rhs}
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseDisjunction() (Expr, error) {
	lhs, err := p.parseConjunction()
	//
	for err == nil && p.match("|") {
		var rhs Expr
		//
		if rhs, err = p.parseConjunction(); err == nil {
			lhs = Or{lhs, rhs}
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseConjunction() (Expr, error) {
	lhs, err := p.parseNegation()
	//
	for err == nil && p.match("&") {
		var rhs Expr
		//
		if rhs, err = p.parseNegation(); err == nil {
			lhs = And{lhs, rhs}
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseNegation() (Expr, error) {
	// Negation binds to a single following atom, parenthesized group or
	// further negation, hence "--p" parses as Not(Not(p)).
	if p.matchNegation() {
		arg, err := p.parseNegation()
		//
		if err != nil {
			return nil, err
		}
		//
		return Not{arg}, nil
	}
	//
	return p.parseAtom()
}

func (p *Parser) parseAtom() (Expr, error) {
	if p.index == len(p.text) {
		return nil, p.error("expected formula, found end of input")
	}
	//
	if p.match("(") {
		// Parenthesized subexpressions restart at the lowest tier,
		// regardless of surrounding precedence context.
		expr, err := p.parseBiImplication()
		//
		if err != nil {
			return nil, err
		} else if !p.match(")") {
			return nil, p.error("expected closing parenthesis")
		}
		//
		return expr, nil
	}
	//
	return p.parseVariable()
}

func (p *Parser) parseVariable() (Expr, error) {
	start := p.index
	//
	if !IsVariableStart(p.text[p.index]) {
		return nil, p.error("expected variable or parenthesized formula")
	}
	// Consume leading letter, then the optional integer index.
	p.index++
	//
	for p.index < len(p.text) && IsDigit(p.text[p.index]) {
		p.index++
	}
	// A trailing letter means a malformed variable token (e.g. "pq" or
	// "p1q"), which is rejected rather than truncated at the digits.
	if p.index < len(p.text) && IsVariableStart(p.text[p.index]) {
		p.index++
		return nil, NewSyntaxError(NewSpan(start, p.index), "invalid variable name")
	}
	//
	return Variable{string(p.text[start:p.index])}, nil
}

// match consumes a given token at the current position, or leaves the
// position untouched when the token is not next.
func (p *Parser) match(token string) bool {
	runes := []rune(token)
	//
	if p.index+len(runes) > len(p.text) {
		return false
	}
	//
	for i, c := range runes {
		if p.text[p.index+i] != c {
			return false
		}
	}
	//
	p.index += len(runes)
	//
	return true
}

// matchNegation consumes a "-" at the current position, taking care not to
// consume the leading character of an "->" token.
func (p *Parser) matchNegation() bool {
	if p.index < len(p.text) && p.text[p.index] == '-' {
		if p.index+1 == len(p.text) || p.text[p.index+1] != '>' {
			p.index++
			return true
		}
	}
	//
	return false
}

// Construct a parser error at the current position in the input stream.
func (p *Parser) error(msg string) *SyntaxError {
	span := NewSpan(p.index, p.index+1)
	return NewSyntaxError(span, msg)
}
