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

import (
	"reflect"
	"testing"
)

var (
	p = Variable{"p"}
	q = Variable{"q"}
	r = Variable{"r"}
)

// ============================================================================
// Positive Tests
// ============================================================================

func TestParse_1(t *testing.T) {
	CheckOk(t, p, "p")
}

func TestParse_2(t *testing.T) {
	CheckOk(t, Variable{"q1"}, "q1")
}

func TestParse_3(t *testing.T) {
	CheckOk(t, Variable{"r23"}, "r23")
}

func TestParse_4(t *testing.T) {
	CheckOk(t, Not{p}, "-p")
}

func TestParse_5(t *testing.T) {
	CheckOk(t, Not{Not{p}}, "--p")
}

func TestParse_6(t *testing.T) {
	CheckOk(t, And{p, q}, "p&q")
}

func TestParse_7(t *testing.T) {
	CheckOk(t, Or{p, q}, "p|q")
}

func TestParse_8(t *testing.T) {
	CheckOk(t, Implies{p, q}, "p->q")
}

func TestParse_9(t *testing.T) {
	CheckOk(t, Iff{p, q}, "p<->q")
}

// conjunction binds tighter than disjunction
func TestParse_10(t *testing.T) {
	CheckOk(t, Or{And{p, q}, r}, "p&q|r")
}

func TestParse_11(t *testing.T) {
	CheckOk(t, Or{p, And{q, r}}, "p|q&r")
}

// binary operators of equal precedence group to the left
func TestParse_12(t *testing.T) {
	CheckOk(t, Implies{Implies{p, q}, r}, "p->q->r")
}

func TestParse_13(t *testing.T) {
	CheckOk(t, Iff{Iff{p, q}, r}, "p<->q<->r")
}

func TestParse_14(t *testing.T) {
	CheckOk(t, And{And{p, q}, r}, "p&q&r")
}

func TestParse_15(t *testing.T) {
	CheckOk(t, Implies{p, Implies{q, r}}, "p->(q->r)")
}

func TestParse_16(t *testing.T) {
	CheckOk(t, And{Or{p, q}, r}, "(p|q)&r")
}

func TestParse_17(t *testing.T) {
	CheckOk(t, Not{Or{p, q}}, "-(p|q)")
}

func TestParse_18(t *testing.T) {
	CheckOk(t, Or{Not{p}, q}, "-p|q")
}

func TestParse_19(t *testing.T) {
	CheckOk(t, And{p, Not{p}}, "p&-p")
}

func TestParse_20(t *testing.T) {
	CheckOk(t, p, "((p))")
}

func TestParse_21(t *testing.T) {
	CheckOk(t, Implies{p, Not{q}}, "p->-q")
}

func TestParse_22(t *testing.T) {
	CheckOk(t, Iff{Implies{p, q}, Implies{q, p}}, "p->q<->(q->p)")
}

// ============================================================================
// Negative Tests
// ============================================================================

// empty input
func TestParse_Err1(t *testing.T) {
	CheckErr(t, "")
}

// whitespace is not accepted
func TestParse_Err2(t *testing.T) {
	CheckErr(t, "p q")
}

// uppercase variables are not accepted
func TestParse_Err3(t *testing.T) {
	CheckErr(t, "P")
}

// missing right operand
func TestParse_Err4(t *testing.T) {
	CheckErr(t, "p&")
}

// missing left operand
func TestParse_Err5(t *testing.T) {
	CheckErr(t, "&p")
}

// unbalanced parentheses
func TestParse_Err6(t *testing.T) {
	CheckErr(t, "(p")
}

// unbalanced parentheses
func TestParse_Err7(t *testing.T) {
	CheckErr(t, "p)")
}

// invalid variable name, not truncated to "p"
func TestParse_Err8(t *testing.T) {
	CheckErr(t, "pq")
}

// invalid variable name, not truncated to "p1"
func TestParse_Err9(t *testing.T) {
	CheckErr(t, "p1q")
}

// variables cannot start with a digit
func TestParse_Err10(t *testing.T) {
	CheckErr(t, "1p")
}

// bare '<' only valid as part of "<->"
func TestParse_Err11(t *testing.T) {
	CheckErr(t, "p<q")
}

// bare '>' only valid as part of "<->"
func TestParse_Err12(t *testing.T) {
	CheckErr(t, "p>q")
}

// missing left operand
func TestParse_Err13(t *testing.T) {
	CheckErr(t, "->p")
}

// missing right operand
func TestParse_Err14(t *testing.T) {
	CheckErr(t, "p<->")
}

// missing operand between operators
func TestParse_Err15(t *testing.T) {
	CheckErr(t, "p&|q")
}

// empty group
func TestParse_Err16(t *testing.T) {
	CheckErr(t, "()")
}

// half a bi-implication
func TestParse_Err17(t *testing.T) {
	CheckErr(t, "p<-q")
}

// ============================================================================
// Round Trips
// ============================================================================

// Formulas whose parse trees survive parse -> render -> parse unchanged.
func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"p", "q1", "-p", "--p", "p&q", "p|q&r", "p&q|r", "p->q->r",
		"p<->q<->r", "(p|q)&r", "-(p|q)", "-p|q", "p&-p", "p->-q",
		"(p->q)&(q->p)", "p1&p2|p3",
	}
	//
	for _, input := range inputs {
		expr1, err1 := Parse(input)
		if err1 != nil {
			t.Errorf("%q failed to parse: %v", input, err1)
			continue
		}
		//
		expr2, err2 := Parse(expr1.String())
		if err2 != nil {
			t.Errorf("%q failed to reparse: %v", expr1, err2)
		} else if !reflect.DeepEqual(expr1, expr2) {
			t.Errorf("%q reparsed as %q", expr1, expr2)
		}
	}
}

// ============================================================================
// Helpers
// ============================================================================

func CheckOk(t *testing.T, expr1 Expr, input string) {
	expr2, err := Parse(input)
	//
	if err != nil {
		t.Error(err)
	} else if !reflect.DeepEqual(expr1, expr2) {
		t.Errorf("%s != %s", expr1, expr2)
	}
}

func CheckErr(t *testing.T, input string) {
	_, err := Parse(input)
	//
	if err == nil {
		t.Errorf("input should not have parsed!")
	}
}
