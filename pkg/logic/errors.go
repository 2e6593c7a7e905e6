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
	"fmt"
)

// Span represents a contiguous region within a formula string being parsed.
type Span struct {
	// The first character of the span.
	start int
	// The following the last character of the span.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}
	//
	return Span{start, end}
}

// Start returns the starting index of this span in the original string.
func (p Span) Start() int {
	return p.start
}

// End returns the first index following this span in the original string.
func (p Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span.
func (p Span) Length() int {
	return p.end - p.start
}

// SyntaxError is a structured error which retains the index into the original
// formula string where an error occurred, along with an error message.
type SyntaxError struct {
	// Region of the formula string on which this error is reported.
	span Span
	// Error message being reported.
	msg string
}

// NewSyntaxError simply constructs a new syntax error.
func NewSyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{span, msg}
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.msg)
}

// UnboundVariableError signals that evaluation encountered a variable missing
// from its valuation.  Given that valuations are always constructed over the
// full variable universe of the formulas under evaluation, this indicates a
// bug rather than a user error, which is why Expr.Eval panics with it instead
// of returning it.
type UnboundVariableError struct {
	// Name of the unbound variable.
	Name string
}

// Error implements the error interface.
func (p *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %s", p.Name)
}
