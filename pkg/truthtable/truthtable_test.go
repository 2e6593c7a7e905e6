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
package truthtable

import (
	"testing"

	"github.com/consensys/go-prop/pkg/logic"
	"github.com/stretchr/testify/assert"
)

func parse(t *testing.T, text string) logic.Expr {
	expr, err := logic.Parse(text)
	assert.NoError(t, err)
	//
	return expr
}

func TestVariablesOf(t *testing.T) {
	tests := []struct {
		name     string
		formulas []string
		expected []string
	}{
		{
			name:     "single variable",
			formulas: []string{"p"},
			expected: []string{"p"},
		},
		{
			name:     "first occurrence order, not sorted",
			formulas: []string{"q&p|q"},
			expected: []string{"q", "p"},
		},
		{
			name:     "deduplicated across formulas",
			formulas: []string{"p->q", "q->r", "p"},
			expected: []string{"p", "q", "r"},
		},
		{
			name:     "indexed variables are distinct",
			formulas: []string{"p1&p2&p"},
			expected: []string{"p1", "p2", "p"},
		},
	}
	//
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			exprs := make([]logic.Expr, len(test.formulas))
			for i, f := range test.formulas {
				exprs[i] = parse(t, f)
			}
			//
			assert.Equal(t, test.expected, VariablesOf(exprs...))
		})
	}
}

func TestRowCount(t *testing.T) {
	assert.Equal(t, uint(2), New(parse(t, "p")).Height())
	assert.Equal(t, uint(4), New(parse(t, "p&q")).Height())
	assert.Equal(t, uint(8), New(parse(t, "p&q|r")).Height())
	// Variables shared between formulas are counted once.
	assert.Equal(t, uint(4), New(parse(t, "p->q"), parse(t, "q->p")).Height())
}

// The first variable is the most significant bit (true for the first half of
// the rows), whilst the last alternates every row.
func TestEnumerationOrder(t *testing.T) {
	var (
		table    = New(parse(t, "p&q"))
		expected = [][]bool{
			{true, true},
			{true, false},
			{false, true},
			{false, false},
		}
	)
	//
	for i, row := range expected {
		assert.Equal(t, row[0], table.Row(uint(i)).Value(0))
		assert.Equal(t, row[1], table.Row(uint(i)).Value(1))
	}
}

// Zero tracked formulas still produce exactly one row, the empty valuation,
// of which every formula is vacuously a common model.
func TestEmptyTable(t *testing.T) {
	table := New()
	//
	assert.Empty(t, table.Variables())
	assert.Equal(t, uint(1), table.Height())
	assert.Equal(t, uint(1), table.CommonModels().Count())
}

func TestDeterminism(t *testing.T) {
	var (
		f1, f2 = parse(t, "p->q|r"), parse(t, "r&p")
		t1     = New(f1, f2)
		t2     = New(f1, f2)
	)
	//
	assert.Equal(t, t1.Variables(), t2.Variables())
	assert.Equal(t, t1.Height(), t2.Height())
	//
	for i := uint(0); i < t1.Height(); i++ {
		assert.Equal(t, t1.Row(i), t2.Row(i))
	}
}

func TestModelsOf(t *testing.T) {
	table := New(parse(t, "p->q"))
	// Rows: (T,T) (T,F) (F,T) (F,F); implication fails only at (T,F).
	models := table.ModelsOf(0)
	assert.Equal(t, uint(3), models.Count())
	assert.True(t, models.Test(0))
	assert.False(t, models.Test(1))
	assert.True(t, models.Test(2))
	assert.True(t, models.Test(3))
}

func TestCommonModels(t *testing.T) {
	table := New(parse(t, "p"), parse(t, "q"))
	// Only row 0 makes both true.
	common := table.CommonModels(0, 1)
	assert.Equal(t, uint(1), common.Count())
	assert.True(t, common.Test(0))
	// Intersection of the individual model sets.
	expected := table.ModelsOf(0).Intersection(table.ModelsOf(1))
	assert.True(t, common.Equal(expected))
}

func TestValuation(t *testing.T) {
	table := New(parse(t, "p&q"))
	//
	assert.Equal(t, map[string]bool{"p": true, "q": false}, table.Valuation(1))
	assert.Equal(t, map[string]bool{"p": false, "q": false}, table.Valuation(3))
}

func TestNegationInvolution(t *testing.T) {
	var (
		expr   = parse(t, "p->q&r")
		negneg = logic.Not{Arg: logic.Not{Arg: expr}}
		table  = New(expr)
		height = table.Height()
	)
	//
	for i := uint(0); i < height; i++ {
		valuation := table.Valuation(i)
		assert.Equal(t, expr.Eval(valuation), negneg.Eval(valuation))
	}
}
