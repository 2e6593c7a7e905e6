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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatch_Status(t *testing.T) {
	config := DefaultConfig()
	//
	output, err := dispatchLine("S,p|-p", config)
	assert.NoError(t, err)
	assert.Equal(t, "[TAUTOLOGIA, [V:V, F:V]]", output)
	//
	output, err = dispatchLine("S,p&-p", config)
	assert.NoError(t, err)
	assert.Equal(t, "[CONTRADICAO, [V:F, F:F]]", output)
	//
	output, err = dispatchLine("S,p->q", config)
	assert.NoError(t, err)
	assert.Equal(t, "[CONTINGENCIA, [VV:V, VF:F, FV:V, FF:V]]", output)
}

func TestDispatch_Equivalence(t *testing.T) {
	output, err := dispatchLine("EQ,p->q,-p|q", DefaultConfig())
	assert.NoError(t, err)
	assert.Equal(t, "[SIM, [VV:VV, VF:FF, FV:VV, FF:VV]]", output)
	//
	output, err = dispatchLine("EQ,p,q", DefaultConfig())
	assert.NoError(t, err)
	assert.Equal(t, "[NAO, [VV:VV, VF:VF, FV:FV, FF:FF]]", output)
}

func TestDispatch_Consistency(t *testing.T) {
	output, err := dispatchLine("C,[p,-p]", DefaultConfig())
	assert.NoError(t, err)
	assert.Equal(t, "[NAO, [V:VF, F:FV]]", output)
	//
	output, err = dispatchLine("C,[p,p->q]", DefaultConfig())
	assert.NoError(t, err)
	assert.Equal(t, "[SIM, [VV:VV, VF:VF, FV:FV, FF:FV]]", output)
}

func TestDispatch_Consequence(t *testing.T) {
	// modus ponens
	output, err := dispatchLine("CL,[p,p->q],q", DefaultConfig())
	assert.NoError(t, err)
	assert.Equal(t, "[SIM, [VV:VVV, VF:VFF, FV:FVV, FF:FVF]]", output)
	//
	output, err = dispatchLine("CL,[p|q],p", DefaultConfig())
	assert.NoError(t, err)
	assert.Equal(t, "[NAO, [VV:VV, VF:VV, FV:VF, FF:FF]]", output)
}

// A premise set of exactly one empty element denotes the empty set, making
// the operation a tautology check over the conclusion alone.
func TestDispatch_ConsequenceOfEmptySet(t *testing.T) {
	output, err := dispatchLine("CL,[],p->p", DefaultConfig())
	assert.NoError(t, err)
	assert.Equal(t, "[SIM, [V:V, F:V]]", output)
	//
	output, err = dispatchLine("CL,[],p", DefaultConfig())
	assert.NoError(t, err)
	assert.Equal(t, "[NAO, [V:V, F:F]]", output)
}

func TestDispatch_Errors(t *testing.T) {
	config := DefaultConfig()
	//
	lines := []string{
		// no operation argument
		"S",
		// unknown operation
		"X,p",
		// malformed formula
		"S,p&",
		// equivalence arity
		"EQ,p",
		"EQ,p,q,r",
		// missing formula set
		"C,p",
		// unbalanced formula set
		"C,[p,q",
		// trailing garbage after formula set
		"C,[p]q",
		// missing conclusion
		"CL,[p]",
		// empty formula amongst non-empty premises
		"CL,[p,],q",
		"CL,[,p],q",
	}
	//
	for _, line := range lines {
		_, err := dispatchLine(line, config)
		assert.Error(t, err, line)
	}
}

func TestStripWhitespace(t *testing.T) {
	assert.Equal(t, "CL,[p,p->q],q", stripWhitespace(" CL , [p, p->q],\tq "))
	assert.Equal(t, "", stripWhitespace("   "))
}
