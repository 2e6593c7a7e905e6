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

	"github.com/consensys/go-prop/pkg/logic"
	"github.com/consensys/go-prop/pkg/semantics"
	"github.com/spf13/cobra"
)

var entailsCmd = &cobra.Command{
	Use:   "entails [flags] premise... conclusion",
	Short: "decide whether a formula follows from a set of premises.",
	Long: `Decide whether the final formula is a logical consequence of the
	preceding ones, i.e. true under every valuation which satisfies
	all premises.  Given a single formula the premise set is empty,
	and the formula follows exactly when it is a tautology.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		config := configureRun(cmd)
		premises := make([]logic.Expr, len(args)-1)
		//
		for i, arg := range args[:len(args)-1] {
			premises[i] = parseFormula(arg)
		}
		//
		conclusion := parseFormula(args[len(args)-1])
		//
		follows, table := semantics.EvaluateConsequence(premises, conclusion)
		printVerdict(yesNoLabel(follows, config), table, config)
	},
}

func init() {
	rootCmd.AddCommand(entailsCmd)
}
