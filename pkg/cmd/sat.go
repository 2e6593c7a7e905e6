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

var satCmd = &cobra.Command{
	Use:   "sat [flags] formula...",
	Short: "decide whether a set of formulas is consistent.",
	Long: `Decide whether a set of formulas is jointly satisfiable, i.e.
	whether some valuation over the union of their variables makes
	every formula in the set true.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		config := configureRun(cmd)
		exprs := make([]logic.Expr, len(args))
		//
		for i, arg := range args {
			exprs[i] = parseFormula(arg)
		}
		//
		consistent, table := semantics.EvaluateConsistency(exprs)
		printVerdict(yesNoLabel(consistent, config), table, config)
	},
}

func init() {
	rootCmd.AddCommand(satCmd)
}
