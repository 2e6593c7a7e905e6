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

	"github.com/consensys/go-prop/pkg/semantics"
	"github.com/spf13/cobra"
)

var equivCmd = &cobra.Command{
	Use:   "equiv [flags] formula formula",
	Short: "decide whether two formulas are semantically equivalent.",
	Long: `Decide whether two formulas have identical model sets over a
	shared truth table built on the union of their variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		config := configureRun(cmd)
		lhs := parseFormula(args[0])
		rhs := parseFormula(args[1])
		//
		equivalent, table := semantics.EvaluateEquivalence(lhs, rhs)
		printVerdict(yesNoLabel(equivalent, config), table, config)
	},
}

func yesNoLabel(verdict bool, config *Config) string {
	if verdict {
		return config.Labels.Yes
	}
	//
	return config.Labels.No
}

func init() {
	rootCmd.AddCommand(equivCmd)
}
