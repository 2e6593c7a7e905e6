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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [flags] formula",
	Short: "classify a formula as tautology, contradiction or contingency.",
	Long: `Classify a formula by its truth profile across every valuation
	of its variables: a tautology is true everywhere, a contradiction
	false everywhere, and a contingency is everything else.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		config := configureRun(cmd)
		expr := parseFormula(args[0])
		log.Debugf("parsed formula as %s", expr)
		//
		status, table := semantics.EvaluateStatus(expr)
		printVerdict(statusLabel(status, config), table, config)
	},
}

func statusLabel(status semantics.Status, config *Config) string {
	switch status {
	case semantics.Tautology:
		return config.Labels.Tautology
	case semantics.Contradiction:
		return config.Labels.Contradiction
	default:
		return config.Labels.Contingency
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
