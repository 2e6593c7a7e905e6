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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-prop/pkg/logic"
	"github.com/consensys/go-prop/pkg/semantics"
	"github.com/consensys/go-prop/pkg/truthtable"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] [file]",
	Short: "run line-oriented operations from a file or stdin.",
	Long: `Run one semantic operation per input line, writing one verdict
	line per operation.  The accepted line forms are:

	S, <formula>                 semantic status
	EQ, <formula>, <formula>     equivalence
	C, [<formula>, ...]          consistency
	CL, [<formula>, ...], <formula>  logical consequence

	A consequence premise set of exactly one empty element denotes the
	empty set.  Each verdict is written as "[<verdict>, [<table>]]".`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		config := configureRun(cmd)
		input := os.Stdin
		//
		if len(args) == 1 {
			file, err := os.Open(args[0])
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			defer file.Close()
			input = file
		}
		//
		var (
			scanner = bufio.NewScanner(input)
			lineno  = 0
			failed  = false
		)
		//
		for scanner.Scan() {
			lineno++
			//
			line := stripWhitespace(scanner.Text())
			if line == "" {
				continue
			}
			//
			output, err := dispatchLine(line, config)
			if err != nil {
				fmt.Fprintf(os.Stderr, "line %d: %v\n", lineno, err)
				failed = true
			} else {
				fmt.Println(output)
			}
		}
		//
		if err := scanner.Err(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
		//
		if failed {
			os.Exit(1)
		}
	},
}

// dispatchLine decides which operation a given (whitespace-free) line denotes
// and performs it, producing the rendered verdict line.
func dispatchLine(line string, config *Config) (string, error) {
	symbol, rest, found := strings.Cut(line, ",")
	if !found {
		return "", fmt.Errorf("malformed operation line %q", line)
	}
	//
	switch symbol {
	case "S":
		return performStatus(rest, config)
	case "EQ":
		return performEquivalence(rest, config)
	case "C":
		return performConsistency(rest, config)
	case "CL":
		return performConsequence(rest, config)
	}
	//
	return "", fmt.Errorf("unknown operation %q", symbol)
}

func performStatus(arg string, config *Config) (string, error) {
	expr, err := parseArgument(arg)
	if err != nil {
		return "", err
	}
	//
	status, table := semantics.EvaluateStatus(expr)
	//
	return verdictLine(statusLabel(status, config), table, config), nil
}

func performEquivalence(args string, config *Config) (string, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 2 {
		return "", fmt.Errorf("equivalence expects two formulas, found %d", len(parts))
	}
	//
	lhs, err := parseArgument(parts[0])
	if err != nil {
		return "", err
	}
	//
	rhs, err := parseArgument(parts[1])
	if err != nil {
		return "", err
	}
	//
	equivalent, table := semantics.EvaluateEquivalence(lhs, rhs)
	//
	return verdictLine(yesNoLabel(equivalent, config), table, config), nil
}

func performConsistency(args string, config *Config) (string, error) {
	elements, rest, err := parseFormulaSet(args)
	//
	if err != nil {
		return "", err
	} else if rest != "" {
		return "", fmt.Errorf("unexpected %q after formula set", rest)
	}
	//
	exprs := make([]logic.Expr, len(elements))
	//
	for i, element := range elements {
		if exprs[i], err = parseArgument(element); err != nil {
			return "", err
		}
	}
	//
	consistent, table := semantics.EvaluateConsistency(exprs)
	//
	return verdictLine(yesNoLabel(consistent, config), table, config), nil
}

func performConsequence(args string, config *Config) (string, error) {
	elements, rest, err := parseFormulaSet(args)
	//
	if err != nil {
		return "", err
	} else if !strings.HasPrefix(rest, ",") {
		return "", fmt.Errorf("expected conclusion after formula set")
	}
	//
	conclusion, err := parseArgument(rest[1:])
	if err != nil {
		return "", err
	}
	//
	premises, err := parsePremises(elements)
	if err != nil {
		return "", err
	}
	//
	follows, table := semantics.EvaluateConsequence(premises, conclusion)
	//
	return verdictLine(yesNoLabel(follows, config), table, config), nil
}

// parsePremises parses the premise set of a consequence operation.  A set of
// exactly one empty element denotes the empty premise set; an empty element
// amongst non-empty ones is rejected rather than guessed at.
func parsePremises(elements []string) ([]logic.Expr, error) {
	if len(elements) == 1 && elements[0] == "" {
		return nil, nil
	}
	//
	premises := make([]logic.Expr, len(elements))
	//
	for i, element := range elements {
		if element == "" {
			return nil, fmt.Errorf("empty formula in non-empty premise set")
		}
		//
		var err error
		if premises[i], err = parseArgument(element); err != nil {
			return nil, err
		}
	}
	//
	return premises, nil
}

// parseFormulaSet extracts a leading bracketed, comma-separated formula set,
// returning its elements along with whatever follows the closing bracket.
func parseFormulaSet(args string) ([]string, string, error) {
	if !strings.HasPrefix(args, "[") {
		return nil, "", fmt.Errorf("expected formula set, found %q", args)
	}
	//
	end := strings.Index(args, "]")
	if end < 0 {
		return nil, "", fmt.Errorf("unbalanced formula set")
	}
	//
	return strings.Split(args[1:end], ","), args[end+1:], nil
}

func parseArgument(text string) (logic.Expr, error) {
	expr, err := logic.Parse(text)
	//
	if err != nil {
		return nil, fmt.Errorf("%q: %w", text, err)
	}
	//
	return expr, nil
}

func verdictLine(verdict string, table *truthtable.Table, config *Config) string {
	return fmt.Sprintf("[%s, [%s]]", verdict, compactTable(table, config))
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
