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

	"github.com/goccy/go-yaml"
)

// Config determines how verdicts and truth tables are written out.  The
// defaults reproduce the output vocabulary of the original course tool
// (Portuguese labels, V/F truth values).
type Config struct {
	Labels LabelsConfig `yaml:"labels"`
	Table  TableConfig  `yaml:"table"`
}

// LabelsConfig holds the verdict labels.
type LabelsConfig struct {
	Tautology     string `yaml:"tautology"`
	Contradiction string `yaml:"contradiction"`
	Contingency   string `yaml:"contingency"`
	Yes           string `yaml:"yes"`
	No            string `yaml:"no"`
}

// TableConfig holds the truth-value symbols and colour setting used when
// rendering tables.
type TableConfig struct {
	True   string `yaml:"true"`
	False  string `yaml:"false"`
	Colour bool   `yaml:"colour"`
}

// DefaultConfig returns the configuration used when no configuration file is
// given.
func DefaultConfig() *Config {
	return &Config{
		Labels: LabelsConfig{
			Tautology:     "TAUTOLOGIA",
			Contradiction: "CONTRADICAO",
			Contingency:   "CONTINGENCIA",
			Yes:           "SIM",
			No:            "NAO",
		},
		Table: TableConfig{
			True:   "V",
			False:  "F",
			Colour: true,
		},
	}
}

// LoadConfig reads a configuration file, overlaying it on the defaults.  An
// empty filename yields the defaults untouched.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()
	//
	if filename == "" {
		return config, nil
	}
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	if err := yaml.Unmarshal(bytes, config); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return config, nil
}
