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

// Package config holds the workspace settings shared by every subcommand.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config carries the tunable locations and policies of a fixture workspace.
type Config struct {
	// TestsDir is the directory holding the integration fixtures.
	TestsDir string `yaml:"tests_dir"`
	// FilePrefix is the file name prefix shared by emitted fixtures.
	FilePrefix string `yaml:"file_prefix"`
	// Families are the glob patterns selecting which files repair visits.
	Families []string `yaml:"families"`
	// Epsilon overrides the floating-point comparison tolerance written into
	// fixtures. Empty keeps the built-in default of 1e-6.
	Epsilon string `yaml:"epsilon"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		TestsDir:   "tests",
		FilePrefix: "integration_block_",
		Families: []string{
			"integration_block_nullable*.rs",
			"integration_block_lowcardinality*.rs",
		},
	}
}

// Load reads a YAML configuration file. Fields absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	//
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	//
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	//
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	//
	return cfg, nil
}

// Validate checks the configuration for values no command could act on.
func (c *Config) Validate() error {
	if c.TestsDir == "" {
		return fmt.Errorf("tests_dir must not be empty")
	}
	//
	if c.FilePrefix == "" {
		return fmt.Errorf("file_prefix must not be empty")
	}
	//
	if len(c.Families) == 0 {
		return fmt.Errorf("families must name at least one pattern")
	}
	//
	for _, pattern := range c.Families {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			return fmt.Errorf("family pattern %q: %w", pattern, err)
		}
	}
	//
	if c.Epsilon != "" {
		if _, err := strconv.ParseFloat(c.Epsilon, 64); err != nil {
			return fmt.Errorf("epsilon %q is not a number", c.Epsilon)
		}
	}
	//
	return nil
}
