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

	"github.com/chtools/blocksmith/pkg/fixture"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "generate the block insertion fixture suite.",
	Long: `Generate one integration fixture per registered column type, covering the
basic, boundary and randomised scenarios appropriate for that type.  Existing
fixtures are overwritten, so hand edits belong in the type registry instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		cfg := getConfig(cmd)
		dryRun := GetFlag(cmd, "dry-run")
		dir := GetString(cmd, "tests-dir")
		// Fall back on the configured suite directory
		if dir == "" {
			dir = cfg.TestsDir
		}
		// Tag this run so interleaved logs can be told apart
		log.Debugf("generation run %s targeting %s", uuid.New(), dir)
		// Construct the scenario renderer
		renderer, err := fixture.NewRenderer(cfg.Epsilon)
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		// Emit every registered fixture
		paths, err := fixture.EmitAll(renderer, fixture.Registry(), fixture.Options{
			Dir:      dir,
			Prefix:   cfg.FilePrefix,
			DryRun:   dryRun,
			Progress: !dryRun && term.IsTerminal(0),
		})
		// check for errors / report what was written.
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		//
		for _, path := range paths {
			fmt.Printf("Created %s\n", path)
		}
		//
		fmt.Printf("\nGenerated %d fixture files\n", len(paths))
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("tests-dir", "o", "", "write fixtures into this directory (overrides configuration)")
	generateCmd.Flags().Bool("dry-run", false, "render every fixture without writing anything")
}
