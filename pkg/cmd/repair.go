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

	"github.com/chtools/blocksmith/pkg/rewrite"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var repairCmd = &cobra.Command{
	Use:   "repair [flags]",
	Short: "repair fixtures whose readback borrows from a temporary.",
	Long: `Rewrite the defective readback shapes found in the configured fixture
families into the bound two-step form, leaving every other file untouched.
Files already in the bound form are left exactly as they are.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		cfg := getConfig(cmd)
		dir := GetString(cmd, "tests-dir")
		// Fall back on the configured suite directory
		if dir == "" {
			dir = cfg.TestsDir
		}
		// Tag this run so interleaved logs can be told apart
		log.Debugf("repair run %s over %s", uuid.New(), dir)
		// Repair every file matching a configured family
		fixed, err := rewrite.RepairTree(dir, cfg.Families)
		// check for errors / report what was rewritten.
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		//
		for _, name := range fixed {
			fmt.Printf("Fixed: %s\n", name)
		}
		//
		fmt.Printf("\nFixed %d files\n", len(fixed))
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(repairCmd)
	repairCmd.Flags().StringP("tests-dir", "o", "", "repair fixtures in this directory (overrides configuration)")
}
