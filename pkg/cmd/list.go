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
	"strings"

	"github.com/chtools/blocksmith/pkg/fixture"
	"github.com/chtools/blocksmith/pkg/util/termio"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var listCmd = &cobra.Command{
	Use:   "list [flags]",
	Short: "list the column types the suite covers.",
	Long: `List every registered column type along with its client wrapper, its wire
type, the scenarios its fixture exercises and the file the fixture lands in.`,
	Run: func(cmd *cobra.Command, args []string) {
		reg := fixture.Registry()
		maxWidth := GetUint(cmd, "max-width")
		// Construct the summary table
		tp := termio.NewTablePrinter(6, uint(len(reg))+1)
		tp.SetRow(0, "TYPE", "KIND", "COLUMN", "SQL TYPE", "SCENARIOS", "FILE")
		//
		for i, d := range reg {
			tp.SetRow(uint(i)+1, d.Semantic, d.Kind.String(), d.Wrapper, d.Wire,
				strings.Join(d.Scenarios(), " "), d.FileName())
		}
		// Embolden the header row
		for col := uint(0); col < 6; col++ {
			tp.SetEscape(col, 0, termio.BoldAnsiEscape().Build())
		}
		//
		tp.SetMaxWidths(maxWidth)
		tp.AnsiEscapes(term.IsTerminal(0))
		tp.Print()
		//
		fmt.Printf("\n%d column types\n", len(reg))
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Uint("max-width", 36, "clamp table columns to this width")
}
