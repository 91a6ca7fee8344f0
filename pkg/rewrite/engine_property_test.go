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
package rewrite

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestRepairProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	//
	properties := gopter.NewProperties(parameters)

	properties.Property("every defective spelling is rebound at its own indent", prop.ForAll(
		func(width, index int, typeName string, chained bool) bool {
			indent := strings.Repeat(" ", width)
			head := "let result_col = blocks[0]"
			//
			if chained {
				head = "let result_col = result.blocks()[0]"
			}
			//
			source := "fn scenario() {\n" +
				defectiveReadback(indent, head, strconv.Itoa(index), typeName) +
				"\n}\n"
			//
			fixed, count := Apply(source)
			if count != 1 {
				return false
			}
			//
			if !strings.Contains(fixed, boundReadback(indent, strconv.Itoa(index), typeName)) {
				return false
			}
			// A second pass is a fixed point.
			again, n := Apply(fixed)
			//
			return n == 0 && again == fixed
		},
		gen.IntRange(1, 12),
		gen.IntRange(0, 20),
		gen.OneConstOf("ColumnInt8", "ColumnUInt64", "ColumnNullable", "ColumnLowCardinality", "ColumnUuid"),
		gen.Bool(),
	))

	properties.Property("a readback with unfamiliar expect text is never touched", prop.ForAll(
		func(width, index int, message string) bool {
			indent := strings.Repeat(" ", width)
			source := indent + "let result_col = result.blocks()[0]\n" +
				indent + "    .column(" + strconv.Itoa(index) + ")\n" +
				indent + "    .expect(\"" + message + "\")\n" +
				indent + "    .as_any()\n" +
				indent + "    .downcast_ref::<ColumnInt8>()\n" +
				indent + "    .expect(\"Invalid column type\");"
			//
			fixed, count := Apply(source)
			//
			return count == 0 && fixed == source
		},
		gen.IntRange(1, 8),
		gen.IntRange(0, 20),
		gen.RegexMatch(`[A-Za-z ]{1,20}`).SuchThat(func(s string) bool {
			return s != "Column not found"
		}),
	))

	properties.TestingRun(t)
}
