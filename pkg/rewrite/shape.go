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
	"regexp"
)

// Shape pairs the recogniser for one defective readback form with the
// builder for its replacement. Shapes are applied in order, each seeing the
// output of the previous one; new forms are handled by appending here.
type Shape struct {
	// Name identifies the shape in logs and reports.
	Name string
	// pattern recognises one whole occurrence, newlines included. Capture 1
	// is the statement indent, capture 3 the column index and capture 4 the
	// column type.
	pattern *regexp.Regexp
}

// chainTail matches the continuation lines shared by every defective form:
// the column lookup followed by the downcast, spread over five lines. The
// expect messages are matched literally so that any hand-edited variant is
// left alone.
const chainTail = `\s*\n` +
	`\s*\.column\((\d+)\)\s*\n` +
	`\s*\.expect\("Column not found"\)\s*\n` +
	`\s*\.as_any\(\)\s*\n` +
	`\s*\.downcast_ref::<([^>]+)>\(\)\s*\n` +
	`\s*\.expect\("Invalid column type"\);`

// Shapes lists every defective readback form the repairer recognises.
var Shapes = []Shape{
	// The whole chain hangs off an indexing of a previously bound block
	// list, whose element is a temporary dropped at the semicolon.
	{
		Name:    "indexed-blocks",
		pattern: regexp.MustCompile(`([ \t]+)(let result_col = blocks\[0\])` + chainTail),
	},
	// The chain starts from the accessor itself, so even the block list is
	// a temporary.
	{
		Name:    "chained-accessor",
		pattern: regexp.MustCompile(`([ \t]+)(let result_col = result\.blocks\(\)\[0\])` + chainTail),
	},
}

// boundReadback renders the canonical replacement: the block list and the
// column reference are bound first, so the downcast chain borrows from named
// values rather than temporaries. This is the same shape the generator
// emits.
func boundReadback(indent, index, typeName string) string {
	return indent + "let blocks = result.blocks();\n" +
		indent + `let col_ref = blocks[0].column(` + index + `).expect("Column not found");` + "\n" +
		indent + "let result_col = col_ref\n" +
		indent + "    .as_any()\n" +
		indent + "    .downcast_ref::<" + typeName + ">()\n" +
		indent + `    .expect("Invalid column type");`
}
