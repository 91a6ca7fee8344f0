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

// Package fixture emits the integration test suite which exercises the
// ClickHouse client's Block insertion path. Each registered column type
// yields one self-contained test file covering a basic round-trip, the
// boundary values of the type, and (where a strategy exists) a randomised
// round-trip driven by proptest. Emitted scenarios always release their
// scratch database, even when an assertion fails, and read columns back
// through a bound reference so the borrow of the result outlives every use.
package fixture

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer turns descriptors into complete fixture source files.
type Renderer struct {
	set *template.Template
	// epsilon is the tolerance literal substituted into floating-point
	// assertions. Empty selects the template default of 1e-6.
	epsilon string
}

// NewRenderer parses the embedded fixture templates.
func NewRenderer(epsilon string) (*Renderer, error) {
	root := template.New("fixtures")
	//
	funcs := sprig.TxtFuncMap()
	funcs["include"] = func(name string, data any) (string, error) {
		var buf strings.Builder
		if err := root.ExecuteTemplate(&buf, name, data); err != nil {
			return "", err
		}
		//
		return buf.String(), nil
	}
	funcs["indentLines"] = indentLines
	//
	set, err := root.Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing fixture templates: %w", err)
	}
	//
	return &Renderer{set: set, epsilon: epsilon}, nil
}

// scenarioContext is the data the templates render against.
type scenarioContext struct {
	Descriptor
	// Epsilon is the floating-point comparison tolerance literal.
	Epsilon string
}

// Render emits the complete fixture file for the given descriptor. Rendering
// is deterministic: the same descriptor always yields identical bytes.
func (r *Renderer) Render(d Descriptor) (string, error) {
	var buf strings.Builder
	//
	ctx := scenarioContext{Descriptor: d, Epsilon: r.epsilon}
	if err := r.set.ExecuteTemplate(&buf, d.Family+".rs.tmpl", ctx); err != nil {
		return "", fmt.Errorf("rendering %s fixture: %w", d.Semantic, err)
	}
	//
	return buf.String(), nil
}

// indentLines prefixes every non-empty line of s with n spaces. Blank lines
// stay blank so the emitted source carries no trailing whitespace.
func indentLines(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	//
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	//
	return strings.Join(lines, "\n")
}
