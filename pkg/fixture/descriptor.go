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
package fixture

import (
	"strings"
)

// FilePrefix is the default file name prefix shared by every emitted fixture.
const FilePrefix = "integration_block_"

// Kind classifies the storage class of a column type. The kind decides which
// comparison idiom the emitted assertions use.
type Kind uint8

const (
	// UnsignedInteger covers UInt8 through UInt128.
	UnsignedInteger Kind = iota
	// SignedInteger covers Int8 through Int128.
	SignedInteger
	// FloatingPoint covers Float32 and Float64, which are compared within an
	// epsilon tolerance rather than for exact equality.
	FloatingPoint
	// Text covers variable-length strings.
	Text
	// FixedWidthText covers fixed-width, zero-padded strings.
	FixedWidthText
	// UniqueIdentifier covers 128-bit UUID values.
	UniqueIdentifier
)

func (k Kind) String() string {
	switch k {
	case UnsignedInteger:
		return "unsigned-integer"
	case SignedInteger:
		return "signed-integer"
	case FloatingPoint:
		return "floating-point"
	case Text:
		return "text"
	case FixedWidthText:
		return "fixed-width-text"
	case UniqueIdentifier:
		return "unique-identifier"
	default:
		return "unknown"
	}
}

// Descriptor captures everything needed to emit the integration fixtures for
// one column type.
type Descriptor struct {
	// Semantic is the canonical lowercase identifier used in file names, test
	// names and database labels (e.g. "uint8").
	Semantic string
	// Native is the Rust value type appended into the column (e.g. "u8").
	Native string
	// Wrapper is the concrete column type the readback downcasts to.
	Wrapper string
	// Wire is the SQL type name used in CREATE TABLE statements.
	Wire string
	// TypeExpr is the Rust constructor expression for the column's type.
	TypeExpr string
	// ImportLine is the use-clause fragment importing the wrapper.
	ImportLine string
	// Kind is the storage classification of the type.
	Kind Kind
	// Min, Max, Mid and Sample are Rust literals covering the value range.
	// Families with hand-authored scenario bodies may leave them empty.
	Min, Max, Mid, Sample string
	// Strategy is the proptest strategy for the randomised scenario. Empty
	// disables that scenario for the type.
	Strategy string
	// DisplayName overrides Wire in the fixture's header comment.
	DisplayName string
	// Family selects the template family the fixture is rendered from.
	Family string
}

// Display returns the human-readable type name used in the fixture's header
// comment.
func (d Descriptor) Display() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}

	return d.Wire
}

// IsFloat reports whether values of this type are compared within an epsilon
// tolerance.
func (d Descriptor) IsFloat() bool {
	return d.Kind == FloatingPoint
}

// HasRandom reports whether a randomised scenario is emitted for this type.
func (d Descriptor) HasRandom() bool {
	return d.Strategy != ""
}

// FileName returns the fixture file name for this descriptor, using the
// default prefix.
func (d Descriptor) FileName() string {
	return FilePrefix + d.Semantic + ".rs"
}

// Scenarios lists the scenario suffixes emitted for this descriptor, in
// emission order.
func (d Descriptor) Scenarios() []string {
	if d.HasRandom() {
		return []string{"basic", "boundary", "random"}
	}

	return []string{"basic", "boundary"}
}

// Slug canonicalises a type name into the identifier form used in file and
// test names: letters are lowered, and every character outside [a-z0-9] maps
// to an underscore.
func Slug(name string) string {
	var builder strings.Builder
	//
	for _, c := range strings.ToLower(name) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			builder.WriteRune(c)
		} else {
			builder.WriteByte('_')
		}
	}
	//
	return builder.String()
}
