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
	"fmt"
)

// registry enumerates every column type the generator maintains fixtures for,
// in emission order. Scalar numerics come first, mirroring the order they
// were originally brought under test, followed by the hand-authored families.
var registry = []Descriptor{
	numeric("u8", "uint8", "ColumnUInt8", "UInt8", UnsignedInteger,
		"0", "255", "127", "42"),
	numeric("u16", "uint16", "ColumnUInt16", "UInt16", UnsignedInteger,
		"0", "65535", "32767", "1000"),
	numeric("u32", "uint32", "ColumnUInt32", "UInt32", UnsignedInteger,
		"0", "4294967295", "2147483647", "100000"),
	numeric("u64", "uint64", "ColumnUInt64", "UInt64", UnsignedInteger,
		"0", "18446744073709551615", "9223372036854775807", "1000000000"),
	numeric("u128", "uint128", "ColumnUInt128", "UInt128", UnsignedInteger,
		"0", "340282366920938463463374607431768211455",
		"170141183460469231731687303715884105727", "1000000000000"),
	numeric("i8", "int8", "ColumnInt8", "Int8", SignedInteger,
		"-128", "127", "0", "42"),
	numeric("i16", "int16", "ColumnInt16", "Int16", SignedInteger,
		"-32768", "32767", "0", "1000"),
	numeric("i32", "int32", "ColumnInt32", "Int32", SignedInteger,
		"-2147483648", "2147483647", "0", "100000"),
	numeric("i64", "int64", "ColumnInt64", "Int64", SignedInteger,
		"-9223372036854775808", "9223372036854775807", "0", "1000000000"),
	numeric("i128", "int128", "ColumnInt128", "Int128", SignedInteger,
		"-170141183460469231731687303715884105728",
		"170141183460469231731687303715884105727", "0", "1000000000000"),
	numeric("f32", "float32", "ColumnFloat32", "Float32", FloatingPoint,
		"f32::MIN", "f32::MAX", "0.0", "3.14159"),
	numeric("f64", "float64", "ColumnFloat64", "Float64", FloatingPoint,
		"f64::MIN", "f64::MAX", "0.0", "3.141592653589793"),
	{
		Semantic:   "string",
		Native:     "String",
		Wrapper:    "ColumnString",
		Wire:       "String",
		TypeExpr:   "Type::string()",
		ImportLine: "column::string::ColumnString",
		Kind:       Text,
		Strategy:   `prop::collection::vec(".*", 1..50)`,
		Family:     "string",
	},
	{
		Semantic:    "fixedstring",
		Native:      "Vec<u8>",
		Wrapper:     "ColumnFixedString",
		Wire:        "FixedString(10)",
		TypeExpr:    "Type::fixed_string(10)",
		ImportLine:  "column::string::ColumnFixedString",
		Kind:        FixedWidthText,
		DisplayName: "FixedString",
		Family:      "fixedstring",
	},
	{
		Semantic:   "uuid",
		Native:     "u128",
		Wrapper:    "ColumnUuid",
		Wire:       "UUID",
		TypeExpr:   "Type::uuid()",
		ImportLine: "column::uuid::{ColumnUuid, Uuid}",
		Kind:       UniqueIdentifier,
		Min:        "0",
		Max:        "u128::MAX",
		Mid:        "u128::MAX / 2",
		Sample:     "0x123456789ABCDEF0123456789ABCDEF0",
		Strategy:   "prop::collection::vec(any::<u128>(), 1..100)",
		Family:     "uuid",
	},
}

// numeric constructs the descriptor for a scalar numeric type, deriving the
// constructor expression, import and proptest strategy from its names.
func numeric(native, semantic, wrapper, wire string, kind Kind, min, max, mid, sample string) Descriptor {
	return Descriptor{
		Semantic:   semantic,
		Native:     native,
		Wrapper:    wrapper,
		Wire:       wire,
		TypeExpr:   "Type::" + semantic + "()",
		ImportLine: "column::numeric::" + wrapper,
		Kind:       kind,
		Min:        min,
		Max:        max,
		Mid:        mid,
		Sample:     sample,
		Strategy:   fmt.Sprintf("prop::collection::vec(any::<%s>(), 1..100)", native),
		Family:     "numeric",
	}
}

// Registry returns the ordered list of maintained type descriptors.
func Registry() []Descriptor {
	return registry
}

// Find looks up a descriptor by its canonical name.
func Find(semantic string) (Descriptor, bool) {
	for _, d := range registry {
		if d.Semantic == semantic {
			return d, true
		}
	}
	//
	return Descriptor{}, false
}

// Validate checks that every descriptor carries a canonical name, a template
// family, and that no two descriptors collide. Emission refuses to start on
// an invalid set.
func Validate(descriptors []Descriptor) error {
	seen := make(map[string]bool, len(descriptors))
	//
	for _, d := range descriptors {
		if d.Semantic == "" || d.Semantic != Slug(d.Semantic) {
			return fmt.Errorf("descriptor %q: name must match [a-z0-9_]+", d.Semantic)
		} else if seen[d.Semantic] {
			return fmt.Errorf("duplicate type descriptor %q", d.Semantic)
		} else if d.Family == "" {
			return fmt.Errorf("descriptor %q: missing template family", d.Semantic)
		}
		//
		seen[d.Semantic] = true
	}
	//
	return nil
}
