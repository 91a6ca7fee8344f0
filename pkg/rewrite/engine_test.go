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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defectiveReadback builds one occurrence of the broken five-line chain.
func defectiveReadback(indent, head, index, typeName string) string {
	return indent + head + "\n" +
		indent + "    .column(" + index + ")\n" +
		indent + `    .expect("Column not found")` + "\n" +
		indent + "    .as_any()\n" +
		indent + "    .downcast_ref::<" + typeName + ">()\n" +
		indent + `    .expect("Invalid column type");`
}

// surround embeds a readback in the rest of a plausible scenario body.
func surround(readback string) string {
	return `    let result = client
        .query(format!("SELECT value FROM {}.test_table ORDER BY id", db_name))
        .await
        .expect("Failed to select");

    assert_eq!(result.total_rows(), 3);
` + readback + `

    for (idx, expected) in values.iter().enumerate() {
        assert_eq!(result_col.at(idx), *expected);
    }
`
}

func TestApplyChainedAccessor(t *testing.T) {
	source := surround(defectiveReadback("    ", "let result_col = result.blocks()[0]", "0", "ColumnNullable"))
	//
	fixed, count := Apply(source)
	assert.Equal(t, 1, count)
	assert.Contains(t, fixed, boundReadback("    ", "0", "ColumnNullable"))
	assert.NotContains(t, fixed, "let result_col = result.blocks()[0]")
	// Everything around the occurrence is untouched.
	assert.Contains(t, fixed, "assert_eq!(result.total_rows(), 3);\n    let blocks = result.blocks();")
	assert.Contains(t, fixed, "for (idx, expected) in values.iter().enumerate() {")
}

func TestApplyIndexedBlocks(t *testing.T) {
	source := surround(defectiveReadback("    ", "let result_col = blocks[0]", "2", "ColumnLowCardinality"))
	//
	fixed, count := Apply(source)
	assert.Equal(t, 1, count)
	assert.Contains(t, fixed, `let col_ref = blocks[0].column(2).expect("Column not found");`)
	assert.Contains(t, fixed, ".downcast_ref::<ColumnLowCardinality>()")
}

func TestApplyIsIdempotent(t *testing.T) {
	source := surround(defectiveReadback("    ", "let result_col = result.blocks()[0]", "0", "ColumnUuid"))
	//
	once, count := Apply(source)
	require.Equal(t, 1, count)
	//
	twice, count := Apply(once)
	assert.Equal(t, 0, count)
	assert.Equal(t, once, twice, "repairing a repaired file must change nothing")
}

func TestApplyLeavesCanonicalAlone(t *testing.T) {
	source := surround(boundReadback("    ", "0", "ColumnInt8"))
	//
	fixed, count := Apply(source)
	assert.Equal(t, 0, count)
	assert.Equal(t, source, fixed)
}

// A readback whose text deviates from the known shape, however slightly, is
// someone's hand-edited code and must be preserved byte for byte.
func TestApplyConservatism(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{
			"edited expect message",
			"    let result_col = result.blocks()[0]\n" +
				"        .column(0)\n" +
				"        .expect(\"column zero missing\")\n" +
				"        .as_any()\n" +
				"        .downcast_ref::<ColumnInt8>()\n" +
				"        .expect(\"Invalid column type\");",
		},
		{
			"interleaved comment",
			"    let result_col = result.blocks()[0]\n" +
				"        .column(0)\n" +
				"        .expect(\"Column not found\")\n" +
				"        // keep the erased type around\n" +
				"        .as_any()\n" +
				"        .downcast_ref::<ColumnInt8>()\n" +
				"        .expect(\"Invalid column type\");",
		},
		{
			"different binding name",
			"    let col = result.blocks()[0]\n" +
				"        .column(0)\n" +
				"        .expect(\"Column not found\")\n" +
				"        .as_any()\n" +
				"        .downcast_ref::<ColumnInt8>()\n" +
				"        .expect(\"Invalid column type\");",
		},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixed, count := Apply(tt.source)
			assert.Equal(t, 0, count)
			assert.Equal(t, tt.source, fixed)
		})
	}
}

func TestApplyMultipleOccurrences(t *testing.T) {
	source := surround(defectiveReadback("    ", "let result_col = result.blocks()[0]", "0", "ColumnInt8")) +
		surround(defectiveReadback("            ", "let result_col = blocks[0]", "1", "ColumnUInt32"))
	//
	fixed, count := Apply(source)
	assert.Equal(t, 2, count)
	assert.Contains(t, fixed, boundReadback("    ", "0", "ColumnInt8"))
	assert.Contains(t, fixed, boundReadback("            ", "1", "ColumnUInt32"))
}

func TestApplyPreservesTabIndent(t *testing.T) {
	source := defectiveReadback("\t", "let result_col = blocks[0]", "0", "ColumnInt8")
	//
	fixed, count := Apply(source)
	assert.Equal(t, 1, count)
	assert.Contains(t, fixed, "\tlet blocks = result.blocks();\n\tlet col_ref")
}

func TestRepairFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "integration_block_nullable_int8.rs")
	//
	source := surround(defectiveReadback("    ", "let result_col = result.blocks()[0]", "0", "ColumnNullable"))
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))
	//
	changed, err := RepairFile(path)
	require.NoError(t, err)
	assert.True(t, changed)
	//
	fixed, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(fixed), "let col_ref = blocks[0].column(0)")
	//
	// Second run leaves the file alone.
	changed, err = RepairFile(path)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestRepairFileMissing(t *testing.T) {
	_, err := RepairFile(filepath.Join(t.TempDir(), "absent.rs"))
	require.Error(t, err)
}

func TestRepairTreeScope(t *testing.T) {
	dir := t.TempDir()
	defective := surround(defectiveReadback("    ", "let result_col = result.blocks()[0]", "0", "ColumnNullable"))
	clean := surround(boundReadback("    ", "0", "ColumnNullable"))
	//
	files := map[string]string{
		"integration_block_nullable_string.rs":      defective,
		"integration_block_lowcardinality_int64.rs": defective,
		"integration_block_nullable_uuid.rs":        clean,
		// In scope for the generator, but not for repair.
		"integration_block_int8.rs": defective,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	//
	fixed, err := RepairTree(dir, []string{
		"integration_block_nullable*.rs",
		"integration_block_lowcardinality*.rs",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"integration_block_lowcardinality_int64.rs",
		"integration_block_nullable_string.rs",
	}, fixed, "changed files are reported in sorted order")
	//
	// Files outside the family patterns keep their defect.
	untouched, err := os.ReadFile(filepath.Join(dir, "integration_block_int8.rs"))
	require.NoError(t, err)
	assert.Equal(t, defective, string(untouched))
}

func TestRepairTreeBadPattern(t *testing.T) {
	_, err := RepairTree(t.TempDir(), []string{"["})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "family pattern")
}

func TestRepairTreeEmptyDir(t *testing.T) {
	fixed, err := RepairTree(t.TempDir(), []string{"integration_block_nullable*.rs"})
	require.NoError(t, err)
	assert.Empty(t, fixed)
}
