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

// Package rewrite repairs integration fixtures whose readback borrows a
// column reference out of a temporary, a shape the borrow checker rejects
// once the result is used. Recognised occurrences are replaced with the
// bound two-step readback; everything else in the file, including near
// misses, is preserved byte for byte.
package rewrite

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"
)

// Apply rewrites every recognised defective readback in source, returning
// the result together with the number of occurrences replaced. Applying the
// result again is a no-op: the replacement matches no shape.
func Apply(source string) (string, int) {
	total := 0
	//
	for _, shape := range Shapes {
		source = shape.pattern.ReplaceAllStringFunc(source, func(match string) string {
			total++
			//
			groups := shape.pattern.FindStringSubmatch(match)
			log.Debugf("matched %s readback (column %s, type %s)", shape.Name, groups[3], groups[4])
			//
			return boundReadback(groups[1], groups[3], groups[4])
		})
	}
	//
	return source, total
}

// RepairFile rewrites path in place. Files without a defective readback are
// left untouched.
func RepairFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	//
	fixed, count := Apply(string(data))
	if count == 0 {
		return false, nil
	}
	//
	if err := os.WriteFile(path, []byte(fixed), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	//
	log.Debugf("rewrote %d readback(s) in %s", count, filepath.Base(path))
	//
	return true, nil
}

// RepairTree repairs every file under dir matching one of the given glob
// patterns, visiting matches in sorted order. Returns the base names of the
// files that changed.
func RepairTree(dir string, patterns []string) ([]string, error) {
	var files []string
	//
	seen := make(map[string]bool)
	//
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("bad family pattern %q: %w", pattern, err)
		}
		//
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true

				files = append(files, match)
			}
		}
	}
	//
	sort.Strings(files)
	//
	var fixed []string
	//
	for _, path := range files {
		changed, err := RepairFile(path)
		if err != nil {
			return nil, err
		}
		//
		if changed {
			fixed = append(fixed, filepath.Base(path))
		}
	}
	//
	return fixed, nil
}
