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
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
)

// Options configures a fixture emission run.
type Options struct {
	// Dir is the directory the fixture files are written into.
	Dir string
	// Prefix overrides the fixture file name prefix. Empty keeps FilePrefix.
	Prefix string
	// DryRun renders every fixture but writes nothing.
	DryRun bool
	// Progress draws a terminal progress bar while emitting.
	Progress bool
}

// EmitAll renders every descriptor and writes the resulting fixture files,
// overwriting any stale copies already present. The descriptor set is
// validated up front; on a validation error nothing is written. Returns the
// emitted paths in registry order.
func EmitAll(r *Renderer, descriptors []Descriptor, opts Options) ([]string, error) {
	if err := Validate(descriptors); err != nil {
		return nil, err
	}
	//
	prefix := opts.Prefix
	if prefix == "" {
		prefix = FilePrefix
	}
	//
	if !opts.DryRun {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", opts.Dir, err)
		}
	}
	//
	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = newEmitBar(len(descriptors))
	}
	//
	paths := make([]string, 0, len(descriptors))
	//
	for _, d := range descriptors {
		source, err := r.Render(d)
		if err != nil {
			return nil, err
		}
		//
		filename := filepath.Join(opts.Dir, prefix+d.Semantic+".rs")
		if !opts.DryRun {
			if err := os.WriteFile(filename, []byte(source), 0644); err != nil {
				return nil, fmt.Errorf("writing %s: %w", filename, err)
			}
		}
		//
		log.Debugf("emitted %s (%d bytes)", filename, len(source))
		paths = append(paths, filename)
		//
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	//
	return paths, nil
}

// newEmitBar builds the progress bar drawn during emission.
func newEmitBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("emitting fixtures"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
