// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package patch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/markpatch/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Outcome is the terminal state of a patch run
type Outcome int

const (
	OutcomeAborted Outcome = iota // markers missing or write failed, file untouched
	OutcomePatched                // region located and spliced
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomePatched:
		return "patched"
	default:
		return "aborted"
	}
}

// 🔧 Options configures a single patch run
type Options struct {
	TargetPath string          // File to patch, read and written in place
	Rule       text.RegionRule // Anchored region to replace
	DryRun     bool            // Locate and splice in memory, never write
}

// 📊 Result describes what a run did
type Result struct {
	Outcome    Outcome // Terminal state
	StartIndex int     // First start-marker offset, -1 if absent
	EndIndex   int     // First end-marker offset, -1 if absent
	WroteFile  bool    // Whether the target was overwritten
	NewSize    int     // Size of the spliced content in bytes
}

// 🩹 Patcher applies one anchored region replacement to one file
type Patcher struct {
	replacer text.RegionReplacer
}

// 🏭 New creates a new Patcher
func New(replacer text.RegionReplacer) *Patcher {
	return &Patcher{replacer: replacer}
}

// Patch runs the one-shot patch: read, locate, splice, write. Every
// failure path returns before the write, so the target is either fully
// patched or untouched.
func (p *Patcher) Patch(ctx context.Context, opts Options) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	result := &Result{Outcome: OutcomeAborted, StartIndex: -1, EndIndex: -1}

	if err := p.replacer.ValidateRule(opts.Rule); err != nil {
		return result, errors.Errorf("validating rule: %w", err)
	}

	// Gate on the rule's file filter before touching the file
	matched, err := doublestar.Match(opts.Rule.FileFilterGlob, filepath.ToSlash(opts.TargetPath))
	if err != nil {
		return result, errors.Errorf("matching file filter: %w", err)
	}
	if !matched {
		return result, errors.Errorf("target %q does not match file filter %q", opts.TargetPath, opts.Rule.FileFilterGlob)
	}

	info, err := os.Stat(opts.TargetPath)
	if err != nil {
		return result, errors.Errorf("checking target file: %w", err)
	}

	content, err := os.ReadFile(opts.TargetPath)
	if err != nil {
		return result, errors.Errorf("reading target file: %w", err)
	}

	logger.Debug().Str("path", opts.TargetPath).Int("bytes", len(content)).Msg("read target file")

	regionResult, err := p.replacer.ReplaceRegion(ctx, bytes.NewReader(content), opts.Rule)
	if regionResult != nil {
		result.StartIndex = regionResult.StartIndex
		result.EndIndex = regionResult.EndIndex
	}
	if err != nil {
		// Fail closed: nothing has been written yet
		return result, errors.Errorf("locating region in %s: %w", opts.TargetPath, err)
	}

	result.Outcome = OutcomePatched
	result.NewSize = len(regionResult.ModifiedContent)

	if opts.DryRun {
		logger.Info().Str("path", opts.TargetPath).Msg("dry run, skipping write")
		return result, nil
	}

	if err := writeFileAtomic(opts.TargetPath, regionResult.ModifiedContent, info.Mode().Perm()); err != nil {
		result.Outcome = OutcomeAborted
		return result, errors.Errorf("writing target file: %w", err)
	}
	result.WroteFile = true

	logger.Debug().Str("path", opts.TargetPath).Int("bytes", result.NewSize).Msg("wrote patched file")
	return result, nil
}

// Check runs the locate and splice in memory only. The target file is
// opened for reading and never written, whatever the outcome.
func (p *Patcher) Check(ctx context.Context, opts Options) (*Result, error) {
	opts.DryRun = true
	return p.Patch(ctx, opts)
}

// writeFileAtomic writes via a temp file and rename so a failed write
// can never leave a half-patched target behind.
func writeFileAtomic(path string, content []byte, perm os.FileMode) error {
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, content, perm); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
