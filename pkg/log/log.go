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

package log

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about the patch run,
// mirrored into zerolog for debugging.
type UserLogger struct {
	log zerolog.Logger
}

// 🎯 NewUserLogger creates a new user logger from the context logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 🔖 MarkerStatus is the search result for one marker, for display.
// Index is the raw first-occurrence byte offset, -1 when absent.
type MarkerStatus struct {
	Name  string
	Index int
}

// Found reports whether the marker was located
func (s MarkerStatus) Found() bool {
	return s.Index >= 0
}

// 📝 FormatMarkerStatus formats a single marker search result
func FormatMarkerStatus(s MarkerStatus) string {
	if !s.Found() {
		return color.New(color.FgRed).Sprintf("✗ %s marker: not found (index -1)", s.Name)
	}
	return color.New(color.FgGreen).Sprintf("✓ %s marker: found at byte %d", s.Name, s.Index)
}

// 🔍 LogMarkerStatus prints one line per marker search result
func (u *UserLogger) LogMarkerStatus(statuses ...MarkerStatus) {
	for _, s := range statuses {
		pterm.Println(FormatMarkerStatus(s))
		u.log.Debug().Str("marker", s.Name).Int("index", s.Index).Msg("marker search")
	}
}

// 📊 LogStateChange logs a step of the overall run
func (u *UserLogger) LogStateChange(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "🩹"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// ✅ LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
	} else {
		if err != nil {
			pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
			pterm.Error.Println(err)
			u.log.Error().Err(err).Msg(description)
		} else {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
			u.log.Warn().Msg(description)
		}
	}
}

// LogPatchSuccess prints the one-line confirmation for a completed run
func (u *UserLogger) LogPatchSuccess(targetName string, dryRun bool) {
	msg := fmt.Sprintf("Successfully patched %s", targetName)
	if dryRun {
		msg = fmt.Sprintf("Dry run: %s would be patched", targetName)
	}
	u.LogValidation(true, msg, nil)
}

// LogMarkersNotFound prints the fixed diagnostic naming both raw indices
func (u *UserLogger) LogMarkersNotFound(startIdx, endIdx int) {
	msg := fmt.Sprintf("Markers not found! start=%d, end=%d", startIdx, endIdx)
	u.LogValidation(false, msg, nil)
}
