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

package status

import (
	"fmt"
)

// summaryLabelWidth keeps the summary colons aligned for the default extensions
const summaryLabelWidth = 17

// Formatter defines how entries and summaries are rendered
type Formatter interface {
	// FormatEntry formats the message of an entry, without its tag
	FormatEntry(e Entry) string

	// FormatSummary formats the summary block, one string per line
	FormatSummary(s Summary) []string
}

// DefaultFormatter provides the default implementation of Formatter
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatEntry formats an entry message
func (f *DefaultFormatter) FormatEntry(e Entry) string {
	switch e.Action {
	case ActionCopied:
		return fmt.Sprintf("%s -> %s", e.Path, e.Dest)
	case ActionSkippedExisting:
		return fmt.Sprintf("Already exists: %s", e.Dest)
	case ActionRemoveFailed:
		return fmt.Sprintf("Could not remove %s: %v", e.Path, e.Err)
	case ActionCopyFailed:
		return fmt.Sprintf("Could not copy %s: %v", e.Path, e.Err)
	case ActionReadFailed:
		return fmt.Sprintf("Could not read %s: %v", e.Path, e.Err)
	default:
		return e.Path
	}
}

// FormatSummary formats the summary block
func (f *DefaultFormatter) FormatSummary(s Summary) []string {
	line := func(label string, value any) string {
		return fmt.Sprintf("%-*s: %v", summaryLabelWidth, label, value)
	}
	return []string{
		"=== SUMMARY ===",
		line(fmt.Sprintf("New %s copied", s.CopyExt), s.Copied),
		line(fmt.Sprintf("%s files removed", s.DeleteExt), s.Removed),
		line("Other skipped", s.Skipped),
		line(fmt.Sprintf("Final %s count", s.CopyExt), s.FinalCount),
		line("Output folder", s.OutputDir),
	}
}
