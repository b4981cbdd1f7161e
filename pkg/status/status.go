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

// 📊 Action is the outcome of handling one file during a run
type Action int

const (
	ActionUnknown         Action = iota
	ActionRemoved                // File matched the delete extension and was removed
	ActionCopied                 // File matched the copy extension and was copied
	ActionSkippedExisting        // Destination name already taken, nothing written
	ActionSkippedOther           // File matched neither extension
	ActionExcluded               // File matched an exclude pattern
	ActionRemoveFailed           // Removal failed, run continues
	ActionCopyFailed             // Copy failed, run continues
	ActionReadFailed             // Directory could not be read, run continues
)

// String returns a string representation of Action
func (a Action) String() string {
	switch a {
	case ActionRemoved:
		return "removed"
	case ActionCopied:
		return "copied"
	case ActionSkippedExisting:
		return "skipped_existing"
	case ActionSkippedOther:
		return "skipped_other"
	case ActionExcluded:
		return "excluded"
	case ActionRemoveFailed:
		return "remove_failed"
	case ActionCopyFailed:
		return "copy_failed"
	case ActionReadFailed:
		return "read_failed"
	default:
		return "unknown"
	}
}

// 🏷️ Tag returns the console label of the action, empty for silent actions
func (a Action) Tag() string {
	switch a {
	case ActionRemoved:
		return "rm"
	case ActionCopied:
		return "COPY"
	case ActionSkippedExisting:
		return "SKIP"
	case ActionRemoveFailed, ActionCopyFailed, ActionReadFailed:
		return "WARN"
	default:
		return ""
	}
}

// IsFailure reports whether the action is a per-file warning
func (a Action) IsFailure() bool {
	return a == ActionRemoveFailed || a == ActionCopyFailed || a == ActionReadFailed
}

// 📄 Entry describes what happened to a single path
type Entry struct {
	Action Action
	Path   string // Source path as visited
	Dest   string // Destination path, copy actions only
	Err    error  // Cause, failure actions only
}

// 🔢 Counters are the running tallies of one run
type Counters struct {
	Copied  int
	Removed int
	Skipped int
}

// Record bumps the counter an action belongs to. Failures count nowhere.
func (c *Counters) Record(a Action) {
	switch a {
	case ActionCopied:
		c.Copied++
	case ActionRemoved:
		c.Removed++
	case ActionSkippedExisting, ActionSkippedOther, ActionExcluded:
		c.Skipped++
	}
}

// 📋 Summary is the end-of-run report
type Summary struct {
	Counters

	// FinalCount is recounted from the output directory, not derived from Copied
	FinalCount int

	OutputDir string
	CopyExt   string
	DeleteExt string
}
