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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountersRecord(t *testing.T) {
	var c Counters
	for _, a := range []Action{
		ActionCopied,
		ActionCopied,
		ActionRemoved,
		ActionSkippedExisting,
		ActionSkippedOther,
		ActionExcluded,
		ActionRemoveFailed,
		ActionCopyFailed,
		ActionReadFailed,
		ActionUnknown,
	} {
		c.Record(a)
	}

	assert.Equal(t, Counters{Copied: 2, Removed: 1, Skipped: 3}, c, "failures should not be counted")
}

func TestActionTag(t *testing.T) {
	tests := []struct {
		action  Action
		tag     string
		failure bool
	}{
		{ActionRemoved, "rm", false},
		{ActionCopied, "COPY", false},
		{ActionSkippedExisting, "SKIP", false},
		{ActionSkippedOther, "", false},
		{ActionExcluded, "", false},
		{ActionRemoveFailed, "WARN", true},
		{ActionCopyFailed, "WARN", true},
		{ActionReadFailed, "WARN", true},
		{ActionUnknown, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			assert.Equal(t, tt.tag, tt.action.Tag())
			assert.Equal(t, tt.failure, tt.action.IsFailure())
		})
	}
}
