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
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/flatmaf/pkg/status"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_entries",
			op: func(t *testing.T, logger *Logger) {
				ctx := context.Background()
				logger.LogEntry(ctx, status.Entry{Action: status.ActionRemoved, Path: "data/a/1.maf.gz"})
				logger.LogEntry(ctx, status.Entry{Action: status.ActionCopied, Path: "data/a/1.maf", Dest: "out/1.maf"})
				logger.LogEntry(ctx, status.Entry{Action: status.ActionSkippedExisting, Path: "data/b/1.maf", Dest: "out/1.maf"})
				logger.LogEntry(ctx, status.Entry{Action: status.ActionCopyFailed, Path: "data/c/2.maf", Err: errors.New("disk full")})
			},
			wantLogs: []string{
				"[rm] data/a/1.maf.gz",
				"[COPY] data/a/1.maf -> out/1.maf",
				"[SKIP] Already exists: out/1.maf",
				"[WARN] Could not copy data/c/2.maf: disk full",
			},
		},
		{
			name: "silent_entries",
			op: func(t *testing.T, logger *Logger) {
				ctx := context.Background()
				logger.LogEntry(ctx, status.Entry{Action: status.ActionSkippedOther, Path: "data/readme.txt"})
				logger.LogEntry(ctx, status.Entry{Action: status.ActionExcluded, Path: "data/x.maf"})
				logger.LogEntry(ctx, status.Entry{Action: status.ActionRemoved, Path: "data/y.gz"})
			},
			wantLogs: []string{
				"[rm] data/y.gz",
			},
		},
		{
			name: "log_summary",
			op: func(t *testing.T, logger *Logger) {
				logger.LogEntry(context.Background(), status.Entry{Action: status.ActionRemoved, Path: "data/y.gz"})
				logger.LogSummary(context.Background(), status.Summary{
					Counters:   status.Counters{Copied: 2, Removed: 1, Skipped: 3},
					FinalCount: 5,
					OutputDir:  "data/all_maf_flat",
					CopyExt:    ".maf",
					DeleteExt:  ".gz",
				})
			},
			wantLogs: []string{
				"[rm] data/y.gz",
				"",
				"=== SUMMARY ===",
				"New .maf copied  : 2",
				".gz files removed: 1",
				"Other skipped    : 3",
				"Final .maf count : 5",
				"Output folder    : data/all_maf_flat",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			tt.op(t, logger)

			output := strings.TrimSuffix(buf.String(), "\n")
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, lines[i], "log line %d should match", i)
			}
		})
	}
}

func TestLoggerMirrorsToZerolog(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	structured := &bytes.Buffer{}
	logger := New(io.Discard, zerolog.New(structured).Level(zerolog.DebugLevel))

	logger.LogEntry(context.Background(), status.Entry{Action: status.ActionRemoveFailed, Path: "data/x.gz", Err: errors.New("busy")})
	logger.LogEntry(context.Background(), status.Entry{Action: status.ActionSkippedOther, Path: "data/notes.txt"})

	lines := strings.Split(strings.TrimSpace(structured.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"warn"`)
	assert.Contains(t, lines[0], `"action":"remove_failed"`)
	assert.Contains(t, lines[0], `"error":"busy"`)
	assert.Contains(t, lines[1], `"level":"debug"`)
	assert.Contains(t, lines[1], `"path":"data/notes.txt"`)
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}
