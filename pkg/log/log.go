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
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/flatmaf/pkg/status"
)

// 🎨 tagColors maps console tags to their color
var tagColors = map[string]color.Attribute{
	"rm":   color.FgRed,
	"COPY": color.FgGreen,
	"SKIP": color.FgYellow,
	"WARN": color.FgMagenta,
}

// 🎯 Logger writes the run log to a console and mirrors it to zerolog
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.Formatter
	mu        sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewDefaultFormatter(),
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatEntry formats an entry as a tagged console line
func (l *Logger) formatEntry(e status.Entry) string {
	tag := e.Action.Tag()
	return fmt.Sprintf("[%s] %s", color.New(tagColors[tag]).Sprint(tag), l.formatter.FormatEntry(e))
}

// 📝 LogEntry logs the outcome of one file. Untagged actions only reach zerolog.
func (l *Logger) LogEntry(ctx context.Context, e status.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e.Action.Tag() != "" {
		fmt.Fprintln(l.console, l.formatEntry(e))
	}

	var ev *zerolog.Event
	switch {
	case e.Action.IsFailure():
		ev = l.zlog.Warn().Err(e.Err)
	case e.Action.Tag() == "":
		ev = l.zlog.Debug()
	default:
		ev = l.zlog.Info()
	}

	ev = ev.Str("action", e.Action.String()).Str("path", e.Path)
	if e.Dest != "" {
		ev = ev.Str("dest", e.Dest)
	}
	ev.Msg("file action")
}

// 📝 LogSummary prints the summary block after a blank line
func (l *Logger) LogSummary(ctx context.Context, s status.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console)
	for i, line := range l.formatter.FormatSummary(s) {
		if i == 0 {
			line = color.New(color.Bold).Sprint(line)
		}
		fmt.Fprintln(l.console, line)
	}

	l.zlog.Info().
		Int("copied", s.Copied).
		Int("removed", s.Removed).
		Int("skipped", s.Skipped).
		Int("final_count", s.FinalCount).
		Str("output_dir", s.OutputDir).
		Msg("run complete")
}
