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

package operation

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/flatmaf/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Run performs one flatten pass and returns its summary.
//
// A missing input root (ErrInputRoot), an output directory that cannot be
// created or read back, and a cancelled context fail the run. Per-file
// failures are logged as warnings and the walk carries on.
func (f *Flattener) Run(ctx context.Context) (*status.Summary, error) {
	logger := zerolog.Ctx(ctx)
	cfg := f.config

	info, err := f.files.Stat(ctx, cfg.InputRoot)
	if err != nil || !info.IsDir() {
		return nil, errors.Errorf("%w: %s", ErrInputRoot, cfg.InputRoot)
	}

	if err := f.files.CreateDir(ctx, cfg.OutputDir); err != nil {
		return nil, errors.Errorf("creating output directory: %w", err)
	}

	logger.Debug().Stringer("config", cfg).Msg("starting flatten run")

	summary := &status.Summary{
		OutputDir: cfg.OutputDir,
		CopyExt:   cfg.CopyExt,
		DeleteExt: cfg.DeleteExt,
	}

	err = f.files.WalkDir(ctx, cfg.InputRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			f.record(ctx, summary, status.Entry{Action: status.ActionReadFailed, Path: path, Err: walkErr})
			return nil
		}

		if d.IsDir() || f.isDirLink(ctx, path, d) {
			return nil
		}

		entry, err := f.processFile(ctx, path, d.Name())
		if err != nil {
			return err
		}
		f.record(ctx, summary, entry)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", cfg.InputRoot, err)
	}

	finalCount, err := f.countOutput(ctx)
	if err != nil {
		return nil, errors.Errorf("counting output files: %w", err)
	}
	summary.FinalCount = finalCount

	f.logger.LogSummary(ctx, *summary)

	return summary, nil
}

// 📝 record tallies and logs one entry
func (f *Flattener) record(ctx context.Context, summary *status.Summary, entry status.Entry) {
	summary.Record(entry.Action)
	f.logger.LogEntry(ctx, entry)
}

// 🔗 isDirLink reports whether d is a symlink resolving to a directory.
// Such links are not descended into and do not count as files.
func (f *Flattener) isDirLink(ctx context.Context, path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := f.files.Stat(ctx, path)
	return err == nil && info.IsDir()
}

// 📄 processFile decides the fate of a single file. The returned error is
// only set for failures that must stop the run; per-file failures come back
// as a failure entry.
func (f *Flattener) processFile(ctx context.Context, path, name string) (status.Entry, error) {
	cfg := f.config

	if f.isExcluded(ctx, path) {
		return status.Entry{Action: status.ActionExcluded, Path: path}, nil
	}

	var (
		entry status.Entry
		err   error
	)
	switch {
	case strings.HasSuffix(name, cfg.DeleteExt):
		entry, err = f.removeFile(ctx, path)
	case strings.HasSuffix(name, cfg.CopyExt):
		entry, err = f.copyFile(ctx, path, name)
	default:
		return status.Entry{Action: status.ActionSkippedOther, Path: path}, nil
	}

	var fileErr *FileError
	if errors.As(err, &fileErr) {
		action := status.ActionCopyFailed
		if fileErr.Op == OpRemove {
			action = status.ActionRemoveFailed
		}
		return status.Entry{Action: action, Path: fileErr.Path, Err: fileErr.Err}, nil
	}
	return entry, err
}

// 🗑️ removeFile deletes a file matching the delete extension
func (f *Flattener) removeFile(ctx context.Context, path string) (status.Entry, error) {
	if err := f.files.DeleteFile(ctx, path); err != nil {
		return status.Entry{}, &FileError{Op: OpRemove, Path: path, Err: err}
	}
	return status.Entry{Action: status.ActionRemoved, Path: path}, nil
}

// 📦 copyFile copies a file into the output directory unless its name is taken
func (f *Flattener) copyFile(ctx context.Context, path, name string) (status.Entry, error) {
	dest := filepath.Join(f.config.OutputDir, name)

	exists, err := f.files.FileExists(ctx, dest)
	if err != nil {
		return status.Entry{}, &FileError{Op: OpCopy, Path: path, Err: err}
	}
	if exists {
		return status.Entry{Action: status.ActionSkippedExisting, Path: path, Dest: dest}, nil
	}

	if err := f.files.CopyFile(ctx, path, dest); err != nil {
		return status.Entry{}, &FileError{Op: OpCopy, Path: path, Err: err}
	}
	return status.Entry{Action: status.ActionCopied, Path: path, Dest: dest}, nil
}

// 🔍 isExcluded checks the path, relative to the input root, against the exclude patterns
func (f *Flattener) isExcluded(ctx context.Context, path string) bool {
	if len(f.config.Exclude) == 0 {
		return false
	}

	rel, err := filepath.Rel(f.config.InputRoot, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range f.config.Exclude {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			zerolog.Ctx(ctx).Debug().Str("file", rel).Str("pattern", pattern).Msg("file excluded by pattern")
			return true
		}
	}

	return false
}

// 🔢 countOutput counts top-level output entries ending in the copy extension
func (f *Flattener) countOutput(ctx context.Context) (int, error) {
	entries, err := f.files.ReadDir(ctx, f.config.OutputDir)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), f.config.CopyExt) {
			count++
		}
	}
	return count, nil
}
