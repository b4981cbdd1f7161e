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
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 💾 FileManager handles all file system operations of a run
type FileManager interface {
	// Inspection
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
	FileExists(ctx context.Context, path string) (bool, error)
	ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error)
	WalkDir(ctx context.Context, root string, fn fs.WalkDirFunc) error

	// Mutation
	CreateDir(ctx context.Context, path string) error
	DeleteFile(ctx context.Context, path string) error
	CopyFile(ctx context.Context, src, dst string) error
}

// 🔧 LocalFileManager implements FileManager on the local disk
type LocalFileManager struct{}

// 🏭 NewLocalFileManager creates a new local file manager
func NewLocalFileManager() *LocalFileManager {
	return &LocalFileManager{}
}

func (m *LocalFileManager) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// FileExists follows symlinks, so a dangling link reports false
func (m *LocalFileManager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

func (m *LocalFileManager) ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Errorf("reading directory: %w", err)
	}
	return entries, nil
}

// WalkDir walks root in lexical order. A root that is itself a link to a
// directory is walked through the link; links further down are not followed.
func (m *LocalFileManager) WalkDir(ctx context.Context, root string, fn fs.WalkDirFunc) error {
	if fi, err := os.Lstat(root); err == nil && fi.Mode()&fs.ModeSymlink != 0 {
		if target, err := os.Stat(root); err == nil && target.IsDir() {
			root += string(filepath.Separator)
		}
	}
	return filepath.WalkDir(root, fn)
}

func (m *LocalFileManager) CreateDir(ctx context.Context, path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return errors.Errorf("creating directory: %w", err)
	}
	return nil
}

func (m *LocalFileManager) DeleteFile(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		return errors.Errorf("deleting file: %w", err)
	}
	return nil
}

// CopyFile copies content, permission bits and modification time from src
// to dst. The data lands in a temp file next to dst first and is renamed
// into place, so dst is never observed half written.
func (m *LocalFileManager) CopyFile(ctx context.Context, src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Errorf("reading source file info: %w", err)
	}

	out, err := os.CreateTemp(filepath.Dir(dst), ".flatmaf-*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := out.Name()
	defer func() {
		// cleared once the rename succeeded
		if tempPath != "" {
			os.Remove(tempPath)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Errorf("copying file content: %w", err)
	}

	if err := out.Chmod(info.Mode().Perm()); err != nil {
		out.Close()
		return errors.Errorf("setting permissions: %w", err)
	}

	// Close before Chtimes, flushing may touch the modification time.
	if err := out.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Chtimes(tempPath, info.ModTime(), info.ModTime()); err != nil {
		return errors.Errorf("setting timestamps: %w", err)
	}

	if err := os.Rename(tempPath, dst); err != nil {
		return errors.Errorf("renaming temp file: %w", err)
	}
	tempPath = ""

	return nil
}
