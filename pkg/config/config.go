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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📌 Reference defaults, used for any value left unset
const (
	DefaultInputRoot = "data"
	DefaultOutputDir = "data/all_maf_flat"
	DefaultCopyExt   = ".maf"
	DefaultDeleteExt = ".gz"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes data on top of the values already in cfg
	Parse(ctx context.Context, data []byte, cfg *Config) error

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration of a flatten run
type Config struct {
	// InputRoot is the tree to walk
	InputRoot string `json:"input_root,omitempty" yaml:"input_root,omitempty" hcl:"input_root,optional"`
	// OutputDir is the flat destination, created when missing
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty" hcl:"output_dir,optional"`
	// CopyExt is the suffix of files to flatten
	CopyExt string `json:"copy_ext,omitempty" yaml:"copy_ext,omitempty" hcl:"copy_ext,optional"`
	// DeleteExt is the suffix of files to remove
	DeleteExt string `json:"delete_ext,omitempty" yaml:"delete_ext,omitempty" hcl:"delete_ext,optional"`
	// Exclude holds doublestar patterns, relative to InputRoot, of files to leave alone
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
}

// 🏭 Default returns the reference configuration
func Default() *Config {
	return &Config{
		InputRoot: DefaultInputRoot,
		OutputDir: DefaultOutputDir,
		CopyExt:   DefaultCopyExt,
		DeleteExt: DefaultDeleteExt,
	}
}

// 🎯 Load loads the configuration from a file, starting from Default
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg := Default()
	if err := p.Parse(ctx, data, cfg); err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.InputRoot == "" {
		return errors.Errorf("input_root is required")
	}
	if cfg.OutputDir == "" {
		return errors.Errorf("output_dir is required")
	}
	if err := validateExt("copy_ext", cfg.CopyExt); err != nil {
		return err
	}
	if err := validateExt("delete_ext", cfg.DeleteExt); err != nil {
		return err
	}
	if cfg.CopyExt == cfg.DeleteExt {
		return errors.Errorf("copy_ext and delete_ext must differ, both are %q", cfg.CopyExt)
	}
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	cfg.InputRoot = filepath.Clean(cfg.InputRoot)
	cfg.OutputDir = filepath.Clean(cfg.OutputDir)

	return nil
}

func validateExt(field, ext string) error {
	if ext == "" {
		return errors.Errorf("%s is required", field)
	}
	if !strings.HasPrefix(ext, ".") {
		return errors.Errorf("%s must start with a dot, got %q", field, ext)
	}
	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s -> %s (copy %s, delete %s)", cfg.InputRoot, cfg.OutputDir, cfg.CopyExt, cfg.DeleteExt)
}
