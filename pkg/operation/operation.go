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
	"github.com/walteh/flatmaf/pkg/config"
	"github.com/walteh/flatmaf/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the flattener
type Options struct {
	// Config holds the directories and extensions of the run
	Config *config.Config
	// Logger receives one entry per visited file and the summary
	Logger *log.Logger
	// Files performs the filesystem work, defaults to the local disk
	Files FileManager
}

// 🎮 Flattener walks an input tree once, removing, copying or skipping each file
type Flattener struct {
	config *config.Config
	logger *log.Logger
	files  FileManager
}

// 🏭 New creates a new flattener with the given options
func New(opts Options) (*Flattener, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	files := opts.Files
	if files == nil {
		files = NewLocalFileManager()
	}

	return &Flattener{
		config: opts.Config,
		logger: opts.Logger,
		files:  files,
	}, nil
}
