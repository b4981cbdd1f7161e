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

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/flatmaf/pkg/config"
	"github.com/walteh/flatmaf/pkg/log"
	"github.com/walteh/flatmaf/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the values of the root command flags
type rootFlags struct {
	configFile string
	input      string
	output     string
	copyExt    string
	deleteExt  string
	exclude    []string
	debug      bool
}

// NewRootCmd creates the flatmaf command tree
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "flatmaf",
		Short: "Flatten .maf files into one directory and remove .gz files",
		Long: `flatmaf walks an input tree once and, for every file:
1. Removes it if it ends in the delete extension (.gz)
2. Copies it into the flat output directory if it ends in the copy
   extension (.maf), unless a file with that name is already there
3. Leaves it alone and counts it as skipped otherwise

With no flags it flattens data/ into data/all_maf_flat/.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(setupLogging(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), flags.debug))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := resolveConfig(ctx, cmd, flags)
			if err != nil {
				return errors.Errorf("resolving config: %w", err)
			}

			f, err := operation.New(operation.Options{
				Config: cfg,
				Logger: log.FromContext(ctx),
			})
			if err != nil {
				return errors.Errorf("creating flattener: %w", err)
			}

			if _, err := f.Run(ctx); err != nil {
				return err
			}

			return nil
		},
	}

	addRootFlags(cmd, flags)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds the flags of the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")

	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", "config file path (.hcl, .yaml, .yml or .json)")
	cmd.Flags().StringVarP(&flags.input, "input", "i", config.DefaultInputRoot, "input tree to walk")
	cmd.Flags().StringVarP(&flags.output, "output", "o", config.DefaultOutputDir, "flat output directory")
	cmd.Flags().StringVar(&flags.copyExt, "copy-ext", config.DefaultCopyExt, "suffix of files to copy")
	cmd.Flags().StringVar(&flags.deleteExt, "delete-ext", config.DefaultDeleteExt, "suffix of files to remove")
	cmd.Flags().StringArrayVar(&flags.exclude, "exclude", nil, "glob relative to the input tree to leave alone (repeatable)")
}

// resolveConfig layers explicitly set flags over the config file over the defaults
func resolveConfig(ctx context.Context, cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg := config.Default()
	if flags.configFile != "" {
		loaded, err := config.Load(ctx, flags.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	set := cmd.Flags().Changed
	if set("input") {
		cfg.InputRoot = flags.input
	}
	if set("output") {
		cfg.OutputDir = flags.output
	}
	if set("copy-ext") {
		cfg.CopyExt = flags.copyExt
	}
	if set("delete-ext") {
		cfg.DeleteExt = flags.deleteExt
	}
	if set("exclude") {
		cfg.Exclude = append(cfg.Exclude, flags.exclude...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Stringer("config", cfg).Msg("resolved configuration")

	return cfg, nil
}

// setupLogging puts a zerolog logger and the console logger in ctx
func setupLogging(ctx context.Context, stdout, stderr io.Writer, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	zlog := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
	ctx = zlog.WithContext(ctx)

	return log.NewContext(ctx, log.New(stdout, zlog))
}
