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
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ buildInfo is what flatmaf knows about the binary it runs as
type buildInfo struct {
	Version  string
	Revision string
	Dirty    bool
	BuiltAt  string
	Go       string
	Platform string
}

// readBuildInfo collects build details through read, normally debug.ReadBuildInfo.
// Binaries built outside a module or from a plain checkout report "dev".
func readBuildInfo(read func() (*debug.BuildInfo, bool)) buildInfo {
	info := buildInfo{
		Version:  "dev",
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := read()
	if !ok {
		return info
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	if bi.GoVersion != "" {
		info.Go = bi.GoVersion
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Revision = setting.Value
			if len(info.Revision) > 12 {
				info.Revision = info.Revision[:12]
			}
		case "vcs.time":
			info.BuiltAt = setting.Value
		case "vcs.modified":
			info.Dirty = setting.Value == "true"
		}
	}
	return info
}

// rows lays the build info out as label/value pairs, leaving out unknown vcs details
func (b buildInfo) rows() pterm.TableData {
	rows := pterm.TableData{{"version", b.Version}}
	if b.Revision != "" {
		rev := b.Revision
		if b.Dirty {
			rev += "-dirty"
		}
		rows = append(rows, []string{"revision", rev})
	}
	if b.BuiltAt != "" {
		rows = append(rows, []string{"built", b.BuiltAt})
	}
	return append(rows,
		[]string{"go", b.Go},
		[]string{"platform", b.Platform},
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := pterm.DefaultTable.WithData(readBuildInfo(debug.ReadBuildInfo).rows()).Srender()
			if err != nil {
				return errors.Errorf("rendering version table: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
