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

package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/walteh/genuuid/cmd/genuuid/opts"
	"github.com/walteh/genuuid/pkg/buffer"
	"github.com/walteh/genuuid/pkg/command"
	"github.com/walteh/genuuid/pkg/identifier"
	"github.com/walteh/genuuid/pkg/log"
	"github.com/walteh/genuuid/pkg/runner"
	"github.com/walteh/genuuid/pkg/uti"
	"gitlab.com/tozd/go/errors"
)

// NewInsertCmd creates the insert command
func NewInsertCmd(o *opts.RootOpts) *cobra.Command {
	var (
		selections []string
		typ        string
		dryRun     bool
		async      bool
	)

	cmd := &cobra.Command{
		Use:   "insert FILE...",
		Short: "Insert a new UUID at each selection of each file",
		Long: `Insert generates one UUID per file and writes it at every selection.
Selections are L:C-L:C ranges (zero-based line and character) or a single
L:C caret; a selected range is replaced. Selections are filled from the end
of the file backwards and must not overlap. Source files get the UUID quoted,
other files get it bare.`,
		Example: `  genuuid insert Sources/Model.swift --selection 4:12
  genuuid insert notes.txt --selection 0:0-0:5 --selection 3:0 --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ranges, err := parseSelections(selections)
			if err != nil {
				return err
			}

			jobs := make([]runner.Job, 0, len(args))
			for _, path := range args {
				jobs = append(jobs, runner.Job{
					Path:       path,
					Selections: ranges,
					ContentUTI: uti.UTI(typ),
				})
			}

			logger := log.New(cmd.ErrOrStderr(), o.Level())
			logger.Header("inserting identifiers")

			r, err := runner.New(runner.Options{
				Command:  command.New(identifier.RandomGenerator{}, o.Policy),
				Registry: o.Registry,
				Logger:   logger,
				Async:    async || o.Config.Async,
				DryRun:   dryRun,
			})
			if err != nil {
				return errors.Errorf("creating runner: %w", err)
			}

			reports, runErr := r.Run(ctx, jobs)

			failed := 0
			for _, report := range reports {
				if report.Err != nil {
					failed++
					continue
				}
				if dryRun {
					if len(reports) > 1 {
						fmt.Fprintf(cmd.OutOrStdout(), "==> %s <==\n", report.Path)
					}
					fmt.Fprint(cmd.OutOrStdout(), string(report.Content))
				}
			}

			o.UserLogger.LogSummary(len(reports)-failed, failed, dryRun)
			return runErr
		},
	}

	cmd.Flags().StringArrayVarP(&selections, "selection", "s", nil, "selection as L:C-L:C or L:C (repeatable, default 0:0)")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "content type (UTI) to use instead of the one detected from the path")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the result instead of writing files")
	cmd.Flags().BoolVar(&async, "async", false, "process files concurrently")

	return cmd
}

// parseSelections parses the selection flags and orders them last to first, so
// filling one selection never moves a selection that is still to be filled.
// Overlapping selections are rejected.
func parseSelections(values []string) ([]buffer.Range, error) {
	if len(values) == 0 {
		return []buffer.Range{buffer.Caret(buffer.Position{})}, nil
	}

	ranges := make([]buffer.Range, 0, len(values))
	for _, v := range values {
		r, err := buffer.ParseRange(v)
		if err != nil {
			return nil, errors.Errorf("parsing selection %q: %w", v, err)
		}
		ranges = append(ranges, r)
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		if c := buffer.ComparePositions(ranges[i].Start, ranges[j].Start); c != 0 {
			return c > 0
		}
		return buffer.ComparePositions(ranges[i].End, ranges[j].End) > 0
	})

	for i := 1; i < len(ranges); i++ {
		later, earlier := ranges[i-1], ranges[i]
		if buffer.ComparePositions(earlier.End, later.Start) > 0 {
			return nil, errors.Errorf("selections %s and %s overlap", earlier, later)
		}
	}

	return ranges, nil
}
