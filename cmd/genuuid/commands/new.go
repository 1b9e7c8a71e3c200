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

	"github.com/spf13/cobra"
	"github.com/walteh/genuuid/cmd/genuuid/opts"
	"github.com/walteh/genuuid/pkg/identifier"
	"github.com/walteh/genuuid/pkg/uti"
	"gitlab.com/tozd/go/errors"
)

// NewNewCmd creates the new command
func NewNewCmd(o *opts.RootOpts) *cobra.Command {
	var (
		typ   string
		count int
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Print a new UUID formatted for a content type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errors.Errorf("count must be at least 1, got %d", count)
			}

			gen := identifier.RandomGenerator{}
			for range count {
				id, err := gen.New()
				if err != nil {
					return errors.Errorf("generating identifier: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), o.Policy.Render(id, uti.UTI(typ)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", uti.PlainText.String(), "content type (UTI) deciding the quoting")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers to print")

	return cmd
}
