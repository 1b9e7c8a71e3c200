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
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/genuuid/cmd/genuuid/opts"
)

// NewTypesCmd creates the types command
func NewTypesCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List known content types, their parents and file rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			decls := o.Registry.Declarations()
			sort.Slice(decls, func(i, j int) bool { return decls[i].Identifier < decls[j].Identifier })

			for _, d := range decls {
				parents := make([]string, 0, len(d.ConformsTo))
				for _, p := range d.ConformsTo {
					parents = append(parents, p.String())
				}

				quoted := " "
				if o.Policy.StyleFor(d.Identifier).IsQuoted() {
					quoted = o.Policy.Quote
				}

				fmt.Fprintf(out, "%s %-32s %-40s %s\n", quoted, d.Identifier, strings.Join(parents, ","), strings.Join(d.Extensions, ","))
			}

			for _, rule := range o.Registry.Rules() {
				fmt.Fprintf(out, "  %-32s -> %s\n", rule.Pattern, rule.Type)
			}
			return nil
		},
	}
}
