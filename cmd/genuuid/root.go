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
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/genuuid/cmd/genuuid/commands"
	"github.com/walteh/genuuid/cmd/genuuid/opts"
)

// newRootCmd builds the command tree around o
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genuuid",
		Short: "Insert freshly generated UUIDs into source files",
		Long: `genuuid writes a new UUID at each selection of a file, quoted for
source code and bare for everything else. Content types and quoting can be
tuned with a .genuuid.yaml, .genuuid.hcl or .genuuid.json file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd, o)
			return o.Load(ctx)
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewInsertCmd(o),
		commands.NewNewCmd(o),
		commands.NewTypesCmd(o),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default: search the working directory)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging applies the debug flag to the context logger
func setupLogging(cmd *cobra.Command, o *opts.RootOpts) context.Context {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx).Level(o.Level())
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)
	return ctx
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), FormatVersion())
			return err
		},
	}
}
