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

package opts

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/genuuid/pkg/config"
	"github.com/walteh/genuuid/pkg/identifier"
	"github.com/walteh/genuuid/pkg/uti"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options and dependencies for all commands
type RootOpts struct {
	ConfigFile string // Empty means search the working directory
	Debug      bool

	Config     *config.Config
	Registry   *uti.Registry
	Policy     identifier.Policy
	UserLogger *UserLogger
}

// 🎚️ Level returns the diagnostic log level for the debug flag
func (o *RootOpts) Level() zerolog.Level {
	if o.Debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// 🔧 Load reads the config and builds the registry and policy from it
func (o *RootOpts) Load(ctx context.Context) error {
	path := o.ConfigFile
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return errors.Errorf("getting working directory: %w", err)
		}
		path = config.Find(wd)
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	reg, err := cfg.Registry()
	if err != nil {
		return errors.Errorf("building type registry: %w", err)
	}

	policy, err := cfg.Policy(reg)
	if err != nil {
		return errors.Errorf("building policy: %w", err)
	}

	o.Config = cfg
	o.Registry = reg
	o.Policy = policy
	o.UserLogger = NewUserLogger(ctx)
	return nil
}
