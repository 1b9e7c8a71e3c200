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
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about a run
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📊 LogSummary reports how many files were filled and how many failed
func (u *UserLogger) LogSummary(done, failed int, dryRun bool) {
	verb := "Filled"
	if dryRun {
		verb = "Previewed"
	}
	msg := fmt.Sprintf("%s %d file(s)", verb, done)

	if failed > 0 {
		msg += fmt.Sprintf(", %d failed", failed)
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(msg)
		u.log.Warn().Int("done", done).Int("failed", failed).Msg(msg)
		return
	}

	pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
	u.log.Info().Int("done", done).Msg(msg)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
		return
	}
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
	u.log.Warn().Msg(description)
}
