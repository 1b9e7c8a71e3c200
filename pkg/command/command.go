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

// Package command implements the "generate UUID" source editor command.
//
// One invocation generates a single identifier and writes the same text over
// every selection of the buffer, in the order the host listed them.
package command

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/genuuid/pkg/buffer"
	"github.com/walteh/genuuid/pkg/identifier"
	"github.com/walteh/genuuid/pkg/uti"
	"gitlab.com/tozd/go/errors"
)

// 📨 Invocation is what the host hands the command
type Invocation struct {
	Buffer *buffer.Buffer
}

// 📦 Result describes what an invocation wrote
type Result struct {
	Text       string         // Text written at every selection
	ContentUTI uti.UTI        // Type the style was chosen for
	Selections []buffer.Range // Selections after the edit
}

// 🆔 GenerateCommand fills selections with a freshly generated identifier
type GenerateCommand struct {
	generator identifier.Generator
	policy    identifier.Policy
}

// 🏭 New creates a command. A nil generator means identifier.RandomGenerator.
func New(generator identifier.Generator, policy identifier.Policy) *GenerateCommand {
	if generator == nil {
		generator = identifier.RandomGenerator{}
	}
	return &GenerateCommand{
		generator: generator,
		policy:    policy,
	}
}

// 🏃 Run performs the command. Nothing is edited unless every step before the
// edit succeeds.
func (c *GenerateCommand) Run(ctx context.Context, inv Invocation) (*Result, error) {
	if inv.Buffer == nil {
		return nil, errors.Errorf("invocation has no buffer")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("invocation cancelled: %w", err)
	}

	buf := inv.Buffer
	contentUTI := buf.ContentUTI()

	id, err := c.generator.New()
	if err != nil {
		return nil, errors.Errorf("generating identifier: %w", err)
	}
	text := c.policy.Render(id, contentUTI)

	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("content_uti", contentUTI.String()).
		Str("text", text).
		Int("selections", len(buf.Selections())).
		Msg("inserting identifier")

	result := &Result{
		Text:       text,
		ContentUTI: contentUTI,
	}
	for _, sel := range buf.Selections() {
		before := *sel
		buf.Lines().SetRange(sel, text)
		result.Selections = append(result.Selections, *sel)

		logger.Trace().
			Stringer("before", before).
			Stringer("after", *sel).
			Msg("selection replaced")
	}

	return result, nil
}

// 📞 Perform runs the command and reports completion through done, with a nil
// error on success.
func (c *GenerateCommand) Perform(ctx context.Context, inv Invocation, done func(error)) {
	_, err := c.Run(ctx, inv)
	done(err)
}
