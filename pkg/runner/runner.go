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

// Package runner applies the generate command to a batch of files.
package runner

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/genuuid/pkg/buffer"
	"github.com/walteh/genuuid/pkg/command"
	"github.com/walteh/genuuid/pkg/document"
	"github.com/walteh/genuuid/pkg/log"
	"github.com/walteh/genuuid/pkg/uti"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 📋 Job is one file and the selections to fill in it
type Job struct {
	Path       string
	Selections []buffer.Range
	ContentUTI uti.UTI // Overrides the registry's type when set
}

// 📦 Report is the outcome of one job
type Report struct {
	Path       string
	ContentUTI uti.UTI
	Text       string
	Selections []buffer.Range
	Content    []byte // Content after the edit
	Modified   bool
	Err        error
}

// 🔧 Options configures a Runner
type Options struct {
	Command  *command.GenerateCommand
	Registry *uti.Registry
	Logger   *log.Logger
	Async    bool // Process files concurrently
	DryRun   bool // Do not write files back
}

// 🏃 Runner executes jobs
type Runner struct {
	opts Options
}

// 🏗️ New creates a new runner
func New(opts Options) (*Runner, error) {
	if opts.Command == nil {
		return nil, errors.Errorf("command is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	if opts.Registry == nil {
		opts.Registry = uti.System()
	}
	return &Runner{opts: opts}, nil
}

// 🏃 Run executes every job and returns one report per job, in job order.
// The error is the first job failure; the remaining jobs still run.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Report, error) {
	ctx = log.NewContext(ctx, r.opts.Logger)

	r.opts.Logger.StartRun(ctx, log.RunOperation{
		Files:  len(jobs),
		Async:  r.opts.Async,
		DryRun: r.opts.DryRun,
	})
	defer r.opts.Logger.EndRun(ctx)

	reports := make([]Report, len(jobs))
	if r.opts.Async {
		r.runAsync(ctx, jobs, reports)
	} else {
		r.runSync(ctx, jobs, reports)
	}

	for _, report := range reports {
		if report.Err != nil {
			return reports, errors.Errorf("processing %s: %w", report.Path, report.Err)
		}
	}
	return reports, nil
}

// 🔄 runSync runs jobs one after another
func (r *Runner) runSync(ctx context.Context, jobs []Job, reports []Report) {
	for i, job := range jobs {
		reports[i] = r.runJob(ctx, job)
	}
}

// ⚡ runAsync runs jobs concurrently; each job owns its document
func (r *Runner) runAsync(ctx context.Context, jobs []Job, reports []Report) {
	var g errgroup.Group

	for i, job := range jobs {
		g.Go(func() error {
			reports[i] = r.runJob(ctx, job)
			return nil
		})
	}

	_ = g.Wait()
}

func (r *Runner) runJob(ctx context.Context, job Job) Report {
	report := r.process(ctx, job)

	log.FromContext(ctx).LogInsertOperation(ctx, log.InsertOperation{
		Path:       report.Path,
		Type:       report.ContentUTI.String(),
		Text:       report.Text,
		Selections: len(report.Selections),
		IsModified: report.Modified,
		IsDryRun:   r.opts.DryRun,
		Err:        report.Err,
	})

	return report
}

func (r *Runner) process(ctx context.Context, job Job) Report {
	report := Report{Path: job.Path, ContentUTI: job.ContentUTI}
	logger := zerolog.Ctx(ctx).With().Str("path", job.Path).Logger()
	ctx = logger.WithContext(ctx)

	doc, err := document.Load(ctx, job.Path, r.opts.Registry)
	if err != nil {
		report.Err = errors.Errorf("loading document: %w", err)
		return report
	}

	if !job.ContentUTI.IsZero() {
		doc.Buffer.SetContentUTI(job.ContentUTI)
	}
	report.ContentUTI = doc.Buffer.ContentUTI()

	if len(job.Selections) == 0 {
		log.FromContext(ctx).Warningf("no selections for %s, nothing to insert", job.Path)
	}
	for _, sel := range job.Selections {
		doc.Buffer.AddSelection(sel)
	}

	result, err := r.opts.Command.Run(ctx, command.Invocation{Buffer: doc.Buffer})
	if err != nil {
		report.Err = errors.Errorf("running command: %w", err)
		return report
	}

	report.Text = result.Text
	report.Selections = result.Selections
	report.Content = doc.Content()
	report.Modified = doc.Changed()

	if r.opts.DryRun {
		return report
	}

	if err := document.Save(ctx, doc); err != nil {
		report.Err = errors.Errorf("saving document: %w", err)
	}
	return report
}
