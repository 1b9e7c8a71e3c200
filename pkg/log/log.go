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

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	typeWidth   = 28 // Width for content type
	statusWidth = 15 // Width for status text
)

// 🎯 InsertOperation describes one file's identifier insertion for logging
type InsertOperation struct {
	Path       string // File path
	Type       string // Content type the style was picked for
	Text       string // Text inserted at each selection
	Selections int    // Number of selections filled
	IsModified bool   // Whether the file content changed
	IsDryRun   bool   // Whether the change was only previewed
	Err        error  // Failure, if any
}

// 📦 RunOperation describes a batch of files for logging
type RunOperation struct {
	Files  int  // Number of files in the batch
	Async  bool // Whether files run concurrently
	DryRun bool // Whether files are only previewed
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentRun *RunOperation
	operations []InsertOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) { w.Out = os.Stderr })).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func (op InsertOperation) status() string {
	switch {
	case op.Err != nil:
		return "FAILED"
	case op.Selections == 1:
		return "1 selection"
	default:
		return fmt.Sprintf("%d selections", op.Selections)
	}
}

// 📝 formatInsertOperation formats an insert operation for display
func (l *Logger) formatInsertOperation(op InsertOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.Err != nil:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsDryRun:
		symbol = '○'
		symbolColor = color.FgBlue
	case op.IsModified:
		symbol = '✓'
		symbolColor = color.FgGreen
	default:
		symbol = '•'
		symbolColor = color.FgYellow
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(color.FgCyan).Sprint(fmt.Sprintf("%-*s", typeWidth, op.Type)),
		fmt.Sprintf("%-*s", statusWidth, op.status()))
}

// 📝 LogInsertOperation logs one file's insertion
func (l *Logger) LogInsertOperation(ctx context.Context, op InsertOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatInsertOperation(op))

	event := l.zlog.Info()
	if op.Err != nil {
		event = l.zlog.Error().Err(op.Err)
	}
	event.
		Str("file", op.Path).
		Str("type", op.Type).
		Str("text", op.Text).
		Int("selections", op.Selections).
		Bool("is_modified", op.IsModified).
		Bool("is_dry_run", op.IsDryRun).
		Msg("insert operation")
}

// 📝 StartRun starts a new batch
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentRun = &op
	l.operations = nil

	mode := "in place"
	if op.DryRun {
		mode = "dry run"
	}
	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprintf("%d file(s)", op.Files),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(mode))

	l.zlog.Info().
		Int("files", op.Files).
		Bool("async", op.Async).
		Bool("dry_run", op.DryRun).
		Msg("starting run")
}

// 📝 EndRun ends the current batch and returns the operations logged during it
func (l *Logger) EndRun(ctx context.Context) []InsertOperation {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentRun == nil {
		return nil
	}

	failed := 0
	for _, op := range l.operations {
		if op.Err != nil {
			failed++
		}
	}
	l.zlog.Info().
		Int("files", len(l.operations)).
		Int("failed", failed).
		Msg("run complete")

	ops := l.operations
	l.currentRun = nil
	l.operations = nil
	return ops
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("genuuid")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
