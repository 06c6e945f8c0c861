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
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/eodl/pkg/record"
)

// 🎨 Display configuration
const (
	itemIndent  = 4  // spaces to indent per-image detail lines
	idWidth     = 12 // base width for record ids
	statusWidth = 24 // width for status text
)

// 🎯 ImageOperation represents one image moving through a stage
type ImageOperation struct {
	RecordID     string // catalog record id
	CollectionID string // owning collection
	OrderID      string // order id, when known
	ItemID       string // order item id, when known
	Status       string // stage status text
	Failed       bool   // whether the stage failed for this image
}

// 📦 StageOperation represents one pipeline stage for logging
type StageOperation struct {
	Name   string // stage name (search/order/download/export)
	Detail string // free-form detail, e.g. collection list
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentOp  *StageOperation
	operations []ImageOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
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

// 📝 formatImageOperation formats an image operation for display
func (l *Logger) formatImageOperation(op ImageOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.Failed:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '✓'
		symbolColor = color.FgGreen
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", itemIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", idWidth, op.RecordID),
		color.New(color.FgCyan).Sprint(fmt.Sprintf("%-*s", idWidth, op.CollectionID)),
		fmt.Sprintf("%-*s", statusWidth, op.Status))
}

// 📝 LogImageOperation logs one image's outcome within the current stage
func (l *Logger) LogImageOperation(ctx context.Context, op ImageOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatImageOperation(op))

	l.zlog.Info().
		Str("record_id", op.RecordID).
		Str("collection_id", op.CollectionID).
		Str("order_id", op.OrderID).
		Str("item_id", op.ItemID).
		Str("status", op.Status).
		Bool("failed", op.Failed).
		Msg("image operation")
}

// 📝 StartStage starts a new pipeline stage
func (l *Logger) StartStage(ctx context.Context, op StageOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.operations = nil

	fmt.Fprintf(l.console, "\n%s %s",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Name))
	if op.Detail != "" {
		fmt.Fprintf(l.console, " %s %s",
			color.New(color.Faint).Sprint("•"),
			color.New(color.FgYellow).Sprint(op.Detail))
	}
	fmt.Fprintln(l.console)

	l.zlog.Info().
		Str("stage", op.Name).
		Str("detail", op.Detail).
		Msg("starting stage")
}

// 📝 EndStage ends the current pipeline stage
func (l *Logger) EndStage(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	l.zlog.Info().
		Str("stage", l.currentOp.Name).
		Int("images", len(l.operations)).
		Msg("stage complete")

	l.currentOp = nil
	l.operations = nil
}

// 📝 DownloadReport prints the closing report: every successfully
// downloaded image with its local files, then every failed image with
// its last known status.
func (l *Logger) DownloadReport(ctx context.Context, recs *record.Set) {
	l.mu.Lock()
	defer l.mu.Unlock()

	complete, failed := recs.SplitByDownload()

	if len(complete) > 0 {
		fmt.Fprintf(l.console, "\n%s\n",
			color.New(color.Bold, color.FgGreen).Sprintf("%d images successfully downloaded:", len(complete)))
		for _, rec := range complete {
			l.printImage(rec)
			for _, p := range rec.DownloadPaths() {
				fmt.Fprintf(l.console, "%sDownloaded File: %s\n", indent(), p.LocalDestination)
				fmt.Fprintf(l.console, "%sSource URL: %s\n", indent(), p.URL)
			}
		}
	}

	if len(failed) > 0 {
		fmt.Fprintf(l.console, "\n%s\n",
			color.New(color.Bold, color.FgRed).Sprintf("%d images failed to download:", len(failed)))
		for _, rec := range failed {
			l.printImage(rec)
			if status := rec.GetMetadata("status"); status != nil {
				fmt.Fprintf(l.console, "%sStatus: %v\n", indent(), status)
			}
			if msg := rec.GetMetadata("statusMessage"); msg != nil {
				fmt.Fprintf(l.console, "%sStatus Message: %v\n", indent(), msg)
			}
		}
	}

	l.zlog.Info().
		Int("downloaded", len(complete)).
		Int("failed", len(failed)).
		Msg("download report")
}

// 🌐 GeometryLine is one exported record's geometry projection.
type GeometryLine struct {
	RecordID     string
	CollectionID string
	WKT          string
}

// 📝 GeometryReport prints the geometry projection of the exported
// records, one WKT line per record.
func (l *Logger) GeometryReport(ctx context.Context, lines []GeometryLine) {
	if len(lines) == 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "\n%s\n",
		color.New(color.Bold).Sprintf("Geometry of %d exported images:", len(lines)))
	for _, line := range lines {
		fmt.Fprintf(l.console, "%s%s %s %s\n",
			indent(),
			fmt.Sprintf("%-*s", idWidth, line.RecordID),
			color.New(color.FgCyan).Sprint(fmt.Sprintf("%-*s", idWidth, line.CollectionID)),
			line.WKT)
	}

	l.zlog.Info().
		Int("features", len(lines)).
		Msg("geometry report")
}

func (l *Logger) printImage(rec *record.Record) {
	fmt.Fprintf(l.console, "Record ID: %s\n", color.New(color.Bold).Sprint(rec.RecordID))
	if item := rec.GetMetadata("itemId"); item != nil {
		fmt.Fprintf(l.console, "%sOrder Item ID: %v\n", indent(), item)
	}
	if order := rec.GetMetadata("orderId"); order != nil {
		fmt.Fprintf(l.console, "%sOrder ID: %v\n", indent(), order)
	}
}

func indent() string {
	return fmt.Sprintf("%*s", itemIndent, "")
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	eodlText := color.New(color.Bold, color.FgCyan).Sprint("eodl")
	fmt.Fprintf(l.console, "\n%s %s\n\n", eodlText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
