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

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about pipeline progress
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎨 RunChangeType represents how a pipeline run ended
type RunChangeType int

const (
	RunCompleted RunChangeType = iota
	RunStopped
	RunFailed
)

// 🖼️ RunChange represents a change in the pipeline's run state
type RunChange struct {
	Type        RunChangeType
	Operation   string
	Description string
	Error       error
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogRunChange logs a run state change with appropriate emoji and formatting
func (u *UserLogger) LogRunChange(change RunChange) {
	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case RunCompleted:
		prefix = "✨"
		action = "Completed"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case RunStopped:
		prefix = "⏭️"
		action = "Stopped"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case RunFailed:
		prefix = "❌"
		action = "Failed"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, change.Operation)
	if change.Description != "" {
		msg += fmt.Sprintf(" (%s)", change.Description)
	}

	if change.Error != nil {
		printer.Println(msg)
		pterm.Error.Println(change.Error)
		u.log.Error().Err(change.Error).Msg(msg)
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg)
	}
}

// 📊 LogStageChange logs a change to the overall pipeline state
func (u *UserLogger) LogStageChange(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
	} else {
		if err != nil {
			pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
			pterm.Error.Println(err)
			u.log.Error().Err(err).Msg(description)
		} else {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
			u.log.Warn().Msg(description)
		}
	}
}
