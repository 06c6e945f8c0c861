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

// Package prompt isolates all interactive operator input behind a single
// interface: the pipeline asks, an implementation decides. The silent
// implementation never blocks and always answers with a fixed default.
package prompt

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"gitlab.com/tozd/go/errors"
)

// 💬 Prompter is the decision capability injected into the pipeline.
type Prompter interface {
	// Confirm asks a yes/no question. fallback is the answer when the
	// operator gives neither a yes nor a no, e.g. a bare Enter.
	Confirm(msg string, fallback bool) (bool, error)
	// Input asks for a free-form line.
	Input(msg string) (string, error)
}

// 🔇 Silent answers every question with a fixed default and never blocks.
type Silent struct {
	// Default is the answer Confirm always gives.
	Default bool
}

func (s Silent) Confirm(msg string, fallback bool) (bool, error) { return s.Default, nil }
func (s Silent) Input(msg string) (string, error)                { return "", nil }

// 🗣️ Console prompts on the terminal.
type Console struct {
	In  io.Reader
	Out io.Writer
}

// 🏭 NewConsole creates a Console on stdin/stdout.
func NewConsole() *Console {
	return &Console{In: os.Stdin, Out: os.Stdout}
}

func (c *Console) Confirm(msg string, fallback bool) (bool, error) {
	answer, err := c.Input(msg + " (y/n): ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	switch {
	case strings.Contains(answer, "n"):
		return false, nil
	case strings.Contains(answer, "y"):
		return true, nil
	default:
		return fallback, nil
	}
}

func (c *Console) Input(msg string) (string, error) {
	if _, err := color.New(color.Bold).Fprint(c.Out, msg); err != nil {
		return "", errors.Errorf("writing prompt: %w", err)
	}

	reader := bufio.NewReader(c.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
