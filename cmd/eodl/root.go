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
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/eodl/cmd/eodl/opts"
	"github.com/walteh/eodl/pkg/config"
	"github.com/walteh/eodl/pkg/log"
	"github.com/walteh/eodl/pkg/prompt"
	"github.com/walteh/eodl/pkg/rapi"
	"gitlab.com/tozd/go/errors"
)

const defaultConfigFile = ".eodl.yaml"

var (
	// Flags
	configFile string
	debug      bool
	silent     bool
	async      bool
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	if silent {
		cfg.Silent = true
	}

	client := rapi.NewClient(rapi.Options{
		Domain:       cfg.Domain,
		Username:     cfg.Credentials.Username,
		Password:     cfg.Credentials.Password,
		QueryTimeout: cfg.QueryTimeout(),
		OrderTimeout: cfg.OrderTimeout(),
		PageSize:     cfg.MaxResults,
	})

	var prompter prompt.Prompter
	if cfg.Silent {
		prompter = prompt.Silent{}
	} else {
		prompter = prompt.NewConsole()
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return &opts.RootOpts{
		Config:     cfg,
		Client:     client,
		Prompter:   prompter,
		Console:    log.New(os.Stdout, level),
		UserLogger: log.NewUserLogger(ctx),
		Async:      async,
	}, nil
}

// loadConfig reads the config file; an absent default file is not an
// error, it just means env credentials and built-in defaults.
func loadConfig(ctx context.Context) (*config.Config, error) {
	if _, err := os.Stat(configFile); os.IsNotExist(err) && configFile == defaultConfigFile {
		cfg := &config.Config{}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.Load(ctx, configFile)
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", defaultConfigFile, "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&silent, "silent", "s", false, "never prompt, use defaults")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "run the operation asynchronously")
}

// setupLogging configures zerolog based on flags
func setupLogging() zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).Level(level).With().Timestamp().Logger()
	return logger
}
