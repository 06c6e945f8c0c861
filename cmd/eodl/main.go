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
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/walteh/eodl/cmd/eodl/commands"
	"github.com/walteh/eodl/cmd/eodl/opts"
	"github.com/walteh/eodl/pkg/log"
)

func main() {
	// An interrupt cancels the context; operations observe it between
	// stages and export whatever results they have before exiting.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Filled in once flags are parsed.
	ro := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "eodl",
		Short: "Search, order and download imagery from the EODMS catalog",
		Long: `eodl runs the EODMS search, order and download pipeline.
Each subcommand is one flow; every flow exports a results CSV of
whatever it accumulated, even when interrupted or failed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging()
			cmd.SetContext(logger.WithContext(cmd.Context()))

			built, err := newRootOpts(cmd.Context())
			if err != nil {
				return err
			}
			*ro = *built
			return nil
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewFullCmd(ro),
		commands.NewOrderCSVCmd(ro),
		commands.NewDownloadAOICmd(ro),
		commands.NewDownloadOnlyCmd(ro),
		commands.NewSearchOnlyCmd(ro),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.NewUserLogger(ctx).LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
