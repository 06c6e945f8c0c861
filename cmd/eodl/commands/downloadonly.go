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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/eodl/cmd/eodl/opts"
	"github.com/walteh/eodl/pkg/operation"
)

// NewDownloadOnlyCmd creates the download-only command
func NewDownloadOnlyCmd(ro *opts.RootOpts) *cobra.Command {
	var params operation.Params

	cmd := &cobra.Command{
		Use:   "download-only",
		Short: "Download existing orders from a previous session's results CSV",
		Long: `Download-only reads the results CSV of a previous run, looks up
the existing orders for its records and downloads them. No searching
and no new orders unless you opt in when none are found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := operation.NewDownloadOnlyOperation(ro.Operation(params))
			return run(cmd, ro, op, err)
		},
	}

	cmd.Flags().StringVar(&params.Input, "input", "", "path of the results CSV from a previous session")
	cmd.Flags().StringVar(&params.Priority, "priority", "", "priority for orders placed at the prompt")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
