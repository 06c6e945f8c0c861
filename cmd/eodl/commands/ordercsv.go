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

// NewOrderCSVCmd creates the order-from-UI-CSV command
func NewOrderCSVCmd(ro *opts.RootOpts) *cobra.Command {
	var params operation.Params

	cmd := &cobra.Command{
		Use:   "order-csv",
		Short: "Order and download images listed in an EODMS UI CSV export",
		Long: `Order-csv ingests a CSV exported from the EODMS web UI,
resolves each row to a catalog record, then orders and downloads the
resolved images. Rows that cannot be resolved to exactly one record are
skipped with a warning.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := operation.NewOrderCSVOperation(ro.Operation(params))
			return run(cmd, ro, op, err)
		},
	}

	cmd.Flags().StringVar(&params.Input, "input", "", "path of the CSV file exported from the EODMS UI")
	cmd.Flags().StringVar(&params.Maximum, "maximum", "", "maximum items per order, as :<items per order>")
	cmd.Flags().StringVar(&params.Priority, "priority", "", "order priority: Low, Medium, High or Urgent")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
