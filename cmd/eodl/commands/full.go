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

// Package commands wires each pipeline flow to a cobra subcommand.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/eodl/cmd/eodl/opts"
	"github.com/walteh/eodl/pkg/log"
	"github.com/walteh/eodl/pkg/operation"
)

// run executes the operation and reports the outcome to the user.
func run(cmd *cobra.Command, ro *opts.RootOpts, op operation.Operation, err error) error {
	if err != nil {
		return err
	}
	if err := operation.NewRunner(ro.Async).Run(cmd.Context(), op); err != nil {
		ro.UserLogger.LogRunChange(log.RunChange{
			Type:      log.RunFailed,
			Operation: op.Name(),
			Error:     err,
		})
		return err
	}
	ro.UserLogger.LogRunChange(log.RunChange{
		Type:      log.RunCompleted,
		Operation: op.Name(),
	})
	return nil
}

// NewFullCmd creates the search, order and download command
func NewFullCmd(ro *opts.RootOpts) *cobra.Command {
	var params operation.Params

	cmd := &cobra.Command{
		Use:   "full",
		Short: "Search, order and download images",
		Long: `Full runs every stage of the pipeline:
1. Search the given collections with the AOI, filters and dates
2. Order the matched images (trimmed to the maximum, if given)
3. Download the ordered items
4. Report and export the results`,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := operation.NewFullOperation(ro.Operation(params))
			return run(cmd, ro, op, err)
		},
	}

	cmd.Flags().StringSliceVar(&params.Collections, "collections", nil, "collection ids or titles to search")
	cmd.Flags().StringVar(&params.Filters, "filters", "", "comma-separated filter expressions")
	cmd.Flags().StringVar(&params.Dates, "dates", "", "date ranges or a relative interval, e.g. \"24 hours\"")
	cmd.Flags().StringVar(&params.AOI, "aoi", "", "area of interest geometry (WKT)")
	cmd.Flags().StringVar(&params.Maximum, "maximum", "", "maximum images to order, optionally :<items per order>")
	cmd.Flags().StringVar(&params.Priority, "priority", "", "order priority: Low, Medium, High or Urgent")
	_ = cmd.MarkFlagRequired("collections")

	return cmd
}
