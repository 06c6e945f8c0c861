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

// NewDownloadAOICmd creates the download-from-AOI command
func NewDownloadAOICmd(ro *opts.RootOpts) *cobra.Command {
	var params operation.Params

	cmd := &cobra.Command{
		Use:   "download-aoi",
		Short: "Download existing orders for images matching an AOI",
		Long: `Download-aoi searches the given collections, then downloads from
orders that already exist for the matched images. When no existing
orders are found, you are asked whether to place new ones; in silent
mode the process ends after exporting the search results.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := operation.NewDownloadAOIOperation(ro.Operation(params))
			return run(cmd, ro, op, err)
		},
	}

	cmd.Flags().StringSliceVar(&params.Collections, "collections", nil, "collection ids or titles to search")
	cmd.Flags().StringVar(&params.Filters, "filters", "", "comma-separated filter expressions")
	cmd.Flags().StringVar(&params.Dates, "dates", "", "date ranges or a relative interval")
	cmd.Flags().StringVar(&params.AOI, "aoi", "", "area of interest geometry (WKT)")
	cmd.Flags().StringVar(&params.Priority, "priority", "", "priority for orders placed at the prompt")
	_ = cmd.MarkFlagRequired("collections")

	return cmd
}
