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

package record

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/eodl/pkg/batch"
	"github.com/walteh/eodl/pkg/query"
	"github.com/walteh/eodl/pkg/rapi"
)

// resolveChunkSize caps how many sequence ids go into one lookup query.
const resolveChunkSize = 25

// 🔍 ResolveRows resolves catalog-UI CSV rows to full catalog records.
// Rows are grouped per collection; rows carrying a record id are resolved in
// chunks through Sequence Id queries, rows carrying only an order key are
// resolved one at a time. A row resolving to zero or more than one catalog
// record is skipped with a warning. Matches from every chunk are retained.
func ResolveRows(ctx context.Context, client rapi.Client, colls map[string]rapi.Collection, rows []map[string]string) []rapi.Raw {
	logger := zerolog.Ctx(ctx)

	// Group rows per collection, preserving order.
	grouped := map[string][]map[string]string{}
	var order []string
	for _, row := range rows {
		coll := rowCollection(row)
		if _, ok := grouped[coll]; !ok {
			order = append(order, coll)
		}
		grouped[coll] = append(grouped[coll], row)
	}

	var all []rapi.Raw
	for _, coll := range order {
		collID, ok := rapi.ResolveCollection(colls, coll)
		if !ok {
			logger.Warn().Str("collection", coll).Msg("unknown collection in CSV, skipping its rows")
			continue
		}

		for _, chunk := range batch.Chunk(grouped[coll], resolveChunkSize) {
			var seqIDs []string
			for _, row := range chunk {
				id := RowRecordID(row)
				if id != "" {
					seqIDs = append(seqIDs, id)
					continue
				}
				if rec, ok := resolveOrderKey(ctx, client, collID, row); ok {
					all = append(all, rec)
				}
			}
			if len(seqIDs) == 0 {
				continue
			}

			filters := map[string]query.Clause{
				"Sequence Id": {Op: "=", Values: seqIDs},
			}
			if collID == "NAPL" {
				filters["Price"] = query.Clause{Op: "=", Values: []string{"true"}}
			}

			res, err := searchRaw(ctx, client, rapi.SearchQuery{Collection: collID, Filters: filters})
			if err != nil {
				logger.Warn().Err(err).Str("collection", collID).Msg("record id lookup failed, skipping chunk")
				continue
			}
			if len(res) == 0 {
				logger.Warn().Str("collection", collID).Msg("no images could be found for chunk, skipping")
				continue
			}
			all = append(all, res...)
		}
	}
	return all
}

// resolveOrderKey runs the secondary lookup for a row identified only by an
// order key. At most one catalog match is accepted.
func resolveOrderKey(ctx context.Context, client rapi.Client, collID string, row map[string]string) (rapi.Raw, bool) {
	logger := zerolog.Ctx(ctx)

	key := ""
	for k, v := range row {
		if strings.ToLower(k) == "order key" {
			key = v
		}
	}
	if key == "" {
		logger.Warn().
			Str("result_number", row["result number"]).
			Msg("cannot determine record id for CSV row, skipping")
		return nil, false
	}

	res, err := searchRaw(ctx, client, rapi.SearchQuery{
		Collection: collID,
		Filters:    map[string]query.Clause{"Order Key": {Op: "=", Values: []string{key}}},
	})
	if err != nil {
		logger.Warn().Err(err).Str("order_key", key).Msg("order key lookup failed, skipping row")
		return nil, false
	}
	if len(res) != 1 {
		logger.Warn().
			Str("order_key", key).
			Int("matches", len(res)).
			Msg("order key did not resolve to exactly one record, skipping row")
		return nil, false
	}
	return res[0], true
}

func searchRaw(ctx context.Context, client rapi.Client, q rapi.SearchQuery) ([]rapi.Raw, error) {
	handle, err := client.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return handle.Records(ctx)
}

func rowCollection(row map[string]string) string {
	for k, v := range row {
		switch strings.ToLower(k) {
		case "collectionid", "collection id", "collection":
			if v != "" {
				return v
			}
		}
	}
	return ""
}
