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

package operation

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/eodl/pkg/export"
	"github.com/walteh/eodl/pkg/log"
	"github.com/walteh/eodl/pkg/order"
	"github.com/walteh/eodl/pkg/query"
	"github.com/walteh/eodl/pkg/rapi"
	"github.com/walteh/eodl/pkg/record"
	"gitlab.com/tozd/go/errors"
)

// runStamp is the timestamp format used for result file names.
const runStamp = "20060102_150405"

// begin stamps the run and logs its start.
func (op *BaseOperation) begin(ctx context.Context, name string) {
	start := op.now()
	op.stamp = start.Format(runStamp)
	zerolog.Ctx(ctx).Info().
		Str("operation", name).
		Time("start", start).
		Msg("process started")
	if op.Console != nil {
		op.Console.Header(name)
	}
}

// checkpoint is the between-stage cancellation check. Cancellation is
// never observed inside a batch, only here.
func (op *BaseOperation) checkpoint(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Errorf("pipeline interrupted: %w", err)
	}
	return nil
}

// 🔍 searchStage queries every requested collection and ingests all
// results into one record set. Unknown collections and failed searches are
// per-collection warnings; zero usable collections or zero total records
// is fatal.
func (op *BaseOperation) searchStage(ctx context.Context, maxImages int) (*record.Set, []string, error) {
	logger := zerolog.Ctx(ctx)

	dates, err := query.ParseDatesAt(op.Params.Dates, op.now())
	if err != nil {
		return nil, nil, errors.Errorf("parsing dates: %w", err)
	}

	colls, err := op.Client.GetCollections(ctx)
	if err != nil {
		return nil, nil, errors.Errorf("getting collections: %w", err)
	}

	maxResults := maxImages
	if maxResults <= 0 {
		maxResults = op.Config.MaxResults
	}

	if op.Console != nil {
		op.Console.StartStage(ctx, log.StageOperation{
			Name:   "searching",
			Detail: strings.Join(op.Params.Collections, ", "),
		})
		defer op.Console.EndStage(ctx)
	}

	var resolved []string
	var all []rapi.Raw
	for _, name := range op.Params.Collections {
		collID, ok := rapi.ResolveCollection(colls, name)
		if !ok {
			logger.Warn().Str("collection", name).Msg("unknown collection, skipping")
			continue
		}
		resolved = append(resolved, collID)

		q := rapi.SearchQuery{
			Collection: collID,
			Filters:    query.Translate(ctx, op.Params.Filters, collID),
			Dates:      dates,
			MaxResults: maxResults,
		}
		if op.Params.AOI != "" {
			q.Features = []rapi.SpatialFeature{{Op: "INTERSECTS", Geometry: op.Params.AOI}}
		}

		res, err := op.Client.Search(ctx, q)
		if err != nil {
			logger.Warn().Err(err).Str("collection", collID).Msg("search failed for collection")
			continue
		}
		records, err := res.Records(ctx)
		if err != nil {
			logger.Warn().Err(err).Str("collection", collID).Msg("fetching search results failed")
			continue
		}
		all = append(all, records...)
	}

	if len(resolved) == 0 {
		return nil, nil, errors.Errorf("resolving collections %v: %w", op.Params.Collections, ErrNoUsableInput)
	}

	set := record.NewSet()
	set.IngestRaw(all)
	if set.Count() == 0 {
		return nil, nil, errors.Errorf("searching collections %v: %w", resolved, ErrEmptyResult)
	}

	logger.Info().Int("images", set.Count()).Msg("images returned from search")
	return set, resolved, nil
}

// 📑 ingestOrderCSV ingests an EODMS UI CSV export, resolving every row to
// a catalog record through the search capability.
func (op *BaseOperation) ingestOrderCSV(ctx context.Context) (*record.Set, error) {
	rows, err := export.ReadRows(op.Params.Input)
	if err != nil {
		return nil, errors.Errorf("reading order CSV: %w", err)
	}

	colls, err := op.Client.GetCollections(ctx)
	if err != nil {
		return nil, errors.Errorf("getting collections: %w", err)
	}

	set := record.NewSet()
	set.IngestRaw(record.ResolveRows(ctx, op.Client, colls, rows))
	if set.Count() == 0 {
		return nil, errors.Errorf("resolving %d CSV rows: %w", len(rows), ErrNoUsableInput)
	}
	return set, nil
}

// 📑 ingestPrevCSV ingests a previous session's results CSV; rows carry
// their record ids directly.
func (op *BaseOperation) ingestPrevCSV(ctx context.Context) (*record.Set, error) {
	rows, err := export.ReadRows(op.Params.Input)
	if err != nil {
		return nil, errors.Errorf("reading results CSV: %w", err)
	}

	set := record.NewSet()
	set.IngestRows(ctx, rows)
	if set.Count() == 0 {
		return nil, errors.Errorf("ingesting %d CSV rows: %w", len(rows), ErrNoUsableInput)
	}
	return set, nil
}

// 📤 orderStage submits orders for the whole set, batching per the cap.
func (op *BaseOperation) orderStage(ctx context.Context, recs *record.Set, maxPerOrder int) (*order.Set, error) {
	if op.Console != nil {
		op.Console.StartStage(ctx, log.StageOperation{
			Name:   "ordering",
			Detail: fmt.Sprintf("%d records", recs.Count()),
		})
		defer op.Console.EndStage(ctx)
	}

	orders, err := order.Submit(ctx, op.Client, recs, order.SubmitOptions{
		Priority:    NormalizePriority(ctx, op.Params.Priority),
		MaxPerOrder: maxPerOrder,
	})
	if err != nil {
		return nil, err
	}

	if op.Console != nil {
		for _, o := range orders.Orders() {
			for _, item := range o.Items {
				status := rapi.Str(item.Metadata["status"])
				if status == "" {
					status = "SUBMITTED"
				}
				collID := ""
				if rec := recs.Get(item.RecordID); rec != nil {
					collID = rec.CollectionID
				}
				op.Console.LogImageOperation(ctx, log.ImageOperation{
					RecordID:     item.RecordID,
					CollectionID: collID,
					OrderID:      o.OrderID,
					ItemID:       item.ItemID,
					Status:       status,
				})
			}
		}
	}
	return orders, nil
}

// 🔎 lookupStage fetches existing orders for already-resolved records. An
// empty set with a nil error is a terminal, non-error exit for the caller.
func (op *BaseOperation) lookupStage(ctx context.Context, recs *record.Set) (*order.Set, error) {
	return order.LookupExisting(ctx, op.Client, recs, op.Prompter,
		NormalizePriority(ctx, op.Params.Priority))
}

// 📥 downloadStage downloads every order item and annotates the records
// with the outcomes. Nothing here is fatal: a download failure is reported,
// not escalated.
func (op *BaseOperation) downloadStage(ctx context.Context, orders *order.Set, recs *record.Set) {
	logger := zerolog.Ctx(ctx)

	items := orders.RawItems()
	if len(items) == 0 {
		logger.Info().Msg("no order items to download")
		return
	}

	if op.Console != nil {
		op.Console.StartStage(ctx, log.StageOperation{
			Name:   "downloading",
			Detail: fmt.Sprintf("%d items", len(items)),
		})
		defer op.Console.EndStage(ctx)
	}

	if err := os.MkdirAll(op.Config.Downloads, 0o755); err != nil {
		logger.Warn().Err(err).Str("dir", op.Config.Downloads).Msg("creating download folder failed")
		return
	}

	outcomes, err := op.Client.Download(ctx, items, op.Config.Downloads)
	if err != nil {
		logger.Warn().Err(err).Msg("download stage failed")
		return
	}
	recs.UpdateDownloads(outcomes)

	if op.Console != nil {
		for _, rec := range recs.Records() {
			op.Console.LogImageOperation(ctx, log.ImageOperation{
				RecordID:     rec.RecordID,
				CollectionID: rec.CollectionID,
				OrderID:      rapi.Str(rec.GetMetadata("orderId")),
				ItemID:       rapi.Str(rec.GetMetadata("itemId")),
				Status:       rapi.Str(rec.GetMetadata("status")),
				Failed:       !rec.Downloaded(),
			})
		}
	}
}

// 📊 exportStage writes the current record set to the results CSV and
// projects the geospatial features. Best-effort: failures are warnings,
// since export runs on the way out of every flow, including failed ones.
func (op *BaseOperation) exportStage(ctx context.Context) {
	logger := zerolog.Ctx(ctx)

	if op.current == nil || op.current.Count() == 0 {
		return
	}

	exporter := &export.Exporter{
		ResultsDir:    op.Config.Results,
		ExcludeFields: op.Config.ExcludeFields,
	}
	path, err := exporter.ExportResults(ctx, op.current, op.stamp)
	if err != nil {
		logger.Warn().Err(err).Msg("exporting results failed")
		return
	}
	logger.Info().Str("path", path).Msg("results exported")

	feats := export.ProjectFeatures(op.current)
	if op.Console != nil && len(feats) > 0 {
		lines := make([]log.GeometryLine, 0, len(feats))
		for _, f := range feats {
			lines = append(lines, log.GeometryLine{
				RecordID:     f.RecordID,
				CollectionID: f.CollectionID,
				WKT:          f.WKT,
			})
		}
		op.Console.GeometryReport(ctx, lines)
	}
	logger.Debug().Int("features", len(feats)).Msg("geospatial features projected")
}

// report prints the closing per-image download report.
func (op *BaseOperation) report(ctx context.Context, recs *record.Set) {
	if op.Console == nil || recs == nil {
		return
	}
	op.Console.DownloadReport(ctx, recs)
}
