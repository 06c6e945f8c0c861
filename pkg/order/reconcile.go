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

package order

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/eodl/pkg/batch"
	"github.com/walteh/eodl/pkg/prompt"
	"github.com/walteh/eodl/pkg/rapi"
	"github.com/walteh/eodl/pkg/record"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// ErrNoneSubmitted is returned when a submission run places no orders at
// all. A single failed batch is not fatal; an empty final set is.
var ErrNoneSubmitted = errors.New("no orders were submitted successfully")

// 🔧 SubmitOptions configures a submission run.
type SubmitOptions struct {
	Priority string
	// MaxPerOrder caps the items per order call; zero means one call for
	// the whole set.
	MaxPerOrder int
	// Concurrency > 1 submits independent batches in parallel. Batches are
	// disjoint by construction, so reconciliation stays per-batch.
	Concurrency int
}

// 📤 Submit sends orders for every record, one order call per batch. A
// batch whose call fails or returns nothing is that batch's failure only;
// remaining batches still run. Returns ErrNoneSubmitted when the final set
// is empty.
func Submit(ctx context.Context, client rapi.Client, records *record.Set, opts SubmitOptions) (*Set, error) {
	logger := zerolog.Ctx(ctx)

	set := NewSet(records)
	chunks := batch.Chunk(records.RawPayload(), opts.MaxPerOrder)

	responses := make([][]rapi.Raw, len(chunks))

	submitOne := func(i int) {
		res, err := client.Order(ctx, chunks[i], opts.Priority)
		if err != nil {
			logger.Warn().Err(err).Int("batch", i).Int("records", len(chunks[i])).
				Msg("order submission failed for batch")
			return
		}
		responses[i] = res
	}

	if opts.Concurrency > 1 {
		var g errgroup.Group
		g.SetLimit(opts.Concurrency)
		for i := range chunks {
			i := i
			g.Go(func() error {
				submitOne(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range chunks {
			submitOne(i)
		}
	}

	// Reconcile in batch order so the set is deterministic regardless of
	// submission interleaving.
	for _, res := range responses {
		set.IngestResults(res)
	}

	if set.CountItems() == 0 {
		return set, errors.Errorf("submitting %d records: %w", records.Count(), ErrNoneSubmitted)
	}

	logger.Info().
		Int("orders", set.Count()).
		Int("items", set.CountItems()).
		Msg("orders submitted")
	return set, nil
}

// 🔎 LookupExisting fetches the orders already placed for the given
// records. When none exist the prompter decides whether to place new orders
// now; a declined prompt (which is the silent-mode default) returns an
// empty set with no error, which callers treat as a terminal, non-error
// exit after exporting current results.
func LookupExisting(ctx context.Context, client rapi.Client, records *record.Set, prompter prompt.Prompter, priority string) (*Set, error) {
	logger := zerolog.Ctx(ctx)

	payload := records.RawPayload()

	res, err := client.GetOrdersByRecords(ctx, payload)
	if err != nil {
		return nil, errors.Errorf("fetching existing orders: %w", err)
	}

	set := NewSet(records)
	set.IngestResults(res)

	if set.CountItems() > 0 {
		logger.Info().Int("items", set.CountItems()).Msg("existing orders found")
		return set, nil
	}

	logger.Info().Msg("no existing orders could be found")

	ok, err := prompter.Confirm("No existing orders could be found for the given images. Would you like to order the images?", false)
	if err != nil {
		return nil, errors.Errorf("prompting for new orders: %w", err)
	}
	if !ok {
		return set, nil
	}

	orderRes, err := client.Order(ctx, payload, priority)
	if err != nil {
		return nil, errors.Errorf("placing new orders: %w", err)
	}
	set.IngestResults(orderRes)
	return set, nil
}
