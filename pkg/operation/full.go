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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewFullOperation creates the search, order and download flow
func NewFullOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &fullOperation{BaseOperation: base}, nil
}

// 📦 fullOperation runs every stage: search, confirm or trim, order,
// download, report.
type fullOperation struct {
	BaseOperation
}

func (op *fullOperation) Name() string { return "full" }

// 🏃 Execute runs the full flow
func (op *fullOperation) Execute(ctx context.Context) error {
	op.begin(ctx, op.Name())
	defer op.exportStage(context.WithoutCancel(ctx))

	maxImages, maxPerOrder, err := ParseMax(op.Params.Maximum)
	if err != nil {
		return err
	}

	recs, _, err := op.searchStage(ctx, maxImages)
	if err != nil {
		return err
	}
	op.current = recs

	if maxImages == 0 {
		// No cap given: the operator decides whether the result count is
		// worth ordering.
		proceed, err := op.Prompter.Confirm(fmt.Sprintf(
			"%d images found intersecting your AOI. Proceed with ordering?",
			recs.Count()), true)
		if err != nil {
			return errors.Errorf("confirming order: %w", err)
		}
		if !proceed {
			zerolog.Ctx(ctx).Info().Msg("process stopped by user")
			return nil
		}
	} else {
		zerolog.Ctx(ctx).Info().
			Int("max_images", maxImages).
			Msg("ordering and downloading the first images")
		recs.Trim(maxImages)
	}

	if err := op.checkpoint(ctx); err != nil {
		return err
	}

	orders, err := op.orderStage(ctx, recs, maxPerOrder)
	if err != nil {
		return err
	}

	if err := op.checkpoint(ctx); err != nil {
		return err
	}

	op.downloadStage(ctx, orders, recs)
	op.report(ctx, recs)
	return nil
}
