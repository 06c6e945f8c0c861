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

	"github.com/rs/zerolog"
)

// 📦 NewDownloadAOIOperation creates the download-from-AOI flow
func NewDownloadAOIOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &downloadAOIOperation{BaseOperation: base}, nil
}

// 📦 downloadAOIOperation searches an AOI, then downloads from orders that
// already exist for the matched records. New orders are only placed if the
// operator opts in when none are found.
type downloadAOIOperation struct {
	BaseOperation
}

func (op *downloadAOIOperation) Name() string { return "download-aoi" }

// 🏃 Execute runs the download-aoi flow
func (op *downloadAOIOperation) Execute(ctx context.Context) error {
	op.begin(ctx, op.Name())
	defer op.exportStage(context.WithoutCancel(ctx))

	recs, _, err := op.searchStage(ctx, 0)
	if err != nil {
		return err
	}
	op.current = recs

	if err := op.checkpoint(ctx); err != nil {
		return err
	}

	orders, err := op.lookupStage(ctx, recs)
	if err != nil {
		return err
	}
	if orders.CountItems() == 0 {
		// Terminal non-error exit: no existing orders and the operator
		// declined (or silent mode defaulted) to place new ones.
		zerolog.Ctx(ctx).Info().Msg("no orders to download, process ended")
		return nil
	}

	if err := op.checkpoint(ctx); err != nil {
		return err
	}

	op.downloadStage(ctx, orders, recs)
	op.report(ctx, recs)
	return nil
}
