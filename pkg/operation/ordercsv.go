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
)

// 📦 NewOrderCSVOperation creates the order-from-UI-CSV flow
func NewOrderCSVOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &orderCSVOperation{BaseOperation: base}, nil
}

// 📦 orderCSVOperation orders and downloads images listed in a CSV
// exported from the catalog's web UI. No searching beyond record-id
// resolution and no interactive confirmation.
type orderCSVOperation struct {
	BaseOperation
}

func (op *orderCSVOperation) Name() string { return "order-csv" }

// 🏃 Execute runs the order-csv flow
func (op *orderCSVOperation) Execute(ctx context.Context) error {
	op.begin(ctx, op.Name())
	defer op.exportStage(context.WithoutCancel(ctx))

	_, maxPerOrder, err := ParseMax(op.Params.Maximum)
	if err != nil {
		return err
	}

	recs, err := op.ingestOrderCSV(ctx)
	if err != nil {
		return err
	}
	op.current = recs

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
