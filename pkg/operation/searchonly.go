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

// 📦 NewSearchOnlyOperation creates the search-only flow
func NewSearchOnlyOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &searchOnlyOperation{BaseOperation: base}, nil
}

// 📦 searchOnlyOperation searches and exports, nothing else.
type searchOnlyOperation struct {
	BaseOperation
}

func (op *searchOnlyOperation) Name() string { return "search-only" }

// 🏃 Execute runs the search-only flow
func (op *searchOnlyOperation) Execute(ctx context.Context) error {
	op.begin(ctx, op.Name())
	defer op.exportStage(context.WithoutCancel(ctx))

	maxImages, _, err := ParseMax(op.Params.Maximum)
	if err != nil {
		return err
	}

	recs, _, err := op.searchStage(ctx, maxImages)
	if err != nil {
		return err
	}
	op.current = recs

	if op.Console != nil {
		op.Console.Successf("%d images found intersecting your AOI", recs.Count())
	}
	return nil
}
