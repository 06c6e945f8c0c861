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

	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 OperationRunner executes operations
type OperationRunner struct {
	async bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(async bool) *OperationRunner {
	return &OperationRunner{async: async}
}

// 🏃 Run executes an operation
func (r *OperationRunner) Run(ctx context.Context, op Operation) error {
	if r.async {
		return r.runAsync(ctx, op)
	}
	return op.Execute(ctx)
}

// ⚡ runAsync runs the operation off the calling goroutine, tying its
// lifetime to the group context so cancellation surfaces at the next
// between-stage checkpoint.
func (r *OperationRunner) runAsync(ctx context.Context, op Operation) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := op.Execute(gctx); err != nil {
			return errors.Errorf("executing %s operation: %w", op.Name(), err)
		}
		return nil
	})
	return g.Wait()
}
