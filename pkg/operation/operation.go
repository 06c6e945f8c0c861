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

// Package operation sequences the pipeline stages into the supported
// flows: searching the catalog, ordering matched images, downloading
// ordered items and reporting the outcome.
package operation

import (
	"context"
	"time"

	"github.com/walteh/eodl/pkg/config"
	"github.com/walteh/eodl/pkg/log"
	"github.com/walteh/eodl/pkg/prompt"
	"github.com/walteh/eodl/pkg/rapi"
	"github.com/walteh/eodl/pkg/record"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is one runnable pipeline flow.
type Operation interface {
	// Name returns the flow name.
	Name() string
	// Execute runs the flow to completion or to a fatal error. Current
	// results are exported best-effort on every exit path, including
	// cancellation and fatal errors.
	Execute(ctx context.Context) error
}

// 🔧 Params carries the user's request for a single run.
type Params struct {
	// Collections are collection ids, titles or title fragments.
	Collections []string
	// Filters is the raw comma-separated filter text, translated per
	// collection.
	Filters string
	// Dates is the raw date text: a relative interval or explicit ranges.
	Dates string
	// AOI is the area-of-interest geometry, applied as an INTERSECTS
	// feature on every search.
	AOI string
	// Maximum is "<maxImages>[:<maxItemsPerOrder>]".
	Maximum string
	// Priority is the order priority level.
	Priority string
	// Input is the CSV path for the CSV-driven flows.
	Input string
}

// 🔧 Options contains the collaborators an operation needs
type Options struct {
	// Config is the loaded eodl configuration
	Config *config.Config
	// Client is the catalog service client
	Client rapi.Client
	// Prompter answers the interactive decision points
	Prompter prompt.Prompter
	// Console is the user-facing report writer, optional
	Console *log.Logger
	// Params is the user's request
	Params Params
	// Now overrides the clock, for tests
	Now func() time.Time
}

// 🏗️ BaseOperation holds the shared collaborators and the run state
type BaseOperation struct {
	Config   *config.Config
	Client   rapi.Client
	Prompter prompt.Prompter
	Console  *log.Logger
	Params   Params

	now   func() time.Time
	stamp string

	// current is whatever record set has accumulated so far; it is what
	// gets exported on any exit, clean or not.
	current *record.Set
}

// 🏭 NewBaseOperation creates the shared base for a flow
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.Client == nil {
		return BaseOperation{}, errors.Errorf("client is required")
	}
	if opts.Prompter == nil {
		return BaseOperation{}, errors.Errorf("prompter is required")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return BaseOperation{
		Config:   opts.Config,
		Client:   opts.Client,
		Prompter: opts.Prompter,
		Console:  opts.Console,
		Params:   opts.Params,
		now:      now,
	}, nil
}
