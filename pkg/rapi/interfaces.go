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

// Package rapi defines the interface to the EODMS RAPI catalog service:
// searching, ordering and downloading. The pipeline core consumes these
// interfaces only; the HTTP implementation lives in client.go.
package rapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/walteh/eodl/pkg/query"
)

// 📄 Raw is a single untyped record as returned by the RAPI.
type Raw = map[string]any

// 🔤 Str renders a raw value as text. Record and order ids arrive as JSON
// numbers (float64 after decoding) but circulate as strings once ingested
// from a CSV; both forms must render to the same digits or cross-source
// matching breaks. fmt.Sprint alone switches to scientific notation at
// 1e6, well inside the id range.
func Str(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// 🌐 SpatialFeature pairs a spatial operator with a geometry (WKT or a
// parsed AOI feature) for a search request.
type SpatialFeature struct {
	Op       string
	Geometry string
}

// 🔍 SearchQuery is one search request against a single collection.
type SearchQuery struct {
	Collection string
	Filters    map[string]query.Clause
	Features   []SpatialFeature
	Dates      []query.DateRange
	MaxResults int
}

// 📚 Collection describes one catalog collection.
type Collection struct {
	ID      string
	Title   string
	Aliases []string
}

// 📈 SearchResults is the opaque handle for a submitted search.
type SearchResults interface {
	// Records returns the raw record maps for the search, waiting for the
	// catalog to finish paging if necessary.
	Records(ctx context.Context) ([]Raw, error)
}

// 🌐 Client is the capability set the pipeline needs from the catalog
// service. All failures returned from a Client are transport failures from
// the core's point of view: never retried, confined to the batch that
// triggered them.
type Client interface {
	// Search submits a search and returns a handle for its results.
	Search(ctx context.Context, q SearchQuery) (SearchResults, error)
	// GetCollections returns all collections available to the session.
	GetCollections(ctx context.Context) (map[string]Collection, error)
	// Order submits an order for the given record projections.
	Order(ctx context.Context, records []Raw, priority string) ([]Raw, error)
	// GetOrdersByRecords fetches existing orders covering the given records.
	GetOrdersByRecords(ctx context.Context, records []Raw) ([]Raw, error)
	// Download fetches the files for the given order items into destDir and
	// returns one outcome map per item.
	Download(ctx context.Context, items []Raw, destDir string) ([]Raw, error)
}

// 🔍 ResolveCollection resolves user input (a collection id substring or a
// title fragment) to the full collection id. Returns false when nothing
// matches.
func ResolveCollection(colls map[string]Collection, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if _, ok := colls[name]; ok {
		return name, true
	}
	for id, c := range colls {
		if strings.Contains(id, name) || strings.Contains(c.Title, name) {
			return id, true
		}
		for _, alias := range c.Aliases {
			if strings.Contains(alias, name) {
				return id, true
			}
		}
	}
	return "", false
}
