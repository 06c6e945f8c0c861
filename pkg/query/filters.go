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

// Package query translates the user's free-text filters and dates into the
// canonical form the RAPI expects for each collection.
package query

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// 🎯 Clause is one canonical filter: an operator and its OR-set of values.
type Clause struct {
	Op     string
	Values []string
}

// operators holds the filter operator vocabulary, longest first so that
// multi-character operators win the scan (<= before < and =).
var operators = []string{
	" STARTS WITH ",
	" CONTAINED BY ",
	" DISJOINT WITH ",
	" ENDS WITH ",
	" INTERSECTS ",
	" CONTAINS ",
	" CROSSES ",
	" OVERLAPS ",
	" TOUCHES ",
	" WITHIN ",
	" LIKE ",
	"<>",
	"<=",
	">=",
	"=",
	"<",
	">",
}

// 🔍 splitEntry finds the operator in a single filter entry and splits the
// entry around it. The entry must already be upper-cased.
func splitEntry(entry string) (key, op, val string, ok bool) {
	bestIdx := -1
	for _, o := range operators {
		idx := strings.Index(entry, o)
		if idx < 0 {
			continue
		}
		if bestIdx < 0 {
			bestIdx = idx
			op = o
			key = entry[:idx]
			val = entry[idx+len(o):]
		}
	}
	if bestIdx < 0 {
		return "", "", "", false
	}
	return key, op, val, true
}

// 🔄 Translate converts a comma-separated filter string into canonical
// clauses for the given collection. Entries with an unknown key, a missing
// operator or an empty value are skipped with a warning; a bad entry never
// fails the whole batch. The NAPL open-data collection always carries a
// "Price = true" clause regardless of user filters.
func Translate(ctx context.Context, raw string, collectionID string) map[string]Clause {
	logger := zerolog.Ctx(ctx)

	out := map[string]Clause{}

	if collectionID == "NAPL" {
		// NAPL is open data: restrict every query to free products.
		out["Price"] = Clause{Op: "=", Values: []string{"true"}}
	}

	if strings.TrimSpace(raw) == "" {
		return out
	}

	fields := FieldsFor(collectionID)

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.ToUpper(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}

		key, op, val, ok := splitEntry(entry)
		if !ok {
			logger.Warn().Str("filter", entry).Msg("filter entered incorrectly, skipping")
			continue
		}

		key = strings.TrimSpace(key)
		field, ok := fields[key]
		if !ok {
			logger.Warn().
				Str("filter", key).
				Str("collection", collectionID).
				Msg("filter is not available for collection, skipping")
			continue
		}

		val = strings.TrimSpace(val)
		val = strings.NewReplacer(`"`, "", `'`, "").Replace(val)
		if val == "" {
			logger.Warn().Str("filter", key).Msg("no value specified for filter, skipping")
			continue
		}

		out[field] = Clause{Op: strings.TrimSpace(op), Values: strings.Split(val, "|")}
	}

	return out
}

// 🔍 HasOperator reports whether the raw filter text contains at least one
// recognized operator. Used to validate user input before a query is built.
func HasOperator(raw string) bool {
	upper := strings.ToUpper(raw)
	for _, o := range operators {
		if strings.Contains(upper, o) {
			return true
		}
	}
	return false
}
