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

package record

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/eodl/pkg/rapi"
)

// 📚 Set is an ordered sequence of Records deduplicated by record id.
// Ingesting the same id twice merges metadata (later wins) instead of
// duplicating the record. Mutations are guarded so that disjoint download
// batches may reconcile concurrently.
type Set struct {
	mu      sync.Mutex
	records []*Record
	byID    map[string]*Record
}

// 🏭 NewSet creates an empty record set.
func NewSet() *Set {
	return &Set{byID: map[string]*Record{}}
}

// 📥 IngestRaw adds raw RAPI records to the set, merging duplicates.
func (s *Set) IngestRaw(results []rapi.Raw) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range results {
		s.add(FromRaw(r))
	}
}

// 📥 IngestRows adds previous-session CSV rows to the set. Rows whose
// identity cannot be determined from the row itself are skipped with a
// warning; the order-key fallback lives in ResolveRows.
func (s *Set) IngestRows(ctx context.Context, rows []map[string]string) {
	logger := zerolog.Ctx(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range rows {
		rec := FromRow(row)
		if rec.RecordID == "" {
			logger.Warn().
				Str("result_number", row["result number"]).
				Msg("cannot determine record id for CSV row, skipping")
			continue
		}
		s.add(rec)
	}
}

func (s *Set) add(rec *Record) {
	if existing, ok := s.byID[rec.RecordID]; ok && rec.RecordID != "" {
		existing.merge(rec)
		return
	}
	s.records = append(s.records, rec)
	if rec.RecordID != "" {
		s.byID[rec.RecordID] = rec
	}
}

// 🔍 Get returns the record with the given id, or nil.
func (s *Set) Get(recordID string) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID[recordID]
}

// Records returns the records in ingestion order.
func (s *Set) Records() []*Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Record, len(s.records))
	copy(out, s.records)
	return out
}

// 🔢 Count returns the number of records in the set.
func (s *Set) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// 🔢 CountByCollection returns the number of records for one collection.
func (s *Set) CountByCollection(collectionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.records {
		if r.CollectionID == collectionID {
			n++
		}
	}
	return n
}

// Collections returns the collection ids present, in first-seen order.
func (s *Set) Collections() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, r := range s.records {
		if !seen[r.CollectionID] {
			seen[r.CollectionID] = true
			out = append(out, r.CollectionID)
		}
	}
	return out
}

// ✂️ Trim keeps only the first max records, preserving original order.
func (s *Set) Trim(max int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if max < 0 || max >= len(s.records) {
		return
	}
	s.rebuild(s.records[:max])
}

// ✂️ TrimPerCollection keeps the first max records of each named
// collection, preserving each collection's original order.
func (s *Set) TrimPerCollection(max int, collections []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []*Record
	for _, c := range collections {
		n := 0
		for _, r := range s.records {
			if r.CollectionID != c {
				continue
			}
			if n >= max {
				break
			}
			kept = append(kept, r)
			n++
		}
	}
	s.rebuild(kept)
}

func (s *Set) rebuild(records []*Record) {
	s.records = records
	s.byID = make(map[string]*Record, len(records))
	for _, r := range records {
		if r.RecordID != "" {
			s.byID[r.RecordID] = r
		}
	}
}

// 📦 RawPayload produces the minimal projection the ordering and download
// capabilities need.
func (s *Set) RawPayload() []rapi.Raw {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]rapi.Raw, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, rapi.Raw{
			"recordId":     r.RecordID,
			"collectionId": r.CollectionID,
		})
	}
	return out
}

// Fields returns the union of all record fields in first-seen order.
func (s *Set) Fields() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, r := range s.records {
		for _, f := range r.fields {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	return out
}

// 📋 SortedFieldOrder returns the canonical export column order: recordId
// and collectionId first, then orderId and itemId when present, then all
// remaining fields in first-seen order.
func (s *Set) SortedFieldOrder() []string {
	fields := s.Fields()

	head := []string{"recordId", "collectionId"}
	for _, f := range []string{"orderId", "itemId"} {
		for _, have := range fields {
			if have == f {
				head = append(head, f)
				break
			}
		}
	}

	inHead := map[string]bool{}
	for _, f := range head {
		inHead[f] = true
	}

	out := head
	for _, f := range fields {
		if !inHead[f] {
			out = append(out, f)
		}
	}
	return out
}
