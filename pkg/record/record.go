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

// Package record holds the catalog record model: single records, the
// deduplicated ordered record set, and the download annotations merged onto
// records as the pipeline advances.
package record

import (
	"strings"

	"github.com/walteh/eodl/pkg/rapi"
)

// 📄 Record is one catalog item. Records are created by ingestion and then
// only annotated: a record that fails ordering or downloading keeps its
// failure status instead of being removed, so the final report is
// exhaustive.
type Record struct {
	RecordID     string
	CollectionID string

	// Metadata carries every field seen for this record, including the
	// identifying ones. fields preserves first-seen key order for export.
	Metadata map[string]any
	fields   []string
}

// 🏭 FromRaw builds a Record from a raw RAPI record map. Nested metadata
// pairs are flattened to camelCase keys; the geometry is kept as-is.
func FromRaw(raw rapi.Raw) *Record {
	rec := &Record{Metadata: map[string]any{}}
	for k, v := range raw {
		switch k {
		case "metadata2":
			// duplicate of the metadata pair list, skip
		case "metadata":
			pairs, ok := v.([]any)
			if !ok {
				rec.set(k, v)
				continue
			}
			for _, p := range pairs {
				pair, ok := p.([]any)
				if !ok || len(pair) < 2 {
					continue
				}
				rec.set(toCamelCase(str(pair[0])), pair[1])
			}
		default:
			rec.set(k, v)
		}
	}
	rec.RecordID = str(rec.Metadata["recordId"])
	rec.CollectionID = str(rec.Metadata["collectionId"])
	return rec
}

// 🏭 FromRow builds a Record from a previously exported CSV row. The
// identifying column may be any of the accepted record-id variants.
func FromRow(row map[string]string) *Record {
	rec := &Record{Metadata: map[string]any{}}
	for k, v := range row {
		rec.set(k, v)
	}
	rec.RecordID = RowRecordID(row)
	rec.CollectionID = str(firstOf(rec.Metadata, "collectionId", "collection id"))
	return rec
}

// 🔍 RowRecordID finds the identifying value in a CSV row, checking the
// accepted column-name variants case-insensitively. Empty when absent.
func RowRecordID(row map[string]string) string {
	for k, v := range row {
		switch strings.ToLower(k) {
		case "sequence id", "record id", "recordid":
			if v != "" {
				return v
			}
		}
	}
	return ""
}

// Set stores a metadata value, tracking first-seen key order.
func (r *Record) set(key string, val any) {
	if _, ok := r.Metadata[key]; !ok {
		r.fields = append(r.fields, key)
	}
	r.Metadata[key] = val
}

// 📝 SetMetadata stores a metadata value on the record.
func (r *Record) SetMetadata(key string, val any) {
	r.set(key, val)
}

// 🔍 GetMetadata returns a metadata value, or nil when absent.
func (r *Record) GetMetadata(key string) any {
	return r.Metadata[key]
}

// merge folds later metadata onto the record; later values win.
func (r *Record) merge(other *Record) {
	for _, k := range other.fields {
		r.set(k, other.Metadata[k])
	}
}

// Fields returns the metadata keys in first-seen order.
func (r *Record) Fields() []string {
	return r.fields
}

// toCamelCase converts a spaced field title ("Beam Mnemonic") into the
// camelCase metadata key form ("beamMnemonic").
func toCamelCase(in string) string {
	words := strings.Fields(strings.TrimSpace(in))
	if len(words) == 0 {
		return in
	}
	out := strings.ToLower(words[0])
	for _, w := range words[1:] {
		if w == "" {
			continue
		}
		out += strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return out
}

// str keeps numeric ids in digit form, see rapi.Str.
func str(v any) string {
	return rapi.Str(v)
}

func firstOf(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}
