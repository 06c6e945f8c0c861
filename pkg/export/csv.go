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

// Package export writes the per-run results CSV and the geospatial
// projection handed to external geo tooling.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/eodl/pkg/rapi"
	"github.com/walteh/eodl/pkg/record"
	"gitlab.com/tozd/go/errors"
)

// 📤 Exporter writes run artifacts under the results directory.
type Exporter struct {
	// ResultsDir is where results CSVs land. Created on demand.
	ResultsDir string

	// ExcludeFields holds doublestar patterns; matching metadata fields are
	// dropped from the CSV. The identifying columns are never dropped.
	ExcludeFields []string
}

// 📝 ExportResults writes the record set to <stamp>_Results.csv and returns
// the file path. Columns follow the set's canonical field order.
func (e *Exporter) ExportResults(ctx context.Context, recs *record.Set, stamp string) (string, error) {
	logger := zerolog.Ctx(ctx)

	if recs == nil || recs.Count() == 0 {
		logger.Debug().Msg("nothing to export")
		return "", nil
	}

	if err := os.MkdirAll(e.ResultsDir, 0755); err != nil {
		return "", errors.Errorf("creating results directory: %w", err)
	}

	path := filepath.Join(e.ResultsDir, fmt.Sprintf("%s_Results.csv", stamp))
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Errorf("creating results file: %w", err)
	}
	defer f.Close()

	header := e.filterFields(ctx, recs.SortedFieldOrder())

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", errors.Errorf("writing header: %w", err)
	}

	for _, rec := range recs.Records() {
		row := make([]string, len(header))
		for i, field := range header {
			if v := rec.GetMetadata(field); v != nil {
				row[i] = rapi.Str(v)
			}
		}
		if err := w.Write(row); err != nil {
			return "", errors.Errorf("writing record %s: %w", rec.RecordID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Errorf("flushing results file: %w", err)
	}

	logger.Info().Str("path", path).Int("records", recs.Count()).Msg("results exported")
	return path, nil
}

// identity columns survive any exclude pattern.
var keepAlways = map[string]bool{
	"recordId":     true,
	"collectionId": true,
	"orderId":      true,
	"itemId":       true,
}

func (e *Exporter) filterFields(ctx context.Context, fields []string) []string {
	if len(e.ExcludeFields) == 0 {
		return fields
	}
	logger := zerolog.Ctx(ctx)

	var out []string
	for _, f := range fields {
		if keepAlways[f] || !e.excluded(ctx, f) {
			out = append(out, f)
		} else {
			logger.Debug().Str("field", f).Msg("field excluded from export")
		}
	}
	return out
}

func (e *Exporter) excluded(ctx context.Context, field string) bool {
	for _, pattern := range e.ExcludeFields {
		matched, err := doublestar.Match(pattern, field)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Err(err).Msg("bad exclude pattern")
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
