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

package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📖 ReadRows reads a CSV file into one map per row, keyed by the header
// row. Both EODMS UI exports and previous-session results files pass
// through here.
func ReadRows(path string) ([]map[string]string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return nil, errors.Errorf("input file %s is not a CSV file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening CSV file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	all, err := r.ReadAll()
	if err != nil {
		return nil, errors.Errorf("reading CSV file: %w", err)
	}
	if len(all) < 2 {
		return nil, errors.Errorf("CSV file %s has no data rows", path)
	}

	header := all[0]
	rows := make([]map[string]string, 0, len(all)-1)
	for _, rec := range all[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
