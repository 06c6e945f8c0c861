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
	"github.com/walteh/eodl/pkg/rapi"
)

// StatusAvailable is the single status the catalog reports for a
// downloadable order item. Every other status is a failure for reporting
// purposes, but the status string itself is preserved verbatim.
const StatusAvailable = "AVAILABLE_FOR_DOWNLOAD"

// 📥 DownloadPath is one downloaded component file of a record.
type DownloadPath struct {
	LocalDestination string
	URL              string
}

// downloadFields are the outcome fields copied onto the matched record.
var downloadFields = []string{
	"dateSubmitted", "userDisplayName", "status", "orderStatus",
	"orderMessage", "statusMessage", "downloaded", "downloadPaths", "priority",
}

// 📥 UpdateDownloads annotates records with their download outcomes,
// matched by record id. Records are never removed, only annotated; a record
// whose download failed keeps the failure status for the final report.
func (s *Set) UpdateDownloads(outcomes []rapi.Raw) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range outcomes {
		rec := s.byID[str(item["recordId"])]
		if rec == nil {
			continue
		}

		itemID := item["itemId"]
		if itemID == nil {
			itemID = item["ParentItemId"]
		}
		rec.set("itemId", itemID)

		for _, f := range downloadFields {
			if v, ok := item[f]; ok {
				rec.set(f, v)
			}
		}
		if params, ok := item["parameters"].(map[string]any); ok {
			for k, v := range params {
				rec.set(k, v)
			}
		}
	}
}

// 📥 DownloadPaths returns the downloaded component files of a record.
// Multiple destination/URL pairs per record are all retained.
func (r *Record) DownloadPaths() []DownloadPath {
	var out []DownloadPath
	switch paths := r.Metadata["downloadPaths"].(type) {
	case []DownloadPath:
		return paths
	case []any:
		for _, p := range paths {
			m, ok := p.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, DownloadPath{
				LocalDestination: str(m["local_destination"]),
				URL:              str(m["url"]),
			})
		}
	case []rapi.Raw:
		for _, m := range paths {
			out = append(out, DownloadPath{
				LocalDestination: str(m["local_destination"]),
				URL:              str(m["url"]),
			})
		}
	}
	return out
}

// ✅ Downloaded reports whether the record reached the available status.
func (r *Record) Downloaded() bool {
	return str(r.Metadata["status"]) == StatusAvailable
}

// 📊 SplitByDownload partitions records into downloaded and failed, in
// order. Records never touched by a download stage land in failed with
// whatever status they carry.
func (s *Set) SplitByDownload() (succeeded, failed []*Record) {
	for _, r := range s.Records() {
		if r.Downloaded() {
			succeeded = append(succeeded, r)
		} else {
			failed = append(failed, r)
		}
	}
	return succeeded, failed
}
