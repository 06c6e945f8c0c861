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
	"strings"

	"github.com/walteh/eodl/pkg/rapi"
	"github.com/walteh/eodl/pkg/record"
)

// 🌐 Feature is the geometry-bearing projection of one record, handed to
// external geospatial tooling.
type Feature struct {
	RecordID     string
	CollectionID string
	WKT          string
}

// 🌐 ProjectFeatures extracts the geospatial projection of a record set.
// Records without usable geometry are skipped.
func ProjectFeatures(recs *record.Set) []Feature {
	var out []Feature
	for _, rec := range recs.Records() {
		wkt := featureWKT(rec)
		if wkt == "" {
			continue
		}
		out = append(out, Feature{
			RecordID:     rec.RecordID,
			CollectionID: rec.CollectionID,
			WKT:          wkt,
		})
	}
	return out
}

func featureWKT(rec *record.Record) string {
	if v := rec.GetMetadata("wkt"); v != nil {
		return rapi.Str(v)
	}

	geom, ok := rec.GetMetadata("geometry").(map[string]any)
	if !ok {
		return ""
	}
	coords, ok := geom["coordinates"].([]any)
	if !ok {
		return ""
	}

	switch rapi.Str(geom["type"]) {
	case "Point":
		return "POINT (" + wktPosition(coords) + ")"
	case "Polygon":
		var rings []string
		for _, ring := range coords {
			positions, ok := ring.([]any)
			if !ok {
				continue
			}
			var pts []string
			for _, p := range positions {
				pos, ok := p.([]any)
				if !ok {
					continue
				}
				pts = append(pts, wktPosition(pos))
			}
			rings = append(rings, "("+strings.Join(pts, ", ")+")")
		}
		return "POLYGON (" + strings.Join(rings, ", ") + ")"
	}
	return ""
}

func wktPosition(coords []any) string {
	parts := make([]string, 0, len(coords))
	for _, c := range coords {
		parts = append(parts, rapi.Str(c))
	}
	return strings.Join(parts, " ")
}
