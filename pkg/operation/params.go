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
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔢 ParseMax parses the "<maxImages>[:<maxItemsPerOrder>]" maximum
// syntax. Either side may be empty; zero means no cap on that side.
func ParseMax(raw string) (maxImages, maxPerOrder int, err error) {
	if raw == "" {
		return 0, 0, nil
	}

	imgPart := raw
	perPart := ""
	if i := strings.Index(raw, ":"); i > -1 {
		imgPart, perPart = raw[:i], raw[i+1:]
	}

	if imgPart != "" {
		maxImages, err = strconv.Atoi(imgPart)
		if err != nil || maxImages < 0 {
			return 0, 0, errors.Errorf("invalid maximum images value %q", imgPart)
		}
	}
	if perPart != "" {
		maxPerOrder, err = strconv.Atoi(perPart)
		if err != nil || maxPerOrder < 0 {
			return 0, 0, errors.Errorf("invalid maximum items per order value %q", perPart)
		}
	}
	return maxImages, maxPerOrder, nil
}

// priorities is the catalog's priority vocabulary, lower-cased input to
// canonical form.
var priorities = map[string]string{
	"low":    "Low",
	"medium": "Medium",
	"high":   "High",
	"urgent": "Urgent",
}

// 🏷️ NormalizePriority canonicalizes a priority level. Empty input gets
// the default; an unrecognized value is warned about and also defaulted.
func NormalizePriority(ctx context.Context, raw string) string {
	if raw == "" {
		return "Medium"
	}
	if p, ok := priorities[strings.ToLower(raw)]; ok {
		return p
	}
	zerolog.Ctx(ctx).Warn().
		Str("priority", raw).
		Msg("not a valid priority entry, using Medium")
	return "Medium"
}
