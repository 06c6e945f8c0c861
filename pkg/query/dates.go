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

package query

import (
	"strconv"
	"strings"
	"time"

	"gitlab.com/tozd/go/errors"
)

// 🗓️ DateRange is one normalized search window. Boundaries are in the
// canonical YYYYMMDD_HHMMSS form; ToISO converts them at the RAPI boundary.
type DateRange struct {
	Start string
	End   string
}

const boundaryFormat = "20060102_150405"

// relativeUnits maps the relative-time keywords to their calendar interval.
var relativeUnits = []string{"hour", "day", "week", "month", "year"}

// 🗓️ ParseDates converts the user's date text into normalized ranges.
// The text is either a relative interval ("24 hours", "3 months") resolved
// against now, or comma-separated explicit ranges such as
// "20200501-20210105T054540". Empty input yields no ranges and no error.
func ParseDates(raw string) ([]DateRange, error) {
	return ParseDatesAt(raw, time.Now())
}

// ParseDatesAt is ParseDates with an injectable clock.
func ParseDatesAt(raw string, now time.Time) ([]DateRange, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	if rng, ok := parseRelative(raw, now); ok {
		return []DateRange{rng}, nil
	}

	var dates []DateRange
	for _, part := range strings.Split(raw, ",") {
		sides := strings.Split(strings.TrimSpace(part), "-")
		if len(sides) != 2 {
			return nil, errors.Errorf("date range %q must be in the form <start>-<end>", part)
		}

		start, err := normalizeBoundary(sides[0])
		if err != nil {
			return nil, errors.Errorf("date range %q: %w", part, err)
		}
		end, err := normalizeBoundary(sides[1])
		if err != nil {
			return nil, errors.Errorf("date range %q: %w", part, err)
		}

		dates = append(dates, DateRange{Start: start, End: end})
	}

	return dates, nil
}

// parseRelative resolves interval text such as "24 hours" into a range
// ending at now. Calendar arithmetic is used for days and larger units.
func parseRelative(raw string, now time.Time) (DateRange, bool) {
	lower := strings.ToLower(raw)

	unit := ""
	for _, u := range relativeUnits {
		if strings.Contains(lower, u) {
			unit = u
			break
		}
	}
	if unit == "" {
		return DateRange{}, false
	}

	n := 1
	if num := strings.TrimSpace(strings.Split(lower, unit)[0]); num != "" {
		parsed, err := strconv.Atoi(num)
		if err == nil && parsed > 0 {
			n = parsed
		}
	}

	var start time.Time
	switch unit {
	case "hour":
		start = now.Add(-time.Duration(n) * time.Hour)
	case "day":
		start = now.AddDate(0, 0, -n)
	case "week":
		start = now.AddDate(0, 0, -7*n)
	case "month":
		start = now.AddDate(0, -n, 0)
	case "year":
		start = now.AddDate(-n, 0, 0)
	}

	return DateRange{
		Start: start.Format(boundaryFormat),
		End:   now.Format(boundaryFormat),
	}, true
}

// normalizeBoundary canonicalizes one side of a range. A boundary carrying a
// time component (the literal T separator) keeps it; otherwise midnight is
// assumed.
func normalizeBoundary(side string) (string, error) {
	side = strings.TrimSpace(strings.ToLower(side))
	if side == "" {
		return "", errors.New("empty date boundary")
	}

	if strings.Contains(side, "t") {
		return strings.ReplaceAll(side, "t", "_"), nil
	}
	return side + "_000000", nil
}

// 📅 ToISO converts a canonical boundary (YYYYMMDD or YYYYMMDD_HHMMSS or the
// raw YYYYMMDDTHHMMSS input form) to the ISO form the RAPI expects.
func ToISO(in string) string {
	lower := strings.ToLower(strings.ReplaceAll(in, "_", "t"))

	date := lower
	tme := ""
	if i := strings.Index(lower, "t"); i > -1 {
		date, tme = lower[:i], lower[i+1:]
	}

	if len(date) < 8 {
		return in
	}
	if len(tme) < 6 {
		return date[:4] + "-" + date[4:6] + "-" + date[6:8] + "T00:00:00Z"
	}
	return date[:4] + "-" + date[4:6] + "-" + date[6:8] +
		"T" + tme[:2] + ":" + tme[2:4] + ":" + tme[4:6] + "Z"
}
