/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// timeOfDayLayouts are tried in order by parseTimeOfDay.
var timeOfDayLayouts = []string{"15:04:05", "15:04", time.Kitchen}

// parseTimestamp accepts the date and timestamp formats known to spf13/cast.
// Inputs without a zone are read as UTC.
func parseTimestamp(s string) (time.Time, error) {
	return cast.StringToDateInDefaultLocation(strings.TrimSpace(s), time.UTC)
}

// parseTimeOfDay accepts HH:MM, HH:MM:SS and HH:MM:SS.fraction.
func parseTimeOfDay(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Sub(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

// parseInterval accepts Go duration text ("1h30m") optionally prefixed by a
// month count ("2 MONTH 1h"), the form Interval.String produces.
func parseInterval(s string) (Interval, error) {
	fields := strings.Fields(s)
	if len(fields) >= 2 {
		unit := strings.ToUpper(fields[1])
		if unit == "MONTH" || unit == "MONTHS" {
			m, err := strconv.ParseInt(fields[0], 10, 32)
			if err != nil {
				return Interval{}, fmt.Errorf("invalid interval %q: %w", s, err)
			}
			i := Interval{Months: int32(m)}
			if len(fields) > 2 {
				d, err := cast.ToDurationE(strings.Join(fields[2:], ""))
				if err != nil {
					return Interval{}, fmt.Errorf("invalid interval %q: %w", s, err)
				}
				i.Duration = d
			}
			return i, nil
		}
	}
	d, err := cast.ToDurationE(strings.Join(fields, ""))
	if err != nil {
		return Interval{}, fmt.Errorf("invalid interval %q: %w", s, err)
	}
	return Interval{Duration: d}, nil
}

// parsePoint accepts "POINT(x y)", case-insensitively.
func parsePoint(s string) (Point, error) {
	s = strings.TrimSpace(s)
	if len(s) < 7 || !strings.EqualFold(s[:5], "POINT") {
		return Point{}, fmt.Errorf("invalid point %q", s)
	}
	body := strings.TrimSpace(s[5:])
	if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
		return Point{}, fmt.Errorf("invalid point %q", s)
	}
	coords := strings.Fields(body[1 : len(body)-1])
	if len(coords) != 2 {
		return Point{}, fmt.Errorf("invalid point %q", s)
	}
	x, err := strconv.ParseFloat(coords[0], 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(coords[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return Point{X: x, Y: y}, nil
}

// parseJSON decodes a JSON document into a Value. Numbers keep their text
// until FromGo decides between INT and FLOAT.
func parseJSON(s string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return Null, fmt.Errorf("invalid json: %w", err)
	}
	if dec.More() {
		return Null, fmt.Errorf("invalid json: trailing data")
	}
	return FromGo(doc)
}
