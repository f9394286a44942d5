/*
 * Copyright 2025 Carver Automation Corporation.
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

// Package models defines the shared data model for the gateway monitor.
package models

import (
	"strconv"
	"strings"
	"time"
)

// Section names used by the InvisaGig telemetry payload.
const (
	SectionDevice    = "device"
	SectionTimeTemp  = "timeTemp"
	SectionActiveSim = "activeSim"
	SectionDataUsed  = "dataUsed"
	SectionLTECell   = "lteCell"
	SectionNSACell   = "nsaCell"
	SectionSACell    = "saCell"
	SectionCarAgg    = "carAgg"
)

// TelemetrySnapshot is one normalized telemetry payload from the gateway.
// It is replaced wholesale on every refresh and must not be mutated after
// the identity resolver's write-back.
type TelemetrySnapshot struct {
	// Data is the normalized tree: nested map[string]any / []any with all
	// placeholder strings collapsed to nil and all strings trimmed.
	Data map[string]any `json:"data"`

	// Raw holds the repaired payload text when raw passthrough is enabled.
	Raw string `json:"raw,omitempty"`

	FetchedAt time.Time `json:"fetched_at"`
}

// Section returns the named top-level section, or nil if absent or not a map.
func (s *TelemetrySnapshot) Section(name string) map[string]any {
	if s == nil || s.Data == nil {
		return nil
	}

	section, _ := s.Data[name].(map[string]any)

	return section
}

// EnsureSection returns the named section, creating it when missing.
// Only the identity resolver's write-back uses this.
func (s *TelemetrySnapshot) EnsureSection(name string) map[string]any {
	if s.Data == nil {
		s.Data = make(map[string]any)
	}

	if section, ok := s.Data[name].(map[string]any); ok {
		return section
	}

	section := make(map[string]any)
	s.Data[name] = section

	return section
}

// FieldString coerces a section field to a string. Numeric values are
// formatted without an exponent so PLMN digit strings survive JSON decoding
// as float64. Returns "" when the field is missing or nil.
func FieldString(section map[string]any, key string) string {
	if section == nil {
		return ""
	}

	return coerceString(section[key])
}

// FieldInt coerces a section field to an int64. Returns (0, false) when the
// field is missing, nil, or not numeric.
func FieldInt(section map[string]any, key string) (int64, bool) {
	if section == nil {
		return 0, false
	}

	return coerceInt(section[key])
}

// FieldFloat coerces a section field to a float64.
func FieldFloat(section map[string]any, key string) (float64, bool) {
	if section == nil {
		return 0, false
	}

	return coerceFloat(section[key])
}

func coerceString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		if value == float64(int64(value)) {
			return strconv.FormatInt(int64(value), 10)
		}

		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

func coerceInt(v any) (int64, bool) {
	switch value := v.(type) {
	case float64:
		return int64(value), true
	case int:
		return int64(value), true
	case int64:
		return value, true
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return 0, false
		}

		return parsed, true
	default:
		return 0, false
	}
}

func coerceFloat(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}

		return parsed, true
	default:
		return 0, false
	}
}
