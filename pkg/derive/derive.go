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

// Package derive computes network-quality signals from a normalized
// telemetry snapshot. Every function here is pure and deterministic.
package derive

import (
	"math"

	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

// Signal-health normalization windows. Values at or below the floor score 0,
// at or above the ceiling score 1, linear in between.
const (
	strengthFloor   = -120.0 // dBm
	strengthCeiling = -80.0
	sinrFloor       = 0.0 // dB
	sinrCeiling     = 20.0
	qualityFloor    = -20.0 // dB
	qualityCeiling  = -10.0
)

// ConnectionMode derives the radio mode: the active SIM's explicit
// networkMode wins; otherwise the presence of any non-null SA metric means
// 5G_SA, any non-null NSA metric means 5G_NSA, else UNKNOWN.
func ConnectionMode(snapshot *models.TelemetrySnapshot) models.ConnectionMode {
	activeSim := snapshot.Section(models.SectionActiveSim)

	if mode := models.FieldString(activeSim, "networkMode"); mode != "" {
		return mode
	}

	if sectionHasData(snapshot.Section(models.SectionSACell)) {
		return models.Mode5GSA
	}

	if sectionHasData(snapshot.Section(models.SectionNSACell)) {
		return models.Mode5GNSA
	}

	return models.ModeUnknown
}

func sectionHasData(section map[string]any) bool {
	for _, v := range section {
		if v != nil {
			return true
		}
	}

	return false
}

// SignalHealthScore scores LTE signal quality 0..100. Strength and SINR are
// required; quality (RSRQ) is optional. With quality the weights are
// 40/40/20, without it strength and SINR reweight to 50/50. Returns nil when
// strength or SINR is missing.
func SignalHealthScore(strength, sinr, quality *float64) *int {
	if strength == nil || sinr == nil {
		return nil
	}

	strengthScore := normalize(*strength, strengthFloor, strengthCeiling)
	sinrScore := normalize(*sinr, sinrFloor, sinrCeiling)

	var total float64

	if quality != nil {
		qualityScore := normalize(*quality, qualityFloor, qualityCeiling)
		total = strengthScore*40 + sinrScore*40 + qualityScore*20
	} else {
		total = strengthScore*50 + sinrScore*50
	}

	score := int(math.Round(total))

	return &score
}

// SignalHealthFromSnapshot reads the LTE metrics (lteStr as RSRP, lteSnr as
// SINR, lteQal as RSRQ) and scores them.
func SignalHealthFromSnapshot(snapshot *models.TelemetrySnapshot) *int {
	lteCell := snapshot.Section(models.SectionLTECell)

	return SignalHealthScore(
		fieldFloatPtr(lteCell, "lteStr"),
		fieldFloatPtr(lteCell, "lteSnr"),
		fieldFloatPtr(lteCell, "lteQal"),
	)
}

func fieldFloatPtr(section map[string]any, key string) *float64 {
	value, ok := models.FieldFloat(section, key)
	if !ok {
		return nil
	}

	return &value
}

func normalize(value, floor, ceiling float64) float64 {
	if value <= floor {
		return 0
	}

	if value >= ceiling {
		return 1
	}

	return (value - floor) / (ceiling - floor)
}

// CarrierAggregationCount counts active entries in the given radio's
// aggregation list ("lte" or "nr5g"). A missing list counts as 0.
func CarrierAggregationCount(snapshot *models.TelemetrySnapshot, radio string) int {
	carAgg := snapshot.Section(models.SectionCarAgg)
	if carAgg == nil {
		return 0
	}

	list, _ := carAgg[radio].([]any)

	count := 0

	for _, elem := range list {
		entry, ok := elem.(map[string]any)
		if !ok {
			continue
		}

		if models.FieldString(entry, "state") == "active" {
			count++
		}
	}

	return count
}
