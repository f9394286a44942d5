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

package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearingDegrees(t *testing.T) {
	tests := []struct {
		name     string
		lat1     float64
		lon1     float64
		lat2     float64
		lon2     float64
		expected float64
	}{
		{name: "due east along equator", lat1: 0, lon1: 0, lat2: 0, lon2: 1, expected: 90},
		{name: "due west along equator", lat1: 0, lon1: 1, lat2: 0, lon2: 0, expected: 270},
		{name: "due north", lat1: 0, lon1: 0, lat2: 1, lon2: 0, expected: 0},
		{name: "due south", lat1: 1, lon1: 0, lat2: 0, lon2: 0, expected: 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BearingDegrees(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expected, got, 0.01)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 360.0)
		})
	}
}

func TestHaversineKm(t *testing.T) {
	// One degree of latitude is about 111.19 km on a 6371 km sphere.
	d := HaversineKm(0, 0, 1, 0)
	assert.InDelta(t, 111.19, d, 111.19*0.01)

	assert.Zero(t, HaversineKm(40.7, -74.0, 40.7, -74.0))

	// New York to Los Angeles, roughly 3936 km.
	d = HaversineKm(40.7128, -74.0060, 34.0522, -118.2437)
	assert.InDelta(t, 3936, d, 3936*0.01)
}

func TestCardinalDirection(t *testing.T) {
	tests := []struct {
		bearing  float64
		expected string
	}{
		{0, "N"},
		{11.24, "N"},
		{11.25, "NNE"}, // sector boundary rounds up
		{22.5, "NNE"},
		{45, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{348.75, "N"}, // wraps back to north
		{359.9, "N"},
		{360, "N"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CardinalDirection(tt.bearing), "bearing %.2f", tt.bearing)
	}
}

func TestAimHint(t *testing.T) {
	assert.Equal(t, "Point ~90° (E)", AimHint(90))
	assert.Equal(t, "Point ~271° (W)", AimHint(271.6))
}
