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
	"fmt"
	"math"
)

// earthRadiusKm is the mean Earth radius used for haversine distance.
const earthRadiusKm = 6371.0

var cardinalLabels = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// BearingDegrees computes the forward azimuth (initial great-circle bearing)
// from point 1 to point 2, normalized into [0, 360).
func BearingDegrees(lat1, lon1, lat2, lon2 float64) float64 {
	dLon := radians(lon2 - lon1)
	x := math.Cos(radians(lat2)) * math.Sin(dLon)
	y := math.Cos(radians(lat1))*math.Sin(radians(lat2)) -
		math.Sin(radians(lat1))*math.Cos(radians(lat2))*math.Cos(dLon)

	bearing := degrees(math.Atan2(x, y))

	return math.Mod(bearing+360, 360)
}

// HaversineKm computes the great-circle distance between two points in
// kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// CardinalDirection buckets a bearing into one of 16 compass labels, nearest
// sector, wrapping 360° back to N.
func CardinalDirection(bearing float64) string {
	sector := int(math.Round(bearing/(360.0/16))) % 16
	if sector < 0 {
		sector += 16
	}

	return cardinalLabels[sector]
}

// AimHint renders a human antenna-pointing hint for a bearing.
func AimHint(bearing float64) string {
	return fmt.Sprintf("Point ~%d° (%s)", int(bearing), CardinalDirection(bearing))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
