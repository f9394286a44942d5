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

package identity

import "strings"

// carrierPLMN maps a carrier-name substring to its primary home network.
// Ordered; the first match wins. This is a last-resort heuristic, strictly
// lower confidence than any structured source in the snapshot.
type carrierPLMN struct {
	substring string
	mcc       string
	mnc       string
}

var knownCarriers = []carrierPLMN{
	{"verizon", "311", "480"},
	{"t-mobile", "310", "260"},
	{"at&t", "310", "410"},
}

// inferFromCarrier matches the carrier name against the known-carrier table,
// case-insensitive.
func inferFromCarrier(carrier string) (mcc, mnc string) {
	carrier = strings.ToLower(strings.TrimSpace(carrier))
	if carrier == "" {
		return "", ""
	}

	for _, known := range knownCarriers {
		if strings.Contains(carrier, known.substring) {
			return known.mcc, known.mnc
		}
	}

	return "", ""
}
