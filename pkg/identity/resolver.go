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

// Package identity infers the gateway's serving network identity (MCC/MNC)
// from a telemetry snapshot via an ordered fallback chain.
package identity

import (
	"strings"

	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

const minPLMNLength = 5

// Overrides are user-supplied MCC/MNC values. They win over every source in
// the snapshot. Zero or empty values mean "not configured".
type Overrides struct {
	MCC string
	MNC string
}

// Resolve walks the fallback chain and returns the first source that yields
// both a non-empty MCC and MNC:
//
//  1. configuration overrides
//  2. activeSim mcc/mnc
//  3. lteCell mcc/mnc (or legacy plmn_mcc/plmn_mnc)
//  4. lteCell combined plmn string, split 3+rest
//  5. activeSim combined plmn string, split 3+rest
//  6. carrier-name substring match (lowest confidence)
//
// On success the pair is written back into the snapshot's lteCell section so
// every downstream consumer sees a consistent view. The write-back never
// clobbers values already present there.
func Resolve(snapshot *models.TelemetrySnapshot, overrides Overrides) (mcc, mnc string, ok bool) {
	activeSim := snapshot.Section(models.SectionActiveSim)
	lteCell := snapshot.Section(models.SectionLTECell)

	mcc, mnc = normalizePair(overrides.MCC, overrides.MNC)

	if !pairComplete(mcc, mnc) {
		mcc, mnc = normalizePair(
			models.FieldString(activeSim, "mcc"),
			models.FieldString(activeSim, "mnc"),
		)
	}

	if !pairComplete(mcc, mnc) {
		mcc, mnc = normalizePair(
			firstNonEmpty(models.FieldString(lteCell, "mcc"), models.FieldString(lteCell, "plmn_mcc")),
			firstNonEmpty(models.FieldString(lteCell, "mnc"), models.FieldString(lteCell, "plmn_mnc")),
		)
	}

	if !pairComplete(mcc, mnc) {
		mcc, mnc = splitPLMN(models.FieldString(lteCell, "plmn"))
	}

	if !pairComplete(mcc, mnc) {
		mcc, mnc = splitPLMN(models.FieldString(activeSim, "plmn"))
	}

	if !pairComplete(mcc, mnc) {
		mcc, mnc = inferFromCarrier(models.FieldString(activeSim, "carrier"))
	}

	if !pairComplete(mcc, mnc) {
		return "", "", false
	}

	writeBack(snapshot, mcc, mnc)

	return mcc, mnc, true
}

// normalizePair maps every falsy representation ("", "0", zero) to missing.
func normalizePair(mcc, mnc string) (string, string) {
	return normalizeCode(mcc), normalizeCode(mnc)
}

func normalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || code == "0" {
		return ""
	}

	return code
}

func pairComplete(mcc, mnc string) bool {
	return mcc != "" && mnc != ""
}

// splitPLMN splits a combined MCC+MNC numeric string. Only accepted when at
// least 5 characters long: MCC is always 3 digits, MNC is the remainder.
func splitPLMN(plmn string) (mcc, mnc string) {
	plmn = strings.TrimSpace(plmn)
	if len(plmn) < minPLMNLength {
		return "", ""
	}

	return plmn[:3], plmn[3:]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if normalizeCode(v) != "" {
			return v
		}
	}

	return ""
}

func writeBack(snapshot *models.TelemetrySnapshot, mcc, mnc string) {
	lteCell := snapshot.EnsureSection(models.SectionLTECell)

	if normalizeCode(models.FieldString(lteCell, "mcc")) == "" {
		lteCell["mcc"] = mcc
	}

	if normalizeCode(models.FieldString(lteCell, "mnc")) == "" {
		lteCell["mnc"] = mnc
	}
}
