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

package models

import (
	"fmt"
	"time"
)

// CellIdentity identifies the serving LTE cell. It is derived fresh on every
// refresh and only persisted as cache key material.
type CellIdentity struct {
	MCC string `json:"mcc"`
	MNC string `json:"mnc"`
	LAC int64  `json:"lac"`
	CID int64  `json:"cid"`
}

// Key returns the tower cache key for this identity.
func (c CellIdentity) Key() string {
	return fmt.Sprintf("%s-%s-%d-%d", c.MCC, c.MNC, c.LAC, c.CID)
}

// TowerLocation is a resolved tower position plus whatever ancillary fields
// the lookup service returned.
type TowerLocation struct {
	Latitude  float64        `json:"lat"`
	Longitude float64        `json:"lon"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// TowerCacheEntry is one persisted tower lookup result. Entries are
// overwritten once stale, never purged.
type TowerCacheEntry struct {
	Key       string        `json:"key"`
	FetchedAt time.Time     `json:"fetched_at"`
	Location  TowerLocation `json:"location"`
}

// Age reports how old the entry is at the given instant.
func (e *TowerCacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.FetchedAt)
}

// LookupStatus reflects the outcome of the most recent tower-resolution
// attempt. Overwritten every refresh cycle.
type LookupStatus string

const (
	LookupUnknown       LookupStatus = "unknown"
	LookupNoSignal      LookupStatus = "no_signal"
	LookupMissingCIDLAC LookupStatus = "missing_cid_lac"
	LookupMissingMCCMNC LookupStatus = "missing_mcc_mnc"
	LookupMissingToken  LookupStatus = "missing_token"
	LookupResolvedCache LookupStatus = "resolved_cached"
	LookupResolvedAPI   LookupStatus = "resolved_api"
	LookupFailed        LookupStatus = "lookup_failed"
)

// ConnectionMode is the derived radio mode of the gateway.
type ConnectionMode = string

const (
	ModeNone    ConnectionMode = "none"
	ModeLTE     ConnectionMode = "LTE"
	Mode5GNSA   ConnectionMode = "5G_NSA"
	Mode5GSA    ConnectionMode = "5G_SA"
	ModeUnknown ConnectionMode = "UNKNOWN"
)

// PublishedState is the unit the orchestrator exposes to collaborators.
// All fields change together, atomically, at the end of a refresh cycle.
type PublishedState struct {
	Snapshot     *TelemetrySnapshot `json:"snapshot"`
	Tower        *TowerLocation     `json:"tower,omitempty"`
	LookupStatus LookupStatus       `json:"lookup_status"`
	Drifted      bool               `json:"drifted"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
