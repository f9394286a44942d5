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
	"strconv"
	"strings"
	"time"

	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

// gatewayTimeLayout matches the gateway's system clock string, e.g.
// "Sat Dec 27 00:45:18 UTC 2025".
const gatewayTimeLayout = "Mon Jan 2 15:04:05 UTC 2006"

// enbSectorBits is the number of low-order CID bits holding the sector;
// the remaining high bits are the eNodeB (base station) ID.
const enbSectorBits = 8

// ParseTemperature parses the gateway's "54c" temperature strings into
// degrees Celsius. Returns nil for anything else.
func ParseTemperature(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" || !strings.HasSuffix(strings.ToLower(value), "c") {
		return nil
	}

	parsed, err := strconv.ParseFloat(value[:len(value)-1], 64)
	if err != nil {
		return nil
	}

	return &parsed
}

// ParseGatewayTime parses the gateway's system date string. The device
// always reports UTC.
func ParseGatewayTime(value string) (time.Time, bool) {
	parsed, err := time.Parse(gatewayTimeLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

// StripMHz removes the " MHz" suffix from bandwidth strings like "20 MHz".
func StripMHz(value string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "MHz"))
}

// ENodeBID returns the serving base station ID: the dedicated lteTid field
// when present, else the high-order bits of the CID (CID >> 8).
func ENodeBID(snapshot *models.TelemetrySnapshot) (int64, bool) {
	lteCell := snapshot.Section(models.SectionLTECell)

	if tid, ok := models.FieldInt(lteCell, "lteTid"); ok && tid != 0 {
		return tid, true
	}

	if cid, ok := models.FieldInt(lteCell, "lteCid"); ok && cid != 0 {
		return cid >> enbSectorBits, true
	}

	return 0, false
}
