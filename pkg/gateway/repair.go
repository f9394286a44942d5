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

package gateway

import (
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonRepairs are the four malformed fragments the gateway firmware is known
// to emit: a field whose value was omitted entirely. Each is a literal
// substring replacement applied to the whole payload, in order.
var jsonRepairs = [4]struct {
	malformed string
	repaired  string
}{
	{": ,", ": null,"},
	{":\n}", ": null\n}"},
	{": }", ": null}"},
	{": ]", ": null]"},
}

// RepairJSON rewrites the known malformed fragments into valid JSON. It is
// not a general repair pass; only these four gateway quirks are handled.
func RepairJSON(raw string) string {
	for _, r := range jsonRepairs {
		raw = strings.ReplaceAll(raw, r.malformed, r.repaired)
	}

	return raw
}

// ParseTelemetry repairs, parses and normalizes a raw telemetry payload.
// keepRaw retains the repaired text on the snapshot for the raw passthrough
// toggle.
func ParseTelemetry(raw string, keepRaw bool, fetchedAt time.Time) (*models.TelemetrySnapshot, error) {
	repaired := RepairJSON(raw)

	var tree map[string]any
	if err := json.UnmarshalFromString(repaired, &tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	normalized, _ := normalizeValue(tree).(map[string]any)

	snapshot := &models.TelemetrySnapshot{
		Data:      normalized,
		FetchedAt: fetchedAt,
	}

	if keepRaw {
		snapshot.Raw = repaired
	}

	return snapshot, nil
}

// normalizeValue walks the parsed tree. Strings that are blank or a literal
// "null" (any case) become nil; all other strings are trimmed. Containers
// are normalized element-wise preserving structure; everything else passes
// through unchanged. Normalizing an already-normalized tree is a no-op.
func normalizeValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, elem := range value {
			out[k] = normalizeValue(elem)
		}

		return out
	case []any:
		out := make([]any, len(value))
		for i, elem := range value {
			out[i] = normalizeValue(elem)
		}

		return out
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" || strings.EqualFold(trimmed, "null") {
			return nil
		}

		return trimmed
	default:
		return v
	}
}
