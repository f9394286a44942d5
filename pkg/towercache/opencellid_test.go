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

package towercache

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taylor-snow33/invisagig-monitor/pkg/logger"
	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

var testCell = models.CellIdentity{MCC: "310", MNC: "260", LAC: 21, CID: 79594258}

func TestOpenCellIDLookupSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "secret", query.Get("key"))
		assert.Equal(t, "310", query.Get("mcc"))
		assert.Equal(t, "260", query.Get("mnc"))
		assert.Equal(t, "21", query.Get("lac"))
		assert.Equal(t, "79594258", query.Get("cellid"))
		assert.Equal(t, "json", query.Get("format"))

		_, _ = w.Write([]byte(`{"lat": 40.7128, "lon": -74.0060, "range": 1000, "samples": 12}`))
	}))
	defer server.Close()

	c := NewOpenCellIDClient("secret", logger.NewTestLogger(), WithBaseURL(server.URL))

	location, err := c.Lookup(context.Background(), testCell)
	require.NoError(t, err)
	require.NotNil(t, location)
	assert.InDelta(t, 40.7128, location.Latitude, 1e-9)
	assert.InDelta(t, -74.0060, location.Longitude, 1e-9)
	assert.Equal(t, float64(1000), location.Extra["range"])
	assert.NotContains(t, location.Extra, "lat")
	assert.NotContains(t, location.Extra, "lon")
}

func TestOpenCellIDLookupNotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "error key", body: `{"error": "cell not found", "code": 404}`},
		{name: "bit_error key", body: `{"bit_error": 1}`},
		{name: "missing coordinates", body: `{"range": 1000}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				// OpenCellID reports misses inside a 200 body.
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewOpenCellIDClient("secret", logger.NewTestLogger(), WithBaseURL(server.URL))

			location, err := c.Lookup(context.Background(), testCell)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTowerNotFound))
			assert.Nil(t, location)
		})
	}
}

func TestOpenCellIDLookupHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewOpenCellIDClient("secret", logger.NewTestLogger(), WithBaseURL(server.URL))

	_, err := c.Lookup(context.Background(), testCell)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTowerNotFound), "transport errors are not a definitive miss")
}

func TestOpenCellIDLookupStringCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"lat": "40.7128", "lon": "-74.0060"}`))
	}))
	defer server.Close()

	c := NewOpenCellIDClient("secret", logger.NewTestLogger(), WithBaseURL(server.URL))

	location, err := c.Lookup(context.Background(), testCell)
	require.NoError(t, err)
	assert.InDelta(t, 40.7128, location.Latitude, 1e-9)
	assert.InDelta(t, -74.0060, location.Longitude, 1e-9)
}
