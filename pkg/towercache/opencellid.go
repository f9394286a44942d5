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
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/taylor-snow33/invisagig-monitor/pkg/logger"
	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

const (
	defaultLookupBaseURL = "https://opencellid.org/cell/get"
	defaultLookupTimeout = 10 * time.Second
)

var lookupJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// OpenCellIDClient resolves cell identities against the OpenCellID API.
type OpenCellIDClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     logger.Logger
}

var _ LookupClient = (*OpenCellIDClient)(nil)

// OpenCellIDOption configures an OpenCellIDClient.
type OpenCellIDOption func(*OpenCellIDClient)

// WithBaseURL overrides the API endpoint, for tests.
func WithBaseURL(baseURL string) OpenCellIDOption {
	return func(c *OpenCellIDClient) {
		c.baseURL = baseURL
	}
}

// WithLookupTimeout overrides the request timeout.
func WithLookupTimeout(timeout time.Duration) OpenCellIDOption {
	return func(c *OpenCellIDClient) {
		c.httpClient.Timeout = timeout
	}
}

// NewOpenCellIDClient creates a lookup client with the given API credential.
func NewOpenCellIDClient(token string, log logger.Logger, opts ...OpenCellIDOption) *OpenCellIDClient {
	c := &OpenCellIDClient{
		baseURL: defaultLookupBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultLookupTimeout,
		},
		logger: log,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Lookup implements LookupClient.
func (c *OpenCellIDClient) Lookup(ctx context.Context, id models.CellIdentity) (*models.TowerLocation, error) {
	query := url.Values{}
	query.Set("key", c.token)
	query.Set("mcc", id.MCC)
	query.Set("mnc", id.MNC)
	query.Set("lac", strconv.FormatInt(id.LAC, 10))
	query.Set("cellid", strconv.FormatInt(id.CID, 10))
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer c.closeResponse(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", errLookupStatusCode, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := lookupJSON.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	// The API signals "no record" inside a 200 body.
	if _, hasErr := payload["error"]; hasErr {
		return nil, fmt.Errorf("%w: %s", ErrTowerNotFound, id.Key())
	}

	if _, hasBitErr := payload["bit_error"]; hasBitErr {
		return nil, fmt.Errorf("%w: %s", ErrTowerNotFound, id.Key())
	}

	lat, latOK := models.FieldFloat(payload, "lat")
	lon, lonOK := models.FieldFloat(payload, "lon")

	if !latOK || !lonOK {
		return nil, fmt.Errorf("%w: %s", ErrTowerNotFound, id.Key())
	}

	extra := make(map[string]any, len(payload))
	for k, v := range payload {
		if k == "lat" || k == "lon" {
			continue
		}

		extra[k] = v
	}

	return &models.TowerLocation{
		Latitude:  lat,
		Longitude: lon,
		Extra:     extra,
	}, nil
}

func (c *OpenCellIDClient) closeResponse(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to close lookup response body")
	}
}
