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

// Package gateway fetches telemetry from an InvisaGig cellular gateway and
// repairs its near-JSON payload into a normalized snapshot.
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/taylor-snow33/invisagig-monitor/pkg/logger"
	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

const (
	defaultFetchTimeout = 10 * time.Second
	telemetryPath       = "/telemetry/info.json"
)

// Client pulls telemetry from one gateway. It issues a single GET per
// refresh cycle with a bounded timeout.
type Client struct {
	host       string
	port       int
	useTLS     bool
	includeRaw bool
	httpClient *http.Client
	logger     logger.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout overrides the fetch timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRawPassthrough keeps the repaired payload text on each snapshot.
func WithRawPassthrough(enabled bool) ClientOption {
	return func(c *Client) {
		c.includeRaw = enabled
	}
}

// WithHTTPClient swaps the underlying HTTP client, primarily for tests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a gateway client.
func NewClient(host string, port int, useTLS bool, log logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		host:   host,
		port:   port,
		useTLS: useTLS,
		httpClient: &http.Client{
			Timeout: defaultFetchTimeout,
		},
		logger: log,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Host returns the configured gateway host.
func (c *Client) Host() string {
	return c.host
}

// URL returns the telemetry endpoint.
func (c *Client) URL() string {
	scheme := "http"
	if c.useTLS {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s:%d%s", scheme, c.host, c.port, telemetryPath)
}

// FetchRaw retrieves the raw telemetry text. Transport errors, timeouts and
// non-2xx responses classify as ErrCommunication; 401/403 classify as
// ErrAuthentication.
func (c *Client) FetchRaw(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCommunication, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCommunication, err)
	}
	defer c.closeResponse(resp)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%w: %w: %d", ErrAuthentication, errUnexpectedStatusCode, resp.StatusCode)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return "", fmt.Errorf("%w: %w: %d", ErrCommunication, errUnexpectedStatusCode, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCommunication, err)
	}

	return string(body), nil
}

// Fetch retrieves, repairs and normalizes one telemetry snapshot.
func (c *Client) Fetch(ctx context.Context) (*models.TelemetrySnapshot, error) {
	raw, err := c.FetchRaw(ctx)
	if err != nil {
		return nil, err
	}

	snapshot, err := ParseTelemetry(raw, c.includeRaw, time.Now())
	if err != nil {
		c.logger.Debug().Str("host", c.host).Err(err).Msg("Telemetry payload unparseable after repair")
		return nil, err
	}

	return snapshot, nil
}

func (c *Client) closeResponse(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to close response body")
	}
}
