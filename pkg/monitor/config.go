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

package monitor

import (
	"errors"
	"fmt"
	"time"

	"github.com/taylor-snow33/invisagig-monitor/pkg/logger"
	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

var (
	errHostRequired     = errors.New("host is required")
	errInvalidPort      = errors.New("port must be between 1 and 65535")
	errInvalidMode      = errors.New("preferred_mode must be one of none, LTE, 5G_NSA, 5G_SA")
	errPartialReference = errors.New("reference_lat and reference_lon must be set together")
)

const (
	defaultPort         = 80
	defaultPollInterval = 60 * time.Second
	minPollInterval     = 10 * time.Second
	maxPollInterval     = time.Hour
	defaultDBPath       = "/var/lib/invisagig-monitor/towers.db"
)

// Config is the per-gateway monitor configuration.
type Config struct {
	Host            string          `json:"host"`
	Port            int             `json:"port"`
	UseTLS          bool            `json:"use_tls"`
	PollInterval    models.Duration `json:"poll_interval"`
	FetchTimeout    models.Duration `json:"fetch_timeout,omitempty"`
	OpenCellIDToken string          `json:"opencellid_token,omitempty"`

	// MCCOverride/MNCOverride short-circuit the identity fallback chain.
	MCCOverride string `json:"mcc,omitempty"`
	MNCOverride string `json:"mnc,omitempty"`

	IncludeRawJSON bool   `json:"include_raw_json"`
	PreferredMode  string `json:"preferred_mode,omitempty"`

	// ReferenceLat/ReferenceLon anchor the tower distance and bearing
	// projections (typically the antenna's location).
	ReferenceLat *float64 `json:"reference_lat,omitempty"`
	ReferenceLon *float64 `json:"reference_lon,omitempty"`

	ListenAddr string         `json:"listen_addr,omitempty"`
	DBPath     string         `json:"db_path,omitempty"`
	Logging    *logger.Config `json:"logging,omitempty"`
}

// InstanceID scopes persisted state to this gateway.
func (c *Config) InstanceID() string {
	return fmt.Sprintf("%s-%d", c.Host, c.Port)
}

// Validate implements config.Validator. It also normalizes: the poll
// interval defaults to 60s and clamps into [10s, 1h].
func (c *Config) Validate() error {
	if c.Host == "" {
		return errHostRequired
	}

	if c.Port == 0 {
		c.Port = defaultPort
	}

	if c.Port < 1 || c.Port > 65535 {
		return errInvalidPort
	}

	interval := time.Duration(c.PollInterval)

	switch {
	case interval == 0:
		interval = defaultPollInterval
	case interval < minPollInterval:
		interval = minPollInterval
	case interval > maxPollInterval:
		interval = maxPollInterval
	}

	c.PollInterval = models.Duration(interval)

	switch c.PreferredMode {
	case "", models.ModeNone, models.ModeLTE, models.Mode5GNSA, models.Mode5GSA:
	default:
		return fmt.Errorf("%w: got %q", errInvalidMode, c.PreferredMode)
	}

	if c.PreferredMode == "" {
		c.PreferredMode = models.ModeNone
	}

	if (c.ReferenceLat == nil) != (c.ReferenceLon == nil) {
		return errPartialReference
	}

	if c.DBPath == "" {
		c.DBPath = defaultDBPath
	}

	return nil
}
