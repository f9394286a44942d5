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

// Package monitor runs the refresh orchestrator: fetch, repair, resolve and
// publish on a fixed interval, one cycle in flight at a time.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/taylor-snow33/invisagig-monitor/pkg/derive"
	"github.com/taylor-snow33/invisagig-monitor/pkg/gateway"
	"github.com/taylor-snow33/invisagig-monitor/pkg/identity"
	"github.com/taylor-snow33/invisagig-monitor/pkg/logger"
	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

// FailureKind classifies the most recent refresh failure for collaborators.
type FailureKind string

const (
	FailureNone          FailureKind = "none"
	FailureCommunication FailureKind = "communication"
	FailureParse         FailureKind = "parse"
	FailureAuth          FailureKind = "auth"
)

// Retryable reports whether the next scheduled cycle may clear the failure.
// Auth failures require reconfiguration.
func (k FailureKind) Retryable() bool {
	return k == FailureCommunication || k == FailureParse
}

// Monitor orchestrates the refresh pipeline for one gateway instance.
type Monitor struct {
	config  Config
	fetcher TelemetryFetcher
	towers  TowerResolver
	clock   Clock
	logger  logger.Logger

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	mu        sync.RWMutex
	state     *models.PublishedState
	lastError error
	lastKind  FailureKind
}

// New creates a monitor. A nil clock defaults to the real clock.
func New(config *Config, fetcher TelemetryFetcher, towers TowerResolver, clock Clock, log logger.Logger) *Monitor {
	if clock == nil {
		clock = realClock{}
	}

	return &Monitor{
		config:   *config,
		fetcher:  fetcher,
		towers:   towers,
		clock:    clock,
		logger:   log,
		done:     make(chan struct{}),
		lastKind: FailureNone,
	}
}

// Start runs the refresh loop until ctx is canceled or Stop is called. An
// initial refresh runs immediately. Cycles run inline in this goroutine, so
// at most one refresh is ever in flight per instance.
func (m *Monitor) Start(ctx context.Context) error {
	interval := time.Duration(m.config.PollInterval)
	ticker := m.clock.Ticker(interval)

	defer ticker.Stop()

	m.logger.Info().
		Str("gateway", m.config.InstanceID()).
		Dur("interval", interval).
		Msg("Starting gateway monitor")

	m.wg.Add(1)
	defer m.wg.Done()

	if err := m.Refresh(ctx); err != nil {
		m.logRefreshError(err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.done:
			return nil
		case <-ticker.Chan():
			if err := m.Refresh(ctx); err != nil {
				m.logRefreshError(err)
			}
		}
	}
}

// Stop shuts the monitor down and waits for any in-flight cycle.
func (m *Monitor) Stop(_ context.Context) error {
	m.closeOnce.Do(func() {
		close(m.done)
	})

	m.wg.Wait()

	return nil
}

// Refresh runs one full cycle: Fetch -> Repair/Normalize -> Identity ->
// Tower -> publish. A fetch or parse failure aborts the cycle and leaves the
// last good state published; the classified error is the caller's retry
// signal. Tower-lookup failures never abort the cycle.
func (m *Monitor) Refresh(ctx context.Context) error {
	snapshot, err := m.fetcher.Fetch(ctx)
	if err != nil {
		m.recordFailure(err)
		return err
	}

	mcc, mnc, identityOK := identity.Resolve(snapshot, identity.Overrides{
		MCC: m.config.MCCOverride,
		MNC: m.config.MNCOverride,
	})

	tower, status := m.towers.Resolve(ctx, snapshot, mcc, mnc, identityOK)

	state := &models.PublishedState{
		Snapshot:     snapshot,
		Tower:        tower,
		LookupStatus: status,
		Drifted:      m.evaluateDrift(snapshot),
		UpdatedAt:    m.clock.Now(),
	}

	m.mu.Lock()
	m.state = state
	m.lastError = nil
	m.lastKind = FailureNone
	m.mu.Unlock()

	m.logger.Debug().
		Str("lookup_status", string(status)).
		Bool("drifted", state.Drifted).
		Msg("Refresh cycle published")

	return nil
}

// State returns the most recently published state, or nil before the first
// successful cycle. The returned value is never mutated afterwards.
func (m *Monitor) State() *models.PublishedState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state
}

// LastFailure returns the classification and error of the most recent cycle
// failure. A successful cycle clears both.
func (m *Monitor) LastFailure() (FailureKind, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.lastKind, m.lastError
}

func (m *Monitor) evaluateDrift(snapshot *models.TelemetrySnapshot) bool {
	preferred := m.config.PreferredMode
	if preferred == models.ModeNone {
		return false
	}

	mode := derive.ConnectionMode(snapshot)
	if mode == models.ModeUnknown {
		// Conservative: an unknown mode never alerts.
		return false
	}

	return mode != preferred
}

func (m *Monitor) recordFailure(err error) {
	kind := classify(err)

	m.mu.Lock()
	m.lastError = err
	m.lastKind = kind
	m.mu.Unlock()
}

func classify(err error) FailureKind {
	switch {
	case errors.Is(err, gateway.ErrAuthentication):
		return FailureAuth
	case errors.Is(err, gateway.ErrParse):
		return FailureParse
	case errors.Is(err, gateway.ErrCommunication):
		return FailureCommunication
	default:
		// Unclassified errors are programming-logic failures; never bury
		// them under a retryable label.
		return FailureNone
	}
}

func (m *Monitor) logRefreshError(err error) {
	kind, _ := m.LastFailure()

	switch {
	case kind == FailureAuth:
		m.logger.Error().Err(err).Msg("Gateway rejected credentials; reconfiguration required")
	case kind.Retryable():
		m.logger.Warn().Err(err).Str("kind", string(kind)).Msg("Refresh failed; retrying next cycle")
	default:
		m.logger.Error().Err(err).Msg("Refresh failed with unclassified error")
	}
}
