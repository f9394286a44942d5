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
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taylor-snow33/invisagig-monitor/pkg/gateway"
	"github.com/taylor-snow33/invisagig-monitor/pkg/logger"
	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

func testConfig(t *testing.T) *Config {
	t.Helper()

	cfg := &Config{Host: "192.168.225.1", Port: 80}
	require.NoError(t, cfg.Validate())

	return cfg
}

func testSnapshot(data map[string]any) *models.TelemetrySnapshot {
	return &models.TelemetrySnapshot{Data: data, FetchedAt: time.Now()}
}

func newTestMonitor(t *testing.T, cfg *Config) (*Monitor, *MockTelemetryFetcher, *MockTowerResolver, *MockClock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	fetcher := NewMockTelemetryFetcher(ctrl)
	towers := NewMockTowerResolver(ctrl)
	clock := NewMockClock(ctrl)

	if cfg == nil {
		cfg = testConfig(t)
	}

	return New(cfg, fetcher, towers, clock, logger.NewTestLogger()), fetcher, towers, clock
}

func TestRefreshPublishesState(t *testing.T) {
	m, fetcher, towers, clock := newTestMonitor(t, nil)

	snapshot := testSnapshot(map[string]any{
		"activeSim": map[string]any{"mcc": "310", "mnc": "260", "networkMode": "LTE"},
		"lteCell":   map[string]any{"lteCid": "1234", "lteLac": "21"},
	})
	tower := &models.TowerLocation{Latitude: 40.7, Longitude: -74.0}
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	fetcher.EXPECT().Fetch(gomock.Any()).Return(snapshot, nil)
	towers.EXPECT().Resolve(gomock.Any(), snapshot, "310", "260", true).
		Return(tower, models.LookupResolvedAPI)
	clock.EXPECT().Now().Return(now)

	require.NoError(t, m.Refresh(context.Background()))

	state := m.State()
	require.NotNil(t, state)
	assert.Same(t, snapshot, state.Snapshot)
	assert.Same(t, tower, state.Tower)
	assert.Equal(t, models.LookupResolvedAPI, state.LookupStatus)
	assert.Equal(t, now, state.UpdatedAt)
	assert.False(t, state.Drifted)

	kind, err := m.LastFailure()
	assert.Equal(t, FailureNone, kind)
	assert.NoError(t, err)
}

func TestRefreshFailureKeepsLastGoodState(t *testing.T) {
	m, fetcher, towers, clock := newTestMonitor(t, nil)

	snapshot := testSnapshot(map[string]any{
		"activeSim": map[string]any{"mcc": "310", "mnc": "260"},
	})

	fetcher.EXPECT().Fetch(gomock.Any()).Return(snapshot, nil)
	towers.EXPECT().Resolve(gomock.Any(), snapshot, "310", "260", true).
		Return(nil, models.LookupMissingCIDLAC)
	clock.EXPECT().Now().Return(time.Now())

	require.NoError(t, m.Refresh(context.Background()))
	published := m.State()
	require.NotNil(t, published)

	fetchErr := fmt.Errorf("%w: connection refused", gateway.ErrCommunication)
	fetcher.EXPECT().Fetch(gomock.Any()).Return(nil, fetchErr)

	err := m.Refresh(context.Background())
	require.Error(t, err)

	assert.Same(t, published, m.State(), "failed cycle leaves the last good state published")

	kind, lastErr := m.LastFailure()
	assert.Equal(t, FailureCommunication, kind)
	assert.ErrorIs(t, lastErr, gateway.ErrCommunication)
}

func TestRefreshSuccessClearsFailure(t *testing.T) {
	m, fetcher, towers, clock := newTestMonitor(t, nil)

	fetcher.EXPECT().Fetch(gomock.Any()).Return(nil, gateway.ErrParse)
	require.Error(t, m.Refresh(context.Background()))

	kind, err := m.LastFailure()
	assert.Equal(t, FailureParse, kind)
	assert.Error(t, err)

	snapshot := testSnapshot(map[string]any{})
	fetcher.EXPECT().Fetch(gomock.Any()).Return(snapshot, nil)
	towers.EXPECT().Resolve(gomock.Any(), snapshot, "", "", false).
		Return(nil, models.LookupNoSignal)
	clock.EXPECT().Now().Return(time.Now())

	require.NoError(t, m.Refresh(context.Background()))

	kind, err = m.LastFailure()
	assert.Equal(t, FailureNone, kind)
	assert.NoError(t, err)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected FailureKind
	}{
		{
			name:     "communication",
			err:      fmt.Errorf("%w: dial tcp: timeout", gateway.ErrCommunication),
			expected: FailureCommunication,
		},
		{
			name:     "parse",
			err:      fmt.Errorf("%w: unexpected end of input", gateway.ErrParse),
			expected: FailureParse,
		},
		{
			name:     "auth",
			err:      fmt.Errorf("%w: status 401", gateway.ErrAuthentication),
			expected: FailureAuth,
		},
		{
			name:     "unclassified is never retryable",
			err:      errors.New("nil pointer dereference"),
			expected: FailureNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classify(tt.err))
		})
	}
}

func TestFailureKindRetryable(t *testing.T) {
	assert.True(t, FailureCommunication.Retryable())
	assert.True(t, FailureParse.Retryable())
	assert.False(t, FailureAuth.Retryable())
	assert.False(t, FailureNone.Retryable())
}

func TestEvaluateDrift(t *testing.T) {
	tests := []struct {
		name      string
		preferred string
		data      map[string]any
		expected  bool
	}{
		{
			name:      "no preference never drifts",
			preferred: models.ModeNone,
			data:      map[string]any{"activeSim": map[string]any{"networkMode": "LTE"}},
			expected:  false,
		},
		{
			name:      "matching mode",
			preferred: models.ModeLTE,
			data:      map[string]any{"activeSim": map[string]any{"networkMode": "LTE"}},
			expected:  false,
		},
		{
			name:      "mismatched mode drifts",
			preferred: models.Mode5GSA,
			data:      map[string]any{"activeSim": map[string]any{"networkMode": "LTE"}},
			expected:  true,
		},
		{
			name:      "unknown mode never alerts",
			preferred: models.ModeLTE,
			data:      map[string]any{},
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Host: "h", PreferredMode: tt.preferred}
			require.NoError(t, cfg.Validate())

			m, _, _, _ := newTestMonitor(t, cfg)
			assert.Equal(t, tt.expected, m.evaluateDrift(testSnapshot(tt.data)))
		})
	}
}

func TestRefreshAppliesIdentityOverrides(t *testing.T) {
	cfg := testConfig(t)
	cfg.MCCOverride = "311"
	cfg.MNCOverride = "480"

	m, fetcher, towers, clock := newTestMonitor(t, cfg)

	snapshot := testSnapshot(map[string]any{
		"activeSim": map[string]any{"mcc": "310", "mnc": "260"},
	})

	fetcher.EXPECT().Fetch(gomock.Any()).Return(snapshot, nil)
	towers.EXPECT().Resolve(gomock.Any(), snapshot, "311", "480", true).
		Return(nil, models.LookupMissingToken)
	clock.EXPECT().Now().Return(time.Now())

	require.NoError(t, m.Refresh(context.Background()))
}

func TestStartRunsInitialAndTickedCycles(t *testing.T) {
	m, fetcher, towers, clock := newTestMonitor(t, nil)

	tick := make(chan time.Time, 1)
	ticker := NewMockTicker(gomock.NewController(t))
	ticker.EXPECT().Chan().Return((<-chan time.Time)(tick)).AnyTimes()
	ticker.EXPECT().Stop()

	clock.EXPECT().Ticker(60 * time.Second).Return(ticker)
	clock.EXPECT().Now().Return(time.Now()).Times(2)

	snapshot := testSnapshot(map[string]any{})
	refreshed := make(chan struct{}, 2)

	fetcher.EXPECT().Fetch(gomock.Any()).
		DoAndReturn(func(context.Context) (*models.TelemetrySnapshot, error) {
			refreshed <- struct{}{}
			return snapshot, nil
		}).Times(2)
	towers.EXPECT().Resolve(gomock.Any(), snapshot, "", "", false).
		Return(nil, models.LookupNoSignal).Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)

	go func() {
		errCh <- m.Start(ctx)
	}()

	waitFor := func() {
		select {
		case <-refreshed:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for refresh cycle")
		}
	}

	waitFor() // initial refresh

	tick <- time.Now()
	waitFor() // ticked refresh

	require.NoError(t, m.Stop(context.Background()))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Start to return")
	}
}

func TestStartReturnsOnContextCancel(t *testing.T) {
	m, fetcher, towers, clock := newTestMonitor(t, nil)

	ticker := NewMockTicker(gomock.NewController(t))
	ticker.EXPECT().Chan().Return((<-chan time.Time)(make(chan time.Time))).AnyTimes()
	ticker.EXPECT().Stop()

	clock.EXPECT().Ticker(gomock.Any()).Return(ticker)
	clock.EXPECT().Now().Return(time.Now()).AnyTimes()

	snapshot := testSnapshot(map[string]any{})
	fetcher.EXPECT().Fetch(gomock.Any()).Return(snapshot, nil)
	towers.EXPECT().Resolve(gomock.Any(), snapshot, "", "", false).
		Return(nil, models.LookupNoSignal)

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)

	go func() {
		errCh <- m.Start(ctx)
	}()

	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Start to return")
	}
}
