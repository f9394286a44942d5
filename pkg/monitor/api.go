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
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/taylor-snow33/invisagig-monitor/pkg/derive"
	"github.com/taylor-snow33/invisagig-monitor/pkg/logger"
	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

const (
	apiReadTimeout  = 10 * time.Second
	apiWriteTimeout = 10 * time.Second
	apiIdleTimeout  = 60 * time.Second
)

// APIServer is a read-only HTTP projection of the monitor's published state.
// It never triggers refreshes of its own.
type APIServer struct {
	monitor *Monitor
	router  *mux.Router
	server  *http.Server
	logger  logger.Logger
}

// NewAPIServer creates the status API for a monitor.
func NewAPIServer(m *Monitor, log logger.Logger) *APIServer {
	s := &APIServer{
		monitor: m,
		router:  mux.NewRouter(),
		logger:  log,
	}

	s.router.HandleFunc("/api/status", s.getStatus).Methods(http.MethodGet)
	s.router.HandleFunc("/api/snapshot", s.getSnapshot).Methods(http.MethodGet)

	return s
}

// statusResponse is the wire shape of GET /api/status.
type statusResponse struct {
	LookupStatus   models.LookupStatus `json:"lookup_status"`
	ConnectionMode string              `json:"connection_mode"`
	SignalHealth   *int                `json:"signal_health,omitempty"`
	Drifted        bool                `json:"drifted"`
	PreferredMode  string              `json:"preferred_mode"`
	CAActiveLTE    int                 `json:"ca_active_lte"`
	CAActiveNR5G   int                 `json:"ca_active_nr5g"`
	ENodeBID       *int64              `json:"enodeb_id,omitempty"`
	Tower          *towerResponse      `json:"tower,omitempty"`
	UpdatedAt      time.Time           `json:"updated_at"`
	LastError      string              `json:"last_error,omitempty"`
	LastErrorKind  FailureKind         `json:"last_error_kind"`
	Retryable      bool                `json:"retryable"`
}

type towerResponse struct {
	Latitude   float64  `json:"lat"`
	Longitude  float64  `json:"lon"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
	Bearing    *float64 `json:"bearing_degrees,omitempty"`
	Cardinal   string   `json:"bearing_cardinal,omitempty"`
	AimHint    string   `json:"aim_hint,omitempty"`
}

func (s *APIServer) getStatus(w http.ResponseWriter, _ *http.Request) {
	state := s.monitor.State()
	if state == nil {
		writeError(w, "no refresh cycle has completed yet", http.StatusServiceUnavailable)
		return
	}

	kind, lastErr := s.monitor.LastFailure()

	resp := statusResponse{
		LookupStatus:   state.LookupStatus,
		ConnectionMode: derive.ConnectionMode(state.Snapshot),
		SignalHealth:   derive.SignalHealthFromSnapshot(state.Snapshot),
		Drifted:        state.Drifted,
		PreferredMode:  s.monitor.config.PreferredMode,
		CAActiveLTE:    derive.CarrierAggregationCount(state.Snapshot, "lte"),
		CAActiveNR5G:   derive.CarrierAggregationCount(state.Snapshot, "nr5g"),
		UpdatedAt:      state.UpdatedAt,
		LastErrorKind:  kind,
		Retryable:      kind.Retryable(),
	}

	if enb, ok := derive.ENodeBID(state.Snapshot); ok {
		resp.ENodeBID = &enb
	}

	if lastErr != nil {
		resp.LastError = lastErr.Error()
	}

	if state.Tower != nil {
		resp.Tower = s.projectTower(state.Tower)
	}

	s.encodeJSONResponse(w, resp)
}

func (s *APIServer) getSnapshot(w http.ResponseWriter, _ *http.Request) {
	state := s.monitor.State()
	if state == nil {
		writeError(w, "no refresh cycle has completed yet", http.StatusServiceUnavailable)
		return
	}

	s.encodeJSONResponse(w, state.Snapshot)
}

// projectTower adds distance/bearing relative to the configured reference
// point, when one is set.
func (s *APIServer) projectTower(tower *models.TowerLocation) *towerResponse {
	resp := &towerResponse{
		Latitude:  tower.Latitude,
		Longitude: tower.Longitude,
	}

	cfg := &s.monitor.config
	if cfg.ReferenceLat == nil || cfg.ReferenceLon == nil {
		return resp
	}

	distance := derive.HaversineKm(*cfg.ReferenceLat, *cfg.ReferenceLon, tower.Latitude, tower.Longitude)
	bearing := derive.BearingDegrees(*cfg.ReferenceLat, *cfg.ReferenceLon, tower.Latitude, tower.Longitude)

	resp.DistanceKm = &distance
	resp.Bearing = &bearing
	resp.Cardinal = derive.CardinalDirection(bearing)
	resp.AimHint = derive.AimHint(bearing)

	return resp
}

// Start serves the API on addr, blocking until the server exits.
func (s *APIServer) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  apiReadTimeout,
		WriteTimeout: apiWriteTimeout,
		IdleTimeout:  apiIdleTimeout,
	}

	s.logger.Info().Str("addr", addr).Msg("Starting status API")

	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the API server.
func (s *APIServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	return s.server.Shutdown(ctx)
}

// Handler exposes the router, for tests.
func (s *APIServer) Handler() http.Handler {
	return s.router
}

func (s *APIServer) encodeJSONResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode API response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := map[string]any{
		"message": message,
		"status":  statusCode,
	}

	_ = json.NewEncoder(w).Encode(resp)
}
