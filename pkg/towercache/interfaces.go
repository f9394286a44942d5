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

//go:generate mockgen -destination=mock_towercache.go -package=towercache github.com/taylor-snow33/invisagig-monitor/pkg/towercache LookupClient

package towercache

import (
	"context"
	"errors"

	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

// LookupClient is the external geolocation service, treated as a black box
// that returns either a location or no result.
type LookupClient interface {
	// Lookup resolves a cell identity to a tower location. Returns
	// ErrTowerNotFound when the service has no record of the cell; any
	// other error is a transport or service failure.
	Lookup(ctx context.Context, id models.CellIdentity) (*models.TowerLocation, error)
}

var (
	// ErrTowerNotFound means the lookup service explicitly reported no
	// record for the requested cell.
	ErrTowerNotFound = errors.New("tower not found")

	errLookupStatusCode = errors.New("lookup service returned unexpected status")
)
