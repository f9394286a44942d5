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

//go:generate mockgen -destination=mock_monitor.go -package=monitor github.com/taylor-snow33/invisagig-monitor/pkg/monitor Clock,Ticker,TelemetryFetcher,TowerResolver

package monitor

import (
	"context"
	"time"

	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

// Clock abstracts time-related operations.
type Clock interface {
	Now() time.Time
	Ticker(d time.Duration) Ticker
}

// Ticker abstracts the ticker behavior.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// TelemetryFetcher retrieves one normalized snapshot per refresh cycle.
// Implemented by gateway.Client.
type TelemetryFetcher interface {
	Fetch(ctx context.Context) (*models.TelemetrySnapshot, error)
}

// TowerResolver resolves the serving tower for a snapshot. Implemented by
// towercache.Resolver.
type TowerResolver interface {
	Resolve(
		ctx context.Context,
		snapshot *models.TelemetrySnapshot,
		mcc, mnc string,
		identityOK bool,
	) (*models.TowerLocation, models.LookupStatus)
}
