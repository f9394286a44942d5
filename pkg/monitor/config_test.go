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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

func TestConfigValidate(t *testing.T) {
	t.Run("host required", func(t *testing.T) {
		cfg := &Config{}
		assert.ErrorIs(t, cfg.Validate(), errHostRequired)
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg := &Config{Host: "192.168.225.1"}
		require.NoError(t, cfg.Validate())

		assert.Equal(t, 80, cfg.Port)
		assert.Equal(t, 60*time.Second, time.Duration(cfg.PollInterval))
		assert.Equal(t, models.ModeNone, cfg.PreferredMode)
		assert.Equal(t, "/var/lib/invisagig-monitor/towers.db", cfg.DBPath)
	})

	t.Run("port range", func(t *testing.T) {
		cfg := &Config{Host: "h", Port: 70000}
		assert.ErrorIs(t, cfg.Validate(), errInvalidPort)

		cfg = &Config{Host: "h", Port: -1}
		assert.ErrorIs(t, cfg.Validate(), errInvalidPort)
	})

	t.Run("poll interval clamped low", func(t *testing.T) {
		cfg := &Config{Host: "h", PollInterval: models.Duration(time.Second)}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 10*time.Second, time.Duration(cfg.PollInterval))
	})

	t.Run("poll interval clamped high", func(t *testing.T) {
		cfg := &Config{Host: "h", PollInterval: models.Duration(2 * time.Hour)}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, time.Hour, time.Duration(cfg.PollInterval))
	})

	t.Run("poll interval in range untouched", func(t *testing.T) {
		cfg := &Config{Host: "h", PollInterval: models.Duration(5 * time.Minute)}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 5*time.Minute, time.Duration(cfg.PollInterval))
	})

	t.Run("preferred mode enum", func(t *testing.T) {
		for _, mode := range []string{models.ModeLTE, models.Mode5GNSA, models.Mode5GSA, models.ModeNone} {
			cfg := &Config{Host: "h", PreferredMode: mode}
			assert.NoError(t, cfg.Validate(), "mode %q", mode)
		}

		cfg := &Config{Host: "h", PreferredMode: "4G"}
		assert.ErrorIs(t, cfg.Validate(), errInvalidMode)
	})

	t.Run("partial reference point rejected", func(t *testing.T) {
		lat := 40.7

		cfg := &Config{Host: "h", ReferenceLat: &lat}
		assert.ErrorIs(t, cfg.Validate(), errPartialReference)

		lon := -74.0
		cfg = &Config{Host: "h", ReferenceLat: &lat, ReferenceLon: &lon}
		assert.NoError(t, cfg.Validate())
	})
}

func TestConfigInstanceID(t *testing.T) {
	cfg := &Config{Host: "192.168.225.1", Port: 80}
	assert.Equal(t, "192.168.225.1-80", cfg.InstanceID())
}
