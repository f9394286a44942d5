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

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBadValue = errors.New("value must be positive")

type testConfig struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type validatedConfig struct {
	Value int `json:"value"`
}

func (c *validatedConfig) Validate() error {
	if c.Value <= 0 {
		return errBadValue
	}

	return nil
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadAndValidate(t *testing.T) {
	t.Run("loads plain config", func(t *testing.T) {
		path := writeConfigFile(t, `{"name": "gateway", "value": 7}`)

		var cfg testConfig
		require.NoError(t, LoadAndValidate(context.Background(), path, &cfg))
		assert.Equal(t, "gateway", cfg.Name)
		assert.Equal(t, 7, cfg.Value)
	})

	t.Run("runs validation when implemented", func(t *testing.T) {
		path := writeConfigFile(t, `{"value": 0}`)

		var cfg validatedConfig

		err := LoadAndValidate(context.Background(), path, &cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, errBadValue)
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg testConfig

		err := LoadAndValidate(context.Background(), filepath.Join(t.TempDir(), "missing.json"), &cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeConfigFile(t, `{"name": `)

		var cfg testConfig
		assert.Error(t, LoadAndValidate(context.Background(), path, &cfg))
	})
}
