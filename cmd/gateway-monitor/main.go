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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taylor-snow33/invisagig-monitor/pkg/config"
	"github.com/taylor-snow33/invisagig-monitor/pkg/gateway"
	"github.com/taylor-snow33/invisagig-monitor/pkg/kv"
	"github.com/taylor-snow33/invisagig-monitor/pkg/logger"
	"github.com/taylor-snow33/invisagig-monitor/pkg/monitor"
	"github.com/taylor-snow33/invisagig-monitor/pkg/towercache"
)

var errFailedToLoadConfig = fmt.Errorf("failed to load config")

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/invisagig-monitor/monitor.json", "Path to monitor config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg monitor.Config

	if err := config.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	logConfig := cfg.Logging
	if logConfig == nil {
		logConfig = &logger.Config{
			Level:  "info",
			Output: "stdout",
		}
	}

	monitorLogger, err := logger.NewComponentLogger(logConfig, "gateway-monitor")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := kv.NewSQLiteStore(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open tower cache store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			monitorLogger.Error().Err(err).Msg("Error closing tower cache store")
		}
	}()

	clientOpts := []gateway.ClientOption{
		gateway.WithRawPassthrough(cfg.IncludeRawJSON),
	}
	if timeout := time.Duration(cfg.FetchTimeout); timeout > 0 {
		clientOpts = append(clientOpts, gateway.WithTimeout(timeout))
	}

	client := gateway.NewClient(cfg.Host, cfg.Port, cfg.UseTLS, monitorLogger, clientOpts...)

	hasToken := cfg.OpenCellIDToken != ""

	var lookup towercache.LookupClient
	if hasToken {
		lookup = towercache.NewOpenCellIDClient(cfg.OpenCellIDToken, monitorLogger)
	}

	towers := towercache.NewResolver(store, cfg.InstanceID(), lookup, hasToken, monitorLogger)

	m := monitor.New(&cfg, client, towers, nil, monitorLogger)

	if cfg.ListenAddr != "" {
		api := monitor.NewAPIServer(m, monitorLogger)

		go func() {
			if err := api.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				monitorLogger.Error().Err(err).Msg("Status API server exited")
			}
		}()

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := api.Shutdown(shutdownCtx); err != nil {
				monitorLogger.Error().Err(err).Msg("Error shutting down status API")
			}
		}()
	}

	if err := m.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
