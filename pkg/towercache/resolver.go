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

// Package towercache resolves the serving cell tower's location through an
// external lookup service, behind a persistent time-bounded cache.
package towercache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/taylor-snow33/invisagig-monitor/pkg/kv"
	"github.com/taylor-snow33/invisagig-monitor/pkg/logger"
	"github.com/taylor-snow33/invisagig-monitor/pkg/models"
)

// CacheTTL is the freshness window after which a cached tower lookup is
// eligible for refresh. Stale entries are overwritten, never purged.
const CacheTTL = 24 * time.Hour

// storeKeyPrefix scopes and versions the persisted cache blob per instance.
const storeKeyPrefix = "towercache/v1/"

// Resolver owns the tower location cache for one gateway instance. All of
// its methods are serialized; a refresh cycle never observes partial cache
// state.
type Resolver struct {
	store    kv.KVStore
	storeKey string
	lookup   LookupClient
	hasToken bool
	nowFn    func() time.Time
	logger   logger.Logger

	mu      sync.Mutex
	loaded  bool
	entries map[string]*models.TowerCacheEntry
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithNowFunc overrides the clock, for tests.
func WithNowFunc(now func() time.Time) ResolverOption {
	return func(r *Resolver) {
		r.nowFn = now
	}
}

// NewResolver creates a tower resolver for one gateway instance. instanceID
// scopes the persisted cache; hasToken reflects whether a lookup credential
// is configured.
func NewResolver(
	store kv.KVStore,
	instanceID string,
	lookup LookupClient,
	hasToken bool,
	log logger.Logger,
	opts ...ResolverOption,
) *Resolver {
	r := &Resolver{
		store:    store,
		storeKey: storeKeyPrefix + instanceID,
		lookup:   lookup,
		hasToken: hasToken,
		nowFn:    time.Now,
		logger:   log,
		entries:  make(map[string]*models.TowerCacheEntry),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve runs the per-cycle tower resolution state machine. identityOK
// reports whether the identity resolver produced an MCC/MNC pair. Exactly
// one LookupStatus is returned per call; the returned location is nil for
// every non-resolved status.
func (r *Resolver) Resolve(
	ctx context.Context,
	snapshot *models.TelemetrySnapshot,
	mcc, mnc string,
	identityOK bool,
) (*models.TowerLocation, models.LookupStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lteCell := snapshot.Section(models.SectionLTECell)
	if lteCell == nil {
		return nil, models.LookupNoSignal
	}

	cid, cidOK := models.FieldInt(lteCell, "lteCid")
	lac, lacOK := models.FieldInt(lteCell, "lteLac")

	if !cidOK || !lacOK || cid == 0 || lac == 0 {
		return nil, models.LookupMissingCIDLAC
	}

	if !identityOK {
		return nil, models.LookupMissingMCCMNC
	}

	if !r.hasToken || r.lookup == nil {
		return nil, models.LookupMissingToken
	}

	id := models.CellIdentity{MCC: mcc, MNC: mnc, LAC: lac, CID: cid}
	now := r.nowFn()

	if err := r.ensureLoaded(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("Tower cache load failed; continuing without persisted entries")
	}

	if entry, ok := r.entries[id.Key()]; ok && entry.Age(now) < CacheTTL {
		loc := entry.Location
		return &loc, models.LookupResolvedCache
	}

	location, err := r.lookup.Lookup(ctx, id)
	if err != nil {
		r.logger.Debug().Err(err).Str("cell", id.Key()).Msg("Tower lookup yielded no result")
		return nil, models.LookupFailed
	}

	previous, hadPrevious := r.entries[id.Key()]

	r.entries[id.Key()] = &models.TowerCacheEntry{
		Key:       id.Key(),
		FetchedAt: now,
		Location:  *location,
	}

	if err := r.persist(ctx); err != nil {
		// Never expose a half-written cache: the in-memory mutation is
		// discarded along with the failed persist. The lookup result itself
		// is still good for this cycle.
		if hadPrevious {
			r.entries[id.Key()] = previous
		} else {
			delete(r.entries, id.Key())
		}

		r.logger.Warn().Err(err).Str("cell", id.Key()).Msg("Tower cache persist failed; mutation discarded")
	}

	return location, models.LookupResolvedAPI
}

// ensureLoaded lazily loads the persisted cache, at most once per process
// lifetime. An empty store is a successful (empty) load. The loaded flag is
// only set on success so a transient store failure is retried next cycle.
func (r *Resolver) ensureLoaded(ctx context.Context) error {
	if r.loaded {
		return nil
	}

	value, found, err := r.store.Get(ctx, r.storeKey)
	if err != nil {
		return fmt.Errorf("load tower cache: %w", err)
	}

	if found {
		var entries map[string]*models.TowerCacheEntry

		if err := json.Unmarshal(value, &entries); err != nil {
			return fmt.Errorf("decode tower cache: %w", err)
		}

		r.entries = entries
		if r.entries == nil {
			r.entries = make(map[string]*models.TowerCacheEntry)
		}
	}

	r.loaded = true
	r.logger.Debug().Int("entries", len(r.entries)).Msg("Tower cache loaded")

	return nil
}

func (r *Resolver) persist(ctx context.Context) error {
	value, err := json.Marshal(r.entries)
	if err != nil {
		return fmt.Errorf("encode tower cache: %w", err)
	}

	if err := r.store.Put(ctx, r.storeKey, value); err != nil {
		return fmt.Errorf("persist tower cache: %w", err)
	}

	return nil
}

// EntryCount reports the number of cached towers, loading the cache first if
// needed. Used by the status API.
func (r *Resolver) EntryCount(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("Tower cache load failed")
	}

	return len(r.entries)
}
