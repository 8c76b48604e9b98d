// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package cache implements an in-memory cache used to track cluster licenses.
package cache

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/elastic/monitoring-adapter/internal/pkg/config"
	"github.com/elastic/monitoring-adapter/internal/pkg/license"
)

type Cache interface {
	Reconfigure(config.Cache) error

	SetLicense(clusterUUID string, info license.Info)
	GetLicense(clusterUUID string) (license.Info, bool)
}

// Cacher is the store behind CacheT.
type Cacher interface {
	Get(key interface{}) (interface{}, bool)
	Set(key, value interface{}, cost int64) bool
	SetWithTTL(key, value interface{}, cost int64, ttl time.Duration) bool
	Wait()
	Close()
}

type CacheT struct {
	cache Cacher
	cfg   config.Cache
	mut   sync.RWMutex
}

// New creates a new cache.
func New(cfg config.Cache) (*CacheT, error) {
	cache, err := newCache(cfg)
	if err != nil {
		return nil, err
	}

	c := CacheT{
		cache: cache,
		cfg:   cfg,
	}

	return &c, nil
}

// Reconfigure will drop cache
func (c *CacheT) Reconfigure(cfg config.Cache) error {
	c.mut.Lock()
	defer c.mut.Unlock()

	cache, err := newCache(cfg)
	if err != nil {
		return err
	}

	// Close down previous cache
	c.cache.Close()

	// And assign new one
	c.cfg = cfg
	c.cache = cache
	return nil
}

// SetLicense caches the license of a cluster for the configured TTL.
func (c *CacheT) SetLicense(clusterUUID string, info license.Info) {
	c.mut.RLock()
	defer c.mut.RUnlock()

	scopedKey := "license:" + clusterUUID
	cost := len(clusterUUID) + len(info.Status) + len(info.Type)
	ttl := c.cfg.LicenseTTL
	ok := c.cache.SetWithTTL(scopedKey, info, int64(cost), ttl)
	log.Trace().
		Bool("ok", ok).
		Str("cluster", clusterUUID).
		Str("type", info.Type).
		Int("cost", cost).
		Dur("ttl", ttl).
		Msg("License cache SET")
}

// GetLicense returns the cached license of a cluster.
func (c *CacheT) GetLicense(clusterUUID string) (license.Info, bool) {
	c.mut.RLock()
	defer c.mut.RUnlock()

	scopedKey := "license:" + clusterUUID
	if v, ok := c.cache.Get(scopedKey); ok {
		log.Trace().Str("cluster", clusterUUID).Msg("License cache HIT")
		info, ok := v.(license.Info)
		if !ok {
			log.Error().Str("cluster", clusterUUID).Msg("License cache cast fail")
			return license.Info{}, false
		}
		return info, true
	}

	log.Trace().Str("cluster", clusterUUID).Msg("License cache MISS")
	return license.Info{}, false
}

// wait blocks until pending writes are visible.
func (c *CacheT) wait() {
	c.mut.RLock()
	defer c.mut.RUnlock()
	c.cache.Wait()
}

// Close releases the cache.
func (c *CacheT) Close() {
	c.mut.Lock()
	defer c.mut.Unlock()
	c.cache.Close()
}
