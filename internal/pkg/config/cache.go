// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package config

import "time"

const (
	defaultCacheNumCounters = 10000       // 10x times expected count
	defaultCacheMaxCost     = 1024 * 1024 // 1MiB cache size
	defaultLicenseTTL       = 5 * time.Minute
)

type Cache struct {
	NumCounters int64         `config:"num_counters"`
	MaxCost     int64         `config:"max_cost"`
	LicenseTTL  time.Duration `config:"license_ttl"`
}

func (c *Cache) InitDefaults() {
	c.NumCounters = defaultCacheNumCounters
	c.MaxCost = defaultCacheMaxCost
	c.LicenseTTL = defaultLicenseTTL
}
