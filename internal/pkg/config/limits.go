// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package config

import (
	"time"
)

// Limit is a rate (one request per Interval with Burst) and a cap on in
// flight requests (Max). Zero values disable the matching check.
type Limit struct {
	Interval time.Duration `config:"interval"`
	Burst    int           `config:"burst"`
	Max      int64         `config:"max"`
}

// ServerLimits are the per route limits; MaxConnections caps open
// connections, zero means unlimited.
type ServerLimits struct {
	MaxConnections int `config:"max_connections"`

	MLJobsLimit    Limit `config:"ml_jobs_limit"`
	PipelinesLimit Limit `config:"pipelines_limit"`
	StatusLimit    Limit `config:"status_limit"`
}

// InitDefaults initializes the defaults for the configuration.
func (c *ServerLimits) InitDefaults() {
	c.MLJobsLimit = Limit{
		Interval: 10 * time.Millisecond,
		Burst:    50,
		Max:      100,
	}
	c.PipelinesLimit = Limit{
		Interval: 10 * time.Millisecond,
		Burst:    50,
		Max:      100,
	}
	c.StatusLimit = Limit{
		Interval: 5 * time.Millisecond,
		Burst:    25,
		Max:      50,
	}
}
