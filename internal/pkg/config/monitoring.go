// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package config

import (
	"fmt"
)

const (
	defaultESIndexPattern       = ".monitoring-es-*,metrics-elasticsearch.stack_monitoring.*"
	defaultLogstashIndexPattern = ".monitoring-logstash-*,metrics-logstash.stack_monitoring.*"
	defaultMaxBucketSize        = 10000
	defaultMinESVersion         = "6.4.0"
)

// Monitoring selects where monitoring documents live and how queries are sized.
type Monitoring struct {
	ESIndexPattern       string `config:"es_index_pattern"`
	LogstashIndexPattern string `config:"logstash_index_pattern"`
	MaxBucketSize        int    `config:"max_bucket_size"`
	PrecisionThreshold   uint64 `config:"precision_threshold"`
	MinESVersion         string `config:"min_es_version"`
}

// InitDefaults initializes the defaults for the configuration.
func (c *Monitoring) InitDefaults() {
	c.ESIndexPattern = defaultESIndexPattern
	c.LogstashIndexPattern = defaultLogstashIndexPattern
	c.MaxBucketSize = defaultMaxBucketSize
	c.MinESVersion = defaultMinESVersion
}

// Validate ensures that the configuration is valid.
func (c *Monitoring) Validate() error {
	if c.ESIndexPattern == "" || c.LogstashIndexPattern == "" {
		return fmt.Errorf("monitoring index patterns must not be empty")
	}
	if c.MaxBucketSize <= 0 {
		return fmt.Errorf("max_bucket_size must be positive")
	}
	return nil
}
