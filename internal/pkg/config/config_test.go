// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	var cfg Config
	cfg.InitDefaults()
	return &cfg
}

func TestConfig(t *testing.T) {
	testcases := map[string]struct {
		err string
		cfg func() *Config
	}{
		"basic": {
			cfg: func() *Config {
				cfg := defaultConfig()
				cfg.Elasticsearch.Username = "elastic"
				cfg.Elasticsearch.Password = "changeme"
				return cfg
			},
		},
		"full": {
			cfg: func() *Config {
				cfg := defaultConfig()
				cfg.Elasticsearch.Protocol = "https"
				cfg.Elasticsearch.Hosts = []string{"es01:9200", "es02:9200"}
				cfg.Elasticsearch.APIKey = "id:secret"
				cfg.Elasticsearch.Timeout = 30 * time.Second
				cfg.Elasticsearch.MaxRetries = 0
				cfg.Server.Host = "0.0.0.0"
				cfg.Server.Port = 8080
				cfg.Server.Timeouts.Read = 5 * time.Second
				cfg.Server.Limits.MaxConnections = 200
				cfg.Server.Limits.MLJobsLimit = Limit{Interval: time.Second, Burst: 2, Max: 3}
				cfg.Logging.Level = "debug"
				cfg.Logging.Pretty = true
				cfg.Monitoring.ESIndexPattern = "*:.monitoring-es-*"
				cfg.Monitoring.LogstashIndexPattern = "*:.monitoring-logstash-*"
				cfg.Monitoring.MaxBucketSize = 500
				cfg.Monitoring.PrecisionThreshold = 3000
				cfg.Cache.LicenseTTL = time.Minute
				return cfg
			},
		},
		"bad-logging": {
			err: "invalid log level",
		},
		"bad-monitoring": {
			err: "max_bucket_size must be positive",
		},
		"empty": {
			err: "cannot connect to elasticsearch without username/password or api_key",
		},
	}

	for name, test := range testcases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join("testdata", name+".yml")
			cfg, err := LoadFile(path)
			if test.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.err)
				return
			}
			require.NoError(t, err)
			want := test.cfg()
			if !assert.True(t, cmp.Equal(want, cfg)) {
				t.Errorf("%s mismatch (-want +got):\n%s", name, cmp.Diff(want, cfg))
			}
		})
	}
}

func TestToESConfig(t *testing.T) {
	cfg := defaultConfig().Elasticsearch
	cfg.Hosts = []string{"localhost", "https://remote:9243", "other:9201"}
	cfg.Path = "es"
	cfg.Username = "elastic"
	cfg.Password = "changeme"
	cfg.Headers = map[string]string{"X-Test": "1"}

	escfg, err := cfg.ToESConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"http://localhost:9200/es",
		"https://remote:9243/es",
		"http://other:9201/es",
	}, escfg.Addresses)
	assert.Equal(t, "elastic", escfg.Username)
	assert.Equal(t, "1", escfg.Header.Get("X-Test"))
	assert.Equal(t, 3, escfg.MaxRetries)
	assert.False(t, escfg.DisableRetry)
	assert.NotNil(t, escfg.Transport)
}

func TestBindAddress(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, "localhost:5602", cfg.Server.BindAddress())
}
