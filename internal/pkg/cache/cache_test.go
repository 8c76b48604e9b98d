// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elastic/monitoring-adapter/internal/pkg/config"
	"github.com/elastic/monitoring-adapter/internal/pkg/license"
	testlog "github.com/elastic/monitoring-adapter/internal/pkg/testing/log"
)

func newTestCache(t *testing.T, ttl time.Duration) *CacheT {
	t.Helper()
	_ = testlog.SetLogger(t)

	var cfg config.Cache
	cfg.InitDefaults()
	cfg.LicenseTTL = ttl

	c, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestLicenseCache(t *testing.T) {
	c := newTestCache(t, time.Minute)

	_, ok := c.GetLicense("abc")
	assert.False(t, ok)

	want := license.Info{Status: "active", Type: "platinum"}
	c.SetLicense("abc", want)
	c.wait()

	got, ok := c.GetLicense("abc")
	require.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = c.GetLicense("other")
	assert.False(t, ok)
}

func TestLicenseCacheExpires(t *testing.T) {
	c := newTestCache(t, 50*time.Millisecond)

	c.SetLicense("abc", license.Info{Status: "active", Type: "trial"})
	c.wait()

	assert.Eventually(t, func() bool {
		_, ok := c.GetLicense("abc")
		return !ok
	}, 2*time.Second, 10*time.Millisecond)
}

func TestReconfigureDrops(t *testing.T) {
	c := newTestCache(t, time.Minute)

	c.SetLicense("abc", license.Info{Status: "active", Type: "gold"})
	c.wait()

	var cfg config.Cache
	cfg.InitDefaults()
	require.NoError(t, c.Reconfigure(cfg))

	_, ok := c.GetLicense("abc")
	assert.False(t, ok)
}
