// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package monitor

import (
	"context"
	"errors"

	"github.com/elastic/beats/v7/libbeat/monitoring"

	"github.com/elastic/monitoring-adapter/internal/pkg/adapter"
	"github.com/elastic/monitoring-adapter/internal/pkg/limit"
)

var (
	registry *monitoring.Registry

	cntHTTPNew   *monitoring.Uint
	cntHTTPClose *monitoring.Uint

	cntMLJobs    routeStats
	cntPipelines routeStats
	cntStatus    routeStats
)

func initMetrics(version string) {
	info := monitoring.GetNamespace("info").GetRegistry()
	if info.Get("version") == nil {
		monitoring.NewString(info, "version").Set(version)
	}
	if info.Get("name") == nil {
		monitoring.NewString(info, "name").Set(kServiceName)
	}
}

type routeStats struct {
	active    *monitoring.Uint
	total     *monitoring.Uint
	rateLimit *monitoring.Uint
	maxLimit  *monitoring.Uint
	failure   *monitoring.Uint
	drop      *monitoring.Uint
	invalid   *monitoring.Uint
	backend   *monitoring.Uint
	bodyIn    *monitoring.Uint
	bodyOut   *monitoring.Uint
}

func (rt *routeStats) Register(registry *monitoring.Registry) {
	rt.active = monitoring.NewUint(registry, "active")
	rt.total = monitoring.NewUint(registry, "total")
	rt.rateLimit = monitoring.NewUint(registry, "limit_rate")
	rt.maxLimit = monitoring.NewUint(registry, "limit_max")
	rt.failure = monitoring.NewUint(registry, "fail")
	rt.drop = monitoring.NewUint(registry, "drop")
	rt.invalid = monitoring.NewUint(registry, "invalid")
	rt.backend = monitoring.NewUint(registry, "backend_fail")
	rt.bodyIn = monitoring.NewUint(registry, "body_in")
	rt.bodyOut = monitoring.NewUint(registry, "body_out")
}

func init() {
	registry = monitoring.Default.NewRegistry("http_server")
	cntHTTPNew = monitoring.NewUint(registry, "tcp_open")
	cntHTTPClose = monitoring.NewUint(registry, "tcp_close")

	routesRegistry := registry.NewRegistry("routes")

	cntMLJobs.Register(routesRegistry.NewRegistry("ml_jobs"))
	cntPipelines.Register(routesRegistry.NewRegistry("pipeline_ids"))
	cntStatus.Register(routesRegistry.NewRegistry("status"))
}

func (rt *routeStats) IncError(err error) {
	var (
		vErr  *adapter.ValidationError
		exErr *adapter.ExecutorError
	)

	switch {
	case errors.Is(err, limit.ErrRateLimit):
		rt.rateLimit.Inc()
	case errors.Is(err, limit.ErrMaxLimit):
		rt.maxLimit.Inc()
	case errors.Is(err, context.Canceled):
		rt.drop.Inc()
	case errors.As(err, &vErr):
		rt.invalid.Inc()
	case errors.As(err, &exErr):
		rt.backend.Inc()
	default:
		rt.failure.Inc()
	}
}

func (rt *routeStats) IncStart() func() {
	rt.total.Inc()
	rt.active.Inc()
	return rt.active.Dec
}
