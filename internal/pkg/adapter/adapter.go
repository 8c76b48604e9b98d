// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package adapter turns a time range and entity scope into monitoring
// queries against Elasticsearch and normalizes the schema-versioned
// responses.
//
// Monitoring data is written either by the legacy internal collectors or by
// Metricbeat, which use different field names for the same values. Every
// read goes through ResolveAlias so both shapes produce the same output.
package adapter

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/elastic/monitoring-adapter/internal/pkg/es"
)

const (
	kModAdapter = "adapter"

	// DefaultPageSize is used when neither the caller nor Config picks one.
	DefaultPageSize = 10000
	// DefaultSortField orders listings, most recent first.
	DefaultSortField = "timestamp"
)

// Executor runs one query. Implementations own timeouts and cancellation,
// both driven by ctx.
type Executor interface {
	Execute(ctx context.Context, q *es.Query) (*es.Response, error)
}

// Config is fixed for the life of an Adapter.
type Config struct {
	Index              string
	PageSizeDefault    int
	IgnoreUnavailable  bool
	PrecisionThreshold uint64
}

// Adapter holds no state besides its executor and config and is safe for
// concurrent use.
type Adapter struct {
	exec Executor
	cfg  Config
}

func New(exec Executor, cfg Config) *Adapter {
	if cfg.PageSizeDefault <= 0 {
		cfg.PageSizeDefault = DefaultPageSize
	}
	return &Adapter{
		exec: exec,
		cfg:  cfg,
	}
}

func (a *Adapter) execute(ctx context.Context, op string, q *es.Query) (*es.Response, error) {
	start := time.Now()
	resp, err := a.exec.Execute(ctx, q)
	if err != nil {
		log.Debug().
			Err(err).
			Str("mod", kModAdapter).
			Str("op", op).
			Str("index", q.Index).
			Msg("query failed")
		return nil, &ExecutorError{Message: op + " failed", Cause: err}
	}

	log.Trace().
		Str("mod", kModAdapter).
		Str("op", op).
		Str("index", q.Index).
		Dur("rtt", time.Since(start)).
		Msg("query done")
	return resp, nil
}
