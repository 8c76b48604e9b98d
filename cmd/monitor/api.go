// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package monitor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/elastic/monitoring-adapter/internal/pkg/adapter"
	"github.com/elastic/monitoring-adapter/internal/pkg/config"
	"github.com/elastic/monitoring-adapter/internal/pkg/license"
	"github.com/elastic/monitoring-adapter/internal/pkg/logger"
)

const (
	kMaxBodySize    = 64 * 1024
	headerRequestID = "X-Request-Id"
)

// LicenseGetter resolves the license of a monitored cluster.
type LicenseGetter interface {
	Get(ctx context.Context, clusterUUID string) (license.Info, error)
}

// MonitorAPI serves monitoring listings built by the adapters.
type MonitorAPI struct {
	es         *adapter.Adapter
	logstash   *adapter.Adapter
	licenses   LicenseGetter
	bucketSize int
	version    string
}

// NewMonitorAPI builds one adapter per monitoring index pattern over exec.
func NewMonitorAPI(exec adapter.Executor, cfg *config.Monitoring, licenses LicenseGetter, version string) *MonitorAPI {
	return &MonitorAPI{
		es: adapter.New(exec, adapter.Config{
			Index:              cfg.ESIndexPattern,
			PageSizeDefault:    cfg.MaxBucketSize,
			IgnoreUnavailable:  true,
			PrecisionThreshold: cfg.PrecisionThreshold,
		}),
		logstash: adapter.New(exec, adapter.Config{
			Index:             cfg.LogstashIndexPattern,
			PageSizeDefault:   cfg.MaxBucketSize,
			IgnoreUnavailable: true,
		}),
		licenses:   licenses,
		bucketSize: cfg.MaxBucketSize,
		version:    version,
	}
}

func requestLogger(r *http.Request, route string) zerolog.Logger {
	reqID := r.Header.Get(headerRequestID)
	if reqID == "" {
		reqID = xid.New().String()
	}
	return log.With().
		Str(logger.ECSHTTPRequestID, reqID).
		Str(logger.ECSHTTPRequestMethod, r.Method).
		Str(logger.ECSURLPath, r.URL.Path).
		Str("route", route).
		Logger()
}

// readBody decodes a JSON request body into v. Decode failures are the
// caller's fault.
func readBody(w http.ResponseWriter, r *http.Request, v interface{}, stats *routeStats) error {
	body := http.MaxBytesReader(w, r.Body, kMaxBodySize)
	data, err := io.ReadAll(body)
	if err != nil {
		return &adapter.ValidationError{Field: "body", Reason: err.Error()}
	}
	stats.bodyIn.Add(uint64(len(data)))

	if err := json.Unmarshal(data, v); err != nil {
		return &adapter.ValidationError{Field: "body", Reason: err.Error()}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, code int, v interface{}, stats *routeStats) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	n, err := w.Write(data)
	stats.bodyOut.Add(uint64(n))
	return err
}

// handleError logs err, counts it and writes the error response.
func handleError(zlog zerolog.Logger, w http.ResponseWriter, err error, start time.Time, stats *routeStats) {
	resp := NewHTTPErrResp(err)
	zlog.WithLevel(resp.Level).
		Err(err).
		Int(logger.ECSHTTPResponseCode, resp.StatusCode).
		Int64(logger.ECSEventDuration, time.Since(start).Nanoseconds()).
		Msg("fail request")

	if wErr := resp.Write(w); wErr != nil {
		zlog.Error().Err(wErr).Msg("fail writing error response")
	}
	stats.IncError(err)
}

func logSuccess(zlog zerolog.Logger, code int, start time.Time) {
	zlog.Debug().
		Int(logger.ECSHTTPResponseCode, code).
		Int64(logger.ECSEventDuration, time.Since(start).Nanoseconds()).
		Msg("request done")
}
