// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/elastic/monitoring-adapter/internal/pkg/adapter"
	"github.com/elastic/monitoring-adapter/internal/pkg/es"
)

// HTTPErrResp is the body of every error response.
type HTTPErrResp struct {
	StatusCode int           `json:"statusCode"`
	Error      string        `json:"error"`
	Message    string        `json:"message,omitempty"`
	Level      zerolog.Level `json:"-"`
}

// NewHTTPErrResp maps an error to its response.
func NewHTTPErrResp(err error) HTTPErrResp {
	var (
		vErr  *adapter.ValidationError
		exErr *adapter.ExecutorError
		esErr *es.ErrElastic
	)

	switch {
	case errors.As(err, &vErr):
		return HTTPErrResp{
			StatusCode: http.StatusBadRequest,
			Error:      "BadRequest",
			Message:    vErr.Error(),
			Level:      zerolog.InfoLevel,
		}
	case errors.Is(err, context.Canceled):
		return HTTPErrResp{
			StatusCode: http.StatusServiceUnavailable,
			Error:      "ServiceUnavailable",
			Message:    "request canceled",
			Level:      zerolog.DebugLevel,
		}
	case errors.As(err, &esErr):
		return HTTPErrResp{
			StatusCode: http.StatusBadGateway,
			Error:      "ElasticsearchError",
			Message:    esErr.Error(),
			Level:      zerolog.WarnLevel,
		}
	case errors.As(err, &exErr):
		return HTTPErrResp{
			StatusCode: http.StatusBadGateway,
			Error:      "BadGateway",
			Message:    exErr.Error(),
			Level:      zerolog.WarnLevel,
		}
	}

	return HTTPErrResp{
		StatusCode: http.StatusInternalServerError,
		Error:      "InternalServerError",
		Message:    err.Error(),
		Level:      zerolog.ErrorLevel,
	}
}

// Write writes the error as JSON with its status code.
func (er HTTPErrResp) Write(w http.ResponseWriter) error {
	data, err := json.Marshal(&er)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(er.StatusCode)
	_, err = w.Write(data)
	return err
}
