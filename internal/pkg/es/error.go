// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package es

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

const (
	unknownErrorType       = "unknown error"
	indexNotFoundErrorType = "index_not_found_exception"
	timeoutErrorType       = "timeout_exception"
	parsingErrorType       = "parsing_exception"
)

var (
	ErrIndexNotFound = errors.New("index not found")
	ErrTimeout       = errors.New("timeout")
	ErrMalformed     = errors.New("malformed query")

	errorCheckQueue = []struct {
		match string
		ty    string
	}{
		{ErrIndexNotFound.Error(), indexNotFoundErrorType},
		{indexNotFoundErrorType, indexNotFoundErrorType},
		{ErrTimeout.Error(), timeoutErrorType},
		{parsingErrorType, parsingErrorType},
	}
)

// ErrElastic is a failed request as reported by Elasticsearch.
type ErrElastic struct {
	Status int
	Type   string
	Reason string
	Cause  struct {
		Type   string
		Reason string
	}
}

func (e *ErrElastic) Unwrap() error {
	switch e.Type {
	case indexNotFoundErrorType:
		return ErrIndexNotFound
	case timeoutErrorType:
		return ErrTimeout
	case parsingErrorType:
		return ErrMalformed
	}
	return nil
}

func (e *ErrElastic) Error() string {
	const msg = "elastic fail "
	var b strings.Builder
	b.Grow(len(msg) + 11 + len(e.Type) + len(e.Reason) + len(e.Cause.Type) + len(e.Cause.Reason))
	b.WriteString(msg)
	b.WriteString(strconv.Itoa(e.Status))
	for _, s := range []string{e.Type, e.Reason, e.Cause.Type, e.Cause.Reason} {
		if s != "" {
			b.WriteString(": ")
			b.WriteString(s)
		}
	}
	return b.String()
}

// TranslateError turns the error member of a response into an error.
// 2xx statuses are not errors.
func TranslateError(status int, rawError json.RawMessage) error {
	if status >= 200 && status < 300 {
		return nil
	}

	if len(rawError) == 0 {
		return &ErrElastic{Status: status}
	}

	// Detailed errors are objects; some proxies answer with a bare string.
	var detailed ErrorT
	if err := json.Unmarshal(rawError, &detailed); err == nil {
		e := &ErrElastic{
			Status: status,
			Type:   detailed.Type,
			Reason: detailed.Reason,
		}
		e.Cause.Type = detailed.Cause.Type
		e.Cause.Reason = detailed.Cause.Reason
		return e
	}

	reason := string(rawError)
	var s string
	if err := json.Unmarshal(rawError, &s); err == nil {
		reason = s
	}

	return &ErrElastic{
		Status: status,
		Type:   errType(reason),
		Reason: reason,
	}
}

func errType(errBody string) string {
	for _, check := range errorCheckQueue {
		if strings.Contains(errBody, check.match) {
			return check.ty
		}
	}
	return unknownErrorType
}
