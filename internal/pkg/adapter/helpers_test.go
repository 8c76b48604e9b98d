// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package adapter

import (
	"encoding/json"
	"testing"

	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elastic/monitoring-adapter/internal/pkg/adapter/mock"
	"github.com/elastic/monitoring-adapter/internal/pkg/es"
	testlog "github.com/elastic/monitoring-adapter/internal/pkg/testing/log"
)

const testIndex = ".monitoring-es-*"

func parseResponse(t *testing.T, body string) *es.Response {
	t.Helper()
	var resp es.Response
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return &resp
}

// newTestAdapter returns an adapter over a mock executor answering every
// query with body. The last query executed is stored in *got.
func newTestAdapter(t *testing.T, body string, got **es.Query) (*Adapter, *mock.MockExecutor) {
	t.Helper()
	_ = testlog.SetLogger(t)

	exec := mock.NewMockExecutor()
	if body != "" {
		exec.On("Execute", tmock.Anything, tmock.Anything).
			Return(parseResponse(t, body), nil).
			Run(func(args tmock.Arguments) {
				if got != nil {
					*got = args.Get(1).(*es.Query)
				}
			})
	}

	return New(exec, Config{Index: testIndex, PageSizeDefault: 100, IgnoreUnavailable: true}), exec
}

func bodyJSON(t *testing.T, q *es.Query) string {
	t.Helper()
	require.NotNil(t, q)
	d, err := json.Marshal(q.Body)
	require.NoError(t, err)
	return string(d)
}

func validScope() QueryScope {
	return QueryScope{Start: 1000, End: 2000, ClusterID: "abc"}
}
