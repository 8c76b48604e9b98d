// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package license

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elastic/monitoring-adapter/internal/pkg/adapter"
	"github.com/elastic/monitoring-adapter/internal/pkg/adapter/mock"
	"github.com/elastic/monitoring-adapter/internal/pkg/es"
	testlog "github.com/elastic/monitoring-adapter/internal/pkg/testing/log"
)

type mapStore map[string]Info

func (m mapStore) GetLicense(id string) (Info, bool) {
	info, ok := m[id]
	return info, ok
}

func (m mapStore) SetLicense(id string, info Info) {
	m[id] = info
}

func parseResponse(t *testing.T, body string) *es.Response {
	t.Helper()
	var resp es.Response
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return &resp
}

func TestResolverGet(t *testing.T) {
	_ = testlog.SetLogger(t)

	var q *es.Query
	exec := mock.NewMockExecutor()
	exec.On("Execute", tmock.Anything, tmock.Anything).
		Return(parseResponse(t, `{"hits":{"hits":[{"_source":{"license":{"status":"active","type":"platinum"}}}]}}`), nil).
		Run(func(args tmock.Arguments) { q = args.Get(1).(*es.Query) }).
		Once()

	store := mapStore{}
	r := NewResolver(exec, ".monitoring-es-*", store)

	info, err := r.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, Info{Status: "active", Type: "platinum"}, info)
	assert.Equal(t, info, store["abc"])

	assert.Equal(t, ".monitoring-es-*", q.Index)
	assert.Equal(t, 1, q.Size)
	assert.Equal(t, []string{
		"hits.hits._source.license",
		"hits.hits._source.elasticsearch.cluster.stats.license",
	}, q.FilterPath)

	d, err := json.Marshal(q.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"_source": {"includes": ["license", "elasticsearch.cluster.stats.license"]},
		"query": {"bool": {"filter": [
			{"bool": {"should": [{"term": {"type": "cluster_stats"}}, {"term": {"metricset.name": "cluster_stats"}}]}},
			{"term": {"cluster_uuid": "abc"}}
		]}},
		"sort": [{"timestamp": {"order": "desc", "unmapped_type": "long"}}]
	}`, string(d))

	// Second lookup is served from the store.
	info, err = r.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, info.MLSupported())
	exec.AssertNumberOfCalls(t, "Execute", 1)
}

func TestResolverNoDocument(t *testing.T) {
	exec := mock.NewMockExecutor()
	exec.On("Execute", tmock.Anything, tmock.Anything).Return(&es.Response{}, nil).Once()

	r := NewResolver(exec, ".monitoring-es-*", nil)
	info, err := r.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, Info{}, info)
	assert.False(t, info.IsCapabilityEnabled())
}

func TestResolverStandalone(t *testing.T) {
	exec := mock.NewMockExecutor()
	r := NewResolver(exec, ".monitoring-es-*", nil)

	for _, id := range []string{"", adapter.StandaloneClusterUUID} {
		info, err := r.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, Info{}, info)
	}
	exec.AssertNumberOfCalls(t, "Execute", 0)
}

func TestResolverExecutorError(t *testing.T) {
	cause := errors.New("boom")
	exec := mock.NewMockExecutor()
	exec.On("Execute", tmock.Anything, tmock.Anything).Return(nil, cause).Once()

	store := mapStore{}
	r := NewResolver(exec, ".monitoring-es-*", store)
	_, err := r.Get(context.Background(), "abc")

	var exErr *adapter.ExecutorError
	require.ErrorAs(t, err, &exErr)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, store)
}
