// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package dsl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, n *Node) string {
	t.Helper()
	d, err := json.Marshal(n)
	require.NoError(t, err)
	return string(d)
}

func TestEmptyRoot(t *testing.T) {
	assert.Equal(t, `{}`, marshal(t, NewRoot()))
}

func TestCollapseAndSource(t *testing.T) {
	root := NewRoot()
	root.Size(10)
	root.Collapse("job_stats.job_id")
	root.Source().Includes("a.b", "c")
	root.Sort().SortOrder("timestamp", SortDescend)

	assert.JSONEq(t, `{
		"size": 10,
		"collapse": {"field": "job_stats.job_id"},
		"_source": {"includes": ["a.b", "c"]},
		"sort": [{"timestamp": "desc"}]
	}`, marshal(t, root))
}

func TestNestedBoolClauses(t *testing.T) {
	root := NewRoot()
	filter := root.Query().Bool().Filter()

	should := filter.Bool().Should()
	should.Term("type", "ml_job", nil)
	should.Term("metricset.name", "ml_job", nil)

	entity := filter.Bool()
	entity.Should().Term("a.uuid", "x", nil)
	entity.MinimumShouldMatch(1)

	filter.Bool().MustNot().Exists("cluster_uuid")

	assert.JSONEq(t, `{"query": {"bool": {"filter": [
		{"bool": {"should": [{"term": {"type": "ml_job"}}, {"term": {"metricset.name": "ml_job"}}]}},
		{"bool": {"should": [{"term": {"a.uuid": "x"}}], "minimum_should_match": 1}},
		{"bool": {"must_not": [{"exists": {"field": "cluster_uuid"}}]}}
	]}}}`, marshal(t, root))
}

func TestAggregations(t *testing.T) {
	root := NewRoot()
	aggs := root.Aggs()
	aggs.Agg("count").Cardinality("job_stats.job_id", 0)

	id := aggs.Agg("nest").Nested("pipelines").Aggs().Agg("id").TermsAgg("pipelines.id", 5)
	id.Aggs().Agg("unnest").ReverseNested().Aggs().Agg("nodes").TermsAgg("uuid", 5)

	assert.JSONEq(t, `{"aggs": {
		"count": {"cardinality": {"field": "job_stats.job_id"}},
		"nest": {
			"nested": {"path": "pipelines"},
			"aggs": {"id": {
				"terms": {"field": "pipelines.id", "size": 5},
				"aggs": {"unnest": {
					"reverse_nested": {},
					"aggs": {"nodes": {"terms": {"field": "uuid", "size": 5}}}
				}}
			}}
		}
	}}`, marshal(t, root))
}

func TestCardinalityThreshold(t *testing.T) {
	root := NewRoot()
	root.Aggs().Agg("count").Cardinality("id", 3000)
	assert.JSONEq(t, `{"aggs": {"count": {"cardinality": {"field": "id", "precision_threshold": 3000}}}}`, marshal(t, root))
}

func TestAddToLeafPanics(t *testing.T) {
	root := NewRoot()
	root.Param("size", 1)
	assert.Panics(t, func() {
		root.Agg("size").Aggs()
	})
}
