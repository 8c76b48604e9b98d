// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package adapter

import (
	"encoding/json"
	"testing"

	"github.com/elastic/beats/v7/libbeat/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeDoc(t *testing.T, s string) common.MapStr {
	t.Helper()
	var doc common.MapStr
	require.NoError(t, json.Unmarshal([]byte(s), &doc))
	return doc
}

func TestResolveAlias(t *testing.T) {
	alias := FieldAlias{Legacy: "job_stats.job_id", Current: "elasticsearch.ml.job.id"}

	tests := []struct {
		name  string
		doc   string
		want  interface{}
		found bool
	}{
		{
			name:  "legacy only",
			doc:   `{"job_stats": {"job_id": "old"}}`,
			want:  "old",
			found: true,
		},
		{
			name:  "current only",
			doc:   `{"elasticsearch": {"ml": {"job": {"id": "new"}}}}`,
			want:  "new",
			found: true,
		},
		{
			name:  "current wins when both are set",
			doc:   `{"job_stats": {"job_id": "old"}, "elasticsearch": {"ml": {"job": {"id": "new"}}}}`,
			want:  "new",
			found: true,
		},
		{
			name:  "empty current falls back",
			doc:   `{"job_stats": {"job_id": "old"}, "elasticsearch": {"ml": {"job": {"id": ""}}}}`,
			want:  "old",
			found: true,
		},
		{
			name:  "null current falls back",
			doc:   `{"job_stats": {"job_id": "old"}, "elasticsearch": {"ml": {"job": {"id": null}}}}`,
			want:  "old",
			found: true,
		},
		{
			name: "absent",
			doc:  `{"timestamp": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ResolveAlias(decodeDoc(t, tt.doc), alias)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestResolveStringAndNumber(t *testing.T) {
	doc := decodeDoc(t, `{"a": {"n": 12.5, "s": "7", "b": true, "o": {"x": 1}}}`)

	s, ok := ResolveString(doc, FieldAlias{Current: "a.n"})
	assert.True(t, ok)
	assert.Equal(t, "12.5", s)

	s, ok = ResolveString(doc, FieldAlias{Legacy: "a.b"})
	assert.True(t, ok)
	assert.Equal(t, "true", s)

	_, ok = ResolveString(doc, FieldAlias{Current: "a.o"})
	assert.False(t, ok)

	n, ok := ResolveNumber(doc, FieldAlias{Current: "a.s"})
	assert.True(t, ok)
	assert.Equal(t, 7.0, n)

	n, ok = ResolveNumber(doc, FieldAlias{Legacy: "a.n"})
	assert.True(t, ok)
	assert.Equal(t, 12.5, n)

	_, ok = ResolveNumber(doc, FieldAlias{Current: "a.b"})
	assert.False(t, ok)
}

func TestFieldAliasCandidates(t *testing.T) {
	assert.Equal(t, []string{"new", "old"}, FieldAlias{Legacy: "old", Current: "new"}.Candidates())
	assert.Equal(t, []string{"same"}, FieldAlias{Legacy: "same", Current: "same"}.Candidates())
	assert.Equal(t, []string{"old"}, FieldAlias{Legacy: "old"}.Candidates())
	assert.Empty(t, FieldAlias{}.Candidates())
}

func TestFieldAliasSetFields(t *testing.T) {
	fields := MLJobs.Fields()
	require.Len(t, fields, 7)
	assert.Equal(t, MLJobs.ID, fields[0])
	assert.Equal(t, MLJobs.NodeName, fields[3])
	assert.Equal(t, MLJobs.Metrics[2].FieldAlias, fields[6])

	fields = LogstashPipelines.Fields()
	require.Len(t, fields, 4)
	assert.Equal(t, LogstashPipelines.Nested, fields[1])
}
