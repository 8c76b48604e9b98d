// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package es

import (
	"encoding/json"
)

// Query is one search: the target index pattern, request parameters and the
// DSL body. Body is marshalled as is; *dsl.Node and json.RawMessage both fit.
type Query struct {
	Index             string
	Size              int
	IgnoreUnavailable bool
	// FilterPath limits the response to the listed paths.
	FilterPath []string
	Body       json.Marshaler
}

// Error
type ErrorT struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
	Cause  struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"caused_by"`
}

type HitT struct {
	ID     string          `json:"_id"`
	Index  string          `json:"_index"`
	Source json.RawMessage `json:"_source"`
	Sort   []interface{}   `json:"sort,omitempty"`
}

func (hit *HitT) Unmarshal(v interface{}) error {
	if len(hit.Source) == 0 {
		return nil
	}
	return json.Unmarshal(hit.Source, v)
}

type HitsT struct {
	Hits  []HitT `json:"hits"`
	Total struct {
		Relation string `json:"relation"`
		Value    uint64 `json:"value"`
	} `json:"total"`
}

// Response is a decoded search response. Aggregations are kept raw; the
// caller knows the shape it asked for.
type Response struct {
	Status   int    `json:"status"`
	Took     uint64 `json:"took"`
	TimedOut bool   `json:"timed_out"`
	Shards   struct {
		Total      uint64 `json:"total"`
		Successful uint64 `json:"successful"`
		Skipped    uint64 `json:"skipped"`
		Failed     uint64 `json:"failed"`
	} `json:"_shards"`
	Hits         HitsT                      `json:"hits"`
	Aggregations map[string]json.RawMessage `json:"aggregations,omitempty"`

	Error json.RawMessage `json:"error,omitempty"`
}
