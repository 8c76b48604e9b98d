// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"go.elastic.co/apm"
)

const (
	kModSearch     = "search"
	headerOpaqueID = "X-Opaque-Id"
)

// SearchExecutor runs queries with the search API. It holds no state beyond
// the transport and is safe for concurrent use. Timeouts and retries are
// whatever the transport was configured with.
type SearchExecutor struct {
	transport esapi.Transport
}

func NewSearchExecutor(transport esapi.Transport) *SearchExecutor {
	return &SearchExecutor{transport: transport}
}

func (s *SearchExecutor) Execute(ctx context.Context, q *Query) (*Response, error) {
	span, ctx := apm.StartSpan(ctx, "Search: "+q.Index, "search")
	defer span.End()

	var body []byte
	if q.Body != nil {
		var err error
		if body, err = json.Marshal(q.Body); err != nil {
			return nil, fmt.Errorf("marshal search body: %w", err)
		}
	}

	size := q.Size
	ignoreUnavailable := q.IgnoreUnavailable
	opaqueID := xid.New().String()

	req := esapi.SearchRequest{
		Index:             splitIndex(q.Index),
		Body:              bytes.NewReader(body),
		Size:              &size,
		IgnoreUnavailable: &ignoreUnavailable,
		FilterPath:        q.FilterPath,
		Header:            http.Header{headerOpaqueID: []string{opaqueID}},
	}

	start := time.Now()
	res, err := req.Do(ctx, s.transport)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var resp Response
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		if res.IsError() {
			return nil, &ErrElastic{Status: res.StatusCode}
		}
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	if res.IsError() {
		err := TranslateError(res.StatusCode, resp.Error)
		log.Debug().
			Err(err).
			Str("mod", kModSearch).
			Str("opaque_id", opaqueID).
			Str("index", q.Index).
			Msg("search failed")
		return nil, err
	}

	log.Trace().
		Str("mod", kModSearch).
		Str("opaque_id", opaqueID).
		Str("index", q.Index).
		Dur("rtt", time.Since(start)).
		Uint64("took", resp.Took).
		Int("hits", len(resp.Hits.Hits)).
		Int("aggs", len(resp.Aggregations)).
		Msg("search")

	return &resp, nil
}

func splitIndex(pattern string) []string {
	var indices []string
	for _, idx := range strings.Split(pattern, ",") {
		if idx = strings.TrimSpace(idx); idx != "" {
			indices = append(indices, idx)
		}
	}
	return indices
}
