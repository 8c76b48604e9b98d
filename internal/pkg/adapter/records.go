// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package adapter

import (
	"context"

	"github.com/elastic/beats/v7/libbeat/common"
	"github.com/rs/zerolog/log"

	"github.com/elastic/monitoring-adapter/internal/pkg/dsl"
	"github.com/elastic/monitoring-adapter/internal/pkg/es"
)

const opListRecords = "list records"

// NormalizedRecord is one entity as seen in its most recent document.
type NormalizedRecord struct {
	ID           string             `json:"id"`
	State        string             `json:"state,omitempty"`
	NodeID       string             `json:"nodeId,omitempty"`
	NodeName     string             `json:"nodeName,omitempty"`
	ExtraMetrics map[string]float64 `json:"metrics,omitempty"`
}

// ListRecords returns at most pageSize records, one per id, each from the
// most recent document by sortField. Zero pageSize and empty sortField pick
// the defaults.
func (a *Adapter) ListRecords(ctx context.Context, scope QueryScope, aliases FieldAliasSet, pageSize int, sortField string) ([]NormalizedRecord, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if aliases.ID.IsZero() {
		return nil, &ValidationError{Field: "aliases.id", Reason: "no id field"}
	}
	if pageSize <= 0 {
		pageSize = a.cfg.PageSizeDefault
	}
	if sortField == "" {
		sortField = DefaultSortField
	}

	paths := aliases.recordPaths()

	root := dsl.NewRoot()
	root.Sort().SortOpt(sortField, dsl.SortDescend, unmappedTypeLong)
	root.Collapse(aggField(aliases.ID))
	root.Source().Includes(paths...)
	scopeQuery(root, scope, aliases)

	filterPath := make([]string, 0, len(paths))
	for _, p := range paths {
		filterPath = append(filterPath, "hits.hits._source."+p)
	}

	resp, err := a.execute(ctx, opListRecords, &es.Query{
		Index:             a.cfg.Index,
		Size:              pageSize,
		IgnoreUnavailable: a.cfg.IgnoreUnavailable,
		FilterPath:        filterPath,
		Body:              root,
	})
	if err != nil {
		return nil, err
	}

	hits := resp.Hits.Hits
	records := make([]NormalizedRecord, 0, len(hits))
	seen := make(map[string]struct{}, len(hits))

	for i := range hits {
		var doc common.MapStr
		if err := hits[i].Unmarshal(&doc); err != nil {
			log.Debug().Err(err).Str("mod", kModAdapter).Str("op", opListRecords).Msg("skip undecodable hit")
			continue
		}

		rec, ok := normalize(doc, aliases)
		if !ok {
			continue
		}

		// Documents only carrying the current id cannot be collapsed by the
		// backend; the first one in sort order is the most recent.
		if _, dup := seen[rec.ID]; dup {
			continue
		}
		seen[rec.ID] = struct{}{}
		records = append(records, rec)
	}

	return records, nil
}

func normalize(doc common.MapStr, aliases FieldAliasSet) (NormalizedRecord, bool) {
	id, ok := ResolveString(doc, aliases.ID)
	if !ok {
		return NormalizedRecord{}, false
	}

	rec := NormalizedRecord{ID: id}
	rec.State, _ = ResolveString(doc, aliases.State)
	rec.NodeID, _ = ResolveString(doc, aliases.NodeID)
	if name, ok := ResolveString(doc, aliases.NodeName); ok {
		rec.NodeName = name
	} else {
		rec.NodeName = rec.NodeID
	}

	for _, m := range aliases.Metrics {
		if v, ok := ResolveNumber(doc, m.FieldAlias); ok {
			if rec.ExtraMetrics == nil {
				rec.ExtraMetrics = make(map[string]float64, len(aliases.Metrics))
			}
			rec.ExtraMetrics[m.Name] = v
		}
	}

	return rec, true
}
