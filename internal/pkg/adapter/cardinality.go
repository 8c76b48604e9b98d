// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package adapter

import (
	"context"
	"encoding/json"
	"math"

	"github.com/elastic/monitoring-adapter/internal/pkg/dsl"
	"github.com/elastic/monitoring-adapter/internal/pkg/es"
)

const (
	opEstimateCardinality = "estimate cardinality"
	aggIDCount            = "ids_count"
)

// CapabilityCheck gates EstimateCardinality without a backend round trip.
type CapabilityCheck interface {
	IsCapabilityEnabled() bool
}

// CapabilityFunc adapts a plain func to CapabilityCheck.
type CapabilityFunc func() bool

func (f CapabilityFunc) IsCapabilityEnabled() bool {
	return f()
}

// CardinalityEstimate is a distinct count from a cardinality aggregation.
// It is exact only below the precision threshold, so it is always reported
// as approximate.
type CardinalityEstimate struct {
	Value         int64 `json:"value"`
	IsApproximate bool  `json:"isApproximate"`
}

type cardinalityAgg struct {
	Value *float64 `json:"value"`
}

// EstimateCardinality counts the distinct ids in scope. It returns nil and
// issues no query when check is nil or disabled.
func (a *Adapter) EstimateCardinality(ctx context.Context, scope QueryScope, aliases FieldAliasSet, check CapabilityCheck) (*CardinalityEstimate, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if check == nil || !check.IsCapabilityEnabled() {
		return nil, nil
	}
	if aliases.ID.IsZero() {
		return nil, &ValidationError{Field: "aliases.id", Reason: "no id field"}
	}

	root := dsl.NewRoot()
	scopeQuery(root, scope, aliases)
	root.Aggs().Agg(aggIDCount).Cardinality(aggField(aliases.ID), a.cfg.PrecisionThreshold)

	resp, err := a.execute(ctx, opEstimateCardinality, &es.Query{
		Index:             a.cfg.Index,
		Size:              0,
		IgnoreUnavailable: a.cfg.IgnoreUnavailable,
		FilterPath:        []string{"aggregations." + aggIDCount + ".value"},
		Body:              root,
	})
	if err != nil {
		return nil, err
	}

	est := &CardinalityEstimate{IsApproximate: true}

	// filter_path drops the aggregation when nothing matched.
	raw, ok := resp.Aggregations[aggIDCount]
	if !ok {
		return est, nil
	}

	var agg cardinalityAgg
	if err := json.Unmarshal(raw, &agg); err != nil {
		return nil, &ExecutorError{Message: opEstimateCardinality + " failed", Cause: err}
	}
	if agg.Value != nil {
		est.Value = int64(math.Round(*agg.Value))
	}
	return est, nil
}
