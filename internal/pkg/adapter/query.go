// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package adapter

import (
	"github.com/elastic/monitoring-adapter/internal/pkg/dsl"
)

const (
	fieldType          = "type"
	fieldMetricsetName = "metricset.name"
	fieldClusterUUID   = "cluster_uuid"
	fieldTimestamp     = "timestamp"

	formatEpochMillis = "epoch_millis"
	unmappedTypeLong  = "long"
)

// scopeQuery sets the query clause of root to the filters every operation
// shares: document type, cluster, optional entity and time range.
func scopeQuery(root *dsl.Node, scope QueryScope, aliases FieldAliasSet) {
	filter := root.Query().Bool().Filter()

	// Legacy documents carry a type, Metricbeat documents a metricset name.
	if len(aliases.Types) > 0 {
		should := filter.Bool().Should()
		for _, t := range aliases.Types {
			should.Term(fieldType, t, nil)
			should.Term(fieldMetricsetName, t, nil)
		}
	}

	switch {
	case scope.standalone():
		filter.Bool().MustNot().Exists(fieldClusterUUID)
	case scope.ClusterID != "":
		filter.Term(fieldClusterUUID, scope.ClusterID, nil)
	}

	if scope.EntityID != "" && !aliases.Entity.IsZero() {
		b := filter.Bool()
		should := b.Should()
		for _, path := range aliases.Entity.Candidates() {
			should.Term(path, scope.EntityID, nil)
		}
		b.MinimumShouldMatch(1)
	}

	filter.Range(fieldTimestamp,
		dsl.WithRangeGTE(scope.Start),
		dsl.WithRangeLTE(scope.End),
		dsl.WithRangeFormat(formatEpochMillis),
	)
}

// aggField is the field aggregations and collapse run on. Legacy documents
// are the ones the backend can always collapse on.
func aggField(a FieldAlias) string {
	if a.Legacy != "" {
		return a.Legacy
	}
	return a.Current
}
