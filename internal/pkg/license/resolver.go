// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package license

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/beats/v7/libbeat/common"
	"github.com/rs/zerolog/log"

	"github.com/elastic/monitoring-adapter/internal/pkg/adapter"
	"github.com/elastic/monitoring-adapter/internal/pkg/dsl"
	"github.com/elastic/monitoring-adapter/internal/pkg/es"
)

const (
	kModLicense = "license"

	FieldClusterUUID   = "cluster_uuid"
	FieldTimestamp     = "timestamp"
	typeClusterStats   = "cluster_stats"
	fieldType          = "type"
	fieldMetricsetName = "metricset.name"
)

var queryLatestClusterStats = prepareLatestClusterStats()

func prepareLatestClusterStats() *dsl.Tmpl {
	tmpl := dsl.NewTmpl()
	root := dsl.NewRoot()

	root.Sort().SortOpt(FieldTimestamp, dsl.SortDescend, "long")
	root.Source().Includes(Alias.Legacy, Alias.Current)

	filter := root.Query().Bool().Filter()
	should := filter.Bool().Should()
	should.Term(fieldType, typeClusterStats, nil)
	should.Term(fieldMetricsetName, typeClusterStats, nil)
	filter.Term(FieldClusterUUID, tmpl.Bind(FieldClusterUUID), nil)

	tmpl.MustResolve(root)
	return tmpl
}

// Store keeps resolved licenses between lookups.
type Store interface {
	GetLicense(clusterUUID string) (Info, bool)
	SetLicense(clusterUUID string, info Info)
}

// Resolver looks up cluster licenses in the monitoring index.
type Resolver struct {
	exec  adapter.Executor
	index string
	store Store
}

// NewResolver returns a Resolver; store may be nil to disable caching.
func NewResolver(exec adapter.Executor, index string, store Store) *Resolver {
	return &Resolver{
		exec:  exec,
		index: index,
		store: store,
	}
}

// Get returns the license of the cluster from its latest cluster stats
// document. Clusters without one, and standalone data, have no license.
func (r *Resolver) Get(ctx context.Context, clusterUUID string) (Info, error) {
	if clusterUUID == "" || clusterUUID == adapter.StandaloneClusterUUID {
		return Info{}, nil
	}

	if r.store != nil {
		if info, ok := r.store.GetLicense(clusterUUID); ok {
			return info, nil
		}
	}

	body, err := queryLatestClusterStats.RenderOne(FieldClusterUUID, clusterUUID)
	if err != nil {
		return Info{}, fmt.Errorf("render license query: %w", err)
	}

	resp, err := r.exec.Execute(ctx, &es.Query{
		Index:             r.index,
		Size:              1,
		IgnoreUnavailable: true,
		FilterPath: []string{
			"hits.hits._source." + Alias.Legacy,
			"hits.hits._source." + Alias.Current,
		},
		Body: json.RawMessage(body),
	})
	if err != nil {
		return Info{}, &adapter.ExecutorError{Message: "license lookup failed", Cause: err}
	}

	var info Info
	if len(resp.Hits.Hits) > 0 {
		var doc common.MapStr
		if err := resp.Hits.Hits[0].Unmarshal(&doc); err != nil {
			return Info{}, fmt.Errorf("decode cluster stats: %w", err)
		}
		info = FromDoc(doc)
	}

	log.Debug().
		Str("mod", kModLicense).
		Str("cluster", clusterUUID).
		Str("status", info.Status).
		Str("type", info.Type).
		Msg("license resolved")

	if r.store != nil {
		r.store.SetLicense(clusterUUID, info)
	}
	return info, nil
}
