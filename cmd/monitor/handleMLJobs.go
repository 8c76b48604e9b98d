// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package monitor

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/sync/errgroup"

	"github.com/elastic/monitoring-adapter/internal/pkg/adapter"
	"github.com/elastic/monitoring-adapter/internal/pkg/logger"
)

func (api *MonitorAPI) handleMLJobs(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	start := time.Now()
	clusterUUID := ps.ByName("clusterUuid")
	zlog := requestLogger(r, "ml_jobs").With().Str(logger.ECSClusterUUID, clusterUUID).Logger()

	var req MLJobsRequest
	if err := readBody(w, r, &req, &cntMLJobs); err != nil {
		handleError(zlog, w, err, start, &cntMLJobs)
		return
	}

	scope, err := req.TimeRange.scope(clusterUUID, "")
	if err != nil {
		handleError(zlog, w, err, start, &cntMLJobs)
		return
	}

	resp, err := api.mlJobs(r.Context(), scope)
	if err != nil {
		handleError(zlog, w, err, start, &cntMLJobs)
		return
	}

	if err := writeJSON(w, http.StatusOK, resp, &cntMLJobs); err != nil {
		zlog.Error().Err(err).Msg("fail writing ml jobs response")
		return
	}
	logSuccess(zlog, http.StatusOK, start)
}

// mlJobs lists jobs and counts them at the same time. The count is only
// computed when the cluster license covers machine learning.
func (api *MonitorAPI) mlJobs(ctx context.Context, scope adapter.QueryScope) (*MLJobsResponse, error) {
	var (
		rows []adapter.NormalizedRecord
		est  *adapter.CardinalityEstimate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = api.es.ListRecords(gctx, scope, adapter.MLJobs, api.bucketSize, adapter.DefaultSortField)
		return err
	})
	g.Go(func() error {
		lic, err := api.licenses.Get(gctx, scope.ClusterID)
		if err != nil {
			return err
		}
		est, err = api.es.EstimateCardinality(gctx, scope, adapter.MLJobs, lic)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &MLJobsResponse{Rows: rows}
	if est != nil {
		v := est.Value
		resp.JobsCount = &v
	}
	return resp, nil
}
