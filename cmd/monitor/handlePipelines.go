// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package monitor

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/elastic/monitoring-adapter/internal/pkg/adapter"
	"github.com/elastic/monitoring-adapter/internal/pkg/logger"
)

func (api *MonitorAPI) handlePipelineIDs(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	start := time.Now()
	clusterUUID := ps.ByName("clusterUuid")
	zlog := requestLogger(r, "pipeline_ids").With().Str(logger.ECSClusterUUID, clusterUUID).Logger()

	var req PipelineIDsRequest
	if err := readBody(w, r, &req, &cntPipelines); err != nil {
		handleError(zlog, w, err, start, &cntPipelines)
		return
	}

	scope, err := req.TimeRange.scope(clusterUUID, req.LogstashUUID)
	if err != nil {
		handleError(zlog, w, err, start, &cntPipelines)
		return
	}

	groups, err := api.logstash.ListNestedGroups(r.Context(), scope, adapter.LogstashPipelines, adapter.PipelineGroupField, api.bucketSize)
	if err != nil {
		handleError(zlog, w, err, start, &cntPipelines)
		return
	}

	if err := writeJSON(w, http.StatusOK, PipelineIDsResponse(groups), &cntPipelines); err != nil {
		zlog.Error().Err(err).Msg("fail writing pipeline ids response")
		return
	}
	logSuccess(zlog, http.StatusOK, start)
}
