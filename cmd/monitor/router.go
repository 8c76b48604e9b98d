// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package monitor

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.elastic.co/apm/module/apmhttprouter"

	"github.com/elastic/monitoring-adapter/internal/pkg/config"
	"github.com/elastic/monitoring-adapter/internal/pkg/limit"
)

const (
	RouteMLJobs      = "/api/monitoring/v1/clusters/:clusterUuid/elasticsearch/ml_jobs"
	RoutePipelineIDs = "/api/monitoring/v1/clusters/:clusterUuid/logstash/pipeline_ids"
	RouteStatus      = "/api/status"
)

// NewRouter registers the API routes, each behind its limiter and traced
// with APM.
func NewRouter(cfg *config.Server, api *MonitorAPI) *httprouter.Router {
	limiter := limit.NewLimiter(cfg.BindAddress(), &cfg.Limits)

	routes := []struct {
		method  string
		path    string
		handler httprouter.Handle
	}{
		{
			http.MethodPost,
			RouteMLJobs,
			limiter.WrapMLJobs(api.handleMLJobs, &cntMLJobs),
		},
		{
			http.MethodPost,
			RoutePipelineIDs,
			limiter.WrapPipelines(api.handlePipelineIDs, &cntPipelines),
		},
		{
			http.MethodGet,
			RouteStatus,
			limiter.WrapStatus(api.handleStatus, &cntStatus),
		},
	}

	router := httprouter.New()
	for _, rte := range routes {
		router.Handle(rte.method, rte.path, apmhttprouter.Wrap(rte.handler, rte.path))
	}
	return router
}
