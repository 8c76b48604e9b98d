// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package monitor

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
)

const statusHealthy = "HEALTHY"

func (api *MonitorAPI) handleStatus(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	resp := StatusResponse{
		Name:    kServiceName,
		Status:  statusHealthy,
		Version: api.version,
	}

	if err := writeJSON(w, http.StatusOK, &resp, &cntStatus); err != nil {
		log.Error().Err(err).Msg("fail status")
	}
}
