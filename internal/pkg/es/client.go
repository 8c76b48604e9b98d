// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package es

import (
	"context"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.elastic.co/apm/module/apmelasticsearch"

	"github.com/elastic/monitoring-adapter/internal/pkg/config"
)

// NewClient builds a client from cfg and validates the connection with an
// info request.
func NewClient(ctx context.Context, cfg *config.Elasticsearch) (*elasticsearch.Client, error) {
	escfg, err := cfg.ToESConfig()
	if err != nil {
		return nil, err
	}
	escfg.Transport = apmelasticsearch.WrapRoundTripper(escfg.Transport)

	log.Debug().
		Strs("addr", escfg.Addresses).
		Str("user", cfg.Username).
		Int("maxConnsPersHost", cfg.MaxConnPerHost).
		Msg("init es")

	es, err := elasticsearch.NewClient(escfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not create elasticsearch client")
	}

	resp, err := Info(ctx, es)
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to elasticsearch")
	}

	log.Info().
		Str("name", resp.ClusterName).
		Str("uuid", resp.ClusterUUID).
		Str("vers", resp.Version.Number).
		Msg("Cluster Info")

	return es, nil
}
