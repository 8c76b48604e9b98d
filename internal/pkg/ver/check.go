// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package ver checks that the monitored Elasticsearch cluster is new enough
// for the queries the adapter builds (collapse, nested aggregations).
package ver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/hashicorp/go-version"
	"github.com/rs/zerolog/log"

	"github.com/elastic/monitoring-adapter/internal/pkg/es"
)

// Variables to define errors when comparing versions.
var (
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrMalformedVersion   = errors.New("malformed version")
)

// CheckCompatibility fetches the Elasticsearch version and checks it is at
// least minVersion. The fetched version is returned even when the check
// fails.
func CheckCompatibility(ctx context.Context, transport esapi.Transport, minVersion string) (string, error) {
	log.Debug().Str("min_version", minVersion).Msg("check version compatibility with elasticsearch")

	esVersion, err := es.FetchVersion(ctx, transport)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch elasticsearch version")
		return "", err
	}
	log.Debug().Str("elasticsearch_version", esVersion).Msg("fetched elasticsearch version")

	return esVersion, checkCompatibility(minVersion, esVersion)
}

func checkCompatibility(minVersion, esVersion string) error {
	verConst, err := buildVersionConstraint(minVersion)
	if err != nil {
		log.Error().Err(err).Str("min_version", minVersion).Msg("failed to build constraint")
		return err
	}

	ver, err := parseVersion(esVersion)
	if err != nil {
		return err
	}

	if !verConst.Check(ver) {
		log.Error().
			Err(ErrUnsupportedVersion).
			Str("constraint", verConst.String()).
			Str("reported", ver.String()).
			Msg("failed elasticsearch version check")
		return ErrUnsupportedVersion
	}
	log.Info().Str("min_version", minVersion).Str("elasticsearch_version", esVersion).Msg("Elasticsearch compatibility check successful")
	return nil
}

func buildVersionConstraint(minVersion string) (version.Constraints, error) {
	ver, err := parseVersion(minVersion)
	if err != nil {
		return nil, err
	}
	return version.NewConstraint(fmt.Sprintf(">= %s", ver.String()))
}

func parseVersion(sver string) (*version.Version, error) {
	ver, err := version.NewVersion(strings.Split(sver, "-")[0])
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformedVersion)
	}
	return ver, nil
}
