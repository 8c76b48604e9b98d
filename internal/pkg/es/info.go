// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package es

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/elastic/go-elasticsearch/v7/esapi"
)

type InfoResponse struct {
	ClusterName string `json:"cluster_name"`
	ClusterUUID string `json:"cluster_uuid"`
	Version     struct {
		Number string `json:"number"`
	} `json:"version"`
	Error json.RawMessage `json:"error,omitempty"`
}

// Info returns the root endpoint response of the cluster.
func Info(ctx context.Context, transport esapi.Transport) (*InfoResponse, error) {
	res, err := esapi.InfoRequest{}.Do(ctx, transport)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var resp InfoResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, err
	}

	if err := TranslateError(res.StatusCode, resp.Error); err != nil {
		return nil, err
	}

	return &resp, nil
}

// FetchVersion returns the cluster version without any -SNAPSHOT suffix.
func FetchVersion(ctx context.Context, transport esapi.Transport) (string, error) {
	resp, err := Info(ctx, transport)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.ToLower(resp.Version.Number), "-snapshot")), nil
}
