// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package logger

// ECS field names used by the service.
const (
	ECSServiceName = "service.name"

	ECSHTTPRequestID     = "http.request.id"
	ECSHTTPRequestMethod = "http.request.method"
	ECSHTTPResponseCode  = "http.response.status_code"
	ECSURLPath           = "url.path"
	ECSEventDuration     = "event.duration"

	ECSServerAddress = "server.address"
	ECSClientAddress = "client.address"

	ECSClusterUUID = "cluster.uuid"
)
