// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package license reads the license of a monitored cluster from its
// monitoring data and answers which features it unlocks.
package license

import (
	"github.com/elastic/beats/v7/libbeat/common"

	"github.com/elastic/monitoring-adapter/internal/pkg/adapter"
)

const StatusActive = "active"

// MLSupportedLicenses are the license types machine learning runs on.
var MLSupportedLicenses = []string{"trial", "platinum", "enterprise"}

// Alias is where cluster stats documents keep the license.
var Alias = adapter.FieldAlias{
	Legacy:  "license",
	Current: "elasticsearch.cluster.stats.license",
}

// Info is the license of one cluster. The zero value is no license.
type Info struct {
	Status string `json:"status"`
	Type   string `json:"type"`
}

// MLSupported reports whether machine learning is licensed.
func (i Info) MLSupported() bool {
	if i.Status != StatusActive {
		return false
	}
	for _, t := range MLSupportedLicenses {
		if i.Type == t {
			return true
		}
	}
	return false
}

// IsCapabilityEnabled lets Info gate adapter.EstimateCardinality.
func (i Info) IsCapabilityEnabled() bool {
	return i.MLSupported()
}

// FromDoc reads the license out of a cluster stats document.
func FromDoc(doc common.MapStr) Info {
	v, ok := adapter.ResolveAlias(doc, Alias)
	if !ok {
		return Info{}
	}

	var lic common.MapStr
	switch tv := v.(type) {
	case common.MapStr:
		lic = tv
	case map[string]interface{}:
		lic = common.MapStr(tv)
	default:
		return Info{}
	}

	var info Info
	if s, ok := lic["status"].(string); ok {
		info.Status = s
	}
	if s, ok := lic["type"].(string); ok {
		info.Type = s
	}
	return info
}
