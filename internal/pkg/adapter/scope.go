// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package adapter

import (
	"fmt"
)

// StandaloneClusterUUID marks data shipped without a cluster, such as
// Logstash or Beats running standalone. Those documents carry no cluster_uuid.
const StandaloneClusterUUID = "__standalone_cluster__"

// QueryScope bounds a query in time and to one cluster, and optionally one
// entity within it. Times are epoch milliseconds, both ends inclusive.
type QueryScope struct {
	Start     int64
	End       int64
	ClusterID string
	EntityID  string
}

func (s QueryScope) Validate() error {
	if s.Start > s.End {
		return &ValidationError{
			Field:  "timeRange",
			Reason: fmt.Sprintf("start %d is after end %d", s.Start, s.End),
		}
	}
	return nil
}

func (s QueryScope) standalone() bool {
	return s.ClusterID == StandaloneClusterUUID
}
