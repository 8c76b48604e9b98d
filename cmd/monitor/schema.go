// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package monitor

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/monitoring-adapter/internal/pkg/adapter"
)

// Millis is a point in time in epoch milliseconds. It decodes from a JSON
// number or an RFC 3339 string.
type Millis int64

func (m *Millis) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("time must be epoch millis or RFC 3339: %w", err)
		}
		*m = Millis(t.UnixNano() / int64(time.Millisecond))
		return nil
	}

	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("time must be epoch millis or RFC 3339: %w", err)
	}
	*m = Millis(n)
	return nil
}

type TimeRange struct {
	Min *Millis `json:"min"`
	Max *Millis `json:"max"`
}

func (tr TimeRange) scope(clusterUUID, entityID string) (adapter.QueryScope, error) {
	if tr.Min == nil || tr.Max == nil {
		return adapter.QueryScope{}, &adapter.ValidationError{Field: "timeRange", Reason: "min and max are required"}
	}
	s := adapter.QueryScope{
		Start:     int64(*tr.Min),
		End:       int64(*tr.Max),
		ClusterID: clusterUUID,
		EntityID:  entityID,
	}
	return s, s.Validate()
}

type MLJobsRequest struct {
	TimeRange TimeRange `json:"timeRange"`
}

type MLJobsResponse struct {
	Rows []adapter.NormalizedRecord `json:"rows"`
	// JobsCount is null when the cluster license does not cover machine learning.
	JobsCount *int64 `json:"jobsCount"`
}

type PipelineIDsRequest struct {
	TimeRange    TimeRange `json:"timeRange"`
	LogstashUUID string    `json:"logstashUuid,omitempty"`
}

type PipelineIDsResponse []adapter.NestedGroup

type StatusResponse struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
