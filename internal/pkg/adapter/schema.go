// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package adapter

// MLJobs reads machine learning job stats collected from Elasticsearch.
var MLJobs = FieldAliasSet{
	ID:       FieldAlias{Legacy: "job_stats.job_id", Current: "elasticsearch.ml.job.id"},
	State:    FieldAlias{Legacy: "job_stats.state", Current: "elasticsearch.ml.job.state"},
	NodeID:   FieldAlias{Legacy: "job_stats.node.id", Current: "elasticsearch.node.id"},
	NodeName: FieldAlias{Legacy: "job_stats.node.name", Current: "elasticsearch.node.name"},
	Metrics: []NamedAlias{
		{
			Name: "processed_record_count",
			FieldAlias: FieldAlias{
				Legacy:  "job_stats.data_counts.processed_record_count",
				Current: "elasticsearch.ml.job.data_counts.processed_record_count",
			},
		},
		{
			Name: "model_bytes",
			FieldAlias: FieldAlias{
				Legacy:  "job_stats.model_size_stats.model_bytes",
				Current: "elasticsearch.ml.job.model_size_stats.model_bytes",
			},
		},
		{
			Name: "forecasts_total",
			FieldAlias: FieldAlias{
				Legacy:  "job_stats.forecasts_stats.total",
				Current: "elasticsearch.ml.job.forecasts_stats.total",
			},
		},
	},
	Types: []string{"ml_job", "job_stats"},
}

// LogstashPipelines reads pipeline ids out of Logstash node stats, where
// every document holds the node's pipelines as a nested list.
var LogstashPipelines = FieldAliasSet{
	ID:       FieldAlias{Legacy: "logstash_stats.logstash.uuid", Current: "logstash.node.stats.logstash.uuid"},
	Nested:   FieldAlias{Legacy: "logstash_stats.pipelines", Current: "logstash.node.stats.pipelines"},
	ParentID: FieldAlias{Legacy: "logstash_stats.logstash.uuid", Current: "logstash.node.stats.logstash.uuid"},
	Entity:   FieldAlias{Legacy: "logstash_stats.logstash.uuid", Current: "logstash.node.stats.logstash.uuid"},
	Types:    []string{"logstash_stats", "node_stats"},
}

// PipelineGroupField is the nested field pipelines are grouped by.
const PipelineGroupField = "id"
