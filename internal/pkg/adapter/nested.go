// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/monitoring-adapter/internal/pkg/dsl"
	"github.com/elastic/monitoring-adapter/internal/pkg/es"
)

const (
	opListNestedGroups = "list nested groups"

	aggGroupID = "id"
	aggMembers = "nodes"
)

// NestedGroup is one distinct value of a nested field with the ids of the
// documents it appears in.
type NestedGroup struct {
	GroupID   string   `json:"id"`
	MemberIDs []string `json:"nodeIds"`
}

// nestedSchema names the aggregations built for one side of the migration.
type nestedSchema struct {
	nest   string
	unnest string
	path   string
	parent string
}

func nestedSchemas(aliases FieldAliasSet) (current, legacy nestedSchema) {
	current = nestedSchema{
		nest:   "nest_mb",
		unnest: "unnest_mb",
		path:   aliases.Nested.Current,
		parent: aliases.ParentID.Current,
	}
	legacy = nestedSchema{
		nest:   "nest",
		unnest: "unnest",
		path:   aliases.Nested.Legacy,
		parent: aliases.ParentID.Legacy,
	}
	return current, legacy
}

type termsBucket struct {
	Key json.RawMessage `json:"key"`
}

type membersAgg struct {
	Members struct {
		Buckets []termsBucket `json:"buckets"`
	} `json:"nodes"`
}

type nestAgg struct {
	ID struct {
		Buckets []map[string]json.RawMessage `json:"buckets"`
	} `json:"id"`
}

// ListNestedGroups buckets the nested sub-structure by groupField and lists
// the parent ids of every bucket. Both schemas are queried; current schema
// buckets are returned when there are any, legacy ones otherwise.
func (a *Adapter) ListNestedGroups(ctx context.Context, scope QueryScope, aliases FieldAliasSet, groupField string, groupSize int) ([]NestedGroup, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if aliases.Nested.IsZero() {
		return nil, &ValidationError{Field: "aliases.nested", Reason: "no nested path"}
	}
	if groupField == "" {
		return nil, &ValidationError{Field: "groupField", Reason: "must not be empty"}
	}
	if groupSize <= 0 {
		groupSize = a.cfg.PageSizeDefault
	}

	current, legacy := nestedSchemas(aliases)
	schemas := []nestedSchema{current, legacy}

	root := dsl.NewRoot()
	scopeQuery(root, scope, aliases)

	aggs := root.Aggs()
	var filterPath []string
	for _, s := range schemas {
		if s.path == "" {
			continue
		}
		group := aggs.Agg(s.nest).Nested(s.path).
			Aggs().Agg(aggGroupID).TermsAgg(s.path+"."+groupField, uint64(groupSize))
		if s.parent != "" {
			group.Aggs().Agg(s.unnest).ReverseNested().
				Aggs().Agg(aggMembers).TermsAgg(s.parent, uint64(groupSize))
		}
		filterPath = append(filterPath, fmt.Sprintf("aggregations.%s.%s.buckets", s.nest, aggGroupID))
	}

	resp, err := a.execute(ctx, opListNestedGroups, &es.Query{
		Index:             a.cfg.Index,
		Size:              0,
		IgnoreUnavailable: a.cfg.IgnoreUnavailable,
		FilterPath:        filterPath,
		Body:              root,
	})
	if err != nil {
		return nil, err
	}

	for _, s := range schemas {
		groups, err := readGroups(resp.Aggregations, s)
		if err != nil {
			return nil, &ExecutorError{Message: opListNestedGroups + " failed", Cause: err}
		}
		if len(groups) > 0 {
			return groups, nil
		}
	}
	return []NestedGroup{}, nil
}

func readGroups(aggregations map[string]json.RawMessage, s nestedSchema) ([]NestedGroup, error) {
	raw, ok := aggregations[s.nest]
	if !ok {
		return nil, nil
	}

	var nest nestAgg
	if err := json.Unmarshal(raw, &nest); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.nest, err)
	}

	groups := make([]NestedGroup, 0, len(nest.ID.Buckets))
	for _, bucket := range nest.ID.Buckets {
		members := []string{}
		if rawUnnest, ok := bucket[s.unnest]; ok {
			var unnest membersAgg
			if err := json.Unmarshal(rawUnnest, &unnest); err != nil {
				return nil, fmt.Errorf("decode %s: %w", s.unnest, err)
			}
			for _, m := range unnest.Members.Buckets {
				members = append(members, keyString(m.Key))
			}
		}

		groups = append(groups, NestedGroup{
			GroupID:   keyString(bucket["key"]),
			MemberIDs: members,
		})
	}
	return groups, nil
}

// keyString renders a terms bucket key; keyword keys are strings, numeric
// fields give numbers.
func keyString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
