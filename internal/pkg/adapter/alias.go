// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package adapter

import (
	"encoding/json"
	"strconv"

	"github.com/elastic/beats/v7/libbeat/common"
)

// FieldAlias is one field across a schema migration. Either side may be
// empty when the field only exists in one schema.
type FieldAlias struct {
	Legacy  string
	Current string
}

// Candidates returns the paths to read, current schema first.
func (a FieldAlias) Candidates() []string {
	paths := make([]string, 0, 2)
	if a.Current != "" {
		paths = append(paths, a.Current)
	}
	if a.Legacy != "" && a.Legacy != a.Current {
		paths = append(paths, a.Legacy)
	}
	return paths
}

// IsZero reports whether the alias names no field at all.
func (a FieldAlias) IsZero() bool {
	return a.Legacy == "" && a.Current == ""
}

// NamedAlias is a metric read into NormalizedRecord.ExtraMetrics under Name.
type NamedAlias struct {
	Name string
	FieldAlias
}

// FieldAliasSet describes where an operation finds each field it needs in
// both schemas.
type FieldAliasSet struct {
	ID       FieldAlias
	State    FieldAlias
	NodeID   FieldAlias
	NodeName FieldAlias
	Metrics  []NamedAlias

	// Nested is the path of the repeated sub-structure for ListNestedGroups.
	Nested FieldAlias
	// ParentID identifies the containing document under reverse nesting.
	ParentID FieldAlias
	// Entity is the field QueryScope.EntityID is matched against.
	Entity FieldAlias

	// Types are the legacy document types and current metricset names.
	Types []string
}

// Fields returns every non-empty pair in declaration order.
func (s FieldAliasSet) Fields() []FieldAlias {
	all := []FieldAlias{s.ID, s.State, s.NodeID, s.NodeName}
	for _, m := range s.Metrics {
		all = append(all, m.FieldAlias)
	}
	all = append(all, s.Nested, s.ParentID, s.Entity)

	fields := all[:0]
	for _, f := range all {
		if !f.IsZero() {
			fields = append(fields, f)
		}
	}
	return fields
}

// recordPaths lists the source paths a listing needs, without duplicates.
func (s FieldAliasSet) recordPaths() []string {
	aliases := []FieldAlias{s.ID, s.State, s.NodeID, s.NodeName}
	for _, m := range s.Metrics {
		aliases = append(aliases, m.FieldAlias)
	}

	var paths []string
	seen := make(map[string]struct{})
	for _, a := range aliases {
		for _, p := range []string{a.Legacy, a.Current} {
			if p == "" {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}
	return paths
}

// ResolveAlias reads alias from doc, current schema first, then legacy.
// The first value that is present, not null and not an empty string wins.
func ResolveAlias(doc common.MapStr, alias FieldAlias) (interface{}, bool) {
	for _, path := range alias.Candidates() {
		v, err := doc.GetValue(path)
		if err != nil || v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

// ResolveString is ResolveAlias for scalar values, formatted as a string.
func ResolveString(doc common.MapStr, alias FieldAlias) (string, bool) {
	v, ok := ResolveAlias(doc, alias)
	if !ok {
		return "", false
	}
	switch tv := v.(type) {
	case string:
		return tv, true
	case json.Number:
		return tv.String(), true
	case float64:
		return strconv.FormatFloat(tv, 'f', -1, 64), true
	case int:
		return strconv.Itoa(tv), true
	case int64:
		return strconv.FormatInt(tv, 10), true
	case bool:
		return strconv.FormatBool(tv), true
	}
	return "", false
}

// ResolveNumber is ResolveAlias for numeric values. Numeric strings are
// accepted.
func ResolveNumber(doc common.MapStr, alias FieldAlias) (float64, bool) {
	v, ok := ResolveAlias(doc, alias)
	if !ok {
		return 0, false
	}
	switch tv := v.(type) {
	case float64:
		return tv, true
	case int:
		return float64(tv), true
	case int64:
		return float64(tv), true
	case json.Number:
		f, err := tv.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(tv, 64)
		return f, err == nil
	}
	return 0, false
}
