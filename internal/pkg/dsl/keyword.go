// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package dsl

const (
	kKeywordAggs               = "aggs"
	kKeywordBool               = "bool"
	kKeywordBoost              = "boost"
	kKeywordCardinality        = "cardinality"
	kKeywordCollapse           = "collapse"
	kKeywordExcludes           = "excludes"
	kKeywordExists             = "exists"
	kKeywordField              = "field"
	kKeywordFilter             = "filter"
	kKeywordFormat             = "format"
	kKeywordGreaterThan        = "gt"
	kKeywordGreaterThanEq      = "gte"
	kKeywordIncludes           = "includes"
	kKeywordLessThanEq         = "lte"
	kKeywordMinimumShouldMatch = "minimum_should_match"
	kKeywordMust               = "must"
	kKeywordMustNot            = "must_not"
	kKeywordNULL               = "null"
	kKeywordNested             = "nested"
	kKeywordOrder              = "order"
	kKeywordPath               = "path"
	kKeywordPrecisionThreshold = "precision_threshold"
	kKeywordQuery              = "query"
	kKeywordRange              = "range"
	kKeywordReverseNested      = "reverse_nested"
	kKeywordShould             = "should"
	kKeywordSize               = "size"
	kKeywordSort               = "sort"
	kKeywordSource             = "_source"
	kKeywordTerm               = "term"
	kKeywordTerms              = "terms"
	kKeywordUnmappedType       = "unmapped_type"
)
