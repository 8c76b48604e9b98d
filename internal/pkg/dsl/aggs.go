// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package dsl

func (n *Node) Aggs() *Node {
	return n.findOrCreateChildByName(kKeywordAggs)
}

func (n *Node) Agg(name string) *Node {
	return n.findOrCreateChildByName(name)
}

// Nested scopes sub aggregations to the objects stored under path.
func (n *Node) Nested(path string) *Node {
	childNode := n.findOrCreateChildByName(kKeywordNested)
	childNode.nodeMap = nodeMapT{kKeywordPath: &Node{leaf: path}}
	return n
}

// ReverseNested moves sub aggregations back to the root document.
func (n *Node) ReverseNested() *Node {
	childNode := n.findOrCreateChildByName(kKeywordReverseNested)
	childNode.nodeMap = nodeMapT{}
	return n
}

// TermsAgg buckets by the distinct values of field, at most size buckets.
func (n *Node) TermsAgg(field string, size uint64) *Node {
	childNode := n.findOrCreateChildByName(kKeywordTerms)
	childNode.nodeMap = nodeMapT{
		kKeywordField: &Node{leaf: field},
		kKeywordSize:  &Node{leaf: size},
	}
	return n
}

// Cardinality counts distinct values of field. A zero threshold keeps the
// backend default.
func (n *Node) Cardinality(field string, precisionThreshold uint64) *Node {
	childNode := n.findOrCreateChildByName(kKeywordCardinality)
	childNode.nodeMap = nodeMapT{kKeywordField: &Node{leaf: field}}
	if precisionThreshold > 0 {
		childNode.nodeMap[kKeywordPrecisionThreshold] = &Node{leaf: precisionThreshold}
	}
	return n
}
