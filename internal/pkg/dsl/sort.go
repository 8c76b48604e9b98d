// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package dsl

type SortOrderT string

const (
	SortAscend  SortOrderT = "asc"
	SortDescend SortOrderT = "desc"
)

func (n *Node) Sort() *Node {
	return n.childList(kKeywordSort)
}

func (n *Node) SortOrder(field string, order SortOrderT) {
	if n.nodeList == nil {
		panic("Parent should be sort node")
	}

	defaultOrder := SortAscend
	if field == "_score" {
		defaultOrder = SortDescend
	}

	if order == defaultOrder {
		n.nodeList = append(n.nodeList, &Node{leaf: field})
	} else {
		childNode := n.appendOrSetChildNode(field)
		childNode.leaf = order
	}
}

// SortOpt adds the long sort form. unmappedType lets indices without the
// field sort instead of failing the shard; empty leaves it out.
func (n *Node) SortOpt(field string, order SortOrderT, unmappedType string) {
	if n.nodeList == nil {
		panic("Parent should be sort node")
	}

	childNode := n.appendOrSetChildNode(field)
	childNode.nodeMap = nodeMapT{kKeywordOrder: &Node{leaf: order}}
	if unmappedType != "" {
		childNode.nodeMap[kKeywordUnmappedType] = &Node{leaf: unmappedType}
	}
}
