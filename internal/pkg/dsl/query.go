// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package dsl

func (n *Node) Query() *Node {
	return n.findOrCreateChildByName(kKeywordQuery)
}

// Bool returns the bool clause of n. Inside a clause list (filter, should,
// must...) every call appends a new bool clause.
func (n *Node) Bool() *Node {
	if n.nodeList != nil {
		return n.appendOrSetChildNode(kKeywordBool)
	}
	return n.findOrCreateChildByName(kKeywordBool)
}

func (n *Node) Filter() *Node {
	return n.childList(kKeywordFilter)
}

func (n *Node) Must() *Node {
	return n.childList(kKeywordMust)
}

func (n *Node) MustNot() *Node {
	return n.childList(kKeywordMustNot)
}

func (n *Node) Should() *Node {
	return n.childList(kKeywordShould)
}

func (n *Node) MinimumShouldMatch(v int) {
	n.Param(kKeywordMinimumShouldMatch, v)
}
