// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package dsl

// Collapse keeps one hit per distinct value of field, the first by sort order.
func (n *Node) Collapse(field string) {
	childNode := n.findOrCreateChildByName(kKeywordCollapse)
	childNode.nodeMap = nodeMapT{kKeywordField: &Node{leaf: field}}
}
