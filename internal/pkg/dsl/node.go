// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package dsl is a small builder for Elasticsearch query DSL bodies.
//
// A body is a tree of Nodes. Each node is either a leaf value, a keyed map of
// children or an ordered list of children; the tree marshals straight to JSON.
// Map keys are marshalled in sorted order so rendered bodies are stable.
package dsl

import (
	"encoding/json"
)

type nodeMapT map[string]*Node
type nodeListT []*Node

type Node struct {
	leaf     interface{}
	nodeMap  nodeMapT
	nodeList nodeListT
}

// NewRoot returns an empty body; it marshals to {} until children are added.
func NewRoot() *Node {
	return &Node{nodeMap: make(nodeMapT)}
}

// Param sets a leaf value under name, replacing any previous value.
func (n *Node) Param(name string, v interface{}) {
	childNode := n.findOrCreateChildByName(name)
	childNode.leaf = v
}

func (n *Node) MarshalJSON() ([]byte, error) {
	switch {
	case n.leaf != nil:
		return json.Marshal(n.leaf)
	case n.nodeMap != nil:
		return json.Marshal(n.nodeMap)
	case n.nodeList != nil:
		return json.Marshal(n.nodeList)
	}

	return []byte(kKeywordNULL), nil
}

func (n *Node) findOrCreateChildByName(keyword string) *Node {
	if node, ok := n.nodeMap[keyword]; ok {
		return node
	}

	if n.leaf != nil {
		panic("Cannot add child to leaf node")
	}

	childNode := &Node{}
	if n.nodeMap == nil {
		n.nodeMap = nodeMapT{keyword: childNode}
	} else {
		n.nodeMap[keyword] = childNode
	}

	return childNode
}

// Create child node and add to nodeList if exists, or add fallback to nodeMap.
func (n *Node) appendOrSetChildNode(keyword string) *Node {
	childNode := &Node{}

	switch {
	case n.leaf != nil:
		panic("Cannot add child to leaf node")
	case n.nodeList != nil:
		parentNode := Node{
			nodeMap: nodeMapT{keyword: childNode},
		}
		n.nodeList = append(n.nodeList, &parentNode)
	default:
		if n.nodeMap == nil {
			n.nodeMap = nodeMapT{keyword: childNode}
		} else {
			n.nodeMap[keyword] = childNode
		}
	}

	return childNode
}

// childList returns the list node under keyword, creating it empty.
func (n *Node) childList(keyword string) *Node {
	childNode := n.findOrCreateChildByName(keyword)
	if childNode.nodeList == nil {
		childNode.nodeList = nodeListT{}
	}
	return childNode
}
