// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package es provides utilities to interact with Elasticsearch.
//
// The monitoring adapter talks to Elasticsearch through the go-elasticsearch
// client. The es package has the structs used to describe a search and decode
// its results, the SearchExecutor that runs them, and small helpers to check
// the cluster version.
package es
