// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package version

// DefaultVersion is the current release version of the monitoring adapter.
const DefaultVersion = "7.16.0"
