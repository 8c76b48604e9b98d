// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package main

import (
	"fmt"
	"os"

	"github.com/elastic/monitoring-adapter/cmd/monitor"
	"github.com/elastic/monitoring-adapter/version"
)

var (
	Version string = version.DefaultVersion
	Commit  string
)

func main() {
	cmd := monitor.NewCommand(Version, Commit)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
