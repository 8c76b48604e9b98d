// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package log routes zerolog output to the test log.
package log

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetLogger points zerolog's package level logger at the test output and
// returns it. The previous logger is restored when the test ends.
func SetLogger(tb testing.TB) zerolog.Logger {
	tb.Helper()
	tw := zerolog.TestWriter{T: tb, Frame: 4}
	lg := zerolog.New(tw).Level(zerolog.TraceLevel)

	prev := log.Logger
	log.Logger = lg
	tb.Cleanup(func() {
		log.Logger = prev
	})
	return lg
}
