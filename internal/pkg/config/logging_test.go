// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package config

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLevel(t *testing.T) {
	cfg := Logging{}
	cfg.InitDefaults()

	if cfg.LogLevel() != zerolog.InfoLevel {
		t.Errorf("expected InfoLevel, got %s", cfg.LogLevel())
	}
}

func TestLoggingLevels(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
	}
	for in, want := range tests {
		cfg := Logging{Destination: "stdout", Level: in}
		assert.NoError(t, cfg.Validate(), in)
		assert.Equal(t, want, cfg.LogLevel(), in)
	}

	bad := Logging{Destination: "stdout", Level: "loud"}
	assert.Error(t, bad.Validate())
}

func TestLoggingDestination(t *testing.T) {
	cfg := Logging{Destination: "stdout", Level: "info"}
	assert.Equal(t, os.Stdout, cfg.DestinationWriter())

	cfg.Destination = "file"
	assert.Error(t, cfg.Validate())
}
