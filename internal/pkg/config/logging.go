// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logging is the logging configuration
type Logging struct {
	Destination string `config:"dest"`
	Level       string `config:"level"`
	Pretty      bool   `config:"pretty"`
}

// InitDefaults initializes the defaults for the configuration.
func (c *Logging) InitDefaults() {
	c.Destination = "stderr"
	c.Level = "info"
	c.Pretty = false
}

// Validate ensures that the configuration is valid.
func (c *Logging) Validate() error {
	if _, err := strToDest(c.Destination); err != nil {
		return err
	}
	if _, err := strToLevel(c.Level); err != nil {
		return err
	}
	return nil
}

// DestinationWriter returns configured destination io.Writer
func (c *Logging) DestinationWriter() io.Writer {
	w, _ := strToDest(c.Destination)
	return w
}

// LogLevel returns configured zerolog.Level
func (c *Logging) LogLevel() zerolog.Level {
	l, _ := strToLevel(c.Level)
	return l
}

func strToDest(s string) (io.Writer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	return os.Stderr, fmt.Errorf("invalid dest; must be one of: stdout, stderr")
}

func strToLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.InfoLevel, fmt.Errorf("invalid log level; must be one of: trace, debug, info, warning, error")
}
