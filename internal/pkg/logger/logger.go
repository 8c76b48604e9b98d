// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package logger provides logging utilities for the monitoring adapter.
// Currently it wraps rs/zerolog
package logger

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.elastic.co/ecszerolog"

	"github.com/elastic/monitoring-adapter/internal/pkg/config"
)

var once sync.Once
var gLogger *Logger

// WriterSync implements a Sync function.
type WriterSync interface {
	// Sync syncs the logger to its output.
	Sync() error
}

// Logger manages the zerolog/log.Logger variable.
// The logger itself is created at TraceLevel; the effective level is
// controlled through zerolog.GlobalLevel.
type Logger struct {
	cfg  *config.Config
	sync WriterSync
	name string
}

// Init initializes the global logger once and returns it.
func Init(cfg *config.Config, svcName string) *Logger {
	once.Do(func() {
		zerolog.SetGlobalLevel(cfg.Logging.LogLevel())

		l, w := configure(cfg, svcName)
		log.Logger = l
		gLogger = &Logger{
			cfg:  cfg,
			sync: w,
			name: svcName,
		}
	})
	return gLogger
}

// Sync syncs the logger to its output.
func (l *Logger) Sync() {
	if l.sync != nil {
		l.sync.Sync() //nolint: errcheck // nowhere to report an error
	}
}

func configure(cfg *config.Config, svcName string) (zerolog.Logger, WriterSync) {
	out := cfg.Logging.DestinationWriter()

	var ws WriterSync = &nopSync{}
	if s, ok := out.(WriterSync); ok {
		ws = s
	}

	if cfg.Logging.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05.000"}
	}

	lg := newLogger(out).Level(zerolog.TraceLevel)
	if svcName != "" {
		lg = lg.With().Str(ECSServiceName, svcName).Logger()
	}
	return lg, ws
}

func newLogger(w io.Writer) zerolog.Logger {
	return ecszerolog.New(w)
}

type nopSync struct {
}

// Sync does nothing.
func (*nopSync) Sync() error {
	return nil
}
