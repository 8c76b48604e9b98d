// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package monitor is the monitoring adapter command and its HTTP API.
package monitor

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/elastic/monitoring-adapter/internal/pkg/cache"
	"github.com/elastic/monitoring-adapter/internal/pkg/config"
	"github.com/elastic/monitoring-adapter/internal/pkg/es"
	"github.com/elastic/monitoring-adapter/internal/pkg/license"
	"github.com/elastic/monitoring-adapter/internal/pkg/logger"
	"github.com/elastic/monitoring-adapter/internal/pkg/signal"
	"github.com/elastic/monitoring-adapter/internal/pkg/ver"
)

const kServiceName = "monitoring-adapter"

func installSignalHandler() context.Context {
	rootCtx := context.Background()
	return signal.HandleInterrupt(rootCtx)
}

func getRunCommand(version, commit string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfgPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		cfg, err := config.LoadFile(cfgPath)
		if err != nil {
			return err
		}

		l := logger.Init(cfg, kServiceName)
		defer l.Sync()

		log.Info().
			Str("version", version).
			Str("commit", commit).
			Msg("starting " + kServiceName)

		srv, err := NewMonitorServer(cfg, version)
		if err != nil {
			return err
		}

		ctx := installSignalHandler()
		err = srv.Run(ctx)
		if err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("exiting")
			return err
		}
		return nil
	}
}

func NewCommand(version, commit string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kServiceName,
		Short: "Monitoring adapter serves stack monitoring listings from Elasticsearch",
		RunE:  getRunCommand(version, commit),
	}
	cmd.Flags().StringP("config", "c", "monitoring-adapter.yml", "Configuration for the monitoring adapter")
	return cmd
}

type MonitorServer struct {
	version string
	cfg     *config.Config
	cache   *cache.CacheT
}

// NewMonitorServer creates the service from its configuration.
func NewMonitorServer(cfg *config.Config, version string) (*MonitorServer, error) {
	c, err := cache.New(cfg.Cache)
	if err != nil {
		return nil, err
	}

	return &MonitorServer{
		version: version,
		cfg:     cfg,
		cache:   c,
	}, nil
}

// Run connects to Elasticsearch, checks its version and serves the API
// until ctx is done.
func (m *MonitorServer) Run(ctx context.Context) error {
	defer m.cache.Close()
	initMetrics(m.version)

	cli, err := es.NewClient(ctx, &m.cfg.Elasticsearch)
	if err != nil {
		return err
	}

	if _, err := ver.CheckCompatibility(ctx, cli, m.cfg.Monitoring.MinESVersion); err != nil {
		return err
	}

	exec := es.NewSearchExecutor(cli)
	licenses := license.NewResolver(exec, m.cfg.Monitoring.ESIndexPattern, m.cache)
	api := NewMonitorAPI(exec, &m.cfg.Monitoring, licenses, m.version)
	router := NewRouter(&m.cfg.Server, api)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runServer(ctx, router, &m.cfg.Server)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		return nil
	})
	return g.Wait()
}
