// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package monitor

import (
	"context"
	"errors"
	slog "log"
	"net"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/elastic/monitoring-adapter/internal/pkg/config"
	"github.com/elastic/monitoring-adapter/internal/pkg/limit"
	"github.com/elastic/monitoring-adapter/internal/pkg/logger"
)

func diagConn(c net.Conn, s http.ConnState) {
	switch s {
	case http.StateNew:
		cntHTTPNew.Inc()
	case http.StateClosed, http.StateHijacked:
		cntHTTPClose.Inc()
	}

	log.Trace().
		Str(logger.ECSServerAddress, c.LocalAddr().String()).
		Str(logger.ECSClientAddress, c.RemoteAddr().String()).
		Str("state", s.String()).
		Msg("connection state change")
}

// runServer serves h on the configured address until ctx is done, then
// shuts down gracefully within the shutdown timeout.
func runServer(ctx context.Context, h http.Handler, cfg *config.Server) error {
	addr := cfg.BindAddress()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return serve(ctx, ln, h, cfg)
}

func serve(ctx context.Context, ln net.Listener, h http.Handler, cfg *config.Server) error {
	rdto := cfg.Timeouts.Read
	wrto := cfg.Timeouts.Write
	bctx := func(net.Listener) context.Context { return ctx }

	log.Info().
		Str("bind", ln.Addr().String()).
		Dur("rdTimeout", rdto).
		Dur("wrTimeout", wrto).
		Msg("server listening")

	server := http.Server{
		ReadTimeout:  rdto,
		WriteTimeout: wrto,
		IdleTimeout:  cfg.Timeouts.Idle,
		Handler:      h,
		BaseContext:  bctx,
		ConnState:    diagConn,
		ErrorLog:     errLogger(),
	}

	if n := cfg.Limits.MaxConnections; n > 0 {
		log.Info().Int("max", n).Msg("server connection limiter installed")
		ln = limit.Listener(ln, n)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Debug().Msg("server shutdown on ctx.Done()")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()
	if err := server.Shutdown(sctx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown failed; closing")
		server.Close()
	}
	return nil
}

type stubLogger struct {
}

func (s *stubLogger) Write(p []byte) (n int, err error) {
	log.Error().Bytes("msg", p).Send()
	return len(p), nil
}

func errLogger() *slog.Logger {
	stub := &stubLogger{}
	return slog.New(stub, "", 0)
}
