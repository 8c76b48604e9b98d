// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

const kDefaultHost = "localhost"
const kDefaultPort = 5602

// ServerTimeouts is the configuration for the server timeouts
type ServerTimeouts struct {
	Read     time.Duration `config:"read"`
	Write    time.Duration `config:"write"`
	Idle     time.Duration `config:"idle"`
	Shutdown time.Duration `config:"shutdown"`
}

// InitDefaults initializes the defaults for the configuration.
func (c *ServerTimeouts) InitDefaults() {
	c.Read = 60 * time.Second
	c.Write = 60 * time.Second
	c.Idle = 30 * time.Second
	c.Shutdown = 10 * time.Second
}

// Server is the configuration for the HTTP API server.
type Server struct {
	Host     string         `config:"host"`
	Port     uint16         `config:"port"`
	Timeouts ServerTimeouts `config:"timeouts"`
	Limits   ServerLimits   `config:"limits"`
}

// InitDefaults initializes the defaults for the configuration.
func (c *Server) InitDefaults() {
	c.Host = kDefaultHost
	c.Port = kDefaultPort
	c.Timeouts.InitDefaults()
	c.Limits.InitDefaults()
}

// Validate ensures that the configuration is valid.
func (c *Server) Validate() error {
	if c.Port == 0 {
		return fmt.Errorf("server port must be set")
	}
	return nil
}

// BindAddress returns the binding address for the HTTP server.
func (c *Server) BindAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}
