// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package config

import (
	"github.com/elastic/go-ucfg"
	"github.com/elastic/go-ucfg/yaml"
)

// DefaultOptions defaults options used to read the configuration
var DefaultOptions = []ucfg.Option{
	ucfg.PathSep("."),
	ucfg.ResolveEnv,
	ucfg.VarExp,
}

// Config is the global configuration.
type Config struct {
	Elasticsearch Elasticsearch `config:"elasticsearch"`
	Server        Server        `config:"server"`
	Logging       Logging       `config:"logging"`
	Monitoring    Monitoring    `config:"monitoring"`
	Cache         Cache         `config:"cache"`
}

// InitDefaults initializes the defaults for the configuration.
func (c *Config) InitDefaults() {
	c.Elasticsearch.InitDefaults()
	c.Server.InitDefaults()
	c.Logging.InitDefaults()
	c.Monitoring.InitDefaults()
	c.Cache.InitDefaults()
}

// Validate ensures that the configuration is valid.
//
// Sections missing from the file are not visited by ucfg, so every section
// is checked here as well.
func (c *Config) Validate() error {
	if err := c.Elasticsearch.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.Monitoring.Validate()
}

// NewFromConfig returns a new configuration unpacked from c.
func NewFromConfig(c *ucfg.Config) (*Config, error) {
	var cfg Config
	cfg.InitDefaults()
	if err := c.Unpack(&cfg, DefaultOptions...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile take a path and load the file and return a new configuration.
func LoadFile(path string) (*Config, error) {
	c, err := yaml.NewConfigWithFile(path, DefaultOptions...)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(c)
}
