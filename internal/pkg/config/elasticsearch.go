// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package config

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/elastic/beats/v7/libbeat/common"
	"github.com/elastic/beats/v7/libbeat/common/transport/tlscommon"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/hashicorp/go-cleanhttp"
)

const schemeHTTP = "http"

// Elasticsearch is the configuration for the monitoring cluster.
type Elasticsearch struct {
	Protocol       string            `config:"protocol"`
	Hosts          []string          `config:"hosts"`
	Path           string            `config:"path"`
	Headers        map[string]string `config:"headers"`
	Username       string            `config:"username"`
	Password       string            `config:"password"`
	APIKey         string            `config:"api_key"`
	ProxyURL       string            `config:"proxy_url"`
	ProxyDisable   bool              `config:"proxy_disable"`
	TLS            *tlscommon.Config `config:"ssl"`
	MaxRetries     int               `config:"max_retries"`
	MaxConnPerHost int               `config:"max_conn_per_host"`
	Timeout        time.Duration     `config:"timeout"`
}

// InitDefaults initializes the defaults for the configuration.
func (c *Elasticsearch) InitDefaults() {
	c.Protocol = schemeHTTP
	c.Hosts = []string{"localhost:9200"}
	c.Timeout = 90 * time.Second
	c.MaxRetries = 3
	c.MaxConnPerHost = 128
}

// Validate ensures that the configuration is valid.
func (c *Elasticsearch) Validate() error {
	if c.APIKey == "" && (c.Username == "" || c.Password == "") {
		return fmt.Errorf("cannot connect to elasticsearch without username/password or api_key")
	}
	if c.ProxyURL != "" && !c.ProxyDisable {
		if _, err := common.ParseURL(c.ProxyURL); err != nil {
			return err
		}
	}
	if c.TLS != nil && c.TLS.IsEnabled() {
		if _, err := tlscommon.LoadTLSConfig(c.TLS); err != nil {
			return err
		}
	}
	return nil
}

// ToESConfig converts the configuration object into the config for the elasticsearch client.
func (c *Elasticsearch) ToESConfig() (elasticsearch.Config, error) {
	addrs := make([]string, len(c.Hosts))
	for i, host := range c.Hosts {
		addr, err := makeURL(c.Protocol, c.Path, host, 9200)
		if err != nil {
			return elasticsearch.Config{}, err
		}
		addrs[i] = addr
	}

	httpTransport := cleanhttp.DefaultPooledTransport()
	httpTransport.DialContext = (&net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext
	httpTransport.MaxConnsPerHost = c.MaxConnPerHost
	httpTransport.ResponseHeaderTimeout = c.Timeout

	if c.TLS != nil && c.TLS.IsEnabled() {
		tls, err := tlscommon.LoadTLSConfig(c.TLS)
		if err != nil {
			return elasticsearch.Config{}, err
		}
		httpTransport.TLSClientConfig = tls.ToConfig()
	}

	switch {
	case c.ProxyDisable:
		httpTransport.Proxy = nil
	case c.ProxyURL != "":
		proxyURL, err := common.ParseURL(c.ProxyURL)
		if err != nil {
			return elasticsearch.Config{}, err
		}
		httpTransport.Proxy = http.ProxyURL(proxyURL)
	}

	h := http.Header{}
	for key, val := range c.Headers {
		h.Set(key, val)
	}

	return elasticsearch.Config{
		Addresses:    addrs,
		Username:     c.Username,
		Password:     c.Password,
		APIKey:       c.APIKey,
		Header:       h,
		Transport:    httpTransport,
		MaxRetries:   c.MaxRetries,
		DisableRetry: c.MaxRetries == 0,
	}, nil
}

func makeURL(defaultScheme string, defaultPath string, rawURL string, defaultPort int) (string, error) {
	if defaultScheme == "" {
		defaultScheme = schemeHTTP
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = defaultScheme + "://" + rawURL
	}
	addr, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	host := addr.Host
	if addr.Port() == "" {
		host = net.JoinHostPort(addr.Hostname(), fmt.Sprintf("%d", defaultPort))
	}
	addr.Host = host

	if addr.Path == "" && defaultPath != "" {
		addr.Path = "/" + strings.TrimPrefix(defaultPath, "/")
	}

	return strings.TrimSuffix(addr.String(), "/"), nil
}
