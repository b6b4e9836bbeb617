// Package http provides a wrapper around the retryablehttp.Client
// for making HTTP requests with retry capabilities.
package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	DefaultTimeout             = 30 * time.Second
	DefaultMaxIdleConnsPerHost = 16
)

type HTTPDoer interface {
	Do(*retryablehttp.Request) (*http.Response, error)
}

type HTTP struct {
	*retryablehttp.Client
}

var _ HTTPDoer = (*retryablehttp.Client)(nil)

// Config describes the outbound client. Zero values fall back to the
// package defaults, except RetryMax where zero disables retries.
type Config struct {
	Timeout             time.Duration
	RetryMax            int
	RetryWaitMin        time.Duration
	RetryWaitMax        time.Duration
	MaxIdleConnsPerHost int
}

func DefaultConfig() Config {
	return Config{
		Timeout:             DefaultTimeout,
		MaxIdleConnsPerHost: DefaultMaxIdleConnsPerHost,
	}
}

// New builds a retrying client over a pooled keep-alive transport.
func New(cfg Config, logger *slog.Logger) *HTTP {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxIdleConnsPerHost <= 0 {
		cfg.MaxIdleConnsPerHost = DefaultMaxIdleConnsPerHost
	}

	transport := cleanhttp.DefaultPooledTransport()
	transport.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost

	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}
	client.RetryMax = max(cfg.RetryMax, 0)
	if cfg.RetryWaitMin > 0 {
		client.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		client.RetryWaitMax = cfg.RetryWaitMax
	}
	// A typed nil would be called by retryablehttp.
	client.Logger = nil
	if logger != nil {
		client.Logger = logger
	}

	return &HTTP{
		Client: client,
	}
}

func ExpectStatus2xx(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
