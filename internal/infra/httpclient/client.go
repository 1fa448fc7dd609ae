package httpclient

import (
	"net"
	"net/http"
	"time"
)

type Config struct {
	// Total timeout for the whole download, body included.
	// A context deadline can still override this.
	Timeout time.Duration

	DialTimeout    time.Duration
	KeepAlive      time.Duration
	TLSHandshake   time.Duration
	ResponseHeader time.Duration

	// MaxBodyBytes bounds how much of a response body is read. Zero means unbounded.
	MaxBodyBytes int64

	UserAgent string
}

func DefaultConfig() Config {
	return Config{
		Timeout:        30 * time.Second,
		DialTimeout:    5 * time.Second,
		KeepAlive:      30 * time.Second,
		TLSHandshake:   5 * time.Second,
		ResponseHeader: 10 * time.Second,
		MaxBodyBytes:   4 << 20,
		UserAgent:      "heman",
	}
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
