package qdrant

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"

	"github.com/fragdoc/fragdoc/internal/logger"
)

// Client wraps the official Qdrant Go client and provides the read-side
// operations this tool needs: collection metadata, a one-item peek, and
// similarity search.
type Client struct {
	api     *qdrant.Client
	cfg     *Config
	log     *logger.Logger
	started bool
}

// NewClient constructs a new Client and validates connectivity via a health
// check. The SDK creates lightweight gRPC connections, so the health check
// fails fast if the service is unreachable. No retries are attempted.
func NewClient(p Params) (*Client, error) {
	log := p.Log
	if log == nil {
		log = logger.Nop()
	}

	sdkCfg, err := grpcConfig(p.Config)
	if err != nil {
		return nil, err
	}

	log.Zap.Info("connecting to qdrant",
		zap.String("host", sdkCfg.Host),
		zap.Int("port", sdkCfg.Port),
		zap.Bool("tls", sdkCfg.UseTLS),
	)

	api, err := qdrant.NewClient(sdkCfg)
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to initialize client: %w", err)
	}

	c := &Client{
		api:     api,
		cfg:     p.Config,
		log:     log,
		started: true,
	}

	if err := c.healthCheck(); err != nil {
		return nil, fmt.Errorf("qdrant: health check failed: %w", err)
	}

	return c, nil
}

// grpcConfig translates the connection target into the SDK configuration.
// URL takes precedence over Host/Port; an https scheme enables TLS.
func grpcConfig(cfg *Config) (*qdrant.Config, error) {
	if cfg.URL != "" {
		raw := cfg.URL
		if !strings.Contains(raw, "://") {
			raw = "http://" + raw
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("qdrant: invalid url %q: %w", cfg.URL, err)
		}
		if u.Hostname() == "" {
			return nil, fmt.Errorf("qdrant: url %q has no host", cfg.URL)
		}

		port := defaultURLPort
		if p := u.Port(); p != "" {
			port, err = strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("qdrant: invalid port in url %q: %w", cfg.URL, err)
			}
		}

		return &qdrant.Config{
			Host:   u.Hostname(),
			Port:   port,
			APIKey: cfg.APIKey,
			UseTLS: u.Scheme == "https",
			// connectivity is verified by the startup health check
			SkipCompatibilityCheck: true,
		}, nil
	}

	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = DefaultPort
	}

	return &qdrant.Config{
		Host:                   host,
		Port:                   port,
		APIKey:                 cfg.APIKey,
		SkipCompatibilityCheck: true,
	}, nil
}

// healthCheck verifies the availability of the Qdrant service.
// It is lightweight and fast, used once during startup.
func (c *Client) healthCheck() error {
	if c.api == nil {
		return fmt.Errorf("client not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return err
	}

	c.log.Zap.Info("qdrant health check passed",
		zap.String("title", resp.GetTitle()),
		zap.String("version", resp.GetVersion()),
	)
	return nil
}

// Client returns the underlying Qdrant SDK client.
// This is useful for direct access to low-level operations.
func (c *Client) Client() *qdrant.Client {
	return c.api
}

// Close gracefully shuts down the Qdrant client.
func (c *Client) Close() error {
	if !c.started {
		return nil
	}
	c.started = false
	return c.api.Close()
}
