package enricher

import (
	"log/slog"
	"net/http"
)

// Option configures optional runtime dependencies for Service.
type Option func(*serviceDeps)

type serviceDeps struct {
	logger     *slog.Logger
	httpClient *http.Client
}

// WithLogger injects a logger dependency.
func WithLogger(l *slog.Logger) Option {
	return func(d *serviceDeps) {
		d.logger = l
	}
}

// WithHTTPClient replaces the per-run HTTP client. The caller keeps
// ownership of its connections.
func WithHTTPClient(c *http.Client) Option {
	return func(d *serviceDeps) {
		d.httpClient = c
	}
}
