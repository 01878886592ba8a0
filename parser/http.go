package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ErrFetchFailed is returned when the documentation page cannot be downloaded.
var ErrFetchFailed = errors.New("tgschema: fetching document failed")

// HTTPConfig configures HTTPLoader.
type HTTPConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// HTTPLoader downloads the documentation page with a single GET request.
// It does not retry.
type HTTPLoader struct {
	cfg    HTTPConfig
	client *http.Client
}

func NewHTTPLoader(cfg HTTPConfig) *HTTPLoader {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPLoader{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (l *HTTPLoader) SupportedSchemes() []string { return []string{"http", "https"} }

func (l *HTTPLoader) Load(ctx context.Context, location string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if l.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", l.cfg.UserAgent)
	}
	req.Header.Set("Accept", "text/html")

	start := time.Now()
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned %d: %s", ErrFetchFailed, location, resp.StatusCode, body)
	}

	slog.Debug("http: fetched document",
		"url", location,
		"status", resp.StatusCode,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return resp.Body, nil
}
