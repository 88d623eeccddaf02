package fetcher

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"time"

	"ministry-jobs-parser/internal/config"
	"ministry-jobs-parser/internal/observability"
)

// Renderer loads a page in a real browser. Used instead of plain GET when
// a board populates its rows with script.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

type Fetcher struct {
	client      *http.Client
	cfg         *config.Config
	logger      *observability.Logger
	rateLimiter *HostLimiter
	renderer    Renderer
}

func NewFetcher(cfg *config.Config, logger *observability.Logger) (*Fetcher, error) {
	client := &http.Client{
		Timeout: cfg.GetTotalTimeout(),
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	f := &Fetcher{
		client:      client,
		cfg:         cfg,
		logger:      logger,
		rateLimiter: NewHostLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
	}

	if cfg.Rod.Enabled {
		renderer, err := NewRodRenderer(cfg)
		if err != nil {
			return nil, err
		}
		f.renderer = renderer
	}

	return f, nil
}

// Fetch issues one GET and returns the page body. Any failure — transport
// error, timeout, non-2xx status — yields ok=false and a warning; the next
// scheduled scan is the retry mechanism, so there are no retries here.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) (html string, ok bool) {
	if err := f.rateLimiter.WaitURL(ctx, urlStr); err != nil {
		f.logger.Warn("Rate limiter wait aborted", "url", urlStr, "error", err.Error())
		return "", false
	}

	if f.renderer != nil {
		rendered, err := f.renderer.Render(ctx, urlStr)
		if err != nil {
			f.logger.Warn("Render failed", "url", urlStr, "error", err.Error())
			return "", false
		}
		return rendered, true
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		f.logger.Warn("Invalid request", "url", urlStr, "error", err.Error())
		return "", false
	}

	req.Header.Set("User-Agent", f.cfg.HTTP.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	req.Header.Set("Connection", "keep-alive")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("Fetch failed", "url", urlStr, "error", err.Error())
		return "", false
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			f.logger.Warn("Failed to close response body", "error", err.Error())
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Warn("Fetch returned non-success status", "url", urlStr, "status", resp.StatusCode)
		return "", false
	}

	reader := resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			f.logger.Warn("Failed to open gzip reader", "url", urlStr, "error", err.Error())
			return "", false
		}
		defer func() { _ = gzipReader.Close() }()
		reader = gzipReader
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		f.logger.Warn("Failed to read response body", "url", urlStr, "error", err.Error())
		return "", false
	}

	return string(body), true
}

// Close releases the renderer, if one was started.
func (f *Fetcher) Close() error {
	if closer, ok := f.renderer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
