package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"ministry-jobs-parser/internal/config"
)

// RodRenderer fetches pages through headless Chrome for boards that build
// their listing tables with script.
type RodRenderer struct {
	browser         *rod.Browser
	pageTimeout     time.Duration
	waitLoadTimeout time.Duration
}

func NewRodRenderer(cfg *config.Config) (*RodRenderer, error) {
	l := launcher.New().Headless(true)
	if cfg.Rod.ChromePath != "" {
		l = l.Bin(cfg.Rod.ChromePath)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &RodRenderer{
		browser:         browser,
		pageTimeout:     cfg.GetRodPageTimeout(),
		waitLoadTimeout: cfg.GetRodWaitLoadTimeout(),
	}, nil
}

func (r *RodRenderer) Render(ctx context.Context, url string) (string, error) {
	page, err := r.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", fmt.Errorf("failed to open page: %w", err)
	}
	defer func() { _ = page.Close() }()

	page = page.Context(ctx).Timeout(r.pageTimeout)

	if err := page.Timeout(r.waitLoadTimeout).WaitLoad(); err != nil {
		return "", fmt.Errorf("page load timed out: %w", err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to read page HTML: %w", err)
	}

	return html, nil
}

func (r *RodRenderer) Close() error {
	return r.browser.Close()
}
