// Package playwrightcapture renders HTML to PNG with playwright-go's Chromium.
package playwrightcapture

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/user/commitstory/pkg/ports"
)

// DefaultTimeout bounds a capture when CaptureOptions.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Capturer implements ports.Screenshotter using Playwright.
type Capturer struct {
	logger ports.Logger
}

// New creates a new Capturer.
func New(logger ports.Logger) *Capturer {
	return &Capturer{logger: logger.WithComponent("playwright")}
}

// Capture implements ports.Screenshotter. Playwright has no context
// support, so ctx is only checked before launching.
func (c *Capturer) Capture(ctx context.Context, html string, opts ports.CaptureOptions) (data []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	timeoutMs := float64(timeout.Milliseconds())

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	defer func() {
		if stopErr := pw.Stop(); stopErr != nil && err == nil {
			err = fmt.Errorf("stop playwright: %w", stopErr)
		}
	}()

	launch := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Timeout:  playwright.Float(timeoutMs),
		Args: []string{
			"--no-sandbox",
			"--disable-setuid-sandbox",
			"--disable-dev-shm-usage",
			fmt.Sprintf("--window-size=%d,%d", opts.Width, opts.Height),
		},
	}
	if opts.ChromePath != "" {
		launch.ExecutablePath = playwright.String(opts.ChromePath)
	}

	c.logger.Debug("Launching browser (%s)", "chromium")
	browser, err := pw.Chromium.Launch(launch)
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	defer func() {
		c.logger.Debug("Closing browser")
		browser.Close()
	}()

	c.logger.Debug("Setting viewport %dx%d", opts.Width, opts.Height)
	page, err := browser.NewPage(playwright.BrowserNewPageOptions{
		Viewport: &playwright.Size{
			Width:  opts.Width,
			Height: opts.Height,
		},
		DeviceScaleFactor: playwright.Float(1),
	})
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}

	c.logger.Debug("Loading HTML content")
	if _, err := page.Goto(ports.HTMLDataURL(html), playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(timeoutMs),
	}); err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	c.logger.Debug("Taking screenshot")
	data, err = page.Screenshot(playwright.PageScreenshotOptions{
		Type:     playwright.ScreenshotTypePng,
		FullPage: playwright.Bool(false),
		Clip: &playwright.Rect{
			X:      0,
			Y:      0,
			Width:  float64(opts.Width),
			Height: float64(opts.Height),
		},
		Timeout: playwright.Float(timeoutMs),
	})
	if err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}

	return data, nil
}

var _ ports.Screenshotter = (*Capturer)(nil)
