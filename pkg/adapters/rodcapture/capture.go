// Package rodcapture renders HTML to PNG with go-rod.
package rodcapture

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/user/commitstory/pkg/ports"
)

const (
	// DefaultTimeout bounds a capture when CaptureOptions.Timeout is zero.
	DefaultTimeout = 30 * time.Second

	// idleWindow is how long the page must go without requests to count as idle.
	idleWindow = 500 * time.Millisecond
)

// Capturer implements ports.Screenshotter using go-rod. Without an explicit
// browser path it tries CHROME_PATH, then the system browser, and only then
// lets rod download a Chromium build.
type Capturer struct {
	logger   ports.Logger
	getenv   func(key string) string
	lookPath func() (string, bool)
}

// New creates a new Capturer.
func New(logger ports.Logger) *Capturer {
	return &Capturer{
		logger:   logger.WithComponent("rod"),
		getenv:   os.Getenv,
		lookPath: launcher.LookPath,
	}
}

// browserBin returns the browser to launch, or "" when rod should download one.
func (c *Capturer) browserBin(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if bin := c.getenv("CHROME_PATH"); bin != "" {
		return bin
	}
	if bin, found := c.lookPath(); found {
		return bin
	}
	return ""
}

// Capture implements ports.Screenshotter.
func (c *Capturer) Capture(ctx context.Context, html string, opts ports.CaptureOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	l := launcher.New().
		Context(ctx).
		Headless(true).
		NoSandbox(true).
		Set("disable-dev-shm-usage").
		Set("window-size", fmt.Sprintf("%d,%d", opts.Width, opts.Height))
	if bin := c.browserBin(opts.ChromePath); bin != "" {
		c.logger.Debug("Using browser %s", bin)
		l = l.Bin(bin)
	} else {
		c.logger.Warn("No browser found, downloading Chromium")
	}
	defer l.Kill()

	c.logger.Debug("Launching browser (%s)", "rod")
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer func() {
		c.logger.Debug("Closing browser")
		browser.Close()
	}()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}
	page = page.Timeout(timeout)

	c.logger.Debug("Setting viewport %dx%d", opts.Width, opts.Height)
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             opts.Width,
		Height:            opts.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, fmt.Errorf("set viewport: %w", err)
	}

	c.logger.Debug("Loading HTML content")
	waitIdle := page.WaitRequestIdle(idleWindow, nil, nil, nil)
	if err := page.Navigate(ports.HTMLDataURL(html)); err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait for load: %w", err)
	}
	waitIdle()

	c.logger.Debug("Taking screenshot")
	data, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
		Clip: &proto.PageViewport{
			X:      0,
			Y:      0,
			Width:  float64(opts.Width),
			Height: float64(opts.Height),
			Scale:  1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}

	return data, nil
}

var _ ports.Screenshotter = (*Capturer)(nil)
