// Package chromecapture renders HTML to PNG with chromedp.
package chromecapture

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/user/commitstory/pkg/ports"
)

// DefaultTimeout bounds a capture when CaptureOptions.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// ErrChromeNotFound is returned when no Chrome binary can be located.
var ErrChromeNotFound = errors.New("chrome not found: install Chrome/Chromium, set CHROME_PATH, or use --chrome-path")

// Capturer implements ports.Screenshotter using chromedp.
type Capturer struct {
	logger ports.Logger
}

// New creates a new Capturer.
func New(logger ports.Logger) *Capturer {
	return &Capturer{logger: logger.WithComponent("chromedp")}
}

// allocatorOptions returns the exec allocator flags for a headless,
// container-friendly Chrome with a window matching the viewport.
func allocatorOptions(chromePath string, width, height int) []chromedp.ExecAllocatorOption {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("headless", "new"),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("mute-audio", true),
		chromedp.WindowSize(width, height),
	}
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	return opts
}

// Capture implements ports.Screenshotter.
func (c *Capturer) Capture(ctx context.Context, html string, opts ports.CaptureOptions) ([]byte, error) {
	chromePath := ResolveChromePath(opts.ChromePath)
	if chromePath == "" {
		return nil, ErrChromeNotFound
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c.logger.Debug("Launching browser (%s)", chromePath)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocatorOptions(chromePath, opts.Width, opts.Height)...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer func() {
		c.logger.Debug("Closing browser")
		browserCancel()
	}()

	// An empty Run starts the browser, so launch failures are reported
	// separately from page errors.
	if err := chromedp.Run(browserCtx); err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	runCtx, cancel := context.WithTimeout(browserCtx, timeout)
	defer cancel()

	idle := listenNetworkIdle(runCtx)

	c.logger.Debug("Setting viewport %dx%d", opts.Width, opts.Height)
	c.logger.Debug("Loading HTML content")

	var buf []byte
	err := chromedp.Run(runCtx,
		page.SetLifecycleEventsEnabled(true),
		chromedp.EmulateViewport(int64(opts.Width), int64(opts.Height), chromedp.EmulateScale(1)),
		chromedp.Navigate(ports.HTMLDataURL(html)),
		waitClosed(idle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			c.logger.Debug("Taking screenshot")
			var err error
			buf, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithClip(&page.Viewport{
					X:      0,
					Y:      0,
					Width:  float64(opts.Width),
					Height: float64(opts.Height),
					Scale:  1,
				}).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}

	return buf, nil
}

// listenNetworkIdle returns a channel closed when the main frame of the
// data URL document reports the networkIdle lifecycle event.
func listenNetworkIdle(ctx context.Context) <-chan struct{} {
	idle := make(chan struct{})

	var (
		mu     sync.Mutex
		loader cdp.LoaderID
		once   sync.Once
	)

	chromedp.ListenTarget(ctx, func(ev interface{}) {
		mu.Lock()
		defer mu.Unlock()

		switch e := ev.(type) {
		case *page.EventFrameNavigated:
			if e.Frame.ParentID == "" && strings.HasPrefix(e.Frame.URL, "data:") {
				loader = e.Frame.LoaderID
			}
		case *page.EventLifecycleEvent:
			if e.Name == "networkIdle" && loader != "" && e.LoaderID == loader {
				once.Do(func() { close(idle) })
			}
		}
	})

	return idle
}

func waitClosed(ch <-chan struct{}) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		select {
		case <-ch:
			return nil
		case <-ctx.Done():
			return fmt.Errorf("wait for network idle: %w", ctx.Err())
		}
	}
}

var _ ports.Screenshotter = (*Capturer)(nil)
