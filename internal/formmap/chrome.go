package formmap

import (
	"context"
	"sync"
	"time"

	"directorybolt/internal/config"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/go-faster/errors"
)

//go:generate mockgen -package mockformmap -source=chrome.go -destination=mock/mockformmap.go *

// Rendered is a page after scripts ran.
type Rendered struct {
	HTML        string
	ResolvedURL string
	StatusCode  int
	// Screenshot is a full page PNG, empty when it could not be taken.
	Screenshot []byte
}

// Renderer loads pages in a browser.
type Renderer interface {
	Render(ctx context.Context, url string) (*Rendered, error)
}

// ChromeOptions configure ChromeRenderer.
type ChromeOptions struct {
	Headless          bool
	UserAgent         string
	NavigationTimeout time.Duration
	SettleDelay       time.Duration
	// MaxParallel bounds concurrent tabs, zero means unbounded.
	MaxParallel int
}

// NewChromeOptions constructs a ChromeOptions value from the provided application config.
func NewChromeOptions(cfg *config.Config) ChromeOptions {
	return ChromeOptions{
		Headless:          cfg.Monitor.Headless,
		UserAgent:         cfg.Audit.UserAgent,
		NavigationTimeout: cfg.Monitor.NavigationTimeout,
		SettleDelay:       cfg.Monitor.SettleDelay,
		MaxParallel:       cfg.Monitor.Concurrency,
	}
}

// ChromeRenderer renders pages in a shared Chrome process, one tab per page.
type ChromeRenderer struct {
	options     ChromeOptions
	limiter     chan struct{}
	allocator   context.Context //nolint: containedctx
	allocCancel context.CancelFunc
}

var _ Renderer = (*ChromeRenderer)(nil)

// NewChromeRenderer prepares a Chrome allocator. Chrome itself starts with
// the first Render call.
func NewChromeRenderer(options ChromeOptions) *ChromeRenderer {
	if options.NavigationTimeout <= 0 {
		options.NavigationTimeout = 45 * time.Second
	}

	var limiter chan struct{}
	if options.MaxParallel > 0 {
		limiter = make(chan struct{}, options.MaxParallel)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", options.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("enable-automation", false),
		chromedp.WindowSize(1366, 900),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &ChromeRenderer{
		options:     options,
		limiter:     limiter,
		allocator:   allocCtx,
		allocCancel: allocCancel,
	}
}

// Close stops Chrome.
func (r *ChromeRenderer) Close() {
	r.allocCancel()
}

func (r *ChromeRenderer) Render(ctx context.Context, url string) (*Rendered, error) {
	if err := r.acquire(ctx); err != nil {
		return nil, err
	}
	defer r.release()

	tabCtx, tabCancel := chromedp.NewContext(r.allocator)
	defer tabCancel()

	tabCtx, cancel := context.WithTimeout(tabCtx, r.options.NavigationTimeout)
	defer cancel()

	// the caller's cancellation also closes the tab
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var (
		mu     sync.Mutex
		status int
	)
	chromedp.ListenTarget(tabCtx, func(ev any) {
		if resp, ok := ev.(*network.EventResponseReceived); ok &&
			resp.Type == network.ResourceTypeDocument && resp.Response != nil {
			mu.Lock()
			status = int(resp.Response.Status)
			mu.Unlock()
		}
	})

	out := &Rendered{}
	err := chromedp.Run(tabCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			if err := network.Enable().Do(ctx); err != nil {
				return errors.Wrap(err, "enable network")
			}
			if r.options.UserAgent == "" {
				return nil
			}
			if err := emulation.SetUserAgentOverride(r.options.UserAgent).Do(ctx); err != nil {
				return errors.Wrap(err, "set user agent")
			}

			return nil
		}),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(r.options.SettleDelay),
		chromedp.Location(&out.ResolvedURL),
		chromedp.OuterHTML("html", &out.HTML, chromedp.ByQuery),
	)
	if err != nil {
		if errors.Is(tabCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, errors.Errorf("navigation timeout after %s", r.options.NavigationTimeout)
		}

		return nil, errors.Wrap(err, "render")
	}

	// a failed screenshot still leaves a usable capture
	var shot []byte
	if err := chromedp.Run(tabCtx, chromedp.FullScreenshot(&shot, 100)); err == nil {
		out.Screenshot = shot
	}

	mu.Lock()
	out.StatusCode = status
	mu.Unlock()

	return out, nil
}

func (r *ChromeRenderer) acquire(ctx context.Context) error {
	if r.limiter == nil {
		return nil
	}
	select {
	case r.limiter <- struct{}{}:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "wait for browser tab")
	}
}

func (r *ChromeRenderer) release() {
	if r.limiter != nil {
		<-r.limiter
	}
}
