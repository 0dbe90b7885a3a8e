package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/coursepeek/coursepeek/internal/logger"
)

// Chrome drives a headless browser through chromedp. One allocator is
// shared; every Open gets an isolated browser context.
type Chrome struct {
	config   Config
	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewChrome creates the dynamic browser.
func NewChrome(cfg Config) *Chrome {
	cfg = cfg.WithDefaults()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(cfg.UserAgent),
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	logger.Debug("chrome allocator created",
		"user_agent", cfg.UserAgent,
		"navigation_timeout", cfg.NavigationTimeout)

	return &Chrome{
		config:   cfg,
		allocCtx: allocCtx,
		cancel:   cancel,
	}
}

// Open navigates an isolated browser context to url and waits for the
// document to be ready. Fails with ErrNavigation on timeout or network
// failure; the browser context is torn down before returning in that case.
func (c *Chrome) Open(ctx context.Context, url string) (Page, error) {
	logger.Debug("opening page", "url", url)

	browserCtx, cancelBrowser := chromedp.NewContext(c.allocCtx)

	// Caller cancellation must reach the browser context, which descends
	// from the allocator rather than from ctx.
	stopWatch := context.AfterFunc(ctx, cancelBrowser)

	navCtx, cancelNav := context.WithTimeout(browserCtx, c.config.NavigationTimeout)
	defer cancelNav()

	err := chromedp.Run(navCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	)
	if err != nil {
		stopWatch()
		cancelBrowser()
		return nil, fmt.Errorf("%w: %s: %v", ErrNavigation, url, err)
	}

	logger.Debug("page ready", "url", url)
	return &chromePage{
		config: c.config,
		ctx:    browserCtx,
		cancel: cancelBrowser,
		stop:   stopWatch,
		url:    url,
	}, nil
}

// Close releases the shared allocator.
func (c *Chrome) Close() error {
	if c.cancel != nil {
		c.cancel()
	}
	return nil
}

// chromePage is one open browser tab.
type chromePage struct {
	config Config
	ctx    context.Context
	cancel context.CancelFunc
	stop   func() bool
	url    string
}

// run executes chromedp actions on the page context while honoring the
// caller's context for cancellation.
func (p *chromePage) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(p.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(runCtx, actions...)
}

func (p *chromePage) Text(ctx context.Context, locator string) (string, error) {
	var out string
	if err := p.run(ctx, chromedp.Evaluate(textJS(locator), &out)); err != nil {
		return "", fmt.Errorf("evaluate text %q: %w", locator, err)
	}
	return out, nil
}

func (p *chromePage) TextAll(ctx context.Context, locator string) ([]string, error) {
	var out []string
	if err := p.run(ctx, chromedp.Evaluate(textAllJS(locator), &out)); err != nil {
		return nil, fmt.Errorf("evaluate text-all %q: %w", locator, err)
	}
	return out, nil
}

func (p *chromePage) Attribute(ctx context.Context, locator, name string) (string, error) {
	var out string
	if err := p.run(ctx, chromedp.Evaluate(attributeJS(locator, name), &out)); err != nil {
		return "", fmt.Errorf("evaluate attribute %q[%s]: %w", locator, name, err)
	}
	return out, nil
}

func (p *chromePage) AttributeAll(ctx context.Context, locator, name string) ([]string, error) {
	var out []string
	if err := p.run(ctx, chromedp.Evaluate(attributeAllJS(locator, name), &out)); err != nil {
		return nil, fmt.Errorf("evaluate attribute-all %q[%s]: %w", locator, name, err)
	}
	return out, nil
}

func (p *chromePage) TextAfterMutation(ctx context.Context, locator string, timeout time.Duration) (string, error) {
	if timeout == 0 {
		timeout = p.config.MutationTimeout
	}
	var out string
	err := p.runPromise(ctx, mutationJS(locator, false, timeout.Milliseconds()), timeout, &out)
	if err != nil {
		return "", err
	}
	return out, nil
}

func (p *chromePage) TextAllAfterMutation(ctx context.Context, locator string, timeout time.Duration) ([]string, error) {
	if timeout == 0 {
		timeout = p.config.MutationTimeout
	}
	var out []string
	err := p.runPromise(ctx, mutationJS(locator, true, timeout.Milliseconds()), timeout, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// runPromise evaluates a promise-returning script, bounding the wait both
// in the page (the script's own timer) and on the Go side.
func (p *chromePage) runPromise(ctx context.Context, script string, timeout time.Duration, out any) error {
	// Slack past the in-page timer so its rejection is the usual failure.
	waitCtx, cancel := context.WithTimeout(ctx, timeout+2*time.Second)
	defer cancel()

	err := p.run(waitCtx, chromedp.Evaluate(script, out,
		func(params *runtime.EvaluateParams) *runtime.EvaluateParams {
			return params.WithAwaitPromise(true)
		}))
	if err != nil {
		if waitCtx.Err() != nil || strings.Contains(err.Error(), "mutation wait timed out") {
			return fmt.Errorf("%w: %s", ErrMutationTimeout, err)
		}
		return err
	}
	return nil
}

func (p *chromePage) Exists(ctx context.Context, locator string) (bool, error) {
	var found bool
	if err := p.run(ctx, chromedp.Evaluate(existsJS(locator), &found)); err != nil {
		return false, fmt.Errorf("evaluate exists %q: %w", locator, err)
	}
	return found, nil
}

func (p *chromePage) Click(ctx context.Context, locator string) error {
	var clicked bool
	if err := p.run(ctx, chromedp.Evaluate(clickJS(locator), &clicked)); err != nil {
		return fmt.Errorf("evaluate click %q: %w", locator, err)
	}
	if !clicked {
		logger.Debug("click target absent", "url", p.url, "locator", locator)
	}
	return nil
}

// Close tears down the browser context. Safe to call once per Open.
func (p *chromePage) Close() error {
	if p.stop != nil {
		p.stop()
	}
	if p.cancel != nil {
		p.cancel()
	}
	return nil
}
