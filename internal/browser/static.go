package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"github.com/gocolly/colly/v2"
	"golang.org/x/net/html"

	"github.com/coursepeek/coursepeek/internal/logger"
)

// Static fetches pages over plain HTTP and evaluates locators against the
// server-rendered document. Several catalog platforms ship complete HTML
// and never need a real browser.
type Static struct {
	config Config
}

// NewStatic creates the static browser.
func NewStatic(cfg Config) *Static {
	return &Static{config: cfg.WithDefaults()}
}

// Open fetches url and parses the response body.
func (s *Static) Open(ctx context.Context, url string) (Page, error) {
	c := colly.NewCollector(colly.UserAgent(s.config.UserAgent))
	c.SetRequestTimeout(s.config.NavigationTimeout)

	var body string
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(url); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNavigation, url, err)
	}
	c.Wait()
	if fetchErr != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNavigation, url, fetchErr)
	}

	root, err := htmlquery.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: parse: %v", ErrNavigation, url, err)
	}

	logger.Debug("static page fetched", "url", url, "bytes", len(body))
	return &staticPage{
		url:  url,
		html: body,
		root: root,
		doc:  goquery.NewDocumentFromNode(root),
	}, nil
}

// Close is a no-op; the static browser holds no resources.
func (s *Static) Close() error { return nil }

// staticPage evaluates XPath locators with htmlquery and CSS locators with
// goquery over the same parsed tree.
type staticPage struct {
	url  string
	html string
	root *html.Node
	doc  *goquery.Document
}

func (p *staticPage) find(locator string) []*html.Node {
	if isXPath(locator) {
		nodes, err := htmlquery.QueryAll(p.root, locator)
		if err != nil {
			logger.Debug("bad xpath locator", "url", p.url, "locator", locator, "error", err)
			return nil
		}
		return nodes
	}
	var nodes []*html.Node
	p.doc.Find(locator).Each(func(_ int, sel *goquery.Selection) {
		nodes = append(nodes, sel.Nodes...)
	})
	return nodes
}

func (p *staticPage) Text(_ context.Context, locator string) (string, error) {
	nodes := p.find(locator)
	if len(nodes) == 0 {
		return "", nil
	}
	return strings.TrimSpace(htmlquery.InnerText(nodes[0])), nil
}

func (p *staticPage) TextAll(_ context.Context, locator string) ([]string, error) {
	var out []string
	for _, node := range p.find(locator) {
		out = append(out, strings.TrimSpace(htmlquery.InnerText(node)))
	}
	return out, nil
}

func (p *staticPage) Attribute(_ context.Context, locator, name string) (string, error) {
	nodes := p.find(locator)
	if len(nodes) == 0 {
		return "", nil
	}
	return htmlquery.SelectAttr(nodes[0], name), nil
}

func (p *staticPage) AttributeAll(_ context.Context, locator, name string) ([]string, error) {
	var out []string
	for _, node := range p.find(locator) {
		if attr := htmlquery.SelectAttr(node, name); attr != "" {
			out = append(out, attr)
		}
	}
	return out, nil
}

// TextAfterMutation evaluates once: a static document will never mutate,
// so an absent element is an immediate timeout.
func (p *staticPage) TextAfterMutation(ctx context.Context, locator string, _ time.Duration) (string, error) {
	text, _ := p.Text(ctx, locator)
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrMutationTimeout, locator)
	}
	return text, nil
}

func (p *staticPage) TextAllAfterMutation(ctx context.Context, locator string, _ time.Duration) ([]string, error) {
	texts, _ := p.TextAll(ctx, locator)
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMutationTimeout, locator)
	}
	return texts, nil
}

func (p *staticPage) Exists(_ context.Context, locator string) (bool, error) {
	return len(p.find(locator)) > 0, nil
}

// Click is a no-op on a static document.
func (p *staticPage) Click(_ context.Context, locator string) error {
	logger.Debug("click ignored on static page", "url", p.url, "locator", locator)
	return nil
}

func (p *staticPage) Close() error { return nil }
