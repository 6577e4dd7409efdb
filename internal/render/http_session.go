package render

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jonesrussell/pageinsights/internal/logger"
)

// HTTPConfig configures the HTTP-backed session factory.
type HTTPConfig struct {
	UserAgent      string        `mapstructure:"user_agent" yaml:"user_agent"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
}

// HTTPSessionFactory creates sessions that fetch pages over plain HTTP and
// query the returned markup. Click follows the matched anchor's href;
// scrolling is a no-op because a static renderer has no lazy loading.
type HTTPSessionFactory struct {
	client *resty.Client
	log    logger.Interface
}

// NewHTTPSessionFactory creates a session factory on a shared resty client.
func NewHTTPSessionFactory(cfg HTTPConfig, log logger.Interface) *HTTPSessionFactory {
	client := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", cfg.UserAgent)

	return &HTTPSessionFactory{
		client: client,
		log:    log.WithComponent("render"),
	}
}

// NewSession creates a new HTTP session.
func (f *HTTPSessionFactory) NewSession(ctx context.Context) (Session, error) {
	return &httpSession{client: f.client, log: f.log}, nil
}

// httpSession is one navigation context over the shared HTTP client.
type httpSession struct {
	client     *resty.Client
	log        logger.Interface
	root       Element
	currentURL *url.URL
}

// Open fetches the URL and replaces the current document. A non-2xx status
// is not an error: partial markup may still be extractable.
func (s *httpSession) Open(ctx context.Context, rawURL string) error {
	resp, err := s.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return fmt.Errorf("open %s: %w", rawURL, err)
	}

	root, err := ParseDocument(string(resp.Body()))
	if err != nil {
		return fmt.Errorf("parse %s: %w", rawURL, err)
	}

	finalURL := resp.RawResponse.Request.URL
	s.log.Debug("Loaded document",
		"url", finalURL.String(),
		"status", resp.StatusCode(),
	)

	s.root = root
	s.currentURL = finalURL
	return nil
}

// QuerySelector returns the first element in the current document.
func (s *httpSession) QuerySelector(selector string) (Element, error) {
	if s.root == nil {
		return nil, ErrNoDocument
	}
	return s.root.QuerySelector(selector)
}

// QuerySelectorAll returns all elements in the current document.
func (s *httpSession) QuerySelectorAll(selector string) ([]Element, error) {
	if s.root == nil {
		return nil, ErrNoDocument
	}
	return s.root.QuerySelectorAll(selector)
}

// Click resolves the matched anchor's href against the current URL and
// navigates to it.
func (s *httpSession) Click(ctx context.Context, selector string) error {
	element, err := s.QuerySelector(selector)
	if err != nil {
		return err
	}

	href, err := element.Attr("href")
	if err != nil {
		return err
	}

	target, err := s.resolve(href)
	if err != nil {
		return err
	}

	return s.Open(ctx, target)
}

// ScrollBy is a no-op for the static renderer.
func (s *httpSession) ScrollBy(ctx context.Context, pixels int) error {
	return nil
}

// Close releases the session. The HTTP client is shared and stays open.
func (s *httpSession) Close() error {
	s.root = nil
	s.currentURL = nil
	return nil
}

// resolve turns a possibly relative href into an absolute URL.
func (s *httpSession) resolve(href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parse href %q: %w", href, err)
	}
	if s.currentURL == nil {
		return ref.String(), nil
	}
	return s.currentURL.ResolveReference(ref).String(), nil
}
