// Package testutils provides shared testing utilities across the
// application.
package testutils

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jonesrussell/pageinsights/internal/render"
)

// MainView is the FakeSession view key for the initially opened document.
const MainView = "main"

// FakeSession is an in-memory render session driven by canned HTML views.
// Open loads the main view; Click switches to the section view whose hint
// appears in the selector, mimicking href-based navigation.
type FakeSession struct {
	// Views maps a view key (MainView or a section hint like "about",
	// "posts", "people") to the HTML rendered for it.
	Views map[string]string
	// OpenErr fails Open outright.
	OpenErr error
	// OpenDelay simulates a slow initial load, for timeout tests.
	OpenDelay time.Duration
	// FailSections marks section navigations that should fail even
	// though the view exists.
	FailSections map[string]bool

	// Clicks records every Click selector, ScrollCount every scroll.
	Clicks      []string
	ScrollCount int
	Closed      bool

	root render.Element
}

// Open loads the main view.
func (s *FakeSession) Open(ctx context.Context, url string) error {
	if s.OpenDelay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.OpenDelay):
		}
	}
	if s.OpenErr != nil {
		return s.OpenErr
	}

	root, err := render.ParseDocument(s.Views[MainView])
	if err != nil {
		return err
	}
	s.root = root
	return nil
}

// QuerySelector queries the current view.
func (s *FakeSession) QuerySelector(selector string) (render.Element, error) {
	if s.root == nil {
		return nil, render.ErrNoDocument
	}
	return s.root.QuerySelector(selector)
}

// QuerySelectorAll queries the current view.
func (s *FakeSession) QuerySelectorAll(selector string) ([]render.Element, error) {
	if s.root == nil {
		return nil, render.ErrNoDocument
	}
	return s.root.QuerySelectorAll(selector)
}

// Click switches to the section view whose hint appears in the selector.
func (s *FakeSession) Click(ctx context.Context, selector string) error {
	s.Clicks = append(s.Clicks, selector)

	for hint, html := range s.Views {
		if hint == MainView || !strings.Contains(selector, hint) {
			continue
		}
		if s.FailSections[hint] {
			return render.ErrNoElement
		}
		root, err := render.ParseDocument(html)
		if err != nil {
			return err
		}
		s.root = root
		return nil
	}

	return render.ErrNoElement
}

// ScrollBy records the scroll.
func (s *FakeSession) ScrollBy(ctx context.Context, pixels int) error {
	s.ScrollCount++
	return nil
}

// Close marks the session released.
func (s *FakeSession) Close() error {
	s.Closed = true
	return nil
}

// FakeSessionFactory hands out a fixed session, or fails acquisition.
type FakeSessionFactory struct {
	Session render.Session
	Err     error

	mu       sync.Mutex
	acquired int
}

// NewSession returns the configured session.
func (f *FakeSessionFactory) NewSession(ctx context.Context) (render.Session, error) {
	f.mu.Lock()
	f.acquired++
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	return f.Session, nil
}

// Acquired returns how many sessions were handed out.
func (f *FakeSessionFactory) Acquired() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.acquired
}
