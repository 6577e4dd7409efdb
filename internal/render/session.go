// Package render abstracts the browser-like rendering context used to load
// and query a remote page. The scraping pipeline only ever sees the Session
// and Element interfaces, so the rendering engine can be swapped (or faked
// in tests) without touching extraction code.
package render

import (
	"context"
	"errors"
)

// Common errors returned by render sessions.
var (
	// ErrNoDocument is returned when no document has been loaded yet.
	ErrNoDocument = errors.New("no document loaded")
	// ErrNoElement is returned when a selector matches nothing.
	ErrNoElement = errors.New("no element matches selector")
	// ErrNoAttribute is returned when a matched element lacks the requested attribute.
	ErrNoAttribute = errors.New("attribute not present")
)

// Element is one matched node in a rendered document. Every operation is
// fallible: the backing renderer may have discarded the node or the
// document may have changed underneath it.
type Element interface {
	// Text returns the element's text content.
	Text() (string, error)
	// Attr returns the value of the named attribute, or ErrNoAttribute.
	Attr(name string) (string, error)
	// QuerySelector returns the first descendant matching the selector.
	QuerySelector(selector string) (Element, error)
	// QuerySelectorAll returns all descendants matching the selector.
	QuerySelectorAll(selector string) ([]Element, error)
}

// Session drives one rendering context. A session is a scoped resource:
// acquired at the start of a fetch and released at the end, even on
// failure.
type Session interface {
	// Open navigates the session to the given URL.
	Open(ctx context.Context, url string) error
	// QuerySelector returns the first element in the current document
	// matching the selector.
	QuerySelector(selector string) (Element, error)
	// QuerySelectorAll returns all elements in the current document
	// matching the selector.
	QuerySelectorAll(selector string) ([]Element, error)
	// Click activates the first element matching the selector, following
	// any navigation it triggers.
	Click(ctx context.Context, selector string) error
	// ScrollBy scrolls the current view by the given number of pixels.
	ScrollBy(ctx context.Context, pixels int) error
	// Close releases the session's resources.
	Close() error
}

// SessionFactory creates render sessions. Each fetch acquires its own
// session, so independent fetches can run side by side.
type SessionFactory interface {
	NewSession(ctx context.Context) (Session, error)
}
