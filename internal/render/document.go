package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// documentElement adapts a goquery selection to the Element interface.
type documentElement struct {
	sel *goquery.Selection
}

// ParseDocument parses raw HTML into a queryable root Element. It is used
// by the HTTP session and by fake sessions in tests.
func ParseDocument(html string) (Element, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return &documentElement{sel: doc.Selection}, nil
}

// Text returns the element's text content.
func (e *documentElement) Text() (string, error) {
	return e.sel.Text(), nil
}

// Attr returns the value of the named attribute.
func (e *documentElement) Attr(name string) (string, error) {
	val, exists := e.sel.Attr(name)
	if !exists {
		return "", ErrNoAttribute
	}
	return val, nil
}

// QuerySelector returns the first descendant matching the selector.
func (e *documentElement) QuerySelector(selector string) (Element, error) {
	found := e.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, ErrNoElement
	}
	return &documentElement{sel: found}, nil
}

// QuerySelectorAll returns all descendants matching the selector.
func (e *documentElement) QuerySelectorAll(selector string) ([]Element, error) {
	found := e.sel.Find(selector)
	elements := make([]Element, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, &documentElement{sel: s})
	})
	return elements, nil
}
