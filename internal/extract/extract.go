// Package extract retrieves individual field values from a rendered
// document. Every helper returns an explicit error instead of panicking or
// swallowing failures: the record builders decide per field whether an
// absent value is acceptable. This per-field isolation is the central
// resilience mechanism of the pipeline; a selector that no longer matches
// must never abort extraction of sibling fields.
package extract

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonesrussell/pageinsights/internal/render"
)

// Errors returned by the extractors. ErrNoNumber and render.ErrNoElement
// style misses are expected; callers log them at debug level at most.
var (
	// ErrNoNumber is returned when a text holds no integer-like group.
	ErrNoNumber = errors.New("no number found in text")
)

// numberPattern matches the first integer-like group, with optional
// thousands separators ("12,345 followers" -> "12,345").
var numberPattern = regexp.MustCompile(`\d[\d,]*`)

// Locator declaratively describes where to find a value within a rendered
// document: a CSS selector plus an optional attribute name. An empty Attr
// means the element's trimmed text content.
type Locator struct {
	Selector string
	Attr     string
}

// Finder is the querying subset shared by render sessions and elements, so
// the extractors work against a whole document or a single card.
type Finder interface {
	QuerySelector(selector string) (render.Element, error)
	QuerySelectorAll(selector string) ([]render.Element, error)
}

// Text extracts one trimmed string value.
func Text(root Finder, loc Locator) (string, error) {
	element, err := root.QuerySelector(loc.Selector)
	if err != nil {
		return "", err
	}
	return elementValue(element, loc.Attr)
}

// List extracts the trimmed values of every element matching the locator.
// Elements that fail individually are skipped.
func List(root Finder, loc Locator) ([]string, error) {
	elements, err := root.QuerySelectorAll(loc.Selector)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(elements))
	for _, element := range elements {
		value, valueErr := elementValue(element, loc.Attr)
		if valueErr != nil {
			continue
		}
		values = append(values, value)
	}
	return values, nil
}

// Int extracts a non-negative count from free text using the first
// integer-like group rule.
func Int(root Finder, loc Locator) (int, error) {
	text, err := Text(root, loc)
	if err != nil {
		return 0, err
	}
	return IntFromText(text)
}

// IntFromText parses the first integer-like group out of free text,
// stripping thousands separators. It returns ErrNoNumber when the text
// holds no digits, in which case the field stays at its default.
func IntFromText(text string) (int, error) {
	match := numberPattern.FindString(text)
	if match == "" {
		return 0, ErrNoNumber
	}

	n, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		return 0, ErrNoNumber
	}
	return n, nil
}

// SplitList splits a free-text field on commas and trims each token,
// dropping empty ones.
func SplitList(text string) []string {
	parts := strings.Split(text, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// elementValue reads the attribute or trimmed text of one element.
func elementValue(element render.Element, attr string) (string, error) {
	if attr != "" {
		value, err := element.Attr(attr)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(value), nil
	}

	text, err := element.Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
