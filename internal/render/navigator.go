package render

import (
	"context"
	"fmt"
	"time"

	"github.com/jonesrussell/pageinsights/internal/logger"
)

// Default navigation timing. Only individual navigation calls carry a
// timeout; no deadline wraps a whole fetch.
const (
	DefaultOpenTimeout    = 30 * time.Second
	DefaultSectionTimeout = 5 * time.Second
	DefaultSettleDelay    = 1 * time.Second
	DefaultScrollSteps    = 3
	DefaultScrollPixels   = 1000

	waitPollInterval = 100 * time.Millisecond
)

// NavigatorConfig holds navigation timing policy. Centralizing it here
// keeps the waits testable against a fake session that simulates delay.
type NavigatorConfig struct {
	OpenTimeout    time.Duration `mapstructure:"open_timeout" yaml:"open_timeout"`
	SectionTimeout time.Duration `mapstructure:"section_timeout" yaml:"section_timeout"`
	SettleDelay    time.Duration `mapstructure:"settle_delay" yaml:"settle_delay"`
	ScrollSteps    int           `mapstructure:"scroll_steps" yaml:"scroll_steps"`
	ScrollPixels   int           `mapstructure:"scroll_pixels" yaml:"scroll_pixels"`
}

// DefaultNavigatorConfig returns the default navigation timing.
func DefaultNavigatorConfig() NavigatorConfig {
	return NavigatorConfig{
		OpenTimeout:    DefaultOpenTimeout,
		SectionTimeout: DefaultSectionTimeout,
		SettleDelay:    DefaultSettleDelay,
		ScrollSteps:    DefaultScrollSteps,
		ScrollPixels:   DefaultScrollPixels,
	}
}

// Navigator drives a session through the views needed to expose each
// record type. Every transition is best-effort: a failed navigation leaves
// the caller extracting from whatever view is currently loaded.
type Navigator struct {
	cfg NavigatorConfig
	log logger.Interface
}

// NewNavigator creates a navigator with the given timing policy. Zero
// config values fall back to the defaults.
func NewNavigator(cfg NavigatorConfig, log logger.Interface) *Navigator {
	def := DefaultNavigatorConfig()
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = def.OpenTimeout
	}
	if cfg.SectionTimeout <= 0 {
		cfg.SectionTimeout = def.SectionTimeout
	}
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = def.SettleDelay
	}
	if cfg.ScrollSteps <= 0 {
		cfg.ScrollSteps = def.ScrollSteps
	}
	if cfg.ScrollPixels <= 0 {
		cfg.ScrollPixels = def.ScrollPixels
	}
	return &Navigator{cfg: cfg, log: log.WithComponent("navigator")}
}

// Open loads the main view. A timeout or load error is not fatal: partial
// markup may still be extractable, so it is logged and reported as false.
func (n *Navigator) Open(ctx context.Context, session Session, url string) bool {
	openCtx, cancel := context.WithTimeout(ctx, n.cfg.OpenTimeout)
	defer cancel()

	if err := session.Open(openCtx, url); err != nil {
		n.log.Warn("Main view load failed, continuing with current state",
			"url", url,
			"error", err,
		)
		return false
	}

	n.Settle(ctx)
	return true
}

// GoToSection clicks through to a named section (about/posts/people) and
// reports whether navigation is believed to have succeeded. Failure is
// swallowed; the caller keeps operating on the previously loaded view.
func (n *Navigator) GoToSection(ctx context.Context, session Session, hint string) bool {
	sectionCtx, cancel := context.WithTimeout(ctx, n.cfg.SectionTimeout)
	defer cancel()

	selector := fmt.Sprintf("a[href*='%s']", hint)
	if err := session.Click(sectionCtx, selector); err != nil {
		n.log.Debug("Section navigation failed",
			"section", hint,
			"error", err,
		)
		return false
	}

	n.Settle(ctx)
	return true
}

// WaitFor polls until an element matching the selector is present or the
// settle window elapses. It reports whether the element appeared; on
// timeout the caller falls back to extracting whatever is loaded.
func (n *Navigator) WaitFor(ctx context.Context, session Session, selector string) bool {
	deadline := time.NewTimer(n.cfg.SettleDelay)
	defer deadline.Stop()
	tick := time.NewTicker(waitPollInterval)
	defer tick.Stop()

	for {
		if _, err := session.QuerySelector(selector); err == nil {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-deadline.C:
			return false
		case <-tick.C:
		}
	}
}

// ScrollFeed performs a fixed number of scroll steps to trigger lazy-loaded
// content, settling after each step.
func (n *Navigator) ScrollFeed(ctx context.Context, session Session) {
	for i := 0; i < n.cfg.ScrollSteps; i++ {
		if err := session.ScrollBy(ctx, n.cfg.ScrollPixels); err != nil {
			n.log.Debug("Scroll failed", "step", i, "error", err)
			return
		}
		n.Settle(ctx)
	}
}

// Settle waits for asynchronous content to populate, bounded by the settle
// delay and the caller's context.
func (n *Navigator) Settle(ctx context.Context) {
	timer := time.NewTimer(n.cfg.SettleDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
