package render_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/pageinsights/internal/logger"
	"github.com/jonesrussell/pageinsights/internal/render"
	"github.com/jonesrussell/pageinsights/testutils"
)

// fastNavigator keeps waits short so navigation tests run in milliseconds.
func fastNavigator() *render.Navigator {
	return render.NewNavigator(render.NavigatorConfig{
		OpenTimeout:    50 * time.Millisecond,
		SectionTimeout: 50 * time.Millisecond,
		SettleDelay:    5 * time.Millisecond,
		ScrollSteps:    2,
		ScrollPixels:   500,
	}, logger.NewNoOp())
}

func TestNavigatorOpen(t *testing.T) {
	t.Parallel()

	t.Run("successful load", func(t *testing.T) {
		t.Parallel()

		session := &testutils.FakeSession{
			Views: map[string]string{testutils.MainView: `<h1>Globex Corp</h1>`},
		}

		ok := fastNavigator().Open(context.Background(), session, "https://example.com/company/globex/")
		assert.True(t, ok)

		element, err := session.QuerySelector("h1")
		require.NoError(t, err)
		text, err := element.Text()
		require.NoError(t, err)
		assert.Equal(t, "Globex Corp", text)
	})

	t.Run("load error is swallowed", func(t *testing.T) {
		t.Parallel()

		session := &testutils.FakeSession{OpenErr: errors.New("connection refused")}

		ok := fastNavigator().Open(context.Background(), session, "https://example.com/company/globex/")
		assert.False(t, ok)
	})

	t.Run("slow load times out", func(t *testing.T) {
		t.Parallel()

		session := &testutils.FakeSession{
			Views:     map[string]string{testutils.MainView: `<h1>late</h1>`},
			OpenDelay: 500 * time.Millisecond,
		}

		ok := fastNavigator().Open(context.Background(), session, "https://example.com/company/globex/")
		assert.False(t, ok)
	})
}

func TestNavigatorGoToSection(t *testing.T) {
	t.Parallel()

	t.Run("section reached", func(t *testing.T) {
		t.Parallel()

		session := &testutils.FakeSession{
			Views: map[string]string{
				testutils.MainView: `<a href="/company/globex/about/">About</a>`,
				"about":            `<p class="about">We make things.</p>`,
			},
		}
		nav := fastNavigator()

		require.True(t, nav.Open(context.Background(), session, "https://example.com/company/globex/"))
		assert.True(t, nav.GoToSection(context.Background(), session, "about"))

		_, err := session.QuerySelector("p.about")
		assert.NoError(t, err)
		assert.Equal(t, []string{"a[href*='about']"}, session.Clicks)
	})

	t.Run("missing section leaves current view", func(t *testing.T) {
		t.Parallel()

		session := &testutils.FakeSession{
			Views: map[string]string{testutils.MainView: `<h1>Globex Corp</h1>`},
		}
		nav := fastNavigator()

		require.True(t, nav.Open(context.Background(), session, "https://example.com/company/globex/"))
		assert.False(t, nav.GoToSection(context.Background(), session, "posts"))

		// The main view must still be queryable after the failure.
		_, err := session.QuerySelector("h1")
		assert.NoError(t, err)
	})
}

func TestNavigatorWaitFor(t *testing.T) {
	t.Parallel()

	t.Run("element already present", func(t *testing.T) {
		t.Parallel()

		session := &testutils.FakeSession{
			Views: map[string]string{testutils.MainView: `<h1 class="title">Globex Corp</h1>`},
		}
		nav := fastNavigator()

		require.True(t, nav.Open(context.Background(), session, "https://example.com/company/globex/"))
		assert.True(t, nav.WaitFor(context.Background(), session, "h1.title"))
	})

	t.Run("element never appears", func(t *testing.T) {
		t.Parallel()

		session := &testutils.FakeSession{
			Views: map[string]string{testutils.MainView: `<div>nothing here</div>`},
		}
		nav := fastNavigator()

		require.True(t, nav.Open(context.Background(), session, "https://example.com/company/globex/"))

		start := time.Now()
		assert.False(t, nav.WaitFor(context.Background(), session, "h1.title"))
		assert.Less(t, time.Since(start), time.Second)
	})
}

func TestNavigatorScrollFeed(t *testing.T) {
	t.Parallel()

	session := &testutils.FakeSession{
		Views: map[string]string{testutils.MainView: `<div class="feed"></div>`},
	}
	nav := fastNavigator()

	require.True(t, nav.Open(context.Background(), session, "https://example.com/company/globex/"))
	nav.ScrollFeed(context.Background(), session)

	assert.Equal(t, 2, session.ScrollCount)
}

func TestNewNavigatorDefaults(t *testing.T) {
	t.Parallel()

	// Zero timing must not produce a navigator that spins or blocks
	// forever; defaults are substituted.
	nav := render.NewNavigator(render.NavigatorConfig{}, logger.NewNoOp())

	session := &testutils.FakeSession{
		Views: map[string]string{testutils.MainView: `<h1 class="title">ok</h1>`},
	}
	require.NoError(t, session.Open(context.Background(), "https://example.com/"))

	assert.True(t, nav.WaitFor(context.Background(), session, "h1.title"))
}
