package render_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/pageinsights/internal/logger"
	"github.com/jonesrussell/pageinsights/internal/render"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/company/globex/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<h1 class="title">Globex Corp</h1>
			<a class="nav" href="/company/globex/about/">About</a>
		</body></html>`)
	})
	mux.HandleFunc("/company/globex/about/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p class="about">We make things.</p></body></html>`)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `<html><body><h1 class="error">Not here</h1></body></html>`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newHTTPSession(t *testing.T) render.Session {
	t.Helper()

	factory := render.NewHTTPSessionFactory(render.HTTPConfig{
		UserAgent:      "pageinsights-test",
		RequestTimeout: 5 * time.Second,
	}, logger.NewNoOp())

	session, err := factory.NewSession(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestHTTPSessionOpenAndQuery(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	session := newHTTPSession(t)

	require.NoError(t, session.Open(context.Background(), server.URL+"/company/globex/"))

	element, err := session.QuerySelector("h1.title")
	require.NoError(t, err)

	text, err := element.Text()
	require.NoError(t, err)
	assert.Equal(t, "Globex Corp", text)

	_, err = session.QuerySelector(".missing")
	assert.ErrorIs(t, err, render.ErrNoElement)
}

func TestHTTPSessionQueryBeforeOpen(t *testing.T) {
	t.Parallel()

	session := newHTTPSession(t)

	_, err := session.QuerySelector("h1")
	assert.ErrorIs(t, err, render.ErrNoDocument)
}

func TestHTTPSessionClickFollowsHref(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	session := newHTTPSession(t)

	require.NoError(t, session.Open(context.Background(), server.URL+"/company/globex/"))
	require.NoError(t, session.Click(context.Background(), "a[href*='about']"))

	element, err := session.QuerySelector("p.about")
	require.NoError(t, err)

	text, err := element.Text()
	require.NoError(t, err)
	assert.Equal(t, "We make things.", text)
}

func TestHTTPSessionClickMiss(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	session := newHTTPSession(t)

	require.NoError(t, session.Open(context.Background(), server.URL+"/company/globex/"))
	assert.ErrorIs(t, session.Click(context.Background(), "a[href*='people']"), render.ErrNoElement)
}

func TestHTTPSessionToleratesNon2xx(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	session := newHTTPSession(t)

	// A 404 body may still carry extractable markup.
	require.NoError(t, session.Open(context.Background(), server.URL+"/missing"))

	_, err := session.QuerySelector("h1.error")
	assert.NoError(t, err)
}

func TestHTTPSessionScrollIsNoOp(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	session := newHTTPSession(t)

	require.NoError(t, session.Open(context.Background(), server.URL+"/company/globex/"))
	assert.NoError(t, session.ScrollBy(context.Background(), 1000))
}
