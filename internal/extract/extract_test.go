package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/pageinsights/internal/extract"
	"github.com/jonesrussell/pageinsights/internal/render"
)

func mustParse(t *testing.T, html string) render.Element {
	t.Helper()
	root, err := render.ParseDocument(html)
	require.NoError(t, err)
	return root
}

func TestText(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `
		<div>
			<h1 class="title">  Globex Corp  </h1>
			<a class="site" href="https://globex.example">Website</a>
		</div>`)

	tests := []struct {
		name    string
		loc     extract.Locator
		want    string
		wantErr error
	}{
		{
			name: "trimmed text content",
			loc:  extract.Locator{Selector: "h1.title"},
			want: "Globex Corp",
		},
		{
			name: "attribute value",
			loc:  extract.Locator{Selector: "a.site", Attr: "href"},
			want: "https://globex.example",
		},
		{
			name:    "selector miss",
			loc:     extract.Locator{Selector: ".missing"},
			wantErr: render.ErrNoElement,
		},
		{
			name:    "attribute miss",
			loc:     extract.Locator{Selector: "h1.title", Attr: "href"},
			wantErr: render.ErrNoAttribute,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := extract.Text(root, tt.loc)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `
		<ul>
			<li class="tag"> one </li>
			<li class="tag">two</li>
			<li class="tag">three </li>
		</ul>`)

	values, err := extract.List(root, extract.Locator{Selector: "li.tag"})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, values)

	empty, err := extract.List(root, extract.Locator{Selector: ".missing"})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestIntFromText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		want    int
		wantErr error
	}{
		{name: "plain number", text: "42", want: 42},
		{name: "thousands separators", text: "12,345 followers", want: 12345},
		{name: "number with prefix", text: "about 1,200 employees", want: 1200},
		{name: "first group wins", text: "10 of 200", want: 10},
		{name: "no digits", text: "followers", wantErr: extract.ErrNoNumber},
		{name: "empty text", text: "", wantErr: extract.ErrNoNumber},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := extract.IntFromText(tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInt(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `<div class="followers">12,345 followers</div>`)

	got, err := extract.Int(root, extract.Locator{Selector: ".followers"})
	require.NoError(t, err)
	assert.Equal(t, 12345, got)

	_, err = extract.Int(root, extract.Locator{Selector: ".missing"})
	assert.ErrorIs(t, err, render.ErrNoElement)
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "comma separated with spaces",
			text: "Software, Cloud , AI",
			want: []string{"Software", "Cloud", "AI"},
		},
		{
			name: "single token",
			text: "Software",
			want: []string{"Software"},
		},
		{
			name: "empty tokens dropped",
			text: "Software,, ,Cloud",
			want: []string{"Software", "Cloud"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extract.SplitList(tt.text))
		})
	}
}
