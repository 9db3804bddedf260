package font

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const googleListing = `{
  "items": [
    {"family": "Inter", "variants": ["100", "regular", "italic", "700", "700italic"]},
    {"family": "Lobster", "files": {"regular": "https://fonts.gstatic.com/lobster.ttf"}}
  ]
}`

func newGoogleServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "bad" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(googleListing))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGoogleSourceFetch(t *testing.T) {
	srv := newGoogleServer(t)
	source := &GoogleSource{APIURL: srv.URL, Client: srv.Client()}

	fonts, err := source.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []FontName{
		{"Inter", "100"},
		{"Inter", "Regular"},
		{"Inter", "700"},
		{"Lobster", "Regular"},
	}, fonts)
}

func TestGoogleSourceFetchStatusError(t *testing.T) {
	srv := newGoogleServer(t)
	source := &GoogleSource{APIURL: srv.URL, APIKey: "bad", Client: srv.Client()}

	_, err := source.Fetch(context.Background())
	assert.ErrorContains(t, err, "403")
}

func TestGoogleSourceSync(t *testing.T) {
	srv := newGoogleServer(t)
	source := &GoogleSource{APIURL: srv.URL, Client: srv.Client()}
	catalog := NewCatalogAt("")

	n, err := source.Sync(context.Background(), catalog, "inter", "Missing")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"100", "Regular", "700"}, catalog.StylesFor("Inter"))
	assert.Equal(t, []string{"100", "Regular", "700"}, catalog.StylesFor("inter"))
	assert.Empty(t, catalog.StylesFor("Lobster"))
}

func TestVariantStyle(t *testing.T) {
	style, ok := variantStyle("regular")
	assert.True(t, ok)
	assert.Equal(t, "Regular", style)

	_, ok = variantStyle("300italic")
	assert.False(t, ok)

	style, ok = variantStyle("800")
	assert.True(t, ok)
	assert.Equal(t, 800, WeightToNumber(style))
}
