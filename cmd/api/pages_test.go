package main

import (
	"net/http"
	"testing"

	"github.com/nhan10132020/moviecatalog/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPages(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	for _, page := range web.Pages {
		t.Run(page, func(t *testing.T) {
			want, err := web.Page(page)
			require.NoError(t, err)

			rr := do(t, h, http.MethodGet, "/"+page, "")
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Equal(t, want, rr.Body.Bytes())
		})
	}

	index, err := web.Page("index.html")
	require.NoError(t, err)

	rr := do(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, index, rr.Body.Bytes())
}

func TestStaticAssets(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	rr := do(t, h, http.MethodGet, "/static/script.js", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "javascript")
	assert.Contains(t, rr.Body.String(), "DOMContentLoaded")

	rr = do(t, h, http.MethodGet, "/static/missing.js", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUnknownPath(t *testing.T) {
	app := newTestApplication(t)

	rr := do(t, app.routes(), http.MethodGet, "/nowhere.html", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "the requested resource could not be found", decode[errorBody](t, rr).Error)
}
