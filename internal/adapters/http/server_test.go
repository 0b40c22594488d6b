package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/pkg/fetch"
	"github.com/aretw0/drills/pkg/observability"
	"github.com/aretw0/drills/pkg/widget"
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubGetter map[string]fetch.Response

func (g stubGetter) Get(ctx context.Context, rawURL string, jsonMode bool) (fetch.Response, error) {
	resp, ok := g[rawURL]
	if !ok {
		return fetch.Response{Status: http.StatusNotFound}, nil
	}
	return resp, nil
}

func testBindings() []widget.Binding {
	return widget.Defaults("http://swapi.test/api/", "http://hello.test/")
}

func testGetter() stubGetter {
	return stubGetter{
		"http://swapi.test/api/people/5/?format=json": {Status: 200, Body: []byte(`{"name":"Leia Organa"}`)},
		"http://swapi.test/api/films/?format=json":    {Status: 200, Body: []byte(`{"results":[{"title":"A New Hope"},{"title":"The Empire Strikes Back"}]}`)},
		"http://hello.test/?lang=fr":                  {Status: 200, Body: []byte(`{"code":"fr","hello":"Salut"}`)},
		"http://hello.test/?lang=es":                  {Status: 200, Body: []byte(`{"code":"es","hello":"Hola"}`)},
	}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestGetHealth(t *testing.T) {
	rr := get(t, NewHandler(testGetter(), testBindings()), "/health")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	rr := get(t, NewHandler(testGetter(), testBindings()), "/info")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "drills-http", resp["app"])
	assert.Equal(t, drills.Version, resp["version"])
}

func TestResolveBinding(t *testing.T) {
	h := NewHandler(testGetter(), testBindings())

	tests := []struct {
		target string
		want   widget.Result
	}{
		{"/api/bindings/character", widget.Result{Element: "character", Mode: widget.ModeText, Texts: []string{"Leia Organa"}}},
		{"/api/bindings/list_movies", widget.Result{Element: "list_movies", Mode: widget.ModeAppend, Texts: []string{"A New Hope", "The Empire Strikes Back"}}},
		{"/api/bindings/hello", widget.Result{Element: "hello", Mode: widget.ModeText, Texts: []string{"Salut"}}},
		{"/api/bindings/translation?input=es", widget.Result{Element: "translation", Mode: widget.ModeText, Texts: []string{"Hola"}}},
		{"/api/bindings/translation?input=xx", widget.Result{Element: "translation", Mode: widget.ModeText, Texts: []string{"Failed to retrieve translation."}, Failed: true}},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rr := get(t, h, tt.target)
			require.Equal(t, http.StatusOK, rr.Code)

			var got widget.Result
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveBinding_Unknown(t *testing.T) {
	rr := get(t, NewHandler(testGetter(), testBindings()), "/api/bindings/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "unknown binding")
}

func TestResolveBinding_RejectsLargeInput(t *testing.T) {
	t.Setenv("DRILLS_MAX_INPUT_SIZE", "4")
	rr := get(t, NewHandler(testGetter(), testBindings()), "/api/bindings/translation?input=toolong")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestListBindings(t *testing.T) {
	rr := get(t, NewHandler(testGetter(), testBindings()), "/api/bindings")
	require.Equal(t, http.StatusOK, rr.Code)

	var got []widget.Binding
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, testBindings(), got)
}

func TestPage(t *testing.T) {
	rr := get(t, NewHandler(testGetter(), testBindings()), "/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	body := rr.Body.String()
	for _, id := range []string{"character", "list_movies", "hello", "translation", "language_code", "btn_translate"} {
		assert.Contains(t, body, `id="`+id+`"`)
	}
	assert.Contains(t, body, `<ul id="list_movies">`)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	h := NewHandler(testGetter(), testBindings(), WithMetrics(m, reg))

	get(t, h, "/api/bindings/hello")
	get(t, h, "/api/bindings/translation?input=xx")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BindingRequests.WithLabelValues("hello", observability.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BindingRequests.WithLabelValues("translation", observability.OutcomeFailed)))

	rr := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "drills_binding_requests_total"))
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/bindings/hello", nil)
	rr := httptest.NewRecorder()
	NewHandler(testGetter(), testBindings()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
