package httphandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	toolschema "github.com/mutablelogic/go-toolschema"
	httphandler "github.com/mutablelogic/go-toolschema/pkg/httphandler"
	manager "github.com/mutablelogic/go-toolschema/pkg/manager"
	zerolog "github.com/rs/zerolog"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

func newTestManager(t *testing.T, opts ...manager.Opt) *manager.Manager {
	t.Helper()
	m, err := manager.New(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// newRouter returns a router with the handlers registered under /api
func newRouter(t *testing.T, manager *manager.Manager, middleware ...httprouter.HTTPMiddlewareFunc) *httprouter.Router {
	t.Helper()
	router, err := httprouter.NewRouter(context.Background(), http.NewServeMux(), "/api", "", "Test API", "v1", middleware...)
	if err != nil {
		t.Fatal(err)
	}
	if err := httphandler.RegisterHandlers(manager, router); err != nil {
		t.Fatal(err)
	}
	return router
}

func postJSON(path, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// logLines returns the JSON log lines written to the buffer
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var result []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var v map[string]any
		if err := json.Unmarshal([]byte(line), &v); err != nil {
			t.Fatal(err)
		}
		result = append(result, v)
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// REGISTER TESTS

// Missing arguments are rejected
func TestRegisterHandlers_NoRouter(t *testing.T) {
	assert := assert.New(t)

	err := httphandler.RegisterHandlers(newTestManager(t), nil)
	assert.ErrorIs(err, toolschema.ErrInternalServerError)

	router, err := httprouter.NewRouter(context.Background(), http.NewServeMux(), "/api", "", "Test API", "v1")
	if assert.NoError(err) {
		assert.ErrorIs(httphandler.RegisterHandlers(nil, router), toolschema.ErrInternalServerError)
	}
}

// Handlers are registered under the router prefix and added to the OpenAPI document
func TestRegisterHandlers_Router(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	router := newRouter(t, newTestManager(t))

	// Served under the prefix
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/provider", nil))
	assert.Equal(http.StatusOK, w.Code, w.Body.String())

	// Not served without it
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/provider", nil))
	assert.Equal(http.StatusNotFound, w.Code)

	// Paths appear in the OpenAPI document
	data, err := json.Marshal(router.Spec())
	require.NoError(err)
	for _, path := range []string{"/api/provider", "/api/convert", "/api/convert/{provider}"} {
		assert.Contains(string(data), `"`+path+`"`)
	}
}

// Registering the handlers twice on one router is an error
func TestRegisterHandlers_Conflict(t *testing.T) {
	router := newRouter(t, newTestManager(t))
	assert.Error(t, httphandler.RegisterHandlers(newTestManager(t), router))
}

///////////////////////////////////////////////////////////////////////////////
// MIDDLEWARE TESTS

// Requests are logged with their status
func TestMiddleware_Logging(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	handler := httphandler.Middleware(zerolog.New(&buf))(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	assert.Equal(http.StatusTeapot, w.Code)

	lines := logLines(t, &buf)
	if assert.Len(lines, 1) {
		assert.Equal("request", lines[0]["message"])
		assert.Equal("GET", lines[0]["method"])
		assert.Equal("/teapot", lines[0]["path"])
		assert.Equal(float64(http.StatusTeapot), lines[0]["status"])
		assert.Equal(float64(len("short and stout")), lines[0]["size"])
	}
}

// Panics are recovered and returned as internal errors
func TestMiddleware_Recover(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	handler := httphandler.Middleware(zerolog.New(&buf))(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(http.StatusInternalServerError, w.Code)

	lines := logLines(t, &buf)
	if assert.Len(lines, 2) {
		assert.Equal("panic recovered", lines[0]["message"])
		assert.Equal("boom", lines[0]["panic"])
		assert.Equal("request", lines[1]["message"])
		assert.Equal(float64(http.StatusInternalServerError), lines[1]["status"])
	}
}

// Middleware passed to the router wraps every registered handler
func TestMiddleware_Router(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var buf bytes.Buffer
	router := newRouter(t, newTestManager(t), httphandler.Middleware(zerolog.New(&buf)))
	require.NoError(router.RegisterPath("panic", nil, httprequest.NewPathItem("Panic", "Always panics").Get(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}, "Panic")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, postJSON("/api/convert/openai", `{"tools":[]}`))
	assert.Equal(http.StatusOK, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/panic", nil))
	assert.Equal(http.StatusInternalServerError, w.Code)

	lines := logLines(t, &buf)
	if assert.Len(lines, 3) {
		assert.Equal("/api/convert/openai", lines[0]["path"])
		assert.Equal(float64(http.StatusOK), lines[0]["status"])
		assert.Equal("panic recovered", lines[1]["message"])
		assert.Equal("/api/panic", lines[2]["path"])
		assert.Equal(float64(http.StatusInternalServerError), lines[2]["status"])
	}
}
