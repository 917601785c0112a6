// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-storybook/internal/app"
	"github.com/MKhiriev/go-storybook/internal/config"
	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/ratelimit"
	"github.com/MKhiriev/go-storybook/internal/service"
)

// ---------------------------------------------------------------------------
// gzip
// ---------------------------------------------------------------------------

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "999")
		w.Write([]byte(`[{"title":"Moon"}]`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/books/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
	assert.Empty(t, rr.Header().Get("Content-Length"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"title":"Moon"}]`, string(plain))
}

func TestWithGZip_PassthroughWithoutAcceptEncoding(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("plain"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rr.Body.String())
}

func TestWithGZip_InflatesRequestBody(t *testing.T) {
	var got string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, r.Body.Close())
		got = string(body)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, `{"title":"Moon"}`)))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"title":"Moon"}`, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	called := false
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, messageOf(t, rr))
}

// ---------------------------------------------------------------------------
// trace id and access log
// ---------------------------------------------------------------------------

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{
		services: &service.Services{},
		logger:   &logger.Logger{Logger: zerolog.New(buf)},
	}
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{"echoes incoming id", "trace-123"},
		{"generates id", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			traceID := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, traceID)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, traceID)
			}

			entries := logEntries(t, &buf)
			require.Len(t, entries, 1)
			assert.Equal(t, traceID, entries[0]["trace_id"])
		})
	}
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("hello"))
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/books/?x=1", nil)
	req.Header.Set(traceIDHeader, "t-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := logEntries(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "/api/books/?x=1", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.Equal(t, float64(http.StatusCreated), entry["status"])
	assert.Equal(t, float64(5), entry["size"])
	assert.Equal(t, "t-1", entry["trace_id"])
	assert.Contains(t, entry, "duration")
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	handler := h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(h.logger.WithContext(req.Context()))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := logEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(http.StatusOK), entries[0]["status"])
}

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, 3, w.size)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Same(t, rr, w.Unwrap())
}

// ---------------------------------------------------------------------------
// rate limit
// ---------------------------------------------------------------------------

func TestWithRateLimit(t *testing.T) {
	h := &Handler{authLimiter: ratelimit.New(0.001, 2), logger: logger.Nop()}
	t.Cleanup(h.authLimiter.Stop)

	handler := h.withRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusNoContent, send("10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusNoContent, send("10.0.0.1:1001").Code)

	limited := send("10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "1", limited.Header().Get("Retry-After"))
	assert.Equal(t, app.MsgTooManyRequests, messageOf(t, limited))

	assert.Equal(t, http.StatusNoContent, send("10.0.0.2:1000").Code, "other clients keep their budget")
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		remoteAddr string
		forwarded  string
		want       string
	}{
		{"192.0.2.1:1234", "", "192.0.2.1"},
		{"[2001:db8::1]:443", "", "2001:db8::1"},
		{"192.0.2.1:1234", "203.0.113.7", "192.0.2.1"},
		{"no-port", "", "no-port"},
	}

	for _, tt := range tests {
		t.Run(tt.remoteAddr, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}

// ---------------------------------------------------------------------------
// unknown routes and methods
// ---------------------------------------------------------------------------

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"registered", http.MethodGet, "/api/version", http.StatusOK},
		{"wrong method", http.MethodDelete, "/api/version", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/api/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, router, tt.method, tt.path, "", nil)
			assert.Equal(t, tt.want, rr.Code)
			if tt.want == http.StatusNotFound {
				assert.Equal(t, app.MsgRouteNotFound, messageOf(t, rr))
			}
		})
	}
}

func TestInit_CORS(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	req := httptest.NewRequest(http.MethodOptions, "/api/books/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", authTokenHeader)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, strings.ToLower(rr.Header().Get("Access-Control-Allow-Headers")), authTokenHeader)

	req = httptest.NewRequest(http.MethodOptions, "/api/books/", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_NoTimeoutConfigured(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{AuthRateLimitRPS: 1, AuthRateLimitBurst: 1}, logger.Nop())
	t.Cleanup(h.Close)

	rr := doRequest(t, h.Init(), http.MethodGet, "/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
