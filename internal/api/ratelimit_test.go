package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/booknoteapp/booknote-server/internal/ratelimit"
)

func TestSaveRateLimitMiddleware(t *testing.T) {
	limiter := ratelimit.New(0.001, 1)
	handler := SaveRateLimitMiddleware(limiter, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	post := func(path string) int {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, post("/api/v1/library/save"))
	assert.Equal(t, http.StatusTooManyRequests, post("/api/v1/library/save"))

	// Other routes are not throttled.
	assert.Equal(t, http.StatusOK, post("/api/v1/books"))
	assert.Equal(t, http.StatusOK, post("/api/v1/books"))
}

func TestSaveRateLimitKeyedByClientIP(t *testing.T) {
	limiter := ratelimit.New(0.001, 1)
	handler := SaveRateLimitMiddleware(limiter, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	post := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/library/save", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, post("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1"))
	assert.Equal(t, http.StatusOK, post("10.0.0.2"))
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		expected string
	}{
		{
			name:     "remote addr",
			setup:    func(r *http.Request) { r.RemoteAddr = "192.168.1.5:9999" },
			expected: "192.168.1.5",
		},
		{
			name:     "x-forwarded-for single",
			setup:    func(r *http.Request) { r.Header.Set("X-Forwarded-For", "203.0.113.7") },
			expected: "203.0.113.7",
		},
		{
			name:     "x-forwarded-for chain",
			setup:    func(r *http.Request) { r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1") },
			expected: "203.0.113.7",
		},
		{
			name:     "x-real-ip",
			setup:    func(r *http.Request) { r.Header.Set("X-Real-IP", "198.51.100.9") },
			expected: "198.51.100.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/library/save", nil)
			tt.setup(req)
			assert.Equal(t, tt.expected, getClientIP(req))
		})
	}
}
