package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "trace-1", r.Header.Get("X-Request-Id"))
		switch r.URL.Path {
		case "/api/deposits/1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"deposit":1,"status":"approved"}`))
		case "/api/deposits/2":
			w.Header().Set("Retry-After", "3")
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	client := NewHTTPClient(time.Second)
	headers := http.Header{"X-Request-Id": []string{"trace-1"}}

	tests := []struct {
		name         string
		path         string
		expectedCode int
		expectedBody string
		retryAfter   string
	}{
		{name: "Body returned", path: "/api/deposits/1", expectedCode: http.StatusOK, expectedBody: `{"deposit":1,"status":"approved"}`},
		{name: "Rate limited", path: "/api/deposits/2", expectedCode: http.StatusTooManyRequests, retryAfter: "3"},
		{name: "Unknown deposit", path: "/api/deposits/3", expectedCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body, respHeaders, err := client.Get(context.Background(), server.URL+tt.path, headers)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedBody, string(body))
			assert.Equal(t, tt.retryAfter, respHeaders.Get("Retry-After"))
		})
	}
}

func TestHTTPClient_GetCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := NewHTTPClient(0).Get(ctx, server.URL, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
