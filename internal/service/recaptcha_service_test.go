package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerifyServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestRecaptchaService_Verify(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		success bool
	}{
		{"success", http.StatusOK, `{"success": true, "hostname": "example.com"}`, true},
		{"explicit failure", http.StatusOK, `{"success": false, "error-codes": ["invalid-input-response"]}`, false},
		{"missing success field", http.StatusOK, `{"hostname": "example.com"}`, false},
		{"malformed body", http.StatusOK, `not json`, false},
		{"server error", http.StatusInternalServerError, `{"success": true}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newVerifyServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			svc := NewRecaptchaService("secret", srv.URL)
			assert.Equal(t, tt.success, svc.Verify(context.Background(), "token"))
		})
	}
}

func TestRecaptchaService_SendsSecretAndToken(t *testing.T) {
	var form url.Values
	srv := newVerifyServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		_, _ = io.WriteString(w, `{"success": true}`)
	})

	svc := NewRecaptchaService("my-secret", srv.URL)
	require.NoError(t, svc.VerifyToken(context.Background(), "client-token"))
	assert.Equal(t, "my-secret", form.Get("secret"))
	assert.Equal(t, "client-token", form.Get("response"))
}

func TestRecaptchaService_MissingSecretNeverCallsProvider(t *testing.T) {
	var calls int32
	srv := newVerifyServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = io.WriteString(w, `{"success": true}`)
	})

	svc := NewRecaptchaService("", srv.URL)
	err := svc.VerifyToken(context.Background(), "token")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, svc.Verify(context.Background(), "token"))
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestRecaptchaService_TimeoutFailsClosed(t *testing.T) {
	release := make(chan struct{})
	srv := newVerifyServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		_, _ = io.WriteString(w, `{"success": true}`)
	})
	defer close(release)

	svc := NewRecaptchaService("secret", srv.URL)
	svc.timeout = 50 * time.Millisecond

	start := time.Now()
	assert.False(t, svc.Verify(context.Background(), "token"))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRecaptchaService_UnreachableProvider(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	svc := NewRecaptchaService("secret", addr)
	assert.False(t, svc.Verify(context.Background(), "token"))
}

func TestNewRecaptchaService_DefaultURL(t *testing.T) {
	svc := NewRecaptchaService("secret", "")
	assert.Equal(t, DefaultRecaptchaVerifyURL, svc.verifyURL)
	assert.Equal(t, RecaptchaTimeout, svc.client.Timeout)
}
