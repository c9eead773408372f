package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/osa911/contactrelay/internal/api/handlers"
	"github.com/osa911/contactrelay/internal/config"
	"github.com/osa911/contactrelay/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	emails []*service.Email
}

func (s *stubSender) Send(ctx context.Context, email *service.Email) (string, error) {
	s.emails = append(s.emails, email)
	return "stub-1", nil
}

func TestNewWithConfig_EndToEnd(t *testing.T) {
	cfg := &config.Config{
		LogLevel:      "info",
		RecaptchaFlag: "false",
		FromEmail:     "noreply@example.com",
		ToEmail:       "team@example.com",
		AllowedOrigin: "*",
		MailDriver:    config.MailDriverSES,
		ServiceName:   "contactrelay-test",
	}
	sender := &stubSender{}

	a, err := NewWithConfig(context.Background(), cfg, sender)
	require.NoError(t, err)
	defer a.Close(context.Background())

	resp := a.Contact.Handle(context.Background(), handlers.Invocation{
		Method:  http.MethodPost,
		Body:    []byte(`{"name": "Jane Doe", "email": "jane@example.com", "message": "Hello"}`),
		Headers: http.Header{},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, sender.emails, 1)
	assert.Equal(t, "Contact Form Submission from Jane Doe", sender.emails[0].Subject)
	assert.Equal(t, "noreply@example.com", sender.emails[0].From)
	assert.Equal(t, []string{"team@example.com"}, sender.emails[0].To)
}

func TestNewWithConfig_RecaptchaWithoutSecretFailsClosed(t *testing.T) {
	cfg := &config.Config{
		LogLevel:      "info",
		RecaptchaFlag: "TRUE",
		FromEmail:     "noreply@example.com",
		ToEmail:       "team@example.com",
		MailDriver:    config.MailDriverSES,
	}
	sender := &stubSender{}

	a, err := NewWithConfig(context.Background(), cfg, sender)
	require.NoError(t, err)
	defer a.Close(context.Background())

	resp := a.Contact.Handle(context.Background(), handlers.Invocation{
		Method: http.MethodPost,
		Body:   []byte(`{"name": "Jane", "email": "jane@example.com", "message": "Hi", "token": "t"}`),
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"ok": false, "error": "reCAPTCHA verification failed"}`, resp.Body)
	assert.Empty(t, sender.emails)
}

func TestNewWithConfig_LogDriver(t *testing.T) {
	cfg := &config.Config{
		LogLevel:   "info",
		FromEmail:  "noreply@example.com",
		ToEmail:    "team@example.com",
		MailDriver: config.MailDriverLog,
	}

	a, err := NewWithConfig(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer a.Close(context.Background())

	resp := a.Contact.Handle(context.Background(), handlers.Invocation{
		Method: http.MethodPost,
		Body:   []byte(`{"name": "Jane", "email": "jane@example.com", "message": "Hi"}`),
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
