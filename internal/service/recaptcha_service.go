package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/osa911/contactrelay/internal/logging"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultRecaptchaVerifyURL is Google's siteverify endpoint
const DefaultRecaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaTimeout bounds a single verification round trip
const RecaptchaTimeout = 10 * time.Second

// RecaptchaService handles reCAPTCHA verification
type RecaptchaService struct {
	secretKey string
	verifyURL string
	timeout   time.Duration
	client    *http.Client
}

// NewRecaptchaService creates a new reCAPTCHA service.
// An empty verifyURL selects DefaultRecaptchaVerifyURL.
func NewRecaptchaService(secretKey, verifyURL string) *RecaptchaService {
	if verifyURL == "" {
		verifyURL = DefaultRecaptchaVerifyURL
	}
	return &RecaptchaService{
		secretKey: secretKey,
		verifyURL: verifyURL,
		timeout:   RecaptchaTimeout,
		client: &http.Client{
			Timeout:   RecaptchaTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// recaptchaResponse represents the response from Google's reCAPTCHA API
type recaptchaResponse struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// Verify reports whether token passed verification. Every failure mode,
// including a missing secret, transport errors and timeouts, yields false.
func (s *RecaptchaService) Verify(ctx context.Context, token string) bool {
	ctx, span := otel.Tracer("contactrelay/service").Start(ctx, "recaptcha.verify")
	defer span.End()

	err := s.VerifyToken(ctx, token)
	span.SetAttributes(attribute.Bool("recaptcha.success", err == nil))
	if err != nil {
		logging.GetGlobalLogger().Warn("reCAPTCHA verification error: %v", err)
		return false
	}
	return true
}

// VerifyToken verifies a reCAPTCHA token and explains any failure
func (s *RecaptchaService) VerifyToken(ctx context.Context, token string) error {
	if s.secretKey == "" {
		return fmt.Errorf("reCAPTCHA secret key: %w", ErrNotConfigured)
	}

	if token == "" {
		return fmt.Errorf("reCAPTCHA token is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Prepare the request
	data := url.Values{}
	data.Set("secret", s.secretKey)
	data.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create reCAPTCHA request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Send verification request
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to verify reCAPTCHA: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("reCAPTCHA API returned status %d", resp.StatusCode)
	}

	// Parse response
	var result recaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to parse reCAPTCHA response: %w", err)
	}

	// Check if verification was successful
	if !result.Success {
		return fmt.Errorf("reCAPTCHA verification failed: %v", result.ErrorCodes)
	}

	return nil
}
