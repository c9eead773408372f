package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osa911/contactrelay/internal/api/sanitization"
	"github.com/osa911/contactrelay/internal/logging"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

// notProvided stands in for optional fields the submitter left empty
const notProvided = "Not provided"

// timestampLayout renders UTC time as ISO-8601 with a trailing Z
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Email is a plain-text message handed to a Sender
type Email struct {
	From     string
	To       []string
	Subject  string
	TextBody string
}

// Sender delivers a single email and returns the provider message id
type Sender interface {
	Send(ctx context.Context, email *Email) (string, error)
}

// ContactForm holds the validated submission fields
type ContactForm struct {
	Name    string
	Email   string
	Message string
	Company string
	Phone   string
}

// ContactMessageInfo carries details about the submitter's client
type ContactMessageInfo struct {
	IPAddress string
	UserAgent string
}

// EmailService composes contact emails and dispatches them through a Sender
type EmailService struct {
	sender    Sender
	fromEmail string
	toEmail   string
	now       func() time.Time
}

// NewEmailService creates a new email service
func NewEmailService(sender Sender, fromEmail, toEmail string) *EmailService {
	return &EmailService{
		sender:    sender,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		now:       time.Now,
	}
}

// SendContactEmail sends one contact email. It never retries.
func (s *EmailService) SendContactEmail(ctx context.Context, form ContactForm, info ContactMessageInfo) error {
	ctx, span := otel.Tracer("contactrelay/service").Start(ctx, "email.send")
	defer span.End()

	logger := logging.GetGlobalLogger()

	if s.toEmail == "" || s.fromEmail == "" {
		logger.Error("TO_EMAIL or FROM_EMAIL not configured")
		span.SetStatus(codes.Error, "addresses not configured")
		return fmt.Errorf("email addresses: %w", ErrNotConfigured)
	}

	subject, body := ComposeContactEmail(form, info, s.now())

	messageID, err := s.sender.Send(ctx, &Email{
		From:     s.fromEmail,
		To:       []string{s.toEmail},
		Subject:  subject,
		TextBody: body,
	})
	if err != nil {
		logger.Error("Failed to send email: %v", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	logger.Info("Email sent successfully: %s", messageID)
	return nil
}

// ComposeContactEmail renders the subject and text body for a submission
func ComposeContactEmail(form ContactForm, info ContactMessageInfo, at time.Time) (string, string) {
	subject := "Contact Form Submission from " + sanitization.SanitizeHeaderValue(form.Name)

	var b strings.Builder
	b.WriteString("New contact form submission:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", form.Name)
	fmt.Fprintf(&b, "Email: %s\n", form.Email)
	fmt.Fprintf(&b, "Company: %s\n", orNotProvided(form.Company))
	fmt.Fprintf(&b, "Phone: %s\n", orNotProvided(form.Phone))
	fmt.Fprintf(&b, "Message: %s\n\n", form.Message)
	b.WriteString("---\n")
	b.WriteString("Submission Details:\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", at.UTC().Format(timestampLayout))
	fmt.Fprintf(&b, "Client IP: %s\n", info.IPAddress)
	fmt.Fprintf(&b, "User Agent: %s", info.UserAgent)

	return subject, b.String()
}

func orNotProvided(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}
