package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/osa911/contactrelay/internal/api/dto/common"
	"github.com/osa911/contactrelay/internal/api/dto/v1/contact"
	"github.com/osa911/contactrelay/internal/api/middleware"
	"github.com/osa911/contactrelay/internal/api/validation"
	"github.com/osa911/contactrelay/internal/logging"
	"github.com/osa911/contactrelay/internal/metrics"
	"github.com/osa911/contactrelay/internal/service"
	"github.com/osa911/contactrelay/internal/utils"
)

// Invocation is a transport-neutral view of an inbound request
type Invocation struct {
	Method   string
	Body     []byte
	Headers  http.Header
	SourceIP string
}

// Response is a transport-neutral reply. Body is the encoded JSON envelope.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// Verifier checks anti-automation tokens. Implementations fail closed.
type Verifier interface {
	Verify(ctx context.Context, token string) bool
}

// Dispatcher sends a validated submission as an email
type Dispatcher interface {
	SendContactEmail(ctx context.Context, form service.ContactForm, info service.ContactMessageInfo) error
}

// ContactHandlerConfig holds the per-deployment switches of the handler
type ContactHandlerConfig struct {
	RecaptchaEnabled bool
	AllowedOrigin    string
}

type ContactHandler struct {
	cfg        ContactHandlerConfig
	validator  *validation.Validator
	recaptcha  Verifier
	dispatcher Dispatcher
	metrics    *metrics.Metrics
}

// NewContactHandler wires the handler. m may be nil.
func NewContactHandler(cfg ContactHandlerConfig, recaptcha Verifier, dispatcher Dispatcher, m *metrics.Metrics) *ContactHandler {
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}
	return &ContactHandler{
		cfg:        cfg,
		validator:  validation.NewValidator(),
		recaptcha:  recaptcha,
		dispatcher: dispatcher,
		metrics:    m,
	}
}

// Handle processes one invocation end to end. It never panics and every
// response carries the CORS header set.
func (h *ContactHandler) Handle(ctx context.Context, inv Invocation) (resp Response) {
	if inv.Method == http.MethodOptions {
		h.metrics.ObserveSubmission(metrics.OutcomePreflight)
		return Preflight(h.cfg.AllowedOrigin)
	}

	defer func() {
		if r := recover(); r != nil {
			logging.GetGlobalLogger().Error("Unexpected error: %v\n%s", r, debug.Stack())
			h.metrics.ObserveSubmission(metrics.OutcomeInternalError)
			resp = h.fail(http.StatusInternalServerError, common.MsgInternalServer)
		}
	}()

	req, err := decodeContactRequest(inv.Body)
	if err != nil {
		h.metrics.ObserveSubmission(metrics.OutcomeInvalidJSON)
		return h.fail(http.StatusBadRequest, common.MsgInvalidJSON)
	}

	if err := h.validator.ValidateContact(req); err != nil {
		var verr *validation.ValidationError
		if !errors.As(err, &verr) {
			logging.GetGlobalLogger().Error("Unexpected validation error: %v", err)
			h.metrics.ObserveSubmission(metrics.OutcomeInternalError)
			return h.fail(http.StatusInternalServerError, common.MsgInternalServer)
		}
		h.metrics.ObserveSubmission(metrics.OutcomeInvalid)
		return h.fail(http.StatusBadRequest, verr.Message)
	}

	if h.cfg.RecaptchaEnabled {
		if req.Token == "" {
			h.metrics.ObserveSubmission(metrics.OutcomeRecaptchaMissing)
			return h.fail(http.StatusBadRequest, common.MsgRecaptchaRequired)
		}
		if !h.recaptcha.Verify(ctx, req.Token) {
			h.metrics.ObserveSubmission(metrics.OutcomeRecaptchaFailed)
			return h.fail(http.StatusBadRequest, common.MsgRecaptchaFailed)
		}
	}

	info := service.ContactMessageInfo{
		IPAddress: utils.ResolveClientIP(inv.Headers, inv.SourceIP),
		UserAgent: utils.ResolveUserAgent(inv.Headers),
	}
	form := service.ContactForm{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Company: req.Company,
		Phone:   req.Phone,
	}

	if err := h.dispatcher.SendContactEmail(ctx, form, info); err != nil {
		h.metrics.ObserveSubmission(metrics.OutcomeSendFailed)
		return h.fail(http.StatusInternalServerError, common.MsgSendFailed)
	}

	h.metrics.ObserveSubmission(metrics.OutcomeSent)
	return respond(http.StatusOK, h.cfg.AllowedOrigin, common.NewSuccessResponse())
}

// decodeContactRequest parses body into a normalized submission.
// An empty body is treated as an empty object.
func decodeContactRequest(body []byte) (*contact.ContactRequest, error) {
	if strings.TrimSpace(string(body)) == "" {
		body = []byte("{}")
	}

	var req contact.ContactRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	req.Normalize()
	return &req, nil
}

func (h *ContactHandler) fail(status int, message string) Response {
	return respond(status, h.cfg.AllowedOrigin, common.NewErrorResponse(message))
}

// Preflight answers a CORS preflight request
func Preflight(origin string) Response {
	return respond(http.StatusOK, origin, common.NewSuccessResponse())
}

func respond(status int, origin string, body common.APIResponse) Response {
	encoded, err := json.Marshal(body)
	if err != nil {
		// APIResponse only holds a bool and a string.
		encoded = []byte(`{"ok":false,"error":"Internal server error"}`)
		status = http.StatusInternalServerError
	}
	return Response{
		StatusCode: status,
		Headers:    middleware.CORSHeaders(origin),
		Body:       string(encoded),
	}
}
