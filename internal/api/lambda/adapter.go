// Package lambda adapts API Gateway proxy events onto the contact handler.
package lambda

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/osa911/contactrelay/internal/api/handlers"
	"github.com/osa911/contactrelay/internal/logging"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

// ProxyHandler is the signature accepted by lambda.Start
type ProxyHandler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Flusher pushes buffered telemetry before the execution environment freezes
type Flusher interface {
	ForceFlush(ctx context.Context) error
}

// NewContactHandler returns a ProxyHandler that runs every event through h.
// flusher may be nil.
func NewContactHandler(h *handlers.ContactHandler, flusher Flusher) ProxyHandler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		logger := logging.GetGlobalLogger()
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			logger.Debug("Handling request %s %s", lc.AwsRequestID, req.HTTPMethod)
		}

		resp := h.Handle(ctx, ToInvocation(req))

		if flusher != nil {
			if err := flusher.ForceFlush(ctx); err != nil {
				logger.Warn("Failed to flush telemetry: %v", err)
			}
		}
		return ToProxyResponse(resp), nil
	}
}

// NewPreflightHandler returns a ProxyHandler that answers every event with
// the CORS preflight response. It has no dependencies.
func NewPreflightHandler(origin string) ProxyHandler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return ToProxyResponse(handlers.Preflight(origin)), nil
	}
}

// ToInvocation converts an API Gateway proxy event
func ToInvocation(req events.APIGatewayProxyRequest) handlers.Invocation {
	headers := http.Header{}
	for k, values := range req.MultiValueHeaders {
		for _, v := range values {
			headers.Add(k, v)
		}
	}
	for k, v := range req.Headers {
		if headers.Get(k) == "" {
			headers.Set(k, v)
		}
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		// An undecodable body is passed through and rejected as invalid JSON.
		if decoded, err := base64.StdEncoding.DecodeString(req.Body); err == nil {
			body = decoded
		}
	}

	return handlers.Invocation{
		Method:   req.HTTPMethod,
		Body:     body,
		Headers:  headers,
		SourceIP: req.RequestContext.Identity.SourceIP,
	}
}

// ToProxyResponse converts a handler response
func ToProxyResponse(resp handlers.Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
}
