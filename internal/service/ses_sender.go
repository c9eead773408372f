package service

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charsetUTF8 = "UTF-8"

// SESAPI is the subset of the SES client used for sending
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESSender delivers email through Amazon SES
type SESSender struct {
	client SESAPI
}

// NewSESSender wraps an existing SES client
func NewSESSender(client SESAPI) *SESSender {
	return &SESSender{client: client}
}

// NewSESSenderFromEnv builds an SES client from the default AWS credential chain
func NewSESSenderFromEnv(ctx context.Context, region string) (*SESSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewSESSender(ses.NewFromConfig(cfg)), nil
}

// Send submits email as a single SES SendEmail call
func (s *SESSender) Send(ctx context.Context, email *Email) (string, error) {
	out, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(email.From),
		Destination: &types.Destination{
			ToAddresses: email.To,
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(email.Subject),
				Charset: aws.String(charsetUTF8),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(email.TextBody),
					Charset: aws.String(charsetUTF8),
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("ses send email: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
