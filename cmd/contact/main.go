package main

import (
	"context"
	"fmt"
	"os"

	apilambda "github.com/osa911/contactrelay/internal/api/lambda"
	"github.com/osa911/contactrelay/internal/app"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	// Built once per execution environment and reused across warm invocations.
	a, err := app.New(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize contact relay: %v\n", err)
		os.Exit(1)
	}

	a.Logger.Info("Contact handler ready (reCAPTCHA enabled: %t)", a.Config.RecaptchaEnabled())
	lambda.Start(apilambda.NewContactHandler(a.Contact, a.Telemetry))
}
