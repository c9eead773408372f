package main

import (
	"fmt"
	"os"

	apilambda "github.com/osa911/contactrelay/internal/api/lambda"
	"github.com/osa911/contactrelay/internal/config"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	lambda.Start(apilambda.NewPreflightHandler(cfg.AllowedOrigin))
}
