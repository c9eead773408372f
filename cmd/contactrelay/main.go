package main

import (
	"fmt"
	"os"

	"github.com/osa911/contactrelay/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contactrelay",
	Short: "Contact relay - contact form to email",
	Long: `Contact relay validates contact form submissions, optionally verifies a
reCAPTCHA token and forwards each accepted submission as an email.

The same handler runs behind API Gateway as a Lambda function and locally
through the serve command.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(submitCmd)

	serveCmd.Flags().String("port", "", "Port to listen on (overrides API_PORT)")

	submitCmd.Flags().String("url", "http://localhost:8080/contact", "Contact endpoint URL")
	submitCmd.Flags().String("name", "", "Submitter name")
	submitCmd.Flags().String("email", "", "Submitter email")
	submitCmd.Flags().String("message", "", "Message body")
	submitCmd.Flags().String("company", "", "Company (optional)")
	submitCmd.Flags().String("phone", "", "Phone (optional)")
	submitCmd.Flags().String("token", "", "reCAPTCHA token (optional)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
