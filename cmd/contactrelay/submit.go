package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/osa911/contactrelay/internal/api/dto/common"
	"github.com/osa911/contactrelay/internal/api/dto/v1/contact"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

const submitTimeout = 30 * time.Second

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Send a test submission to a contact endpoint",
	Long: `Send a test submission to a running contact relay.

Example:
  contactrelay submit --name "Jane Doe" --email jane@example.com --message "Hello"
  contactrelay submit --url https://api.example.com/contact --name Jane --email jane@example.com --message Hi`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		url, _ := flags.GetString("url")

		req := contact.ContactRequest{}
		req.Name, _ = flags.GetString("name")
		req.Email, _ = flags.GetString("email")
		req.Message, _ = flags.GetString("message")
		req.Company, _ = flags.GetString("company")
		req.Phone, _ = flags.GetString("phone")
		req.Token, _ = flags.GetString("token")

		ctx, cancel := context.WithTimeout(cmd.Context(), submitTimeout)
		defer cancel()

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Submitting to " + url + "..."
		s.Start()
		status, resp, err := submit(ctx, url, &req)
		s.Stop()
		if err != nil {
			return err
		}

		if resp.OK {
			fmt.Printf("✓ Submission accepted (%d)\n", status)
			return nil
		}
		return fmt.Errorf("submission rejected (%d): %s", status, resp.Error)
	},
}

// submit posts req as JSON and decodes the relay's envelope
func submit(ctx context.Context, url string, req *contact.ContactRequest) (int, *common.APIResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode submission: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return httpResp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp common.APIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return httpResp.StatusCode, nil, fmt.Errorf("unexpected response %q: %w", string(body), err)
	}
	return httpResp.StatusCode, &resp, nil
}
