// boardctl is the terminal client for the message board. It does the
// client-side half of the submission pipeline: derives the environment
// fingerprint, gates the text on the moderation filter, assigns a
// throwaway display name, and only then talks to the service.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"whisperboard/internal/config"
	"whisperboard/internal/fingerprint"
	"whisperboard/internal/moderation"
	"whisperboard/internal/username"
)

const (
	clientUserAgent = "boardctl/1.0"
	requestTimeout  = 15 * time.Second
)

var (
	serverURL  string
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "boardctl",
		Short: "Client for the anonymous message board",
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Board service base URL")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Deployment config file (CONFIG_FILE when omitted)")

	rootCmd.AddCommand(postCmd())
	rootCmd.AddCommand(feedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func postCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Submit a message",
		Long:  "Submit a message. Reads from stdin when --text is not given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if text == "" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read message: %w", err)
				}
				text = string(data)
			}
			text = strings.TrimSpace(text)
			if text == "" {
				return fmt.Errorf("message is empty")
			}

			extraWords, err := moderationExtraWords()
			if err != nil {
				return err
			}

			// The moderation gate blocks the submit action entirely;
			// there is no clean-and-resubmit flow.
			moderator, err := moderation.NewDefault(extraWords)
			if err != nil {
				return fmt.Errorf("failed to build moderation filter: %w", err)
			}
			if moderator.IsProfane(text) {
				return fmt.Errorf("message contains language that isn't allowed here")
			}

			env := fingerprint.HostEnvironment(clientUserAgent)
			sub := submission{
				Content:     text,
				Fingerprint: fingerprint.Generate(env),
				Username:    username.Generate(),
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			result, err := post(ctx, sub)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Posted as %s (id %s)\n", sub.Username, result.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Message text (stdin when omitted)")
	return cmd
}

// moderationExtraWords loads the deployment's extra blocked words when
// a config file is named. The embedded blocklist is always in effect;
// without a config file the filter just runs with it alone.
func moderationExtraWords() ([]string, error) {
	path := configFile
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path == "" {
		return nil, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg.Moderation.ExtraWords, nil
}

func feedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Show the message feed, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			messages, err := feed(ctx)
			if err != nil {
				return err
			}

			if len(messages) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No messages yet.")
				return nil
			}

			for _, msg := range messages {
				name := msg.Username
				if name == "" {
					name = "anonymous"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n",
					msg.Timestamp.Local().Format("2006-01-02 15:04"), name, msg.Content)
			}
			return nil
		},
	}
}

type submission struct {
	Content     string `json:"content"`
	Fingerprint string `json:"fingerprint"`
	Username    string `json:"username"`
}

type createResult struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

type message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username,omitempty"`
}

type feedResponse struct {
	Messages []message `json:"messages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func post(ctx context.Context, sub submission) (*createResult, error) {
	payload, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", clientUserAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, serverError(resp)
	}

	var result createResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

func feed(ctx context.Context) ([]message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serverURL+"/messages", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", clientUserAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serverError(resp)
	}

	var result feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result.Messages, nil
}

func serverError(resp *http.Response) error {
	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
