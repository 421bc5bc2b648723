// Package client consumes the completion endpoint from the user-facing side:
// it opens the stream, reassembles chunks into a finished message, and feeds
// terminal outcomes back into the session transcript.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/itf-dev/schedule-masters/internal/model/chat"
)

// Transport opens completion requests against the backend.
type Transport struct {
	baseURL    string
	httpClient *http.Client
}

// NewTransport creates a transport for the given backend base URL.
func NewTransport(baseURL string) *Transport {
	return &Transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No client-wide timeout: a healthy stream may legitimately run for
		// minutes. Stalls are handled by the reassembler.
		httpClient: &http.Client{},
	}
}

type wireMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Complete posts the conversation and returns the progressive response body.
// A non-2xx status is decoded as the server's JSON error payload.
func (t *Transport) Complete(ctx context.Context, topicID string, conversation []chat.Message) (io.ReadCloser, error) {
	payload := struct {
		Messages []wireMessage `json:"messages"`
	}{Messages: toWire(conversation)}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode completion request: %w", err)
	}

	endpoint := t.baseURL + "/api/completion/" + url.PathEscape(topicID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}

	return resp.Body, nil
}

func decodeError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&payload); err == nil && payload.Error != "" {
		return fmt.Errorf("completion failed (%d): %s", resp.StatusCode, payload.Error)
	}
	return fmt.Errorf("completion failed with status %d", resp.StatusCode)
}

func toWire(conversation []chat.Message) []wireMessage {
	messages := make([]wireMessage, 0, len(conversation))
	for _, msg := range conversation {
		kind := "ai"
		if msg.Role == chat.RoleUser {
			kind = "user"
		}
		messages = append(messages, wireMessage{Type: kind, Content: msg.Content})
	}
	return messages
}
