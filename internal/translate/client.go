// Copyright (c) 2026 Maqala. All rights reserved.

package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// # HTTP Client

// Client is a [Translator] backed by a LibreTranslate-compatible HTTP API.
//
// # Degradation
//
// A Client constructed with an empty endpoint behaves exactly like
// [Passthrough]: both translate methods return their input unchanged and
// never error. This keeps article creation available when the provider is
// down or simply not deployed.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient constructs a translation [Client].
//
// # Parameters
//   - endpoint: Provider base URL (e.g. "https://translate.internal/translate");
//     empty means unconfigured.
//   - apiKey: Optional provider API key.
//   - timeout: Per-request deadline for provider calls.
//   - logger: Structured logger for provider events.
func NewClient(endpoint, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Configured reports whether a backing provider endpoint is set.
func (client *Client) Configured() bool {
	return client.endpoint != ""
}

// Name returns the provider identifier recorded in translation metadata.
func (client *Client) Name() string {
	if !client.Configured() {
		return "passthrough"
	}
	return "libretranslate"
}

// TranslateHTML translates an HTML fragment, preserving markup.
func (client *Client) TranslateHTML(context context.Context, html, targetLanguage string) (string, error) {
	return client.translate(context, html, targetLanguage, "html")
}

// TranslateText translates a plain text string.
func (client *Client) TranslateText(context context.Context, text, targetLanguage string) (string, error) {
	return client.translate(context, text, targetLanguage, "text")
}

// # Wire Types

// translateRequest is the LibreTranslate request payload.
type translateRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

// translateResponse is the LibreTranslate response payload.
type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

/*
translate performs a single provider round-trip.

Description: Serializes the request, posts it to the provider, and decodes
the translated text. Empty input short-circuits without a network call, and
an unconfigured client returns the input unchanged.

Parameters:
  - context: context.Context bounding the outbound call
  - input: string (HTML fragment or plain text)
  - targetLanguage: string (BCP-47 code)
  - format: string ("html" or "text")

Returns:
  - string: The translated content
  - error: Transport failures, non-2xx responses, or malformed payloads
*/
func (client *Client) translate(context context.Context, input, targetLanguage, format string) (string, error) {

	// Degraded mode: identity translation, never an error
	if !client.Configured() {
		return input, nil
	}

	// Nothing to translate
	if input == "" {
		return input, nil
	}

	// Serialize the provider payload
	body, err := json.Marshal(translateRequest{
		Query:  input,
		Source: "auto",
		Target: targetLanguage,
		Format: format,
		APIKey: client.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("translate: failed to marshal request: %w", err)
	}

	request, err := http.NewRequestWithContext(context, http.MethodPost, client.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("translate: failed to build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	// Execute the provider call
	startTime := time.Now()
	response, err := client.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("translate: provider request failed: %w", err)
	}
	defer response.Body.Close()

	client.logger.Debug("translation_provider_called",
		slog.String("target", targetLanguage),
		slog.String("format", format),
		slog.Int("status", response.StatusCode),
		slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
	)

	// A timeout or non-2xx response is a collaborator failure
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return "", fmt.Errorf("translate: provider returned status %d: %s", response.StatusCode, string(snippet))
	}

	var decoded translateResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("translate: failed to decode response: %w", err)
	}

	return decoded.TranslatedText, nil
}
