package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"codeberg.org/snonux/jsontrans/internal/dictionary"
)

// DefaultEndpoint is the Google Cloud Translation v2 REST endpoint
const DefaultEndpoint = "https://translation.googleapis.com/language/translate/v2"

// maxErrorBody caps how much of a failed response body is kept
const maxErrorBody = 1024

// Client translates records one request at a time
type Client struct {
	apiKey     string
	endpoint   string
	sourceLang string
	format     string
	httpClient *http.Client
	pacer      Pacer
}

// Option configures a Client
type Option func(*Client)

// WithEndpoint overrides the translation endpoint URL
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithPacer replaces the default fixed delay before each request
func WithPacer(p Pacer) Option {
	return func(c *Client) {
		c.pacer = p
	}
}

// WithSourceLang sets the source language. Without it the provider detects
// the language of each string.
func WithSourceLang(lang string) Option {
	return func(c *Client) {
		c.sourceLang = lang
	}
}

// WithFormat sets the text format, "text" or "html"
func WithFormat(format string) Option {
	return func(c *Client) {
		c.format = format
	}
}

// NewClient creates a new translation client authenticated with apiKey
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		endpoint:   DefaultEndpoint,
		httpClient: http.DefaultClient,
		pacer:      FixedDelay(DefaultDelay),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type translateRequest struct {
	Q      string `json:"q"`
	Target string `json:"target"`
	Source string `json:"source,omitempty"`
	Format string `json:"format,omitempty"`
}

type translateResponse struct {
	Data *struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage"`
		} `json:"translations"`
	} `json:"data"`
	Error *APIError `json:"error"`
}

// Translate waits for the pacer, then sends the record's value to the
// endpoint and returns a record with the same key and the translated text.
// Failures are returned as they happen; nothing is retried.
func (c *Client) Translate(ctx context.Context, rec dictionary.Record, targetLang string) (dictionary.Record, error) {
	if c.apiKey == "" {
		return dictionary.Record{}, ErrNoAPIKey
	}

	if err := c.pacer.Wait(ctx); err != nil {
		return dictionary.Record{}, err
	}

	var result translateResponse
	err := c.post(ctx, c.endpoint, translateRequest{
		Q:      rec.Value,
		Target: targetLang,
		Source: c.sourceLang,
		Format: c.format,
	}, &result)
	if err != nil {
		return dictionary.Record{}, err
	}

	if result.Error != nil {
		return dictionary.Record{}, result.Error
	}

	if result.Data == nil || len(result.Data.Translations) == 0 {
		return dictionary.Record{}, ErrNoTranslation
	}

	return dictionary.Record{
		Key:   rec.Key,
		Value: result.Data.Translations[0].TranslatedText,
	}, nil
}

// post sends payload as JSON to url and decodes a successful response
// into out
func (c *Client) post(ctx context.Context, url string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// newHTTPError reads what it can from a failed response. The v2 endpoint
// usually sends its error object along with the status code.
func newHTTPError(resp *http.Response) *HTTPError {
	httpErr := &HTTPError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return httpErr
	}
	httpErr.Body = strings.TrimSpace(string(data))

	var payload translateResponse
	if json.Unmarshal(data, &payload) == nil && payload.Error != nil {
		httpErr.Message = payload.Error.Message
	}

	return httpErr
}
