package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const ProviderName = "huggingface"

var (
	ErrNotConfigured      = errors.New("huggingface: HF_TOKEN not configured")
	ErrUnexpectedResponse = errors.New("huggingface: unexpected response shape")
)

type Client struct {
	token        string
	textGenURL   string
	sentimentURL string
	maxNewTokens int
	http         *http.Client
}

func NewClient(token, textGenURL, sentimentURL string, maxNewTokens int, timeout time.Duration) *Client {
	return &Client{
		token:        token,
		textGenURL:   textGenURL,
		sentimentURL: sentimentURL,
		maxNewTokens: maxNewTokens,
		http:         &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string {
	return ProviderName
}

func (c *Client) Configured() bool {
	return c.token != ""
}

// Generate runs the text-generation model and returns the first generated_text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload := textGenerationRequest{
		Inputs:     prompt,
		Parameters: textGenerationParams{MaxNewTokens: c.maxNewTokens},
		Options:    inferenceOptions{WaitForModel: true},
	}

	body, err := c.post(ctx, c.textGenURL, payload)
	if err != nil {
		return "", err
	}

	var results []textGenerationResponse
	if err := json.Unmarshal(body, &results); err != nil {
		return "", fmt.Errorf("decode text generation: %w", describe(body, err))
	}
	if len(results) == 0 {
		return "", ErrUnexpectedResponse
	}

	return results[0].GeneratedText, nil
}

// Classify runs the sentiment model. The router answers either [[{label,score}]]
// or [{label,score}] depending on the pipeline; both are accepted.
func (c *Client) Classify(ctx context.Context, text string) ([]LabelScore, error) {
	payload := classificationRequest{
		Inputs:  text,
		Options: inferenceOptions{WaitForModel: true},
	}

	body, err := c.post(ctx, c.sentimentURL, payload)
	if err != nil {
		return nil, err
	}

	var nested [][]LabelScore
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) == 0 || len(nested[0]) == 0 {
			return nil, ErrUnexpectedResponse
		}
		return nested[0], nil
	}

	var flat []LabelScore
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("decode classification: %w", describe(body, err))
	}
	if len(flat) == 0 {
		return nil, ErrUnexpectedResponse
	}
	return flat, nil
}

func (c *Client) post(ctx context.Context, url string, payload any) ([]byte, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal huggingface payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("huggingface request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read huggingface response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("huggingface rejected request (status %d): %w", resp.StatusCode, describe(body, nil))
	}

	return body, nil
}

// describe prefers the router's {"error": "..."} message over a decode error.
func describe(body []byte, fallback error) error {
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return errors.New(apiErr.Error)
	}
	if fallback != nil {
		return fallback
	}
	return ErrUnexpectedResponse
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
