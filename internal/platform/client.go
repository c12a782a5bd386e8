package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL points at the platform sandbox; override with BASE_PATH.
const DefaultBaseURL = "https://sandbox-api.fireblocks.io/v1"

// Client is an HTTP client for the custodial wallet platform API.
// Request signing is delegated to the platform SDK in production deployments;
// this client authenticates with the API key only.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a wallet platform client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Error is a failed platform call. Status carries the upstream HTTP status
// when the platform answered, and 0 when the transport failed first.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("platform HTTP %d: %s", e.Status, e.Message)
}

// NotFound reports whether the platform signalled a missing resource.
func (e *Error) NotFound() bool { return e.Status == http.StatusNotFound }

// get performs a GET request against the platform API.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &Error{Status: resp.StatusCode, Message: errorMessage(body)}
	}

	return body, nil
}

// getJSON performs a GET request and unmarshals the JSON response after
// stripping an optional {"data": ...} envelope. Platform SDK revisions differ
// on whether payloads arrive bare or enveloped; unwrapping here keeps the
// rest of the gateway on a single shape.
func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(unwrapEnvelope(body), dest); err != nil {
		return fmt.Errorf("parsing JSON from %s: %w", path, err)
	}
	return nil
}

// unwrapEnvelope returns the "data" member of an enveloped payload, or the
// payload unchanged when there is no envelope.
func unwrapEnvelope(body []byte) []byte {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		return envelope.Data
	}
	return body
}

// errorMessage extracts the platform's error message from a failure body,
// falling back to the raw body text.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return string(body)
}
