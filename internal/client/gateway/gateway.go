// Package gateway implements the authenticated HTTP request layer of the
// client. Every outbound call reads the current session token through a
// TokenProvider and, when one is present, attaches it as a bearer credential.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/clientdesk/clientdesk/internal/common"
)

// DefaultTimeout bounds a single request including connection setup and
// response body read.
const DefaultTimeout = 10 * time.Second

// TokenProvider supplies the current session token. It is consulted on every
// request, so a cleared token takes effect immediately. An empty token means
// the request is sent unauthenticated.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Gateway issues JSON requests against a fixed base address.
type Gateway struct {
	baseURL string
	tokens  TokenProvider
	client  *http.Client
}

// New constructs a Gateway. A non-positive timeout falls back to DefaultTimeout.
func New(baseURL string, tokens TokenProvider, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		client:  &http.Client{Timeout: timeout},
	}
}

// Get issues a GET request. The query values are URL-encoded into the request.
// A non-nil out receives the decoded JSON response body.
func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	return g.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON-encoded body.
func (g *Gateway) Post(ctx context.Context, path string, body any, out any) error {
	return g.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON-encoded body.
func (g *Gateway) Put(ctx context.Context, path string, body any, out any) error {
	return g.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (g *Gateway) do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {

	u := g.baseURL + path
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := g.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: extractMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// extractMessage pulls the "message" field out of the backend's JSON error
// envelope. A body that is not such an envelope yields an empty message.
func extractMessage(data []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}
