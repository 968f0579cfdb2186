// Package session holds the client's authentication state: it exchanges
// credentials for a token and persists that token locally so subsequent
// runs stay logged in.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/clientdesk/clientdesk/internal/client/gateway"
	"github.com/clientdesk/clientdesk/internal/client/repositories/metadata"
	"github.com/clientdesk/clientdesk/internal/common"
)

// tokenKey is the fixed storage key the session token lives under.
const tokenKey = "token"

// API is the slice of the gateway the session manager needs.
type API interface {
	Post(ctx context.Context, path string, body any, out any) error
}

// Manager exposes login/logout and serves as the gateway's TokenProvider.
// The token is read through from storage on every call, so a logout takes
// effect immediately for subsequent requests.
type Manager struct {
	api  API
	meta metadata.Repository
}

func NewManager(api API, meta metadata.Repository) *Manager {
	return &Manager{api: api, meta: meta}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a token and persists it. On failure the
// previously stored token, if any, is left untouched. Invalid credentials
// surface as common.ErrUnauthorized.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	var resp loginResponse
	err := m.api.Post(ctx, "/users/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return common.ErrUnauthorized
		}
		return err
	}

	if resp.Token == "" {
		return fmt.Errorf("login: empty token in response")
	}

	return m.meta.Set(ctx, tokenKey, []byte(resp.Token))
}

// Logout clears the persisted token.
func (m *Manager) Logout(ctx context.Context) error {
	return m.meta.Delete(ctx, tokenKey)
}

// Token implements gateway.TokenProvider. A missing token reads as "".
func (m *Manager) Token(ctx context.Context) (string, error) {
	value, err := m.meta.Get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// LoggedIn reports whether a token is currently stored.
func (m *Manager) LoggedIn(ctx context.Context) bool {
	token, err := m.Token(ctx)
	return err == nil && token != ""
}
