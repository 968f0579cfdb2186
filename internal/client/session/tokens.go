package session

import (
	"context"

	"github.com/clientdesk/clientdesk/internal/client/gateway"
	"github.com/clientdesk/clientdesk/internal/client/repositories/metadata"
)

type storeTokens struct {
	meta metadata.Repository
}

// Tokens returns a gateway.TokenProvider that reads the persisted session
// token on every call. It exists so the gateway can be constructed before
// the Manager that writes the token.
func Tokens(meta metadata.Repository) gateway.TokenProvider {
	return storeTokens{meta: meta}
}

func (s storeTokens) Token(ctx context.Context) (string, error) {
	value, err := s.meta.Get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}
