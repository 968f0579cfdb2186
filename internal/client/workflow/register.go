package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/clientdesk/clientdesk/internal/common"
)

// UserRegistrar is the backend surface of the registration screen.
type UserRegistrar interface {
	RegisterUser(ctx context.Context, name, email, password string) error
}

// RegisterUserWorkflow collects the three required account fields and submits
// a single registration request.
type RegisterUserWorkflow struct {
	api UserRegistrar
}

func NewRegisterUserWorkflow(api UserRegistrar) *RegisterUserWorkflow {
	return &RegisterUserWorkflow{api: api}
}

func (w *RegisterUserWorkflow) Submit(ctx context.Context, name, email, password string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: name, email and password are all required", common.ErrValidation)
	}

	if err := w.api.RegisterUser(ctx, name, email, password); err != nil {
		return fmt.Errorf("could not register the user: %w", err)
	}
	return nil
}
