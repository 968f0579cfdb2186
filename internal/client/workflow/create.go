package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/clientdesk/clientdesk/internal/client/models"
	"github.com/clientdesk/clientdesk/internal/common"
)

// ClientCreator is the backend surface of the create screen.
type ClientCreator interface {
	Create(ctx context.Context, name, phone, address string) (*models.Client, error)
}

// CreateClientWorkflow collects the three required client fields and submits
// a single creation request. Validation failures never reach the backend;
// on submit failure the caller keeps the entered values for correction.
type CreateClientWorkflow struct {
	api ClientCreator
}

func NewCreateClientWorkflow(api ClientCreator) *CreateClientWorkflow {
	return &CreateClientWorkflow{api: api}
}

func (w *CreateClientWorkflow) Submit(ctx context.Context, name, phone, address string) (*models.Client, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" || strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}

	created, err := w.api.Create(ctx, name, phone, address)
	if err != nil {
		return nil, fmt.Errorf("could not create the client: %w", err)
	}
	return created, nil
}
