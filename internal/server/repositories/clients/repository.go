package clients

import (
	"context"

	"github.com/clientdesk/clientdesk/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, client *models.Client) (*models.Client, error)
	SearchByName(ctx context.Context, name string) ([]models.Client, error)
	GetByPhone(ctx context.Context, phone string) (*models.Client, error)
	Update(ctx context.Context, client *models.Client) (*models.Client, error)
	Delete(ctx context.Context, id int64) error
}
