package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/clientdesk/clientdesk/internal/server/config"
	"github.com/clientdesk/clientdesk/internal/server/models"
	"github.com/clientdesk/clientdesk/internal/server/repositories/repomanager"
)

type ClientService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewClientService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ClientService {
	return &ClientService{db: db, repomanager: m}
}

func validateClientFields(name, phone, address string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" || strings.TrimSpace(address) == "" {
		return fmt.Errorf("%w: name, phone_number and address are all required", common.ErrValidation)
	}
	return nil
}

func (s *ClientService) Create(ctx context.Context, name, phone, address string) (*models.Client, error) {

	if err := validateClientFields(name, phone, address); err != nil {
		return nil, err
	}

	repo := s.repomanager.Clients(s.db)

	client := &models.Client{Name: name, PhoneNumber: phone, Address: address}
	client, err := repo.Create(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("error creating client: %w", err)
	}

	return client, nil
}

// SearchByName returns every client whose name contains the text. Zero
// matches is a valid result, not an error. An empty search text is rejected
// so the endpoint never dumps the whole table.
func (s *ClientService) SearchByName(ctx context.Context, name string) ([]models.Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}

	repo := s.repomanager.Clients(s.db)

	result, err := repo.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error searching clients: %w", err)
	}

	return result, nil
}

// GetByPhone returns the client with exactly the given phone number, or
// common.ErrNotFound.
func (s *ClientService) GetByPhone(ctx context.Context, phone string) (*models.Client, error) {
	repo := s.repomanager.Clients(s.db)

	client, err := repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func (s *ClientService) Update(ctx context.Context, id int64, name, phone, address string) (*models.Client, error) {

	if err := validateClientFields(name, phone, address); err != nil {
		return nil, err
	}

	repo := s.repomanager.Clients(s.db)

	client := &models.Client{ID: id, Name: name, PhoneNumber: phone, Address: address}
	client, err := repo.Update(ctx, client)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Clients(s.db)
	return repo.Delete(ctx, id)
}
