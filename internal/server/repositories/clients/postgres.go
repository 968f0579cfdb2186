package clients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/clientdesk/clientdesk/internal/dbx"
	"github.com/clientdesk/clientdesk/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, client *models.Client) (*models.Client, error) {

	query :=
		`INSERT INTO clients (name, phone_number, address)
         VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		client.Name, client.PhoneNumber, client.Address).Scan(&client.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return client, nil
}

// SearchByName returns all clients whose name contains the given text,
// case-insensitively, ordered by name.
func (r *PostgresRepository) SearchByName(ctx context.Context, name string) ([]models.Client, error) {
	query :=
		`SELECT id, name, phone_number, address FROM clients
		 WHERE name ILIKE '%' || $1 || '%'
		 ORDER BY name, id
		 `

	rows, err := r.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.PhoneNumber, &c.Address); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// GetByPhone returns the client with exactly the given phone number.
func (r *PostgresRepository) GetByPhone(ctx context.Context, phone string) (*models.Client, error) {
	query :=
		`SELECT id, name, phone_number, address FROM clients
		 WHERE phone_number = $1
		 `

	client := &models.Client{}
	err := r.db.QueryRowContext(ctx, query, phone).Scan(&client.ID, &client.Name, &client.PhoneNumber, &client.Address)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return client, nil
}

func (r *PostgresRepository) Update(ctx context.Context, client *models.Client) (*models.Client, error) {
	query :=
		`UPDATE clients SET name = $1, phone_number = $2, address = $3
		 WHERE id = $4
		 RETURNING id, name, phone_number, address
		 `

	updated := &models.Client{}
	err := r.db.QueryRowContext(ctx, query,
		client.Name, client.PhoneNumber, client.Address, client.ID).
		Scan(&updated.ID, &updated.Name, &updated.PhoneNumber, &updated.Address)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM clients WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
