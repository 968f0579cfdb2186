// Package clients is the typed API surface the client workflows talk to.
// It translates workflow calls into gateway requests against the backend's
// client and user endpoints, and maps transport failures to domain errors.
package clients

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/clientdesk/clientdesk/internal/client/gateway"
	"github.com/clientdesk/clientdesk/internal/client/models"
	"github.com/clientdesk/clientdesk/internal/common"
)

// API is the slice of the gateway this service needs.
type API interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Put(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string) error
}

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

type clientRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

type clientEnvelope struct {
	Message string         `json:"message"`
	Client  *models.Client `json:"client"`
}

// SearchByName returns all clients matching the name, in server-given order.
// An empty result is a valid success.
func (s *Service) SearchByName(ctx context.Context, name string) ([]models.Client, error) {
	q := url.Values{}
	q.Set("name", name)

	var result []models.Client
	if err := s.api.Get(ctx, "/clients/search/name", q, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchByPhone returns the client with exactly the given phone number.
// A backend 404 maps to common.ErrNotFound so callers can treat "no match"
// as a domain outcome rather than a system error.
func (s *Service) SearchByPhone(ctx context.Context, phone string) (*models.Client, error) {
	q := url.Values{}
	q.Set("phone", phone)

	var result models.Client
	if err := s.api.Get(ctx, "/clients/search/phone", q, &result); err != nil {
		if gateway.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// Create submits a new client record.
func (s *Service) Create(ctx context.Context, name, phone, address string) (*models.Client, error) {
	req := clientRequest{Name: name, PhoneNumber: phone, Address: address}

	var envelope clientEnvelope
	if err := s.api.Post(ctx, "/clients/create", req, &envelope); err != nil {
		return nil, err
	}
	return envelope.Client, nil
}

// Update replaces the named fields of the client with the given id.
func (s *Service) Update(ctx context.Context, id int64, name, phone, address string) (*models.Client, error) {
	req := clientRequest{Name: name, PhoneNumber: phone, Address: address}

	var result models.Client
	if err := s.api.Put(ctx, fmt.Sprintf("/clients/update/%d", id), req, &result); err != nil {
		if gateway.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// Delete removes the client with the given id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/clients/delete/%d", id)); err != nil {
		if gateway.IsNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	return nil
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser creates a new account. A duplicate email maps to
// common.ErrAlreadyExists.
func (s *Service) RegisterUser(ctx context.Context, name, email, password string) error {
	req := registerRequest{Name: name, Email: email, Password: password}

	if err := s.api.Post(ctx, "/users/register", req, nil); err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return common.ErrAlreadyExists
		}
		return err
	}
	return nil
}
