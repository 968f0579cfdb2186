// Package httpapi exposes the ClientDesk services over HTTP with echo.
// All responses use JSON; errors are reported as {"message": "..."} envelopes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/clientdesk/clientdesk/internal/logging"
	"github.com/clientdesk/clientdesk/internal/server/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 5 * time.Second

// UserAPI is the slice of the user service the handlers need.
type UserAPI interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// ClientAPI is the slice of the client service the handlers need.
type ClientAPI interface {
	Create(ctx context.Context, name, phone, address string) (*models.Client, error)
	SearchByName(ctx context.Context, name string) ([]models.Client, error)
	GetByPhone(ctx context.Context, phone string) (*models.Client, error)
	Update(ctx context.Context, id int64, name, phone, address string) (*models.Client, error)
	Delete(ctx context.Context, id int64) error
}

type Server struct {
	echo      *echo.Echo
	addr      string
	logger    logging.Logger
	users     UserAPI
	clients   ClientAPI
	jwtSecret []byte
}

func NewServer(addr string, logger logging.Logger, users UserAPI, clients ClientAPI, secretKey string) *Server {

	s := &Server{
		addr:      addr,
		logger:    logger,
		users:     users,
		clients:   clients,
		jwtSecret: []byte(secretKey),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.POST("/users/register", s.registerHandler)
	e.POST("/users/login", s.loginHandler)

	protected := e.Group("", s.bearerAuth)
	protected.GET("/clients/search/name", s.searchByNameHandler)
	protected.GET("/clients/search/phone", s.searchByPhoneHandler)
	protected.POST("/clients/create", s.createClientHandler)
	protected.PUT("/clients/update/:id", s.updateClientHandler)
	protected.DELETE("/clients/delete/:id", s.deleteClientHandler)

	s.echo = e
	return s
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {

	errCh := make(chan error, 1)

	go func() {
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.echo.Shutdown(shutdownCtx)
}
