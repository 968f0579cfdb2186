package httpapi

import (
	"errors"
	"net/http"

	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/labstack/echo/v4"
)

// messageResponse is the JSON envelope for results that only carry a text.
type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// registerHandler handles POST /users/register.
func (s *Server) registerHandler(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	_, err := s.users.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Name, email and password are required"})
		case errors.Is(err, common.ErrAlreadyExists):
			return c.JSON(http.StatusConflict, messageResponse{Message: "User already exists"})
		default:
			s.logger.Error(c.Request().Context(), "register failed", "error", err)
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Registration failed"})
		}
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

// loginHandler handles POST /users/login.
func (s *Server) loginHandler(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	token, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid credentials"})
		}
		s.logger.Error(c.Request().Context(), "login failed", "error", err)
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Login failed"})
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token})
}
