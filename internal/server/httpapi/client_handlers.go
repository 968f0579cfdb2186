package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/clientdesk/clientdesk/internal/server/models"
	"github.com/labstack/echo/v4"
)

type clientRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

type createClientResponse struct {
	Message string         `json:"message"`
	Client  *models.Client `json:"client"`
}

// searchByNameHandler handles GET /clients/search/name?name=<text>.
// The response is a JSON array; zero matches gives an empty array, not a 404.
func (s *Server) searchByNameHandler(c echo.Context) error {
	name := c.QueryParam("name")

	result, err := s.clients.SearchByName(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Name is required"})
		}
		s.logger.Error(c.Request().Context(), "client search failed", "error", err)
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Search failed"})
	}

	return c.JSON(http.StatusOK, result)
}

// searchByPhoneHandler handles GET /clients/search/phone?phone=<number>.
// Phone lookup is exact; no match is a 404.
func (s *Server) searchByPhoneHandler(c echo.Context) error {
	phone := c.QueryParam("phone")

	client, err := s.clients.GetByPhone(c.Request().Context(), phone)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Client not found"})
		}
		s.logger.Error(c.Request().Context(), "client lookup failed", "error", err)
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Search failed"})
	}

	return c.JSON(http.StatusOK, client)
}

// createClientHandler handles POST /clients/create.
func (s *Server) createClientHandler(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	client, err := s.clients.Create(c.Request().Context(), req.Name, req.PhoneNumber, req.Address)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Name, phone number and address are required"})
		}
		s.logger.Error(c.Request().Context(), "client create failed", "error", err)
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Create failed"})
	}

	return c.JSON(http.StatusCreated, createClientResponse{Message: "Client created successfully", Client: client})
}

// updateClientHandler handles PUT /clients/update/:id.
func (s *Server) updateClientHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid client id"})
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	client, err := s.clients.Update(c.Request().Context(), id, req.Name, req.PhoneNumber, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Name, phone number and address are required"})
		case errors.Is(err, common.ErrNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Client not found"})
		default:
			s.logger.Error(c.Request().Context(), "client update failed", "error", err)
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Update failed"})
		}
	}

	return c.JSON(http.StatusOK, client)
}

// deleteClientHandler handles DELETE /clients/delete/:id.
func (s *Server) deleteClientHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid client id"})
	}

	if err := s.clients.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Client not found"})
		}
		s.logger.Error(c.Request().Context(), "client delete failed", "error", err)
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Delete failed"})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Client deleted successfully"})
}
