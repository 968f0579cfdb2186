package httpapi

import (
	"net/http"
	"strings"

	"github.com/clientdesk/clientdesk/internal/server/auth"
	"github.com/labstack/echo/v4"
)

// userIDKey is the echo context key the authenticated user's id is stored
// under by bearerAuth.
const userIDKey = "userID"

// bearerAuth rejects requests without a valid "Authorization: Bearer <jwt>"
// header and stores the token's user id on the context.
func (s *Server) bearerAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Missing or invalid token"})
		}

		token := strings.TrimPrefix(header, "Bearer ")
		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Missing or invalid token"})
		}

		c.Set(userIDKey, userID)
		return next(c)
	}
}
