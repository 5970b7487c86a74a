package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the routes that do not belong to a module.
func (s *Server) RegisterRoutes() {
	s.E.Match([]string{http.MethodGet, http.MethodHead}, "/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
