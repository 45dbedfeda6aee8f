package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/signon/web"
)

// RegisterRoutes sets up the routes that do not belong to a module.
func (s *Server) RegisterRoutes() {
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
