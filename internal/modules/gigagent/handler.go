package gigagent

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gigagent/internal/content"
	"github.com/nfrund/gigagent/internal/middleware"
	"github.com/nfrund/gigagent/internal/rendering"
	"github.com/nfrund/gigagent/web/src/templates/pages"
)

// Handler manages the HTTP requests for the gigagent module.
type Handler struct {
	renderer rendering.Renderer
	page     content.Page
	opts     pages.DocumentOptions
}

// NewHandler creates a new handler.
func NewHandler(renderer rendering.Renderer, page content.Page, opts pages.DocumentOptions) *Handler {
	return &Handler{
		renderer: renderer,
		page:     page,
		opts:     opts,
	}
}

// Get renders the landing page.
func (h *Handler) Get(c echo.Context) error {
	middleware.FromContext(c.Request().Context()).Debug("Rendering GigAgent landing page")
	return h.renderer.RenderPage(c, http.StatusOK, pages.LandingDocument(h.page, h.opts))
}
