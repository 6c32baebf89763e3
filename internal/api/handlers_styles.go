// handlers_styles.go - Layer display style endpoint
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kicad-visualizer/backend/internal/models"
)

// StylesHandlers implements StylesHandler
type StylesHandlers struct {
	styles *models.LayerStyles
}

// NewStylesHandlers creates styles handlers
func NewStylesHandlers(styles *models.LayerStyles) *StylesHandlers {
	return &StylesHandlers{
		styles: styles,
	}
}

// HandleGetLayerStyles returns the configured layer color palette
// GET /api/styles/layers
func (h *StylesHandlers) HandleGetLayerStyles(c echo.Context) error {
	return c.JSON(http.StatusOK, h.styles)
}
