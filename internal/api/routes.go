// routes.go - API route registration
package api

import (
	"github.com/labstack/echo/v4"

	"github.com/kicad-visualizer/backend/internal/models"
	"github.com/kicad-visualizer/backend/internal/storage"
)

// Dependencies holds all dependencies needed by the handlers
type Dependencies struct {
	Storage     storage.Store
	Sessions    SessionManager
	LayerStyles *models.LayerStyles
}

// Handlers holds all HTTP handlers
type Handlers struct {
	Upload    UploadHandler
	Footprint FootprintHandler
	Styles    StylesHandler
	Health    HealthHandler
}

// NewHandlers creates all handlers with their dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Upload:    NewUploadHandlers(deps.Storage),
		Footprint: NewFootprintHandlers(deps.Storage, deps.Sessions),
		Styles:    NewStylesHandlers(deps.LayerStyles),
		Health:    NewHealthHandlers(),
	}
}

// RegisterRoutes registers all API routes on the Echo instance
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	api := e.Group("/api")

	// Health
	api.GET("/health", h.Health.HandleHealth)

	// File management
	api.POST("/files/upload", h.Upload.HandleUpload)
	api.POST("/files/upload/multipart", h.Upload.HandleUploadMultipart)
	api.GET("/files/recent", h.Upload.HandleListFiles)
	api.GET("/files/:id", h.Upload.HandleGetFile)
	api.DELETE("/files/:id", h.Upload.HandleDeleteFile)

	// Parse sessions
	api.POST("/parse/:fileId", h.Footprint.HandleStartParse)
	api.GET("/sessions/:id", h.Footprint.HandleGetSession)
	api.POST("/sessions/:id/keepalive", h.Footprint.HandleKeepAlive)

	// Footprint retrieval
	api.GET("/sessions/:id/footprint", h.Footprint.HandleGetFootprint)
	api.GET("/sessions/:id/footprint/msgpack", h.Footprint.HandleGetFootprintMsgpack)
	api.GET("/sessions/:id/footprint/text", h.Footprint.HandleGetFootprintText)

	// Stateless codec
	api.POST("/decode", h.Footprint.HandleDecode)
	api.POST("/encode", h.Footprint.HandleEncode)

	// Display styles
	api.GET("/styles/layers", h.Styles.HandleGetLayerStyles)
}
