// interfaces.go - Handler interfaces and shared dependencies
package api

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kicad-visualizer/backend/internal/models"
)

// SessionManager abstracts the parse session lifecycle for handlers.
type SessionManager interface {
	StartSession(fileID, filePath string) (*models.ParseSession, error)
	GetSession(id string) (*models.ParseSession, bool)
	GetFootprint(id string) (*models.Footprint, bool)
	TouchSession(id string) bool
	DeleteSession(id string) bool
	CleanupOldSessions(maxAge time.Duration)
}

// UploadHandler handles footprint file upload operations
type UploadHandler interface {
	HandleUpload(c echo.Context) error
	HandleUploadMultipart(c echo.Context) error
	HandleListFiles(c echo.Context) error
	HandleGetFile(c echo.Context) error
	HandleDeleteFile(c echo.Context) error
}

// FootprintHandler handles parse sessions and footprint retrieval
type FootprintHandler interface {
	HandleStartParse(c echo.Context) error
	HandleGetSession(c echo.Context) error
	HandleKeepAlive(c echo.Context) error
	HandleGetFootprint(c echo.Context) error
	HandleGetFootprintMsgpack(c echo.Context) error
	HandleGetFootprintText(c echo.Context) error
	HandleDecode(c echo.Context) error
	HandleEncode(c echo.Context) error
}

// StylesHandler serves layer display styles
type StylesHandler interface {
	HandleGetLayerStyles(c echo.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}
