// handlers_upload.go - Footprint file upload and management
package api

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kicad-visualizer/backend/internal/storage"
)

// UploadHandlers implements UploadHandler
type UploadHandlers struct {
	storage storage.Store
}

// NewUploadHandlers creates upload handlers
func NewUploadHandlers(store storage.Store) *UploadHandlers {
	return &UploadHandlers{
		storage: store,
	}
}

// uploadFileRequest is the JSON body for base64 uploads
type uploadFileRequest struct {
	Name string `json:"name"`
	Data string `json:"data"` // base64-encoded file content
}

func (r *uploadFileRequest) validate() *APIError {
	if r.Name == "" {
		return NewValidationError("name")
	}
	if r.Data == "" {
		return NewValidationError("data")
	}
	if !strings.HasSuffix(strings.ToLower(r.Name), ".kicad_mod") {
		return NewBadRequestError("only .kicad_mod files are supported", nil)
	}
	return nil
}

// HandleUpload accepts a footprint file as base64 JSON
// POST /api/files/upload
func (h *UploadHandlers) HandleUpload(c echo.Context) error {
	var req uploadFileRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	if apiErr := req.validate(); apiErr != nil {
		return apiErr
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return NewBadRequestError("invalid base64 data", err)
	}

	info, err := h.storage.SaveBytes(req.Name, data)
	if err != nil {
		return NewInternalError("failed to save file", err)
	}

	fmt.Printf("[Upload] Saved %s (%d bytes) as %s\n", info.Name, info.Size, info.ID)

	return c.JSON(http.StatusCreated, info)
}

// HandleUploadMultipart accepts a footprint file as multipart form data
// POST /api/files/upload/multipart
func (h *UploadHandlers) HandleUploadMultipart(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return NewBadRequestError("missing file field", err)
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".kicad_mod") {
		return NewBadRequestError("only .kicad_mod files are supported", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return NewInternalError("failed to open uploaded file", err)
	}
	defer src.Close()

	info, err := h.storage.Save(fileHeader.Filename, src)
	if err != nil {
		return NewInternalError("failed to save file", err)
	}

	fmt.Printf("[Upload] Saved %s (%d bytes) as %s\n", info.Name, info.Size, info.ID)

	return c.JSON(http.StatusCreated, info)
}

// HandleListFiles returns the most recently uploaded files
// GET /api/files/recent?limit=N
func (h *UploadHandlers) HandleListFiles(c echo.Context) error {
	limit := 20
	if l := c.QueryParam("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	files, err := h.storage.List(limit)
	if err != nil {
		return NewInternalError("failed to list files", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"files": files,
		"count": len(files),
	})
}

// HandleGetFile returns metadata for a single file
// GET /api/files/:id
func (h *UploadHandlers) HandleGetFile(c echo.Context) error {
	id := c.Param("id")

	info, err := h.storage.Get(id)
	if err != nil {
		return NewNotFoundError("file", id)
	}

	return c.JSON(http.StatusOK, info)
}

// HandleDeleteFile removes a file from storage
// DELETE /api/files/:id
func (h *UploadHandlers) HandleDeleteFile(c echo.Context) error {
	id := c.Param("id")

	if err := h.storage.Delete(id); err != nil {
		return NewNotFoundError("file", id)
	}

	return c.NoContent(http.StatusNoContent)
}
