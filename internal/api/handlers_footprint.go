// handlers_footprint.go - Parse sessions and footprint retrieval
package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kicad-visualizer/backend/internal/fpio"
	"github.com/kicad-visualizer/backend/internal/models"
	"github.com/kicad-visualizer/backend/internal/storage"
)

// FootprintHandlers implements FootprintHandler
type FootprintHandlers struct {
	storage  storage.Store
	sessions SessionManager
}

// NewFootprintHandlers creates footprint handlers
func NewFootprintHandlers(store storage.Store, sessions SessionManager) *FootprintHandlers {
	return &FootprintHandlers{
		storage:  store,
		sessions: sessions,
	}
}

// HandleStartParse decodes an uploaded file into a parse session
// POST /api/parse/:fileId
func (h *FootprintHandlers) HandleStartParse(c echo.Context) error {
	fileID := c.Param("fileId")

	path, err := h.storage.GetFilePath(fileID)
	if err != nil {
		return NewNotFoundError("file", fileID)
	}

	sess, err := h.sessions.StartSession(fileID, path)
	if err != nil {
		return NewInternalError("failed to start parse session", err)
	}

	if sess.Status == models.SessionStatusError {
		h.storage.SetStatus(fileID, "error")
	} else {
		h.storage.SetStatus(fileID, "parsed")
	}

	fmt.Printf("[Parse] Session %s for file %s: %s (%dms)\n",
		shortID(sess.ID), shortID(fileID), sess.Status, sess.ProcessingTimeMs)

	return c.JSON(http.StatusCreated, sess)
}

// HandleGetSession returns session status and summary counts
// GET /api/sessions/:id
func (h *FootprintHandlers) HandleGetSession(c echo.Context) error {
	id := c.Param("id")

	sess, ok := h.sessions.GetSession(id)
	if !ok {
		return NewNotFoundError("session", id)
	}

	h.sessions.TouchSession(id)

	return c.JSON(http.StatusOK, sess)
}

// HandleKeepAlive refreshes a session's last-accessed timestamp
// POST /api/sessions/:id/keepalive
func (h *FootprintHandlers) HandleKeepAlive(c echo.Context) error {
	id := c.Param("id")

	if !h.sessions.TouchSession(id) {
		return NewNotFoundError("session", id)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// HandleGetFootprint returns the decoded footprint as JSON
// GET /api/sessions/:id/footprint
func (h *FootprintHandlers) HandleGetFootprint(c echo.Context) error {
	id := c.Param("id")

	fp, ok := h.footprintFor(id)
	if !ok {
		return NewNotFoundError("footprint", id)
	}

	return c.JSON(http.StatusOK, fp)
}

// HandleGetFootprintMsgpack returns the decoded footprint as msgpack,
// a compact alternative to JSON for large footprints.
// GET /api/sessions/:id/footprint/msgpack
func (h *FootprintHandlers) HandleGetFootprintMsgpack(c echo.Context) error {
	id := c.Param("id")

	fp, ok := h.footprintFor(id)
	if !ok {
		return NewNotFoundError("footprint", id)
	}

	data, err := msgpack.Marshal(fp)
	if err != nil {
		return NewInternalError("failed to encode footprint", err)
	}

	return c.Blob(http.StatusOK, "application/x-msgpack", data)
}

// HandleGetFootprintText re-encodes the footprint back to its textual
// form, useful for verifying the decode/encode round trip.
// GET /api/sessions/:id/footprint/text
func (h *FootprintHandlers) HandleGetFootprintText(c echo.Context) error {
	id := c.Param("id")

	fp, ok := h.footprintFor(id)
	if !ok {
		return NewNotFoundError("footprint", id)
	}

	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(fpio.Encode(fp)))
}

// HandleDecode decodes a footprint document posted as raw text and
// returns the typed form, without touching storage or sessions.
// POST /api/decode
func (h *FootprintHandlers) HandleDecode(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return NewBadRequestError("failed to read request body", err)
	}
	if len(body) == 0 {
		return NewValidationError("body")
	}

	fp, err := fpio.Decode(string(body))
	if err != nil {
		return NewDecodeError(err)
	}
	return c.JSON(http.StatusOK, fp)
}

// HandleEncode serializes a typed footprint posted as JSON back to its
// textual form.
// POST /api/encode
func (h *FootprintHandlers) HandleEncode(c echo.Context) error {
	var fp models.Footprint
	if err := c.Bind(&fp); err != nil {
		return NewBadRequestError("invalid footprint payload", err)
	}
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(fpio.Encode(&fp)))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (h *FootprintHandlers) footprintFor(id string) (*models.Footprint, bool) {
	fp, ok := h.sessions.GetFootprint(id)
	if !ok {
		return nil, false
	}
	h.sessions.TouchSession(id)
	return fp, true
}
