// handlers_footprint_test.go - Tests for parse session and footprint handlers
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kicad-visualizer/backend/internal/models"
	"github.com/kicad-visualizer/backend/internal/session"
	"github.com/kicad-visualizer/backend/internal/testutil"
)

const sampleFootprint = `(footprint "0603" (version "20240108") (generator "pcbnew")
	(generator_version "8.0") (layer "F.Cu") (descr "test")
	(property "Reference" "REF**")
	(pad "1" smd rect (at 0 0) (size 1 1) (layers "F.Cu")))`

// MockSessionManager is a canned session source for handler tests.
type MockSessionManager struct {
	sessions   map[string]*models.ParseSession
	footprints map[string]*models.Footprint
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions:   make(map[string]*models.ParseSession),
		footprints: make(map[string]*models.Footprint),
	}
}

func (m *MockSessionManager) StartSession(fileID, filePath string) (*models.ParseSession, error) {
	sess := &models.ParseSession{
		ID:     "test-session-123",
		FileID: fileID,
		Status: models.SessionStatusComplete,
	}
	m.sessions[sess.ID] = sess
	return sess, nil
}

func (m *MockSessionManager) GetSession(id string) (*models.ParseSession, bool) {
	sess, ok := m.sessions[id]
	return sess, ok
}

func (m *MockSessionManager) GetFootprint(id string) (*models.Footprint, bool) {
	fp, ok := m.footprints[id]
	return fp, ok
}

func (m *MockSessionManager) TouchSession(id string) bool {
	_, ok := m.sessions[id]
	return ok
}

func (m *MockSessionManager) DeleteSession(id string) bool {
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	return ok
}

func (m *MockSessionManager) CleanupOldSessions(maxAge time.Duration) {}

func TestFootprintHandlers_HandleStartParse(t *testing.T) {
	store := testutil.NewMockStorage()
	store.AddFile("f1", "0603.kicad_mod", []byte(sampleFootprint))
	sessions := NewMockSessionManager()
	handler := NewFootprintHandlers(store, sessions)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("fileId")
	c.SetParamValues("f1")

	if err := handler.HandleStartParse(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var sess models.ParseSession
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if sess.FileID != "f1" {
		t.Errorf("expected file f1, got %s", sess.FileID)
	}

	info, _ := store.Get("f1")
	if info.Status != "parsed" {
		t.Errorf("expected file status parsed, got %s", info.Status)
	}
}

func TestFootprintHandlers_HandleStartParseUnknownFile(t *testing.T) {
	handler := NewFootprintHandlers(testutil.NewMockStorage(), NewMockSessionManager())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("fileId")
	c.SetParamValues("missing")

	err := handler.HandleStartParse(c)
	if err == nil {
		t.Fatal("expected error for unknown file")
	}
	if apiErr, ok := err.(*APIError); !ok || apiErr.Status != http.StatusNotFound {
		t.Errorf("expected 404 APIError, got %v", err)
	}
}

func TestFootprintHandlers_EndToEndParse(t *testing.T) {
	// Real session manager with on-disk storage: the full decode path.
	store := testutil.NewMockStorageWithTempDir(t.TempDir())
	store.AddFile("f1", "0603.kicad_mod", []byte(sampleFootprint))
	handler := NewFootprintHandlers(store, session.NewManager())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("fileId")
	c.SetParamValues("f1")

	if err := handler.HandleStartParse(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sess models.ParseSession
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if sess.Status != models.SessionStatusComplete {
		t.Fatalf("expected complete session, got %s (%s)", sess.Status, sess.Error)
	}
	if sess.FootprintName != "0603" || sess.PadCount != 1 {
		t.Errorf("unexpected summary: %+v", sess)
	}

	// Retrieve the decoded footprint as JSON.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID)

	if err := handler.HandleGetFootprint(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var fp models.Footprint
	if err := json.Unmarshal(rec.Body.Bytes(), &fp); err != nil {
		t.Fatalf("failed to decode footprint: %v", err)
	}
	if fp.Name != "0603" || len(fp.Pads) != 1 {
		t.Errorf("unexpected footprint: %+v", fp)
	}

	// Retrieve as msgpack.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID)

	if err := handler.HandleGetFootprintMsgpack(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var packed models.Footprint
	if err := msgpack.Unmarshal(rec.Body.Bytes(), &packed); err != nil {
		t.Fatalf("failed to decode msgpack: %v", err)
	}
	if packed.Name != "0603" {
		t.Errorf("unexpected msgpack payload: %+v", packed)
	}

	// Retrieve the re-encoded text form.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(sess.ID)

	if err := handler.HandleGetFootprintText(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := rec.Body.String(); len(body) == 0 || body[0] != '(' {
		t.Errorf("expected s-expression text, got %q", body)
	}
}

func TestFootprintHandlers_HandleDecode(t *testing.T) {
	handler := NewFootprintHandlers(testutil.NewMockStorage(), NewMockSessionManager())

	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/decode", strings.NewReader(sampleFootprint))
	c := e.NewContext(req, rec)

	if err := handler.HandleDecode(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fp models.Footprint
	if err := json.Unmarshal(rec.Body.Bytes(), &fp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if fp.Name != "0603" {
		t.Errorf("unexpected footprint: %+v", fp)
	}
}

func TestFootprintHandlers_HandleDecodeBadDocument(t *testing.T) {
	handler := NewFootprintHandlers(testutil.NewMockStorage(), NewMockSessionManager())

	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/decode", strings.NewReader(`(module "x")`))
	c := e.NewContext(req, rec)

	err := handler.HandleDecode(c)
	if err == nil {
		t.Fatal("expected error for wrong document tag")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", apiErr.Status)
	}
	if apiErr.Code != "WRONG_TAG" {
		t.Errorf("expected WRONG_TAG code, got %s", apiErr.Code)
	}
}

func TestFootprintHandlers_HandleEncode(t *testing.T) {
	handler := NewFootprintHandlers(testutil.NewMockStorage(), NewMockSessionManager())

	fp := models.Footprint{
		Name:             "0603",
		Version:          "20240108",
		Generator:        "pcbnew",
		GeneratorVersion: "8.0",
		Layer:            models.LayerFCu,
		Description:      "test",
	}
	body, _ := json.Marshal(fp)

	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/encode", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c := e.NewContext(req, rec)

	if err := handler.HandleEncode(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(rec.Body.String(), `(footprint "0603"`) {
		t.Errorf("unexpected text form: %q", rec.Body.String())
	}
}

func TestFootprintHandlers_HandleGetSession(t *testing.T) {
	sessions := NewMockSessionManager()
	sessions.sessions["s1"] = &models.ParseSession{ID: "s1", Status: models.SessionStatusComplete}
	handler := NewFootprintHandlers(testutil.NewMockStorage(), sessions)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := handler.HandleGetSession(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestFootprintHandlers_HandleKeepAlive(t *testing.T) {
	sessions := NewMockSessionManager()
	sessions.sessions["s1"] = &models.ParseSession{ID: "s1"}
	handler := NewFootprintHandlers(testutil.NewMockStorage(), sessions)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := handler.HandleKeepAlive(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.HandleKeepAlive(c); err == nil {
		t.Error("expected error for unknown session")
	}
}

func TestFootprintHandlers_HandleGetFootprintUnknown(t *testing.T) {
	handler := NewFootprintHandlers(testutil.NewMockStorage(), NewMockSessionManager())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.HandleGetFootprint(c)
	if err == nil {
		t.Fatal("expected error for unknown session")
	}
	if apiErr, ok := err.(*APIError); !ok || apiErr.Status != http.StatusNotFound {
		t.Errorf("expected 404 APIError, got %v", err)
	}
}
