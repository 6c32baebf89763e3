package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kicad-visualizer/backend/internal/models"
)

const sampleFootprint = `(footprint "0603" (version "20240108") (generator "pcbnew")
	(generator_version "8.0") (layer "F.Cu") (descr "test")
	(property "Reference" "REF**")
	(pad "1" smd rect (at 0 0) (size 1 1) (layers "F.Cu"))
	(pad "2" smd rect (at 1 0) (size 1 1) (layers "F.Cu")))`

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.kicad_mod")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestStartSessionComplete(t *testing.T) {
	mgr := NewManager()
	path := writeTestFile(t, sampleFootprint)

	sess, err := mgr.StartSession("file-1", path)
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}

	if sess.Status != models.SessionStatusComplete {
		t.Fatalf("Expected complete status, got %s (%s)", sess.Status, sess.Error)
	}
	if sess.FootprintName != "0603" {
		t.Errorf("Expected footprint name 0603, got %s", sess.FootprintName)
	}
	if sess.PropertyCount != 1 || sess.PadCount != 2 {
		t.Errorf("Unexpected counts: %+v", sess)
	}
	if sess.EndTime < sess.StartTime {
		t.Errorf("End time before start time: %+v", sess)
	}

	fp, ok := mgr.GetFootprint(sess.ID)
	if !ok {
		t.Fatal("Expected footprint to be retrievable")
	}
	if fp.Name != "0603" {
		t.Errorf("Unexpected footprint: %s", fp.Name)
	}
}

func TestStartSessionDecodeFailure(t *testing.T) {
	mgr := NewManager()
	path := writeTestFile(t, `(footprint "broken")`)

	sess, err := mgr.StartSession("file-1", path)
	if err != nil {
		t.Fatalf("StartSession itself should not fail: %v", err)
	}
	if sess.Status != models.SessionStatusError {
		t.Fatalf("Expected error status, got %s", sess.Status)
	}
	if sess.Error == "" {
		t.Error("Expected error message to be recorded")
	}

	if _, ok := mgr.GetFootprint(sess.ID); ok {
		t.Error("Expected no footprint for failed session")
	}
}

func TestGetSessionUnknown(t *testing.T) {
	mgr := NewManager()
	if _, ok := mgr.GetSession("nope"); ok {
		t.Error("Expected unknown session to be absent")
	}
	if mgr.TouchSession("nope") {
		t.Error("Expected touch of unknown session to fail")
	}
}

func TestDeleteSession(t *testing.T) {
	mgr := NewManager()
	path := writeTestFile(t, sampleFootprint)

	sess, _ := mgr.StartSession("file-1", path)
	if !mgr.DeleteSession(sess.ID) {
		t.Error("Expected delete to succeed")
	}
	if _, ok := mgr.GetSession(sess.ID); ok {
		t.Error("Expected session to be gone")
	}
	if mgr.DeleteSession(sess.ID) {
		t.Error("Expected second delete to fail")
	}
}

func TestCleanupOldSessions(t *testing.T) {
	mgr := NewManager()
	path := writeTestFile(t, sampleFootprint)

	sess, _ := mgr.StartSession("file-1", path)

	// Backdate the session past both the age cutoff and the keep-alive window.
	mgr.mu.Lock()
	mgr.sessions[sess.ID].LastAccessed = time.Now().Add(-time.Hour)
	mgr.mu.Unlock()

	mgr.CleanupOldSessions(30 * time.Minute)

	if _, ok := mgr.GetSession(sess.ID); ok {
		t.Error("Expected aged session to be cleaned up")
	}
}

func TestCleanupKeepsRecentlyTouched(t *testing.T) {
	mgr := NewManager()
	path := writeTestFile(t, sampleFootprint)

	sess, _ := mgr.StartSession("file-1", path)
	mgr.TouchSession(sess.ID)

	mgr.CleanupOldSessions(time.Nanosecond)

	if _, ok := mgr.GetSession(sess.ID); !ok {
		t.Error("Expected recently touched session to survive cleanup")
	}
}
