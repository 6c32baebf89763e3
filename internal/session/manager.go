// Package session tracks footprint parse sessions: each session pairs
// an uploaded file with the decoded footprint it produced.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kicad-visualizer/backend/internal/fpio"
	"github.com/kicad-visualizer/backend/internal/models"
)

// MaxSessions limits concurrent sessions to prevent memory exhaustion
const MaxSessions = 50

// SessionKeepAliveWindow is how long to keep sessions that are actively being used
const SessionKeepAliveWindow = 5 * time.Minute

// Manager handles active footprint parse sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*SessionState
}

// SessionState holds the session metadata and the decoded footprint.
type SessionState struct {
	Session      *models.ParseSession
	Footprint    *models.Footprint
	LastAccessed time.Time
}

// NewManager creates a new session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*SessionState),
	}
}

// StartSession decodes the footprint file and registers the result.
// Footprint files are small, so decoding runs synchronously; the
// returned session is already complete or in error state.
func (m *Manager) StartSession(fileID, filePath string) (*models.ParseSession, error) {
	m.cleanupOldSessionsIfNeeded()

	sessionID := uuid.New().String()
	sess := models.NewParseSession(sessionID, fileID)
	sess.Status = models.SessionStatusParsing
	sess.StartTime = time.Now().UnixMilli()

	start := time.Now()
	fp, err := fpio.ReadFile(filePath)
	sess.EndTime = time.Now().UnixMilli()
	sess.ProcessingTimeMs = time.Since(start).Milliseconds()

	state := &SessionState{
		Session:      sess,
		LastAccessed: time.Now(),
	}

	if err != nil {
		sess.Status = models.SessionStatusError
		sess.Error = err.Error()
	} else {
		sess.Status = models.SessionStatusComplete
		sess.FootprintName = fp.Name
		sess.PropertyCount = len(fp.Properties)
		sess.PolygonCount = len(fp.Polygons)
		sess.LineCount = len(fp.Lines)
		sess.PadCount = len(fp.Pads)
		state.Footprint = fp
	}

	m.mu.Lock()
	m.sessions[sessionID] = state
	m.mu.Unlock()

	return sess, nil
}

// GetSession returns a session by ID.
func (m *Manager) GetSession(id string) (*models.ParseSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	return state.Session, true
}

// GetFootprint returns the decoded footprint of a completed session.
func (m *Manager) GetFootprint(id string) (*models.Footprint, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[id]
	if !ok || state.Footprint == nil {
		return nil, false
	}
	return state.Footprint, true
}

// TouchSession updates the LastAccessed timestamp for a session.
// Call it whenever a session is actively being used to prevent it from
// being cleaned up.
func (m *Manager) TouchSession(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[id]
	if !ok {
		return false
	}
	state.LastAccessed = time.Now()
	return true
}

// DeleteSession removes a session by ID.
func (m *Manager) DeleteSession(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// cleanupOldSessionsIfNeeded removes finished sessions when at capacity.
func (m *Manager) cleanupOldSessionsIfNeeded() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sessions) < MaxSessions {
		return
	}

	toFree := len(m.sessions) - MaxSessions + 1
	deleted := 0
	for id, state := range m.sessions {
		if deleted >= toFree {
			break
		}
		if state.Session.Status == models.SessionStatusComplete ||
			state.Session.Status == models.SessionStatusError {
			delete(m.sessions, id)
			deleted++
			fmt.Printf("[Manager] Cleaned up old session %s to free memory\n", id[:8])
		}
	}
}

// CleanupOldSessions removes sessions older than maxAge, but keeps
// sessions accessed within SessionKeepAliveWindow.
func (m *Manager) CleanupOldSessions(maxAge time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	keepAliveCutoff := time.Now().Add(-SessionKeepAliveWindow)

	for id, state := range m.sessions {
		if state.LastAccessed.After(keepAliveCutoff) {
			continue
		}
		if state.LastAccessed.Before(cutoff) {
			delete(m.sessions, id)
			fmt.Printf("[Manager] Cleaned up aged session %s (last accessed: %s ago)\n",
				id[:8], time.Since(state.LastAccessed).Round(time.Second))
		}
	}
}
