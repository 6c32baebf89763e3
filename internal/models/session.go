package models

// SessionStatus represents the status of a footprint parse session.
type SessionStatus string

const (
	SessionStatusPending  SessionStatus = "pending"
	SessionStatusParsing  SessionStatus = "parsing"
	SessionStatusComplete SessionStatus = "complete"
	SessionStatusError    SessionStatus = "error"
)

// ParseSession represents one decode of an uploaded footprint file.
type ParseSession struct {
	ID               string        `json:"id"`
	FileID           string        `json:"fileId"`
	Status           SessionStatus `json:"status"`
	FootprintName    string        `json:"footprintName,omitempty"`
	PropertyCount    int           `json:"propertyCount,omitempty"`
	PolygonCount     int           `json:"polygonCount,omitempty"`
	LineCount        int           `json:"lineCount,omitempty"`
	PadCount         int           `json:"padCount,omitempty"`
	ProcessingTimeMs int64         `json:"processingTimeMs,omitempty"`
	StartTime        int64         `json:"startTime,omitempty"` // Unix ms
	EndTime          int64         `json:"endTime,omitempty"`   // Unix ms
	Error            string        `json:"error,omitempty"`
}

// NewParseSession creates a new ParseSession in pending status.
func NewParseSession(id, fileID string) *ParseSession {
	return &ParseSession{
		ID:     id,
		FileID: fileID,
		Status: SessionStatusPending,
	}
}
