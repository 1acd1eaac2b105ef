package session

import "partner-dashboard-srv/internal/model"

// Storage field names. These are the keys the browser shell already knows.
const (
	FieldMyAffiliateID       = "myAffiliateId"
	FieldDynamicWorksID      = "dynamicWorksId"
	FieldCurrentFileID       = "currentFileId"
	FieldProcessedFilename   = "processedFilename"
	FieldAIAssistantMessages = "aiAssistantMessages"

	// ProcessedFilename is the display name stored after a successful upload.
	ProcessedFilename = "Partner Data"

	// TranscriptKeyInfo scopes the key derived for the stored transcript.
	TranscriptKeyInfo = "partner-dashboard/session-transcript"
)

type EventType string

const (
	EventUpdated EventType = "updated"
	EventCleared EventType = "cleared"
)

// Event tells other tabs of the same session that state changed.
type Event struct {
	Type   EventType `json:"type"`
	Fields []string  `json:"fields,omitempty"`
	At     int64     `json:"at"`
}

// CommitUploadsInput carries the ids of a successful upload. Empty ids are left untouched.
type CommitUploadsInput struct {
	MyAffiliateID  string
	DynamicWorksID string
}

// SelectFileInput loads a previously stored file into the session.
type SelectFileInput struct {
	Source model.DataSource
	FileID string
}
