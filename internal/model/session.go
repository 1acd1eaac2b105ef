package model

// SessionState is the per-browser-session state shared by every page.
type SessionState struct {
	MyAffiliateID       string        `json:"myAffiliateId,omitempty"`
	DynamicWorksID      string        `json:"dynamicWorksId,omitempty"`
	CurrentFileID       string        `json:"currentFileId,omitempty"`
	ProcessedFilename   string        `json:"processedFilename,omitempty"`
	AIAssistantMessages []ChatMessage `json:"aiAssistantMessages,omitempty"`
}

// FileIDFor returns the identifier stored for a single upload source.
func (s SessionState) FileIDFor(src DataSource) string {
	switch src {
	case SourceMyAffiliate:
		return s.MyAffiliateID
	case SourceDynamicWorks:
		return s.DynamicWorksID
	default:
		return ""
	}
}

// HasBoth reports whether both upload sources are present.
func (s SessionState) HasBoth() bool {
	return s.MyAffiliateID != "" && s.DynamicWorksID != ""
}

// Scope identifies the browser session a request belongs to.
type Scope struct {
	SessionID string `json:"session_id"`
}
