package http

import (
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
)

type getReq struct {
	Page string `form:"page"`
}

type sessionResp struct {
	MyAffiliateID     string                `json:"myAffiliateId,omitempty"`
	DynamicWorksID    string                `json:"dynamicWorksId,omitempty"`
	CurrentFileID     string                `json:"currentFileId,omitempty"`
	ProcessedFilename string                `json:"processedFilename,omitempty"`
	MessageCount      int                   `json:"messageCount"`
	Resolution        datasource.Resolution `json:"resolution"`
	Available         []model.DataSource    `json:"available"`
}

func (h *handler) newSessionResp(state model.SessionState, page datasource.Page) sessionResp {
	available := datasource.Available(state)
	if available == nil {
		available = []model.DataSource{}
	}
	return sessionResp{
		MyAffiliateID:     state.MyAffiliateID,
		DynamicWorksID:    state.DynamicWorksID,
		CurrentFileID:     state.CurrentFileID,
		ProcessedFilename: state.ProcessedFilename,
		MessageCount:      len(state.AIAssistantMessages),
		Resolution:        datasource.Resolve(state, page),
		Available:         available,
	}
}
