package datasource

import "partner-dashboard-srv/internal/model"

// Page names a screen whose default source may differ from the others.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageCountry   Page = "country"
	PagePartner   Page = "partner"
	PageOverall   Page = "overall"
	PageAssistant Page = "assistant"
	PageWidget    Page = "widget"
)

// Resolution is the outcome of picking a source for a page.
// FileID is the id file-scoped queries are sent with; Source is what goes in
// the source param (SourceNone means the param is omitted).
type Resolution struct {
	Source         model.DataSource `json:"source"`
	FileID         string           `json:"fileId,omitempty"`
	MyAffiliateID  string           `json:"myAffiliateId,omitempty"`
	DynamicWorksID string           `json:"dynamicWorksId,omitempty"`
}

// HasFile reports whether there is anything to query.
func (r Resolution) HasFile() bool {
	return r.FileID != ""
}
