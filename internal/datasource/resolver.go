package datasource

import "partner-dashboard-srv/internal/model"

// Resolve picks the default source for page from the session state.
//
// With both ids every page reads myAffiliate, except the assistant which
// queries both in combined mode anchored on the dynamicWorks file. With one id
// that source is used. With neither, a legacy currentFileId is queried without
// a source param.
func Resolve(state model.SessionState, page Page) Resolution {
	res := Resolution{
		MyAffiliateID:  state.MyAffiliateID,
		DynamicWorksID: state.DynamicWorksID,
	}

	switch {
	case state.HasBoth():
		if page == PageAssistant {
			res.Source = model.SourceCombined
			res.FileID = state.DynamicWorksID
			return res
		}
		res.Source = model.SourceMyAffiliate
		res.FileID = state.MyAffiliateID
	case state.DynamicWorksID != "":
		res.Source = model.SourceDynamicWorks
		res.FileID = state.DynamicWorksID
	case state.MyAffiliateID != "":
		res.Source = model.SourceMyAffiliate
		res.FileID = state.MyAffiliateID
	default:
		res.Source = model.SourceNone
		res.FileID = state.CurrentFileID
	}
	return res
}

// Select applies an explicit source choice. SourceNone falls back to Resolve.
func Select(state model.SessionState, requested model.DataSource, page Page) (Resolution, error) {
	res := Resolution{
		Source:         requested,
		MyAffiliateID:  state.MyAffiliateID,
		DynamicWorksID: state.DynamicWorksID,
	}

	switch requested {
	case model.SourceNone:
		return Resolve(state, page), nil
	case model.SourceCombined:
		if !state.HasBoth() {
			return Resolution{}, ErrCombinedUnavailable
		}
		res.FileID = state.DynamicWorksID
	case model.SourceMyAffiliate, model.SourceDynamicWorks:
		res.FileID = state.FileIDFor(requested)
		if res.FileID == "" {
			return Resolution{}, ErrSourceUnavailable
		}
	default:
		return Resolution{}, model.ErrUnknownDataSource
	}
	return res, nil
}

// Available lists the sources the user can switch between.
func Available(state model.SessionState) []model.DataSource {
	out := make([]model.DataSource, 0, 3)
	if state.MyAffiliateID != "" {
		out = append(out, model.SourceMyAffiliate)
	}
	if state.DynamicWorksID != "" {
		out = append(out, model.SourceDynamicWorks)
	}
	if state.HasBoth() {
		out = append(out, model.SourceCombined)
	}
	return out
}

// AnchorFileID is the file id used for file-scoped queries in combined mode:
// dynamicWorks, falling back to myAffiliate.
func AnchorFileID(state model.SessionState) string {
	if state.DynamicWorksID != "" {
		return state.DynamicWorksID
	}
	if state.MyAffiliateID != "" {
		return state.MyAffiliateID
	}
	return state.CurrentFileID
}
