// Package analysisapitest provides an in-memory analysisapi.IAnalysis for tests.
package analysisapitest

import (
	"context"
	"sync"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/analysisapi"
)

// Fake answers from its fields. A nil func field falls back to the matching
// static value. Every call is recorded.
type Fake struct {
	mu    sync.Mutex
	Calls []string

	Analysis    map[string]analysisapi.AnalysisResult
	AnalysisErr map[string]error
	LastQuery   analysisapi.AnalysisQuery
	LastSource  model.DataSource

	TopPartner     analysisapi.TopPartner
	LastTopPartner analysisapi.TopPartnerInput

	Comparison     analysisapi.ComparisonResult
	LastComparison analysisapi.ComparisonInput

	ChatFunc func(ctx context.Context, input analysisapi.ChatInput) (analysisapi.ChatOutput, error)
	LastChat analysisapi.ChatInput

	Regions     []string
	StoredFiles []model.UploadedFile

	UploadFunc func(ctx context.Context, input analysisapi.UploadInput) (analysisapi.UploadOutput, error)

	Err error
}

func (f *Fake) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, op)
}

// CallCount returns how many calls were made.
func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

func (f *Fake) Upload(ctx context.Context, input analysisapi.UploadInput) (analysisapi.UploadOutput, error) {
	f.record("Upload")
	if f.UploadFunc != nil {
		return f.UploadFunc(ctx, input)
	}
	if f.Err != nil {
		return analysisapi.UploadOutput{}, f.Err
	}
	return analysisapi.UploadOutput{FileID: input.Source.String() + "-id"}, nil
}

func (f *Fake) GetAnalysisData(ctx context.Context, fileID string, query analysisapi.AnalysisQuery, source model.DataSource) (analysisapi.AnalysisResult, error) {
	f.record("GetAnalysisData:" + fileID)
	f.mu.Lock()
	f.LastQuery = query
	f.LastSource = source
	f.mu.Unlock()
	if fileID == "" {
		return analysisapi.AnalysisResult{}, analysisapi.ErrFileIDRequired
	}
	if err := f.AnalysisErr[fileID]; err != nil {
		return analysisapi.AnalysisResult{}, err
	}
	if f.Err != nil {
		return analysisapi.AnalysisResult{}, f.Err
	}
	return f.Analysis[fileID], nil
}

func (f *Fake) GetTopPartner(ctx context.Context, input analysisapi.TopPartnerInput) (analysisapi.TopPartner, error) {
	f.record("GetTopPartner")
	f.mu.Lock()
	f.LastTopPartner = input
	f.mu.Unlock()
	if f.Err != nil {
		return analysisapi.TopPartner{}, f.Err
	}
	return f.TopPartner, nil
}

func (f *Fake) GetComparisonData(ctx context.Context, input analysisapi.ComparisonInput) (analysisapi.ComparisonResult, error) {
	if input.MyAffiliateID == "" || input.DynamicWorksID == "" {
		return analysisapi.ComparisonResult{}, analysisapi.ErrComparisonNeedsBoth
	}
	f.record("GetComparisonData")
	f.mu.Lock()
	f.LastComparison = input
	f.mu.Unlock()
	if f.Err != nil {
		return analysisapi.ComparisonResult{}, f.Err
	}
	return f.Comparison, nil
}

func (f *Fake) SendChat(ctx context.Context, input analysisapi.ChatInput) (analysisapi.ChatOutput, error) {
	f.record("SendChat")
	f.mu.Lock()
	f.LastChat = input
	f.mu.Unlock()
	if f.ChatFunc != nil {
		return f.ChatFunc(ctx, input)
	}
	if f.Err != nil {
		return analysisapi.ChatOutput{}, f.Err
	}
	return analysisapi.ChatOutput{}, nil
}

func (f *Fake) GetTeamRegions(ctx context.Context, fileID string) ([]string, error) {
	f.record("GetTeamRegions:" + fileID)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Regions, nil
}

func (f *Fake) GetStoredFiles(ctx context.Context) ([]model.UploadedFile, error) {
	f.record("GetStoredFiles")
	if f.Err != nil {
		return nil, f.Err
	}
	return f.StoredFiles, nil
}

// Sessions is a fixed session state for page usecases.
type Sessions struct {
	State model.SessionState
	Err   error
}

func (s Sessions) Get(context.Context, model.Scope) (model.SessionState, error) {
	return s.State, s.Err
}
