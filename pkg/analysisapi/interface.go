package analysisapi

import (
	"context"

	"partner-dashboard-srv/internal/model"
)

// IAnalysis defines the interface for the analysis service API client.
// Implementations are safe for concurrent use.
type IAnalysis interface {
	Upload(ctx context.Context, input UploadInput) (UploadOutput, error)
	GetAnalysisData(ctx context.Context, fileID string, query AnalysisQuery, source model.DataSource) (AnalysisResult, error)
	GetTopPartner(ctx context.Context, input TopPartnerInput) (TopPartner, error)
	GetComparisonData(ctx context.Context, input ComparisonInput) (ComparisonResult, error)
	SendChat(ctx context.Context, input ChatInput) (ChatOutput, error)
	GetTeamRegions(ctx context.Context, fileID string) ([]string, error)
	GetStoredFiles(ctx context.Context) ([]model.UploadedFile, error)
}

// New creates a new analysis service client. Returns the interface.
func New(cfg Config) IAnalysis {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &analysisImpl{
		baseURL:    trimSlash(cfg.BaseURL),
		httpClient: cfg.HTTPClient,
	}
}
