package usecase

import (
	"context"
	"testing"
	"time"

	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/dashboard"
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/analysisapi/analysisapitest"
	"partner-dashboard-srv/pkg/generation"
	"partner-dashboard-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sc = model.Scope{SessionID: "sid-1"}

func newUseCase(t *testing.T, state model.SessionState, api *analysisapitest.Fake) *implUseCase {
	t.Helper()
	w, err := chart.NewWindow("2024-10", "2025-04")
	require.NoError(t, err)
	uc := New(log.NewNop(), analysisapitest.Sessions{State: state}, api, generation.New(), w, 0).(*implUseCase)
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return uc
}

func TestGetDashboard(t *testing.T) {
	result := analysisapi.AnalysisResult{
		KPIs: analysisapi.KPIs{
			TotalKPIs: analysisapi.TotalKPIs{DerivRevenue: 100},
			MonthlyKPIs: []analysisapi.MonthlyKPI{
				{Month: "2025-01", DerivRevenue: 3},
				{Month: "2024-09", DerivRevenue: 99},
				{Month: "2024-10", DerivRevenue: 1},
				{Month: "2025-05", DerivRevenue: 99},
				{Month: "bad", DerivRevenue: 99},
			},
		},
		PerformanceAnalysis: analysisapi.PerformanceAnalysis{
			RegionalRevenueTrends: []analysisapi.RegionalRevenue{{Region: "Africa", Month: "2024-10", DerivRevenue: 5}},
		},
	}

	tests := []struct {
		name       string
		state      model.SessionState
		source     model.DataSource
		wantErr    error
		wantFileID string
		wantCalls  int
	}{
		{
			name:       "both ids default to myAffiliate",
			state:      model.SessionState{MyAffiliateID: "ma", DynamicWorksID: "dw"},
			wantFileID: "ma",
			wantCalls:  1,
		},
		{
			name:       "explicit dynamicWorks",
			state:      model.SessionState{MyAffiliateID: "ma", DynamicWorksID: "dw"},
			source:     model.SourceDynamicWorks,
			wantFileID: "dw",
			wantCalls:  1,
		},
		{
			name:      "no file makes no call",
			state:     model.SessionState{},
			wantErr:   datasource.ErrNoFile,
			wantCalls: 0,
		},
		{
			name:      "combined needs both",
			state:     model.SessionState{MyAffiliateID: "ma"},
			source:    model.SourceCombined,
			wantErr:   datasource.ErrCombinedUnavailable,
			wantCalls: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &analysisapitest.Fake{Analysis: map[string]analysisapi.AnalysisResult{"ma": result, "dw": result}}
			uc := newUseCase(t, tt.state, api)

			out, err := uc.GetDashboard(context.Background(), sc, dashboard.GetDashboardInput{Source: tt.source})
			assert.Equal(t, tt.wantCalls, api.CallCount())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFileID, out.Resolution.FileID)
			assert.Equal(t, 100.0, out.Totals.DerivRevenue)

			months := make([]string, 0, len(out.Monthly))
			for _, m := range out.Monthly {
				months = append(months, m.Month)
			}
			assert.Equal(t, []string{"2024-10", "2025-01"}, months)
			assert.Equal(t, months, out.RevenueChart.Labels)
			assert.Equal(t, []string{"2024-10"}, out.RegionalChart.Labels)
		})
	}
}

func TestGetDashboardUpstreamError(t *testing.T) {
	api := &analysisapitest.Fake{Err: &analysisapi.APIError{StatusCode: 404, Message: "File not found"}}
	uc := newUseCase(t, model.SessionState{MyAffiliateID: "ma"}, api)

	_, err := uc.GetDashboard(context.Background(), sc, dashboard.GetDashboardInput{})
	var apiErr *analysisapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "File not found", analysisapi.Message(err))
}

func TestGetTopPartner(t *testing.T) {
	tests := []struct {
		name      string
		input     dashboard.TopPartnerInput
		wantErr   error
		wantInput analysisapi.TopPartnerInput
	}{
		{
			name:      "defaults",
			input:     dashboard.TopPartnerInput{},
			wantInput: analysisapi.TopPartnerInput{FileID: "dw", Metric: "Deriv Revenue", Year: 2025, Month: 4, Source: model.SourceDynamicWorks},
		},
		{
			name:      "explicit values",
			input:     dashboard.TopPartnerInput{Metric: "FTT", Year: 2024, Month: 11},
			wantInput: analysisapi.TopPartnerInput{FileID: "dw", Metric: "FTT", Year: 2024, Month: 11, Source: model.SourceDynamicWorks},
		},
		{name: "unknown metric", input: dashboard.TopPartnerInput{Metric: "Clicks"}, wantErr: dashboard.ErrInvalidMetric},
		{name: "bad month", input: dashboard.TopPartnerInput{Month: 13}, wantErr: dashboard.ErrInvalidMonth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &analysisapitest.Fake{TopPartner: analysisapi.TopPartner{Message: "No data found"}}
			uc := newUseCase(t, model.SessionState{DynamicWorksID: "dw"}, api)

			tp, err := uc.GetTopPartner(context.Background(), sc, tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, api.CallCount())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantInput, api.LastTopPartner)
			assert.False(t, tp.Found())
			assert.Equal(t, "No data found", tp.Message)
		})
	}
}

func TestGetTeamRegions(t *testing.T) {
	api := &analysisapitest.Fake{Regions: []string{"Africa", "Asia"}}
	uc := newUseCase(t, model.SessionState{MyAffiliateID: "ma"}, api)

	regions, err := uc.GetTeamRegions(context.Background(), sc, dashboard.TeamRegionsInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Africa", "Asia"}, regions)
	assert.Equal(t, []string{"GetTeamRegions:ma"}, api.Calls)
}
