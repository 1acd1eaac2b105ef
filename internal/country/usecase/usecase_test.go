package usecase

import (
	"context"
	"errors"
	"testing"

	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/country"
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

func result(rows ...analysisapi.CountryRevenue) analysisapi.AnalysisResult {
	return analysisapi.AnalysisResult{PerformanceAnalysis: analysisapi.PerformanceAnalysis{CountryRevenueTrends: rows}}
}

func newUseCase(t *testing.T, state model.SessionState, api *analysisapitest.Fake) country.UseCase {
	t.Helper()
	w, err := chart.NewWindow("2024-10", "2025-04")
	require.NoError(t, err)
	return New(log.NewNop(), analysisapitest.Sessions{State: state}, api, generation.New(), w)
}

func TestAnalyze(t *testing.T) {
	rows := result(
		analysisapi.CountryRevenue{Country: "Kenya", Month: "2024-10", DerivRevenue: 5},
		analysisapi.CountryRevenue{Country: "Kenya", Month: "2024-11", DerivRevenue: 10},
		analysisapi.CountryRevenue{Country: "Vietnam", Month: "2024-10", DerivRevenue: 30},
		analysisapi.CountryRevenue{Country: "Chile", Month: "2024-10", DerivRevenue: 0},
		analysisapi.CountryRevenue{Country: "Peru", Month: "2024-10", DerivRevenue: -3},
		analysisapi.CountryRevenue{Country: "Spain", Month: "2025-07", DerivRevenue: 500},
	)
	both := model.SessionState{MyAffiliateID: "ma", DynamicWorksID: "dw"}

	tests := []struct {
		name          string
		input         country.AnalyzeInput
		wantErr       error
		wantSelected  string
		wantCountries []string
		wantFetch     string
		wantSource    model.DataSource
	}{
		{
			name:          "defaults to first country by name",
			wantSelected:  "Kenya",
			wantCountries: []string{"Kenya", "Vietnam"},
			wantFetch:     "GetAnalysisData:ma",
			wantSource:    model.SourceMyAffiliate,
		},
		{
			name:          "search filters the list only",
			input:         country.AnalyzeInput{Search: "viet"},
			wantSelected:  "Kenya",
			wantCountries: []string{"Vietnam"},
			wantFetch:     "GetAnalysisData:ma",
			wantSource:    model.SourceMyAffiliate,
		},
		{
			name:          "explicit country, any case",
			input:         country.AnalyzeInput{Country: "VIETNAM"},
			wantSelected:  "Vietnam",
			wantCountries: []string{"Kenya", "Vietnam"},
			wantFetch:     "GetAnalysisData:ma",
			wantSource:    model.SourceMyAffiliate,
		},
		{
			name:          "combined is anchored on dynamicWorks",
			input:         country.AnalyzeInput{Source: model.SourceCombined},
			wantSelected:  "Kenya",
			wantCountries: []string{"Kenya", "Vietnam"},
			wantFetch:     "GetAnalysisData:dw",
			wantSource:    model.SourceCombined,
		},
		{name: "zero revenue country is not selectable", input: country.AnalyzeInput{Country: "Chile"}, wantErr: country.ErrCountryNotFound},
		{name: "out of window country is not selectable", input: country.AnalyzeInput{Country: "Spain"}, wantErr: country.ErrCountryNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &analysisapitest.Fake{Analysis: map[string]analysisapi.AnalysisResult{"ma": rows, "dw": rows}}
			uc := newUseCase(t, both, api)

			out, err := uc.Analyze(context.Background(), sc, tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSelected, out.Selected)
			assert.Equal(t, 2, out.Retained)

			var names []string
			for _, c := range out.Countries {
				names = append(names, c.Country)
			}
			assert.Equal(t, tt.wantCountries, names)
			assert.Equal(t, []string{tt.wantFetch}, api.Calls)
			assert.Equal(t, tt.wantSource, api.LastSource)
			assert.Equal(t, tt.wantSelected+" Revenue", out.Chart.Title)
		})
	}
}

func TestAnalyzeNoPositiveCountries(t *testing.T) {
	api := &analysisapitest.Fake{Analysis: map[string]analysisapi.AnalysisResult{
		"dw": result(analysisapi.CountryRevenue{Country: "Chile", Month: "2024-10", DerivRevenue: 0}),
	}}
	uc := newUseCase(t, model.SessionState{DynamicWorksID: "dw"}, api)

	_, err := uc.Analyze(context.Background(), sc, country.AnalyzeInput{})
	assert.ErrorIs(t, err, country.ErrNoPositiveCountries)
}

func TestAnalyzeNoFile(t *testing.T) {
	api := &analysisapitest.Fake{}
	uc := newUseCase(t, model.SessionState{}, api)

	_, err := uc.Analyze(context.Background(), sc, country.AnalyzeInput{})
	assert.ErrorIs(t, err, datasource.ErrNoFile)
	assert.Zero(t, api.CallCount())
}

func TestAnalyzeTransportError(t *testing.T) {
	api := &analysisapitest.Fake{Err: errors.New("dial tcp: connection refused")}
	uc := newUseCase(t, model.SessionState{MyAffiliateID: "ma"}, api)

	_, err := uc.Analyze(context.Background(), sc, country.AnalyzeInput{})
	assert.EqualError(t, err, "dial tcp: connection refused")
}
