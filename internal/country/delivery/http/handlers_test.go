package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/country/usecase"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/analysisapi/analysisapitest"
	"partner-dashboard-srv/pkg/generation"
	"partner-dashboard-srv/pkg/log"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w, err := chart.NewWindow("2024-10", "2025-04")
	require.NoError(t, err)

	api := &analysisapitest.Fake{Analysis: map[string]analysisapi.AnalysisResult{
		"ma": {PerformanceAnalysis: analysisapi.PerformanceAnalysis{CountryRevenueTrends: []analysisapi.CountryRevenue{
			{Country: "Kenya", Month: "2024-10", DerivRevenue: 4},
			{Country: "Brazil", Month: "2024-12", DerivRevenue: 2},
		}}},
		"empty": {},
	}}

	tests := []struct {
		name       string
		fileID     string
		query      string
		wantStatus int
		wantMsg    string
		wantSel    string
	}{
		{name: "default selection", fileID: "ma", wantStatus: http.StatusOK, wantSel: "Brazil"},
		{name: "explicit country", fileID: "ma", query: "?country=Kenya&search=k", wantStatus: http.StatusOK, wantSel: "Kenya"},
		{name: "unknown country", fileID: "ma", query: "?country=Chile", wantStatus: http.StatusNotFound},
		{
			name:       "nothing positive",
			fileID:     "empty",
			wantStatus: http.StatusNotFound,
			wantMsg:    "No countries with positive revenue found in the data.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.New(log.NewNop(), analysisapitest.Sessions{State: model.SessionState{MyAffiliateID: tt.fileID}}, api, generation.New(), w)
			h := &handler{l: log.NewNop(), uc: uc}
			r := gin.New()
			r.GET("/countries", func(c *gin.Context) {
				c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), model.Scope{SessionID: "sid-1"}))
			}, h.Analyze)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/countries"+tt.query, nil))
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			var env struct {
				Message string      `json:"message"`
				Data    analyzeResp `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, env.Message)
			}
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantSel, env.Data.Selected)
				assert.Equal(t, 2, env.Data.Retained)
			}
		})
	}
}
