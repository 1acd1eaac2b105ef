package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/partner/usecase"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/analysisapi/analysisapitest"
	"partner-dashboard-srv/pkg/generation"
	"partner-dashboard-srv/pkg/log"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	api := &analysisapitest.Fake{Analysis: map[string]analysisapi.AnalysisResult{
		"dw": {PerformanceAnalysis: analysisapi.PerformanceAnalysis{
			TopPartnersByRevenue: []analysisapi.PartnerRow{{PartnerID: "77", Country: "Kenya", DerivRevenue: 12}},
		}},
	}}
	uc := usecase.New(log.NewNop(), analysisapitest.Sessions{State: model.SessionState{DynamicWorksID: "dw"}}, api, generation.New())
	h := &handler{l: log.NewNop(), uc: uc}
	r := gin.New()
	r.GET("/partners", func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), model.Scope{SessionID: "sid-1"}))
	}, h.List)

	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{name: "top tab for a month", query: "?tab=top&preset=mar-2025", wantStatus: http.StatusOK},
		{name: "unknown tab", query: "?tab=worst", wantStatus: http.StatusBadRequest},
		{name: "bad preset", query: "?preset=yesterday", wantStatus: http.StatusBadRequest},
		{name: "reversed dates", query: "?startDate=2025-03-01&endDate=2025-01-01", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/partners"+tt.query, nil))
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			var env struct {
				Data listResp `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, "top", env.Data.Tab)
			assert.Equal(t, dateRangeResp{StartDate: "2025-03-01", EndDate: "2025-03-31", Preset: "mar-2025"}, env.Data.Range)
			require.Len(t, env.Data.Partners, 1)
			assert.Equal(t, "N/A", env.Data.Partners[0].Region)
			assert.Equal(t, model.SourceDynamicWorks, env.Data.Source)
		})
	}
}
