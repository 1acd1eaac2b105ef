package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/overall/usecase"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/analysisapi/analysisapitest"
	"partner-dashboard-srv/pkg/generation"
	"partner-dashboard-srv/pkg/log"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, state model.SessionState, api *analysisapitest.Fake) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w, err := chart.NewWindow("2024-10", "2025-04")
	require.NoError(t, err)

	h := &handler{l: log.NewNop(), uc: usecase.New(log.NewNop(), analysisapitest.Sessions{State: state}, api, generation.New(), w)}
	withScope := func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), model.Scope{SessionID: "sid-1"}))
	}
	r := gin.New()
	r.GET("/overall", withScope, h.GetOverview)
	r.POST("/overall/comparison", withScope, h.Compare)
	return r
}

func TestGetOverview(t *testing.T) {
	api := &analysisapitest.Fake{Analysis: map[string]analysisapi.AnalysisResult{
		"ma": {KPIs: analysisapi.KPIs{MonthlyKPIs: []analysisapi.MonthlyKPI{{Month: "2024-10", ActiveClients: 2}}}},
		"dw": {KPIs: analysisapi.KPIs{MonthlyKPIs: []analysisapi.MonthlyKPI{{Month: "2024-12", ActiveClients: 3}}}},
	}}

	t.Run("stacked", func(t *testing.T) {
		r := newTestServer(t, model.SessionState{MyAffiliateID: "ma", DynamicWorksID: "dw"}, api)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/overall", nil))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var env struct {
			Data overviewResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, "stacked", env.Data.Mode)
		require.NotNil(t, env.Data.ActiveClients)
		assert.Nil(t, env.Data.Metrics)
		assert.Equal(t, []string{"2024-10", "2024-12"}, env.Data.ActiveClients.Labels)
	})

	t.Run("single", func(t *testing.T) {
		r := newTestServer(t, model.SessionState{MyAffiliateID: "ma"}, api)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/overall", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var env struct {
			Data overviewResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, "single", env.Data.Mode)
		require.NotNil(t, env.Data.Metrics)
		assert.Nil(t, env.Data.ActiveClients)
	})
}

func TestCompare(t *testing.T) {
	t.Run("needs both", func(t *testing.T) {
		r := newTestServer(t, model.SessionState{DynamicWorksID: "dw"}, &analysisapitest.Fake{})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/overall/comparison", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Both data sources must be available for comparison")
	})

	t.Run("ok", func(t *testing.T) {
		api := &analysisapitest.Fake{Comparison: analysisapi.ComparisonResult{
			Months:  []string{"2024-10"},
			Metrics: map[string]analysisapi.ComparisonSeries{"ftt": {MyAffiliate: []float64{1}, DynamicWorks: []float64{2}}},
		}}
		r := newTestServer(t, model.SessionState{MyAffiliateID: "ma", DynamicWorksID: "dw"}, api)
		req := httptest.NewRequest(http.MethodPost, "/overall/comparison", strings.NewReader(`{"metricsToCompare":["FTT"],"timeframe":"monthly"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var env struct {
			Data compareResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		require.Len(t, env.Data.Comparisons, 1)
		assert.Equal(t, "FTT", env.Data.Comparisons[0].Metric)
		assert.Equal(t, "monthly", api.LastComparison.Timeframe)
	})
}
