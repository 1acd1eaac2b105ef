package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/session"
	"partner-dashboard-srv/internal/session/repository/memory"
	"partner-dashboard-srv/internal/session/usecase"
	"partner-dashboard-srv/pkg/log"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testScope = model.Scope{SessionID: "sid-1"}

func newTestServer(t *testing.T) (*gin.Engine, session.UseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc := usecase.New(memory.New(), nil, time.Hour, log.NewNop())
	h := &handler{l: log.NewNop(), uc: uc, keepAlive: time.Hour}

	withScope := func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), testScope))
	}
	r := gin.New()
	r.GET("/session", withScope, h.Get)
	r.DELETE("/session", withScope, h.Clear)
	return r, uc
}

type envelope struct {
	ErrorCode int         `json:"error_code"`
	Data      sessionResp `json:"data"`
}

func TestGet(t *testing.T) {
	tests := []struct {
		name       string
		commit     *session.CommitUploadsInput
		query      string
		wantStatus int
		wantSource model.DataSource
		wantFileID string
		wantAvail  int
	}{
		{name: "empty session", query: "", wantStatus: http.StatusOK, wantSource: model.SourceNone, wantAvail: 0},
		{
			name:       "dashboard prefers myAffiliate",
			commit:     &session.CommitUploadsInput{MyAffiliateID: "ma", DynamicWorksID: "dw"},
			query:      "?page=dashboard",
			wantStatus: http.StatusOK,
			wantSource: model.SourceMyAffiliate,
			wantFileID: "ma",
			wantAvail:  3,
		},
		{
			name:       "assistant defaults to combined",
			commit:     &session.CommitUploadsInput{MyAffiliateID: "ma", DynamicWorksID: "dw"},
			query:      "?page=assistant",
			wantStatus: http.StatusOK,
			wantSource: model.SourceCombined,
			wantFileID: "dw",
			wantAvail:  3,
		},
		{name: "unknown page", query: "?page=nope", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newTestServer(t)
			if tt.commit != nil {
				_, err := uc.CommitUploads(context.Background(), testScope, *tt.commit)
				require.NoError(t, err)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session"+tt.query, nil))
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantSource, body.Data.Resolution.Source)
			if tt.wantFileID != "" {
				assert.Equal(t, tt.wantFileID, body.Data.Resolution.FileID)
			}
			assert.Len(t, body.Data.Available, tt.wantAvail)
		})
	}
}

func TestClear(t *testing.T) {
	r, uc := newTestServer(t)
	ctx := context.Background()
	_, err := uc.CommitUploads(ctx, testScope, session.CommitUploadsInput{MyAffiliateID: "ma"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/session", nil))
	require.Equal(t, http.StatusOK, w.Code)

	state, err := uc.Get(ctx, testScope)
	require.NoError(t, err)
	assert.Equal(t, model.SessionState{}, state)
}
