package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"partner-dashboard-srv/internal/assistant"
	"partner-dashboard-srv/internal/assistant/usecase"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/analysisapi/analysisapitest"
	"partner-dashboard-srv/pkg/log"
	"partner-dashboard-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	state model.SessionState
}

func (s *stubSessions) Get(context.Context, model.Scope) (model.SessionState, error) {
	return s.state, nil
}

func (s *stubSessions) SaveTranscript(_ context.Context, _ model.Scope, messages []model.ChatMessage) error {
	s.state.AIAssistantMessages = messages
	return nil
}

func newTestServer(t *testing.T, sessions *stubSessions, api *analysisapitest.Fake) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &handler{l: log.NewNop(), uc: usecase.New(log.NewNop(), sessions, api, time.Hour)}
	withScope := func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), model.Scope{SessionID: "sid-1"}))
	}
	r := gin.New()
	r.GET("/assistant", withScope, h.Get)
	r.POST("/assistant/messages", withScope, h.Send)
	r.DELETE("/assistant/messages", withScope, h.Clear)
	r.GET("/widget/messages", withScope, h.GetWidget)
	r.POST("/widget/messages", withScope, h.SendWidget)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAssistantFlow(t *testing.T) {
	sessions := &stubSessions{state: model.SessionState{MyAffiliateID: "ma", DynamicWorksID: "dw"}}
	api := &analysisapitest.Fake{ChatFunc: func(context.Context, analysisapi.ChatInput) (analysisapi.ChatOutput, error) {
		return analysisapi.ChatOutput{Answer: "Vietnam"}, nil
	}}
	r := newTestServer(t, sessions, api)

	rec := do(r, http.MethodGet, "/assistant", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var page struct {
		Data assistantResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, model.SourceCombined, page.Data.Source)
	assert.True(t, page.Data.HasFile)
	assert.Len(t, page.Data.Examples, 4)
	require.Len(t, page.Data.Messages, 1)
	assert.Equal(t, assistant.AssistantGreeting, page.Data.Messages[0].Text)

	rec = do(r, http.MethodPost, "/assistant/messages", `{"text":"best country?"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var sent struct {
		Data transcriptResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sent))
	require.Len(t, sent.Data.Messages, 3)
	assert.Equal(t, messageResp{Sender: "bot", Text: "Vietnam"}, sent.Data.Messages[2])

	rec = do(r, http.MethodDelete, "/assistant/messages", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, sessions.state.AIAssistantMessages, 1)
	assert.Equal(t, assistant.AssistantCleared, sessions.state.AIAssistantMessages[0].Text)
}

func TestSendErrors(t *testing.T) {
	tcs := []struct {
		name  string
		state model.SessionState
		body  string
		code  int
	}{
		{"missing text", model.SessionState{MyAffiliateID: "ma"}, `{}`, http.StatusBadRequest},
		{"blank text", model.SessionState{MyAffiliateID: "ma"}, `{"text":"   "}`, http.StatusBadRequest},
		{"unknown source", model.SessionState{MyAffiliateID: "ma"}, `{"text":"q","source":"other"}`, http.StatusBadRequest},
		{"combined without both", model.SessionState{MyAffiliateID: "ma"}, `{"text":"q","source":"combined"}`, http.StatusBadRequest},
		{"no file", model.SessionState{}, `{"text":"q"}`, http.StatusNotFound},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestServer(t, &stubSessions{state: tc.state}, &analysisapitest.Fake{})
			rec := do(r, http.MethodPost, "/assistant/messages", tc.body)
			assert.Equal(t, tc.code, rec.Code, rec.Body.String())
		})
	}

	t.Run("service failure is a chat message", func(t *testing.T) {
		api := &analysisapitest.Fake{Err: analysisapi.ErrUnavailable}
		r := newTestServer(t, &stubSessions{state: model.SessionState{MyAffiliateID: "ma"}}, api)
		rec := do(r, http.MethodPost, "/assistant/messages", `{"text":"q"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), assistant.AssistantError)
	})
}

func TestWidget(t *testing.T) {
	r := newTestServer(t, &stubSessions{}, &analysisapitest.Fake{})

	rec := do(r, http.MethodPost, "/widget/messages", `{"text":"hi"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(r, http.MethodGet, "/widget/messages", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var env struct {
		Data widgetResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env.Data.Messages, 3)
	assert.Equal(t, "Error: "+assistant.WidgetNoFile, env.Data.Messages[2].Text)
}
