package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"partner-dashboard-srv/internal/assistant"
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/analysisapi/analysisapitest"
	"partner-dashboard-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sc = model.Scope{SessionID: "sid-1"}

type memSessions struct {
	mu      sync.Mutex
	state   model.SessionState
	saves   int
	saveErr error
}

func (m *memSessions) Get(context.Context, model.Scope) (model.SessionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, nil
}

func (m *memSessions) SaveTranscript(_ context.Context, _ model.Scope, messages []model.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.state.AIAssistantMessages = append([]model.ChatMessage(nil), messages...)
	return nil
}

func newUseCase(sessions *memSessions, api *analysisapitest.Fake) *implUseCase {
	return New(log.NewNop(), sessions, api, time.Hour).(*implUseCase)
}

func TestGet(t *testing.T) {
	t.Run("fresh session gets the greeting", func(t *testing.T) {
		uc := newUseCase(&memSessions{}, &analysisapitest.Fake{})
		uc.now = func() time.Time { return time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC) }

		out, err := uc.Get(context.Background(), sc, assistant.GetInput{})
		require.NoError(t, err)
		assert.Equal(t, "Good morning", out.Greeting)
		assert.Equal(t, []model.ChatMessage{{Sender: model.SenderBot, Text: assistant.AssistantGreeting}}, out.Messages)
		assert.False(t, out.Resolution.HasFile())
		assert.Len(t, out.Examples, 4)
	})

	t.Run("both sources default to combined", func(t *testing.T) {
		sessions := &memSessions{state: model.SessionState{MyAffiliateID: "ma", DynamicWorksID: "dw"}}
		out, err := newUseCase(sessions, &analysisapitest.Fake{}).Get(context.Background(), sc, assistant.GetInput{})
		require.NoError(t, err)
		assert.Equal(t, model.SourceCombined, out.Resolution.Source)
		assert.Equal(t, "dw", out.Resolution.FileID)
		assert.Len(t, out.Available, 3)
	})

	t.Run("unavailable source", func(t *testing.T) {
		sessions := &memSessions{state: model.SessionState{MyAffiliateID: "ma"}}
		_, err := newUseCase(sessions, &analysisapitest.Fake{}).Get(context.Background(), sc, assistant.GetInput{Source: model.SourceDynamicWorks})
		assert.ErrorIs(t, err, datasource.ErrSourceUnavailable)
	})
}

func TestGreeting(t *testing.T) {
	tcs := map[int]string{0: "Good morning", 11: "Good morning", 12: "Good afternoon", 17: "Good afternoon", 18: "Good evening", 23: "Good evening"}
	for hour, want := range tcs {
		assert.Equal(t, want, greeting(hour), "hour %d", hour)
	}
}

func TestSend(t *testing.T) {
	t.Run("combined question carries both ids and prior history", func(t *testing.T) {
		sessions := &memSessions{state: model.SessionState{MyAffiliateID: "ma", DynamicWorksID: "dw"}}
		api := &analysisapitest.Fake{ChatFunc: func(_ context.Context, in analysisapi.ChatInput) (analysisapi.ChatOutput, error) {
			return analysisapi.ChatOutput{Answer: "Kenya"}, nil
		}}
		uc := newUseCase(sessions, api)

		out, err := uc.Send(context.Background(), sc, assistant.SendInput{Query: "  top country?  "})
		require.NoError(t, err)

		require.Len(t, out.Messages, 3)
		assert.Equal(t, model.ChatMessage{Sender: model.SenderUser, Text: "top country?"}, out.Messages[1])
		assert.Equal(t, model.ChatMessage{Sender: model.SenderBot, Text: "Kenya"}, out.Messages[2])
		assert.Equal(t, out.Messages, sessions.state.AIAssistantMessages)
		assert.Equal(t, 2, sessions.saves)

		assert.Equal(t, "dw", api.LastChat.FileID)
		assert.Equal(t, model.SourceCombined, api.LastChat.Source)
		assert.Equal(t, "ma", api.LastChat.MyAffiliateID)
		require.Len(t, api.LastChat.ChatHistory, 1)
		assert.Equal(t, assistant.AssistantGreeting, api.LastChat.ChatHistory[0].Text)
	})

	t.Run("answer survives a cancelled request", func(t *testing.T) {
		sessions := &memSessions{state: model.SessionState{MyAffiliateID: "ma"}}
		api := &analysisapitest.Fake{ChatFunc: func(ctx context.Context, _ analysisapi.ChatInput) (analysisapi.ChatOutput, error) {
			if ctx.Err() != nil {
				return analysisapi.ChatOutput{}, ctx.Err()
			}
			return analysisapi.ChatOutput{Answer: "done"}, nil
		}}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		out, err := newUseCase(sessions, api).Send(ctx, sc, assistant.SendInput{Query: "q"})
		require.NoError(t, err)
		assert.Equal(t, "done", out.Messages[len(out.Messages)-1].Text)
	})

	tcs := []struct {
		name string
		api  *analysisapitest.Fake
		want string
	}{
		{"empty answer", &analysisapitest.Fake{}, assistant.AssistantFallback},
		{"service failure", &analysisapitest.Fake{Err: &analysisapi.APIError{StatusCode: 500, Message: "boom"}}, assistant.AssistantError},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			sessions := &memSessions{state: model.SessionState{DynamicWorksID: "dw"}}
			out, err := newUseCase(sessions, tc.api).Send(context.Background(), sc, assistant.SendInput{Query: "q"})
			require.NoError(t, err)
			assert.Equal(t, model.ChatMessage{Sender: model.SenderBot, Text: tc.want}, out.Messages[len(out.Messages)-1])
		})
	}

	t.Run("continues an existing transcript", func(t *testing.T) {
		prior := []model.ChatMessage{{Sender: model.SenderBot, Text: "hi"}, {Sender: model.SenderUser, Text: "a"}, {Sender: model.SenderBot, Text: "b"}}
		sessions := &memSessions{state: model.SessionState{MyAffiliateID: "ma", AIAssistantMessages: prior}}
		api := &analysisapitest.Fake{ChatFunc: func(context.Context, analysisapi.ChatInput) (analysisapi.ChatOutput, error) {
			return analysisapi.ChatOutput{Answer: "c"}, nil
		}}
		out, err := newUseCase(sessions, api).Send(context.Background(), sc, assistant.SendInput{Query: "q"})
		require.NoError(t, err)
		assert.Len(t, out.Messages, 5)
		assert.Equal(t, prior, api.LastChat.ChatHistory)
	})

	t.Run("rejections leave the transcript alone", func(t *testing.T) {
		sessions := &memSessions{}
		api := &analysisapitest.Fake{}
		uc := newUseCase(sessions, api)

		_, err := uc.Send(context.Background(), sc, assistant.SendInput{Query: "   "})
		assert.ErrorIs(t, err, assistant.ErrEmptyQuery)

		_, err = uc.Send(context.Background(), sc, assistant.SendInput{Query: "q"})
		assert.ErrorIs(t, err, datasource.ErrNoFile)

		assert.Zero(t, sessions.saves)
		assert.Zero(t, api.CallCount())
	})

	t.Run("save failure is returned before the service is asked", func(t *testing.T) {
		sessions := &memSessions{state: model.SessionState{MyAffiliateID: "ma"}, saveErr: errors.New("redis down")}
		api := &analysisapitest.Fake{}
		_, err := newUseCase(sessions, api).Send(context.Background(), sc, assistant.SendInput{Query: "q"})
		assert.Error(t, err)
		assert.Zero(t, api.CallCount())
	})
}

func TestClear(t *testing.T) {
	sessions := &memSessions{state: model.SessionState{
		MyAffiliateID:       "ma",
		AIAssistantMessages: []model.ChatMessage{{Sender: model.SenderUser, Text: "old"}},
	}}
	out, err := newUseCase(sessions, &analysisapitest.Fake{}).Clear(context.Background(), sc)
	require.NoError(t, err)

	want := []model.ChatMessage{{Sender: model.SenderBot, Text: assistant.AssistantCleared}}
	assert.Equal(t, want, out.Messages)
	assert.Equal(t, want, sessions.state.AIAssistantMessages)
}

func TestWidget(t *testing.T) {
	t.Run("no file answers locally", func(t *testing.T) {
		api := &analysisapitest.Fake{}
		uc := newUseCase(&memSessions{}, api)

		msgs, err := uc.SendWidget(context.Background(), sc, assistant.SendInput{Query: "hello"})
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, assistant.WidgetGreeting, msgs[0].Text)
		assert.Equal(t, "Error: No file processed yet. Please upload a file first.", msgs[2].Text)
		assert.Zero(t, api.CallCount())
	})

	t.Run("asks without history or source", func(t *testing.T) {
		api := &analysisapitest.Fake{ChatFunc: func(context.Context, analysisapi.ChatInput) (analysisapi.ChatOutput, error) {
			return analysisapi.ChatOutput{Answer: "42"}, nil
		}}
		uc := newUseCase(&memSessions{state: model.SessionState{MyAffiliateID: "ma", DynamicWorksID: "dw"}}, api)

		_, err := uc.SendWidget(context.Background(), sc, assistant.SendInput{Query: "one"})
		require.NoError(t, err)
		msgs, err := uc.SendWidget(context.Background(), sc, assistant.SendInput{Query: "two"})
		require.NoError(t, err)

		assert.Len(t, msgs, 5)
		assert.Equal(t, "ma", api.LastChat.FileID)
		assert.Empty(t, api.LastChat.ChatHistory)
		assert.Equal(t, model.SourceNone, api.LastChat.Source)

		got, err := uc.GetWidget(context.Background(), sc)
		require.NoError(t, err)
		assert.Equal(t, msgs, got)
	})

	t.Run("failure and empty answer", func(t *testing.T) {
		api := &analysisapitest.Fake{Err: &analysisapi.APIError{StatusCode: 500, Message: "Internal failure"}}
		uc := newUseCase(&memSessions{state: model.SessionState{DynamicWorksID: "dw"}}, api)
		msgs, err := uc.SendWidget(context.Background(), sc, assistant.SendInput{Query: "q"})
		require.NoError(t, err)
		assert.Equal(t, "Error: Internal failure", msgs[len(msgs)-1].Text)

		api.Err = nil
		msgs, err = uc.SendWidget(context.Background(), sc, assistant.SendInput{Query: "q"})
		require.NoError(t, err)
		assert.Equal(t, assistant.WidgetFallback, msgs[len(msgs)-1].Text)
	})

	t.Run("transcripts are per session and expire", func(t *testing.T) {
		uc := newUseCase(&memSessions{}, &analysisapitest.Fake{})
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return now }

		_, err := uc.SendWidget(context.Background(), sc, assistant.SendInput{Query: "q"})
		require.NoError(t, err)

		other, err := uc.GetWidget(context.Background(), model.Scope{SessionID: "sid-2"})
		require.NoError(t, err)
		assert.Len(t, other, 1)
		assert.Equal(t, 1, uc.widget.len())

		now = now.Add(2 * time.Hour)
		msgs, err := uc.GetWidget(context.Background(), sc)
		require.NoError(t, err)
		assert.Len(t, msgs, 1)
		assert.Zero(t, uc.widget.len())
	})

	t.Run("idle transcripts are swept without a read", func(t *testing.T) {
		uc := newUseCase(&memSessions{}, &analysisapitest.Fake{})
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return now }

		_, err := uc.SendWidget(context.Background(), sc, assistant.SendInput{Query: "q"})
		require.NoError(t, err)
		now = now.Add(30 * time.Minute)
		_, err = uc.SendWidget(context.Background(), model.Scope{SessionID: "sid-2"}, assistant.SendInput{Query: "q"})
		require.NoError(t, err)

		assert.Zero(t, uc.Sweep())
		now = now.Add(45 * time.Minute)
		assert.Equal(t, 1, uc.Sweep())
		assert.Equal(t, 1, uc.widget.len())
	})
}

func TestSessionLocks(t *testing.T) {
	l := newSessionLocks()
	unlock := l.lock("a")

	acquired := make(chan struct{})
	go func() {
		u := l.lock("a")
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first held")
	case <-time.After(20 * time.Millisecond):
	}
	unlock()
	<-acquired

	assert.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return len(l.locks) == 0
	}, time.Second, time.Millisecond)
}
