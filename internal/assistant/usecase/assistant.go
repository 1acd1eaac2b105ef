package usecase

import (
	"context"
	"strings"

	"partner-dashboard-srv/internal/assistant"
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/session"
	"partner-dashboard-srv/pkg/analysisapi"
)

// Get returns the assistant transcript. A session without a file still gets
// its transcript so the page can prompt for an upload.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, input assistant.GetInput) (assistant.AssistantOutput, error) {
	state, err := uc.sessions.Get(ctx, sc)
	if err != nil {
		return assistant.AssistantOutput{}, err
	}
	res, err := datasource.Select(state, input.Source, datasource.PageAssistant)
	if err != nil {
		return assistant.AssistantOutput{}, err
	}

	return assistant.AssistantOutput{
		TranscriptOutput: assistant.TranscriptOutput{
			Resolution: res,
			Messages:   transcript(state),
		},
		Greeting:  greeting(uc.now().Hour()),
		Examples:  assistant.ExampleQuestions,
		Available: datasource.Available(state),
	}, nil
}

// Send appends the question, asks the analysis service and appends its answer.
// The transcript is saved after each append. The service call outlives the
// request so an answer is still recorded when the client goes away.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input assistant.SendInput) (assistant.TranscriptOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return assistant.TranscriptOutput{}, assistant.ErrEmptyQuery
	}
	if sc.SessionID == "" {
		return assistant.TranscriptOutput{}, session.ErrSessionRequired
	}

	unlock := uc.locks.lock(sc.SessionID)
	defer unlock()

	state, res, err := datasource.Load(ctx, uc.sessions, sc, input.Source, datasource.PageAssistant)
	if err != nil {
		return assistant.TranscriptOutput{}, err
	}

	history := transcript(state)
	messages := append(history[:len(history):len(history)], model.ChatMessage{Sender: model.SenderUser, Text: query})
	if err := uc.sessions.SaveTranscript(ctx, sc, messages); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Send: SaveTranscript failed: %v", err)
		return assistant.TranscriptOutput{}, err
	}

	detached := context.WithoutCancel(ctx)
	out, err := uc.api.SendChat(detached, analysisapi.ChatInput{
		FileID:         res.FileID,
		Query:          query,
		ChatHistory:    history,
		Source:         res.Source,
		MyAffiliateID:  res.MyAffiliateID,
		DynamicWorksID: res.DynamicWorksID,
	})

	reply := out.Answer
	switch {
	case err != nil:
		uc.l.Warnf(ctx, "assistant.usecase.Send: SendChat failed: %v", err)
		reply = assistant.AssistantError
	case strings.TrimSpace(reply) == "":
		reply = assistant.AssistantFallback
	}

	messages = append(messages, model.ChatMessage{Sender: model.SenderBot, Text: reply})
	if err := uc.sessions.SaveTranscript(detached, sc, messages); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Send: SaveTranscript failed: %v", err)
		return assistant.TranscriptOutput{}, err
	}

	return assistant.TranscriptOutput{Resolution: res, Messages: messages}, nil
}

// Clear replaces the transcript with a single bot message.
func (uc *implUseCase) Clear(ctx context.Context, sc model.Scope) (assistant.TranscriptOutput, error) {
	if sc.SessionID == "" {
		return assistant.TranscriptOutput{}, session.ErrSessionRequired
	}

	unlock := uc.locks.lock(sc.SessionID)
	defer unlock()

	state, err := uc.sessions.Get(ctx, sc)
	if err != nil {
		return assistant.TranscriptOutput{}, err
	}

	messages := []model.ChatMessage{{Sender: model.SenderBot, Text: assistant.AssistantCleared}}
	if err := uc.sessions.SaveTranscript(ctx, sc, messages); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Clear: SaveTranscript failed: %v", err)
		return assistant.TranscriptOutput{}, err
	}
	return assistant.TranscriptOutput{
		Resolution: datasource.Resolve(state, datasource.PageAssistant),
		Messages:   messages,
	}, nil
}

func transcript(state model.SessionState) []model.ChatMessage {
	if len(state.AIAssistantMessages) == 0 {
		return []model.ChatMessage{{Sender: model.SenderBot, Text: assistant.AssistantGreeting}}
	}
	return append([]model.ChatMessage(nil), state.AIAssistantMessages...)
}

func greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
