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

func (uc *implUseCase) GetWidget(ctx context.Context, sc model.Scope) ([]model.ChatMessage, error) {
	if sc.SessionID == "" {
		return nil, session.ErrSessionRequired
	}
	return uc.widgetTranscript(sc.SessionID), nil
}

// SendWidget asks a one-off question without history or source. Without a
// file the widget answers with an error message and the service is not called.
func (uc *implUseCase) SendWidget(ctx context.Context, sc model.Scope, input assistant.SendInput) ([]model.ChatMessage, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, assistant.ErrEmptyQuery
	}
	if sc.SessionID == "" {
		return nil, session.ErrSessionRequired
	}

	unlock := uc.locks.lock("widget:" + sc.SessionID)
	defer unlock()

	state, err := uc.sessions.Get(ctx, sc)
	if err != nil {
		return nil, err
	}
	res := datasource.Resolve(state, datasource.PageWidget)

	messages := append(uc.widgetTranscript(sc.SessionID), model.ChatMessage{Sender: model.SenderUser, Text: query})
	uc.widget.set(sc.SessionID, messages)

	var reply string
	if !res.HasFile() {
		reply = assistant.WidgetErrorPrefix + assistant.WidgetNoFile
	} else {
		out, err := uc.api.SendChat(context.WithoutCancel(ctx), analysisapi.ChatInput{
			FileID: res.FileID,
			Query:  query,
		})
		switch {
		case err != nil:
			uc.l.Warnf(ctx, "assistant.usecase.SendWidget: SendChat failed: %v", err)
			reply = assistant.WidgetErrorPrefix + analysisapi.Message(err)
		case strings.TrimSpace(out.Answer) == "":
			reply = assistant.WidgetFallback
		default:
			reply = out.Answer
		}
	}

	messages = append(messages, model.ChatMessage{Sender: model.SenderBot, Text: reply})
	uc.widget.set(sc.SessionID, messages)
	return messages, nil
}

func (uc *implUseCase) widgetTranscript(sid string) []model.ChatMessage {
	if messages := uc.widget.get(sid); len(messages) > 0 {
		return messages
	}
	return []model.ChatMessage{{Sender: model.SenderBot, Text: assistant.WidgetGreeting}}
}
