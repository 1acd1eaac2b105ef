package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/session"
	"partner-dashboard-srv/internal/session/repository"
)

func setFieldsOptions(sc model.Scope, fields map[string]string, ttl time.Duration) repository.SetFieldsOptions {
	return repository.SetFieldsOptions{
		SessionID: sc.SessionID,
		Fields:    fields,
		TTL:       ttl,
	}
}

func fieldNames(fields map[string]string) []string {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (uc *implUseCase) decodeState(ctx context.Context, sc model.Scope, fields map[string]string) model.SessionState {
	state := model.SessionState{
		MyAffiliateID:     fields[session.FieldMyAffiliateID],
		DynamicWorksID:    fields[session.FieldDynamicWorksID],
		CurrentFileID:     fields[session.FieldCurrentFileID],
		ProcessedFilename: fields[session.FieldProcessedFilename],
	}

	if raw := fields[session.FieldAIAssistantMessages]; raw != "" {
		msgs, err := uc.decodeTranscript(sc, raw)
		if err != nil {
			// an unreadable transcript restarts the conversation rather than failing every page
			uc.l.Warnf(ctx, "session.usecase.decodeState: decodeTranscript failed: %v", err)
		} else {
			state.AIAssistantMessages = msgs
		}
	}
	return state
}

// The transcript is sealed with the session id as binding, so a value copied into another session does not open.
func (uc *implUseCase) encodeTranscript(sc model.Scope, messages []model.ChatMessage) (string, error) {
	if messages == nil {
		messages = []model.ChatMessage{}
	}
	b, err := json.Marshal(messages)
	if err != nil {
		return "", fmt.Errorf("marshal transcript: %w", err)
	}
	if uc.enc == nil {
		return string(b), nil
	}
	return uc.enc.Seal(b, []byte(sc.SessionID))
}

func (uc *implUseCase) decodeTranscript(sc model.Scope, raw string) ([]model.ChatMessage, error) {
	b := []byte(raw)
	if uc.enc != nil {
		plain, err := uc.enc.Open(raw, []byte(sc.SessionID))
		if err != nil {
			return nil, err
		}
		b = plain
	}

	var msgs []model.ChatMessage
	if err := json.Unmarshal(b, &msgs); err != nil {
		return nil, fmt.Errorf("unmarshal transcript: %w", err)
	}
	return msgs, nil
}
