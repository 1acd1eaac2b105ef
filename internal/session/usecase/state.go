package usecase

import (
	"context"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/session"
)

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) (model.SessionState, error) {
	if sc.SessionID == "" {
		return model.SessionState{}, session.ErrSessionRequired
	}

	fields, err := uc.repo.GetFields(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.Get: GetFields failed: %v", err)
		return model.SessionState{}, err
	}
	return uc.decodeState(ctx, sc, fields), nil
}

// CommitUploads writes every upload key in one atomic operation.
func (uc *implUseCase) CommitUploads(ctx context.Context, sc model.Scope, input session.CommitUploadsInput) (model.SessionState, error) {
	if sc.SessionID == "" {
		return model.SessionState{}, session.ErrSessionRequired
	}
	if input.MyAffiliateID == "" && input.DynamicWorksID == "" {
		return model.SessionState{}, session.ErrNothingToCommit
	}

	fields := map[string]string{
		session.FieldProcessedFilename: session.ProcessedFilename,
	}
	if input.MyAffiliateID != "" {
		fields[session.FieldMyAffiliateID] = input.MyAffiliateID
		fields[session.FieldCurrentFileID] = input.MyAffiliateID
	}
	if input.DynamicWorksID != "" {
		fields[session.FieldDynamicWorksID] = input.DynamicWorksID
		fields[session.FieldCurrentFileID] = input.DynamicWorksID
	}

	if err := uc.write(ctx, sc, fields); err != nil {
		uc.l.Errorf(ctx, "session.usecase.CommitUploads: write failed: %v", err)
		return model.SessionState{}, err
	}
	return uc.Get(ctx, sc)
}

// SelectFile loads a stored file. Only a dynamicWorks file moves currentFileId.
func (uc *implUseCase) SelectFile(ctx context.Context, sc model.Scope, input session.SelectFileInput) (model.SessionState, error) {
	if sc.SessionID == "" {
		return model.SessionState{}, session.ErrSessionRequired
	}
	if input.FileID == "" {
		return model.SessionState{}, session.ErrFileIDRequired
	}

	fields := make(map[string]string, 2)
	switch input.Source {
	case model.SourceMyAffiliate:
		fields[session.FieldMyAffiliateID] = input.FileID
	case model.SourceDynamicWorks:
		fields[session.FieldDynamicWorksID] = input.FileID
		fields[session.FieldCurrentFileID] = input.FileID
	case model.SourceNone, model.SourceCombined:
		return model.SessionState{}, session.ErrInvalidSource
	default:
		return model.SessionState{}, session.ErrInvalidSource
	}

	if err := uc.write(ctx, sc, fields); err != nil {
		uc.l.Errorf(ctx, "session.usecase.SelectFile: write failed: %v", err)
		return model.SessionState{}, err
	}
	return uc.Get(ctx, sc)
}

func (uc *implUseCase) SaveTranscript(ctx context.Context, sc model.Scope, messages []model.ChatMessage) error {
	if sc.SessionID == "" {
		return session.ErrSessionRequired
	}

	encoded, err := uc.encodeTranscript(sc, messages)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.SaveTranscript: encodeTranscript failed: %v", err)
		return err
	}

	if err := uc.write(ctx, sc, map[string]string{session.FieldAIAssistantMessages: encoded}); err != nil {
		uc.l.Errorf(ctx, "session.usecase.SaveTranscript: write failed: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Clear(ctx context.Context, sc model.Scope) error {
	if sc.SessionID == "" {
		return session.ErrSessionRequired
	}

	if err := uc.repo.Delete(ctx, sc.SessionID); err != nil {
		uc.l.Errorf(ctx, "session.usecase.Clear: Delete failed: %v", err)
		return err
	}
	uc.publish(ctx, sc, session.Event{Type: session.EventCleared})
	return nil
}

func (uc *implUseCase) write(ctx context.Context, sc model.Scope, fields map[string]string) error {
	if err := uc.repo.SetFields(ctx, setFieldsOptions(sc, fields, uc.ttl)); err != nil {
		return err
	}
	uc.publish(ctx, sc, session.Event{Type: session.EventUpdated, Fields: fieldNames(fields)})
	return nil
}
