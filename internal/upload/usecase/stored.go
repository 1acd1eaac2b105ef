package usecase

import (
	"context"
	"sort"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/session"
	"partner-dashboard-srv/internal/upload"
)

// ListStoredFiles groups the service's stored files per source, newest first.
func (uc *implUseCase) ListStoredFiles(ctx context.Context) (upload.StoredFiles, error) {
	files, err := uc.api.GetStoredFiles(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "upload.usecase.ListStoredFiles: GetStoredFiles failed: %v", err)
		return upload.StoredFiles{}, upload.ErrLoadStoredFiles
	}

	out := upload.StoredFiles{
		MyAffiliate:  []model.UploadedFile{},
		DynamicWorks: []model.UploadedFile{},
	}
	for _, f := range files {
		switch f.Source {
		case model.SourceMyAffiliate:
			out.MyAffiliate = append(out.MyAffiliate, f)
		case model.SourceDynamicWorks:
			out.DynamicWorks = append(out.DynamicWorks, f)
		}
	}
	newestFirst(out.MyAffiliate)
	newestFirst(out.DynamicWorks)
	return out, nil
}

func newestFirst(files []model.UploadedFile) {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].UploadDate.After(files[j].UploadDate)
	})
}

func (uc *implUseCase) LoadStoredFile(ctx context.Context, sc model.Scope, input upload.LoadStoredFileInput) (model.SessionState, error) {
	if input.FileID == "" {
		return model.SessionState{}, upload.ErrFileIDRequired
	}
	if !input.Source.IsUploadSource() {
		return model.SessionState{}, upload.ErrInvalidSource
	}

	state, err := uc.session.SelectFile(ctx, sc, session.SelectFileInput{Source: input.Source, FileID: input.FileID})
	if err != nil {
		uc.l.Errorf(ctx, "upload.usecase.LoadStoredFile: SelectFile failed: %v", err)
		return model.SessionState{}, err
	}
	return state, nil
}
