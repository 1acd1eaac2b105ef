package usecase

import (
	"bytes"
	"context"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/session"
	"partner-dashboard-srv/internal/upload"
	"partner-dashboard-srv/pkg/analysisapi"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Upload sends every file to the analysis service and commits the returned ids
// only when all of them succeeded.
func (uc *implUseCase) Upload(ctx context.Context, sc model.Scope, input upload.UploadInput) (upload.UploadOutput, error) {
	if err := uc.validateFiles(input.Files); err != nil {
		uc.l.Warnf(ctx, "upload.usecase.Upload: validateFiles failed: %v", err)
		return upload.UploadOutput{}, err
	}

	uploadID := input.UploadID
	if uploadID == "" {
		uploadID = uuid.NewString()
	}
	settle := uc.progress.start(uploadID)

	fileIDs := make([]string, len(input.Files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range input.Files {
		g.Go(func() error {
			out, err := uc.api.Upload(gctx, analysisapi.UploadInput{
				Filename: f.Filename,
				Reader:   bytes.NewReader(f.Content),
				Source:   f.Source,
			})
			if err != nil {
				return err
			}
			fileIDs[i] = out.FileID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		settle(false)
		uc.l.Errorf(ctx, "upload.usecase.Upload: analysis upload failed: %v", err)
		return upload.UploadOutput{}, err
	}

	commit := session.CommitUploadsInput{}
	for i, f := range input.Files {
		switch f.Source {
		case model.SourceMyAffiliate:
			commit.MyAffiliateID = fileIDs[i]
		case model.SourceDynamicWorks:
			commit.DynamicWorksID = fileIDs[i]
		}
	}

	state, err := uc.session.CommitUploads(ctx, sc, commit)
	if err != nil {
		settle(false)
		uc.l.Errorf(ctx, "upload.usecase.Upload: CommitUploads failed: %v", err)
		return upload.UploadOutput{}, err
	}
	settle(true)

	uc.afterCommit(context.WithoutCancel(ctx), sc, input.Files, fileIDs)

	return upload.UploadOutput{
		UploadID:       uploadID,
		MyAffiliateID:  commit.MyAffiliateID,
		DynamicWorksID: commit.DynamicWorksID,
		Redirect:       upload.RedirectDashboard,
		State:          state,
	}, nil
}

func (uc *implUseCase) GetProgress(ctx context.Context, uploadID string) (upload.Progress, error) {
	p, ok := uc.progress.get(uploadID)
	if !ok {
		return upload.Progress{}, upload.ErrProgressNotFound
	}
	return p, nil
}
