package overall

import (
	"context"

	"partner-dashboard-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetOverview(ctx context.Context, sc model.Scope, input OverviewInput) (OverviewOutput, error)
	Compare(ctx context.Context, sc model.Scope, input CompareInput) (CompareOutput, error)
}
