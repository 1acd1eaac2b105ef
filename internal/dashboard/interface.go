package dashboard

import (
	"context"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/analysisapi"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetDashboard(ctx context.Context, sc model.Scope, input GetDashboardInput) (DashboardOutput, error)
	GetTopPartner(ctx context.Context, sc model.Scope, input TopPartnerInput) (analysisapi.TopPartner, error)
	GetTeamRegions(ctx context.Context, sc model.Scope, input TeamRegionsInput) ([]string, error)
}
