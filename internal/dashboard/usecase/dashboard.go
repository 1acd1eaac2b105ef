package usecase

import (
	"context"

	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/dashboard"
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/generation"
)

func (uc *implUseCase) GetDashboard(ctx context.Context, sc model.Scope, input dashboard.GetDashboardInput) (dashboard.DashboardOutput, error) {
	_, res, err := datasource.Load(ctx, uc.sessions, sc, input.Source, datasource.PageDashboard)
	if err != nil {
		return dashboard.DashboardOutput{}, err
	}

	data, err := generation.Guard(ctx, uc.tracker, slotKey(sc, "analysis"),
		func(ctx context.Context) (analysisapi.AnalysisResult, error) {
			return uc.api.GetAnalysisData(ctx, res.FileID, analysisapi.AnalysisQuery{}, res.Source)
		})
	if err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.GetDashboard: GetAnalysisData failed: %v", err)
		return dashboard.DashboardOutput{}, err
	}

	monthly := uc.window.FilterMonthly(data.KPIs.MonthlyKPIs)
	return dashboard.DashboardOutput{
		Resolution:    res,
		Totals:        data.KPIs.TotalKPIs,
		Monthly:       monthly,
		RevenueChart:  chart.RevenueLine(monthly),
		RegionalChart: uc.window.RegionalBars(data.PerformanceAnalysis.RegionalRevenueTrends),
	}, nil
}

func (uc *implUseCase) GetTeamRegions(ctx context.Context, sc model.Scope, input dashboard.TeamRegionsInput) ([]string, error) {
	_, res, err := datasource.Load(ctx, uc.sessions, sc, input.Source, datasource.PageDashboard)
	if err != nil {
		return nil, err
	}

	regions, err := generation.Guard(ctx, uc.tracker, slotKey(sc, "team-regions"),
		func(ctx context.Context) ([]string, error) {
			return uc.api.GetTeamRegions(ctx, res.FileID)
		})
	if err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.GetTeamRegions: GetTeamRegions failed: %v", err)
		return nil, err
	}
	return regions, nil
}
