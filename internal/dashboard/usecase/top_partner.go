package usecase

import (
	"context"
	"slices"

	"partner-dashboard-srv/internal/dashboard"
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/generation"
)

// GetTopPartner returns the best partner for a metric in one month. When the
// service finds nobody, the result carries only its message.
func (uc *implUseCase) GetTopPartner(ctx context.Context, sc model.Scope, input dashboard.TopPartnerInput) (analysisapi.TopPartner, error) {
	input, err := uc.withTopPartnerDefaults(input)
	if err != nil {
		return analysisapi.TopPartner{}, err
	}

	_, res, err := datasource.Load(ctx, uc.sessions, sc, input.Source, datasource.PageDashboard)
	if err != nil {
		return analysisapi.TopPartner{}, err
	}

	tp, err := generation.Guard(ctx, uc.tracker, slotKey(sc, "top-partner"),
		func(ctx context.Context) (analysisapi.TopPartner, error) {
			return uc.api.GetTopPartner(ctx, analysisapi.TopPartnerInput{
				FileID: res.FileID,
				Metric: input.Metric,
				Year:   input.Year,
				Month:  input.Month,
				Source: res.Source,
			})
		})
	if err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.GetTopPartner: GetTopPartner failed: %v", err)
		return analysisapi.TopPartner{}, err
	}
	return tp, nil
}

func (uc *implUseCase) withTopPartnerDefaults(input dashboard.TopPartnerInput) (dashboard.TopPartnerInput, error) {
	if input.Metric == "" {
		input.Metric = dashboard.DefaultMetric
	}
	if !slices.Contains(dashboard.Metrics, input.Metric) {
		return input, dashboard.ErrInvalidMetric
	}
	if input.Year == 0 {
		input.Year = uc.now().Year()
	}
	if input.Year < 1970 {
		return input, dashboard.ErrInvalidYear
	}
	if input.Month == 0 {
		input.Month = uc.defaultMonth
	}
	if input.Month < 1 || input.Month > 12 {
		return input, dashboard.ErrInvalidMonth
	}
	return input, nil
}
