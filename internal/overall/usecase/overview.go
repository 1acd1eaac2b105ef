package usecase

import (
	"context"
	"fmt"

	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/overall"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/generation"

	"golang.org/x/sync/errgroup"
)

// GetOverview stacks both sources when both are uploaded and no single source
// was asked for. Otherwise it charts the resolved source alone.
func (uc *implUseCase) GetOverview(ctx context.Context, sc model.Scope, input overall.OverviewInput) (overall.OverviewOutput, error) {
	state, res, err := datasource.Load(ctx, uc.sessions, sc, input.Source, datasource.PageOverall)
	if err != nil {
		return overall.OverviewOutput{}, err
	}

	key := generation.Key(sc.SessionID, string(datasource.PageOverall))
	if state.HasBoth() && !input.Source.IsUploadSource() {
		return generation.Guard(ctx, uc.tracker, key, func(ctx context.Context) (overall.OverviewOutput, error) {
			return uc.stacked(ctx, state, res)
		})
	}
	return generation.Guard(ctx, uc.tracker, key, func(ctx context.Context) (overall.OverviewOutput, error) {
		return uc.single(ctx, res)
	})
}

type sourceData struct {
	rows []analysisapi.MonthlyKPI
	err  error
}

// stacked fetches both sources concurrently. One failing source is treated
// as absent; the overview fails only when neither has in-window rows.
func (uc *implUseCase) stacked(ctx context.Context, state model.SessionState, res datasource.Resolution) (overall.OverviewOutput, error) {
	var ma, dw sourceData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ma = uc.fetchMonthly(gctx, state.MyAffiliateID, model.SourceMyAffiliate)
		return nil
	})
	g.Go(func() error {
		dw = uc.fetchMonthly(gctx, state.DynamicWorksID, model.SourceDynamicWorks)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return overall.OverviewOutput{}, fmt.Errorf("%w: %v", analysisapi.ErrUnavailable, err)
	}
	for _, sd := range []struct {
		name string
		data sourceData
	}{{"myAffiliate", ma}, {"dynamicWorks", dw}} {
		if sd.data.err != nil {
			uc.l.Warnf(ctx, "overall.usecase.stacked: %s GetAnalysisData failed: %v", sd.name, sd.data.err)
		}
	}

	if len(ma.rows) == 0 && len(dw.rows) == 0 {
		if ma.err != nil {
			return overall.OverviewOutput{}, fmt.Errorf("%w: %v", overall.ErrNoDataEitherSource, ma.err)
		}
		if dw.err != nil {
			return overall.OverviewOutput{}, fmt.Errorf("%w: %v", overall.ErrNoDataEitherSource, dw.err)
		}
		return overall.OverviewOutput{}, overall.ErrNoDataEitherSource
	}

	res.Source = model.SourceCombined
	return overall.OverviewOutput{
		Mode:            overall.ModeStacked,
		Resolution:      res,
		HasMyAffiliate:  len(ma.rows) > 0,
		HasDynamicWorks: len(dw.rows) > 0,
		ActiveClients:   chart.ActiveClientsStacked(ma.rows, dw.rows),
		Users:           chart.UsersStacked(ma.rows, dw.rows),
	}, nil
}

func (uc *implUseCase) single(ctx context.Context, res datasource.Resolution) (overall.OverviewOutput, error) {
	source := res.Source
	if source == model.SourceCombined {
		// combined without stacking means the anchor file alone
		source = model.SourceNone
	}
	data, err := uc.api.GetAnalysisData(ctx, res.FileID, analysisapi.AnalysisQuery{}, source)
	if err != nil {
		uc.l.Warnf(ctx, "overall.usecase.single: GetAnalysisData failed: %v", err)
		return overall.OverviewOutput{}, err
	}

	rows := uc.window.FilterMonthly(data.KPIs.MonthlyKPIs)
	return overall.OverviewOutput{
		Mode:            overall.ModeSingle,
		Resolution:      res,
		HasMyAffiliate:  res.Source == model.SourceMyAffiliate && len(rows) > 0,
		HasDynamicWorks: res.Source == model.SourceDynamicWorks && len(rows) > 0,
		Metrics:         chart.SourceMetricsLine(rows, sourceLabel(res.Source)),
	}, nil
}

func (uc *implUseCase) fetchMonthly(ctx context.Context, fileID string, source model.DataSource) sourceData {
	data, err := uc.api.GetAnalysisData(ctx, fileID, analysisapi.AnalysisQuery{}, source)
	if err != nil {
		return sourceData{err: err}
	}
	return sourceData{rows: uc.window.FilterMonthly(data.KPIs.MonthlyKPIs)}
}

func sourceLabel(s model.DataSource) string {
	switch s {
	case model.SourceMyAffiliate:
		return chart.LabelMyAffiliate
	case model.SourceDynamicWorks:
		return chart.LabelDynamicWorks
	default:
		return ""
	}
}
