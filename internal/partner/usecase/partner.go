package usecase

import (
	"context"

	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/partner"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/generation"
	"partner-dashboard-srv/pkg/util"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input partner.ListInput) (partner.ListOutput, error) {
	tab, err := parseTab(input.Tab)
	if err != nil {
		return partner.ListOutput{}, err
	}
	rng, err := uc.resolveRange(input)
	if err != nil {
		return partner.ListOutput{}, err
	}

	_, res, err := datasource.Load(ctx, uc.sessions, sc, input.Source, datasource.PagePartner)
	if err != nil {
		return partner.ListOutput{}, err
	}

	key := generation.Key(sc.SessionID, string(datasource.PagePartner))
	data, err := generation.Guard(ctx, uc.tracker, key,
		func(ctx context.Context) (analysisapi.AnalysisResult, error) {
			return uc.api.GetAnalysisData(ctx, res.FileID, analysisapi.AnalysisQuery{
				StartDate: rng.StartDate,
				EndDate:   rng.EndDate,
				Preset:    rng.Preset,
			}, res.Source)
		})
	if err != nil {
		uc.l.Warnf(ctx, "partner.usecase.List: GetAnalysisData failed: %v", err)
		return partner.ListOutput{}, err
	}

	return partner.ListOutput{
		Resolution: res,
		Tab:        tab,
		Range:      rng,
		Partners:   util.MapSlice(rowsFor(tab, data.PerformanceAnalysis), toPartner),
	}, nil
}

func parseTab(t partner.Tab) (partner.Tab, error) {
	switch t {
	case "":
		return partner.TabPositive, nil
	case partner.TabPositive, partner.TabTop, partner.TabUnderperforming:
		return t, nil
	default:
		return "", partner.ErrInvalidTab
	}
}

func rowsFor(tab partner.Tab, pa analysisapi.PerformanceAnalysis) []analysisapi.PartnerRow {
	switch tab {
	case partner.TabTop:
		return pa.TopPartnersByRevenue
	case partner.TabUnderperforming:
		return pa.UnderperformingPartners
	default:
		return pa.PartnersWithPositiveCommissions
	}
}

func toPartner(r analysisapi.PartnerRow) partner.Partner {
	return partner.Partner{
		PartnerID:                r.PartnerID.String(),
		Country:                  orNotAvailable(r.Country),
		Region:                   orNotAvailable(r.Region),
		PositiveCommissionMonths: r.PositiveCommissionMonths,
		TotalCommissionsReceived: r.TotalCommissionsReceived,
		DerivRevenue:             r.DerivRevenue,
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return partner.NotAvailable
	}
	return s
}
