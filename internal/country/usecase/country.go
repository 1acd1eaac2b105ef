package usecase

import (
	"context"
	"strings"

	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/country"
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/generation"
)

// Analyze lists countries with positive in-window revenue and charts the selected one.
// In combined mode the query is anchored on the dynamicWorks file.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input country.AnalyzeInput) (country.AnalyzeOutput, error) {
	_, res, err := datasource.Load(ctx, uc.sessions, sc, input.Source, datasource.PageCountry)
	if err != nil {
		return country.AnalyzeOutput{}, err
	}

	key := generation.Key(sc.SessionID, string(datasource.PageCountry))
	data, err := generation.Guard(ctx, uc.tracker, key,
		func(ctx context.Context) (analysisapi.AnalysisResult, error) {
			return uc.api.GetAnalysisData(ctx, res.FileID, analysisapi.AnalysisQuery{}, res.Source)
		})
	if err != nil {
		uc.l.Warnf(ctx, "country.usecase.Analyze: GetAnalysisData failed: %v", err)
		return country.AnalyzeOutput{}, err
	}

	rows := data.PerformanceAnalysis.CountryRevenueTrends
	totals := uc.window.CountryTotals(rows)
	if len(totals) == 0 {
		return country.AnalyzeOutput{}, country.ErrNoPositiveCountries
	}

	selected, err := pickCountry(totals, input.Country)
	if err != nil {
		return country.AnalyzeOutput{}, err
	}

	return country.AnalyzeOutput{
		Resolution: res,
		Countries:  chart.SearchCountries(totals, input.Search),
		Retained:   len(totals),
		Selected:   selected,
		Chart:      uc.window.CountrySeries(rows, selected),
	}, nil
}

// pickCountry returns the requested country, or the first one by name when
// none is requested. The match is case-insensitive and yields the stored spelling.
func pickCountry(totals []chart.CountryTotal, requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return totals[0].Country, nil
	}
	for _, t := range totals {
		if strings.EqualFold(t.Country, requested) {
			return t.Country, nil
		}
	}
	return "", country.ErrCountryNotFound
}
