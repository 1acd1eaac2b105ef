package usecase

import (
	"context"
	"strings"

	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/overall"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/generation"
)

// Compare asks the service for a month-by-month comparison of both sources.
// Metrics the service does not know are left out of the result.
func (uc *implUseCase) Compare(ctx context.Context, sc model.Scope, input overall.CompareInput) (overall.CompareOutput, error) {
	state, err := uc.sessions.Get(ctx, sc)
	if err != nil {
		return overall.CompareOutput{}, err
	}
	if !state.HasBoth() {
		return overall.CompareOutput{}, analysisapi.ErrComparisonNeedsBoth
	}

	metrics := input.Metrics
	if len(metrics) == 0 {
		metrics = overall.DefaultCompareMetrics
	}

	key := generation.Key(sc.SessionID, string(datasource.PageOverall), "comparison")
	result, err := generation.Guard(ctx, uc.tracker, key,
		func(ctx context.Context) (analysisapi.ComparisonResult, error) {
			return uc.api.GetComparisonData(ctx, analysisapi.ComparisonInput{
				MyAffiliateID:    state.MyAffiliateID,
				DynamicWorksID:   state.DynamicWorksID,
				MetricsToCompare: metrics,
				Timeframe:        input.Timeframe,
			})
		})
	if err != nil {
		uc.l.Warnf(ctx, "overall.usecase.Compare: GetComparisonData failed: %v", err)
		return overall.CompareOutput{}, err
	}

	out := overall.CompareOutput{
		Months:      result.Months,
		Comparisons: make([]overall.MetricComparison, 0, len(metrics)),
	}
	for _, m := range metrics {
		series, ok := result.Metrics[metricKey(m)]
		if !ok {
			continue
		}
		out.Comparisons = append(out.Comparisons, overall.MetricComparison{
			Metric: m,
			Chart:  chart.ComparisonBars(m, result.Months, series),
		})
	}
	return out, nil
}

// metricKey is how the service names a metric in its response.
func metricKey(metric string) string {
	return strings.ToLower(strings.ReplaceAll(metric, " ", ""))
}
