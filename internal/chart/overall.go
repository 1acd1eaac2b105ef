package chart

import (
	"partner-dashboard-srv/pkg/analysisapi"
)

// UnionMonths is the chronological union of the month labels of both series.
func UnionMonths(ma, dw []analysisapi.MonthlyKPI) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rows := range [][]analysisapi.MonthlyKPI{ma, dw} {
		for _, r := range rows {
			if _, ok := seen[r.Month]; ok {
				continue
			}
			seen[r.Month] = struct{}{}
			out = append(out, r.Month)
		}
	}
	SortMonths(out)
	if out == nil {
		out = []string{}
	}
	return out
}

// ActiveClientsStacked stacks each source's active clients per month. A month
// missing from a source contributes 0.
func ActiveClientsStacked(ma, dw []analysisapi.MonthlyKPI) Chart {
	labels := UnionMonths(ma, dw)
	pick := func(r analysisapi.MonthlyKPI) float64 { return r.ActiveClients }

	return Chart{
		Kind:    KindBar,
		Title:   "Active Clients by Source",
		Labels:  labels,
		Stacked: true,
		Datasets: []Dataset{
			stackedDataset(LabelMyAffiliate, alignTo(labels, ma, pick), colorMA),
			stackedDataset(LabelDynamicWorks, alignTo(labels, dw, pick), colorDW),
		},
	}
}

// UsersStacked charts FTT and active partners, each summed over both sources.
func UsersStacked(ma, dw []analysisapi.MonthlyKPI) Chart {
	labels := UnionMonths(ma, dw)
	ftt := func(r analysisapi.MonthlyKPI) float64 { return r.FTT }
	partners := func(r analysisapi.MonthlyKPI) float64 { return r.ActivePartners }

	return Chart{
		Kind:    KindBar,
		Title:   "First-Time Traders and Active Partners",
		Labels:  labels,
		Stacked: true,
		Datasets: []Dataset{
			stackedDataset(LabelFTT, sum(alignTo(labels, ma, ftt), alignTo(labels, dw, ftt)), colorFTT),
			stackedDataset(LabelActivePartners, sum(alignTo(labels, ma, partners), alignTo(labels, dw, partners)), colorActive),
		},
	}
}

// SourceMetricsLine is the single-source overview: revenue, commissions,
// active clients and FTT on one line chart. rows must already be filtered and sorted.
func SourceMetricsLine(rows []analysisapi.MonthlyKPI, sourceLabel string) Chart {
	title := "Overall Performance"
	if sourceLabel != "" {
		title += " (" + sourceLabel + ")"
	}
	if len(rows) == 0 {
		return emptyChart(KindLine, title)
	}

	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.Month
	}

	metrics := []struct {
		label string
		pick  func(analysisapi.MonthlyKPI) float64
	}{
		{LabelDerivRevenue, func(r analysisapi.MonthlyKPI) float64 { return r.DerivRevenue }},
		{LabelPartnerCommissions, func(r analysisapi.MonthlyKPI) float64 { return r.PartnerCommissions }},
		{LabelActiveClients, func(r analysisapi.MonthlyKPI) float64 { return r.ActiveClients }},
		{"FTT", func(r analysisapi.MonthlyKPI) float64 { return r.FTT }},
	}

	datasets := make([]Dataset, len(metrics))
	for i, m := range metrics {
		data := make([]float64, len(rows))
		for j, r := range rows {
			data[j] = m.pick(r)
		}
		datasets[i] = lineDataset(m.label, data, metricLinePalette[i%len(metricLinePalette)])
	}

	return Chart{Kind: KindLine, Title: title, Labels: labels, Datasets: datasets}
}

// ComparisonBars draws one grouped bar chart for metric over months.
func ComparisonBars(title string, months []string, series analysisapi.ComparisonSeries) Chart {
	if months == nil {
		months = []string{}
	}
	return Chart{
		Kind:   KindBar,
		Title:  title,
		Labels: months,
		Datasets: []Dataset{
			barDataset(LabelMyAffiliate, padTo(series.MyAffiliate, len(months)), colorCmpMA),
			barDataset(LabelDynamicWorks, padTo(series.DynamicWorks, len(months)), colorCmpDW),
		},
	}
}

func alignTo(labels []string, rows []analysisapi.MonthlyKPI, pick func(analysisapi.MonthlyKPI) float64) []float64 {
	byMonth := make(map[string]float64, len(rows))
	for _, r := range rows {
		if _, ok := byMonth[r.Month]; !ok {
			byMonth[r.Month] = pick(r)
		}
	}
	out := make([]float64, len(labels))
	for i, l := range labels {
		out[i] = byMonth[l]
	}
	return out
}

func sum(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// padTo fills a short series with zeros so every label has a bar.
func padTo(v []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, v)
	return out
}

func stackedDataset(label string, data []float64, c colorPair) Dataset {
	return Dataset{
		Label:           label,
		Data:            data,
		BorderColor:     c.border,
		BackgroundColor: c.fill,
		BorderWidth:     1,
		Stack:           stackDefault,
	}
}

func barDataset(label string, data []float64, c colorPair) Dataset {
	return Dataset{
		Label:           label,
		Data:            data,
		BorderColor:     c.border,
		BackgroundColor: c.fill,
		BorderWidth:     1,
	}
}
