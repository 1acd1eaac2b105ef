package chart

import (
	"sort"
	"strings"

	"partner-dashboard-srv/pkg/analysisapi"
)

// CountryTotals sums revenue per country over the window and keeps only
// strictly positive totals, sorted by country name.
func (w Window) CountryTotals(rows []analysisapi.CountryRevenue) []CountryTotal {
	sums := make(map[string]float64)
	var order []string
	for _, r := range rows {
		if !w.ContainsLabel(r.Month) {
			continue
		}
		if _, ok := sums[r.Country]; !ok {
			order = append(order, r.Country)
		}
		sums[r.Country] += r.DerivRevenue
	}

	out := make([]CountryTotal, 0, len(order))
	for _, c := range order {
		if sums[c] > 0 {
			out = append(out, CountryTotal{Country: c, Revenue: sums[c]})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Country < out[j].Country
	})
	return out
}

// SearchCountries is a case-insensitive substring match over totals.
func SearchCountries(totals []CountryTotal, term string) []CountryTotal {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return totals
	}
	out := make([]CountryTotal, 0, len(totals))
	for _, t := range totals {
		if strings.Contains(strings.ToLower(t.Country), term) {
			out = append(out, t)
		}
	}
	return out
}

// CountrySeries charts one country's in-window monthly revenue.
func (w Window) CountrySeries(rows []analysisapi.CountryRevenue, country string) Chart {
	title := country + " Revenue"
	var picked []analysisapi.CountryRevenue
	for _, r := range rows {
		if r.Country == country && w.ContainsLabel(r.Month) {
			picked = append(picked, r)
		}
	}
	if len(picked) == 0 {
		return emptyChart(KindLine, title)
	}

	sort.SliceStable(picked, func(i, j int) bool {
		return monthLess(picked[i].Month, picked[j].Month)
	})

	labels := make([]string, len(picked))
	data := make([]float64, len(picked))
	for i, r := range picked {
		labels[i] = r.Month
		data[i] = r.DerivRevenue
	}

	return Chart{
		Kind:   KindLine,
		Title:  title,
		Labels: labels,
		Datasets: []Dataset{{
			Label:           title,
			Data:            data,
			BorderColor:     colorGoogle.border,
			BackgroundColor: colorGoogle.fill,
			Tension:         lineTension,
			BorderWidth:     2,
			Fill:            true,
		}},
	}
}
