package chart

import (
	"testing"

	"partner-dashboard-srv/pkg/analysisapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionalBars(t *testing.T) {
	w := defaultWindow(t)

	rows := []analysisapi.RegionalRevenue{
		{Region: "Africa", Month: "2024-11", DerivRevenue: 10},
		{Region: "Asia", Month: "2024-10", DerivRevenue: 0},
		{Region: "Africa", Month: "2024-10", DerivRevenue: 5},
		{Region: "Asia", Month: "2024-11", DerivRevenue: 0},
		{Region: "Europe", Month: "2024-11", DerivRevenue: 7},
		{Region: "Europe", Month: "2025-06", DerivRevenue: 100},
	}

	c := w.RegionalBars(rows)
	assert.Equal(t, []string{"2024-10", "2024-11"}, c.Labels)
	require.Len(t, c.Datasets, 2)
	assert.Equal(t, "Africa", c.Datasets[0].Label)
	assert.Equal(t, []float64{5, 10}, c.Datasets[0].Data)
	assert.Equal(t, "Europe", c.Datasets[1].Label)
	assert.Equal(t, []float64{0, 7}, c.Datasets[1].Data)
	assert.Equal(t, regionPalette[2], c.Datasets[1].BackgroundColor)
	assert.Equal(t, "rgba(255, 206, 86, 1)", c.Datasets[1].BorderColor)
}

func TestRevenueLine(t *testing.T) {
	c := RevenueLine([]analysisapi.MonthlyKPI{
		{Month: "2024-10", DerivRevenue: 1, ExpectedRevenue: 2},
		{Month: "2024-11", DerivRevenue: 3, ExpectedRevenue: 4},
	})
	require.Len(t, c.Datasets, 2)
	assert.Equal(t, LabelDerivRevenue, c.Datasets[0].Label)
	assert.Equal(t, []float64{1, 3}, c.Datasets[0].Data)
	assert.Equal(t, LabelExpectedRevenue, c.Datasets[1].Label)
	assert.Equal(t, []float64{2, 4}, c.Datasets[1].Data)

	assert.True(t, RevenueLine(nil).Empty())
}

func TestCountryTotals(t *testing.T) {
	w := defaultWindow(t)

	rows := []analysisapi.CountryRevenue{
		{Country: "Kenya", Month: "2024-10", DerivRevenue: 5},
		{Country: "Kenya", Month: "2024-11", DerivRevenue: 10},
		{Country: "Brazil", Month: "2024-10", DerivRevenue: 20},
		{Country: "Chile", Month: "2024-10", DerivRevenue: 0},
		{Country: "Peru", Month: "2024-10", DerivRevenue: 5},
		{Country: "Peru", Month: "2024-11", DerivRevenue: -5},
		{Country: "Spain", Month: "2025-09", DerivRevenue: 1000},
		{Country: "Zambia", Month: "2025-01", DerivRevenue: 100},
		{Country: "Angola", Month: "2025-01", DerivRevenue: 10},
	}

	got := w.CountryTotals(rows)
	assert.Equal(t, []CountryTotal{
		{Country: "Angola", Revenue: 10},
		{Country: "Brazil", Revenue: 20},
		{Country: "Kenya", Revenue: 15},
		{Country: "Zambia", Revenue: 100},
	}, got)
}

func TestSearchCountries(t *testing.T) {
	totals := []CountryTotal{{Country: "Brazil"}, {Country: "Kenya"}, {Country: "Bahrain"}}

	assert.Equal(t, []CountryTotal{{Country: "Brazil"}, {Country: "Bahrain"}}, SearchCountries(totals, "  RA "))
	assert.Equal(t, totals, SearchCountries(totals, ""))
	assert.Empty(t, SearchCountries(totals, "zz"))
}

func TestCountrySeries(t *testing.T) {
	w := defaultWindow(t)

	rows := []analysisapi.CountryRevenue{
		{Country: "Kenya", Month: "2024-12", DerivRevenue: 3},
		{Country: "Kenya", Month: "2024-10", DerivRevenue: 1},
		{Country: "Brazil", Month: "2024-11", DerivRevenue: 9},
	}

	c := w.CountrySeries(rows, "Kenya")
	assert.Equal(t, []string{"2024-10", "2024-12"}, c.Labels)
	require.Len(t, c.Datasets, 1)
	assert.Equal(t, "Kenya Revenue", c.Datasets[0].Label)
	assert.Equal(t, []float64{1, 3}, c.Datasets[0].Data)
}

func TestActiveClientsStacked(t *testing.T) {
	ma := []analysisapi.MonthlyKPI{
		{Month: "2024-10", ActiveClients: 10},
		{Month: "2024-12", ActiveClients: 30},
	}
	dw := []analysisapi.MonthlyKPI{
		{Month: "2024-11", ActiveClients: 5},
		{Month: "2024-12", ActiveClients: 6},
	}

	c := ActiveClientsStacked(ma, dw)
	assert.True(t, c.Stacked)
	assert.Equal(t, []string{"2024-10", "2024-11", "2024-12"}, c.Labels)
	require.Len(t, c.Datasets, 2)
	assert.Equal(t, []float64{10, 0, 30}, c.Datasets[0].Data)
	assert.Equal(t, []float64{0, 5, 6}, c.Datasets[1].Data)
	for _, ds := range c.Datasets {
		assert.Len(t, ds.Data, len(c.Labels))
	}
}

func TestUsersStacked(t *testing.T) {
	ma := []analysisapi.MonthlyKPI{{Month: "2024-10", FTT: 1, ActivePartners: 2}}
	dw := []analysisapi.MonthlyKPI{
		{Month: "2024-10", FTT: 3, ActivePartners: 4},
		{Month: "2024-11", FTT: 5, ActivePartners: 6},
	}

	c := UsersStacked(ma, dw)
	require.Len(t, c.Datasets, 2)
	assert.Equal(t, LabelFTT, c.Datasets[0].Label)
	assert.Equal(t, []float64{4, 5}, c.Datasets[0].Data)
	assert.Equal(t, []float64{6, 6}, c.Datasets[1].Data)
}

func TestUnionMonthsEmpty(t *testing.T) {
	assert.Equal(t, []string{}, UnionMonths(nil, nil))
}

func TestSourceMetricsLine(t *testing.T) {
	c := SourceMetricsLine([]analysisapi.MonthlyKPI{
		{Month: "2024-10", DerivRevenue: 1, PartnerCommissions: 2, ActiveClients: 3, FTT: 4},
	}, LabelDynamicWorks)

	assert.Equal(t, "Overall Performance (DynamicWorks)", c.Title)
	require.Len(t, c.Datasets, 4)
	assert.Equal(t, []float64{2}, c.Datasets[1].Data)
	assert.Equal(t, []float64{4}, c.Datasets[3].Data)
}

func TestComparisonBars(t *testing.T) {
	c := ComparisonBars("Revenue", []string{"2024-10", "2024-11"}, analysisapi.ComparisonSeries{
		MyAffiliate:  []float64{1, 2},
		DynamicWorks: []float64{3},
	})

	require.Len(t, c.Datasets, 2)
	assert.Equal(t, []float64{1, 2}, c.Datasets[0].Data)
	assert.Equal(t, []float64{3, 0}, c.Datasets[1].Data)
}
