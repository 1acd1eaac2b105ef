package country

import (
	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
)

type AnalyzeInput struct {
	Source model.DataSource
	// Search filters the selectable list; it never changes the selection.
	Search string
	// Country selects the charted country. Empty picks the first country by name.
	Country string
}

type AnalyzeOutput struct {
	Resolution datasource.Resolution
	// Countries is the search-filtered list of countries with positive revenue.
	Countries []chart.CountryTotal
	// Retained counts every country with positive revenue, before search.
	Retained int
	Selected string
	Chart    chart.Chart
}
