package overall

import (
	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
)

// Mode says which overview was built.
type Mode string

const (
	// ModeStacked stacks both sources month by month.
	ModeStacked Mode = "stacked"
	// ModeSingle draws every metric of one source on a line chart.
	ModeSingle Mode = "single"
)

// DefaultCompareMetrics are compared when the caller names none.
var DefaultCompareMetrics = []string{
	"Deriv Revenue",
	"Partner Commissions",
	"Total Deposits",
	"Active Clients",
}

type OverviewInput struct {
	Source model.DataSource
}

type OverviewOutput struct {
	Mode       Mode
	Resolution datasource.Resolution
	// HasMyAffiliate and HasDynamicWorks report which sources contributed rows.
	HasMyAffiliate  bool
	HasDynamicWorks bool
	// Stacked mode
	ActiveClients chart.Chart
	Users         chart.Chart
	// Single mode
	Metrics chart.Chart
}

type CompareInput struct {
	Metrics   []string
	Timeframe string
}

// MetricComparison is one grouped bar chart.
type MetricComparison struct {
	Metric string
	Chart  chart.Chart
}

type CompareOutput struct {
	Months      []string
	Comparisons []MetricComparison
}
