package dashboard

import (
	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/analysisapi"
)

const DefaultMetric = "Deriv Revenue"

// Metrics the top-partner query accepts.
var Metrics = []string{
	"Deriv Revenue",
	"Expected Revenue",
	"Partner Commissions",
	"Total Deposits",
	"Active Clients",
	"FTT",
}

type GetDashboardInput struct {
	Source model.DataSource
}

type DashboardOutput struct {
	Resolution    datasource.Resolution
	Totals        analysisapi.TotalKPIs
	Monthly       []analysisapi.MonthlyKPI
	RevenueChart  chart.Chart
	RegionalChart chart.Chart
}

// TopPartnerInput leaves Metric, Year and Month zero to use the defaults.
type TopPartnerInput struct {
	Source model.DataSource
	Metric string
	Year   int
	Month  int
}

type TeamRegionsInput struct {
	Source model.DataSource
}
