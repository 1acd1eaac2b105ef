package partner

import (
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
)

type Tab string

const (
	TabPositive        Tab = "positive"
	TabTop             Tab = "top"
	TabUnderperforming Tab = "underperforming"
)

const (
	PresetAll    = "all"
	PresetCustom = "custom"

	// AllStartDate is the lower bound sent for the "all" preset.
	AllStartDate = "2000-01-01"

	// NotAvailable fills a missing country or region.
	NotAvailable = "N/A"
)

type ListInput struct {
	Source model.DataSource
	Tab    Tab
	// Preset is "all" or a month such as "oct-2024". Explicit dates override it.
	Preset    string
	StartDate string
	EndDate   string
}

// DateRange is what was forwarded to the analysis service.
type DateRange struct {
	StartDate string
	EndDate   string
	Preset    string
}

type Partner struct {
	PartnerID                string
	Country                  string
	Region                   string
	PositiveCommissionMonths float64
	TotalCommissionsReceived float64
	DerivRevenue             float64
}

type ListOutput struct {
	Resolution datasource.Resolution
	Tab        Tab
	Range      DateRange
	Partners   []Partner
}
