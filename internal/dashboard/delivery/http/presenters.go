package http

import (
	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/dashboard"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/util"
)

type sourceReq struct {
	Source string `form:"source"`
}

type kpiCardResp struct {
	Title  string  `json:"title"`
	Value  float64 `json:"value"`
	Format string  `json:"format"`
}

type monthlyRowResp struct {
	Month              string  `json:"month"`
	ExpectedRevenue    float64 `json:"expectedRevenue"`
	DerivRevenue       float64 `json:"derivRevenue"`
	PartnerCommissions float64 `json:"partnerCommissions"`
	TotalDeposits      float64 `json:"totalDeposits"`
	ActiveClients      float64 `json:"activeClients"`
	FTT                float64 `json:"ftt"`
	ActivePartners     float64 `json:"activePartners"`
}

type dashboardResp struct {
	Source        model.DataSource `json:"source"`
	FileID        string           `json:"fileId"`
	KPIs          []kpiCardResp    `json:"kpis"`
	Monthly       []monthlyRowResp `json:"monthlyKpis"`
	RevenueChart  chart.Chart      `json:"revenueChart"`
	RegionalChart chart.Chart      `json:"regionalChart"`
}

const (
	formatCurrency = "currency"
	formatNumber   = "number"
)

func (h *handler) newDashboardResp(o dashboard.DashboardOutput) dashboardResp {
	t := o.Totals
	return dashboardResp{
		Source: o.Resolution.Source,
		FileID: o.Resolution.FileID,
		KPIs: []kpiCardResp{
			{Title: "Expected Revenue", Value: t.ExpectedRevenue, Format: formatCurrency},
			{Title: "Deriv Revenue", Value: t.DerivRevenue, Format: formatCurrency},
			{Title: "Partner Commissions", Value: t.PartnerCommissions, Format: formatCurrency},
			{Title: "Total Deposits", Value: t.TotalDeposits, Format: formatCurrency},
			{Title: "First-Time Traders", Value: t.FTT, Format: formatNumber},
		},
		Monthly: util.MapSlice(o.Monthly, func(m analysisapi.MonthlyKPI) monthlyRowResp {
			return monthlyRowResp{
				Month:              m.Month,
				ExpectedRevenue:    m.ExpectedRevenue,
				DerivRevenue:       m.DerivRevenue,
				PartnerCommissions: m.PartnerCommissions,
				TotalDeposits:      m.TotalDeposits,
				ActiveClients:      m.ActiveClients,
				FTT:                m.FTT,
				ActivePartners:     m.ActivePartners,
			}
		}),
		RevenueChart:  o.RevenueChart,
		RegionalChart: o.RegionalChart,
	}
}

type topPartnerReq struct {
	Source string `json:"source"`
	Metric string `json:"metric"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
}

type topPartnerResp struct {
	Found     bool    `json:"found"`
	PartnerID string  `json:"partnerId,omitempty"`
	Country   string  `json:"country,omitempty"`
	Region    string  `json:"region,omitempty"`
	Metric    string  `json:"metric,omitempty"`
	Value     float64 `json:"value,omitempty"`
	Year      int     `json:"year,omitempty"`
	Month     int     `json:"month,omitempty"`
	Message   string  `json:"message,omitempty"`
}

func (h *handler) newTopPartnerResp(tp analysisapi.TopPartner) topPartnerResp {
	if !tp.Found() {
		return topPartnerResp{Message: tp.Message}
	}
	return topPartnerResp{
		Found:     true,
		PartnerID: tp.PartnerID,
		Country:   tp.Country,
		Region:    tp.Region,
		Metric:    tp.Metric,
		Value:     tp.Value,
		Year:      tp.Year,
		Month:     tp.Month,
	}
}

type teamRegionsResp struct {
	Regions []string `json:"regions"`
}
