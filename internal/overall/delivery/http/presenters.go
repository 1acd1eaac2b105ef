package http

import (
	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/overall"
	"partner-dashboard-srv/pkg/util"
)

type overviewReq struct {
	Source string `form:"source"`
}

type overviewResp struct {
	Mode            string           `json:"mode"`
	Source          model.DataSource `json:"source"`
	HasMyAffiliate  bool             `json:"hasMyAffiliate"`
	HasDynamicWorks bool             `json:"hasDynamicWorks"`
	ActiveClients   *chart.Chart     `json:"activeClientsChart,omitempty"`
	Users           *chart.Chart     `json:"usersChart,omitempty"`
	Metrics         *chart.Chart     `json:"metricsChart,omitempty"`
}

func (h *handler) newOverviewResp(o overall.OverviewOutput) overviewResp {
	resp := overviewResp{
		Mode:            string(o.Mode),
		Source:          o.Resolution.Source,
		HasMyAffiliate:  o.HasMyAffiliate,
		HasDynamicWorks: o.HasDynamicWorks,
	}
	switch o.Mode {
	case overall.ModeStacked:
		resp.ActiveClients = &o.ActiveClients
		resp.Users = &o.Users
	case overall.ModeSingle:
		resp.Metrics = &o.Metrics
	}
	return resp
}

type compareReq struct {
	MetricsToCompare []string `json:"metricsToCompare"`
	Timeframe        string   `json:"timeframe"`
}

func (r compareReq) toInput() overall.CompareInput {
	return overall.CompareInput{Metrics: r.MetricsToCompare, Timeframe: r.Timeframe}
}

type comparisonResp struct {
	Metric string      `json:"metric"`
	Chart  chart.Chart `json:"chart"`
}

type compareResp struct {
	Months      []string         `json:"months"`
	Comparisons []comparisonResp `json:"comparisons"`
}

func (h *handler) newCompareResp(o overall.CompareOutput) compareResp {
	months := o.Months
	if months == nil {
		months = []string{}
	}
	return compareResp{
		Months: months,
		Comparisons: util.MapSlice(o.Comparisons, func(m overall.MetricComparison) comparisonResp {
			return comparisonResp{Metric: m.Metric, Chart: m.Chart}
		}),
	}
}
