package http

import (
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/partner"
	"partner-dashboard-srv/pkg/util"
)

type listReq struct {
	Source    string `form:"source"`
	Tab       string `form:"tab"`
	Preset    string `form:"preset"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

func (r listReq) toInput() (partner.ListInput, error) {
	src, err := model.ParseDataSource(r.Source)
	if err != nil {
		return partner.ListInput{}, err
	}
	return partner.ListInput{
		Source:    src,
		Tab:       partner.Tab(r.Tab),
		Preset:    r.Preset,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}, nil
}

type partnerResp struct {
	PartnerID                string  `json:"partnerId"`
	Country                  string  `json:"country"`
	Region                   string  `json:"region"`
	PositiveCommissionMonths float64 `json:"positiveCommissionMonths"`
	TotalCommissionsReceived float64 `json:"totalCommissionsReceived"`
	DerivRevenue             float64 `json:"derivRevenue"`
}

type dateRangeResp struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Preset    string `json:"preset"`
}

type listResp struct {
	Source   model.DataSource `json:"source"`
	FileID   string           `json:"fileId"`
	Tab      string           `json:"tab"`
	Range    dateRangeResp    `json:"dateRange"`
	Partners []partnerResp    `json:"partners"`
}

func (h *handler) newListResp(o partner.ListOutput) listResp {
	return listResp{
		Source: o.Resolution.Source,
		FileID: o.Resolution.FileID,
		Tab:    string(o.Tab),
		Range: dateRangeResp{
			StartDate: o.Range.StartDate,
			EndDate:   o.Range.EndDate,
			Preset:    o.Range.Preset,
		},
		Partners: util.MapSlice(o.Partners, func(p partner.Partner) partnerResp {
			return partnerResp{
				PartnerID:                p.PartnerID,
				Country:                  p.Country,
				Region:                   p.Region,
				PositiveCommissionMonths: p.PositiveCommissionMonths,
				TotalCommissionsReceived: p.TotalCommissionsReceived,
				DerivRevenue:             p.DerivRevenue,
			}
		}),
	}
}
