package http

import (
	"partner-dashboard-srv/internal/chart"
	"partner-dashboard-srv/internal/country"
	"partner-dashboard-srv/internal/model"
)

type analyzeReq struct {
	Source  string `form:"source"`
	Search  string `form:"search"`
	Country string `form:"country"`
}

func (r analyzeReq) toInput() (country.AnalyzeInput, error) {
	src, err := model.ParseDataSource(r.Source)
	if err != nil {
		return country.AnalyzeInput{}, err
	}
	return country.AnalyzeInput{Source: src, Search: r.Search, Country: r.Country}, nil
}

type analyzeResp struct {
	Source    model.DataSource     `json:"source"`
	FileID    string               `json:"fileId"`
	Countries []chart.CountryTotal `json:"countries"`
	Retained  int                  `json:"retained"`
	Selected  string               `json:"selectedCountry"`
	Chart     chart.Chart          `json:"chart"`
}

func (h *handler) newAnalyzeResp(o country.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Source:    o.Resolution.Source,
		FileID:    o.Resolution.FileID,
		Countries: o.Countries,
		Retained:  o.Retained,
		Selected:  o.Selected,
		Chart:     o.Chart,
	}
}
