package analysisapi

import (
	"encoding/json"
	"io"
	"strconv"

	"partner-dashboard-srv/internal/model"
	pkghttp "partner-dashboard-srv/pkg/http"
)

// Config holds configuration for the analysis service client.
type Config struct {
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// analysisImpl implements IAnalysis.
type analysisImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}

// UploadInput is a spreadsheet to hand to the service.
type UploadInput struct {
	Filename string
	Reader   io.Reader
	Source   model.DataSource
}

// UploadOutput carries the identifier the service assigned.
type UploadOutput struct {
	FileID string `json:"fileId"`
}

// AnalysisQuery is the optional date range forwarded with an analysis fetch.
type AnalysisQuery struct {
	StartDate string
	EndDate   string
	Preset    string
}

// AnalysisResult is the pre-computed analysis of one uploaded file.
type AnalysisResult struct {
	KPIs                KPIs                `json:"kpis"`
	PerformanceAnalysis PerformanceAnalysis `json:"performance_analysis"`
}

type KPIs struct {
	TotalKPIs   TotalKPIs    `json:"total_kpis"`
	MonthlyKPIs []MonthlyKPI `json:"monthly_kpis"`
}

type TotalKPIs struct {
	ExpectedRevenue    float64 `json:"total_expected_revenue"`
	DerivRevenue       float64 `json:"total_deriv_revenue"`
	PartnerCommissions float64 `json:"total_partner_commissions"`
	TotalDeposits      float64 `json:"total_total_deposits"`
	ActiveClients      float64 `json:"total_active_clients"`
	FTT                float64 `json:"total_ftt"`
}

// MonthlyKPI is one month of KPIs; Month is "YYYY-MM".
type MonthlyKPI struct {
	Month              string  `json:"Month"`
	ExpectedRevenue    float64 `json:"monthly_expected_revenue"`
	DerivRevenue       float64 `json:"monthly_deriv_revenue"`
	PartnerCommissions float64 `json:"monthly_partner_commissions"`
	TotalDeposits      float64 `json:"monthly_total_deposits"`
	ActiveClients      float64 `json:"monthly_active_clients"`
	FTT                float64 `json:"monthly_ftt"`
	ActivePartners     float64 `json:"monthly_active_partners"`
}

type PerformanceAnalysis struct {
	CountryRevenueTrends            []CountryRevenue  `json:"country_revenue_trends"`
	RegionalRevenueTrends           []RegionalRevenue `json:"regional_revenue_trends"`
	PartnersWithPositiveCommissions []PartnerRow      `json:"partners_with_positive_commissions"`
	UnderperformingPartners         []PartnerRow      `json:"underperforming_partners"`
	TopPartnersByRevenue            []PartnerRow      `json:"top_partners_by_revenue"`
}

type CountryRevenue struct {
	Country      string  `json:"Country"`
	Month        string  `json:"Month"`
	DerivRevenue float64 `json:"Deriv Revenue"`
}

type RegionalRevenue struct {
	Region       string  `json:"Region"`
	Month        string  `json:"Month"`
	DerivRevenue float64 `json:"Deriv Revenue"`
}

type PartnerRow struct {
	PartnerID                FlexString `json:"Partner ID"`
	Country                  string     `json:"Country"`
	Region                   string     `json:"Region"`
	PositiveCommissionMonths float64    `json:"PositiveCommissionMonths"`
	TotalCommissionsReceived float64    `json:"TotalCommissionsReceived"`
	DerivRevenue             float64    `json:"Deriv Revenue"`
}

// TopPartnerInput selects the best partner for a metric in a month.
type TopPartnerInput struct {
	FileID string
	Metric string
	Year   int
	Month  int
	Source model.DataSource
}

// TopPartner is either a partner record or, when nothing matched, only Message.
type TopPartner struct {
	PartnerID string  `json:"partnerId,omitempty"`
	Country   string  `json:"country,omitempty"`
	Region    string  `json:"region,omitempty"`
	Metric    string  `json:"metric,omitempty"`
	Value     float64 `json:"value"`
	Year      int     `json:"year,omitempty"`
	Month     int     `json:"month,omitempty"`
	Message   string  `json:"message,omitempty"`
}

// Found reports whether a partner record was returned.
func (t TopPartner) Found() bool {
	return t.Message == "" && t.PartnerID != ""
}

// ComparisonInput requests a side-by-side comparison of both sources.
type ComparisonInput struct {
	MyAffiliateID    string
	DynamicWorksID   string
	MetricsToCompare []string
	Timeframe        string
}

// ComparisonResult holds one series pair per metric over Months.
type ComparisonResult struct {
	Months  []string
	Metrics map[string]ComparisonSeries
}

type ComparisonSeries struct {
	MyAffiliate  []float64 `json:"myAffiliate"`
	DynamicWorks []float64 `json:"dynamicWorks"`
}

// ChatInput is a question plus the transcript that preceded it.
type ChatInput struct {
	FileID         string
	Query          string
	ChatHistory    []model.ChatMessage
	Source         model.DataSource
	MyAffiliateID  string
	DynamicWorksID string
}

type ChatOutput struct {
	Answer string `json:"answer"`
}

// FlexString decodes a JSON string or number into a string.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

func (f FlexString) String() string { return string(f) }

type errorBody struct {
	Error string `json:"error"`
}

type chatReq struct {
	FileID           string              `json:"fileId"`
	Query            string              `json:"query"`
	ChatHistory      []model.ChatMessage `json:"chat_history"`
	Source           string              `json:"source,omitempty"`
	MyAffiliateID    string              `json:"myAffiliateId,omitempty"`
	DynamicWorksID   string              `json:"dynamicWorksId,omitempty"`
	CombinedAnalysis bool                `json:"combinedAnalysis,omitempty"`
}

type topPartnerReq struct {
	FileID string `json:"fileId"`
	Metric string `json:"metric"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Source string `json:"source,omitempty"`
}

type comparisonReq struct {
	MyAffiliateID    string   `json:"myAffiliateId"`
	DynamicWorksID   string   `json:"dynamicWorksId"`
	MetricsToCompare []string `json:"metricsToCompare"`
	Timeframe        string   `json:"timeframe"`
}

type storedFileResp struct {
	FileID     string `json:"fileId"`
	Filename   string `json:"filename"`
	Source     string `json:"source"`
	UploadDate string `json:"uploadDate"`
}
