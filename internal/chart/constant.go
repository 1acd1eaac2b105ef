package chart

const (
	LabelDerivRevenue       = "Deriv Revenue"
	LabelExpectedRevenue    = "Expected Revenue"
	LabelPartnerCommissions = "Partner Commissions"
	LabelActiveClients      = "Active Clients"
	LabelFTT                = "First-Time Traders (FTT)"
	LabelActivePartners     = "Active Partners"
	LabelMyAffiliate        = "MyAffiliate"
	LabelDynamicWorks       = "DynamicWorks"

	stackDefault = "Stack 0"
	lineTension  = 0.3
)

// regionPalette cycles for regional datasets.
var regionPalette = []string{
	"rgba(255, 99, 132, 0.8)",
	"rgba(54, 162, 235, 0.8)",
	"rgba(255, 206, 86, 0.8)",
	"rgba(75, 192, 192, 0.8)",
	"rgba(153, 102, 255, 0.8)",
	"rgba(255, 159, 64, 0.8)",
	"rgba(76, 201, 240, 0.8)",
	"rgba(67, 97, 238, 0.8)",
	"rgba(247, 37, 133, 0.8)",
	"rgba(58, 134, 255, 0.8)",
	"rgba(131, 56, 236, 0.8)",
	"rgba(251, 133, 0, 0.8)",
}

type colorPair struct {
	border string
	fill   string
}

var (
	colorPink   = colorPair{"rgb(255, 99, 132)", "rgba(255, 99, 132, 0.5)"}
	colorBlue   = colorPair{"rgb(53, 162, 235)", "rgba(53, 162, 235, 0.5)"}
	colorGoogle = colorPair{"rgba(66, 133, 244, 1)", "rgba(66, 133, 244, 0.2)"}
	colorMA     = colorPair{"rgb(66, 133, 244)", "rgba(66, 133, 244, 0.7)"}
	colorDW     = colorPair{"rgb(15, 157, 88)", "rgba(15, 157, 88, 0.9)"}
	colorFTT    = colorPair{"rgb(219, 68, 55)", "rgba(219, 68, 55, 0.7)"}
	colorActive = colorPair{"rgb(244, 180, 0)", "rgba(244, 180, 0, 0.7)"}
	colorCmpMA  = colorPair{"rgba(54, 162, 235, 1)", "rgba(54, 162, 235, 0.6)"}
	colorCmpDW  = colorPair{"rgba(255, 99, 132, 1)", "rgba(255, 99, 132, 0.6)"}
)

// metricLinePalette colours the single-source multi-metric chart.
var metricLinePalette = []colorPair{colorPink, colorBlue, colorMA, colorFTT}
