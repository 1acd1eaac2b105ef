package analysisapi

import "time"

const (
	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://127.0.0.1:5000"
	// DefaultTimeout is the default HTTP client timeout for the analysis service.
	DefaultTimeout = 60 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 2
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 500 * time.Millisecond
	// DefaultTimeframe is the comparison timeframe used when none is given.
	DefaultTimeframe = "monthly"

	// uploadDateLayout is the format the service uses for uploadDate.
	uploadDateLayout = "2006-01-02 15:04:05"
)

// API paths.
const (
	PathUpload          = "/upload"
	PathAnalysisData    = "/get-analysis-data"
	PathTopPartner      = "/get-top-partner"
	PathComparisonData  = "/get-comparison-data"
	PathChat            = "/chat"
	PathTeamRegions     = "/get-team-regions"
	PathLoadStoredFiles = "/load-stored-files"
)
