package analysisapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"partner-dashboard-srv/internal/model"
	pkghttp "partner-dashboard-srv/pkg/http"
)

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	})
}

func trimSlash(s string) string {
	return strings.TrimRight(s, "/")
}

// Upload sends a spreadsheet as multipart fields "file" and "source".
func (c *analysisImpl) Upload(ctx context.Context, input UploadInput) (UploadOutput, error) {
	if !input.Source.IsUploadSource() {
		return UploadOutput{}, ErrInvalidSource
	}

	form := pkghttp.MultipartForm{
		Fields: map[string]string{"source": input.Source.String()},
		Files: []pkghttp.MultipartFile{{
			FieldName: "file",
			FileName:  input.Filename,
			Reader:    input.Reader,
		}},
	}
	body, status, err := c.httpClient.PostMultipart(ctx, c.baseURL+PathUpload, form, nil)
	if err != nil {
		return UploadOutput{}, &transportError{Op: "upload", Err: err}
	}

	var out UploadOutput
	if err := decode(body, status, &out); err != nil {
		return UploadOutput{}, err
	}
	if out.FileID == "" {
		return UploadOutput{}, &APIError{StatusCode: status, Message: "Upload response did not include a file id"}
	}
	return out, nil
}

// GetAnalysisData fetches the analysis of fileID. The source param is sent only for a single upload source.
func (c *analysisImpl) GetAnalysisData(ctx context.Context, fileID string, query AnalysisQuery, source model.DataSource) (AnalysisResult, error) {
	if fileID == "" {
		return AnalysisResult{}, ErrFileIDRequired
	}

	params := url.Values{}
	setIfNotEmpty(params, "startDate", query.StartDate)
	setIfNotEmpty(params, "endDate", query.EndDate)
	setIfNotEmpty(params, "preset", query.Preset)
	if source.IsUploadSource() {
		params.Set("source", source.String())
	}

	u := fmt.Sprintf("%s%s/%s", c.baseURL, PathAnalysisData, url.PathEscape(fileID))
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	body, status, err := c.httpClient.Get(ctx, u, nil)
	if err != nil {
		return AnalysisResult{}, &transportError{Op: "get analysis data", Err: err}
	}

	var out AnalysisResult
	if err := decode(body, status, &out); err != nil {
		return AnalysisResult{}, err
	}
	return out, nil
}

// GetTopPartner returns the best partner for a metric in a month.
func (c *analysisImpl) GetTopPartner(ctx context.Context, input TopPartnerInput) (TopPartner, error) {
	if input.FileID == "" {
		return TopPartner{}, ErrFileIDRequired
	}

	req := topPartnerReq{
		FileID: input.FileID,
		Metric: input.Metric,
		Year:   input.Year,
		Month:  input.Month,
	}
	if input.Source.IsUploadSource() {
		req.Source = input.Source.String()
	}

	body, status, err := c.httpClient.Post(ctx, c.baseURL+PathTopPartner, req, nil)
	if err != nil {
		return TopPartner{}, &transportError{Op: "get top partner", Err: err}
	}

	var raw map[string]json.RawMessage
	if err := decode(body, status, &raw); err != nil {
		return TopPartner{}, err
	}
	return parseTopPartner(raw, input.Metric), nil
}

// GetComparisonData compares both sources. It fails locally when either id is missing.
func (c *analysisImpl) GetComparisonData(ctx context.Context, input ComparisonInput) (ComparisonResult, error) {
	if input.MyAffiliateID == "" || input.DynamicWorksID == "" {
		return ComparisonResult{}, ErrComparisonNeedsBoth
	}
	timeframe := input.Timeframe
	if timeframe == "" {
		timeframe = DefaultTimeframe
	}

	req := comparisonReq{
		MyAffiliateID:    input.MyAffiliateID,
		DynamicWorksID:   input.DynamicWorksID,
		MetricsToCompare: input.MetricsToCompare,
		Timeframe:        timeframe,
	}
	body, status, err := c.httpClient.Post(ctx, c.baseURL+PathComparisonData, req, nil)
	if err != nil {
		return ComparisonResult{}, &transportError{Op: "get comparison data", Err: err}
	}

	var raw map[string]json.RawMessage
	if err := decode(body, status, &raw); err != nil {
		return ComparisonResult{}, err
	}

	out := ComparisonResult{Metrics: make(map[string]ComparisonSeries)}
	for k, v := range raw {
		if k == "months" {
			if err := json.Unmarshal(v, &out.Months); err != nil {
				return ComparisonResult{}, fmt.Errorf("failed to unmarshal comparison months: %w", err)
			}
			continue
		}
		var series ComparisonSeries
		if err := json.Unmarshal(v, &series); err != nil {
			continue
		}
		out.Metrics[k] = series
	}
	return out, nil
}

// SendChat asks a question about the data. In combined mode both ids travel with the question.
func (c *analysisImpl) SendChat(ctx context.Context, input ChatInput) (ChatOutput, error) {
	if input.FileID == "" {
		return ChatOutput{}, ErrFileIDRequired
	}

	history := input.ChatHistory
	if history == nil {
		history = []model.ChatMessage{}
	}
	req := chatReq{
		FileID:      input.FileID,
		Query:       input.Query,
		ChatHistory: history,
		Source:      input.Source.String(),
	}
	if input.Source == model.SourceCombined {
		req.MyAffiliateID = input.MyAffiliateID
		req.DynamicWorksID = input.DynamicWorksID
		req.CombinedAnalysis = true
	}

	body, status, err := c.httpClient.Post(ctx, c.baseURL+PathChat, req, nil)
	if err != nil {
		return ChatOutput{}, &transportError{Op: "chat", Err: err}
	}

	var out ChatOutput
	if err := decode(body, status, &out); err != nil {
		return ChatOutput{}, err
	}
	return out, nil
}

// GetTeamRegions lists the regions present in fileID.
func (c *analysisImpl) GetTeamRegions(ctx context.Context, fileID string) ([]string, error) {
	if fileID == "" {
		return nil, ErrFileIDRequired
	}

	u := fmt.Sprintf("%s%s/%s", c.baseURL, PathTeamRegions, url.PathEscape(fileID))
	body, status, err := c.httpClient.Get(ctx, u, nil)
	if err != nil {
		return nil, &transportError{Op: "get team regions", Err: err}
	}

	var out struct {
		Regions []string `json:"regions"`
	}
	if err := decode(body, status, &out); err != nil {
		return nil, err
	}
	return out.Regions, nil
}

// GetStoredFiles lists files processed in earlier sessions. Entries with an unknown source are skipped.
func (c *analysisImpl) GetStoredFiles(ctx context.Context) ([]model.UploadedFile, error) {
	body, status, err := c.httpClient.Get(ctx, c.baseURL+PathLoadStoredFiles, nil)
	if err != nil {
		return nil, &transportError{Op: "load stored files", Err: err}
	}

	var out struct {
		StoredFiles []storedFileResp `json:"storedFiles"`
	}
	if err := decode(body, status, &out); err != nil {
		return nil, err
	}

	files := make([]model.UploadedFile, 0, len(out.StoredFiles))
	for _, f := range out.StoredFiles {
		src, err := model.ParseDataSource(f.Source)
		if err != nil || !src.IsUploadSource() {
			continue
		}
		files = append(files, model.UploadedFile{
			FileID:     f.FileID,
			Source:     src,
			Filename:   f.Filename,
			UploadDate: parseUploadDate(f.UploadDate),
		})
	}
	return files, nil
}

// decode turns an {"error": ...} body or a non-2xx status into *APIError and otherwise unmarshals into v.
func decode(body []byte, status int, v any) error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	if eb.Error != "" {
		return &APIError{StatusCode: status, Message: eb.Error}
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return &APIError{StatusCode: status, Message: fmt.Sprintf("unexpected status code: %d", status)}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func parseTopPartner(raw map[string]json.RawMessage, metric string) TopPartner {
	var tp TopPartner
	if m, ok := raw["message"]; ok {
		_ = json.Unmarshal(m, &tp.Message)
		return tp
	}

	var id FlexString
	_ = json.Unmarshal(raw["Partner ID"], &id)
	tp.PartnerID = id.String()
	_ = json.Unmarshal(raw["Country"], &tp.Country)
	_ = json.Unmarshal(raw["Region"], &tp.Region)
	_ = json.Unmarshal(raw["Year"], &tp.Year)
	_ = json.Unmarshal(raw["Month"], &tp.Month)
	tp.Metric = metric
	if err := json.Unmarshal(raw["Metric"], &tp.Metric); err != nil || tp.Metric == "" {
		tp.Metric = metric
	}
	_ = json.Unmarshal(raw[tp.Metric], &tp.Value)
	return tp
}

func parseUploadDate(s string) time.Time {
	if t, err := time.Parse(uploadDateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func setIfNotEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
