package usecase

import (
	"context"
	"testing"
	"time"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/partner"
	"partner-dashboard-srv/pkg/analysisapi"
	"partner-dashboard-srv/pkg/analysisapi/analysisapitest"
	"partner-dashboard-srv/pkg/generation"
	"partner-dashboard-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sc = model.Scope{SessionID: "sid-1"}

func newUseCase(state model.SessionState, api *analysisapitest.Fake) *implUseCase {
	uc := New(log.NewNop(), analysisapitest.Sessions{State: state}, api, generation.New()).(*implUseCase)
	uc.now = func() time.Time { return time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC) }
	return uc
}

func TestResolveRange(t *testing.T) {
	uc := newUseCase(model.SessionState{}, &analysisapitest.Fake{})

	tests := []struct {
		name    string
		input   partner.ListInput
		want    partner.DateRange
		wantErr error
	}{
		{name: "default is all", want: partner.DateRange{StartDate: "2000-01-01", EndDate: "2025-05-20", Preset: "all"}},
		{name: "oct-2024", input: partner.ListInput{Preset: "oct-2024"}, want: partner.DateRange{StartDate: "2024-10-01", EndDate: "2024-10-31", Preset: "oct-2024"}},
		{name: "feb-2025", input: partner.ListInput{Preset: "feb-2025"}, want: partner.DateRange{StartDate: "2025-02-01", EndDate: "2025-02-28", Preset: "feb-2025"}},
		{name: "apr-2025", input: partner.ListInput{Preset: "apr-2025"}, want: partner.DateRange{StartDate: "2025-04-01", EndDate: "2025-04-30", Preset: "apr-2025"}},
		{
			name:  "explicit dates override the preset",
			input: partner.ListInput{Preset: "oct-2024", StartDate: "2024-11-05", EndDate: "2024-12-01"},
			want:  partner.DateRange{StartDate: "2024-11-05", EndDate: "2024-12-01", Preset: "custom"},
		},
		{
			name:  "open end is today",
			input: partner.ListInput{StartDate: "2025-01-01"},
			want:  partner.DateRange{StartDate: "2025-01-01", EndDate: "2025-05-20", Preset: "custom"},
		},
		{name: "unknown preset", input: partner.ListInput{Preset: "last-week"}, wantErr: partner.ErrInvalidPreset},
		{name: "bad date", input: partner.ListInput{StartDate: "01/01/2025"}, wantErr: partner.ErrInvalidDate},
		{name: "reversed", input: partner.ListInput{StartDate: "2025-02-01", EndDate: "2025-01-01"}, wantErr: partner.ErrInvalidDateRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.resolveRange(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList(t *testing.T) {
	pa := analysisapi.PerformanceAnalysis{
		PartnersWithPositiveCommissions: []analysisapi.PartnerRow{{PartnerID: "1", Country: "Kenya", PositiveCommissionMonths: 3}},
		TopPartnersByRevenue:            []analysisapi.PartnerRow{{PartnerID: "2", Region: "Asia", DerivRevenue: 900}},
		UnderperformingPartners:         []analysisapi.PartnerRow{{PartnerID: "3", DerivRevenue: -4}},
	}
	api := &analysisapitest.Fake{Analysis: map[string]analysisapi.AnalysisResult{"ma": {PerformanceAnalysis: pa}}}
	uc := newUseCase(model.SessionState{MyAffiliateID: "ma", DynamicWorksID: "dw"}, api)

	tests := []struct {
		name    string
		tab     partner.Tab
		want    partner.Partner
		wantTab partner.Tab
		wantErr error
	}{
		{name: "default tab", want: partner.Partner{PartnerID: "1", Country: "Kenya", Region: "N/A", PositiveCommissionMonths: 3}, wantTab: partner.TabPositive},
		{name: "top", tab: partner.TabTop, want: partner.Partner{PartnerID: "2", Country: "N/A", Region: "Asia", DerivRevenue: 900}, wantTab: partner.TabTop},
		{name: "underperforming", tab: partner.TabUnderperforming, want: partner.Partner{PartnerID: "3", Country: "N/A", Region: "N/A", DerivRevenue: -4}, wantTab: partner.TabUnderperforming},
		{name: "bad tab", tab: "best", wantErr: partner.ErrInvalidTab},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.List(context.Background(), sc, partner.ListInput{Tab: tt.tab, Preset: "oct-2024"})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTab, out.Tab)
			assert.Equal(t, []partner.Partner{tt.want}, out.Partners)
			assert.Equal(t, analysisapi.AnalysisQuery{StartDate: "2024-10-01", EndDate: "2024-10-31", Preset: "oct-2024"}, api.LastQuery)
			assert.Equal(t, model.SourceMyAffiliate, api.LastSource)
		})
	}
}
