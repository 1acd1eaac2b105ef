package usecase

import (
	"strings"
	"time"

	"partner-dashboard-srv/internal/partner"
	"partner-dashboard-srv/pkg/util"
)

// presetLayout matches month presets such as "oct-2024".
const presetLayout = "Jan-2006"

// resolveRange turns the preset or explicit dates into the range sent upstream.
// Explicit dates win; a missing end date means today.
func (uc *implUseCase) resolveRange(input partner.ListInput) (partner.DateRange, error) {
	today := util.DateToStr(uc.now().UTC())

	if input.StartDate != "" || input.EndDate != "" {
		r := partner.DateRange{StartDate: input.StartDate, EndDate: input.EndDate, Preset: partner.PresetCustom}
		if r.StartDate == "" {
			r.StartDate = partner.AllStartDate
		}
		if r.EndDate == "" {
			r.EndDate = today
		}
		start, err := util.StrToDate(r.StartDate)
		if err != nil {
			return partner.DateRange{}, partner.ErrInvalidDate
		}
		end, err := util.StrToDate(r.EndDate)
		if err != nil {
			return partner.DateRange{}, partner.ErrInvalidDate
		}
		if start.After(end) {
			return partner.DateRange{}, partner.ErrInvalidDateRange
		}
		return r, nil
	}

	preset := strings.ToLower(strings.TrimSpace(input.Preset))
	if preset == "" || preset == partner.PresetAll {
		return partner.DateRange{StartDate: partner.AllStartDate, EndDate: today, Preset: partner.PresetAll}, nil
	}

	m, err := parsePresetMonth(preset)
	if err != nil {
		return partner.DateRange{}, partner.ErrInvalidPreset
	}
	start, end := util.MonthRange(m.Year(), m.Month())
	return partner.DateRange{StartDate: start, EndDate: end, Preset: preset}, nil
}

func parsePresetMonth(preset string) (time.Time, error) {
	// time.Parse wants "Oct", presets are lower case
	if len(preset) > 0 {
		preset = strings.ToUpper(preset[:1]) + preset[1:]
	}
	return time.Parse(presetLayout, preset)
}
