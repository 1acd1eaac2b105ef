package chart

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"partner-dashboard-srv/pkg/analysisapi"
)

var ErrInvalidMonth = errors.New("chart: month must be YYYY-MM")

// Month is a calendar month, comparable by value.
type Month struct {
	Year  int
	Month int
}

// ParseMonth reads the leading "YYYY-MM" of s. A trailing day part is ignored.
func ParseMonth(s string) (Month, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) < 2 {
		return Month{}, ErrInvalidMonth
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return Month{}, ErrInvalidMonth
	}
	return Month{Year: y, Month: m}, nil
}

func (m Month) index() int {
	return m.Year*12 + m.Month - 1
}

func (m Month) Before(o Month) bool {
	return m.index() < o.index()
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// Window is an inclusive range of months.
type Window struct {
	Start Month
	End   Month
}

// NewWindow parses both bounds and rejects a start after the end.
func NewWindow(start, end string) (Window, error) {
	s, err := ParseMonth(start)
	if err != nil {
		return Window{}, fmt.Errorf("window start %q: %w", start, err)
	}
	e, err := ParseMonth(end)
	if err != nil {
		return Window{}, fmt.Errorf("window end %q: %w", end, err)
	}
	if e.Before(s) {
		return Window{}, fmt.Errorf("window start %s is after end %s", s, e)
	}
	return Window{Start: s, End: e}, nil
}

func (w Window) Contains(m Month) bool {
	return !m.Before(w.Start) && !w.End.Before(m)
}

// ContainsLabel parses label and reports whether it falls inside the window.
// Unparseable labels are outside.
func (w Window) ContainsLabel(label string) bool {
	m, err := ParseMonth(label)
	if err != nil {
		return false
	}
	return w.Contains(m)
}

// FilterMonthly keeps the in-window rows and sorts them chronologically.
func (w Window) FilterMonthly(rows []analysisapi.MonthlyKPI) []analysisapi.MonthlyKPI {
	out := make([]analysisapi.MonthlyKPI, 0, len(rows))
	for _, r := range rows {
		if w.ContainsLabel(r.Month) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return monthLess(out[i].Month, out[j].Month)
	})
	return out
}

// SortMonths orders labels chronologically, in place. Labels must already parse.
func SortMonths(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		return monthLess(labels[i], labels[j])
	})
}

func monthLess(a, b string) bool {
	ma, _ := ParseMonth(a)
	mb, _ := ParseMonth(b)
	return ma.Before(mb)
}

// uniqueMonths returns the distinct in-window labels, sorted.
func (w Window) uniqueMonths(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if !w.ContainsLabel(l) {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	SortMonths(out)
	return out
}
