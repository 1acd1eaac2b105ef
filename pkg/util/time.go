package util

import "time"

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
	MonthFormat    = "2006-01"
)

func StrToDate(str string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, str, time.UTC)
}

func DateToStr(dt time.Time) string {
	return dt.Format(DateFormat)
}

func DateTimeToStr(dt time.Time) string {
	return dt.Format(DateTimeFormat)
}

// StartOfMonth returns the first day of the month at midnight UTC.
func StartOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last calendar day of the month at midnight UTC.
func EndOfMonth(year int, month time.Month) time.Time {
	return StartOfMonth(year, month).AddDate(0, 1, -1)
}

// MonthRange returns the first and last day of a month as DateFormat strings.
func MonthRange(year int, month time.Month) (string, string) {
	return DateToStr(StartOfMonth(year, month)), DateToStr(EndOfMonth(year, month))
}
