package util

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantStart string
		wantEnd   string
	}{
		{"31 days", 2024, time.October, "2024-10-01", "2024-10-31"},
		{"30 days", 2025, time.April, "2025-04-01", "2025-04-30"},
		{"leap february", 2024, time.February, "2024-02-01", "2024-02-29"},
		{"december", 2024, time.December, "2024-12-01", "2024-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthRange(tt.year, tt.month)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestStrToDate(t *testing.T) {
	d, err := StrToDate("2025-03-15")
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-15", DateToStr(d))

	_, err = StrToDate("15/03/2025")
	assert.Error(t, err)
}

func TestMapAndFilter(t *testing.T) {
	got := MapSlice([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	even := FilterSlice([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
}
