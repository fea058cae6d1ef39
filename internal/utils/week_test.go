package util_test

import (
	"testing"
	"time"

	util "github.com/growthfarm/opsboard-lambda/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestWeekNumber(t *testing.T) {
	cases := []struct {
		date string
		week int
	}{
		{"2026-01-01", 1},
		{"2026-01-31", 5},
		{"2026-06-15", 25},
		{"2026-12-28", 53},
		{"2025-12-29", 1}, // belongs to ISO week 1 of 2026
	}

	for _, c := range cases {
		d, err := time.Parse("2006-01-02", c.date)
		assert.NoError(t, err)
		assert.Equal(t, c.week, util.WeekNumber(d), "week for %s", c.date)
	}
}

func TestWeekYear(t *testing.T) {
	d, _ := time.Parse("2006-01-02", "2025-12-29")
	assert.Equal(t, 2026, util.WeekYear(d))
	assert.Equal(t, 2025, d.Year())
}

func TestCurrentWeek(t *testing.T) {
	before := time.Now()
	week, year := util.CurrentWeek()
	after := time.Now()

	// The call happened between the two snapshots, so it must agree with one
	// of them even right at an ISO week boundary.
	matches := func(ref time.Time) bool {
		return week == util.WeekNumber(ref) && year == util.WeekYear(ref)
	}
	assert.True(t, matches(before) || matches(after))
}

func TestMonthIndex(t *testing.T) {
	d, _ := time.Parse("2006-01-02", "2026-01-31")
	assert.Equal(t, 1, util.MonthIndex(d))
}
