package util

import "time"

// WeekNumber returns the ISO 8601 week number for t.
func WeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// WeekYear returns the year the ISO week of t belongs to. Around New Year
// this can differ from t.Year().
func WeekYear(t time.Time) int {
	year, _ := t.ISOWeek()
	return year
}

// CurrentWeek returns the ISO week number and ISO week-based year for now,
// the default (week, year) key for weekly records.
func CurrentWeek() (weekNumber, year int) {
	now := time.Now()
	return WeekNumber(now), WeekYear(now)
}

// MonthIndex returns the 1-based month of t.
func MonthIndex(t time.Time) int {
	return int(t.Month())
}
