package grading

import (
	"time"

	"github.com/registro-docente/api/internal/models"
)

// Window bounds a trimester by month and day, inclusive on both ends. The
// year is whichever school year is being worked on.
type Window struct {
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
}

// TrimesterWindows fixes the three grading periods of the school year.
// February 1st falls before the first window on purpose; classes start on
// the 2nd.
var TrimesterWindows = map[int]Window{
	1: {StartMonth: time.February, StartDay: 2, EndMonth: time.May, EndDay: 8},
	2: {StartMonth: time.May, StartDay: 11, EndMonth: time.August, EndDay: 31},
	3: {StartMonth: time.September, StartDay: 1, EndMonth: time.December, EndDay: 2},
}

var dayLabels = [7]string{"DOM", "LUN", "MAR", "MIE", "JUE", "VIE", "SAB"}

// DayLabel returns the three-letter Spanish weekday abbreviation.
func DayLabel(weekday time.Weekday) string {
	return dayLabels[int(weekday)]
}

// InWindow reports whether a calendar date falls inside a trimester window.
// Unknown trimesters match nothing.
func InWindow(trimester int, month time.Month, day int) bool {
	w, ok := TrimesterWindows[trimester]
	if !ok {
		return false
	}
	if month < w.StartMonth || month > w.EndMonth {
		return false
	}
	if month == w.StartMonth && day < w.StartDay {
		return false
	}
	if month == w.EndMonth && day > w.EndDay {
		return false
	}
	return true
}

// TrimesterMonths lists the months a trimester window touches, in order.
func TrimesterMonths(trimester int) []time.Month {
	w, ok := TrimesterWindows[trimester]
	if !ok {
		return nil
	}
	var months []time.Month
	for m := w.StartMonth; m <= w.EndMonth; m++ {
		months = append(months, m)
	}
	return months
}

// TrimesterOf finds the trimester a date belongs to, or zero when the date
// falls in a gap between windows.
func TrimesterOf(month time.Month, day int) int {
	for t := 1; t <= 3; t++ {
		if InWindow(t, month, day) {
			return t
		}
	}
	return 0
}

// WorkingDays enumerates the Monday-to-Friday days of a month. When a
// trimester is given, days outside its window are dropped, so a month split
// across two trimesters only shows the half in scope. Enabled is left false;
// the caller flips it from persisted attendance.
func WorkingDays(year int, month time.Month, trimester int) []models.WorkingDay {
	var days []models.WorkingDay
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for d := 1; d <= last; d++ {
		wd := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if trimester != 0 && !InWindow(trimester, month, d) {
			continue
		}
		days = append(days, models.WorkingDay{Day: d, Label: DayLabel(wd)})
	}
	return days
}

// DaysInMonth returns the number of calendar days in a month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AgeAt computes full years between birth and a reference date, decrementing
// when the birthday has not yet passed. Nil or future birth dates yield nil;
// roster rows simply show a blank age.
func AgeAt(birth *time.Time, at time.Time) *int {
	if birth == nil {
		return nil
	}
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return nil
	}
	return &age
}
