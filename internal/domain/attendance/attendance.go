package attendance

import "time"

// Status is the state recorded for a member on a single calendar day.
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

// WindowDays is the length of the trailing calendar window, ending today inclusive.
const WindowDays = 7

// Summary is the derived attendance figure for one member over the trailing
// window. It is computed fresh on every run and never persisted.
type Summary struct {
	AttendedCount int
	ExpectedCount int
	Rate          int // 0..100
}

// Summarize computes the trailing-window summary ending at now, inclusive.
//
// With scheduled weekdays, expected is the number of days in the window whose
// weekday matches the plan, and attended counts only present days on those
// weekdays. Without a plan, every day counts: expected is fixed at WindowDays
// and attended is the number of distinct present days.
func Summarize(now time.Time, scheduled []time.Weekday, presentDays []time.Time) Summary {
	windowEnd := calendarDate(now)
	windowStart := windowEnd.AddDate(0, 0, -(WindowDays - 1))

	scheduledSet := make(map[time.Weekday]bool, len(scheduled))
	for _, wd := range scheduled {
		scheduledSet[wd] = true
	}

	// Distinct present dates inside the window.
	present := make(map[time.Time]bool)
	for _, d := range presentDays {
		day := calendarDate(d)
		if day.Before(windowStart) || day.After(windowEnd) {
			continue
		}
		present[day] = true
	}

	var expected, attended int
	if len(scheduledSet) == 0 {
		expected = WindowDays
		attended = len(present)
	} else {
		for day := windowStart; !day.After(windowEnd); day = day.AddDate(0, 0, 1) {
			if !scheduledSet[day.Weekday()] {
				continue
			}
			expected++
			if present[day] {
				attended++
			}
		}
	}

	return Summary{
		AttendedCount: attended,
		ExpectedCount: expected,
		Rate:          rate(attended, expected),
	}
}

// rate floors the divisor to 1 so an empty schedule never divides by zero,
// and caps the result at 100.
func rate(attended, expected int) int {
	if expected < 1 {
		expected = 1
	}
	r := attended * 100 / expected
	if r > 100 {
		r = 100
	}
	return r
}

// calendarDate strips both time-of-day and location. The database driver
// hands back DATE columns as UTC midnights while now comes from the server's
// local zone; equality must be on the calendar day alone.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
