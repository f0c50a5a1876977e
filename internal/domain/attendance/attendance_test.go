package attendance

import (
	"testing"
	"time"
)

// Wednesday. The trailing 7-day window [May 29 .. Jun 4] contains every
// weekday exactly once.
var now = time.Date(2025, time.June, 4, 15, 30, 0, 0, time.UTC)

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		scheduled    []time.Weekday
		present      []time.Time
		wantExpected int
		wantAttended int
		wantRate     int
	}{
		{
			name:         "no schedule falls back to full window",
			scheduled:    nil,
			present:      []time.Time{day(time.June, 1), day(time.June, 2), day(time.June, 3)},
			wantExpected: 7,
			wantAttended: 3,
			wantRate:     42, // floor(3*100/7)
		},
		{
			name:         "mon wed fri fully attended",
			scheduled:    []time.Weekday{time.Monday, time.Wednesday, time.Friday},
			present:      []time.Time{day(time.May, 30), day(time.June, 2), day(time.June, 4)},
			wantExpected: 3,
			wantAttended: 3,
			wantRate:     100,
		},
		{
			name:         "unscheduled present days do not count toward a plan",
			scheduled:    []time.Weekday{time.Monday},
			present:      []time.Time{day(time.June, 1), day(time.June, 3)}, // Sun, Tue
			wantExpected: 1,
			wantAttended: 0,
			wantRate:     0,
		},
		{
			name:         "present days outside the window are ignored",
			scheduled:    nil,
			present:      []time.Time{day(time.May, 28), day(time.June, 5), day(time.June, 2)},
			wantExpected: 7,
			wantAttended: 1,
			wantRate:     14,
		},
		{
			name:         "duplicate records on one day count once",
			scheduled:    nil,
			present:      []time.Time{day(time.June, 2), day(time.June, 2), day(time.June, 2)},
			wantExpected: 7,
			wantAttended: 1,
			wantRate:     14,
		},
		{
			name:         "empty everything",
			scheduled:    nil,
			present:      nil,
			wantExpected: 7,
			wantAttended: 0,
			wantRate:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(now, tt.scheduled, tt.present)
			if got.ExpectedCount != tt.wantExpected {
				t.Errorf("ExpectedCount = %d, want %d", got.ExpectedCount, tt.wantExpected)
			}
			if got.AttendedCount != tt.wantAttended {
				t.Errorf("AttendedCount = %d, want %d", got.AttendedCount, tt.wantAttended)
			}
			if got.Rate != tt.wantRate {
				t.Errorf("Rate = %d, want %d", got.Rate, tt.wantRate)
			}
			if got.Rate < 0 || got.Rate > 100 {
				t.Errorf("Rate %d out of [0,100]", got.Rate)
			}
		})
	}
}

func TestSummarizeMixedTimezones(t *testing.T) {
	// now in a +09:00 zone, present days as UTC midnights, the way the
	// database driver returns DATE columns. Matching must be on the
	// calendar day, not the instant.
	kst := time.FixedZone("KST", 9*60*60)
	nowKST := time.Date(2025, time.June, 4, 15, 30, 0, 0, kst)
	present := []time.Time{
		time.Date(2025, time.May, 30, 0, 0, 0, 0, time.UTC), // Fri
		time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), // Mon
		time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC), // Wed
	}

	got := Summarize(nowKST, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, present)
	if got.ExpectedCount != 3 || got.AttendedCount != 3 {
		t.Errorf("counts = (%d attended, %d expected), want (3, 3)", got.AttendedCount, got.ExpectedCount)
	}
	if got.Rate != 100 {
		t.Errorf("Rate = %d, want 100", got.Rate)
	}
}

func TestSummarizeIncludesWindowStartDay(t *testing.T) {
	// May 29 is the earliest day of the window ending June 4.
	got := Summarize(now, nil, []time.Time{day(time.May, 29)})
	if got.AttendedCount != 1 {
		t.Errorf("AttendedCount = %d, want 1 (window-start day is inclusive)", got.AttendedCount)
	}
}

func TestRateFloorsDivisor(t *testing.T) {
	// An expected count of zero must not divide by zero: the divisor is
	// floored to 1 and the result capped at 100.
	if got := rate(3, 0); got != 100 {
		t.Errorf("rate(3, 0) = %d, want 100", got)
	}
	if got := rate(0, 0); got != 0 {
		t.Errorf("rate(0, 0) = %d, want 0", got)
	}
	if got := rate(5, 3); got != 100 {
		t.Errorf("rate(5, 3) = %d, want 100 (capped)", got)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		rate         int
		wantBand     Band
		wantCategory Category
	}{
		{100, BandExcellent, CategoryPraise},
		{80, BandExcellent, CategoryPraise},
		{79, BandGood, CategoryEncouragement},
		{45, BandGood, CategoryEncouragement},
		{44, BandNeedsImprovement, CategoryMotivation},
		{0, BandNeedsImprovement, CategoryMotivation},
	}

	for _, tt := range tests {
		band, category := Classify(tt.rate)
		if band != tt.wantBand || category != tt.wantCategory {
			t.Errorf("Classify(%d) = (%s, %s), want (%s, %s)", tt.rate, band, category, tt.wantBand, tt.wantCategory)
		}
	}
}
