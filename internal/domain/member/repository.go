package member

import (
	"context"
	"time"
)

// Repository defines the operations for retrieving Member data and recording
// channel tokens.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Member, error)
	ListAll(ctx context.Context) ([]*Member, error)
	// ScheduledWeekdays returns the weekdays the member plans to attend.
	// An empty slice means the member has no explicit plan.
	ScheduledWeekdays(ctx context.Context, memberID int64) ([]time.Weekday, error)
	// PresentDays returns the distinct calendar days with a present-status
	// attendance record in [from, to], both inclusive.
	PresentDays(ctx context.Context, memberID int64, from, to time.Time) ([]time.Time, error)
	// UpdateChannelToken overwrites the member's channel token. Last writer wins.
	UpdateChannelToken(ctx context.Context, memberID int64, token string) error
}
