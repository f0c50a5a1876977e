package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gym_attendance_notifier/internal/domain/attendance"
	"gym_attendance_notifier/internal/domain/member"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// ErrMemberNotFound is returned when a member id matches no row. It is kept
// distinct from query errors so callers can tell absence from an unreachable
// store.
var ErrMemberNotFound = fmt.Errorf("member not found")

type PostgresMemberRepository struct {
	db *sql.DB
}

func NewPostgresMemberRepository(db *sql.DB) *PostgresMemberRepository {
	return &PostgresMemberRepository{db: db}
}

func (r *PostgresMemberRepository) GetByID(ctx context.Context, id int64) (*member.Member, error) {
	query := `SELECT id, name, goal, channel_token, created_at, updated_at
               FROM members WHERE id = $1`
	m := &member.Member{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Goal, &m.ChannelToken, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("error getting member by ID: %w", err)
	}
	return m, nil
}

func (r *PostgresMemberRepository) ListAll(ctx context.Context) ([]*member.Member, error) {
	query := `SELECT id, name, goal, channel_token, created_at, updated_at
               FROM members ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing members: %w", err)
	}
	defer rows.Close()

	members := make([]*member.Member, 0)
	for rows.Next() {
		m := &member.Member{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Goal, &m.ChannelToken, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning member: %w", err)
		}
		members = append(members, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}
	return members, nil
}

func (r *PostgresMemberRepository) ScheduledWeekdays(ctx context.Context, memberID int64) ([]time.Weekday, error) {
	query := `SELECT weekday FROM scheduled_days WHERE member_id = $1 ORDER BY weekday`

	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("error listing scheduled days: %w", err)
	}
	defer rows.Close()

	weekdays := make([]time.Weekday, 0)
	for rows.Next() {
		var wd int
		if err := rows.Scan(&wd); err != nil {
			return nil, fmt.Errorf("error scanning scheduled day: %w", err)
		}
		if wd < 0 || wd > 6 {
			return nil, fmt.Errorf("scheduled day out of range: %d", wd)
		}
		weekdays = append(weekdays, time.Weekday(wd))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scheduled days: %w", err)
	}
	return weekdays, nil
}

func (r *PostgresMemberRepository) PresentDays(ctx context.Context, memberID int64, from, to time.Time) ([]time.Time, error) {
	// Bounds are cast to DATE so a timestamp argument can never exclude
	// records on the boundary days.
	query := `SELECT DISTINCT attended_on FROM attendance_records
               WHERE member_id = $1 AND status = $2 AND attended_on BETWEEN $3::date AND $4::date
               ORDER BY attended_on`

	rows, err := r.db.QueryContext(ctx, query, memberID, string(attendance.StatusPresent), from, to)
	if err != nil {
		return nil, fmt.Errorf("error listing present days: %w", err)
	}
	defer rows.Close()

	days := make([]time.Time, 0)
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("error scanning present day: %w", err)
		}
		days = append(days, day)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating present days: %w", err)
	}
	return days, nil
}

// UpdateChannelToken overwrites the token unconditionally. Last writer wins;
// there is no conflict detection.
func (r *PostgresMemberRepository) UpdateChannelToken(ctx context.Context, memberID int64, token string) error {
	query := `UPDATE members SET channel_token = $1, updated_at = NOW() WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, token, memberID)
	if err != nil {
		return fmt.Errorf("error updating channel token: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking channel token update: %w", err)
	}
	if affected == 0 {
		return ErrMemberNotFound
	}
	return nil
}
