package member

import (
	"database/sql"
	"time"
)

// Member represents a gym member in the system. The record is owned by the
// external member-management system; this service reads it and only ever
// writes the channel token.
type Member struct {
	ID           int64
	Name         string
	Goal         string         // declared goal label, e.g. "weight loss"
	ChannelToken sql.NullString // push-gateway device token, absent for members without the app
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasChannelToken reports whether the member can be addressed by the push gateway.
func (m *Member) HasChannelToken() bool {
	return m.ChannelToken.Valid && m.ChannelToken.String != ""
}
