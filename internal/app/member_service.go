package app

import (
	"context"
	"fmt"

	"gym_attendance_notifier/internal/domain/member"
	idb "gym_attendance_notifier/internal/infra/database"

	"github.com/sirupsen/logrus"
)

// ErrMemberNotFound is the application-level absence error, re-exported so
// transport code does not import the database package.
var ErrMemberNotFound = idb.ErrMemberNotFound

// MemberService exposes the read-only member listing and the channel-token
// side channel. Everything else about members belongs to the external
// member-management system.
type MemberService struct {
	members member.Repository
	logger  *logrus.Logger
}

func NewMemberService(members member.Repository, logger *logrus.Logger) *MemberService {
	return &MemberService{members: members, logger: logger}
}

func (s *MemberService) List(ctx context.Context) ([]*member.Member, error) {
	members, err := s.members.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// UpdateChannelToken registers a new push token for a member. Last writer
// wins; callers supply whatever the device most recently reported.
func (s *MemberService) UpdateChannelToken(ctx context.Context, memberID int64, token string) error {
	if token == "" {
		return fmt.Errorf("channel token must not be empty")
	}
	if err := s.members.UpdateChannelToken(ctx, memberID, token); err != nil {
		if err == idb.ErrMemberNotFound {
			return err
		}
		return fmt.Errorf("failed to update channel token for member %d: %w", memberID, err)
	}
	s.logger.Infof("Channel token updated for member %d.", memberID)
	return nil
}
