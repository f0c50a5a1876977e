package app

import (
	"context"
	"time"

	"gym_attendance_notifier/internal/domain/attendance"
	"gym_attendance_notifier/internal/domain/member"
	"gym_attendance_notifier/internal/domain/messaging"
	"gym_attendance_notifier/internal/domain/pipeline"
	idb "gym_attendance_notifier/internal/infra/database"

	"github.com/sirupsen/logrus"
)

// NotifierService runs the attendance pipeline: fetch a member's trailing
// attendance, classify the rate, generate a message, and optionally deliver
// it. Each stage runs strictly after the previous one; there is no retry.
type NotifierService struct {
	members   member.Repository
	generator messaging.Generator
	pusher    messaging.Pusher // nil when the push gateway is not configured
	logger    *logrus.Logger
	now       func() time.Time
}

func NewNotifierService(
	members member.Repository,
	generator messaging.Generator,
	pusher messaging.Pusher,
	logger *logrus.Logger,
) *NotifierService {
	return &NotifierService{
		members:   members,
		generator: generator,
		pusher:    pusher,
		logger:    logger,
		now:       time.Now,
	}
}

// Compute runs fetch, classify and generate for one member, without delivery.
func (s *NotifierService) Compute(ctx context.Context, memberID int64) pipeline.SubjectResult {
	return s.run(ctx, memberID, false)
}

// Notify runs the full pipeline including delivery.
func (s *NotifierService) Notify(ctx context.Context, memberID int64) pipeline.SubjectResult {
	return s.run(ctx, memberID, true)
}

// ComputeAll runs Compute for every member. One member's failure never
// aborts the batch; the returned result holds one entry per member.
func (s *NotifierService) ComputeAll(ctx context.Context) (*pipeline.BatchResult, error) {
	return s.runAll(ctx, false)
}

// NotifyAll runs the full pipeline for every member.
func (s *NotifierService) NotifyAll(ctx context.Context) (*pipeline.BatchResult, error) {
	return s.runAll(ctx, true)
}

func (s *NotifierService) runAll(ctx context.Context, deliver bool) (*pipeline.BatchResult, error) {
	members, err := s.members.ListAll(ctx)
	if err != nil {
		s.logger.Errorf("Failed to list members for batch run: %v", err)
		return nil, err
	}

	batch := &pipeline.BatchResult{}
	for _, m := range members {
		result := s.run(ctx, m.ID, deliver)
		if result.Failed() {
			s.logger.Warnf("Member %d (%s) failed with outcome %s: %s", m.ID, m.Name, result.Outcome, result.Error)
		}
		batch.Append(result)
	}

	s.logger.Infof("Batch run finished: %d members, %d sent, %d failed.", batch.Total, batch.Sent, batch.Failed)
	return batch, nil
}

func (s *NotifierService) run(ctx context.Context, memberID int64, deliver bool) pipeline.SubjectResult {
	result := pipeline.SubjectResult{MemberID: memberID}

	// Stage 1: fetch profile and attendance summary.
	m, summary, outcome, err := s.fetch(ctx, memberID)
	if outcome != pipeline.OutcomeCompleted {
		result.Outcome = outcome
		result.Error = err.Error()
		return result
	}
	result.Name = m.Name
	result.AttendanceRate = summary.Rate

	// Stage 2: classify.
	result.Band, result.Category = attendance.Classify(summary.Rate)
	s.logger.Debugf("Member %d (%s): rate=%d band=%s", m.ID, m.Name, summary.Rate, result.Band)

	// Stage 3: generate.
	prompt := messaging.BuildPrompt(result.Category, m.Name, m.Goal)
	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		result.Outcome = pipeline.OutcomeGenerationFailed
		result.Error = err.Error()
		return result
	}
	message := messaging.Normalize(raw)
	if message == "" {
		result.Outcome = pipeline.OutcomeGenerationFailed
		result.Error = "text generation returned unusable content"
		return result
	}
	result.Message = message

	// Stage 4: deliver. Delivery problems are recorded, not raised; a
	// generated message already counts as success.
	result.Outcome = pipeline.OutcomeCompleted
	if !deliver {
		return result
	}

	if !m.HasChannelToken() {
		// Normal state for members without the app installed.
		s.logger.Debugf("Member %d has no channel token, skipping delivery.", m.ID)
		return result
	}
	if s.pusher == nil {
		result.DeliveryError = "push gateway not configured"
		return result
	}
	if err := s.pusher.Push(ctx, m.ChannelToken.String, messaging.PushTitle, message); err != nil {
		s.logger.Errorf("Failed to deliver notification to member %d: %v", m.ID, err)
		result.DeliveryError = err.Error()
		return result
	}
	result.NotificationSent = true
	return result
}

// fetch loads the member and computes the trailing-window summary. Member
// absence and an unreachable store map to distinct outcomes.
func (s *NotifierService) fetch(ctx context.Context, memberID int64) (*member.Member, attendance.Summary, pipeline.Outcome, error) {
	m, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		if err == idb.ErrMemberNotFound {
			return nil, attendance.Summary{}, pipeline.OutcomeNotFound, err
		}
		return nil, attendance.Summary{}, pipeline.OutcomeUnavailable, err
	}

	scheduled, err := s.members.ScheduledWeekdays(ctx, memberID)
	if err != nil {
		return nil, attendance.Summary{}, pipeline.OutcomeUnavailable, err
	}

	// The window is calendar days, so the lower bound is the start day's
	// midnight; keeping the current time-of-day would drop that day's
	// records from the range query.
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -(attendance.WindowDays - 1))
	present, err := s.members.PresentDays(ctx, memberID, from, now)
	if err != nil {
		return nil, attendance.Summary{}, pipeline.OutcomeUnavailable, err
	}

	return m, attendance.Summarize(now, scheduled, present), pipeline.OutcomeCompleted, nil
}
