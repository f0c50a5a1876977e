package scheduler

import (
	"context"
	"time"

	"gym_attendance_notifier/internal/domain/pipeline"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// BatchRunner runs the full notification pipeline over every member.
type BatchRunner interface {
	NotifyAll(ctx context.Context) (*pipeline.BatchResult, error)
}

// RunReporter receives the summary of a finished batch run.
type RunReporter interface {
	ReportBatch(batch *pipeline.BatchResult) error
}

// DailyScheduler triggers the notification batch on a cron spec.
type DailyScheduler struct {
	cronEngine *cron.Cron
	runner     BatchRunner
	reporter   RunReporter // nil when no admin report is configured
	logger     *logrus.Logger
	cronSpec   string
}

func NewDailyScheduler(runner BatchRunner, reporter RunReporter, logger *logrus.Logger, cronSpec string) *DailyScheduler {
	return &DailyScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)),
		runner:     runner,
		reporter:   reporter,
		logger:     logger,
		cronSpec:   cronSpec,
	}
}

func (s *DailyScheduler) Start() {
	s.logger.Info("Starting notification scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		s.logger.Info("Cron job triggered for daily notification batch.")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		s.runBatch(ctx)
	})
	if err != nil {
		s.logger.Fatalf("Could not add daily batch cron job: %v", err)
	}

	s.cronEngine.Start()
	s.logger.Infof("Notification scheduler started with spec %q.", s.cronSpec)
}

func (s *DailyScheduler) runBatch(ctx context.Context) {
	batch, err := s.runner.NotifyAll(ctx)
	if err != nil {
		s.logger.Errorf("Daily notification batch failed: %v", err)
		return
	}

	if s.reporter == nil {
		return
	}
	if err := s.reporter.ReportBatch(batch); err != nil {
		s.logger.Errorf("Failed to send batch report to admin chat: %v", err)
	}
}

func (s *DailyScheduler) Stop() {
	s.logger.Info("Stopping notification scheduler...")
	ctx := s.cronEngine.Stop() // waits for a running batch to finish
	<-ctx.Done()
	s.logger.Info("Notification scheduler gracefully stopped.")
}
