package scheduler

import (
	"context"
	"fmt"
	"io"
	"testing"

	"gym_attendance_notifier/internal/domain/pipeline"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	batch *pipeline.BatchResult
	err   error
	calls int
}

func (f *fakeRunner) NotifyAll(context.Context) (*pipeline.BatchResult, error) {
	f.calls++
	return f.batch, f.err
}

type fakeReporter struct {
	batches []*pipeline.BatchResult
	err     error
}

func (f *fakeReporter) ReportBatch(b *pipeline.BatchResult) error {
	f.batches = append(f.batches, b)
	return f.err
}

func newTestScheduler(runner *fakeRunner, reporter *fakeReporter) *DailyScheduler {
	log := logrus.New()
	log.SetOutput(io.Discard)

	var r RunReporter
	if reporter != nil {
		r = reporter
	}
	return NewDailyScheduler(runner, r, log, "0 9 * * *")
}

func TestRunBatchReportsToAdmin(t *testing.T) {
	runner := &fakeRunner{batch: &pipeline.BatchResult{Total: 3, Sent: 2, Failed: 1}}
	reporter := &fakeReporter{}

	newTestScheduler(runner, reporter).runBatch(context.Background())

	assert.Equal(t, 1, runner.calls)
	require.Len(t, reporter.batches, 1)
	assert.Equal(t, 3, reporter.batches[0].Total)
}

func TestRunBatchSkipsReportOnRunnerFailure(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("database unreachable")}
	reporter := &fakeReporter{}

	newTestScheduler(runner, reporter).runBatch(context.Background())

	assert.Empty(t, reporter.batches)
}

func TestRunBatchToleratesReporterFailure(t *testing.T) {
	runner := &fakeRunner{batch: &pipeline.BatchResult{}}
	reporter := &fakeReporter{err: fmt.Errorf("telegram down")}

	// Must not panic or propagate; the batch itself already ran.
	newTestScheduler(runner, reporter).runBatch(context.Background())
	assert.Equal(t, 1, runner.calls)
}

func TestRunBatchWithoutReporter(t *testing.T) {
	runner := &fakeRunner{batch: &pipeline.BatchResult{}}
	newTestScheduler(runner, nil).runBatch(context.Background())
	assert.Equal(t, 1, runner.calls)
}
