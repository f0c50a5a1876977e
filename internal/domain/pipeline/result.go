// Package pipeline defines the per-subject result record carried through the
// notification pipeline and the batch-level aggregate built from it.
package pipeline

import "gym_attendance_notifier/internal/domain/attendance"

// Outcome is the terminal state of one subject's pipeline run.
type Outcome string

const (
	// OutcomeCompleted covers every successful terminal state, including a
	// run where no channel token existed or the gateway rejected delivery.
	// A generated message is the unit of success; delivery is best-effort.
	OutcomeCompleted Outcome = "COMPLETED"
	// OutcomeNotFound means the member does not exist.
	OutcomeNotFound Outcome = "NOT_FOUND"
	// OutcomeUnavailable means the relational store could not be queried.
	// Kept distinct from OutcomeNotFound so callers can tell infrastructure
	// failures from legitimate absence.
	OutcomeUnavailable Outcome = "UPSTREAM_UNAVAILABLE"
	// OutcomeGenerationFailed means the text-generation call failed or
	// returned unusable content.
	OutcomeGenerationFailed Outcome = "GENERATION_FAILED"
)

// SubjectResult is the outcome record for one member. Fields are filled
// stage by stage as the run advances and never rewritten by a later stage.
type SubjectResult struct {
	MemberID       int64               `json:"member_id"`
	Name           string              `json:"name,omitempty"`
	Outcome        Outcome             `json:"outcome"`
	AttendanceRate int                 `json:"attendance_rate"`
	Band           attendance.Band     `json:"band,omitempty"`
	Category       attendance.Category `json:"category,omitempty"`
	Message        string              `json:"message,omitempty"`
	// NotificationSent is false both for delivery failures and for the
	// normal no-channel-token case; DeliveryError separates the two.
	NotificationSent bool   `json:"notification_sent"`
	DeliveryError    string `json:"delivery_error,omitempty"`
	Error            string `json:"error,omitempty"`
}

// Failed reports whether the run ended in a non-success terminal state.
// Delivery problems do not count: the run completed.
func (r SubjectResult) Failed() bool {
	return r.Outcome != OutcomeCompleted
}

// BatchResult aggregates the independent per-subject results of one full run.
// One subject's failure never removes it from the list.
type BatchResult struct {
	Total   int             `json:"total"`
	Sent    int             `json:"sent"`
	Failed  int             `json:"failed"`
	Results []SubjectResult `json:"results"`
}

// Append records one subject's result and updates the counters.
func (b *BatchResult) Append(r SubjectResult) {
	b.Results = append(b.Results, r)
	b.Total++
	if r.Failed() {
		b.Failed++
	} else if r.NotificationSent {
		b.Sent++
	}
}
