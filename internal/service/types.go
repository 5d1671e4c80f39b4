package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/popeskul/crewreach/internal/api"
	"github.com/popeskul/crewreach/internal/apperrors"
	"github.com/popeskul/crewreach/internal/models"
)

type HealthStatus struct {
	Status               api.HealthResponseStatus              `json:"status"`
	SchedulerStatus      api.HealthResponseSchedulerStatus     `json:"scheduler_status"`
	DatabaseStatus       api.HealthResponseDatabaseStatus      `json:"database_status"`
	RedisStatus          api.HealthResponseRedisStatus         `json:"redis_status"`
	CircuitBreakerStatus string                                `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  api.HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
}

type SideEffectStatus string

const (
	SideEffectSent    SideEffectStatus = "sent"
	SideEffectSkipped SideEffectStatus = "skipped"
	SideEffectFailed  SideEffectStatus = "failed"
	SideEffectArmed   SideEffectStatus = "armed"
)

const (
	SideEffectArrivalNotice      = "arrival_notice"
	SideEffectCancellationNotice = "cancellation_notice"
	SideEffectReviewScheduled    = "review_request_scheduled"
)

// SideEffect reports what one best-effort action of a transition did.
type SideEffect struct {
	Name   string           `json:"name"`
	Status SideEffectStatus `json:"status"`
	Detail string           `json:"detail,omitempty"`
}

// Outcome is the result of a job transition. Applied is true whenever the
// status change was committed; side effects never undo it.
type Outcome struct {
	Applied     bool             `json:"applied"`
	From        models.JobStatus `json:"from"`
	To          models.JobStatus `json:"to"`
	SideEffects []SideEffect     `json:"side_effects"`
}

func (o *Outcome) add(name string, status SideEffectStatus, detail string) {
	o.SideEffects = append(o.SideEffects, SideEffect{Name: name, Status: status, Detail: detail})
}

// addResult records a send attempt: nil is sent, a skip is skipped,
// anything else failed.
func (o *Outcome) addResult(name string, err error) {
	switch {
	case err == nil:
		o.add(name, SideEffectSent, "")
	case apperrors.IsSkip(err):
		o.add(name, SideEffectSkipped, err.Error())
	default:
		o.add(name, SideEffectFailed, err.Error())
	}
}

const (
	SweepInitial   = "initial"
	SweepReminders = "reminders"
	SweepCampaigns = "campaigns"
)

// SweepSummary counts what a sweep did with each candidate. Per-item
// failures are counted here instead of failing the sweep.
type SweepSummary struct {
	Sweep     string        `json:"sweep"`
	Processed int           `json:"processed"`
	Sent      int           `json:"sent"`
	Skipped   int           `json:"skipped"`
	Errored   int           `json:"errored"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

func newSweepSummary(sweep string) *SweepSummary {
	return &SweepSummary{Sweep: sweep, StartedAt: time.Now()}
}

// Record classifies one candidate's result.
func (s *SweepSummary) Record(err error) {
	s.Processed++
	switch {
	case err == nil:
		s.Sent++
	case apperrors.IsSkip(err):
		s.Skipped++
	default:
		s.Errored++
	}
}

func (s *SweepSummary) finish() *SweepSummary {
	s.Duration = time.Since(s.StartedAt)
	return s
}

// RequestOrigin links a new review request to what spawned it.
type RequestOrigin struct {
	JobID      uuid.NullUUID
	CampaignID uuid.NullUUID
}

type CreateJobInput struct {
	ContactID     uuid.UUID
	Title         string
	ScheduledDate time.Time
	TimeMode      models.TimeMode
	WindowStart   string
	WindowEnd     string
	TimeOfDay     string
	StartAt       *time.Time
}

type CreateCampaignInput struct {
	Name             string
	Filter           models.AudienceFilter
	RateLimitPerHour int
}

// CallEvent is the first webhook of an inbound call.
type CallEvent struct {
	CallSID string
	From    string
	To      string
}

// DialOutcome is the result of forwarding a call.
type DialOutcome string

const (
	DialAnswered DialOutcome = "answered"
	DialNoAnswer DialOutcome = "no_answer"
	DialBusy     DialOutcome = "busy"
	DialFailed   DialOutcome = "failed"
)

// ParseDialOutcome maps a provider DialCallStatus.
func ParseDialOutcome(status string) DialOutcome {
	switch status {
	case "completed", "answered":
		return DialAnswered
	case "busy":
		return DialBusy
	case "failed":
		return DialFailed
	default:
		return DialNoAnswer
	}
}

type DialEvent struct {
	CallSID string
	Outcome DialOutcome
	// Replay marks a delivery the webhook deduper has already seen.
	Replay bool
}

type RecordingEvent struct {
	CallSID         string
	RecordingSID    string
	RecordingURL    string
	DurationSeconds int
}

type SMSEvent struct {
	MessageSID string
	From       string
	To         string
	Body       string
	MediaURLs  []string
}

type StatusEvent struct {
	MessageSID   string
	Status       string
	ErrorCode    string
	ErrorMessage string
}
