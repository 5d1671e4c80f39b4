package handler

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/popeskul/crewreach/internal/api"
	"github.com/popeskul/crewreach/internal/models"
	"github.com/popeskul/crewreach/internal/service"
)

func toAPIJob(j *models.Job) api.Job {
	return api.Job{
		Id:                j.ID,
		ContactId:         j.ContactID,
		Title:             j.Title,
		ScheduledDate:     openapi_types.Date{Time: j.ScheduledDate},
		TimeMode:          api.JobTimeMode(j.TimeMode),
		WindowStart:       nullString(j.WindowStart),
		WindowEnd:         nullString(j.WindowEnd),
		TimeOfDay:         nullString(j.TimeOfDay),
		StartAt:           nullTime(j.StartAt),
		Status:            api.JobStatus(j.Status),
		EnRouteAt:         nullTime(j.EnRouteAt),
		StartedAt:         nullTime(j.StartedAt),
		CompletedAt:       nullTime(j.CompletedAt),
		CancelledAt:       nullTime(j.CancelledAt),
		ReviewRequestedAt: nullTime(j.ReviewRequestedAt),
		ReviewRequestId:   nullUUID(j.ReviewRequestID),
		CreatedAt:         j.CreatedAt,
	}
}

func toAPISideEffects(effects []service.SideEffect) []api.SideEffect {
	out := make([]api.SideEffect, 0, len(effects))
	for _, e := range effects {
		se := api.SideEffect{
			Name:   e.Name,
			Status: api.SideEffectStatus(e.Status),
		}
		if e.Detail != "" {
			detail := e.Detail
			se.Detail = &detail
		}
		out = append(out, se)
	}
	return out
}

func toAPICampaign(c *models.ReviewCampaign) api.Campaign {
	tags := []string(c.TagFilter)
	if tags == nil {
		tags = []string{}
	}
	return api.Campaign{
		Id:               c.ID,
		Name:             c.Name,
		Status:           api.CampaignStatus(c.Status),
		Tags:             tags,
		ExcludeReviewed:  c.ExcludeReviewed,
		ExcludePending:   c.ExcludePending,
		TotalContacts:    c.TotalContacts,
		RateLimitPerHour: c.RateLimitPerHour,
		StartedAt:        nullTime(c.StartedAt),
		PausedAt:         nullTime(c.PausedAt),
		CompletedAt:      nullTime(c.CompletedAt),
		CreatedAt:        c.CreatedAt,
	}
}

func toAPIReviewRequest(r *models.ReviewRequest) api.ReviewRequest {
	out := api.ReviewRequest{
		Id:         r.ID,
		ContactId:  r.ContactID,
		JobId:      nullUUID(r.JobID),
		CampaignId: nullUUID(r.CampaignID),
		Status:     api.ReviewRequestStatus(r.Status),
		DripStep:   r.DripStep,
		NextDripAt: nullTime(r.NextDripAt),
		RepliedAt:  nullTime(r.RepliedAt),
		ClickedAt:  nullTime(r.ClickedAt),
		ReviewedAt: nullTime(r.ReviewedAt),
		CreatedAt:  r.CreatedAt,
	}
	if r.Rating.Valid {
		rating := int(r.Rating.Int32)
		out.Rating = &rating
	}
	return out
}

func toSweepResponse(s *service.SweepSummary) api.SweepResponse {
	return api.SweepResponse{
		Sweep:      s.Sweep,
		Processed:  s.Processed,
		Sent:       s.Sent,
		Skipped:    s.Skipped,
		Errored:    s.Errored,
		DurationMs: s.Duration.Milliseconds(),
	}
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullUUID(u uuid.NullUUID) *openapi_types.UUID {
	if !u.Valid {
		return nil
	}
	v := u.UUID
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
