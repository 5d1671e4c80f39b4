// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/api"
	"github.com/popeskul/crewreach/internal/middleware"
	"github.com/popeskul/crewreach/internal/models"
	"github.com/popeskul/crewreach/internal/scheduler"
	"github.com/popeskul/crewreach/internal/service"
)

const (
	errorCodeSchedulerAlreadyRunning = "SCHEDULER_ALREADY_RUNNING"
	errorCodeSchedulerNotRunning     = "SCHEDULER_NOT_RUNNING"
	errorCodeInvalidBody             = "INVALID_BODY"
)

const (
	errorMessageSchedulerAlreadyRunning = "Scheduler is already running"
	errorMessageSchedulerNotRunning     = "Scheduler is not running"
	errorMessageFailedToStartScheduler  = "Failed to start scheduler"
	errorMessageFailedToStopScheduler   = "Failed to stop scheduler"
	errorMessageInvalidBody             = "Request body is not valid JSON"
)

const (
	schedulerMessageStarted = "Scheduler started successfully"
	schedulerMessageStopped = "Scheduler stopped successfully"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance that implements api.ServerInterface.
func NewHandler(service *service.Service, logger *zap.Logger) api.ServerInterface {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateJob implements api.ServerInterface.
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request, params api.CreateJobParams) {
	var body api.CreateJobRequest
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidBody, errorMessageInvalidBody)
		return
	}

	in := service.CreateJobInput{
		ContactID:     body.ContactId,
		Title:         body.Title,
		ScheduledDate: body.ScheduledDate.Time,
		TimeMode:      models.TimeMode(body.TimeMode),
		WindowStart:   deref(body.WindowStart),
		WindowEnd:     deref(body.WindowEnd),
		TimeOfDay:     deref(body.TimeOfDay),
		StartAt:       body.StartAt,
	}

	job, err := h.service.Jobs.Create(r.Context(), params.XTenantID, in)
	if err != nil {
		h.sendServiceError(w, r, "create job", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toAPIJob(job))
}

// GetJob implements api.ServerInterface.
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request, jobId openapi_types.UUID, params api.GetJobParams) {
	job, err := h.service.Jobs.Get(r.Context(), params.XTenantID, jobId)
	if err != nil {
		h.sendServiceError(w, r, "get job", err)
		return
	}

	render.JSON(w, r, toAPIJob(job))
}

// TransitionJob implements api.ServerInterface. A committed transition is
// reported with its side effects even when some of them failed.
func (h *Handler) TransitionJob(w http.ResponseWriter, r *http.Request, jobId openapi_types.UUID, params api.TransitionJobParams) {
	var body api.TransitionJobRequest
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidBody, errorMessageInvalidBody)
		return
	}

	job, outcome, err := h.service.Jobs.Transition(r.Context(), params.XTenantID, jobId, models.JobStatus(body.Status))
	if err != nil {
		h.sendServiceError(w, r, "transition job", err)
		return
	}

	render.JSON(w, r, api.TransitionResponse{
		Applied:     outcome.Applied,
		Job:         toAPIJob(job),
		SideEffects: toAPISideEffects(outcome.SideEffects),
	})
}

// CreateCampaign implements api.ServerInterface. Both exclusions default to
// on when omitted.
func (h *Handler) CreateCampaign(w http.ResponseWriter, r *http.Request, params api.CreateCampaignParams) {
	var body api.CreateCampaignRequest
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidBody, errorMessageInvalidBody)
		return
	}

	in := service.CreateCampaignInput{
		Name:             body.Name,
		RateLimitPerHour: body.RateLimitPerHour,
		Filter: models.AudienceFilter{
			ExcludeReviewed: boolOr(body.ExcludeReviewed, true),
			ExcludePending:  boolOr(body.ExcludePending, true),
		},
	}
	if body.Tags != nil {
		in.Filter.Tags = *body.Tags
	}

	campaign, err := h.service.Campaigns.Create(r.Context(), params.XTenantID, in)
	if err != nil {
		h.sendServiceError(w, r, "create campaign", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toAPICampaign(campaign))
}

// GetCampaign implements api.ServerInterface.
func (h *Handler) GetCampaign(w http.ResponseWriter, r *http.Request, campaignId openapi_types.UUID, params api.GetCampaignParams) {
	campaign, err := h.service.Campaigns.Get(r.Context(), params.XTenantID, campaignId)
	if err != nil {
		h.sendServiceError(w, r, "get campaign", err)
		return
	}

	render.JSON(w, r, toAPICampaign(campaign))
}

// StartCampaign implements api.ServerInterface.
func (h *Handler) StartCampaign(w http.ResponseWriter, r *http.Request, campaignId openapi_types.UUID, params api.StartCampaignParams) {
	campaign, err := h.service.Campaigns.Start(r.Context(), params.XTenantID, campaignId)
	if err != nil {
		h.sendServiceError(w, r, "start campaign", err)
		return
	}

	render.JSON(w, r, toAPICampaign(campaign))
}

// PauseCampaign implements api.ServerInterface.
func (h *Handler) PauseCampaign(w http.ResponseWriter, r *http.Request, campaignId openapi_types.UUID, params api.PauseCampaignParams) {
	campaign, err := h.service.Campaigns.Pause(r.Context(), params.XTenantID, campaignId)
	if err != nil {
		h.sendServiceError(w, r, "pause campaign", err)
		return
	}

	render.JSON(w, r, toAPICampaign(campaign))
}

// DeleteCampaign implements api.ServerInterface.
func (h *Handler) DeleteCampaign(w http.ResponseWriter, r *http.Request, campaignId openapi_types.UUID, params api.DeleteCampaignParams) {
	if err := h.service.Campaigns.Delete(r.Context(), params.XTenantID, campaignId); err != nil {
		h.sendServiceError(w, r, "delete campaign", err)
		return
	}

	render.NoContent(w, r)
}

// MarkReviewRequestReviewed implements api.ServerInterface.
func (h *Handler) MarkReviewRequestReviewed(w http.ResponseWriter, r *http.Request, requestId openapi_types.UUID, params api.MarkReviewRequestReviewedParams) {
	req, err := h.service.Drip.MarkReviewed(r.Context(), params.XTenantID, requestId)
	if err != nil {
		h.sendServiceError(w, r, "mark reviewed", err)
		return
	}

	render.JSON(w, r, toAPIReviewRequest(req))
}

// TrackReviewClick implements api.ServerInterface.
func (h *Handler) TrackReviewClick(w http.ResponseWriter, r *http.Request, requestId openapi_types.UUID) {
	target, err := h.service.Drip.RecordClick(r.Context(), requestId)
	if err != nil {
		h.sendServiceError(w, r, "track review click", err)
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// StartScheduler implements api.ServerInterface.
func (h *Handler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	err := h.service.Scheduler.Start()
	if err != nil {
		if errors.Is(err, scheduler.ErrSchedulerAlreadyRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerAlreadyRunning, errorMessageSchedulerAlreadyRunning)
			return
		}

		h.logger.Error("Failed to start scheduler",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStartScheduler)
		return
	}

	render.JSON(w, r, api.SchedulerResponse{
		Status:  api.SchedulerResponseStatusStarted,
		Message: schedulerMessageStarted,
	})
}

// StopScheduler implements api.ServerInterface.
func (h *Handler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	err := h.service.Scheduler.Stop()
	if err != nil {
		if errors.Is(err, scheduler.ErrSchedulerNotRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerNotRunning, errorMessageSchedulerNotRunning)
			return
		}

		h.logger.Error("Failed to stop scheduler",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStopScheduler)
		return
	}

	render.JSON(w, r, api.SchedulerResponse{
		Status:  api.SchedulerResponseStatusStopped,
		Message: schedulerMessageStopped,
	})
}

// HealthCheck implements api.ServerInterface.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := api.HealthResponse{
		Status:    health.Status,
		Timestamp: time.Now(),
	}

	if health.SchedulerStatus != "" {
		status := health.SchedulerStatus
		response.SchedulerStatus = &status
	}

	if health.DatabaseStatus != "" {
		status := health.DatabaseStatus
		response.DatabaseStatus = &status
	}

	if health.RedisStatus != "" {
		status := health.RedisStatus
		response.RedisStatus = &status
	}

	if health.CircuitBreakerStatus != "" {
		response.CircuitBreakerStatus = &health.CircuitBreakerStatus
	}

	if health.CircuitBreakerState != "" {
		state := health.CircuitBreakerState
		response.CircuitBreakerState = &state
	}

	// Degraded stays 200: inbound webhooks are still served while sends
	// are blocked by the breaker.
	if health.Status == api.Unhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, api.ErrorResponse{
		Error:   errorCode,
		Message: message,
		Timestamp: func() *time.Time {
			t := time.Now()
			return &t
		}(),
	})
}
