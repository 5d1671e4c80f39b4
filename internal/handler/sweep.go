package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/middleware"
	"github.com/popeskul/crewreach/internal/service"
)

type sweepFunc func(ctx context.Context) (*service.SweepSummary, error)

// SweepHandler exposes the periodic sweeps to an external trigger.
type SweepHandler struct {
	sweeps map[string]sweepFunc
	logger *zap.Logger
}

func NewSweepHandler(svc *service.Service, logger *zap.Logger) *SweepHandler {
	return &SweepHandler{
		sweeps: map[string]sweepFunc{
			service.SweepInitial:   svc.Drip.RunInitialSweep,
			service.SweepReminders: svc.Drip.RunReminderSweep,
			service.SweepCampaigns: svc.Campaigns.RunDrain,
		},
		logger: logger,
	}
}

// Routes mounts one POST endpoint per sweep on r.
func (h *SweepHandler) Routes(r chi.Router) {
	r.Post("/{sweep}", h.Run)
}

func (h *SweepHandler) Run(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "sweep")
	run, ok := h.sweeps[name]
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, map[string]string{
			"error":   errorCodeNotFound,
			"message": "Unknown sweep " + name,
		})
		return
	}

	summary, err := run(r.Context())
	if err != nil {
		h.logger.Error("Sweep failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("sweep", name),
			zap.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{
			"error":   middleware.ErrorCodeInternal,
			"message": "Sweep " + name + " failed",
		})
		return
	}

	render.JSON(w, r, toSweepResponse(summary))
}
