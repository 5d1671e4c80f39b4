package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/api"
	"github.com/popeskul/crewreach/internal/config"
	"github.com/popeskul/crewreach/internal/gateway"
	"github.com/popeskul/crewreach/internal/handler"
	"github.com/popeskul/crewreach/internal/middleware"
	"github.com/popeskul/crewreach/internal/service"
)

func setupRouter(cfg *config.Config, svc *service.Service, gw gateway.Gateway, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, "api/openapi.yaml")
	})

	r.Route("/webhooks", func(r chi.Router) {
		if cfg.Twilio.ValidateSignatures {
			r.Use(middleware.TwilioSignature(cfg.Twilio.AuthToken, cfg.Webhook.PublicBaseURL, logger))
		}
		handler.NewWebhookHandler(svc, gw, logger).Routes(r)
	})

	r.Route("/internal/sweeps", func(r chi.Router) {
		r.Use(middleware.TriggerSecret(cfg.Trigger.SharedSecret))
		handler.NewSweepHandler(svc, logger).Routes(r)
	})

	api.HandlerWithOptions(handler.NewHandler(svc, logger), api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: handler.RequestErrorHandler,
	})

	return r
}
