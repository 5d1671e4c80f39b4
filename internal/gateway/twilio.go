package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/apperrors"
	"github.com/popeskul/crewreach/internal/config"
	"github.com/popeskul/crewreach/internal/models"
)

// messageCreator is the slice of the Twilio REST API used for sending.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type twilioGateway struct {
	api     messageCreator
	breaker *CircuitBreaker
	logger  *zap.Logger
	router  *router
}

// NewTwilioGateway creates a Gateway backed by the Twilio REST API.
func NewTwilioGateway(cfg *config.Config, logger *zap.Logger) Gateway {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.Twilio.AccountSID,
		Password: cfg.Twilio.AuthToken,
	})
	return newTwilioGateway(client.Api, NewCircuitBreaker(&cfg.Gateway.CircuitBreaker, logger), logger)
}

func newTwilioGateway(api messageCreator, breaker *CircuitBreaker, logger *zap.Logger) *twilioGateway {
	return &twilioGateway{
		api:     api,
		breaker: breaker,
		logger:  logger,
		router:  newRouter(logger),
	}
}

func (g *twilioGateway) SendSMS(ctx context.Context, from, to, body, statusCallbackURL string) (*SendResult, error) {
	const op = "gateway.SendSMS"

	if from == "" || to == "" {
		return nil, apperrors.Gateway(op, errors.New("sender and recipient are required"))
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(body)
	if statusCallbackURL != "" {
		params.SetStatusCallback(statusCallbackURL)
	}

	start := time.Now()
	var resp *twilioApi.ApiV2010Message
	err := g.breaker.Execute(ctx, func() error {
		var sendErr error
		resp, sendErr = g.api.CreateMessage(params)
		return sendErr
	})
	if err != nil {
		g.logger.Error("Failed to send SMS",
			zap.String("to", to),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, apperrors.Gateway(op, err)
	}
	if resp == nil || resp.Sid == nil {
		return nil, apperrors.Gateway(op, errors.New("provider returned no message sid"))
	}

	status := models.MessageStatusQueued
	if resp.Status != nil {
		if parsed, ok := models.ParseMessageStatus(*resp.Status); ok {
			status = parsed
		}
	}

	g.logger.Debug("SMS accepted by provider",
		zap.String("sid", *resp.Sid),
		zap.String("status", string(status)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &SendResult{ExternalID: *resp.Sid, Status: status}, nil
}

func (g *twilioGateway) BuildRoutingDocument(kind DocumentKind, params RoutingParams) string {
	return g.router.build(kind, params)
}

func (g *twilioGateway) BreakerState() BreakerState {
	return g.breaker.GetState()
}

func (g *twilioGateway) BreakerCounts() (requests, failures uint32) {
	return g.breaker.GetCounts()
}
