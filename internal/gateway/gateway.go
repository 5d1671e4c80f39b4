// Package gateway is the messaging provider boundary: sending SMS and
// building the documents that steer an inbound call.
package gateway

//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

import (
	"context"

	"github.com/popeskul/crewreach/internal/models"
)

// SendResult is what the provider reports right after accepting a message.
type SendResult struct {
	ExternalID string
	Status     models.MessageStatus
}

// DocumentKind selects a call routing document.
type DocumentKind string

const (
	// DocumentForward dials the forwarding number, optionally screening the
	// callee with the accept gate first.
	DocumentForward DocumentKind = "forward"
	// DocumentVoicemail plays a prompt and records a message.
	DocumentVoicemail DocumentKind = "voicemail_prompt"
	// DocumentHangup plays a message and ends the call.
	DocumentHangup DocumentKind = "hangup_message"
	// DocumentAcceptGate asks the callee to press a digit to take the call.
	DocumentAcceptGate DocumentKind = "accept_gate_prompt"
	// DocumentReject ends the current leg silently.
	DocumentReject DocumentKind = "reject"
	// DocumentEmpty acknowledges without further instructions.
	DocumentEmpty DocumentKind = "empty"
)

// RoutingParams carries the inputs a routing document may need. Unused
// fields are ignored by kinds that do not need them.
type RoutingParams struct {
	ForwardTo            string
	CallerID             string
	Gate                 bool
	ScreenURL            string
	ActionURL            string
	RecordingCallbackURL string
	Message              string
	TimeoutSeconds       int
	MaxLengthSeconds     int
}

// Gateway is the messaging provider contract the engine depends on.
type Gateway interface {
	// SendSMS hands one message to the provider. Failures are returned as
	// apperrors.KindGateway and are never retried here.
	SendSMS(ctx context.Context, from, to, body, statusCallbackURL string) (*SendResult, error)
	// BuildRoutingDocument is pure and never fails; an unknown kind or an
	// encoding problem yields a plain hangup document.
	BuildRoutingDocument(kind DocumentKind, params RoutingParams) string
	// BreakerState reports the state of the outbound circuit breaker.
	BreakerState() BreakerState
	// BreakerCounts reports requests and failures in the current interval.
	BreakerCounts() (requests, failures uint32)
}
