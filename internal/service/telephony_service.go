package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/apperrors"
	"github.com/popeskul/crewreach/internal/callback"
	"github.com/popeskul/crewreach/internal/config"
	"github.com/popeskul/crewreach/internal/events"
	"github.com/popeskul/crewreach/internal/gateway"
	"github.com/popeskul/crewreach/internal/models"
	"github.com/popeskul/crewreach/internal/repository"
	"github.com/popeskul/crewreach/internal/templates"
)

const (
	callPreview       = "Incoming call"
	attachmentPreview = "[attachment]"
)

var (
	stopKeywords = map[string]struct{}{
		"STOP": {}, "STOPALL": {}, "UNSUBSCRIBE": {}, "CANCEL": {}, "END": {}, "QUIT": {},
	}
	ratingPattern = regexp.MustCompile(`(?i)^([1-5])(\s*(stars?|/\s*5))?[.!]*$`)
)

type telephonyService struct {
	repo         repository.Repository
	settings     SettingsService
	messenger    Messenger
	gateway      gateway.Gateway
	callbacks    *callback.Builder
	events       emitter
	dialTimeout  int
	voicemailMax int
	logger       *zap.Logger
}

func NewTelephonyService(
	cfg *config.Config,
	repo repository.Repository,
	settings SettingsService,
	messenger Messenger,
	gw gateway.Gateway,
	callbacks *callback.Builder,
	publisher events.Publisher,
	logger *zap.Logger,
) TelephonyService {
	return &telephonyService{
		repo:         repo,
		settings:     settings,
		messenger:    messenger,
		gateway:      gw,
		callbacks:    callbacks,
		events:       emitter{publisher: publisher, logger: logger},
		dialTimeout:  cfg.Gateway.DialTimeout,
		voicemailMax: cfg.Gateway.VoicemailMax,
		logger:       logger,
	}
}

// IncomingCall logs the call and forwards it when the tenant has a
// forwarding number. Logging failures do not change the routing.
func (s *telephonyService) IncomingCall(ctx context.Context, ev CallEvent) (string, error) {
	settings, err := s.settings.ResolveByNumber(ctx, ev.To)
	if err != nil {
		return s.gateway.BuildRoutingDocument(gateway.DocumentHangup, gateway.RoutingParams{}), err
	}

	logErr := s.logCall(ctx, settings, ev)

	if settings.ForwardingNumber == "" {
		params := gateway.RoutingParams{}
		if settings.BusinessName != "" {
			params.Message = fmt.Sprintf("Sorry, %s can't take your call right now. Please try again later.", settings.BusinessName)
		}
		return s.gateway.BuildRoutingDocument(gateway.DocumentHangup, params), logErr
	}

	p := callback.Params{TenantID: settings.TenantID, Caller: ev.From}
	doc := s.gateway.BuildRoutingDocument(gateway.DocumentForward, gateway.RoutingParams{
		ForwardTo:      settings.ForwardingNumber,
		CallerID:       ev.From,
		Gate:           settings.AcceptGate,
		ScreenURL:      s.callbacks.URL(callback.RouteScreen, p),
		ActionURL:      s.callbacks.URL(callback.RouteDialStatus, p),
		TimeoutSeconds: s.dialTimeout,
	})
	return doc, logErr
}

func (s *telephonyService) logCall(ctx context.Context, settings models.TenantSettings, ev CallEvent) error {
	const op = "telephony.IncomingCall"

	contact, conv, err := s.thread(ctx, settings.TenantID, ev.From, models.ContactSourceInboundCall)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now()
	inserted, err := s.repo.Message().Insert(ctx, &models.Message{
		ID:             uuid.New(),
		TenantID:       settings.TenantID,
		ConversationID: conv.ID,
		ContactID:      contact.ID,
		Direction:      models.DirectionInbound,
		Channel:        models.ChannelCall,
		Body:           callPreview,
		ExternalID:     sql.NullString{String: ev.CallSID, Valid: ev.CallSID != ""},
		Status:         models.MessageStatusReceived,
		CreatedAt:      now,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !inserted {
		s.logger.Debug("Duplicate call webhook", zap.String("call_sid", ev.CallSID))
		return nil
	}

	s.touch(ctx, conv.ID, now, callPreview)
	s.events.emit(ctx, events.CallReceived, settings.TenantID, map[string]any{
		"call_sid":   ev.CallSID,
		"contact_id": contact.ID.String(),
	})
	return nil
}

func (s *telephonyService) Screen(_ context.Context, p callback.Params) (string, error) {
	return s.gateway.BuildRoutingDocument(gateway.DocumentAcceptGate, gateway.RoutingParams{
		ActionURL: s.callbacks.URL(callback.RouteScreenResult, p),
		Message:   fmt.Sprintf("Incoming customer call from %s. Press 1 to accept.", p.Caller),
	}), nil
}

func (s *telephonyService) ScreenResult(_ context.Context, _ callback.Params, digits string) (string, error) {
	if strings.TrimSpace(digits) == "1" {
		return s.gateway.BuildRoutingDocument(gateway.DocumentEmpty, gateway.RoutingParams{}), nil
	}
	return s.gateway.BuildRoutingDocument(gateway.DocumentReject, gateway.RoutingParams{}), nil
}

// DialOutcome handles the end of the forwarding attempt. A missed call gets
// a voicemail prompt and, once per call, the missed-call event and the
// optional auto-text.
func (s *telephonyService) DialOutcome(ctx context.Context, p callback.Params, ev DialEvent) (string, error) {
	if ev.Outcome == DialAnswered {
		return s.gateway.BuildRoutingDocument(gateway.DocumentEmpty, gateway.RoutingParams{}), nil
	}

	voicemail := gateway.RoutingParams{
		RecordingCallbackURL: s.callbacks.URL(callback.RouteRecording, p),
		MaxLengthSeconds:     s.voicemailMax,
	}

	settings, err := s.settings.Resolve(ctx, p.TenantID)
	if err != nil {
		return s.gateway.BuildRoutingDocument(gateway.DocumentVoicemail, voicemail), err
	}
	if settings.BusinessName != "" {
		voicemail.Message = fmt.Sprintf("You've reached %s. Please leave a message after the tone.", settings.BusinessName)
	}

	if ev.Replay {
		return s.gateway.BuildRoutingDocument(gateway.DocumentVoicemail, voicemail), nil
	}

	first, err := s.repo.Message().MarkCallMissed(ctx, settings.TenantID, ev.CallSID)
	if err != nil {
		return s.gateway.BuildRoutingDocument(gateway.DocumentVoicemail, voicemail), fmt.Errorf("telephony.DialOutcome: %w", err)
	}
	if !first {
		s.logger.Debug("Missed call already handled or never logged",
			zap.String("tenant_id", settings.TenantID.String()),
			zap.String("call_sid", ev.CallSID))
		return s.gateway.BuildRoutingDocument(gateway.DocumentVoicemail, voicemail), nil
	}

	s.events.emit(ctx, events.CallMissed, settings.TenantID, map[string]any{
		"call_sid": ev.CallSID,
		"caller":   p.Caller,
		"outcome":  string(ev.Outcome),
	})

	err = s.sendMissedCallText(ctx, settings, p.Caller)
	if apperrors.IsSkip(err) {
		err = nil
	}
	return s.gateway.BuildRoutingDocument(gateway.DocumentVoicemail, voicemail), err
}

func (s *telephonyService) sendMissedCallText(ctx context.Context, settings models.TenantSettings, caller string) error {
	const op = "telephony.MissedCallText"

	if !settings.MissedCallText || settings.Templates.MissedCall == "" {
		return apperrors.Skip(op, "missed call text disabled")
	}

	contact, err := s.repo.Contact().GetByPhone(ctx, settings.TenantID, caller)
	if err != nil {
		return repoErr(op, err, "contact")
	}

	vars := baseVars(settings, contact)
	vars[templates.CallerNumber] = caller

	if _, err := s.messenger.Send(ctx, settings, contact, templates.Render(settings.Templates.MissedCall, vars)); err != nil {
		return err
	}
	return nil
}

// Recording appends the voicemail to an existing thread. A caller the
// tenant has no thread with is dropped.
func (s *telephonyService) Recording(ctx context.Context, p callback.Params, ev RecordingEvent) (string, error) {
	const op = "telephony.Recording"

	doc := s.gateway.BuildRoutingDocument(gateway.DocumentReject, gateway.RoutingParams{})

	contact, err := s.repo.Contact().GetByPhone(ctx, p.TenantID, p.Caller)
	if err != nil {
		return doc, s.dropMissing(op, err, p)
	}
	conv, err := s.repo.Conversation().Get(ctx, p.TenantID, contact.ID)
	if err != nil {
		return doc, s.dropMissing(op, err, p)
	}

	ref := recordingRef(ev)
	now := time.Now()
	msg := &models.Message{
		ID:             uuid.New(),
		TenantID:       p.TenantID,
		ConversationID: conv.ID,
		ContactID:      contact.ID,
		Direction:      models.DirectionInbound,
		Channel:        models.ChannelVoicemail,
		Body:           "Voicemail",
		ExternalID:     sql.NullString{String: ref, Valid: ref != ""},
		Status:         models.MessageStatusReceived,
		CreatedAt:      now,
	}
	if ev.RecordingURL != "" {
		msg.MediaURLs = []string{ev.RecordingURL}
	}
	if ev.DurationSeconds > 0 {
		msg.DurationSeconds = sql.NullInt32{Int32: int32(ev.DurationSeconds), Valid: true}
	}

	inserted, err := s.repo.Message().Insert(ctx, msg)
	if err != nil {
		return doc, fmt.Errorf("%s: %w", op, err)
	}
	if !inserted {
		s.logger.Debug("Duplicate recording webhook", zap.String("recording", ref))
		return doc, nil
	}

	s.touch(ctx, conv.ID, now, fmt.Sprintf("Voicemail (%ds)", ev.DurationSeconds))
	s.events.emit(ctx, events.VoicemailReceived, p.TenantID, map[string]any{
		"call_sid":         ev.CallSID,
		"contact_id":       contact.ID.String(),
		"duration_seconds": ev.DurationSeconds,
	})
	return doc, nil
}

func (s *telephonyService) dropMissing(op string, err error, p callback.Params) error {
	if errors.Is(err, repository.ErrNotFound) {
		s.logger.Info("Dropping voicemail without a thread",
			zap.String("tenant_id", p.TenantID.String()),
			zap.String("caller", p.Caller))
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// recordingRef is the recording sid, or the last segment of its URL when
// the callback did not carry one.
func recordingRef(ev RecordingEvent) string {
	if ev.RecordingSID != "" {
		return ev.RecordingSID
	}
	if ev.RecordingURL == "" {
		return ""
	}
	return path.Base(strings.TrimSuffix(ev.RecordingURL, "/"))
}

// IncomingSMS appends the text to the thread. A stop keyword opts the
// contact out; any other reply to an active review request freezes its drip.
func (s *telephonyService) IncomingSMS(ctx context.Context, ev SMSEvent) error {
	const op = "telephony.IncomingSMS"

	settings, err := s.settings.ResolveByNumber(ctx, ev.To)
	if err != nil {
		return err
	}

	contact, conv, err := s.thread(ctx, settings.TenantID, ev.From, models.ContactSourceInboundSMS)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now()
	msg := &models.Message{
		ID:             uuid.New(),
		TenantID:       settings.TenantID,
		ConversationID: conv.ID,
		ContactID:      contact.ID,
		Direction:      models.DirectionInbound,
		Channel:        models.ChannelSMS,
		Body:           ev.Body,
		ExternalID:     sql.NullString{String: ev.MessageSID, Valid: ev.MessageSID != ""},
		Status:         models.MessageStatusReceived,
		MediaURLs:      ev.MediaURLs,
		CreatedAt:      now,
	}
	inserted, err := s.repo.Message().Insert(ctx, msg)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !inserted {
		s.logger.Debug("Duplicate SMS webhook", zap.String("message_sid", ev.MessageSID))
		return nil
	}

	preview := ev.Body
	if strings.TrimSpace(preview) == "" && len(ev.MediaURLs) > 0 {
		preview = attachmentPreview
	}
	s.touch(ctx, conv.ID, now, models.Preview(preview))
	s.events.emit(ctx, events.SMSReceived, settings.TenantID, map[string]any{
		"message_sid": ev.MessageSID,
		"contact_id":  contact.ID.String(),
		"media":       len(ev.MediaURLs),
	})

	if IsStopKeyword(ev.Body) {
		return s.optOut(ctx, settings, contact, now)
	}
	return s.recordReply(ctx, settings, contact, ev.Body, now)
}

func (s *telephonyService) optOut(ctx context.Context, settings models.TenantSettings, contact *models.Contact, now time.Time) error {
	const op = "telephony.OptOut"

	if err := s.repo.Contact().MarkOptedOut(ctx, settings.TenantID, contact.ID, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.events.emit(ctx, events.ContactOptedOut, settings.TenantID, map[string]any{
		"contact_id": contact.ID.String(),
	})
	s.logger.Info("Contact opted out",
		zap.String("tenant_id", settings.TenantID.String()),
		zap.String("contact_id", contact.ID.String()))

	active, err := s.activeRequest(ctx, settings, contact.ID, now)
	if err != nil || active == nil {
		return err
	}
	if err := s.repo.ReviewRequest().Stop(ctx, active.ID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.events.emit(ctx, events.ReviewRequestStopped, settings.TenantID, map[string]any{
		"review_request_id": active.ID.String(),
		"reason":            "opted_out",
	})
	return nil
}

func (s *telephonyService) recordReply(ctx context.Context, settings models.TenantSettings, contact *models.Contact, body string, now time.Time) error {
	active, err := s.activeRequest(ctx, settings, contact.ID, now)
	if err != nil || active == nil {
		return err
	}

	rating := ParseRating(body)
	if err := s.repo.ReviewRequest().RecordReply(ctx, active.ID, rating, now); err != nil {
		return fmt.Errorf("telephony.RecordReply: %w", err)
	}

	data := map[string]any{"review_request_id": active.ID.String()}
	if rating != nil {
		data["rating"] = *rating
	}
	s.events.emit(ctx, events.ReviewReplied, settings.TenantID, data)
	return nil
}

func (s *telephonyService) activeRequest(ctx context.Context, settings models.TenantSettings, contactID uuid.UUID, now time.Time) (*models.ReviewRequest, error) {
	req, err := s.repo.ReviewRequest().FindActive(ctx, settings.TenantID, contactID, now.Add(-settings.DedupWindow))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active review request: %w", err)
	}
	return req, nil
}

// DeliveryStatus applies a provider status callback. Unknown statuses and
// unmatched messages are logged and dropped.
func (s *telephonyService) DeliveryStatus(ctx context.Context, ev StatusEvent) error {
	status, ok := models.ParseMessageStatus(ev.Status)
	if !ok {
		s.logger.Warn("Ignoring unknown delivery status",
			zap.String("message_sid", ev.MessageSID),
			zap.String("status", ev.Status))
		return nil
	}

	var errMsg *string
	if ev.ErrorCode != "" || ev.ErrorMessage != "" {
		text := strings.TrimSpace(strings.Trim(ev.ErrorCode+": "+ev.ErrorMessage, ": "))
		errMsg = &text
	}

	msg, err := s.repo.Message().UpdateStatusByExternalID(ctx, ev.MessageSID, status, errMsg, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("Delivery status for unknown message",
				zap.String("message_sid", ev.MessageSID),
				zap.String("status", ev.Status))
			return nil
		}
		return fmt.Errorf("telephony.DeliveryStatus: %w", err)
	}

	if status.IsFailure() {
		data := map[string]any{
			"message_id":  msg.ID.String(),
			"message_sid": ev.MessageSID,
			"status":      string(status),
		}
		if ev.ErrorCode != "" {
			data["error_code"] = ev.ErrorCode
		}
		s.events.emit(ctx, events.SMSDeliveryFailed, msg.TenantID, data)
	}
	return nil
}

// thread finds or creates the contact and conversation for a caller.
func (s *telephonyService) thread(ctx context.Context, tenantID uuid.UUID, phone string, source models.ContactSource) (*models.Contact, *models.Conversation, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, nil, apperrors.Validation("telephony.thread", "caller number is empty")
	}

	contact, created, err := s.repo.Contact().FindOrCreateByPhone(ctx, tenantID, phone, source)
	if err != nil {
		return nil, nil, err
	}
	if created {
		s.logger.Info("Contact created from inbound event",
			zap.String("tenant_id", tenantID.String()),
			zap.String("contact_id", contact.ID.String()),
			zap.String("source", string(source)))
	}

	conv, err := s.repo.Conversation().FindOrCreate(ctx, tenantID, contact.ID)
	if err != nil {
		return nil, nil, err
	}
	return contact, conv, nil
}

func (s *telephonyService) touch(ctx context.Context, conversationID uuid.UUID, at time.Time, preview string) {
	if err := s.repo.Conversation().Touch(ctx, conversationID, at, preview, true); err != nil {
		s.logger.Warn("Failed to update conversation preview",
			zap.String("conversation_id", conversationID.String()),
			zap.Error(err))
	}
}

// IsStopKeyword reports whether body is a carrier opt-out keyword.
func IsStopKeyword(body string) bool {
	word := strings.ToUpper(strings.Trim(strings.TrimSpace(body), ".!"))
	_, ok := stopKeywords[word]
	return ok
}

// ParseRating reads a 1 to 5 rating from a short reply such as "5",
// "4 stars" or "3/5". Anything else has no rating.
func ParseRating(body string) *int {
	m := ratingPattern.FindStringSubmatch(strings.TrimSpace(body))
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}
