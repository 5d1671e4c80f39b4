package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/popeskul/crewreach/internal/apperrors"
	"github.com/popeskul/crewreach/internal/callback"
	"github.com/popeskul/crewreach/internal/config"
	"github.com/popeskul/crewreach/internal/events"
	"github.com/popeskul/crewreach/internal/gateway"
	"github.com/popeskul/crewreach/internal/models"
	"github.com/popeskul/crewreach/internal/repository"
	"github.com/popeskul/crewreach/internal/service"
)

func newTelephonyService(f *fixture) service.TelephonyService {
	cfg := &config.Config{Gateway: config.GatewayConfig{DialTimeout: 25, VoicemailMax: 90}}
	return service.NewTelephonyService(cfg, f.repo, f.settings, f.messenger, f.gateway, f.callbacks, f.publisher, f.logger)
}

func (f *fixture) expectThread(tenantID uuid.UUID, contact *models.Contact, source models.ContactSource) *models.Conversation {
	conv := &models.Conversation{ID: uuid.New(), TenantID: tenantID, ContactID: contact.ID}
	f.contacts.EXPECT().FindOrCreateByPhone(gomock.Any(), tenantID, contact.Phone, source).Return(contact, false, nil)
	f.conversations.EXPECT().FindOrCreate(gomock.Any(), tenantID, contact.ID).Return(conv, nil)
	return conv
}

func TestTelephonyService_IncomingCall_Forwards(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	tenantID := uuid.New()
	settings := testSettings(tenantID)
	settings.AcceptGate = true
	contact := testContact(tenantID)
	ev := service.CallEvent{CallSID: "CA123", From: contact.Phone, To: settings.MessagingNumber}

	f.settings.EXPECT().ResolveByNumber(gomock.Any(), ev.To).Return(settings, nil)
	conv := f.expectThread(tenantID, contact, models.ContactSourceInboundCall)
	f.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg *models.Message) (bool, error) {
		assert.Equal(t, models.ChannelCall, msg.Channel)
		assert.Equal(t, models.DirectionInbound, msg.Direction)
		assert.Equal(t, "CA123", msg.ExternalID.String)
		return true, nil
	})
	f.conversations.EXPECT().Touch(gomock.Any(), conv.ID, gomock.Any(), "Incoming call", true).Return(nil)
	f.gateway.EXPECT().BuildRoutingDocument(gateway.DocumentForward, gomock.Any()).
		DoAndReturn(func(_ gateway.DocumentKind, p gateway.RoutingParams) string {
			assert.Equal(t, settings.ForwardingNumber, p.ForwardTo)
			assert.True(t, p.Gate)
			assert.Equal(t, 25, p.TimeoutSeconds)

			params := callback.Params{TenantID: tenantID, Caller: contact.Phone}
			assert.Equal(t, f.callbacks.URL(callback.RouteDialStatus, params), p.ActionURL)
			assert.Equal(t, f.callbacks.URL(callback.RouteScreen, params), p.ScreenURL)
			return "<Response><Dial/></Response>"
		})

	doc, err := newTelephonyService(f).IncomingCall(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, "<Response><Dial/></Response>", doc)
}

func TestTelephonyService_IncomingCall_NoForwardingNumber(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	tenantID := uuid.New()
	settings := testSettings(tenantID)
	settings.ForwardingNumber = ""
	contact := testContact(tenantID)
	ev := service.CallEvent{CallSID: "CA124", From: contact.Phone, To: settings.MessagingNumber}

	f.settings.EXPECT().ResolveByNumber(gomock.Any(), ev.To).Return(settings, nil)
	conv := f.expectThread(tenantID, contact, models.ContactSourceInboundCall)
	f.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
	f.conversations.EXPECT().Touch(gomock.Any(), conv.ID, gomock.Any(), gomock.Any(), true).Return(nil)
	f.gateway.EXPECT().BuildRoutingDocument(gateway.DocumentHangup, gomock.Any()).
		DoAndReturn(func(_ gateway.DocumentKind, p gateway.RoutingParams) string {
			assert.Contains(t, p.Message, "Acme Plumbing can't take your call")
			return "<Response><Hangup/></Response>"
		})

	doc, err := newTelephonyService(f).IncomingCall(context.Background(), ev)
	require.NoError(t, err)
	assert.Contains(t, doc, "Hangup")
}

func TestTelephonyService_IncomingCall_UnknownNumber(t *testing.T) {
	f := newFixture(t)
	ev := service.CallEvent{CallSID: "CA125", From: "+15125550143", To: "+15125550000"}

	f.settings.EXPECT().ResolveByNumber(gomock.Any(), ev.To).
		Return(models.TenantSettings{}, apperrors.NotFound("settings.ResolveByNumber", "tenant not found"))
	f.gateway.EXPECT().BuildRoutingDocument(gateway.DocumentHangup, gomock.Any()).Return("<Response><Hangup/></Response>")

	doc, err := newTelephonyService(f).IncomingCall(context.Background(), ev)
	assert.Error(t, err)
	assert.NotEmpty(t, doc)
}

func TestTelephonyService_ScreenResult(t *testing.T) {
	f := newFixture(t)
	f.gateway.EXPECT().BuildRoutingDocument(gateway.DocumentEmpty, gomock.Any()).Return("empty")
	f.gateway.EXPECT().BuildRoutingDocument(gateway.DocumentReject, gomock.Any()).Return("reject")

	svc := newTelephonyService(f)
	p := callback.Params{TenantID: uuid.New(), Caller: "+15125550143"}

	doc, err := svc.ScreenResult(context.Background(), p, "1")
	require.NoError(t, err)
	assert.Equal(t, "empty", doc)

	doc, err = svc.ScreenResult(context.Background(), p, "9")
	require.NoError(t, err)
	assert.Equal(t, "reject", doc)
}

func TestTelephonyService_DialOutcome_Answered(t *testing.T) {
	f := newFixture(t)
	f.gateway.EXPECT().BuildRoutingDocument(gateway.DocumentEmpty, gomock.Any()).Return("empty")

	doc, err := newTelephonyService(f).DialOutcome(context.Background(),
		callback.Params{TenantID: uuid.New(), Caller: "+15125550143"},
		service.DialEvent{CallSID: "CA1", Outcome: service.DialAnswered})
	require.NoError(t, err)
	assert.Equal(t, "empty", doc)
}

func TestTelephonyService_DialOutcome_MissedSendsTextAndVoicemail(t *testing.T) {
	f := newFixture(t)
	tenantID := uuid.New()
	contact := testContact(tenantID)
	p := callback.Params{TenantID: tenantID, Caller: contact.Phone}

	f.settings.EXPECT().Resolve(gomock.Any(), tenantID).Return(testSettings(tenantID), nil)
	f.messages.EXPECT().MarkCallMissed(gomock.Any(), tenantID, "CA2").Return(true, nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev events.Event) error {
		assert.Equal(t, events.CallMissed, ev.Name)
		assert.Equal(t, "busy", ev.Data["outcome"])
		return nil
	})
	f.contacts.EXPECT().GetByPhone(gomock.Any(), tenantID, contact.Phone).Return(contact, nil)
	f.messenger.EXPECT().Send(gomock.Any(), gomock.Any(), contact, "Sorry we missed your call! This is Acme Plumbing. How can we help?").
		Return(&models.Message{}, nil)
	f.gateway.EXPECT().BuildRoutingDocument(gateway.DocumentVoicemail, gomock.Any()).
		DoAndReturn(func(_ gateway.DocumentKind, rp gateway.RoutingParams) string {
			assert.Equal(t, f.callbacks.URL(callback.RouteRecording, p), rp.RecordingCallbackURL)
			assert.Equal(t, 90, rp.MaxLengthSeconds)
			return "voicemail"
		})

	doc, err := newTelephonyService(f).DialOutcome(context.Background(), p,
		service.DialEvent{CallSID: "CA2", Outcome: service.ParseDialOutcome("busy")})
	require.NoError(t, err)
	assert.Equal(t, "voicemail", doc)
}

func TestTelephonyService_DialOutcome_TextDisabled(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	tenantID := uuid.New()
	settings := testSettings(tenantID)
	settings.MissedCallText = false

	f.settings.EXPECT().Resolve(gomock.Any(), tenantID).Return(settings, nil)
	f.messages.EXPECT().MarkCallMissed(gomock.Any(), tenantID, "CA3").Return(true, nil)
	f.gateway.EXPECT().BuildRoutingDocument(gateway.DocumentVoicemail, gomock.Any()).Return("voicemail")

	doc, err := newTelephonyService(f).DialOutcome(context.Background(),
		callback.Params{TenantID: tenantID, Caller: "+15125550143"},
		service.DialEvent{CallSID: "CA3", Outcome: service.DialNoAnswer})
	require.NoError(t, err)
	assert.Equal(t, "voicemail", doc)
}

func TestTelephonyService_DialOutcome_ReplayTextsOnce(t *testing.T) {
	f := newFixture(t)
	tenantID := uuid.New()
	contact := testContact(tenantID)
	p := callback.Params{TenantID: tenantID, Caller: contact.Phone}
	ev := service.DialEvent{CallSID: "CA-same", Outcome: service.DialNoAnswer}

	f.settings.EXPECT().Resolve(gomock.Any(), tenantID).Return(testSettings(tenantID), nil).Times(2)
	gomock.InOrder(
		f.messages.EXPECT().MarkCallMissed(gomock.Any(), tenantID, "CA-same").Return(true, nil),
		f.messages.EXPECT().MarkCallMissed(gomock.Any(), tenantID, "CA-same").Return(false, nil),
	)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.contacts.EXPECT().GetByPhone(gomock.Any(), tenantID, contact.Phone).Return(contact, nil).Times(1)
	f.messenger.EXPECT().Send(gomock.Any(), gomock.Any(), contact, gomock.Any()).Return(&models.Message{}, nil).Times(1)
	f.gateway.EXPECT().BuildRoutingDocument(gateway.DocumentVoicemail, gomock.Any()).Return("voicemail").Times(2)

	svc := newTelephonyService(f)
	for i := 0; i < 2; i++ {
		doc, err := svc.DialOutcome(context.Background(), p, ev)
		require.NoError(t, err)
		assert.Equal(t, "voicemail", doc)
	}
}

func TestTelephonyService_DialOutcome_FlaggedReplaySkipsSideEffects(t *testing.T) {
	f := newFixture(t)
	tenantID := uuid.New()

	f.settings.EXPECT().Resolve(gomock.Any(), tenantID).Return(testSettings(tenantID), nil)
	f.gateway.EXPECT().BuildRoutingDocument(gateway.DocumentVoicemail, gomock.Any()).
		DoAndReturn(func(_ gateway.DocumentKind, rp gateway.RoutingParams) string {
			assert.Contains(t, rp.Message, "Acme Plumbing")
			return "voicemail"
		})

	doc, err := newTelephonyService(f).DialOutcome(context.Background(),
		callback.Params{TenantID: tenantID, Caller: "+15125550143"},
		service.DialEvent{CallSID: "CA4", Outcome: service.DialBusy, Replay: true})
	require.NoError(t, err)
	assert.Equal(t, "voicemail", doc)
}

func TestTelephonyService_DialOutcome_GuardFailure(t *testing.T) {
	f := newFixture(t)
	tenantID := uuid.New()

	f.settings.EXPECT().Resolve(gomock.Any(), tenantID).Return(testSettings(tenantID), nil)
	f.messages.EXPECT().MarkCallMissed(gomock.Any(), tenantID, "CA5").Return(false, errors.New("connection reset"))
	f.gateway.EXPECT().BuildRoutingDocument(gateway.DocumentVoicemail, gomock.Any()).Return("voicemail")

	doc, err := newTelephonyService(f).DialOutcome(context.Background(),
		callback.Params{TenantID: tenantID, Caller: "+15125550143"},
		service.DialEvent{CallSID: "CA5", Outcome: service.DialFailed})
	require.Error(t, err)
	assert.Equal(t, "voicemail", doc, "the caller still reaches voicemail")
}

func TestTelephonyService_Recording_DuplicateIsNoop(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	tenantID := uuid.New()
	contact := testContact(tenantID)
	conv := &models.Conversation{ID: uuid.New(), TenantID: tenantID, ContactID: contact.ID}
	p := callback.Params{TenantID: tenantID, Caller: contact.Phone}
	ev := service.RecordingEvent{
		CallSID:         "CA9",
		RecordingURL:    "https://api.twilio.com/2010-04-01/Accounts/AC1/Recordings/RE42",
		DurationSeconds: 17,
	}

	f.gateway.EXPECT().BuildRoutingDocument(gateway.DocumentReject, gomock.Any()).Return("hangup").Times(2)
	f.contacts.EXPECT().GetByPhone(gomock.Any(), tenantID, contact.Phone).Return(contact, nil).Times(2)
	f.conversations.EXPECT().Get(gomock.Any(), tenantID, contact.ID).Return(conv, nil).Times(2)
	gomock.InOrder(
		f.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg *models.Message) (bool, error) {
			assert.Equal(t, models.ChannelVoicemail, msg.Channel)
			assert.Equal(t, "RE42", msg.ExternalID.String)
			assert.Equal(t, int32(17), msg.DurationSeconds.Int32)
			assert.Equal(t, []string{ev.RecordingURL}, []string(msg.MediaURLs))
			return true, nil
		}),
		f.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil),
	)
	f.conversations.EXPECT().Touch(gomock.Any(), conv.ID, gomock.Any(), "Voicemail (17s)", true).Return(nil).Times(1)

	svc := newTelephonyService(f)
	for i := 0; i < 2; i++ {
		_, err := svc.Recording(context.Background(), p, ev)
		require.NoError(t, err)
	}
}

func TestTelephonyService_Recording_UnknownCallerDropped(t *testing.T) {
	f := newFixture(t)
	tenantID := uuid.New()
	p := callback.Params{TenantID: tenantID, Caller: "+15125550177"}

	f.gateway.EXPECT().BuildRoutingDocument(gateway.DocumentReject, gomock.Any()).Return("hangup")
	f.contacts.EXPECT().GetByPhone(gomock.Any(), tenantID, p.Caller).Return(nil, repository.ErrNotFound)

	doc, err := newTelephonyService(f).Recording(context.Background(), p, service.RecordingEvent{RecordingSID: "RE1"})
	require.NoError(t, err)
	assert.Equal(t, "hangup", doc)
}

func TestTelephonyService_IncomingSMS_StopOptsOut(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	tenantID := uuid.New()
	settings := testSettings(tenantID)
	contact := testContact(tenantID)
	active := &models.ReviewRequest{ID: uuid.New(), TenantID: tenantID, ContactID: contact.ID, Status: models.ReviewStatusSent}

	f.settings.EXPECT().ResolveByNumber(gomock.Any(), settings.MessagingNumber).Return(settings, nil)
	conv := f.expectThread(tenantID, contact, models.ContactSourceInboundSMS)
	f.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
	f.conversations.EXPECT().Touch(gomock.Any(), conv.ID, gomock.Any(), "stop", true).Return(nil)
	f.contacts.EXPECT().MarkOptedOut(gomock.Any(), tenantID, contact.ID, gomock.Any()).Return(nil)
	f.requests.EXPECT().FindActive(gomock.Any(), tenantID, contact.ID, gomock.Any()).Return(active, nil)
	f.requests.EXPECT().Stop(gomock.Any(), active.ID).Return(nil)

	err := newTelephonyService(f).IncomingSMS(context.Background(), service.SMSEvent{
		MessageSID: "SM1",
		From:       contact.Phone,
		To:         settings.MessagingNumber,
		Body:       "stop",
	})
	require.NoError(t, err)
}

func TestTelephonyService_IncomingSMS_ReplyRecordsRating(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	tenantID := uuid.New()
	settings := testSettings(tenantID)
	contact := testContact(tenantID)
	active := &models.ReviewRequest{ID: uuid.New(), TenantID: tenantID, ContactID: contact.ID, Status: models.ReviewStatusReminded1}

	f.settings.EXPECT().ResolveByNumber(gomock.Any(), settings.MessagingNumber).Return(settings, nil)
	conv := f.expectThread(tenantID, contact, models.ContactSourceInboundSMS)
	f.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
	f.conversations.EXPECT().Touch(gomock.Any(), conv.ID, gomock.Any(), "5 stars", true).Return(nil)
	f.requests.EXPECT().FindActive(gomock.Any(), tenantID, contact.ID, gomock.Any()).Return(active, nil)
	f.requests.EXPECT().RecordReply(gomock.Any(), active.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, rating *int, _ time.Time) error {
			require.NotNil(t, rating)
			assert.Equal(t, 5, *rating)
			return nil
		})

	err := newTelephonyService(f).IncomingSMS(context.Background(), service.SMSEvent{
		MessageSID: "SM2",
		From:       contact.Phone,
		To:         settings.MessagingNumber,
		Body:       "5 stars",
	})
	require.NoError(t, err)
}

func TestTelephonyService_IncomingSMS_Duplicate(t *testing.T) {
	f := newFixture(t)
	tenantID := uuid.New()
	settings := testSettings(tenantID)
	contact := testContact(tenantID)

	f.settings.EXPECT().ResolveByNumber(gomock.Any(), settings.MessagingNumber).Return(settings, nil)
	f.expectThread(tenantID, contact, models.ContactSourceInboundSMS)
	f.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil)

	err := newTelephonyService(f).IncomingSMS(context.Background(), service.SMSEvent{
		MessageSID: "SM3",
		From:       contact.Phone,
		To:         settings.MessagingNumber,
		Body:       "STOP",
	})
	require.NoError(t, err)
}

func TestTelephonyService_DeliveryStatus(t *testing.T) {
	t.Run("failure emits event", func(t *testing.T) {
		f := newFixture(t)
		msg := &models.Message{ID: uuid.New(), TenantID: uuid.New()}

		f.messages.EXPECT().UpdateStatusByExternalID(gomock.Any(), "SM9", models.MessageStatusUndelivered, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ models.MessageStatus, errMsg *string, _ time.Time) (*models.Message, error) {
				require.NotNil(t, errMsg)
				assert.Equal(t, "30003: Unreachable destination handset", *errMsg)
				return msg, nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev events.Event) error {
			assert.Equal(t, events.SMSDeliveryFailed, ev.Name)
			return nil
		})

		err := newTelephonyService(f).DeliveryStatus(context.Background(), service.StatusEvent{
			MessageSID:   "SM9",
			Status:       "undelivered",
			ErrorCode:    "30003",
			ErrorMessage: "Unreachable destination handset",
		})
		require.NoError(t, err)
	})

	t.Run("unmatched is dropped", func(t *testing.T) {
		f := newFixture(t)
		f.messages.EXPECT().UpdateStatusByExternalID(gomock.Any(), "SM404", models.MessageStatusDelivered, nil, gomock.Any()).
			Return(nil, repository.ErrNotFound)

		err := newTelephonyService(f).DeliveryStatus(context.Background(), service.StatusEvent{MessageSID: "SM404", Status: "delivered"})
		require.NoError(t, err)
	})

	t.Run("unknown status is ignored", func(t *testing.T) {
		f := newFixture(t)

		err := newTelephonyService(f).DeliveryStatus(context.Background(), service.StatusEvent{MessageSID: "SM5", Status: "teleported"})
		require.NoError(t, err)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		f := newFixture(t)
		f.messages.EXPECT().UpdateStatusByExternalID(gomock.Any(), "SM6", models.MessageStatusSent, nil, gomock.Any()).
			Return(nil, errors.New("db down"))

		err := newTelephonyService(f).DeliveryStatus(context.Background(), service.StatusEvent{MessageSID: "SM6", Status: "sent"})
		assert.Error(t, err)
	})
}

func TestIsStopKeyword(t *testing.T) {
	for _, body := range []string{"STOP", "stop", " Unsubscribe ", "quit.", "End!"} {
		assert.True(t, service.IsStopKeyword(body), body)
	}
	for _, body := range []string{"please stop calling", "stopped", "", "5"} {
		assert.False(t, service.IsStopKeyword(body), body)
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		body string
		want int
		ok   bool
	}{
		{"5", 5, true},
		{" 4 stars ", 4, true},
		{"3/5", 3, true},
		{"1 star!", 1, true},
		{"0", 0, false},
		{"6", 0, false},
		{"5 stars, great job", 0, false},
		{"thanks", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			got := service.ParseRating(tt.body)
			if !tt.ok {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}
