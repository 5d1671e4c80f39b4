package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/apperrors"
	"github.com/popeskul/crewreach/internal/config"
	"github.com/popeskul/crewreach/internal/models"
)

type fakeCreator struct {
	calls []*twilioApi.CreateMessageParams
	resp  *twilioApi.ApiV2010Message
	err   error
}

func (f *fakeCreator) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.calls = append(f.calls, params)
	return f.resp, f.err
}

func strPtr(s string) *string { return &s }

func newTestGateway(api messageCreator) *twilioGateway {
	cfg := &config.CircuitBreakerConfig{
		MaxRequests:      3,
		Interval:         60,
		Timeout:          60,
		FailureRatio:     0.6,
		ConsecutiveFails: 5,
	}
	return newTwilioGateway(api, NewCircuitBreaker(cfg, zap.NewNop()), zap.NewNop())
}

func TestTwilioGateway_SendSMS(t *testing.T) {
	tests := []struct {
		name           string
		from           string
		to             string
		creator        *fakeCreator
		expectedResult *SendResult
		expectedKind   apperrors.Kind
		expectCalls    int
	}{
		{
			name: "accepted by provider",
			from: "+15550000001",
			to:   "+15550000002",
			creator: &fakeCreator{resp: &twilioApi.ApiV2010Message{
				Sid:    strPtr("SM123"),
				Status: strPtr("queued"),
			}},
			expectedResult: &SendResult{ExternalID: "SM123", Status: models.MessageStatusQueued},
			expectCalls:    1,
		},
		{
			name: "accepted status maps to queued",
			from: "+15550000001",
			to:   "+15550000002",
			creator: &fakeCreator{resp: &twilioApi.ApiV2010Message{
				Sid:    strPtr("SM124"),
				Status: strPtr("accepted"),
			}},
			expectedResult: &SendResult{ExternalID: "SM124", Status: models.MessageStatusQueued},
			expectCalls:    1,
		},
		{
			name:         "provider error",
			from:         "+15550000001",
			to:           "+15550000002",
			creator:      &fakeCreator{err: errors.New("authenticate")},
			expectedKind: apperrors.KindGateway,
			expectCalls:  1,
		},
		{
			name:         "missing sid",
			from:         "+15550000001",
			to:           "+15550000002",
			creator:      &fakeCreator{resp: &twilioApi.ApiV2010Message{}},
			expectedKind: apperrors.KindGateway,
			expectCalls:  1,
		},
		{
			name:         "missing sender",
			to:           "+15550000002",
			creator:      &fakeCreator{},
			expectedKind: apperrors.KindGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newTestGateway(tt.creator)

			result, err := gw.SendSMS(context.Background(), tt.from, tt.to, "hello", "https://example.com/webhooks/sms/status")

			assert.Len(t, tt.creator.calls, tt.expectCalls)
			if tt.expectedKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedResult, result)

			params := tt.creator.calls[0]
			require.NotNil(t, params.To)
			assert.Equal(t, tt.to, *params.To)
			require.NotNil(t, params.StatusCallback)
		})
	}
}

func TestTwilioGateway_SendSMS_CancelledContext(t *testing.T) {
	creator := &fakeCreator{resp: &twilioApi.ApiV2010Message{Sid: strPtr("SM1")}}
	gw := newTestGateway(creator)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.SendSMS(ctx, "+15550000001", "+15550000002", "hello", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrGateway))
	assert.Empty(t, creator.calls)
}

func TestTwilioGateway_BreakerState(t *testing.T) {
	gw := newTestGateway(&fakeCreator{})
	assert.Equal(t, BreakerClosed, gw.BreakerState())
}
