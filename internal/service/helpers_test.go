package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/callback"
	eventmocks "github.com/popeskul/crewreach/internal/events/mocks"
	gatewaymocks "github.com/popeskul/crewreach/internal/gateway/mocks"
	"github.com/popeskul/crewreach/internal/models"
	repomocks "github.com/popeskul/crewreach/internal/repository/mocks"
	servicemocks "github.com/popeskul/crewreach/internal/service/mocks"
	"github.com/popeskul/crewreach/internal/templates"
)

const testBaseURL = "https://hooks.example.com"

// fixture wires every repository mock behind one MockRepository.
type fixture struct {
	ctrl          *gomock.Controller
	repo          *repomocks.MockRepository
	tenants       *repomocks.MockTenantRepository
	contacts      *repomocks.MockContactRepository
	conversations *repomocks.MockConversationRepository
	messages      *repomocks.MockMessageRepository
	jobs          *repomocks.MockJobRepository
	requests      *repomocks.MockReviewRequestRepository
	campaigns     *repomocks.MockCampaignRepository
	audit         *repomocks.MockAuditRepository
	gateway       *gatewaymocks.MockGateway
	publisher     *eventmocks.MockPublisher
	settings      *servicemocks.MockSettingsService
	messenger     *servicemocks.MockMessenger
	callbacks     *callback.Builder
	logger        *zap.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:          ctrl,
		repo:          repomocks.NewMockRepository(ctrl),
		tenants:       repomocks.NewMockTenantRepository(ctrl),
		contacts:      repomocks.NewMockContactRepository(ctrl),
		conversations: repomocks.NewMockConversationRepository(ctrl),
		messages:      repomocks.NewMockMessageRepository(ctrl),
		jobs:          repomocks.NewMockJobRepository(ctrl),
		requests:      repomocks.NewMockReviewRequestRepository(ctrl),
		campaigns:     repomocks.NewMockCampaignRepository(ctrl),
		audit:         repomocks.NewMockAuditRepository(ctrl),
		gateway:       gatewaymocks.NewMockGateway(ctrl),
		publisher:     eventmocks.NewMockPublisher(ctrl),
		settings:      servicemocks.NewMockSettingsService(ctrl),
		messenger:     servicemocks.NewMockMessenger(ctrl),
		logger:        zap.NewNop(),
	}

	var err error
	f.callbacks, err = callback.NewBuilder(testBaseURL)
	require.NoError(t, err)

	f.repo.EXPECT().Tenant().Return(f.tenants).AnyTimes()
	f.repo.EXPECT().Contact().Return(f.contacts).AnyTimes()
	f.repo.EXPECT().Conversation().Return(f.conversations).AnyTimes()
	f.repo.EXPECT().Message().Return(f.messages).AnyTimes()
	f.repo.EXPECT().Job().Return(f.jobs).AnyTimes()
	f.repo.EXPECT().ReviewRequest().Return(f.requests).AnyTimes()
	f.repo.EXPECT().Campaign().Return(f.campaigns).AnyTimes()
	f.repo.EXPECT().Audit().Return(f.audit).AnyTimes()

	return f
}

// allowEvents accepts any number of published events.
func (f *fixture) allowEvents() {
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func testSettings(tenantID uuid.UUID) models.TenantSettings {
	return models.TenantSettings{
		TenantID:           tenantID,
		BusinessName:       "Acme Plumbing",
		MessagingNumber:    "+15125550100",
		ForwardingNumber:   "+15125550199",
		ReviewLink:         "https://g.page/acme/review",
		ArrivalNotice:      true,
		CancellationNotice: true,
		ReviewAutomation:   true,
		ReviewDrip:         true,
		MissedCallText:     true,
		ReviewDelay:        2 * time.Hour,
		Reminder1Delay:     72 * time.Hour,
		Reminder2Delay:     96 * time.Hour,
		DedupWindow:        90 * 24 * time.Hour,
		Templates: models.Templates{
			Arrival:      templates.DefaultArrival,
			Cancellation: templates.DefaultCancellation,
			Review:       templates.DefaultReview,
			Reminder1:    templates.DefaultReminder1,
			Reminder2:    templates.DefaultReminder2,
			MissedCall:   templates.DefaultMissedCall,
		},
	}
}

func testContact(tenantID uuid.UUID) *models.Contact {
	c := &models.Contact{
		ID:       uuid.New(),
		TenantID: tenantID,
		Phone:    "+15125550143",
		Source:   models.ContactSourceManual,
	}
	c.Name.String, c.Name.Valid = "Dana Reyes", true
	return c
}
