package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/apperrors"
	"github.com/popeskul/crewreach/internal/callback"
	"github.com/popeskul/crewreach/internal/gateway"
	"github.com/popeskul/crewreach/internal/models"
	"github.com/popeskul/crewreach/internal/repository"
	"github.com/popeskul/crewreach/internal/templates"
)

type messenger struct {
	repo      repository.Repository
	gateway   gateway.Gateway
	callbacks *callback.Builder
	logger    *zap.Logger
}

func NewMessenger(
	repo repository.Repository,
	gw gateway.Gateway,
	callbacks *callback.Builder,
	logger *zap.Logger,
) Messenger {
	return &messenger{
		repo:      repo,
		gateway:   gw,
		callbacks: callbacks,
		logger:    logger,
	}
}

// Send delivers body to contact and appends it to the conversation ledger.
// A gateway failure is still recorded as a failed outbound message and then
// returned.
func (m *messenger) Send(ctx context.Context, settings models.TenantSettings, contact *models.Contact, body string) (*models.Message, error) {
	const op = "messenger.Send"

	if contact.OptedOut {
		return nil, apperrors.Skip(op, "contact %s opted out", contact.ID)
	}
	if !settings.CanMessage() {
		return nil, apperrors.Skip(op, "tenant %s has no messaging number", settings.TenantID)
	}
	if strings.TrimSpace(body) == "" {
		return nil, apperrors.Validation(op, "message body is empty")
	}

	conv, err := m.repo.Conversation().FindOrCreate(ctx, settings.TenantID, contact.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open conversation: %w", op, err)
	}

	statusURL := m.callbacks.URL(callback.RouteSMSStatus, callback.Params{TenantID: settings.TenantID})
	now := time.Now()

	msg := &models.Message{
		ID:             uuid.New(),
		TenantID:       settings.TenantID,
		ConversationID: conv.ID,
		ContactID:      contact.ID,
		Direction:      models.DirectionOutbound,
		Channel:        models.ChannelSMS,
		Body:           body,
		CreatedAt:      now,
	}

	result, sendErr := m.gateway.SendSMS(ctx, settings.MessagingNumber, contact.Phone, body, statusURL)
	if sendErr != nil {
		msg.Status = models.MessageStatusFailed
		msg.ErrorMessage = sql.NullString{String: sendErr.Error(), Valid: true}
	} else {
		msg.Status = result.Status
		msg.ExternalID = sql.NullString{String: result.ExternalID, Valid: true}
	}

	if _, err := m.repo.Message().Insert(ctx, msg); err != nil {
		m.logger.Error("Failed to record outbound message",
			zap.String("tenant_id", settings.TenantID.String()),
			zap.String("contact_id", contact.ID.String()),
			zap.String("external_id", msg.ExternalID.String),
			zap.Error(err))
	}

	if err := m.repo.Conversation().Touch(ctx, conv.ID, now, models.Preview(body), false); err != nil {
		m.logger.Warn("Failed to update conversation preview",
			zap.String("conversation_id", conv.ID.String()),
			zap.Error(err))
	}

	if sendErr != nil {
		return msg, sendErr
	}

	m.logger.Info("Message sent",
		zap.String("tenant_id", settings.TenantID.String()),
		zap.String("contact_id", contact.ID.String()),
		zap.String("external_id", result.ExternalID))

	return msg, nil
}

// baseVars are the template values every message can use.
func baseVars(settings models.TenantSettings, contact *models.Contact) templates.Vars {
	return templates.Vars{
		templates.FirstName:    contact.FirstName(),
		templates.Name:         contact.DisplayName(),
		templates.BusinessName: settings.BusinessName,
	}
}
