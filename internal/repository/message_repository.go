package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/popeskul/crewreach/internal/models"
)

const messageColumns = `id, tenant_id, conversation_id, contact_id, direction, channel, body,
	external_id, status, media_urls, duration_seconds, error_message, created_at, delivered_at, read_at`

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Insert appends a message. Replayed provider events carry the same external
// id and are dropped by the partial unique index.
func (r *messageRepository) Insert(ctx context.Context, msg *models.Message) (bool, error) {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	if msg.MediaURLs == nil {
		msg.MediaURLs = []string{}
	}

	query := `
		INSERT INTO messages (id, tenant_id, conversation_id, contact_id, direction, channel, body,
		                      external_id, status, media_urls, duration_seconds, error_message, created_at)
		VALUES (:id, :tenant_id, :conversation_id, :contact_id, :direction, :channel, :body,
		        :external_id, :status, :media_urls, :duration_seconds, :error_message, :created_at)
		ON CONFLICT (tenant_id, channel, external_id) WHERE external_id IS NOT NULL DO NOTHING`

	res, err := r.db.NamedExecContext(ctx, query, msg)
	if err != nil {
		return false, fmt.Errorf("failed to insert message: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n == 1, nil
}

// UpdateStatusByExternalID applies a delivery callback. delivered_at is set
// once. Final statuses (delivered, undelivered, failed) are never replaced
// by an in-flight one, and delivered is never replaced at all.
func (r *messageRepository) UpdateStatusByExternalID(ctx context.Context, externalID string, status models.MessageStatus, errorMsg *string, at time.Time) (*models.Message, error) {
	query := `
		UPDATE messages
		SET status = CASE
		        WHEN status = 'delivered' THEN status
		        WHEN status IN ('undelivered', 'failed') AND $2::varchar IN ('queued', 'sending', 'sent') THEN status
		        ELSE $2::varchar
		    END,
		    delivered_at = CASE
		        WHEN $2::varchar = 'delivered' THEN COALESCE(delivered_at, $3::timestamptz)
		        ELSE delivered_at
		    END,
		    error_message = CASE
		        WHEN status = 'delivered' THEN error_message
		        ELSE COALESCE($4::text, error_message)
		    END
		WHERE external_id = $1 AND direction = 'outbound'
		RETURNING ` + messageColumns

	var errMsg sql.NullString
	if errorMsg != nil {
		errMsg = sql.NullString{String: *errorMsg, Valid: true}
	}

	var m models.Message
	err := r.db.GetContext(ctx, &m, query, externalID, status, at, errMsg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("message %s: %w", externalID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update message status: %w", err)
	}
	return &m, nil
}

func (r *messageRepository) MarkCallMissed(ctx context.Context, tenantID uuid.UUID, callSID string) (bool, error) {
	query := `
		UPDATE messages
		SET status = 'missed'
		WHERE tenant_id = $1 AND channel = 'call' AND direction = 'inbound'
		  AND external_id = $2 AND status <> 'missed'`

	res, err := r.db.ExecContext(ctx, query, tenantID, callSID)
	if err != nil {
		return false, fmt.Errorf("failed to mark call missed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n == 1, nil
}

// ListByConversation returns the newest messages first.
func (r *messageRepository) ListByConversation(ctx context.Context, conversationID uuid.UUID, limit int) ([]*models.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var messages []*models.Message
	if err := r.db.SelectContext(ctx, &messages, query, conversationID, limit); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
