package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/popeskul/crewreach/internal/models"
)

const conversationColumns = `id, tenant_id, contact_id, last_message_at, last_message_preview,
	unread_count, created_at, updated_at`

type conversationRepository struct {
	db *sqlx.DB
}

func NewConversationRepository(db *sqlx.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// FindOrCreate returns the conversation for (tenant, contact), creating it
// on first use. The unique constraint keeps a single row per pair.
func (r *conversationRepository) FindOrCreate(ctx context.Context, tenantID, contactID uuid.UUID) (*models.Conversation, error) {
	query := `
		INSERT INTO conversations (id, tenant_id, contact_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (tenant_id, contact_id) DO UPDATE SET contact_id = EXCLUDED.contact_id
		RETURNING ` + conversationColumns

	var c models.Conversation
	if err := r.db.GetContext(ctx, &c, query, uuid.New(), tenantID, contactID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to find or create conversation: %w", err)
	}
	return &c, nil
}

func (r *conversationRepository) Get(ctx context.Context, tenantID, contactID uuid.UUID) (*models.Conversation, error) {
	var c models.Conversation
	err := r.db.GetContext(ctx, &c,
		`SELECT `+conversationColumns+` FROM conversations WHERE tenant_id = $1 AND contact_id = $2`,
		tenantID, contactID)
	if err != nil {
		return nil, notFoundOr(err, "conversation")
	}
	return &c, nil
}

// Touch never moves last_message_at backwards, so late webhook deliveries
// do not overwrite a newer preview.
func (r *conversationRepository) Touch(ctx context.Context, conversationID uuid.UUID, at time.Time, preview string, inbound bool) error {
	query := `
		UPDATE conversations
		SET last_message_preview = CASE
		        WHEN last_message_at IS NULL OR last_message_at <= $2::timestamptz THEN $3::text
		        ELSE last_message_preview
		    END,
		    last_message_at = GREATEST(COALESCE(last_message_at, $2::timestamptz), $2::timestamptz),
		    unread_count = unread_count + CASE WHEN $4::boolean THEN 1 ELSE 0 END,
		    updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, conversationID, at, preview, inbound)
	if err != nil {
		return fmt.Errorf("failed to touch conversation: %w", err)
	}
	return requireOneRow(res, fmt.Errorf("conversation: %w", ErrNotFound))
}
