package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditEvent records a state change and the side effects it triggered.
type AuditEvent struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	TenantID   uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	EntityType string          `db:"entity_type" json:"entity_type"`
	EntityID   uuid.UUID       `db:"entity_id" json:"entity_id"`
	Action     string          `db:"action" json:"action"`
	Data       json.RawMessage `db:"data" json:"data"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}
