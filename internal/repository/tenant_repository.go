package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/popeskul/crewreach/internal/models"
)

const tenantColumns = `id, name, messaging_number, forwarding_number, review_link,
	arrival_notice_enabled, cancellation_notice_enabled, review_automation_enabled,
	review_drip_enabled, missed_call_text_enabled, accept_gate_enabled, review_delay_hours,
	arrival_template, cancellation_template, review_template, reminder_1_template,
	reminder_2_template, missed_call_template, created_at, updated_at`

type tenantRepository struct {
	db *sqlx.DB
}

func NewTenantRepository(db *sqlx.DB) TenantRepository {
	return &tenantRepository{db: db}
}

// GetByID retrieves a tenant by primary key.
func (r *tenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	var t models.Tenant
	err := r.db.GetContext(ctx, &t, `SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id)
	if err != nil {
		return nil, notFoundOr(err, "tenant")
	}
	return &t, nil
}

// GetByMessagingNumber resolves the tenant that owns an inbound number.
func (r *tenantRepository) GetByMessagingNumber(ctx context.Context, number string) (*models.Tenant, error) {
	var t models.Tenant
	err := r.db.GetContext(ctx, &t, `SELECT `+tenantColumns+` FROM tenants WHERE messaging_number = $1`, number)
	if err != nil {
		return nil, notFoundOr(err, "tenant")
	}
	return &t, nil
}
