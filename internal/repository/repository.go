// Package repository implements persistence on PostgreSQL through sqlx.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db            *sqlx.DB
	tenant        TenantRepository
	contact       ContactRepository
	conversation  ConversationRepository
	message       MessageRepository
	job           JobRepository
	reviewRequest ReviewRequestRepository
	campaign      CampaignRepository
	audit         AuditRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:            db,
		tenant:        NewTenantRepository(db),
		contact:       NewContactRepository(db),
		conversation:  NewConversationRepository(db),
		message:       NewMessageRepository(db),
		job:           NewJobRepository(db),
		reviewRequest: NewReviewRequestRepository(db),
		campaign:      NewCampaignRepository(db),
		audit:         NewAuditRepository(db),
	}
}

func (r *repositoryImpl) Tenant() TenantRepository               { return r.tenant }
func (r *repositoryImpl) Contact() ContactRepository             { return r.contact }
func (r *repositoryImpl) Conversation() ConversationRepository   { return r.conversation }
func (r *repositoryImpl) Message() MessageRepository             { return r.message }
func (r *repositoryImpl) Job() JobRepository                     { return r.job }
func (r *repositoryImpl) ReviewRequest() ReviewRequestRepository { return r.reviewRequest }
func (r *repositoryImpl) Campaign() CampaignRepository           { return r.campaign }
func (r *repositoryImpl) Audit() AuditRepository                 { return r.audit }

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}

func notFoundOr(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

func requireOneRow(res sql.Result, onZero error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return onZero
	}
	return nil
}

// prefixed qualifies every column in a comma separated list with alias.
func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
