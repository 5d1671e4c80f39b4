package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/infrastructure/migrate"
	"github.com/popeskul/crewreach/internal/models"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    dsn,
		MigrationsPath: "../../migrations",
	}, zap.NewNop())
	require.NoError(t, runner.Up(0))

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func insertTenant(t *testing.T, db *sqlx.DB) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(`INSERT INTO tenants (id, name) VALUES ($1, $2)`, id, "Acme Plumbing")
	require.NoError(t, err)
	return id
}

func insertContact(t *testing.T, db *sqlx.DB, tenantID uuid.UUID, phone string, tags ...string) *models.Contact {
	t.Helper()
	if tags == nil {
		tags = []string{}
	}
	c := &models.Contact{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Phone:     phone,
		Tags:      tags,
		Source:    models.ContactSourceManual,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_, err := db.NamedExec(`
		INSERT INTO contacts (id, tenant_id, phone, tags, source, created_at, updated_at)
		VALUES (:id, :tenant_id, :phone, :tags, :source, :created_at, :updated_at)`, c)
	require.NoError(t, err)
	return c
}

func newReviewRequest(tenantID, contactID uuid.UUID, createdAt time.Time) *models.ReviewRequest {
	return &models.ReviewRequest{
		TenantID:   tenantID,
		ContactID:  contactID,
		Status:     models.ReviewStatusSent,
		DripStep:   0,
		NextDripAt: sql.NullTime{Time: createdAt.Add(48 * time.Hour), Valid: true},
		LastSentAt: sql.NullTime{Time: createdAt, Valid: true},
		CreatedAt:  createdAt,
	}
}
