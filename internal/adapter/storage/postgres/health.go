package postgres

import (
	"context"
	"fmt"
	"io/fs"
)

// HealthCheck implements ports.HealthChecker for PostgreSQL. Beyond
// connectivity it reports unhealthy while the schema lags the embedded
// migrations.
type HealthCheck struct {
	pool     Pool
	expected int64
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	files, _ := fs.Glob(migrationsFS, "migrations/*.up.sql")
	return &HealthCheck{pool: pool, expected: int64(len(files))}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	var applied int64
	if err := h.pool.QueryRow(ctx, `SELECT count(*) FROM schema_migrations`).Scan(&applied); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if applied < h.expected {
		return fmt.Errorf("schema behind: %d of %d migrations applied", applied, h.expected)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
