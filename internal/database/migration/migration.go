// Package migration bootstraps the PostgreSQL schema on first start.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// SentinelTable is the last table the steps create. Steps run in one
// transaction, so its presence means every step was committed.
const SentinelTable = "food_requests"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_foods",
		SQL: `CREATE TABLE IF NOT EXISTS foods (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  food_name        TEXT        NOT NULL,
  food_image       TEXT        NOT NULL DEFAULT '',
  food_image_key   TEXT        NOT NULL DEFAULT '',
  food_quantity    INTEGER     NOT NULL CHECK (food_quantity >= 0),
  pickup_location  TEXT        NOT NULL,
  expire_date      TIMESTAMPTZ NOT NULL,
  additional_notes TEXT        NOT NULL DEFAULT '',
  food_status      TEXT        NOT NULL DEFAULT 'Available'
                   CHECK (food_status IN ('Available', 'Requested', 'PickedUp', 'Removed')),
  donator_email    TEXT        NOT NULL,
  donator_name     TEXT        NOT NULL DEFAULT '',
  donator_image    TEXT        NOT NULL DEFAULT '',
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_foods_status_expire",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_foods_status_expire ON foods (food_status, expire_date, id);`,
	},
	{
		Name: "create_index_foods_status_quantity",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_foods_status_quantity ON foods (food_status, food_quantity DESC, id);`,
	},
	{
		Name: "create_index_foods_donator_email",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_foods_donator_email ON foods (donator_email);`,
	},
	{
		// food_id has no foreign key: a request outlives the food it names.
		Name: "create_table_food_requests",
		SQL: `CREATE TABLE IF NOT EXISTS food_requests (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  food_id         TEXT        NOT NULL DEFAULT '',
  user_email      TEXT        NOT NULL,
  status          TEXT        NOT NULL DEFAULT 'Pending'
                  CHECK (status IN ('Pending', 'Accepted', 'Rejected')),
  requester_name  TEXT        NOT NULL DEFAULT '',
  requester_image TEXT        NOT NULL DEFAULT '',
  contact_number  TEXT        NOT NULL DEFAULT '',
  notes           TEXT        NOT NULL DEFAULT '',
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_food_requests_user_email",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_food_requests_user_email ON food_requests (user_email, created_at DESC);`,
	},
	{
		Name: "create_index_food_requests_food_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_food_requests_food_id ON food_requests (food_id);`,
	},
}

// EnsureMigrated runs every step in one transaction when the sentinel table is missing.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *slog.Logger, dbHost string) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "database", "db_host", dbHost)
	start := time.Now()

	logger.InfoContext(ctx, "checking schema", "event", "db_migration_check", "status", "starting")

	var exists bool
	query := "SELECT to_regclass('public." + SentinelTable + "') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		logger.ErrorContext(ctx, "sentinel check failed",
			"event", "db_migration_failed",
			"status", "error",
			"error_message", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logger.InfoContext(ctx, "schema already exists, skipping migration",
			"event", "db_migration_skip",
			"status", "success",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	logger.InfoContext(ctx, "migrating", "event", "db_migration_start", "status", "in_progress")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	for _, step := range steps {
		stepStart := time.Now()
		if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
			_ = tx.Rollback()
			logger.ErrorContext(ctx, "migration step failed, rolled back",
				"event", "db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logger.InfoContext(ctx, "migration step applied",
			"event", "db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	logger.InfoContext(ctx, "migration complete",
		"event", "db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
