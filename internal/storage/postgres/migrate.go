package postgres

import (
	"context"
	_ "embed"
	"log/slog"

	"equipmentCentral/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

// Migrate applies the idempotent schema. Statements run in one simple-protocol round trip.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	const op = "postgres.Migrate"

	logger.Info("Applying schema")
	if _, err := pool.Exec(ctx, schema); err != nil {
		logger.Error("schema apply failed", slog.String("op", op), slog.Any("error", err))
		return e.Wrap(op, err)
	}
	logger.Info("Schema is up to date")
	return nil
}
