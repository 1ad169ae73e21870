package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"equipmentCentral/internal/domain"
	"equipmentCentral/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SearchLogRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSearchLog(pool *pgxpool.Pool, logger *slog.Logger) *SearchLogRepo {
	return &SearchLogRepo{pool: pool, logger: logger}
}

func (p *SearchLogRepo) Save(ctx context.Context, event *domain.SearchEvent) error {
	const op = "postgres.SearchLog.Save"

	if event == nil || event.ResultCount < 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO search_log (id, lat, lng, radius_m, result_count, searched_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.SearchedAt.IsZero() {
		event.SearchedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		event.ID,
		event.Lat,
		event.Lng,
		event.RadiusMeters,
		event.ResultCount,
		event.SearchedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *SearchLogRepo) CountSearches(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.SearchLog.CountSearches"

	const query = `
		SELECT COUNT(*)
		FROM search_log
		WHERE searched_at >= NOW() - make_interval(mins => $1::int)
	`
	return p.count(ctx, op, query, minutes)
}

func (p *SearchLogRepo) CountEmptySearches(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.SearchLog.CountEmptySearches"

	const query = `
		SELECT COUNT(*)
		FROM search_log
		WHERE result_count = 0
		  AND searched_at >= NOW() - make_interval(mins => $1::int)
	`
	return p.count(ctx, op, query, minutes)
}

func (p *SearchLogRepo) count(ctx context.Context, op, query string, minutes int) (int64, error) {
	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Int("minutes", minutes),
		)
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}
