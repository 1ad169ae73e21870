package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"equipmentCentral/internal/domain"
	"equipmentCentral/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentColumns = `e.id, e.operator_id, e.category_id, e.name, e.description,
	e.daily_rate, e.weekly_rate, e.monthly_rate, e.availability_status,
	e.created_at, e.updated_at, e.deleted_at`

type EquipmentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEquipment(pool *pgxpool.Pool, logger *slog.Logger) *EquipmentRepo {
	return &EquipmentRepo{pool: pool, logger: logger}
}

func scanEquipment(row scanner) (*domain.Equipment, error) {
	var eq domain.Equipment
	err := row.Scan(
		&eq.ID,
		&eq.OperatorID,
		&eq.CategoryID,
		&eq.Name,
		&eq.Description,
		&eq.DailyRate,
		&eq.WeeklyRate,
		&eq.MonthlyRate,
		&eq.AvailabilityStatus,
		&eq.CreatedAt,
		&eq.UpdatedAt,
		&eq.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &eq, nil
}

// Create inserts eq only while its operator is active.
func (p *EquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	const op = "postgres.Equipment.Create"

	const query = `
		INSERT INTO equipment (id, operator_id, category_id, name, description,
		                       daily_rate, weekly_rate, monthly_rate, availability_status,
		                       created_at, updated_at)
		SELECT $1::uuid, $2::uuid, $3::uuid, $4::text, $5::text,
		       $6::double precision, $7::double precision, $8::double precision, $9::boolean,
		       $10::timestamptz, $10::timestamptz
		WHERE EXISTS (SELECT 1 FROM operators WHERE id = $2::uuid AND deleted_at IS NULL)
	`

	if eq.ID == uuid.Nil {
		eq.ID = uuid.New()
	}
	if eq.CreatedAt.IsZero() {
		eq.CreatedAt = time.Now().UTC()
	}
	eq.UpdatedAt = eq.CreatedAt

	cmd, err := p.pool.Exec(ctx, query,
		eq.ID,
		eq.OperatorID,
		eq.CategoryID,
		eq.Name,
		eq.Description,
		eq.DailyRate,
		eq.WeeklyRate,
		eq.MonthlyRate,
		eq.AvailabilityStatus,
		eq.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: operator %s: %w", op, eq.OperatorID, e.ErrInvalidInput)
	}
	return nil
}

func (p *EquipmentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Equipment, error) {
	const op = "postgres.Equipment.Get"

	query := `SELECT ` + equipmentColumns + `
		FROM equipment e
		WHERE e.id = $1 AND e.deleted_at IS NULL`

	eq, err := scanEquipment(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return eq, nil
}

func (p *EquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	const op = "postgres.Equipment.Update"

	const query = `
		UPDATE equipment
		SET category_id         = $2,
			name                = $3,
			description         = $4,
			daily_rate          = $5,
			weekly_rate         = $6,
			monthly_rate        = $7,
			availability_status = $8,
			updated_at          = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	eq.UpdatedAt = time.Now().UTC()
	cmd, err := p.pool.Exec(ctx, query,
		eq.ID,
		eq.CategoryID,
		eq.Name,
		eq.Description,
		eq.DailyRate,
		eq.WeeklyRate,
		eq.MonthlyRate,
		eq.AvailabilityStatus,
		eq.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", eq.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *EquipmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Equipment.Delete"

	const query = `
		UPDATE equipment
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`

	cmd, err := p.pool.Exec(ctx, query, id, time.Now().UTC())
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// ListActive returns active equipment of active operators, oldest first.
func (p *EquipmentRepo) ListActive(ctx context.Context) ([]domain.Equipment, error) {
	const op = "postgres.Equipment.ListActive"

	query := `SELECT ` + equipmentColumns + `
		FROM equipment e
		JOIN operators o ON o.id = e.operator_id
		WHERE e.deleted_at IS NULL AND o.deleted_at IS NULL
		ORDER BY e.created_at, e.id`

	return p.list(ctx, op, query)
}

func (p *EquipmentRepo) ListActiveByOperatorIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Equipment, error) {
	const op = "postgres.Equipment.ListActiveByOperatorIDs"

	if len(ids) == 0 {
		return []domain.Equipment{}, nil
	}

	query := `SELECT ` + equipmentColumns + `
		FROM equipment e
		JOIN operators o ON o.id = e.operator_id
		WHERE e.deleted_at IS NULL AND o.deleted_at IS NULL
		  AND e.operator_id = ANY($1::uuid[])
		ORDER BY e.created_at, e.id`

	return p.list(ctx, op, query, ids)
}

func (p *EquipmentRepo) list(ctx context.Context, op, query string, args ...any) ([]domain.Equipment, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	items := make([]domain.Equipment, 0, 32)
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		items = append(items, *eq)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return items, nil
}
