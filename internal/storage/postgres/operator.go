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

const operatorColumns = `id, business_name, abn, address_line, suburb, state, postcode,
	latitude, longitude, service_radius, created_at, updated_at, deleted_at`

type Operators struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewOperators(pool *pgxpool.Pool, logger *slog.Logger) *Operators {
	return &Operators{pool: pool, logger: logger}
}

func scanOperator(row scanner) (*domain.Operator, error) {
	var op domain.Operator
	err := row.Scan(
		&op.ID,
		&op.BusinessName,
		&op.ABN,
		&op.AddressLine,
		&op.Suburb,
		&op.State,
		&op.Postcode,
		&op.Lat,
		&op.Lng,
		&op.ServiceRadius,
		&op.CreatedAt,
		&op.UpdatedAt,
		&op.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &op, nil
}

func (p *Operators) Create(ctx context.Context, o *domain.Operator) error {
	const op = "postgres.Operator.Create"

	const query = `
		INSERT INTO operators (id, business_name, abn, address_line, suburb, state, postcode,
		                       latitude, longitude, service_radius, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
	`

	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	o.UpdatedAt = o.CreatedAt

	_, err := p.pool.Exec(ctx, query,
		o.ID,
		o.BusinessName,
		o.ABN,
		o.AddressLine,
		o.Suburb,
		o.State,
		o.Postcode,
		o.Lat,
		o.Lng,
		o.ServiceRadius,
		o.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *Operators) List(ctx context.Context, page, limit int) ([]*domain.Operator, int64, error) {
	const op = "postgres.Operator.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM operators WHERE deleted_at IS NULL`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `SELECT ` + operatorColumns + `
		FROM operators
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2`

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	operators := make([]*domain.Operator, 0, limit)
	for rows.Next() {
		o, err := scanOperator(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		operators = append(operators, o)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return operators, total, nil
}

func (p *Operators) Get(ctx context.Context, id uuid.UUID) (*domain.Operator, error) {
	const op = "postgres.Operator.Get"

	query := `SELECT ` + operatorColumns + `
		FROM operators
		WHERE id = $1 AND deleted_at IS NULL`

	o, err := scanOperator(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return o, nil
}

func (p *Operators) Update(ctx context.Context, o *domain.Operator) error {
	const op = "postgres.Operator.Update"

	const query = `
		UPDATE operators
		SET business_name  = $2,
			abn            = $3,
			address_line   = $4,
			suburb         = $5,
			state          = $6,
			postcode       = $7,
			latitude       = $8,
			longitude      = $9,
			service_radius = $10,
			updated_at     = $11
		WHERE id = $1 AND deleted_at IS NULL
	`

	o.UpdatedAt = time.Now().UTC()
	cmd, err := p.pool.Exec(ctx, query,
		o.ID,
		o.BusinessName,
		o.ABN,
		o.AddressLine,
		o.Suburb,
		o.State,
		o.Postcode,
		o.Lat,
		o.Lng,
		o.ServiceRadius,
		o.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", o.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// Delete tombstones the operator and all of its equipment in one transaction.
func (p *Operators) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Operator.Delete"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("db begin failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now().UTC()

	cmd, err := tx.Exec(ctx, `
		UPDATE operators
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`, id, now)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE equipment
		SET deleted_at = $2
		WHERE operator_id = $1 AND deleted_at IS NULL
	`, id, now); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("db commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// ListActive returns every non-tombstoned operator.
func (p *Operators) ListActive(ctx context.Context) ([]domain.Operator, error) {
	const op = "postgres.Operator.ListActive"

	query := `SELECT ` + operatorColumns + `
		FROM operators
		WHERE deleted_at IS NULL
		ORDER BY created_at, id`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	operators := make([]domain.Operator, 0, 64)
	for rows.Next() {
		o, err := scanOperator(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		operators = append(operators, *o)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return operators, nil
}
