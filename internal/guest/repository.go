package guest

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, g *Guest) error
	GetByID(ctx context.Context, id string) (*Guest, error)
	List(ctx context.Context, filter Filter) ([]*Guest, int, error)
	Update(ctx context.Context, g *Guest) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, g *Guest) error {
	const query = `
		INSERT INTO public.guests (name, email, phone, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, g.Name, g.Email, g.Phone, g.Status).
		Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("create guest failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Guest, error) {
	const query = `
		SELECT id, name, email, phone, status, created_at
		FROM public.guests
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var g Guest
	if err := row.Scan(&g.ID, &g.Name, &g.Email, &g.Phone, &g.Status, &g.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get guest failed: %w", err)
	}
	return &g, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Guest, int, error) {
	var args []interface{}
	queryBase := `
		SELECT id, name, email, phone, status, created_at, count(*) OVER() as total_count
		FROM public.guests
		WHERE 1=1
	`
	paramIndex := 1

	if filter.Name != "" {
		queryBase += fmt.Sprintf(" AND name ILIKE $%d", paramIndex)
		args = append(args, "%"+filter.Name+"%")
		paramIndex++
	}
	if filter.Email != "" {
		queryBase += fmt.Sprintf(" AND email ILIKE $%d", paramIndex)
		args = append(args, "%"+filter.Email+"%")
		paramIndex++
	}
	if filter.Status != "" {
		queryBase += fmt.Sprintf(" AND status = $%d", paramIndex)
		args = append(args, filter.Status)
		paramIndex++
	}

	queryBase += " ORDER BY created_at DESC"

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	queryBase += fmt.Sprintf(" LIMIT $%d OFFSET $%d", paramIndex, paramIndex+1)
	args = append(args, filter.PageSize, offset)

	rows, err := r.pool.Query(ctx, queryBase, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list guests failed: %w", err)
	}
	defer rows.Close()

	var result []*Guest
	var total int

	for rows.Next() {
		var g Guest
		if err := rows.Scan(&g.ID, &g.Name, &g.Email, &g.Phone, &g.Status, &g.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan guest failed: %w", err)
		}
		result = append(result, &g)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, g *Guest) error {
	const query = `
		UPDATE public.guests
		SET name = $1, email = $2, phone = $3, status = $4
		WHERE id = $5
	`
	ct, err := r.pool.Exec(ctx, query, g.Name, g.Email, g.Phone, g.Status, g.ID)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("update guest failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
