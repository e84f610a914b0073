package staff

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing staff data from storage.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Staff, error)
	GetByID(ctx context.Context, id string) (*Staff, error)
	Create(ctx context.Context, s *Staff) error
	UpdateLastLogin(ctx context.Context, id string, t time.Time) error
	List(ctx context.Context, filter Filter) ([]*Staff, int, error)
	Update(ctx context.Context, s *Staff) error
}

type pgxStaffRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxStaffRepository{
		pool: pool,
	}
}

func (r *pgxStaffRepository) GetByEmail(ctx context.Context, email string) (*Staff, error) {
	const query = `
		SELECT id, email, password_hash, display_name, role, created_at, last_login_at, is_active
		FROM public.staff
		WHERE email = $1
	`

	row := r.pool.QueryRow(ctx, query, email)

	var s Staff
	if err := row.Scan(
		&s.ID,
		&s.Email,
		&s.PasswordHash,
		&s.DisplayName,
		&s.Role,
		&s.CreatedAt,
		&s.LastLoginAt,
		&s.IsActive,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetByEmail query failed: %w", err)
	}

	return &s, nil
}

func (r *pgxStaffRepository) GetByID(ctx context.Context, id string) (*Staff, error) {
	const query = `
		SELECT id, email, password_hash, display_name, role, created_at, last_login_at, is_active
		FROM public.staff
		WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)

	var s Staff
	if err := row.Scan(
		&s.ID,
		&s.Email,
		&s.PasswordHash,
		&s.DisplayName,
		&s.Role,
		&s.CreatedAt,
		&s.LastLoginAt,
		&s.IsActive,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetByID query failed: %w", err)
	}

	return &s, nil
}

func (r *pgxStaffRepository) Create(ctx context.Context, s *Staff) error {
	const query = `
		INSERT INTO public.staff (email, password_hash, display_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	if err := r.pool.QueryRow(
		ctx,
		query,
		s.Email,
		s.PasswordHash,
		s.DisplayName,
		s.Role,
		s.IsActive,
	).Scan(&s.ID, &s.CreatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyUsed
		}
		return fmt.Errorf("Create staff failed: %w", err)
	}

	return nil
}

func (r *pgxStaffRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	const query = `
		UPDATE public.staff
		SET last_login_at = $1
		WHERE id = $2
	`

	ct, err := r.pool.Exec(ctx, query, t, id)
	if err != nil {
		return fmt.Errorf("UpdateLastLogin failed: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *pgxStaffRepository) List(ctx context.Context, filter Filter) ([]*Staff, int, error) {
	var args []any
	queryBuilder := bytes.NewBufferString(`
		SELECT id, email, password_hash, display_name, role, created_at, last_login_at, is_active,
			count(*) OVER() AS total_count
		FROM public.staff
		WHERE 1=1
	`)

	paramIndex := 1

	if filter.Email != "" {
		queryBuilder.WriteString(" AND email ILIKE $" + strconv.Itoa(paramIndex))
		args = append(args, "%"+filter.Email+"%")
		paramIndex++
	}
	if filter.DisplayName != "" {
		queryBuilder.WriteString(" AND display_name ILIKE $" + strconv.Itoa(paramIndex))
		args = append(args, "%"+filter.DisplayName+"%")
		paramIndex++
	}
	if filter.Role != "" {
		queryBuilder.WriteString(" AND role = $" + strconv.Itoa(paramIndex))
		args = append(args, filter.Role)
		paramIndex++
	}
	if filter.IsActive != nil {
		queryBuilder.WriteString(" AND is_active = $" + strconv.Itoa(paramIndex))
		args = append(args, *filter.IsActive)
		paramIndex++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", paramIndex, paramIndex+1))
	args = append(args, filter.PageSize, offset)

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list staff failed: %w", err)
	}
	defer rows.Close()

	var result []*Staff
	var total int

	for rows.Next() {
		var s Staff
		if err := rows.Scan(
			&s.ID,
			&s.Email,
			&s.PasswordHash,
			&s.DisplayName,
			&s.Role,
			&s.CreatedAt,
			&s.LastLoginAt,
			&s.IsActive,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan staff failed: %w", err)
		}
		result = append(result, &s)
	}

	return result, total, nil
}

func (r *pgxStaffRepository) Update(ctx context.Context, s *Staff) error {
	const query = `
		UPDATE public.staff
		SET display_name = $1, role = $2, is_active = $3
		WHERE id = $4
	`

	ct, err := r.pool.Exec(ctx, query, s.DisplayName, s.Role, s.IsActive, s.ID)
	if err != nil {
		return fmt.Errorf("update staff failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
