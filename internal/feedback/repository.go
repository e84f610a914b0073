package feedback

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, feedback *Feedback) error
	GetByID(ctx context.Context, id string) (*Feedback, error)
	List(ctx context.Context, filter Filter) ([]*Feedback, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, f *Feedback) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.feedback").
		Columns("guest_id", "booking_id", "rating", "comments").
		Values(f.GuestID, f.BookingID, f.Rating, f.Comments).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create feedback query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&f.ID, &f.CreatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ForeignKeyViolation {
			return ErrGuestNotFound
		}
		return fmt.Errorf("create feedback failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Feedback, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("f.id", "f.guest_id", "g.name", "f.booking_id", "f.rating", "f.comments", "f.created_at").
		From("public.feedback f").
		Join("public.guests g ON f.guest_id = g.id").
		Where(squirrel.Eq{"f.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get feedback query failed: %w", err)
	}

	var f Feedback
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&f.ID, &f.GuestID, &f.GuestName, &f.BookingID, &f.Rating, &f.Comments, &f.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get feedback failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Feedback, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"f.id", "f.guest_id", "g.name", "f.booking_id", "f.rating", "f.comments", "f.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.feedback f").
		Join("public.guests g ON f.guest_id = g.id")

	if filter.GuestID != "" {
		query = query.Where(squirrel.Eq{"f.guest_id": filter.GuestID})
	}
	if filter.Rating != 0 {
		query = query.Where(squirrel.Eq{"f.rating": filter.Rating})
	}

	orderDir := "DESC"
	if filter.SortOrder == "asc" {
		orderDir = "ASC"
	}
	query = query.OrderBy("f.created_at " + orderDir)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list feedback query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list feedback failed: %w", err)
	}
	defer rows.Close()

	var items []*Feedback
	var total int

	for rows.Next() {
		var f Feedback
		if err := rows.Scan(
			&f.ID, &f.GuestID, &f.GuestName, &f.BookingID, &f.Rating, &f.Comments, &f.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan feedback failed: %w", err)
		}
		items = append(items, &f)
	}

	return items, total, nil
}
