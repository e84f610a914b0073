package room

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
	Create(ctx context.Context, rm *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, rm *Room) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rm *Room) error {
	const query = `
		INSERT INTO public.rooms (room_number, type, floor, capacity, price, status, clean_status, needs_maintenance, maintenance_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		rm.RoomNumber, rm.Type, rm.Floor, rm.Capacity, rm.Price,
		rm.Status, rm.CleanStatus, rm.NeedsMaintenance, rm.MaintenanceNotes,
	).Scan(&rm.ID, &rm.CreatedAt)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrRoomNumberTaken
		}
		return fmt.Errorf("create room failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	const query = `
		SELECT id, room_number, type, floor, capacity, price, status, clean_status, needs_maintenance, maintenance_notes, created_at
		FROM public.rooms
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var rm Room
	if err := row.Scan(
		&rm.ID, &rm.RoomNumber, &rm.Type, &rm.Floor, &rm.Capacity, &rm.Price,
		&rm.Status, &rm.CleanStatus, &rm.NeedsMaintenance, &rm.MaintenanceNotes, &rm.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return &rm, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	var args []interface{}
	queryBase := `
		SELECT id, room_number, type, floor, capacity, price, status, clean_status, needs_maintenance, maintenance_notes, created_at,
			count(*) OVER() as total_count
		FROM public.rooms
		WHERE 1=1
	`
	paramIndex := 1

	if filter.Status != "" {
		queryBase += fmt.Sprintf(" AND status = $%d", paramIndex)
		args = append(args, filter.Status)
		paramIndex++
	}
	if filter.Type != "" {
		queryBase += fmt.Sprintf(" AND type = $%d", paramIndex)
		args = append(args, filter.Type)
		paramIndex++
	}
	if filter.Floor > 0 {
		queryBase += fmt.Sprintf(" AND floor = $%d", paramIndex)
		args = append(args, filter.Floor)
		paramIndex++
	}
	if filter.CleanStatus != "" {
		queryBase += fmt.Sprintf(" AND clean_status = $%d", paramIndex)
		args = append(args, filter.CleanStatus)
		paramIndex++
	}

	queryBase += " ORDER BY room_number ASC"

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
		return nil, 0, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var result []*Room
	var total int

	for rows.Next() {
		var rm Room
		if err := rows.Scan(
			&rm.ID, &rm.RoomNumber, &rm.Type, &rm.Floor, &rm.Capacity, &rm.Price,
			&rm.Status, &rm.CleanStatus, &rm.NeedsMaintenance, &rm.MaintenanceNotes, &rm.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan room failed: %w", err)
		}
		result = append(result, &rm)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, rm *Room) error {
	const query = `
		UPDATE public.rooms
		SET room_number = $1, type = $2, floor = $3, capacity = $4, price = $5,
			status = $6, clean_status = $7, needs_maintenance = $8, maintenance_notes = $9
		WHERE id = $10
	`
	ct, err := r.pool.Exec(ctx, query,
		rm.RoomNumber, rm.Type, rm.Floor, rm.Capacity, rm.Price,
		rm.Status, rm.CleanStatus, rm.NeedsMaintenance, rm.MaintenanceNotes, rm.ID,
	)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrRoomNumberTaken
		}
		return fmt.Errorf("update room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.rooms WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
