package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"passion-match/internal/domain"
)

const uniqueViolation = "23505"

type RoomRepository interface {
	GetBySlug(ctx context.Context, slug string) (domain.Room, error)
	Create(ctx context.Context, room domain.Room) (domain.Room, error)
	AddMember(ctx context.Context, member domain.RoomMember) error
	ListByUserID(ctx context.Context, userID string) ([]domain.Room, error)
}

type PgRoomRepository struct {
	pool *pgxpool.Pool
}

func NewPgRoomRepository(pool *pgxpool.Pool) *PgRoomRepository {
	return &PgRoomRepository{pool: pool}
}

func (r *PgRoomRepository) GetBySlug(ctx context.Context, slug string) (domain.Room, error) {
	const query = `
		SELECT id, name, slug, type, description, created_at
		FROM rooms
		WHERE slug = $1
	`
	return scanRoom(r.pool.QueryRow(ctx, query, slug))
}

// Create inserta la sala. Si otra peticion la creo antes (slug duplicado) devuelve la existente.
func (r *PgRoomRepository) Create(ctx context.Context, room domain.Room) (domain.Room, error) {
	const query = `
		INSERT INTO rooms (id, name, slug, type, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, slug, type, description, created_at
	`

	var description interface{}
	if room.Description != "" {
		description = room.Description
	}

	created, err := scanRoom(r.pool.QueryRow(ctx, query,
		room.ID,
		room.Name,
		room.Slug,
		string(room.Type),
		description,
		room.CreatedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return r.GetBySlug(ctx, room.Slug)
		}
		return domain.Room{}, err
	}
	return created, nil
}

func (r *PgRoomRepository) AddMember(ctx context.Context, member domain.RoomMember) error {
	const query = `
		INSERT INTO room_members (room_id, user_id, joined_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (room_id, user_id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, member.RoomID, member.UserID, member.JoinedAt)
	return err
}

func (r *PgRoomRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Room, error) {
	const query = `
		SELECT r.id, r.name, r.slug, r.type, r.description, r.created_at
		FROM rooms r
		INNER JOIN room_members rm ON r.id = rm.room_id
		WHERE rm.user_id = $1
		ORDER BY rm.joined_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []domain.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rooms, nil
}

// rowScanner cubre pgx.Row y pgx.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (domain.Room, error) {
	var (
		room        domain.Room
		roomType    string
		description *string
	)
	if err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Slug,
		&roomType,
		&description,
		&room.CreatedAt,
	); err != nil {
		return domain.Room{}, err
	}
	room.Type = domain.RoomType(roomType)
	if description != nil {
		room.Description = *description
	}
	return room, nil
}
