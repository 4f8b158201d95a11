package room

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name string, capacity int, priceCents int64) (*Room, error) {
	query := `
		INSERT INTO rooms (name, capacity, price_cents)
		VALUES ($1, $2, $3)
		RETURNING id, name, capacity, price_cents, created_at
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, name, capacity, priceCents)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) Update(ctx context.Context, id int, name string, capacity int, priceCents int64) (*Room, error) {
	query := `
		UPDATE rooms
		SET name = $2, capacity = $3, price_cents = $4
		WHERE id = $1
		RETURNING id, name, capacity, price_cents, created_at
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, id, name, capacity, priceCents)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) List(ctx context.Context, f Filter) ([]Room, error) {
	query := `
		SELECT id, name, capacity, price_cents, created_at
		FROM rooms
	`
	var conditions []string
	var args []interface{}

	if f.MinPriceCents != nil {
		args = append(args, *f.MinPriceCents)
		conditions = append(conditions, fmt.Sprintf("price_cents >= $%d", len(args)))
	}
	if f.MaxPriceCents != nil {
		args = append(args, *f.MaxPriceCents)
		conditions = append(conditions, fmt.Sprintf("price_cents <= $%d", len(args)))
	}
	if f.MinCapacity != nil {
		args = append(args, *f.MinCapacity)
		conditions = append(conditions, fmt.Sprintf("capacity >= $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += " ORDER BY id ASC"

	var rooms []Room
	err := r.db.SelectContext(ctx, &rooms, query, args...)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Room, error) {
	query := `
		SELECT id, name, capacity, price_cents, created_at
		FROM rooms
		WHERE id = $1
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, id)
	if err != nil {
		return nil, err
	}

	return &room, nil
}
