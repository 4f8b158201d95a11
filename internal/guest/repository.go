package guest

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrGuestNotFound = errors.New("guest not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email, passwordHash, role string) (*Guest, error) {
	query := `
		INSERT INTO guests (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, role, created_at
	`

	var guest Guest
	err := r.db.GetContext(ctx, &guest, query, name, email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	return &guest, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Guest, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM guests
		WHERE email = $1
	`

	var guest Guest
	err := r.db.GetContext(ctx, &guest, query, email)
	if err != nil {
		return nil, err
	}

	return &guest, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Guest, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM guests
		WHERE id = $1
	`

	var guest Guest
	err := r.db.GetContext(ctx, &guest, query, id)
	if err != nil {
		return nil, err
	}

	return &guest, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM guests WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}
