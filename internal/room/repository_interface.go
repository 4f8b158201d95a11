package room

import "context"

type Repository interface {
	Create(ctx context.Context, name string, capacity int, priceCents int64) (*Room, error)
	Update(ctx context.Context, id int, name string, capacity int, priceCents int64) (*Room, error)
	List(ctx context.Context, f Filter) ([]Room, error)
	GetByID(ctx context.Context, id int) (*Room, error)
}
