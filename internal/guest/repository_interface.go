package guest

import "context"

type Repository interface {
	Create(ctx context.Context, name, email, passwordHash, role string) (*Guest, error)
	FindByEmail(ctx context.Context, email string) (*Guest, error)
	FindByID(ctx context.Context, id int) (*Guest, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
