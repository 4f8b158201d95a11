package room

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/idon003/hotel-book/internal/money"
)

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrInvalidFilter = errors.New("invalid filter value")
	ErrInvalidRoom   = errors.New("invalid room data")
)

type Service interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error)
	UpdateRoom(ctx context.Context, id int, req CreateRoomRequest) (*Room, error)
	ListRooms(ctx context.Context, minPrice, maxPrice, capacity string) ([]Room, error)
	GetRoomByID(ctx context.Context, id int) (*Room, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	priceCents, err := money.ParseCents(req.PricePerNight)
	if err != nil {
		return nil, ErrInvalidRoom
	}
	if req.Capacity <= 0 {
		return nil, ErrInvalidRoom
	}

	return s.repo.Create(ctx, req.Name, req.Capacity, priceCents)
}

func (s *service) UpdateRoom(ctx context.Context, id int, req CreateRoomRequest) (*Room, error) {
	priceCents, err := money.ParseCents(req.PricePerNight)
	if err != nil {
		return nil, ErrInvalidRoom
	}
	if req.Capacity <= 0 {
		return nil, ErrInvalidRoom
	}

	room, err := s.repo.Update(ctx, id, req.Name, req.Capacity, priceCents)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// ListRooms applies optional price and capacity bounds given as raw query
// strings. Empty strings mean the bound is absent.
func (s *service) ListRooms(ctx context.Context, minPrice, maxPrice, capacity string) ([]Room, error) {
	f, err := ParseFilter(minPrice, maxPrice, capacity)
	if err != nil {
		return nil, err
	}

	return s.repo.List(ctx, f)
}

func (s *service) GetRoomByID(ctx context.Context, id int) (*Room, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func ParseFilter(minPrice, maxPrice, capacity string) (Filter, error) {
	var f Filter

	if minPrice != "" {
		cents, err := money.ParseCents(minPrice)
		if err != nil {
			return Filter{}, ErrInvalidFilter
		}
		f.MinPriceCents = &cents
	}

	if maxPrice != "" {
		cents, err := money.ParseCents(maxPrice)
		if err != nil {
			return Filter{}, ErrInvalidFilter
		}
		f.MaxPriceCents = &cents
	}

	if capacity != "" {
		n, err := strconv.Atoi(capacity)
		if err != nil || n < 0 {
			return Filter{}, ErrInvalidFilter
		}
		f.MinCapacity = &n
	}

	return f, nil
}
