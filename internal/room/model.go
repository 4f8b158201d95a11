package room

import (
	"time"

	"github.com/idon003/hotel-book/internal/money"
)

type Room struct {
	ID         int       `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Capacity   int       `db:"capacity" json:"capacity"`
	PriceCents int64     `db:"price_cents" json:"price_cents"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type RoomResponse struct {
	Room
	PricePerNight string `json:"price_per_night" example:"100.00"`
}

func NewRoomResponse(r Room) RoomResponse {
	return RoomResponse{Room: r, PricePerNight: money.FormatCents(r.PriceCents)}
}

func NewRoomResponses(rooms []Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, NewRoomResponse(r))
	}
	return out
}

// Filter bounds are optional; nil means unbounded. Price bounds are
// inclusive, capacity is a lower bound.
type Filter struct {
	MinPriceCents *int64
	MaxPriceCents *int64
	MinCapacity   *int
}

type CreateRoomRequest struct {
	Name          string `json:"name" binding:"required"`
	Capacity      int    `json:"capacity" binding:"required,min=1"`
	PricePerNight string `json:"price_per_night" binding:"required"`
}
