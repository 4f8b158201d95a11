package booking

import (
	"time"

	"github.com/idon003/hotel-book/internal/money"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// Booking reserves a room for the half-open date range [check_in, check_out).
type Booking struct {
	ID        int       `db:"id" json:"id"`
	RoomID    int       `db:"room_id" json:"room_id"`
	GuestID   int       `db:"guest_id" json:"guest_id"`
	CheckIn   time.Time `db:"check_in" json:"check_in"`
	CheckOut  time.Time `db:"check_out" json:"check_out"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type BookingWithDetails struct {
	Booking
	RoomName   string `db:"room_name" json:"room_name"`
	GuestName  string `db:"guest_name" json:"guest_name"`
	GuestEmail string `db:"guest_email" json:"guest_email"`
}

type CreateBookingRequest struct {
	RoomID   int    `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required" example:"2024-01-01"`
	CheckOut string `json:"check_out" binding:"required" example:"2024-01-04"`
}

type BookingResponse struct {
	Booking    *Booking `json:"booking"`
	TotalCents int64    `json:"total_cents" example:"30000"`
	Total      string   `json:"total" example:"300.00"`
}

func NewBookingResponse(b *Booking, totalCents int64) BookingResponse {
	return BookingResponse{
		Booking:    b,
		TotalCents: totalCents,
		Total:      money.FormatCents(totalCents),
	}
}
