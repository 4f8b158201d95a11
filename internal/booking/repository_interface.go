package booking

import (
	"context"
	"time"
)

type Repository interface {
	// Insert atomically re-checks the no-overlap invariant and persists the
	// booking; it returns ErrDatesConflict when any live booking for the
	// room intersects [checkIn, checkOut), including one committed by a
	// concurrent transaction.
	Insert(ctx context.Context, roomID, guestID int, checkIn, checkOut time.Time) (*Booking, error)
	FindOverlapping(ctx context.Context, roomID int, checkIn, checkOut time.Time) ([]Booking, error)
	BookedRoomIDs(ctx context.Context, checkIn, checkOut time.Time) ([]int, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	Delete(ctx context.Context, id int) error
	ListByGuest(ctx context.Context, guestID int) ([]Booking, error)
	ListByRoom(ctx context.Context, roomID int) ([]BookingWithDetails, error)
}
