package booking

import (
	"context"
	"time"

	"github.com/idon003/hotel-book/internal/room"
)

// AvailabilityEngine answers whether rooms are free for a date range by
// consulting the booking store's overlap queries.
type AvailabilityEngine struct {
	bookings Repository
	rooms    room.Repository
}

func NewAvailabilityEngine(bookings Repository, rooms room.Repository) *AvailabilityEngine {
	return &AvailabilityEngine{
		bookings: bookings,
		rooms:    rooms,
	}
}

func (e *AvailabilityEngine) IsAvailable(ctx context.Context, roomID int, checkIn, checkOut time.Time) (bool, error) {
	if !checkIn.Before(checkOut) {
		return false, ErrInvalidDateRange
	}

	overlapping, err := e.bookings.FindOverlapping(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}

	return len(overlapping) == 0, nil
}

// ListAvailableRooms returns every room without a booking intersecting
// [checkIn, checkOut), including rooms that have no bookings at all.
func (e *AvailabilityEngine) ListAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]room.Room, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}

	bookedIDs, err := e.bookings.BookedRoomIDs(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	booked := make(map[int]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	rooms, err := e.rooms.List(ctx, room.Filter{})
	if err != nil {
		return nil, err
	}

	available := make([]room.Room, 0, len(rooms))
	for _, r := range rooms {
		if _, taken := booked[r.ID]; !taken {
			available = append(available, r)
		}
	}

	return available, nil
}
