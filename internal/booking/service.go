package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/idon003/hotel-book/internal/guest"
	"github.com/idon003/hotel-book/internal/logger"
	"github.com/idon003/hotel-book/internal/metrics"
	"github.com/idon003/hotel-book/internal/room"
)

var (
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrBookingNotFound  = errors.New("booking not found")
)

// Notifier sends guest-facing booking mails. Failures are logged, never
// surfaced to the caller.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, to, name, roomName, dates string, checkIn time.Time) error
	SendBookingCancellation(ctx context.Context, to, name, roomName, dates string) error
}

type Service interface {
	CreateBooking(ctx context.Context, guestID, roomID int, checkIn, checkOut time.Time) (*Booking, int64, error)
	CancelBooking(ctx context.Context, guestID, bookingID int) error
	GetGuestBookings(ctx context.Context, guestID int) ([]Booking, error)
	ListBookingsByRoom(ctx context.Context, roomID int) ([]BookingWithDetails, error)
}

type service struct {
	bookingRepo Repository
	roomRepo    room.Repository
	guestRepo   guest.Repository
	notifier    Notifier
}

func NewService(
	bookingRepo Repository,
	roomRepo room.Repository,
	guestRepo guest.Repository,
	notifier Notifier,
) Service {
	return &service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		notifier:    notifier,
	}
}

func (s *service) CreateBooking(ctx context.Context, guestID, roomID int, checkIn, checkOut time.Time) (*Booking, int64, error) {
	if !checkIn.Before(checkOut) {
		return nil, 0, ErrInvalidDateRange
	}

	rm, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, room.ErrRoomNotFound
		}
		return nil, 0, err
	}

	booking, err := s.bookingRepo.Insert(ctx, roomID, guestID, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, ErrDatesConflict) {
			metrics.RecordBooking("conflict")
		}
		return nil, 0, err
	}

	metrics.RecordBooking("created")

	total := Cost(booking.CheckIn, booking.CheckOut, rm.PriceCents)

	s.sendConfirmation(ctx, guestID, rm.Name, booking)

	return booking, total, nil
}

// CancelBooking hard-deletes the guest's booking. A booking that does not
// exist and a booking owned by someone else report the same ErrBookingNotFound
// so a non-owner cannot learn which ids exist.
func (s *service) CancelBooking(ctx context.Context, guestID, bookingID int) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		return err
	}

	if booking.GuestID != guestID {
		return ErrBookingNotFound
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, ErrNoSuchBooking) {
			return ErrBookingNotFound
		}
		return err
	}

	metrics.RecordBookingCancellation()

	roomName := ""
	if rm, err := s.roomRepo.GetByID(ctx, booking.RoomID); err == nil {
		roomName = rm.Name
	}
	s.sendCancellation(ctx, guestID, roomName, booking)

	return nil
}

func (s *service) GetGuestBookings(ctx context.Context, guestID int) ([]Booking, error) {
	return s.bookingRepo.ListByGuest(ctx, guestID)
}

func (s *service) ListBookingsByRoom(ctx context.Context, roomID int) ([]BookingWithDetails, error) {
	return s.bookingRepo.ListByRoom(ctx, roomID)
}

func (s *service) sendConfirmation(ctx context.Context, guestID int, roomName string, b *Booking) {
	if s.notifier == nil {
		return
	}

	g, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		return
	}

	dates := b.CheckIn.Format(DateLayout) + " to " + b.CheckOut.Format(DateLayout)
	if err := s.notifier.SendBookingConfirmation(ctx, g.Email, g.Name, roomName, dates, b.CheckIn); err != nil {
		logger.Errorf("Failed to queue confirmation email for booking %d: %v", b.ID, err)
	}
}

func (s *service) sendCancellation(ctx context.Context, guestID int, roomName string, b *Booking) {
	if s.notifier == nil {
		return
	}

	g, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		return
	}

	dates := b.CheckIn.Format(DateLayout) + " to " + b.CheckOut.Format(DateLayout)
	if err := s.notifier.SendBookingCancellation(ctx, g.Email, g.Name, roomName, dates); err != nil {
		logger.Errorf("Failed to queue cancellation email for booking %d: %v", b.ID, err)
	}
}
