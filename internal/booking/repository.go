package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrDatesConflict = errors.New("room already booked for these dates")
	ErrNoSuchBooking = errors.New("no such booking")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Overlap predicate for half-open ranges: existing.check_in < new.check_out
// AND existing.check_out > new.check_in. A checkout and a check-in on the
// same day do not conflict.
const overlapCondition = `room_id = $1 AND check_in < $3 AND check_out > $2`

func (r *repository) Insert(ctx context.Context, roomID, guestID int, checkIn, checkOut time.Time) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var conflicts int
	err = tx.GetContext(ctx, &conflicts, `
		SELECT COUNT(*)
		FROM bookings
		WHERE `+overlapCondition+`
	`, roomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	if conflicts > 0 {
		return nil, ErrDatesConflict
	}

	var booking Booking
	err = tx.GetContext(ctx, &booking, `
		INSERT INTO bookings (room_id, guest_id, check_in, check_out)
		VALUES ($1, $2, $3, $4)
		RETURNING id, room_id, guest_id, check_in, check_out, created_at
	`, roomID, guestID, checkIn, checkOut)
	if err != nil {
		return nil, asConflict(err)
	}

	// The bookings_no_overlap exclusion constraint backstops writers that
	// commit between our check and this commit.
	if err := tx.Commit(); err != nil {
		return nil, asConflict(err)
	}

	return &booking, nil
}

// asConflict maps exclusion-constraint violations (23P01) and serialization
// failures (40001) to ErrDatesConflict.
func asConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23P01", "40001":
			return ErrDatesConflict
		}
	}
	return err
}

func (r *repository) FindOverlapping(ctx context.Context, roomID int, checkIn, checkOut time.Time) ([]Booking, error) {
	query := `
		SELECT id, room_id, guest_id, check_in, check_out, created_at
		FROM bookings
		WHERE ` + overlapCondition + `
		ORDER BY check_in ASC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, roomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) BookedRoomIDs(ctx context.Context, checkIn, checkOut time.Time) ([]int, error) {
	query := `
		SELECT DISTINCT room_id
		FROM bookings
		WHERE check_in < $2 AND check_out > $1
	`

	var roomIDs []int
	err := r.db.SelectContext(ctx, &roomIDs, query, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return roomIDs, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Booking, error) {
	query := `
		SELECT id, room_id, guest_id, check_in, check_out, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNoSuchBooking
	}

	return nil
}

func (r *repository) ListByGuest(ctx context.Context, guestID int) ([]Booking, error) {
	query := `
		SELECT id, room_id, guest_id, check_in, check_out, created_at
		FROM bookings
		WHERE guest_id = $1
		ORDER BY check_in ASC, created_at DESC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, guestID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListByRoom(ctx context.Context, roomID int) ([]BookingWithDetails, error) {
	query := `
		SELECT
			b.id,
			b.room_id,
			b.guest_id,
			b.check_in,
			b.check_out,
			b.created_at,
			r.name AS room_name,
			g.name AS guest_name,
			g.email AS guest_email
		FROM bookings b
		JOIN rooms r ON b.room_id = r.id
		JOIN guests g ON b.guest_id = g.id
		WHERE b.room_id = $1
		ORDER BY b.check_in ASC
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query, roomID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
