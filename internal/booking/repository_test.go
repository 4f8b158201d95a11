package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func date(s string) time.Time {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

var bookingColumns = []string{"id", "room_id", "guest_id", "check_in", "check_out", "created_at"}

func TestInsert(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	checkIn := date("2024-01-01")
	checkOut := date("2024-01-04")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings WHERE room_id = $1 AND check_in < $3 AND check_out > $2")).
		WithArgs(1, checkIn, checkOut).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (room_id, guest_id, check_in, check_out) VALUES ($1, $2, $3, $4) RETURNING id, room_id, guest_id, check_in, check_out, created_at")).
		WithArgs(1, 7, checkIn, checkOut).
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(10, 1, 7, checkIn, checkOut, now))
	mock.ExpectCommit()

	b, err := repo.Insert(context.Background(), 1, 7, checkIn, checkOut)
	require.NoError(t, err)
	require.Equal(t, 10, b.ID)
	require.Equal(t, 1, b.RoomID)
	require.Equal(t, 7, b.GuestID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_ConflictOnPrecheck(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	checkIn := date("2024-01-01")
	checkOut := date("2024-01-04")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings WHERE room_id = $1 AND check_in < $3 AND check_out > $2")).
		WithArgs(1, checkIn, checkOut).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.Insert(context.Background(), 1, 7, checkIn, checkOut)
	require.ErrorIs(t, err, ErrDatesConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_ConflictFromConstraint(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	checkIn := date("2024-01-01")
	checkOut := date("2024-01-04")

	// A writer that commits between our overlap check and our insert trips
	// the bookings_no_overlap exclusion constraint.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings WHERE room_id = $1 AND check_in < $3 AND check_out > $2")).
		WithArgs(1, checkIn, checkOut).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(1, 7, checkIn, checkOut).
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"})
	mock.ExpectRollback()

	_, err := repo.Insert(context.Background(), 1, 7, checkIn, checkOut)
	require.ErrorIs(t, err, ErrDatesConflict)
}

func TestInsert_SerializationFailureIsConflict(t *testing.T) {
	require.ErrorIs(t, asConflict(&pq.Error{Code: "40001"}), ErrDatesConflict)
	require.ErrorIs(t, asConflict(&pq.Error{Code: "23P01"}), ErrDatesConflict)
	require.NotErrorIs(t, asConflict(&pq.Error{Code: "23505"}), ErrDatesConflict)
}

func TestFindOverlapping(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	checkIn := date("2024-03-01")
	checkOut := date("2024-03-05")

	rows := sqlmock.NewRows(bookingColumns).
		AddRow(1, 2, 7, date("2024-03-02"), date("2024-03-04"), now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, room_id, guest_id, check_in, check_out, created_at FROM bookings WHERE room_id = $1 AND check_in < $3 AND check_out > $2 ORDER BY check_in ASC")).
		WithArgs(2, checkIn, checkOut).
		WillReturnRows(rows)

	list, err := repo.FindOverlapping(context.Background(), 2, checkIn, checkOut)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 2, list[0].RoomID)
}

func TestDelete(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 5)
	require.NoError(t, err)

	// second delete of the same id affects zero rows
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), 5)
	require.ErrorIs(t, err, ErrNoSuchBooking)
}

func TestGetByIDAndListByGuest(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, room_id, guest_id, check_in, check_out, created_at FROM bookings WHERE id = $1")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(10, 1, 7, date("2024-01-01"), date("2024-01-04"), now))

	got, err := repo.GetByID(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, 10, got.ID)

	rows := sqlmock.NewRows(bookingColumns).
		AddRow(10, 1, 7, date("2024-01-01"), date("2024-01-04"), now).
		AddRow(11, 2, 7, date("2024-02-01"), date("2024-02-03"), now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, room_id, guest_id, check_in, check_out, created_at FROM bookings WHERE guest_id = $1 ORDER BY check_in ASC, created_at DESC")).
		WithArgs(7).
		WillReturnRows(rows)

	list, err := repo.ListByGuest(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestBookedRoomIDs(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	checkIn := date("2024-03-01")
	checkOut := date("2024-03-05")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT room_id FROM bookings WHERE check_in < $2 AND check_out > $1")).
		WithArgs(checkIn, checkOut).
		WillReturnRows(sqlmock.NewRows([]string{"room_id"}).AddRow(1).AddRow(3))

	ids, err := repo.BookedRoomIDs(context.Background(), checkIn, checkOut)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, ids)
}
