package guest

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
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

var guestColumns = []string{"id", "name", "email", "password_hash", "role", "created_at"}

func TestCreate(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO guests (name, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, name, email, password_hash, role, created_at")).
		WithArgs("Alice", "alice@example.com", "hashed", "guest").
		WillReturnRows(sqlmock.NewRows(guestColumns).
			AddRow(1, "Alice", "alice@example.com", "hashed", "guest", now))

	guest, err := repo.Create(context.Background(), "Alice", "alice@example.com", "hashed", "guest")
	require.NoError(t, err)
	require.Equal(t, 1, guest.ID)
	require.Equal(t, "guest", guest.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, role, created_at FROM guests WHERE email = $1")).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(guestColumns).
			AddRow(1, "Alice", "alice@example.com", "hashed", "guest", time.Now()))

	guest, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "Alice", guest.Name)
}

func TestFindByID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, role, created_at FROM guests WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(guestColumns).
			AddRow(1, "Alice", "alice@example.com", "hashed", "guest", time.Now()))

	guest, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", guest.Email)
}

func TestEmailExists(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM guests WHERE email = $1)")).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.True(t, exists)
}
