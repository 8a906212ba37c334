package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-registration-api/internal/domain/user"
)

var userColumns = []string{
	"id", "full_name", "email", "phone", "zip_code",
	"address", "number", "city", "state", "terms_accepted",
	"created_at", "updated_at",
}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, domain.Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewRepository(mock)
}

func userRow(id int64, email string) []any {
	now := time.Now().UTC()
	return []any{
		id, "John Doe", email, "(11) 98765-4321", "12345-678",
		"Main Street", "123", "São Paulo", "SP", true,
		now, now,
	}
}

func TestRepository_CreateUser(t *testing.T) {
	req := domain.User{
		FullName:      "John Doe",
		Email:         "john@example.com",
		Phone:         "(11) 98765-4321",
		ZipCode:       "12345-678",
		Address:       "Main Street",
		Number:        "123",
		City:          "São Paulo",
		State:         "SP",
		TermsAccepted: true,
	}

	t.Run("success assigns id", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WithArgs(req.FullName, req.Email, req.Phone, req.ZipCode, req.Address, req.Number, req.City, req.State, req.TermsAccepted).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(userRow(1, req.Email)...))

		u, err := repo.CreateUser(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.EqualValues(t, 1, u.ID)
		assert.Equal(t, req.Email, u.Email)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WithArgs(req.FullName, req.Email, req.Phone, req.ZipCode, req.Address, req.Number, req.City, req.State, req.TermsAccepted).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		u, err := repo.CreateUser(context.Background(), req)
		require.ErrorIs(t, err, ErrEmailAlreadyExists)
		assert.Nil(t, u)
	})
}

func TestRepository_FetchUserByID(t *testing.T) {
	t.Run("no rows means absent", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
			WithArgs(int64(42)).
			WillReturnError(pgx.ErrNoRows)

		u, err := repo.FetchUserByID(context.Background(), 42)
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("found", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(userRow(1, "john@example.com")...))

		u, err := repo.FetchUserByID(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "john@example.com", u.Email)
		assert.Equal(t, "SP", u.State)
		assert.True(t, u.TermsAccepted)
	})
}

func TestRepository_FetchUsers(t *testing.T) {
	mock, repo := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(SelectUsers)).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(userRow(1, "first@example.com")...).
			AddRow(userRow(2, "second@example.com")...))

	us, err := repo.FetchUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, us, 2)
	assert.EqualValues(t, 1, us[0].ID)
	assert.EqualValues(t, 2, us[1].ID)
}

func TestRepository_UpdateUser(t *testing.T) {
	req := domain.User{
		ID:            1,
		FullName:      "John Doe",
		Email:         "john@example.com",
		Phone:         "(11) 98765-4321",
		ZipCode:       "12345-678",
		Address:       "Main Street",
		Number:        "123",
		City:          "São Paulo",
		State:         "SP",
		TermsAccepted: true,
	}
	args := []any{
		req.FullName, req.Email, req.Phone, req.ZipCode, req.Address,
		req.Number, req.City, req.State, req.TermsAccepted, int64(1),
	}

	t.Run("no rows means absent", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(UpdateUserByID)).
			WithArgs(args...).
			WillReturnError(pgx.ErrNoRows)

		u, err := repo.UpdateUser(context.Background(), req)
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(UpdateUserByID)).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		u, err := repo.UpdateUser(context.Background(), req)
		require.ErrorIs(t, err, ErrEmailAlreadyExists)
		assert.Nil(t, u)
	})

	t.Run("success replaces all fields", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(UpdateUserByID)).
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(userRow(1, req.Email)...))

		u, err := repo.UpdateUser(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.EqualValues(t, 1, u.ID)
	})
}

func TestRepository_DeleteUser(t *testing.T) {
	t.Run("no rows means absent", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(DeleteUserByID)).
			WithArgs(int64(999)).
			WillReturnError(pgx.ErrNoRows)

		u, err := repo.DeleteUser(context.Background(), 999)
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("success returns the removed record", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(DeleteUserByID)).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(userRow(1, "john@example.com")...))

		u, err := repo.DeleteUser(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.EqualValues(t, 1, u.ID)
	})
}

func TestRepository_EmailExists(t *testing.T) {
	t.Run("taken by another row", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectEmailExists)).
			WithArgs("john@example.com", int64(0)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.EmailExists(context.Background(), "john@example.com", 0)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("own row is excluded", func(t *testing.T) {
		mock, repo := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectEmailExists)).
			WithArgs("john@example.com", int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.EmailExists(context.Background(), "john@example.com", 1)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
