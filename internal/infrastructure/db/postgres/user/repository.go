package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"user-registration-api/internal/domain/user"
	"user-registration-api/internal/infrastructure/db/postgres"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies it
// in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewRepository(db DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUsers(ctx context.Context) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)

		if err = rows.Scan(
			&u.ID,
			&u.FullName,
			&u.Email,
			&u.Phone,
			&u.ZipCode,
			&u.Address,
			&u.Number,
			&u.City,
			&u.State,
			&u.TermsAccepted,

			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, int64(id)).Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.Phone,
		&u.ZipCode,
		&u.Address,
		&u.Number,
		&u.City,
		&u.State,
		&u.TermsAccepted,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.FullName, req.Email, req.Phone, req.ZipCode, req.Address, req.Number, req.City, req.State, req.TermsAccepted,
	).Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.Phone,
		&u.ZipCode,
		&u.Address,
		&u.Number,
		&u.City,
		&u.State,
		&u.TermsAccepted,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, UpdateUserByID,
		req.FullName, req.Email, req.Phone, req.ZipCode, req.Address, req.Number, req.City, req.State, req.TermsAccepted, int64(req.ID),
	).Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.Phone,
		&u.ZipCode,
		&u.Address,
		&u.Number,
		&u.City,
		&u.State,
		&u.TermsAccepted,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) DeleteUser(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, DeleteUserByID, int64(id)).Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.Phone,
		&u.ZipCode,
		&u.Address,
		&u.Number,
		&u.City,
		&u.State,
		&u.TermsAccepted,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

// EmailExists reports whether another row already holds the email. excludeID=0
// means "no row excluded" (fresh registrations have no id yet).
func (r *Repository) EmailExists(ctx context.Context, email string, excludeID user.ID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, SelectEmailExists, email, int64(excludeID)).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
