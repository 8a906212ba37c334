package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

// users schema is bootstrapped on startup. The UNIQUE constraint on email is
// the atomic guard against concurrent registrations with the same address:
// the application-level pre-check is advisory only.
const usersSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id             BIGSERIAL PRIMARY KEY,
		full_name      TEXT        NOT NULL,
		email          TEXT        NOT NULL UNIQUE,
		phone          TEXT        NOT NULL,
		zip_code       TEXT        NOT NULL,
		address        TEXT        NOT NULL,
		number         TEXT        NOT NULL,
		city           TEXT        NOT NULL,
		state          TEXT        NOT NULL,
		terms_accepted BOOLEAN     NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

func New(ctx context.Context, logger *zap.Logger, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("db ping failed: %w", err)
	}

	logger.Info("db connected successfully")

	return pool, nil
}

func EnsureSchema(ctx context.Context, logger *zap.Logger, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, usersSchema); err != nil {
		return fmt.Errorf("users schema bootstrap failed: %w", err)
	}

	logger.Info("users schema ensured")

	return nil
}

func IsPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
