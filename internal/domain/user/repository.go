package user

import (
	"context"
)

type Repository interface {
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUsers(ctx context.Context) (Users, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, req User) (*User, error)
	DeleteUser(ctx context.Context, id ID) (*User, error)
	EmailExists(ctx context.Context, email string, excludeID ID) (bool, error)
}
