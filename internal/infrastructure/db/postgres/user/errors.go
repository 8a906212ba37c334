package user

import "errors"

var ErrEmailAlreadyExists = errors.New("email already registered")
