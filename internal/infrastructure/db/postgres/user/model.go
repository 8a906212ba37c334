package user

import (
	"time"
)

type (
	User struct {
		ID            int64
		FullName      string
		Email         string
		Phone         string
		ZipCode       string
		Address       string
		Number        string
		City          string
		State         string
		TermsAccepted bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
