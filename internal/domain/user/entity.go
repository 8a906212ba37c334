package user

import (
	"time"
)

type (
	ID   int64
	User struct {
		ID            ID
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
