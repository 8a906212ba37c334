package user

import (
	"time"
)

type (
	User struct {
		ID            int64     `json:"id"`
		FullName      string    `json:"full_name"`
		Email         string    `json:"email"`
		Phone         string    `json:"phone"`
		ZipCode       string    `json:"zip_code"`
		Address       string    `json:"address"`
		Number        string    `json:"number"`
		City          string    `json:"city"`
		State         string    `json:"state"`
		TermsAccepted bool      `json:"terms_accepted"`
		CreatedAt     time.Time `json:"created_at"`
		UpdatedAt     time.Time `json:"updated_at"`
	}
	Users []User
)
