package user

import (
	"user-registration-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:            int64(uDomain.ID),
		FullName:      uDomain.FullName,
		Email:         uDomain.Email,
		Phone:         uDomain.Phone,
		ZipCode:       uDomain.ZipCode,
		Address:       uDomain.Address,
		Number:        uDomain.Number,
		City:          uDomain.City,
		State:         uDomain.State,
		TermsAccepted: uDomain.TermsAccepted,
		CreatedAt:     uDomain.CreatedAt,
		UpdatedAt:     uDomain.UpdatedAt,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainUser(uRequest Request) user.User {
	var u = user.User{
		FullName: uRequest.FullName,
		Email:    uRequest.Email,
		Phone:    uRequest.Phone,
		ZipCode:  uRequest.ZipCode,
		Address:  uRequest.Address,
		Number:   uRequest.Number,
		City:     uRequest.City,
		State:    uRequest.State,
	}
	if uRequest.TermsAccepted != nil {
		u.TermsAccepted = *uRequest.TermsAccepted
	}

	return u
}
