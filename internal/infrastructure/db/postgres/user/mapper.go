package user

import (
	domain "user-registration-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:            domain.ID(model.ID),
		FullName:      model.FullName,
		Email:         model.Email,
		Phone:         model.Phone,
		ZipCode:       model.ZipCode,
		Address:       model.Address,
		Number:        model.Number,
		City:          model.City,
		State:         model.State,
		TermsAccepted: model.TermsAccepted,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
