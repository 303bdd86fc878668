package model

import (
	"github.com/pkpu-id/tagihan/internal/domain"
)

func UserToEntity(data User) *domain.User {
	return &domain.User{
		ID:         data.ID,
		Email:      data.Email,
		UniqueCode: data.UniqueCode,
	}
}

func UsersToEntity(data []User) []domain.User {
	responses := make([]domain.User, len(data))
	for i, u := range data {
		responses[i] = *UserToEntity(u)
	}

	return responses
}

func UserVerifyFromEntity(data *domain.UserVerify) UserVerify {
	return UserVerify{
		Email:          data.Email,
		UniqueCode:     data.UniqueCode,
		ExpirationDate: data.ExpirationDate,
	}
}

func UserVerifyToEntity(data UserVerify) *domain.UserVerify {
	return &domain.UserVerify{
		ID:             data.ID,
		Email:          data.Email,
		UniqueCode:     data.UniqueCode,
		ExpirationDate: data.ExpirationDate,
	}
}
