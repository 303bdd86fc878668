package repository

import (
	"context"
	"errors"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/internal/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// FindByUniqueCode implements UserRepository.
func (u *userRepository) FindByUniqueCode(ctx context.Context, code string) (*domain.User, error) {
	var user model.User
	if err := u.db.WithContext(ctx).Where("unique_code = ?", code).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return model.UserToEntity(user), nil
}

// FindAll implements UserRepository.
func (u *userRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var users []model.User
	err := u.db.WithContext(ctx).Find(&users).Error

	return model.UsersToEntity(users), err
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}
