package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/internal/model"

	"gorm.io/gorm"
)

type userVerifyRepository struct {
	db *gorm.DB
}

// FindByEmail implements UserVerifyRepository.
func (u *userVerifyRepository) FindByEmail(ctx context.Context, email string) (*domain.UserVerify, error) {
	var verify model.UserVerify
	if err := u.db.WithContext(ctx).Where("email = ?", email).First(&verify).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return model.UserVerifyToEntity(verify), nil
}

// ExistsByCode implements UserVerifyRepository.
func (u *userVerifyRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := u.db.WithContext(ctx).Model(&model.UserVerify{}).
		Where("unique_code = ?", code).
		Count(&count).Error

	return count > 0, err
}

// Create implements UserVerifyRepository.
func (u *userVerifyRepository) Create(ctx context.Context, verify *domain.UserVerify) error {
	record := model.UserVerifyFromEntity(verify)
	if err := u.db.WithContext(ctx).Create(&record).Error; err != nil {
		return err
	}

	verify.ID = record.ID

	return nil
}

// UpdateCode implements UserVerifyRepository.
func (u *userVerifyRepository) UpdateCode(ctx context.Context, email, code string, expiration time.Time) error {
	return u.db.WithContext(ctx).Model(&model.UserVerify{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"unique_code":     code,
			"expiration_date": expiration,
		}).Error
}

func NewUserVerifyRepository(db *gorm.DB) UserVerifyRepository {
	return &userVerifyRepository{
		db: db,
	}
}
