package repository

import (
	"context"
	"errors"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/internal/model"
	"github.com/pkpu-id/tagihan/pkg/common"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type kreditorRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

// CreateKreditor implements KreditorRepository. A duplicate email surfaces as
// common.ErrKreditorEmailExists so callers can show the registered-email
// message instead of the generic failure.
func (k *kreditorRepository) CreateKreditor(ctx context.Context, kreditor *domain.Kreditor) error {
	record := model.KreditorFromEntity(kreditor)

	if err := k.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			k.log.Info("Duplicate kreditor email rejected",
				zap.String("email", kreditor.Email),
			)
			return common.ErrKreditorEmailExists
		}

		k.log.Error("Error creating kreditor",
			zap.String("email", kreditor.Email),
			zap.Error(err),
		)
		return err
	}

	kreditor.ID = record.ID
	kreditor.CreatedAt = record.CreatedAt
	kreditor.UpdatedAt = record.UpdatedAt

	return nil
}

// FindAll implements KreditorRepository.
func (k *kreditorRepository) FindAll(ctx context.Context) ([]domain.Kreditor, error) {
	var kreditors []model.Kreditor
	err := k.db.WithContext(ctx).Find(&kreditors).Error

	return model.KreditorsToEntity(kreditors), err
}

func NewKreditorRepository(db *gorm.DB, log *zap.Logger) KreditorRepository {
	return &kreditorRepository{
		db:  db,
		log: log,
	}
}
