package repository

import (
	"context"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/internal/model"

	"gorm.io/gorm"
)

type sifatTagihanRepository struct {
	db *gorm.DB
}

// FindAll implements SifatTagihanRepository.
func (s *sifatTagihanRepository) FindAll(ctx context.Context) ([]domain.SifatTagihan, error) {
	var sifats []model.SifatTagihan
	err := s.db.WithContext(ctx).Find(&sifats).Error

	return model.SifatTagihansToEntity(sifats), err
}

func NewSifatTagihanRepository(db *gorm.DB) SifatTagihanRepository {
	return &sifatTagihanRepository{
		db: db,
	}
}

type tipeDokumenRepository struct {
	db *gorm.DB
}

// FindAll implements TipeDokumenRepository.
func (t *tipeDokumenRepository) FindAll(ctx context.Context) ([]domain.TipeDokumen, error) {
	var tipes []model.TipeDokumen
	err := t.db.WithContext(ctx).Find(&tipes).Error

	return model.TipeDokumensToEntity(tipes), err
}

func NewTipeDokumenRepository(db *gorm.DB) TipeDokumenRepository {
	return &tipeDokumenRepository{
		db: db,
	}
}
