package repository

import (
	"context"
	"time"

	"github.com/pkpu-id/tagihan/internal/domain"
)

type KreditorRepository interface {
	CreateKreditor(ctx context.Context, kreditor *domain.Kreditor) error
	FindAll(ctx context.Context) ([]domain.Kreditor, error)
}

type TagihanRepository interface {
	CreateTagihan(ctx context.Context, tagihan *domain.Tagihan) error
	CreateDokumenTagihans(ctx context.Context, dokumen []domain.DokumenTagihan) error
}

type SifatTagihanRepository interface {
	FindAll(ctx context.Context) ([]domain.SifatTagihan, error)
}

type TipeDokumenRepository interface {
	FindAll(ctx context.Context) ([]domain.TipeDokumen, error)
}

type UserRepository interface {
	FindByUniqueCode(ctx context.Context, code string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}

type UserVerifyRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.UserVerify, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, verify *domain.UserVerify) error
	UpdateCode(ctx context.Context, email, code string, expiration time.Time) error
}
