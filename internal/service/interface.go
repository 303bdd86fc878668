package service

import (
	"context"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/internal/dto"
)

type VerificationServices interface {
	RequestVerification(ctx context.Context, email string) (*domain.VerificationResult, []domain.ValidationError, error)
}

type TagihanServices interface {
	CreateTagihan(ctx context.Context, req dto.TagihanRequest) ([]domain.ValidationError, error)
}

type KreditorServices interface {
	CreateKreditor(ctx context.Context, req dto.KreditorRequest) ([]domain.ValidationError, error)
}

type FormServices interface {
	LoadFormData(ctx context.Context, uniqueCode string) (*dto.FormBody, error)
}

type DirectoryServices interface {
	ListSifatTagihan(ctx context.Context) ([]domain.SifatTagihan, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
