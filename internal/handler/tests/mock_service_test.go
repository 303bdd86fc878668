package handler_test

import (
	"context"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/internal/dto"
)

type mockDirectoryService struct {
	MockSifatTagihanData []domain.SifatTagihan
	MockUserData         []domain.User
	MockError            error
}

func (m *mockDirectoryService) ListSifatTagihan(ctx context.Context) ([]domain.SifatTagihan, error) {
	return m.MockSifatTagihanData, m.MockError
}

func (m *mockDirectoryService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return m.MockUserData, m.MockError
}

type mockVerificationService struct {
	MockResult           *domain.VerificationResult
	MockValidationErrors []domain.ValidationError
	MockError            error

	CalledWithEmail string
}

func (m *mockVerificationService) RequestVerification(ctx context.Context, email string) (*domain.VerificationResult, []domain.ValidationError, error) {
	m.CalledWithEmail = email
	return m.MockResult, m.MockValidationErrors, m.MockError
}

type mockFormService struct {
	MockBody  *dto.FormBody
	MockError error

	CalledWithCode string
}

func (m *mockFormService) LoadFormData(ctx context.Context, uniqueCode string) (*dto.FormBody, error) {
	m.CalledWithCode = uniqueCode
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.MockBody, nil
}

type mockTagihanService struct {
	MockValidationErrors []domain.ValidationError
	MockError            error

	CalledWith *dto.TagihanRequest
}

func (m *mockTagihanService) CreateTagihan(ctx context.Context, req dto.TagihanRequest) ([]domain.ValidationError, error) {
	m.CalledWith = &req
	return m.MockValidationErrors, m.MockError
}

type mockKreditorService struct {
	MockValidationErrors []domain.ValidationError
	MockError            error

	CalledWith *dto.KreditorRequest
}

func (m *mockKreditorService) CreateKreditor(ctx context.Context, req dto.KreditorRequest) ([]domain.ValidationError, error) {
	m.CalledWith = &req
	return m.MockValidationErrors, m.MockError
}
