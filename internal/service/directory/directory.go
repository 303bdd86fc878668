package directorysrv

import (
	"context"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/internal/repository"
	"github.com/pkpu-id/tagihan/internal/service"
)

type directoryService struct {
	sifatTagihanRepository repository.SifatTagihanRepository
	userRepository         repository.UserRepository
}

// ListSifatTagihan implements DirectoryServices.
func (d *directoryService) ListSifatTagihan(ctx context.Context) ([]domain.SifatTagihan, error) {
	return d.sifatTagihanRepository.FindAll(ctx)
}

// ListUsers implements DirectoryServices.
func (d *directoryService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return d.userRepository.FindAll(ctx)
}

func NewDirectoryService(
	sifatTagihanRepository repository.SifatTagihanRepository,
	userRepository repository.UserRepository,
) service.DirectoryServices {
	return &directoryService{
		sifatTagihanRepository: sifatTagihanRepository,
		userRepository:         userRepository,
	}
}
