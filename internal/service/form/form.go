package formsrv

import (
	"context"

	"github.com/pkpu-id/tagihan/internal/dto"
	"github.com/pkpu-id/tagihan/internal/repository"
	"github.com/pkpu-id/tagihan/internal/service"
	"github.com/pkpu-id/tagihan/pkg/common"

	"go.uber.org/zap"
)

type formService struct {
	userRepository         repository.UserRepository
	kreditorRepository     repository.KreditorRepository
	sifatTagihanRepository repository.SifatTagihanRepository
	tipeDokumenRepository  repository.TipeDokumenRepository

	log *zap.Logger
}

// LoadFormData implements FormServices. The unique code gates the form: an
// unknown code yields common.ErrInvalidUniqueCode and no reference data.
func (f *formService) LoadFormData(ctx context.Context, uniqueCode string) (*dto.FormBody, error) {
	user, err := f.userRepository.FindByUniqueCode(ctx, uniqueCode)
	if err != nil {
		f.log.Error("Failed to look up unique code",
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, common.ErrInvalidUniqueCode
	}

	kreditors, err := f.kreditorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sifats, err := f.sifatTagihanRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	tipes, err := f.tipeDokumenRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.FormBody{
		KreditorData:     kreditors,
		SifatTagihanData: sifats,
		TipeDokumenData:  tipes,
	}, nil
}

func NewFormService(
	userRepository repository.UserRepository,
	kreditorRepository repository.KreditorRepository,
	sifatTagihanRepository repository.SifatTagihanRepository,
	tipeDokumenRepository repository.TipeDokumenRepository,
	log *zap.Logger,
) service.FormServices {
	return &formService{
		userRepository:         userRepository,
		kreditorRepository:     kreditorRepository,
		sifatTagihanRepository: sifatTagihanRepository,
		tipeDokumenRepository:  tipeDokumenRepository,
		log:                    log,
	}
}
