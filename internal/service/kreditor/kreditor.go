package kreditorsrv

import (
	"context"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/internal/dto"
	"github.com/pkpu-id/tagihan/internal/repository"
	"github.com/pkpu-id/tagihan/internal/service"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type kreditorService struct {
	kreditorRepository repository.KreditorRepository

	validate *validator.Validate
	log      *zap.Logger
}

// CreateKreditor implements KreditorServices. A duplicate email passes
// validation here and surfaces as common.ErrKreditorEmailExists from the
// repository.
func (k *kreditorService) CreateKreditor(ctx context.Context, req dto.KreditorRequest) ([]domain.ValidationError, error) {
	if validationErrors := k.validateKreditor(req); len(validationErrors) > 0 {
		return validationErrors, nil
	}

	kreditor := dto.KreditorToEntity(req)
	if err := k.kreditorRepository.CreateKreditor(ctx, kreditor); err != nil {
		return nil, err
	}

	k.log.Info("Kreditor created",
		zap.Uint64("kreditor_id", kreditor.ID),
		zap.String("email", kreditor.Email),
	)

	return nil, nil
}

func (k *kreditorService) validateKreditor(req dto.KreditorRequest) []domain.ValidationError {
	var validationErrors []domain.ValidationError

	if req.Nama == "" {
		validationErrors = append(validationErrors, domain.ValidationError{
			Field:   "nama",
			Message: "Nama tidak boleh kosong!",
		})
	}

	if req.Email == "" {
		validationErrors = append(validationErrors, domain.ValidationError{
			Field:   "email",
			Message: "Email tidak boleh kosong!",
		})
	} else if err := k.validate.Var(req.Email, "email"); err != nil {
		validationErrors = append(validationErrors, domain.ValidationError{
			Field:   "email",
			Message: "Format email tidak valid!",
		})
	}

	if req.NoTelp == "" {
		validationErrors = append(validationErrors, domain.ValidationError{
			Field:   "noTelp",
			Message: "No Telepon tidak boleh kosong!",
		})
	}

	if req.Alamat == "" {
		validationErrors = append(validationErrors, domain.ValidationError{
			Field:   "alamat",
			Message: "Alamat tidak boleh kosong!",
		})
	}

	return validationErrors
}

func NewKreditorService(
	kreditorRepository repository.KreditorRepository,
	log *zap.Logger,
) service.KreditorServices {
	return &kreditorService{
		kreditorRepository: kreditorRepository,
		validate:           validator.New(),
		log:                log,
	}
}
