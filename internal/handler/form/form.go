package formhandler

import (
	"errors"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/internal/dto"
	"github.com/pkpu-id/tagihan/internal/service"
	"github.com/pkpu-id/tagihan/pkg/common"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FormHandler serves the code-gated intake form under /:id/:uniquecode.
type FormHandler struct {
	formService     service.FormServices
	tagihanService  service.TagihanServices
	kreditorService service.KreditorServices

	log *zap.Logger
}

func NewFormHandler(
	formService service.FormServices,
	tagihanService service.TagihanServices,
	kreditorService service.KreditorServices,
	log *zap.Logger,
) *FormHandler {
	return &FormHandler{
		formService:     formService,
		tagihanService:  tagihanService,
		kreditorService: kreditorService,
		log:             log,
	}
}

// LoadForm handles GET /:id/:uniquecode/tagihan. It returns the reference
// data the intake form needs, gated on the emailed unique code.
func (f *FormHandler) LoadForm(c *fiber.Ctx) error {
	ctx := c.UserContext()

	body, err := f.formService.LoadFormData(ctx, c.Params("uniquecode"))
	if err != nil {
		if errors.Is(err, common.ErrInvalidUniqueCode) {
			return common.ErrorResponse(c, fiber.StatusBadRequest, "Invalid uniquecode")
		}

		f.log.Error("Failed to load form data", zap.Error(err))
		return common.ErrorResponse(c, fiber.StatusInternalServerError, "Error Unexpected")
	}

	return c.Status(fiber.StatusOK).JSON(dto.FormLoadResponse{
		Status: fiber.StatusOK,
		Body:   *body,
	})
}

// AddTagihan handles POST /:id/:uniquecode/tagihan. The multipart form
// carries the scalar claim fields plus parallel tipeDokumenId and dokumen
// parts; each type id is paired with the upload at the same position before
// the request reaches the service.
func (f *FormHandler) AddTagihan(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.TagihanRequest
	if err := c.BodyParser(&req); err != nil {
		f.log.Debug("Cannot parse tagihan form", zap.Error(err))
		return common.ErrorResponse(c, fiber.StatusBadRequest, "Cannot parse form")
	}

	form, err := c.MultipartForm()
	if err != nil {
		f.log.Debug("Cannot read multipart form", zap.Error(err))
		return common.ErrorResponse(c, fiber.StatusBadRequest, "Cannot parse form")
	}

	tipeDokumenIDs := form.Value["tipeDokumenId"]
	files := form.File["dokumen"]

	pairs := len(tipeDokumenIDs)
	if len(files) > pairs {
		pairs = len(files)
	}

	req.Dokumen = make([]domain.DokumenUpload, pairs)
	for i := range pairs {
		if i < len(tipeDokumenIDs) {
			req.Dokumen[i].TipeDokumenID = tipeDokumenIDs[i]
		}
		if i < len(files) {
			req.Dokumen[i].File = files[i]
		}
	}

	validationErrors, err := f.tagihanService.CreateTagihan(ctx, req)
	if len(validationErrors) > 0 {
		return c.Status(fiber.StatusOK).JSON(dto.ValidationResult{
			Success: false,
			Errors:  validationErrors,
		})
	}
	if err != nil {
		return c.Status(fiber.StatusOK).JSON(dto.ActionResult{
			Success: false,
			Message: "Tagihan gagal ditambahkan",
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.ActionResult{
		Success: true,
		Message: "Tagihan berhasil ditambahkan",
	})
}

// AddKreditor handles POST /:id/:uniquecode/kreditor.
func (f *FormHandler) AddKreditor(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.KreditorRequest
	if err := c.BodyParser(&req); err != nil {
		f.log.Debug("Cannot parse kreditor form", zap.Error(err))
		return common.ErrorResponse(c, fiber.StatusBadRequest, "Cannot parse form")
	}

	validationErrors, err := f.kreditorService.CreateKreditor(ctx, req)
	if len(validationErrors) > 0 {
		return c.Status(fiber.StatusOK).JSON(dto.ValidationResult{
			Success: false,
			Errors:  validationErrors,
		})
	}
	if err != nil {
		message := "Kreditor gagal ditambahkan"
		if errors.Is(err, common.ErrKreditorEmailExists) {
			message = "Email kreditor sudah terdaftar, silahkan periksa kembali"
		}

		return c.Status(fiber.StatusOK).JSON(dto.ActionResult{
			Success: false,
			Message: message,
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.ActionResult{
		Success: true,
		Message: "Kreditor berhasil ditambahkan",
	})
}
