package apihandler

import (
	"encoding/json"
	"errors"

	"github.com/pkpu-id/tagihan/internal/dto"
	"github.com/pkpu-id/tagihan/internal/service"
	"github.com/pkpu-id/tagihan/pkg/common"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// APIHandler serves the bearer-gated directory endpoints and the public
// verification endpoint under /api.
type APIHandler struct {
	directoryService    service.DirectoryServices
	verificationService service.VerificationServices

	tracer       trace.Tracer
	log          *zap.Logger
	requestCount metric.Int64Counter
	errorCount   metric.Int64Counter
}

func NewAPIHandler(
	directoryService service.DirectoryServices,
	verificationService service.VerificationServices,
	meter metric.Meter,
	tracer trace.Tracer,
	log *zap.Logger,
) *APIHandler {
	requestCount, err := meter.Int64Counter(
		"api.request.count",
		metric.WithDescription("Number of API requests received"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		zap.L().Fatal("Failed to create request count metric", zap.Error(err))
	}

	errorCount, err := meter.Int64Counter(
		"api.error.count",
		metric.WithDescription("Number of API errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		zap.L().Fatal("Failed to create error count metric", zap.Error(err))
	}

	return &APIHandler{
		directoryService:    directoryService,
		verificationService: verificationService,
		tracer:              tracer,
		log:                 log,
		requestCount:        requestCount,
		errorCount:          errorCount,
	}
}

// ListSifatTagihan handles GET /api/sifattagihan.
func (a *APIHandler) ListSifatTagihan(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctx, span := a.tracer.Start(ctx, "handler.ListSifatTagihan")
	defer span.End()

	a.requestCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", c.Path()),
		attribute.String("method", c.Method()),
	))

	sifats, err := a.directoryService.ListSifatTagihan(ctx)
	if err != nil {
		span.RecordError(err)

		a.log.Error("Failed to list sifat tagihan",
			zap.String("trace_id", span.SpanContext().TraceID().String()),
			zap.Error(err),
		)

		a.errorCount.Add(ctx, 1, metric.WithAttributes(
			attribute.String("endpoint", c.Path()),
		))

		return common.ErrorResponse(c, fiber.StatusBadRequest, "Error Unexpected")
	}

	return c.Status(fiber.StatusOK).JSON(sifats)
}

// ListUsers handles GET /api/user. A storage failure answers 401, matching
// the behavior the frontend was built against.
func (a *APIHandler) ListUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctx, span := a.tracer.Start(ctx, "handler.ListUsers")
	defer span.End()

	a.requestCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", c.Path()),
		attribute.String("method", c.Method()),
	))

	users, err := a.directoryService.ListUsers(ctx)
	if err != nil {
		span.RecordError(err)

		a.log.Error("Failed to list users",
			zap.String("trace_id", span.SpanContext().TraceID().String()),
			zap.Error(err),
		)

		a.errorCount.Add(ctx, 1, metric.WithAttributes(
			attribute.String("endpoint", c.Path()),
		))

		return common.ErrorResponse(c, fiber.StatusUnauthorized, "Error Unexpected")
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

// RequestVerification handles POST /api/user. The body is a bare JSON string
// holding the email address. Every outcome answers 200: the success flag in
// the payload carries the result.
func (a *APIHandler) RequestVerification(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctx, span := a.tracer.Start(ctx, "handler.RequestVerification")
	defer span.End()

	a.requestCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", c.Path()),
		attribute.String("method", c.Method()),
	))

	// A malformed body leaves email empty and falls through to validation.
	var email string
	if err := json.Unmarshal(c.Body(), &email); err != nil {
		a.log.Debug("Verification body is not a JSON string", zap.Error(err))
	}

	_, validationErrors, err := a.verificationService.RequestVerification(ctx, email)
	if len(validationErrors) > 0 {
		return c.Status(fiber.StatusOK).JSON(dto.ValidationResult{
			Success: false,
			Errors:  validationErrors,
		})
	}
	if err != nil {
		span.RecordError(err)

		if !errors.Is(err, common.ErrMailDelivery) {
			a.log.Error("Failed to process verification request",
				zap.String("trace_id", span.SpanContext().TraceID().String()),
				zap.Error(err),
			)
		}

		a.errorCount.Add(ctx, 1, metric.WithAttributes(
			attribute.String("endpoint", c.Path()),
		))

		return c.Status(fiber.StatusOK).JSON(dto.ActionResult{
			Success: false,
			Message: "Email gagal dikirim",
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.ActionResult{
		Success: true,
		Message: "Email berhasil terkirim!",
	})
}
