package tagihansrv

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/internal/dto"
	"github.com/pkpu-id/tagihan/internal/repository"
	"github.com/pkpu-id/tagihan/internal/service"
	"github.com/pkpu-id/tagihan/pkg/docstore"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxDokumenSize caps one uploaded document at 2 MB.
const maxDokumenSize = 2 * 1024 * 1024

type tagihanService struct {
	db    *gorm.DB
	store docstore.Store

	meter             metric.Meter
	tracer            trace.Tracer
	log               *zap.Logger
	operationDuration metric.Float64Histogram
	operationCount    metric.Int64Counter
	errorCount        metric.Int64Counter
	tagihansCreated   metric.Int64Counter
	dokumenStored     metric.Int64Counter
}

// CreateTagihan implements TagihanServices. Validation failures come back as
// the accumulated list with a nil error; the claim row, its dokumen rows and
// the document files are committed together or not at all.
func (t *tagihanService) CreateTagihan(ctx context.Context, req dto.TagihanRequest) ([]domain.ValidationError, error) {
	ctx, span := t.tracer.Start(ctx, "service.CreateTagihan")
	defer span.End()

	start := time.Now()

	t.operationCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", "create_tagihan"),
			attribute.String("service", "tagihan"),
		),
	)

	span.SetAttributes(
		attribute.String("tagihan.kreditor_id", req.KreditorID),
		attribute.Int("tagihan.dokumen_count", len(req.Dokumen)),
	)

	if validationErrors := validateTagihan(req); len(validationErrors) > 0 {
		t.log.Debug("Tagihan rejected by validation",
			zap.Int("error_count", len(validationErrors)),
			zap.String("trace_id", span.SpanContext().TraceID().String()),
		)

		span.SetStatus(codes.Ok, "Validation failed")
		span.SetAttributes(attribute.Int("validation.error_count", len(validationErrors)))

		return validationErrors, nil
	}

	tagihan := dto.TagihanToEntity(req)

	// Rows and files commit together. Files already written when a later
	// step fails are removed before the transaction rolls back.
	var written []string
	err := t.db.Transaction(func(tx *gorm.DB) error {
		txRepository := repository.NewTagihanRepository(tx, t.meter, t.tracer, t.log)

		if err := txRepository.CreateTagihan(ctx, tagihan); err != nil {
			return err
		}

		dokumen := make([]domain.DokumenTagihan, len(req.Dokumen))
		for i, d := range req.Dokumen {
			tipeDokumenID, _ := strconv.ParseUint(d.TipeDokumenID, 10, 64)
			dokumen[i] = domain.DokumenTagihan{
				TipeDokumenID: tipeDokumenID,
				Dokumen:       d.File.Filename,
				TagihanID:     tagihan.ID,
			}
		}

		if err := txRepository.CreateDokumenTagihans(ctx, dokumen); err != nil {
			return err
		}

		for _, d := range req.Dokumen {
			file, err := d.File.Open()
			if err != nil {
				return fmt.Errorf("failed to open dokumen %s: %w", d.File.Filename, err)
			}

			err = t.store.Save(d.File.Filename, file)
			file.Close()
			if err != nil {
				return fmt.Errorf("failed to store dokumen %s: %w", d.File.Filename, err)
			}

			written = append(written, d.File.Filename)
		}

		return nil
	})
	if err != nil {
		for _, name := range written {
			if removeErr := t.store.Remove(name); removeErr != nil {
				t.log.Warn("Failed to remove dokumen after rollback",
					zap.String("dokumen", name),
					zap.Error(removeErr),
				)
			}
		}

		span.SetStatus(codes.Error, "Failed to create tagihan")
		span.RecordError(err)

		t.log.Error("Failed to create tagihan",
			zap.String("kreditor_id", req.KreditorID),
			zap.String("trace_id", span.SpanContext().TraceID().String()),
			zap.Error(err),
		)

		t.errorCount.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("operation", "create_tagihan"),
				attribute.String("service", "tagihan"),
			),
		)

		duration := float64(time.Since(start).Milliseconds())
		t.operationDuration.Record(ctx, duration,
			metric.WithAttributes(
				attribute.String("operation", "create_tagihan"),
				attribute.String("service", "tagihan"),
				attribute.String("status", "error"),
			),
		)

		return nil, err
	}

	t.tagihansCreated.Add(ctx, 1)
	t.dokumenStored.Add(ctx, int64(len(req.Dokumen)))

	duration := float64(time.Since(start).Milliseconds())
	t.operationDuration.Record(ctx, duration,
		metric.WithAttributes(
			attribute.String("operation", "create_tagihan"),
			attribute.String("service", "tagihan"),
			attribute.String("status", "success"),
		),
	)

	t.log.Info("Tagihan created",
		zap.Uint64("tagihan_id", tagihan.ID),
		zap.Uint64("kreditor_id", tagihan.KreditorID),
		zap.Int("dokumen_count", len(req.Dokumen)),
		zap.String("trace_id", span.SpanContext().TraceID().String()),
	)

	span.SetStatus(codes.Ok, "Tagihan created")

	return nil, nil
}

// validateTagihan accumulates every field failure so the form can mark all
// offending inputs in one round trip.
func validateTagihan(req dto.TagihanRequest) []domain.ValidationError {
	var validationErrors []domain.ValidationError

	required := []struct {
		field string
		value string
	}{
		{"kreditorId", req.KreditorID},
		{"pertanggal", req.Pertanggal},
		{"hutangPokok", req.HutangPokok},
		{"denda", req.Denda},
		{"bunga", req.Bunga},
		{"sifatTagihanId", req.SifatTagihanID},
		{"jumlahTagihan", req.JumlahTagihan},
		{"mulaiTertunggak", req.MulaiTertunggak},
		{"jumlahHari", req.JumlahHari},
	}
	for _, r := range required {
		if r.value == "" {
			validationErrors = append(validationErrors, domain.ValidationError{
				Field:   r.field,
				Message: "required",
			})
		}
	}

	if len(req.Dokumen) == 0 {
		validationErrors = append(validationErrors, domain.ValidationError{
			Field:   "dokumen",
			Message: "required",
		})
	}

	for i, d := range req.Dokumen {
		field := fmt.Sprintf("dokumen.%d", i)

		if d.File == nil {
			validationErrors = append(validationErrors, domain.ValidationError{
				Field:   field,
				Message: "required",
			})
			continue
		}
		if d.File.Size > maxDokumenSize {
			validationErrors = append(validationErrors, domain.ValidationError{
				Field:   field,
				Message: "File terlalu besar",
			})
		}
		if d.File.Header.Get("Content-Type") != "application/pdf" {
			validationErrors = append(validationErrors, domain.ValidationError{
				Field:   field,
				Message: "File harus berformat PDF",
			})
		}
	}

	return validationErrors
}

func NewTagihanService(
	db *gorm.DB,
	store docstore.Store,
	meter metric.Meter,
	tracer trace.Tracer,
	log *zap.Logger,
) service.TagihanServices {
	operationDuration, _ := meter.Float64Histogram(
		"tagihan.operation.duration",
		metric.WithDescription("Duration of tagihan service operations"),
		metric.WithUnit("ms"),
	)
	operationCount, _ := meter.Int64Counter(
		"tagihan.operation.count",
		metric.WithDescription("Total number of tagihan service operations"),
	)
	errorCount, _ := meter.Int64Counter(
		"tagihan.error.count",
		metric.WithDescription("Total number of tagihan service errors"),
	)
	tagihansCreated, _ := meter.Int64Counter(
		"tagihan.created.count",
		metric.WithDescription("Claims created"),
	)
	dokumenStored, _ := meter.Int64Counter(
		"tagihan.dokumen.stored",
		metric.WithDescription("Claim documents written to the document store"),
	)

	return &tagihanService{
		db:                db,
		store:             store,
		meter:             meter,
		tracer:            tracer,
		log:               log,
		operationDuration: operationDuration,
		operationCount:    operationCount,
		errorCount:        errorCount,
		tagihansCreated:   tagihansCreated,
		dokumenStored:     dokumenStored,
	}
}
