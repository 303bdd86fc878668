package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/internal/model"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type tagihanRepository struct {
	db            *gorm.DB
	meter         metric.Meter
	tracer        trace.Tracer
	log           *zap.Logger
	queryDuration metric.Float64Histogram
	queryCount    metric.Int64Counter
	errorCount    metric.Int64Counter
	rowsInserted  metric.Int64Counter
}

// CreateTagihan implements TagihanRepository.
func (t *tagihanRepository) CreateTagihan(ctx context.Context, tagihan *domain.Tagihan) error {
	ctx, span := t.tracer.Start(ctx, "repository.CreateTagihan")
	defer span.End()

	start := time.Now()

	t.queryCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", "insert"),
			attribute.String("table", "tagihans"),
		),
	)

	span.SetAttributes(
		attribute.String("db.operation", "insert"),
		attribute.String("db.table", "tagihans"),
		attribute.String("tagihan.kreditor_id", fmt.Sprintf("%d", tagihan.KreditorID)),
		attribute.String("trace_id", span.SpanContext().TraceID().String()),
	)

	record := model.TagihanFromEntity(tagihan)

	if err := t.db.WithContext(ctx).Create(&record).Error; err != nil {
		span.SetStatus(codes.Error, "Error creating tagihan")
		span.RecordError(err)

		t.log.Error("Error creating tagihan",
			zap.Uint64("kreditor_id", tagihan.KreditorID),
			zap.String("trace_id", span.SpanContext().TraceID().String()),
			zap.Error(err),
		)

		t.errorCount.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("operation", "insert"),
				attribute.String("table", "tagihans"),
			),
		)

		duration := float64(time.Since(start).Milliseconds())
		t.queryDuration.Record(ctx, duration,
			metric.WithAttributes(
				attribute.String("operation", "insert"),
				attribute.String("table", "tagihans"),
				attribute.String("status", "error"),
			),
		)

		return err
	}

	// Propagate the generated primary key so dokumen rows can reference it.
	tagihan.ID = record.ID
	tagihan.CreatedAt = record.CreatedAt

	t.rowsInserted.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("table", "tagihans"),
		),
	)

	duration := float64(time.Since(start).Milliseconds())
	t.queryDuration.Record(ctx, duration,
		metric.WithAttributes(
			attribute.String("operation", "insert"),
			attribute.String("table", "tagihans"),
			attribute.String("status", "success"),
		),
	)

	t.log.Info("Tagihan created",
		zap.Uint64("tagihan_id", tagihan.ID),
		zap.Uint64("kreditor_id", tagihan.KreditorID),
		zap.String("trace_id", span.SpanContext().TraceID().String()),
		zap.String("span_id", span.SpanContext().SpanID().String()),
	)

	span.SetStatus(codes.Ok, "Tagihan created")
	span.SetAttributes(
		attribute.String("tagihan.id", fmt.Sprintf("%d", tagihan.ID)),
	)

	return nil
}

// CreateDokumenTagihans implements TagihanRepository.
func (t *tagihanRepository) CreateDokumenTagihans(ctx context.Context, dokumen []domain.DokumenTagihan) error {
	ctx, span := t.tracer.Start(ctx, "repository.CreateDokumenTagihans")
	defer span.End()

	if len(dokumen) == 0 {
		span.SetStatus(codes.Ok, "No dokumen rows to create")
		return nil
	}

	start := time.Now()

	t.queryCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", "insert"),
			attribute.String("table", "dokumen_tagihans"),
		),
	)

	span.SetAttributes(
		attribute.String("db.operation", "insert"),
		attribute.String("db.table", "dokumen_tagihans"),
		attribute.Int("dokumen.count", len(dokumen)),
	)

	records := make([]model.DokumenTagihan, len(dokumen))
	for i, d := range dokumen {
		records[i] = model.DokumenTagihanFromEntity(d)
	}

	if err := t.db.WithContext(ctx).Create(&records).Error; err != nil {
		span.SetStatus(codes.Error, "Error creating dokumen rows")
		span.RecordError(err)

		t.log.Error("Error creating dokumen rows",
			zap.Int("count", len(dokumen)),
			zap.String("trace_id", span.SpanContext().TraceID().String()),
			zap.Error(err),
		)

		t.errorCount.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("operation", "insert"),
				attribute.String("table", "dokumen_tagihans"),
			),
		)

		return err
	}

	t.rowsInserted.Add(ctx, int64(len(dokumen)),
		metric.WithAttributes(
			attribute.String("table", "dokumen_tagihans"),
		),
	)

	duration := float64(time.Since(start).Milliseconds())
	t.queryDuration.Record(ctx, duration,
		metric.WithAttributes(
			attribute.String("operation", "insert"),
			attribute.String("table", "dokumen_tagihans"),
			attribute.String("status", "success"),
		),
	)

	span.SetStatus(codes.Ok, "Dokumen rows created")

	return nil
}

func NewTagihanRepository(
	db *gorm.DB,
	meter metric.Meter,
	tracer trace.Tracer,
	log *zap.Logger,
) TagihanRepository {
	queryDuration, _ := meter.Float64Histogram(
		"db.tagihan.query.duration",
		metric.WithDescription("Duration of tagihan queries"),
		metric.WithUnit("ms"),
	)
	queryCount, _ := meter.Int64Counter(
		"db.tagihan.query.count",
		metric.WithDescription("Total number of tagihan queries"),
	)
	errorCount, _ := meter.Int64Counter(
		"db.tagihan.error.count",
		metric.WithDescription("Total number of tagihan query errors"),
	)
	rowsInserted, _ := meter.Int64Counter(
		"db.tagihan.rows.inserted",
		metric.WithDescription("Rows inserted into tagihan tables"),
	)

	return &tagihanRepository{
		db:            db,
		meter:         meter,
		tracer:        tracer,
		log:           log,
		queryDuration: queryDuration,
		queryCount:    queryCount,
		errorCount:    errorCount,
		rowsInserted:  rowsInserted,
	}
}
