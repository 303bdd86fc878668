package verificationsrv

import (
	"context"
	"fmt"
	"time"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/internal/repository"
	"github.com/pkpu-id/tagihan/internal/service"
	"github.com/pkpu-id/tagihan/pkg/common"
	"github.com/pkpu-id/tagihan/pkg/mailer"
	"github.com/pkpu-id/tagihan/pkg/uniquecode"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	codeLength   = 25
	codeLifetime = 24 * time.Hour

	mailSubject = "Link to access Form Tagihan"
	mailText    = "INI BODY"
)

type verificationService struct {
	verifyRepository repository.UserVerifyRepository
	mail             mailer.Mailer
	siteURL          string
	mailFrom         string
	mailBcc          string

	validate    *validator.Validate
	tracer      trace.Tracer
	log         *zap.Logger
	codesIssued metric.Int64Counter
	codesReused metric.Int64Counter
	mailFailed  metric.Int64Counter
}

// RequestVerification issues or re-sends the access code for an email address.
// A fresh code is created for a new address, an expired record gets its code
// rotated with a new 24 hour window, and an unexpired record keeps its code
// untouched. The access link is mailed on every call, including the reuse
// path, so a kreditor who lost the mail can simply ask again.
func (v *verificationService) RequestVerification(ctx context.Context, email string) (*domain.VerificationResult, []domain.ValidationError, error) {
	ctx, span := v.tracer.Start(ctx, "service.RequestVerification")
	defer span.End()

	if email == "" {
		return nil, []domain.ValidationError{
			{Field: "email", Message: "Email tidak boleh kosong!"},
		}, nil
	}
	if err := v.validate.Var(email, "email"); err != nil {
		return nil, []domain.ValidationError{
			{Field: "email", Message: "Format email tidak valid!"},
		}, nil
	}

	span.SetAttributes(attribute.String("verification.email", email))

	verify, err := v.verifyRepository.FindByEmail(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, "Failed to look up verification record")
		span.RecordError(err)

		v.log.Error("Failed to look up verification record",
			zap.String("email", email),
			zap.Error(err),
		)

		return nil, nil, err
	}

	now := time.Now()
	result := &domain.VerificationResult{Email: email}

	switch {
	case verify == nil:
		code, err := v.generateCode(ctx)
		if err != nil {
			span.RecordError(err)
			return nil, nil, err
		}

		record := &domain.UserVerify{
			Email:          email,
			UniqueCode:     code,
			ExpirationDate: now.Add(codeLifetime),
		}
		if err := v.verifyRepository.Create(ctx, record); err != nil {
			span.SetStatus(codes.Error, "Failed to create verification record")
			span.RecordError(err)

			v.log.Error("Failed to create verification record",
				zap.String("email", email),
				zap.Error(err),
			)

			return nil, nil, err
		}

		result.Code = code
		result.IsNew = true
		v.codesIssued.Add(ctx, 1)

	case verify.ExpirationDate.Before(now):
		code, err := v.generateCode(ctx)
		if err != nil {
			span.RecordError(err)
			return nil, nil, err
		}

		if err := v.verifyRepository.UpdateCode(ctx, email, code, now.Add(codeLifetime)); err != nil {
			span.SetStatus(codes.Error, "Failed to rotate expired code")
			span.RecordError(err)

			v.log.Error("Failed to rotate expired code",
				zap.String("email", email),
				zap.Error(err),
			)

			return nil, nil, err
		}

		result.Code = code
		result.IsNew = true
		v.codesIssued.Add(ctx, 1)

	default:
		result.Code = verify.UniqueCode
		v.codesReused.Add(ctx, 1)
	}

	if err := v.sendAccessLink(result); err != nil {
		span.SetStatus(codes.Error, "Failed to send access link")
		span.RecordError(err)

		v.log.Error("Failed to send access link",
			zap.String("email", email),
			zap.Error(err),
		)

		v.mailFailed.Add(ctx, 1)

		// The verification record stays: the same code will be re-sent on
		// the next attempt instead of being rotated away.
		return nil, nil, fmt.Errorf("%w: %v", common.ErrMailDelivery, err)
	}

	v.log.Info("Access link sent",
		zap.String("email", email),
		zap.Bool("new_code", result.IsNew),
		zap.String("trace_id", span.SpanContext().TraceID().String()),
	)

	span.SetStatus(codes.Ok, "Access link sent")

	return result, nil, nil
}

func (v *verificationService) generateCode(ctx context.Context) (string, error) {
	return uniquecode.Generate(codeLength, func(code string) (bool, error) {
		return v.verifyRepository.ExistsByCode(ctx, code)
	})
}

func (v *verificationService) sendAccessLink(result *domain.VerificationResult) error {
	link := fmt.Sprintf("%s/verify/%s", v.siteURL, result.Code)

	return v.mail.Send(mailer.Message{
		From:    v.mailFrom,
		To:      result.Email,
		Bcc:     v.mailBcc,
		Subject: mailSubject,
		Text:    mailText,
		HTML:    fmt.Sprintf(`<h2>Hi!</h2><p>Click the following link to access the form: <a href="%s">%s</a></p>`, link, link),
	})
}

func NewVerificationService(
	verifyRepository repository.UserVerifyRepository,
	mail mailer.Mailer,
	siteURL string,
	mailFrom string,
	mailBcc string,
	meter metric.Meter,
	tracer trace.Tracer,
	log *zap.Logger,
) service.VerificationServices {
	codesIssued, _ := meter.Int64Counter(
		"verification.codes.issued",
		metric.WithDescription("Access codes created or rotated"),
	)
	codesReused, _ := meter.Int64Counter(
		"verification.codes.reused",
		metric.WithDescription("Access links re-sent with an unexpired code"),
	)
	mailFailed, _ := meter.Int64Counter(
		"verification.mail.failed",
		metric.WithDescription("Access link deliveries that failed"),
	)

	return &verificationService{
		verifyRepository: verifyRepository,
		mail:             mail,
		siteURL:          siteURL,
		mailFrom:         mailFrom,
		mailBcc:          mailBcc,
		validate:         validator.New(),
		tracer:           tracer,
		log:              log,
		codesIssued:      codesIssued,
		codesReused:      codesReused,
		mailFailed:       mailFailed,
	}
}
