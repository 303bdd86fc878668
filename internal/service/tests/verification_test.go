package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/internal/service"
	verificationsrv "github.com/pkpu-id/tagihan/internal/service/verification"
	"github.com/pkpu-id/tagihan/pkg/common"

	"github.com/stretchr/testify/assert"
	noop_metric "go.opentelemetry.io/otel/metric/noop"
	noop_trace "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func newVerificationService(repo *mockUserVerifyRepository, mail *mockMailer) (context.Context, service.VerificationServices) {
	meter := noop_metric.NewMeterProvider().Meter("test-verification-meter")
	tracer := noop_trace.NewTracerProvider().Tracer("test-verification-tracer")

	return context.Background(), verificationsrv.NewVerificationService(
		repo,
		mail,
		"http://localhost:5000",
		`"pkpu.co.id" <noreply@pkpu.co.id>`,
		"arsip@pkpu.co.id",
		meter,
		tracer,
		zap.NewNop(),
	)
}

func TestRequestVerificationEmptyEmail(t *testing.T) {
	repo := &mockUserVerifyRepository{}
	mail := &mockMailer{}
	ctx, svc := newVerificationService(repo, mail)

	result, validationErrors, err := svc.RequestVerification(ctx, "")

	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, []domain.ValidationError{
		{Field: "email", Message: "Email tidak boleh kosong!"},
	}, validationErrors)
	assert.Empty(t, repo.FindByEmailCalledWith)
	assert.Empty(t, mail.SentMessages)
}

func TestRequestVerificationInvalidEmail(t *testing.T) {
	repo := &mockUserVerifyRepository{}
	mail := &mockMailer{}
	ctx, svc := newVerificationService(repo, mail)

	result, validationErrors, err := svc.RequestVerification(ctx, "not-an-email")

	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, []domain.ValidationError{
		{Field: "email", Message: "Format email tidak valid!"},
	}, validationErrors)
	assert.Empty(t, mail.SentMessages)
}

func TestRequestVerificationNewEmail(t *testing.T) {
	repo := &mockUserVerifyRepository{}
	mail := &mockMailer{}
	ctx, svc := newVerificationService(repo, mail)

	before := time.Now()
	result, validationErrors, err := svc.RequestVerification(ctx, "kreditor@example.com")

	assert.NoError(t, err)
	assert.Empty(t, validationErrors)
	assert.NotNil(t, result)
	assert.True(t, result.IsNew)
	assert.Len(t, result.Code, 25)
	for _, r := range result.Code {
		assert.Contains(t, codeAlphabet, string(r))
	}

	// A record with a 24 hour window was stored.
	assert.NotNil(t, repo.CreateCalledWith)
	assert.Equal(t, "kreditor@example.com", repo.CreateCalledWith.Email)
	assert.Equal(t, result.Code, repo.CreateCalledWith.UniqueCode)
	assert.WithinDuration(t, before.Add(24*time.Hour), repo.CreateCalledWith.ExpirationDate, time.Minute)

	// The access link was mailed.
	assert.Len(t, mail.SentMessages, 1)
	msg := mail.SentMessages[0]
	assert.Equal(t, "kreditor@example.com", msg.To)
	assert.Equal(t, "Link to access Form Tagihan", msg.Subject)
	assert.Equal(t, "INI BODY", msg.Text)
	assert.Contains(t, msg.HTML, "http://localhost:5000/verify/"+result.Code)
	assert.Equal(t, `"pkpu.co.id" <noreply@pkpu.co.id>`, msg.From)
	assert.Equal(t, "arsip@pkpu.co.id", msg.Bcc)
}

func TestRequestVerificationReusesUnexpiredCode(t *testing.T) {
	existing := &domain.UserVerify{
		ID:             7,
		Email:          "kreditor@example.com",
		UniqueCode:     strings.Repeat("a", 25),
		ExpirationDate: time.Now().Add(12 * time.Hour),
	}
	repo := &mockUserVerifyRepository{MockFindByEmailData: existing}
	mail := &mockMailer{}
	ctx, svc := newVerificationService(repo, mail)

	result, validationErrors, err := svc.RequestVerification(ctx, "kreditor@example.com")

	assert.NoError(t, err)
	assert.Empty(t, validationErrors)
	assert.False(t, result.IsNew)
	assert.Equal(t, existing.UniqueCode, result.Code)

	// No new code was written, but the link went out again.
	assert.Nil(t, repo.CreateCalledWith)
	assert.Empty(t, repo.UpdateCalledEmail)
	assert.Len(t, mail.SentMessages, 1)
	assert.Contains(t, mail.SentMessages[0].HTML, existing.UniqueCode)
}

func TestRequestVerificationRotatesExpiredCode(t *testing.T) {
	existing := &domain.UserVerify{
		ID:             7,
		Email:          "kreditor@example.com",
		UniqueCode:     strings.Repeat("a", 25),
		ExpirationDate: time.Now().Add(-time.Hour),
	}
	repo := &mockUserVerifyRepository{MockFindByEmailData: existing}
	mail := &mockMailer{}
	ctx, svc := newVerificationService(repo, mail)

	before := time.Now()
	result, validationErrors, err := svc.RequestVerification(ctx, "kreditor@example.com")

	assert.NoError(t, err)
	assert.Empty(t, validationErrors)
	assert.True(t, result.IsNew)
	assert.Len(t, result.Code, 25)
	assert.NotEqual(t, existing.UniqueCode, result.Code)

	assert.Equal(t, "kreditor@example.com", repo.UpdateCalledEmail)
	assert.Equal(t, result.Code, repo.UpdateCalledCode)
	assert.WithinDuration(t, before.Add(24*time.Hour), repo.UpdateCalledExpiry, time.Minute)
	assert.Nil(t, repo.CreateCalledWith)
	assert.Len(t, mail.SentMessages, 1)
}

func TestRequestVerificationMailFailureKeepsRecord(t *testing.T) {
	repo := &mockUserVerifyRepository{}
	mail := &mockMailer{MockError: errors.New("smtp connection refused")}
	ctx, svc := newVerificationService(repo, mail)

	result, validationErrors, err := svc.RequestVerification(ctx, "kreditor@example.com")

	assert.Nil(t, result)
	assert.Empty(t, validationErrors)
	assert.ErrorIs(t, err, common.ErrMailDelivery)

	// The record was created before delivery failed and stays in place.
	assert.NotNil(t, repo.CreateCalledWith)
}

func TestRequestVerificationStorageError(t *testing.T) {
	repo := &mockUserVerifyRepository{MockError: errors.New("connection reset")}
	mail := &mockMailer{}
	ctx, svc := newVerificationService(repo, mail)

	result, validationErrors, err := svc.RequestVerification(ctx, "kreditor@example.com")

	assert.Nil(t, result)
	assert.Empty(t, validationErrors)
	assert.Error(t, err)
	assert.Empty(t, mail.SentMessages)
}
