package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestListSifatTagihanRequiresBearer(t *testing.T) {
	app := setupAPIApp(newAPIHandler(&mockDirectoryService{}, &mockVerificationService{}))

	req := httptest.NewRequest(http.MethodGet, "/api/sifattagihan", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestListSifatTagihan(t *testing.T) {
	directory := &mockDirectoryService{
		MockSifatTagihanData: []domain.SifatTagihan{
			{ID: 1, Nama: "Tagihan Preferen"},
			{ID: 2, Nama: "Tagihan Konkuren"},
		},
	}
	app := setupAPIApp(newAPIHandler(directory, &mockVerificationService{}))

	req := httptest.NewRequest(http.MethodGet, "/api/sifattagihan", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer anything")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []domain.SifatTagihan
	decodeJSON(t, resp, &body)
	assert.Len(t, body, 2)
	assert.Equal(t, "Tagihan Preferen", body[0].Nama)
}

func TestListSifatTagihanStorageError(t *testing.T) {
	directory := &mockDirectoryService{MockError: errors.New("connection reset")}
	app := setupAPIApp(newAPIHandler(directory, &mockVerificationService{}))

	req := httptest.NewRequest(http.MethodGet, "/api/sifattagihan", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer anything")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Error Unexpected", body["error"])
}

func TestListUsersRequiresBearer(t *testing.T) {
	app := setupAPIApp(newAPIHandler(&mockDirectoryService{}, &mockVerificationService{}))

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestListUsers(t *testing.T) {
	directory := &mockDirectoryService{
		MockUserData: []domain.User{
			{ID: 1, Email: "kreditor@example.com", UniqueCode: strings.Repeat("a", 25)},
		},
	}
	app := setupAPIApp(newAPIHandler(directory, &mockVerificationService{}))

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer anything")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []domain.User
	decodeJSON(t, resp, &body)
	assert.Len(t, body, 1)
	assert.Equal(t, "kreditor@example.com", body[0].Email)
}

// A storage failure on the user listing answers 401, not 500.
func TestListUsersStorageError(t *testing.T) {
	directory := &mockDirectoryService{MockError: errors.New("connection reset")}
	app := setupAPIApp(newAPIHandler(directory, &mockVerificationService{}))

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer anything")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Error Unexpected", body["error"])
}

func TestRequestVerification(t *testing.T) {
	verification := &mockVerificationService{
		MockResult: &domain.VerificationResult{
			Email: "kreditor@example.com",
			Code:  strings.Repeat("a", 25),
			IsNew: true,
		},
	}
	app := setupAPIApp(newAPIHandler(&mockDirectoryService{}, verification))

	// The body is a bare JSON string.
	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader(`"kreditor@example.com"`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ActionResult
	decodeJSON(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Email berhasil terkirim!", body.Message)
	assert.Equal(t, "kreditor@example.com", verification.CalledWithEmail)
}

func TestRequestVerificationValidationErrors(t *testing.T) {
	verification := &mockVerificationService{
		MockValidationErrors: []domain.ValidationError{
			{Field: "email", Message: "Email tidak boleh kosong!"},
		},
	}
	app := setupAPIApp(newAPIHandler(&mockDirectoryService{}, verification))

	// A malformed body falls through to validation with an empty email.
	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader(`{not json`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ValidationResult
	decodeJSON(t, resp, &body)
	assert.False(t, body.Success)
	assert.Len(t, body.Errors, 1)
	assert.Equal(t, "Email tidak boleh kosong!", body.Errors[0].Message)
	assert.Empty(t, verification.CalledWithEmail)
}

func TestRequestVerificationDeliveryFailure(t *testing.T) {
	verification := &mockVerificationService{MockError: errors.New("smtp connection refused")}
	app := setupAPIApp(newAPIHandler(&mockDirectoryService{}, verification))

	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader(`"kreditor@example.com"`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ActionResult
	decodeJSON(t, resp, &body)
	assert.False(t, body.Success)
	assert.Equal(t, "Email gagal dikirim", body.Message)
}
