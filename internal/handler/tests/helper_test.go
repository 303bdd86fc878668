package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	apihandler "github.com/pkpu-id/tagihan/internal/handler/api"
	formhandler "github.com/pkpu-id/tagihan/internal/handler/form"
	"github.com/pkpu-id/tagihan/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	noop_metric "go.opentelemetry.io/otel/metric/noop"
	noop_trace "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

func newAPIHandler(directory *mockDirectoryService, verification *mockVerificationService) *apihandler.APIHandler {
	meter := noop_metric.NewMeterProvider().Meter("test-api-handler-meter")
	tracer := noop_trace.NewTracerProvider().Tracer("test-api-handler-tracer")

	return apihandler.NewAPIHandler(directory, verification, meter, tracer, zap.NewNop())
}

func setupAPIApp(handler *apihandler.APIHandler) *fiber.App {
	app := fiber.New()

	bearerRequired := middleware.BearerRequired()

	api := app.Group("/api")
	api.Get("/sifattagihan", bearerRequired, handler.ListSifatTagihan)
	api.Get("/user", bearerRequired, handler.ListUsers)
	api.Post("/user", handler.RequestVerification)

	return app
}

func setupFormApp(handler *formhandler.FormHandler) *fiber.App {
	app := fiber.New()

	formGroup := app.Group("/:id/:uniquecode")
	formGroup.Get("/tagihan", handler.LoadForm)
	formGroup.Post("/tagihan", handler.AddTagihan)
	formGroup.Post("/kreditor", handler.AddKreditor)

	return app
}

// createTagihanRequest builds a multipart addTagihan submission with parallel
// tipeDokumenId and dokumen parts.
func createTagihanRequest(t *testing.T, path string, fields map[string]string, dokumen []struct {
	TipeDokumenID string
	Filename      string
}) *http.Request {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for key, val := range fields {
		assert.NoError(t, writer.WriteField(key, val))
	}

	for _, d := range dokumen {
		assert.NoError(t, writer.WriteField("tipeDokumenId", d.TipeDokumenID))

		part, err := writer.CreateFormFile("dokumen", d.Filename)
		assert.NoError(t, err)
		_, err = io.WriteString(part, "%PDF-1.4 dummy")
		assert.NoError(t, err)
	}

	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	defer resp.Body.Close()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
