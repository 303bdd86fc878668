package router

import (
	"errors"
	"time"

	"github.com/pkpu-id/tagihan/config"
	mysqldb "github.com/pkpu-id/tagihan/infra/mysql"
	"github.com/pkpu-id/tagihan/middleware"
	ratelimiter "github.com/pkpu-id/tagihan/pkg/rate-limiter"
	"github.com/pkpu-id/tagihan/pkg/telemetry"
	"github.com/pkpu-id/tagihan/presenter"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewRouter(
	presenter presenter.Presenter,
	db *gorm.DB,
	tel *telemetry.OpenTelemetry,
	cfg *config.Config,
	limiter *ratelimiter.RateLimiter,
) *fiber.App {

	bearerRequired := middleware.BearerRequired()

	app := fiber.New(fiber.Config{
		BodyLimit:    10 * 1024 * 1024,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: ErrorCustomHandler(tel.Log),
	})

	// 1. Recovery dari panic
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	// 2. Security Headers
	app.Use(helmet.New())
	// 3. CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.SITE_URL,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${ip} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(otelfiber.Middleware(
		otelfiber.WithTracerProvider(tel.TracerProvider),
		otelfiber.WithPropagators(otel.GetTextMapPropagator()),
	))

	if cfg.REQUESTS_METRIC {
		zap.L().Info("Enabling HTTP request metrics middleware")
		otelMiddleware := middleware.NewOtelMiddleware()
		app.Use(otelMiddleware.Handle())
	} else {
		zap.L().Info("HTTP request metrics middleware is disabled")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := mysqldb.Ping(db, c.Context()); err != nil {
			zap.L().Error("Health check failed: database ping error", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  "database connection failed",
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":      "healthy",
			"service":     cfg.SERVICE_NAME,
			"version":     cfg.SERVICE_VERSION,
			"environment": cfg.ENVIRONMENT,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")

	api.Use(limiter.RateLimitMiddleware())

	{
		api.Get("/sifattagihan", bearerRequired, presenter.APIPresenter.ListSifatTagihan)
		api.Get("/user", bearerRequired, presenter.APIPresenter.ListUsers)
		api.Post("/user", presenter.APIPresenter.RequestVerification)
	}

	// Form intake, gated by the emailed unique code. The :id segment is the
	// debtor case identifier; only :uniquecode is checked.
	formAPI := app.Group("/:id/:uniquecode")
	{
		formAPI.Get("/tagihan", presenter.FormPresenter.LoadForm)
		formAPI.Post("/tagihan", presenter.FormPresenter.AddTagihan)
		formAPI.Post("/kreditor", presenter.FormPresenter.AddKreditor)
	}

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "Resource not found",
			"path":    c.Path(),
		})
	})

	return app
}

func ErrorCustomHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		}

		log.Error("Request error occured",
			zap.Error(err),
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.Int("status_code", code),
		)

		return c.Status(code).JSON(fiber.Map{
			"error":   true,
			"message": message,
			"code":    code,
		})
	}
}
