package presenter

import (
	apihandler "github.com/pkpu-id/tagihan/internal/handler/api"
	formhandler "github.com/pkpu-id/tagihan/internal/handler/form"
	"github.com/pkpu-id/tagihan/internal/repository"
	directorysrv "github.com/pkpu-id/tagihan/internal/service/directory"
	formsrv "github.com/pkpu-id/tagihan/internal/service/form"
	kreditorsrv "github.com/pkpu-id/tagihan/internal/service/kreditor"
	tagihansrv "github.com/pkpu-id/tagihan/internal/service/tagihan"
	verificationsrv "github.com/pkpu-id/tagihan/internal/service/verification"

	"github.com/pkpu-id/tagihan/config"
	"github.com/pkpu-id/tagihan/pkg/docstore"
	"github.com/pkpu-id/tagihan/pkg/mailer"
	"github.com/pkpu-id/tagihan/pkg/telemetry"

	"gorm.io/gorm"
)

type Presenter struct {
	APIPresenter  *apihandler.APIHandler
	FormPresenter *formhandler.FormHandler
}

func NewPresenter(
	db *gorm.DB,
	mail mailer.Mailer,
	cfg *config.Config,
	tel *telemetry.OpenTelemetry,
) Presenter {
	// Repository. The tagihan repository is not built here: the tagihan
	// service binds one to each transaction it opens.
	kreditorRepository := repository.NewKreditorRepository(db, tel.Log)
	sifatTagihanRepository := repository.NewSifatTagihanRepository(db)
	tipeDokumenRepository := repository.NewTipeDokumenRepository(db)
	userRepository := repository.NewUserRepository(db)
	userVerifyRepository := repository.NewUserVerifyRepository(db)

	// Service
	store := docstore.NewDisk(cfg.UPLOAD_DIR)

	verificationServiceMeter := tel.MeterProvider.Meter("verification-service-meter")
	verificationServiceTracer := tel.TracerProvider.Tracer("verification-service-trace")
	verificationService := verificationsrv.NewVerificationService(
		userVerifyRepository,
		mail,
		cfg.SITE_URL,
		cfg.MAIL_FROM,
		cfg.MAIL_BCC,
		verificationServiceMeter,
		verificationServiceTracer,
		tel.Log,
	)

	tagihanServiceMeter := tel.MeterProvider.Meter("tagihan-service-meter")
	tagihanServiceTracer := tel.TracerProvider.Tracer("tagihan-service-trace")
	tagihanService := tagihansrv.NewTagihanService(
		db,
		store,
		tagihanServiceMeter,
		tagihanServiceTracer,
		tel.Log,
	)

	kreditorService := kreditorsrv.NewKreditorService(kreditorRepository, tel.Log)
	formService := formsrv.NewFormService(
		userRepository,
		kreditorRepository,
		sifatTagihanRepository,
		tipeDokumenRepository,
		tel.Log,
	)
	directoryService := directorysrv.NewDirectoryService(sifatTagihanRepository, userRepository)

	// Handler
	apiHandlerMeter := tel.MeterProvider.Meter("api-handler-meter")
	apiHandlerTracer := tel.TracerProvider.Tracer("api-handler-trace")
	apiHandler := apihandler.NewAPIHandler(
		directoryService,
		verificationService,
		apiHandlerMeter,
		apiHandlerTracer,
		tel.Log,
	)

	formHandler := formhandler.NewFormHandler(
		formService,
		tagihanService,
		kreditorService,
		tel.Log,
	)

	return Presenter{
		APIPresenter:  apiHandler,
		FormPresenter: formHandler,
	}
}
