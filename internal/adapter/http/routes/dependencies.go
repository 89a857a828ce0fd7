package routes

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"studio_api/internal/adapter/content"
	"studio_api/internal/adapter/http/handlers"
	"studio_api/internal/adapter/persistence/repository"
	"studio_api/internal/adapter/persistence/session"
	"studio_api/internal/config"
	"studio_api/internal/infrastructure/cache"
	"studio_api/internal/infrastructure/captcha"
	"studio_api/internal/infrastructure/database"
	"studio_api/internal/infrastructure/mail"
	"studio_api/internal/infrastructure/payments"
	"studio_api/internal/infrastructure/pdf"
	"studio_api/internal/infrastructure/ratelimit"
	"studio_api/internal/infrastructure/storage"
	"studio_api/internal/usecase"
	"studio_api/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisConnectWait = 30 * time.Second

// Dependencies holds the handlers and shared infrastructure of one server.
type Dependencies struct {
	Configurator *handlers.ConfiguratorHandler
	Contact      *handlers.ContactHandler
	Upload       *handlers.UploadHandler
	Onboarding   *handlers.OnboardingHandler
	Regeneration *handlers.ContractRegenerationHandler
	Payment      *handlers.DepositPaymentHandler
	Content      *handlers.ContentHandler

	Limiter ratelimit.Limiter

	// set when objects are kept on local disk
	LocalFilesRoute string
	LocalFilesDir   string

	closers []func() error
}

func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i]()
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{}

	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	ddb := database.ConnectDynamoDB(awsCfg, cfg.DynamoDBEndpoint, log)
	onboardingRepo := repository.NewOnboardingDynamoRepository(ddb, cfg.OnboardingsTable)
	paymentRepo := repository.NewDepositPaymentDynamoRepository(ddb, cfg.PaymentsTable)

	var inquiryRepo interfaces.IInquiryRepository
	if cfg.DatabaseURL != "" {
		db, err := database.ConnectPostgres(ctx, cfg.DatabaseURL, database.DefaultPostgresOptions(), log)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, db.Close)
		if err := runMigrations(ctx, db, log); err != nil {
			deps.Close()
			return nil, err
		}
		inquiryRepo = repository.NewInquiryPGRepository(db)
	} else {
		log.Warn("DATABASE_URL not set, inquiries are only mailed")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, redisConnectWait, log)
		if err != nil {
			// drafts and rate limits fall back to process memory
			log.Error("redis unavailable, using in-process stores", zap.Error(err))
			rdb = nil
		} else {
			deps.closers = append(deps.closers, rdb.Close)
		}
	}

	var drafts interfaces.IDraftStore
	memoryLimiter := ratelimit.NewMemoryWindow(nil)
	if rdb != nil {
		drafts = session.NewRedisStore(rdb, cfg.DraftTTL)
		deps.Limiter = ratelimit.NewFallback(ratelimit.NewRedisWindow(rdb), memoryLimiter, log)
	} else {
		drafts = session.NewMemoryStore(cfg.DraftTTL)
		deps.Limiter = memoryLimiter
	}

	objects, err := newObjectStorage(ctx, cfg, deps, log)
	if err != nil {
		deps.Close()
		return nil, err
	}

	contentRepo, err := content.NewYAMLRepository(cfg.ContentFile)
	if err != nil {
		deps.Close()
		return nil, err
	}
	company, err := contentRepo.Company(ctx)
	if err != nil {
		deps.Close()
		return nil, err
	}

	var mailer mail.Mailer
	if cfg.ResendAPIKey != "" {
		mailer = mail.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom, log)
	} else {
		log.Warn("RESEND_API_KEY not set, mails are only logged")
		mailer = mail.NewLogMailer(log)
	}
	notifier := mail.NewNotifier(mailer, cfg.MailNotifyTo, company.Name, log)
	renderer := pdf.NewContractRenderer(log)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	configuratorUseCase := usecase.NewConfiguratorUseCase(inquiryRepo, notifier, log)
	contactUseCase := usecase.NewContactUseCase(inquiryRepo, notifier, captcha.NewTurnstileVerifier(cfg.TurnstileSecret, log), log)
	uploadUseCase := usecase.NewUploadUseCase(objects, cfg.MaxUploadBytes, log)
	onboardingUseCase := usecase.NewOnboardingUseCase(drafts, onboardingRepo, contentRepo, renderer, objects, notifier, log)
	regenerationUseCase := usecase.NewContractRegenerationUseCase(onboardingRepo, contentRepo, renderer, objects, notifier, log)
	paymentUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, onboardingRepo, gateway, cfg.PaymentGatewayMock, log)

	deps.Configurator = handlers.NewConfiguratorHandler(configuratorUseCase, log)
	deps.Contact = handlers.NewContactHandler(contactUseCase, log)
	deps.Upload = handlers.NewUploadHandler(uploadUseCase, cfg.MaxUploadBytes, log)
	deps.Onboarding = handlers.NewOnboardingHandler(onboardingUseCase, log)
	deps.Regeneration = handlers.NewContractRegenerationHandler(regenerationUseCase, log)
	deps.Payment = handlers.NewDepositPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock, log)
	deps.Content = handlers.NewContentHandler(usecase.NewContentUseCase(contentRepo))
	return deps, nil
}

func runMigrations(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	if err := database.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Info("postgres migrations applied")
	return nil
}

func newObjectStorage(ctx context.Context, cfg *config.Config, deps *Dependencies, log *zap.Logger) (interfaces.IObjectStorage, error) {
	switch cfg.ObjectStore {
	case "s3":
		awsCfg, err := database.NewAWSConfig(ctx, cfg.AWSRegion, "")
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return storage.NewS3Store(awsCfg, cfg.S3Bucket, cfg.S3Prefix, cfg.S3PublicBaseURL, log)
	case "local", "":
		store := storage.NewLocalStore(cfg.LocalStoreDir, cfg.PublicBaseURL)
		deps.LocalFilesRoute = storage.LocalRoute
		deps.LocalFilesDir = store.BaseDir()
		log.Info("objects stored on local disk", zap.String("dir", store.BaseDir()))
		return store, nil
	default:
		return nil, fmt.Errorf("unknown OBJECT_STORE %q", cfg.ObjectStore)
	}
}
