package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config is read from the process environment. cmd/api loads a local .env first.
type Config struct {
	Port   int    `env:"PORT" envDefault:"8080"`
	AppEnv string `env:"APP_ENV" envDefault:"dev"`

	AWSRegion        string `env:"AWS_REGION" envDefault:"eu-central-1"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
	OnboardingsTable string `env:"ONBOARDINGS_TABLE" envDefault:"onboardings"`
	PaymentsTable    string `env:"PAYMENTS_TABLE" envDefault:"deposit_payments"`

	DatabaseURL string `env:"DATABASE_URL"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	DraftTTL      time.Duration `env:"DRAFT_TTL" envDefault:"72h"`

	ObjectStore     string `env:"OBJECT_STORE" envDefault:"local"`
	LocalStoreDir   string `env:"LOCAL_STORE_DIR" envDefault:"./data"`
	PublicBaseURL   string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	S3Bucket        string `env:"S3_BUCKET"`
	S3Prefix        string `env:"S3_PREFIX"`
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`

	ContentFile string `env:"CONTENT_FILE"`

	ResendAPIKey string `env:"RESEND_API_KEY"`
	MailFrom     string `env:"MAIL_FROM" envDefault:"Studio <kontakt@example.com>"`
	MailNotifyTo string `env:"MAIL_NOTIFY_TO"`

	WebhookSecret   string `env:"WEBHOOK_SECRET"`
	TurnstileSecret string `env:"TURNSTILE_SECRET"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	ContactRateLimit  int           `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
	ContactRateWindow time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"10m"`
	UploadRateLimit   int           `env:"UPLOAD_RATE_LIMIT" envDefault:"10"`
	UploadRateWindow  time.Duration `env:"UPLOAD_RATE_WINDOW" envDefault:"1h"`
	MaxUploadBytes    int64         `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`

	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.AppEnv = normalizeEnv(cfg.AppEnv)
	cfg.ObjectStore = strings.ToLower(strings.TrimSpace(cfg.ObjectStore))

	if cfg.ObjectStore == "s3" && cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required when OBJECT_STORE=s3")
	}
	if cfg.ContactRateLimit <= 0 || cfg.UploadRateLimit <= 0 {
		return nil, fmt.Errorf("rate limits must be positive")
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}
