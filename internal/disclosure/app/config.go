package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/aussiebroadwan/disclosure/pkg/httpx"
)

type Config struct {
	Env       string `env:"ENV"        envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	HTTPAddr        string        `env:"HTTP_ADDR"        envDefault:":8080"`
	AppOrigin       string        `env:"APP_ORIGIN"       envDefault:"http://localhost:8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DatabaseDSN string `env:"DB_DSN" envDefault:"file:disclosure.db?_pragma=journal_mode(WAL)"`

	// One of JWKSFile or JWKSURL is required. A file wins when both are set.
	JWTIssuer   string   `env:"JWT_ISSUER"`
	JWTAudience []string `env:"JWT_AUDIENCE" envSeparator:","`
	JWKSFile    string   `env:"JWKS_FILE"`
	JWKSURL     string   `env:"JWKS_URL"`

	// The in-memory object store is used when S3Endpoint is empty. It does
	// not survive a restart and is meant for local development only.
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET"     envDefault:"disclosure"`
	S3Region    string `env:"S3_REGION"`
	S3UseSSL    bool   `env:"S3_USE_SSL"    envDefault:"true"`

	RendererURL   string        `env:"RENDERER_URL"`
	RenderTimeout time.Duration `env:"RENDER_TIMEOUT" envDefault:"30s"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT"     envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"     envDefault:"disclosures@localhost"`

	InviteTTL          time.Duration `env:"INVITE_TTL"           envDefault:"168h"`
	UploadMaxBytes     int64         `env:"UPLOAD_MAX_BYTES"     envDefault:"10485760"`
	DeleteBatchSize    int           `env:"DELETE_BATCH_SIZE"    envDefault:"1000"`
	ChecklistRulesFile string        `env:"CHECKLIST_RULES_FILE"`

	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"10m"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	RateLimits httpx.RateLimits `envPrefix:"RATELIMIT_"`
}

// LoadConfig reads the environment on top of the built-in defaults.
func LoadConfig() (Config, error) {
	cfg := Config{RateLimits: httpx.DefaultRateLimits()}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.JWKSFile == "" && c.JWKSURL == "" {
		errs = append(errs, errors.New("one of JWKS_FILE or JWKS_URL is required"))
	}
	if c.AppOrigin == "" {
		errs = append(errs, errors.New("APP_ORIGIN is required"))
	}
	if c.RenderTimeout <= 0 {
		errs = append(errs, errors.New("RENDER_TIMEOUT must be positive"))
	}
	if c.UploadMaxBytes <= 0 {
		errs = append(errs, errors.New("UPLOAD_MAX_BYTES must be positive"))
	}
	if c.DeleteBatchSize <= 0 || c.DeleteBatchSize > 1000 {
		errs = append(errs, errors.New("DELETE_BATCH_SIZE must be between 1 and 1000"))
	}
	return errors.Join(errs...)
}
