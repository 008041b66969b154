package config

import (
	"github.com/caarlos0/env/v9"
	"github.com/friendsofgo/errors"

	"autoexport-srv/pkg/session"
)

// Config holds all service configuration, parsed from environment variables.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"production"`

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Postgres   PostgresConfig
	MinIO      MinIOConfig
	Session    SessionConfig
	SMTP       SMTPConfig
	Discord    DiscordConfig
	Upload     UploadConfig
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"GIN_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level    string `env:"LOG_LEVEL" envDefault:"info"`
	Mode     string `env:"LOG_MODE" envDefault:"production"`
	Encoding string `env:"LOG_ENCODING" envDefault:"json"`
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"autoexport"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
}

// MinIOConfig is the configuration for the MinIO object storage.
type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"autoexport-media"`
}

// SessionConfig is the configuration for admin authentication. Each role
// password is optional; an unset password disables that role's login.
type SessionConfig struct {
	AdminPassword  string `env:"ADMIN_PASSWORD"`
	EditorPassword string `env:"EDITOR_PASSWORD"`
	ViewerPassword string `env:"VIEWER_PASSWORD"`

	// SecretKey signs session tokens. When unset the secret falls back
	// to a role password, which is rejected at startup unless
	// AllowDerivedSecret is set.
	SecretKey          string `env:"SESSION_SECRET"`
	Codec              string `env:"SESSION_CODEC" envDefault:"legacy"`
	AllowDerivedSecret bool   `env:"SESSION_ALLOW_DERIVED_SECRET" envDefault:"false"`
}

// SMTPConfig is the configuration for outbound email.
type SMTPConfig struct {
	Host      string `env:"SMTP_HOST"`
	Port      int    `env:"SMTP_PORT" envDefault:"587"`
	Username  string `env:"SMTP_USERNAME"`
	Password  string `env:"SMTP_PASSWORD"`
	From      string `env:"SMTP_FROM" envDefault:"noreply@autoexport.example"`
	SalesAddr string `env:"SALES_EMAIL"`
}

// DiscordConfig is the configuration for Discord webhook notifications.
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// UploadConfig is the configuration for presigned media uploads.
type UploadConfig struct {
	MaxFileSizeMB  int `env:"UPLOAD_MAX_FILE_SIZE_MB" envDefault:"25"`
	PresignTTLMins int `env:"UPLOAD_PRESIGN_TTL_MINUTES" envDefault:"15"`
}

// Load parses configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Credentials builds the role password set from the session configuration.
func (c *Config) Credentials() session.Credentials {
	return session.Credentials{
		Admin:  c.Session.AdminPassword,
		Editor: c.Session.EditorPassword,
		Viewer: c.Session.ViewerPassword,
	}
}

func validate(cfg *Config) error {
	if cfg.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Postgres.User == "" {
		return errors.New("POSTGRES_USER is required")
	}

	switch cfg.Session.Codec {
	case session.CodecLegacy, session.CodecHMAC:
	default:
		return errors.Errorf("unknown SESSION_CODEC %q", cfg.Session.Codec)
	}

	// Signing tokens with a role password leaks that password into the
	// token format, so a derived secret requires an explicit opt in.
	if cfg.Session.SecretKey == "" && !cfg.Session.AllowDerivedSecret {
		return errors.New("SESSION_SECRET is required; set SESSION_ALLOW_DERIVED_SECRET=true to fall back to a role password")
	}

	if cfg.Upload.MaxFileSizeMB <= 0 {
		return errors.New("UPLOAD_MAX_FILE_SIZE_MB must be positive")
	}
	if cfg.Upload.PresignTTLMins <= 0 {
		return errors.New("UPLOAD_PRESIGN_TTL_MINUTES must be positive")
	}

	return nil
}
