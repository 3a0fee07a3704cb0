package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"

	UploadLocal = "local"
	UploadMinio = "minio"
)

type Config struct {
	Port        string `env:"PORT,         default=5000"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	JWTSecret   string `env:"JWT_SECRET,   required"`
	BcryptCost  int    `env:"BCRYPT_COST,  default=10"`
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3000"`
	DBDriver    string `env:"DB_DRIVER,    default=postgres"`

	Postgres  PostgresConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Upload    UploadConfig
	Minio     MinioConfig
}

type PostgresConfig struct {
	Host            string        `env:"DB_HOST,              default=localhost"`
	Port            int           `env:"DB_PORT,              default=5432"`
	Name            string        `env:"DB_NAME,              default=esports_cms"`
	User            string        `env:"DB_USER,              default=postgres"`
	Password        string        `env:"DB_PASSWORD"`
	SSLMode         string        `env:"DB_SSLMODE,           default=disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,    default=20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,    default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`
}

// URL renders the connection string used by both pgx and golang-migrate.
func (c PostgresConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=esports_cms"`
}

type RedisConfig struct {
	// Addr may be empty, in which case rate limiting falls back to an
	// in-process limiter.
	Addr     string `env:"REDIS_ADDR"`
	DB       int    `env:"REDIS_DB,   default=0"`
	Password string `env:"REDIS_PASSWORD"`
}

type RateLimitConfig struct {
	AuthPerMinute int `env:"RATE_LIMIT_AUTH_PER_MINUTE, default=10"`
}

type UploadConfig struct {
	Backend  string `env:"UPLOAD_BACKEND,   default=local"`
	Dir      string `env:"UPLOAD_DIR,       default=uploads"`
	MaxBytes int64  `env:"UPLOAD_MAX_BYTES, default=5242880"`
}

type MinioConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT,   default=localhost:9000"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET,     default=cms-uploads"`
	UseSSL    bool   `env:"MINIO_USE_SSL,    default=false"`
}

// IsProduction reports whether ENV is set to production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads a .env file when present and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom processes configuration from an arbitrary lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET must not be blank")
	}
	switch c.DBDriver {
	case DriverPostgres, DriverMongo:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMongo, c.DBDriver)
	}
	switch c.Upload.Backend {
	case UploadLocal, UploadMinio:
	default:
		return fmt.Errorf("UPLOAD_BACKEND must be %q or %q, got %q", UploadLocal, UploadMinio, c.Upload.Backend)
	}
	if c.Upload.MaxBytes <= 0 {
		return errors.New("UPLOAD_MAX_BYTES must be positive")
	}
	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_AUTH_PER_MINUTE must be positive, got %d", c.RateLimit.AuthPerMinute)
	}
	return nil
}
