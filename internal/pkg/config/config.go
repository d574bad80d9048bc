package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Admin   AdminConfig
	Booking BookingConfig
	Notify  NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// AdminConfig drives the single-operator admin surface. The password is
// stored as a bcrypt hash; tokens are short-lived HS256 JWTs.
type AdminConfig struct {
	PasswordHash  string        `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
	JWTSecret     string        `envconfig:"ADMIN_JWT_SECRET" required:"true"`
	TokenDuration time.Duration `envconfig:"ADMIN_TOKEN_DURATION" default:"24h"`
}

type BookingConfig struct {
	ReferencePrefix string `envconfig:"BOOKING_REF_PREFIX" default:"FLT"`
	ReminderDays    int    `envconfig:"REMINDER_DAYS" default:"3"`
}

type NotifyConfig struct {
	SMTPHost       string        `envconfig:"SMTP_HOST" default:""`
	SMTPPort       string        `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser       string        `envconfig:"SMTP_USER" default:""`
	SMTPPassword   string        `envconfig:"SMTP_PASSWORD" default:""`
	EmailFrom      string        `envconfig:"EMAIL_FROM" default:"noreply@fleetbook.local"`
	AdminEmails    []string      `envconfig:"ADMIN_EMAILS" default:""`
	InternalEmails []string      `envconfig:"INTERNAL_EMAILS" default:""`
	WebhookURL     string        `envconfig:"AUTOMATION_WEBHOOK_URL" default:""`
	WebhookTimeout time.Duration `envconfig:"AUTOMATION_WEBHOOK_TIMEOUT" default:"10s"`
	BaseURL        string        `envconfig:"BASE_URL" default:"http://localhost:3000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Booking: BookingConfig{
			ReferencePrefix: "FLT",
			ReminderDays:    3,
		},
	}
}
