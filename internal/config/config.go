package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	IsTestMode     bool     `env:"TEST_MODE" envDefault:"false"`
	Port           uint     `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	PostgresqlURL                 string `env:"POSTGRESQL_URL,required"`
	RedisURL                      string `env:"REDIS_URL,required"`
	RabbitmqURL                   string `env:"RABBITMQ_URL"`
	RabbitmqNotificationsExchange string `env:"RABBITMQ_NOTIFICATIONS_EXCHANGE" envDefault:"notifications"`

	ServiceKey string `env:"SERVICE_KEY,required"`
	JwtSecret  string `env:"JWT_SECRET,required"`

	EmailProvider       string        `env:"EMAIL_PROVIDER" envDefault:"resend"`
	ResendAPIKey        string        `env:"RESEND_API_KEY"`
	SendGridAPIKey      string        `env:"SENDGRID_API_KEY"`
	AwsRegion           string        `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey        string        `env:"AWS_ACCESS_KEY"`
	AwsSecretKey        string        `env:"AWS_SECRET_KEY"`
	SenderEmail         string        `env:"SENDER_EMAIL" envDefault:"noreply@volunteercal.app"`
	SenderName          string        `env:"SENDER_NAME" envDefault:"VolunteerCal"`
	EmailRequestTimeout time.Duration `env:"EMAIL_REQUEST_TIMEOUT" envDefault:"10s"`

	RemindersSchedulingPeriod time.Duration `env:"REMINDERS_SCHEDULING_PERIOD" envDefault:"1m"`
	RemindersBatchSize        uint          `env:"REMINDERS_BATCH_SIZE" envDefault:"100"`
	RemindersWorkers          int           `env:"REMINDERS_WORKERS" envDefault:"4"`
	RemindersPassTimeout      time.Duration `env:"REMINDERS_PASS_TIMEOUT" envDefault:"50s"`
	ReminderClaimTTL          time.Duration `env:"REMINDER_CLAIM_TTL" envDefault:"5m"`
	DefaultReminderOffset     time.Duration `env:"DEFAULT_REMINDER_OFFSET" envDefault:"24h"`

	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
}

// Load reads an optional .env file and then parses the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read .env file: %w", err)
	}
	return parse(env.Options{})
}

func parse(options env.Options) (*Config, error) {
	config := &Config{}
	if err := env.Parse(config, options); err != nil {
		return nil, err
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.RemindersSchedulingPeriod <= 0 {
		return fmt.Errorf("REMINDERS_SCHEDULING_PERIOD must be positive")
	}
	if c.RemindersBatchSize == 0 {
		return fmt.Errorf("REMINDERS_BATCH_SIZE must be positive")
	}
	if c.RemindersWorkers <= 0 {
		return fmt.Errorf("REMINDERS_WORKERS must be positive")
	}
	if c.ReminderClaimTTL <= 0 {
		return fmt.Errorf("REMINDER_CLAIM_TTL must be positive")
	}
	if c.DefaultReminderOffset < 0 {
		return fmt.Errorf("DEFAULT_REMINDER_OFFSET must not be negative")
	}
	return nil
}

func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}
