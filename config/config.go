// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rrinconline/sticker-lab-backend/logger"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Mail transports.
const (
	MailProviderSES      = "ses"
	MailProviderResend   = "resend"
	MailProviderPostmark = "postmark"
	MailProviderLog      = "log"
)

// Storage backends.
const (
	StorageBackendDynamoDB = "dynamodb"
	StorageBackendPostgres = "postgres"
	StorageBackendRedis    = "redis"
	StorageBackendKafka    = "kafka"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
}

// MailConfig holds the sender identity, the staff distribution list and the
// credentials of whichever transport is selected.
type MailConfig struct {
	Provider             string `mapstructure:"PROVIDER" yaml:"provider"`
	FromAddress          string `mapstructure:"FROM_ADDRESS" yaml:"from_address"`
	FromName             string `mapstructure:"FROM_NAME" yaml:"from_name"`
	StaffEmails          string `mapstructure:"STAFF_EMAILS" yaml:"staff_emails"`
	ResendAPIKey         string `mapstructure:"RESEND_API_KEY" yaml:"resend_api_key"`
	PostmarkServerToken  string `mapstructure:"POSTMARK_SERVER_TOKEN" yaml:"postmark_server_token"`
	PostmarkAccountToken string `mapstructure:"POSTMARK_ACCOUNT_TOKEN" yaml:"postmark_account_token"`
	TimeoutSeconds       int    `mapstructure:"TIMEOUT_SECONDS" yaml:"timeout_seconds"`
}

// Sender returns the From header value.
func (c MailConfig) Sender() string {
	if c.FromName == "" {
		return c.FromAddress
	}
	return fmt.Sprintf("%s <%s>", c.FromName, c.FromAddress)
}

// StaffRecipients splits the comma separated staff list, dropping blanks.
func (c MailConfig) StaffRecipients() []string {
	var recipients []string
	for _, addr := range strings.Split(c.StaffEmails, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return recipients
}

// StorageConfig controls whether and where submission records are persisted.
type StorageConfig struct {
	Enabled        bool   `mapstructure:"ENABLED" yaml:"enabled"`
	Backend        string `mapstructure:"BACKEND" yaml:"backend"`
	ContactsTable  string `mapstructure:"CONTACTS_TABLE" yaml:"contacts_table"`
	OrdersTable    string `mapstructure:"ORDERS_TABLE" yaml:"orders_table"`
	TimeoutSeconds int    `mapstructure:"TIMEOUT_SECONDS" yaml:"timeout_seconds"`
	RunMigrations  bool   `mapstructure:"RUN_MIGRATIONS" yaml:"run_migrations"`
}

// DatabaseConfig holds PostgreSQL database connection details.
type DatabaseConfig struct {
	Host           string `mapstructure:"HOST" yaml:"host"`
	Port           int    `mapstructure:"PORT" yaml:"port"`
	User           string `mapstructure:"USER" yaml:"user"`
	Password       string `mapstructure:"PASSWORD" yaml:"password"`
	Name           string `mapstructure:"NAME" yaml:"name"`
	SSLMode        string `mapstructure:"SSL_MODE" yaml:"ssl_mode"`
	MaxConnections int    `mapstructure:"MAX_CONNECTIONS" yaml:"max_connections"`
}

// URL returns a postgres:// connection URL suitable for pgxpool and golang-migrate.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// RedisConfig holds Redis connection details.
type RedisConfig struct {
	Address  string `mapstructure:"ADDRESS" yaml:"address"`
	Password string `mapstructure:"PASSWORD" yaml:"password"`
	DB       int    `mapstructure:"DB" yaml:"db"`
	UseTLS   bool   `mapstructure:"USE_TLS" yaml:"use_tls"`
}

// KafkaConfig holds broker addresses for the Kafka record sink.
type KafkaConfig struct {
	Brokers     []string `mapstructure:"BROKERS" yaml:"brokers"`
	TopicPrefix string   `mapstructure:"TOPIC_PREFIX" yaml:"topic_prefix"`
}

// AWSConfig overrides the default AWS SDK resolution. Endpoint is only set
// for local emulators.
type AWSConfig struct {
	Region          string `mapstructure:"REGION" yaml:"region"`
	Endpoint        string `mapstructure:"ENDPOINT" yaml:"endpoint"`
	AccessKeyID     string `mapstructure:"ACCESS_KEY_ID" yaml:"access_key_id"`
	SecretAccessKey string `mapstructure:"SECRET_ACCESS_KEY" yaml:"secret_access_key"`
}

// ArtworkConfig configures presigned download links for order artwork.
type ArtworkConfig struct {
	Bucket       string `mapstructure:"BUCKET" yaml:"bucket"`
	LinkTTLHours int    `mapstructure:"LINK_TTL_HOURS" yaml:"link_ttl_hours"`
}

// Config aggregates all application configuration sections. It is read once at
// startup and treated as immutable afterwards.
type Config struct {
	Server   ServerConfig   `mapstructure:"SERVER" yaml:"server"`
	Mail     MailConfig     `mapstructure:"MAIL" yaml:"mail"`
	Storage  StorageConfig  `mapstructure:"STORAGE" yaml:"storage"`
	Database DatabaseConfig `mapstructure:"DATABASE" yaml:"database"`
	Redis    RedisConfig    `mapstructure:"REDIS" yaml:"redis"`
	Kafka    KafkaConfig    `mapstructure:"KAFKA" yaml:"kafka"`
	AWS      AWSConfig      `mapstructure:"AWS" yaml:"aws"`
	Artwork  ArtworkConfig  `mapstructure:"ARTWORK" yaml:"artwork"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("MAIL.PROVIDER", MailProviderSES)
	v.SetDefault("MAIL.FROM_ADDRESS", "orders@rrinconline.com")
	v.SetDefault("MAIL.FROM_NAME", "")
	v.SetDefault("MAIL.STAFF_EMAILS", "")
	v.SetDefault("MAIL.TIMEOUT_SECONDS", 10)
	v.SetDefault("STORAGE.ENABLED", "true")
	v.SetDefault("STORAGE.BACKEND", StorageBackendDynamoDB)
	v.SetDefault("STORAGE.CONTACTS_TABLE", "sticker_magnet_lab_contacts")
	v.SetDefault("STORAGE.ORDERS_TABLE", "sticker_magnet_lab_orders")
	v.SetDefault("STORAGE.TIMEOUT_SECONDS", 5)
	v.SetDefault("STORAGE.RUN_MIGRATIONS", false)
	v.SetDefault("DATABASE.HOST", "localhost")
	v.SetDefault("DATABASE.PORT", 5432)
	v.SetDefault("DATABASE.USER", "postgres")
	v.SetDefault("DATABASE.PASSWORD", "")
	v.SetDefault("DATABASE.NAME", "sticker_lab")
	v.SetDefault("DATABASE.SSL_MODE", "disable")
	v.SetDefault("DATABASE.MAX_CONNECTIONS", 5)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.USE_TLS", false)
	v.SetDefault("KAFKA.BROKERS", []string{"localhost:9092"})
	v.SetDefault("KAFKA.TOPIC_PREFIX", "")
	v.SetDefault("AWS.REGION", "us-east-1")
	v.SetDefault("AWS.ENDPOINT", "")
	v.SetDefault("AWS.ACCESS_KEY_ID", "")
	v.SetDefault("AWS.SECRET_ACCESS_KEY", "")
	v.SetDefault("ARTWORK.BUCKET", "")
	v.SetDefault("ARTWORK.LINK_TTL_HOURS", 168)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		// Mail config
		{"MAIL.PROVIDER", "MAIL_PROVIDER"},
		{"MAIL.FROM_ADDRESS", "FROM_EMAIL"},
		{"MAIL.FROM_NAME", "FROM_NAME"},
		{"MAIL.STAFF_EMAILS", "STAFF_EMAILS"},
		{"MAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		{"MAIL.POSTMARK_SERVER_TOKEN", "POSTMARK_SERVER_TOKEN"},
		{"MAIL.POSTMARK_ACCOUNT_TOKEN", "POSTMARK_ACCOUNT_TOKEN"},
		{"MAIL.TIMEOUT_SECONDS", "MAIL_TIMEOUT_SECONDS"},
		// Storage config
		{"STORAGE.ENABLED", "STORE_CONTACTS"},
		{"STORAGE.BACKEND", "STORAGE_BACKEND"},
		{"STORAGE.CONTACTS_TABLE", "CONTACTS_TABLE"},
		{"STORAGE.ORDERS_TABLE", "ORDERS_TABLE"},
		{"STORAGE.TIMEOUT_SECONDS", "STORAGE_TIMEOUT_SECONDS"},
		{"STORAGE.RUN_MIGRATIONS", "RUN_MIGRATIONS"},
		// Database config
		{"DATABASE.HOST", "DB_HOST"},
		{"DATABASE.PORT", "DB_PORT"},
		{"DATABASE.USER", "DB_USER"},
		{"DATABASE.PASSWORD", "DB_PASSWORD"},
		{"DATABASE.NAME", "DB_NAME"},
		{"DATABASE.SSL_MODE", "DB_SSL_MODE"},
		// Redis config
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.USE_TLS", "REDIS_USE_TLS"},
		// Kafka config
		{"KAFKA.BROKERS", "KAFKA_BROKERS"},
		{"KAFKA.TOPIC_PREFIX", "KAFKA_TOPIC_PREFIX"},
		// AWS config
		{"AWS.REGION", "AWS_REGION"},
		{"AWS.ENDPOINT", "AWS_ENDPOINT_URL"},
		{"AWS.ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID"},
		{"AWS.SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY"},
		// Artwork config
		{"ARTWORK.BUCKET", "ARTWORK_BUCKET"},
		{"ARTWORK.LINK_TTL_HOURS", "ARTWORK_LINK_TTL_HOURS"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	// Only the literal "true" (any case) enables storage; "1" or "yes" do not.
	v.Set("STORAGE.ENABLED", strings.EqualFold(strings.TrimSpace(v.GetString("STORAGE.ENABLED")), "true"))

	log.Infow("Configuration loaded",
		"environment", v.GetString("SERVER.ENVIRONMENT"),
		"server_port", v.GetString("SERVER.PORT"),
		"mail_provider", v.GetString("MAIL.PROVIDER"),
		"from_address", v.GetString("MAIL.FROM_ADDRESS"),
		"storage_enabled", v.GetBool("STORAGE.ENABLED"),
		"storage_backend", v.GetString("STORAGE.BACKEND"),
		"contacts_table", v.GetString("STORAGE.CONTACTS_TABLE"),
		"orders_table", v.GetString("STORAGE.ORDERS_TABLE"),
	)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	cfg.Kafka.Brokers = splitList(cfg.Kafka.Brokers)
	cfg.Server.AllowedOrigins = splitList(cfg.Server.AllowedOrigins)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("Configuration validated successfully")
	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if err := validateMailConfig(&cfg.Mail, log); err != nil {
		return err
	}

	if err := validateStorageConfig(cfg); err != nil {
		return err
	}

	if cfg.Artwork.LinkTTLHours <= 0 || cfg.Artwork.LinkTTLHours > 168 {
		return fmt.Errorf("artwork link TTL must be between 1 and 168 hours")
	}

	return nil
}

func validateMailConfig(mail *MailConfig, log *zap.SugaredLogger) error {
	if mail.FromAddress == "" {
		return fmt.Errorf("sender address (FROM_EMAIL) is required")
	}
	if len(mail.StaffRecipients()) == 0 {
		return fmt.Errorf("at least one staff recipient (STAFF_EMAILS) is required")
	}
	if mail.TimeoutSeconds <= 0 {
		return fmt.Errorf("mail timeout must be positive")
	}

	switch mail.Provider {
	case MailProviderSES:
	case MailProviderResend:
		if mail.ResendAPIKey == "" {
			return fmt.Errorf("resend API key is required when MAIL_PROVIDER=resend")
		}
	case MailProviderPostmark:
		if mail.PostmarkServerToken == "" || mail.PostmarkAccountToken == "" {
			return fmt.Errorf("postmark server and account tokens are required when MAIL_PROVIDER=postmark")
		}
	case MailProviderLog:
		log.Warn("Mail provider is 'log'; notifications will be logged, not delivered")
	default:
		return fmt.Errorf("unknown mail provider %q", mail.Provider)
	}
	return nil
}

func validateStorageConfig(cfg *Config) error {
	storage := cfg.Storage
	if !storage.Enabled {
		return nil
	}
	if storage.ContactsTable == "" || storage.OrdersTable == "" {
		return fmt.Errorf("contacts and orders table names are required when storage is enabled")
	}
	if storage.TimeoutSeconds <= 0 {
		return fmt.Errorf("storage timeout must be positive")
	}

	switch storage.Backend {
	case StorageBackendDynamoDB:
	case StorageBackendPostgres:
		if cfg.Database.Host == "" || cfg.Database.Name == "" {
			return fmt.Errorf("database host and name are required for the postgres backend")
		}
	case StorageBackendRedis:
		if cfg.Redis.Address == "" {
			return fmt.Errorf("redis address is required for the redis backend")
		}
	case StorageBackendKafka:
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("at least one kafka broker is required for the kafka backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", storage.Backend)
	}
	return nil
}

// splitList normalises list values that may arrive as a single comma
// separated environment string.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
