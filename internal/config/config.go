// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	AdminEmail  string // seeds the first admin account when the users table is empty
	Server      ServerConfig
	Database    DatabaseConfig
	Session     SessionConfig
	Acronis     PlatformConfig
	Parasut     ParasutConfig
	Redis       RedisConfig
	Email       EmailConfig
	Storage     StorageConfig
	I18n        I18nConfig
	Portal      PortalConfig
}

type PortalConfig struct {
	BaseURL string
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type SessionConfig struct {
	SecretKey     string
	LifetimeHours int // fixed session lifetime
	RenewHours    int // sliding renewal window before expiry
	LoginTokenTTL int // magic link validity in minutes
}

// PlatformConfig holds credentials for the cloud tenant-management API.
type PlatformConfig struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      int // per-request timeout in seconds
	InfoCacheTTL int // composite tenant-info cache TTL in seconds
}

type ParasutConfig struct {
	BaseURL      string
	TokenURL     string
	CompanyID    string
	ClientID     string
	ClientSecret string
	Timeout      int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type EmailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

type StorageConfig struct {
	UploadDir       string
	AWSRegion       string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		AdminEmail:  getEnv("ADMIN_EMAIL", ""),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "dealer_panel"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		Session: SessionConfig{
			SecretKey:     getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
			LifetimeHours: getEnvAsInt("SESSION_LIFETIME_HOURS", 720), // 30 days
			RenewHours:    getEnvAsInt("SESSION_RENEW_HOURS", 24),
			LoginTokenTTL: getEnvAsInt("LOGIN_TOKEN_TTL_MINUTES", 15),
		},
		Acronis: PlatformConfig{
			BaseURL:      getEnv("ACRONIS_BASE_URL", "https://eu-cloud.acronis.com/api/2"),
			TokenURL:     getEnv("ACRONIS_TOKEN_URL", "https://eu-cloud.acronis.com/api/2/idp/token"),
			ClientID:     getEnv("ACRONIS_CLIENT_ID", ""),
			ClientSecret: getEnv("ACRONIS_CLIENT_SECRET", ""),
			Timeout:      getEnvAsInt("ACRONIS_TIMEOUT", 15),
			InfoCacheTTL: getEnvAsInt("ACRONIS_INFO_CACHE_TTL", 300),
		},
		Parasut: ParasutConfig{
			BaseURL:      getEnv("PARASUT_BASE_URL", "https://api.parasut.com/v4"),
			TokenURL:     getEnv("PARASUT_TOKEN_URL", "https://api.parasut.com/oauth/token"),
			CompanyID:    getEnv("PARASUT_COMPANY_ID", ""),
			ClientID:     getEnv("PARASUT_CLIENT_ID", ""),
			ClientSecret: getEnv("PARASUT_CLIENT_SECRET", ""),
			Timeout:      getEnvAsInt("PARASUT_TIMEOUT", 15),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Email: EmailConfig{
			SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:     getEnv("SMTP_PORT", "587"),
			SMTPUsername: getEnv("SMTP_USERNAME", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			FromEmail:    getEnv("FROM_EMAIL", "noreply@dealerpanel.com"),
			FromName:     getEnv("FROM_NAME", "Dealer Panel"),
		},
		Storage: StorageConfig{
			UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
			AWSRegion:       getEnv("AWS_REGION", "eu-central-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "dealer-panel-documents"),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
		Portal: PortalConfig{
			BaseURL: getEnv("PORTAL_BASE_URL", "http://localhost:3000"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Session.SecretKey == "your-secret-key-change-in-production" && c.Environment == "production" {
		return fmt.Errorf("session secret key must be changed in production")
	}

	if c.Database.Password == "" && c.Environment == "production" {
		return fmt.Errorf("database password is required in production")
	}

	if c.Environment == "production" && (c.Acronis.ClientID == "" || c.Acronis.ClientSecret == "") {
		return fmt.Errorf("acronis API credentials are required in production")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
