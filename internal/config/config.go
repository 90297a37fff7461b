package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	POS       POSConfig
	Printer   PrinterConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours time.Duration
}

// POSConfig carries store-level settings printed on receipts and used
// when seeding the default cashier.
type POSConfig struct {
	StoreName      string
	StoreNameAr    string
	StoreAddress   string
	StorePhone     string
	Currency       string
	DefaultCashier string
	DefaultPIN     string
}

type PrinterConfig struct {
	Enabled bool
	Host    string
	Port    string
	Width   int
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Missing .env is fine, environment variables still apply
	_ = viper.ReadInConfig()

	// Set defaults
	viper.SetDefault("APP_NAME", "pos-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "alnubras")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kuwait")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 12)
	viper.SetDefault("STORE_NAME", "Al Nubras Tailoring & Textiles")
	viper.SetDefault("STORE_NAME_AR", "النبراس للخياطة والأقمشة")
	viper.SetDefault("STORE_ADDRESS", "Kuwait City")
	viper.SetDefault("STORE_PHONE", "")
	viper.SetDefault("CURRENCY", "KWD")
	viper.SetDefault("DEFAULT_CASHIER_CODE", "1001")
	viper.SetDefault("DEFAULT_CASHIER_PIN", "")
	viper.SetDefault("PRINTER_ENABLED", false)
	viper.SetDefault("PRINTER_HOST", "")
	viper.SetDefault("PRINTER_PORT", "9100")
	viper.SetDefault("PRINTER_WIDTH", 42)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		POS: POSConfig{
			StoreName:      viper.GetString("STORE_NAME"),
			StoreNameAr:    viper.GetString("STORE_NAME_AR"),
			StoreAddress:   viper.GetString("STORE_ADDRESS"),
			StorePhone:     viper.GetString("STORE_PHONE"),
			Currency:       viper.GetString("CURRENCY"),
			DefaultCashier: viper.GetString("DEFAULT_CASHIER_CODE"),
			DefaultPIN:     viper.GetString("DEFAULT_CASHIER_PIN"),
		},
		Printer: PrinterConfig{
			Enabled: viper.GetBool("PRINTER_ENABLED"),
			Host:    viper.GetString("PRINTER_HOST"),
			Port:    viper.GetString("PRINTER_PORT"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
