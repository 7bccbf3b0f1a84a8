package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	OTP      OTPConfig      `mapstructure:"otp"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Sweep    SweepConfig    `mapstructure:"sweep"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// LedgerConfig tunes settlement and withdrawal behaviour.
type LedgerConfig struct {
	MinWithdrawal string        `mapstructure:"min_withdrawal"`
	MaxTxAttempts int           `mapstructure:"max_tx_attempts"`
	RetryBackoff  time.Duration `mapstructure:"retry_backoff"`
	AutoMarkPaid  bool          `mapstructure:"auto_mark_paid"`
}

// MinWithdrawalAmount parses MinWithdrawal. Load has already validated it.
func (l LedgerConfig) MinWithdrawalAmount() decimal.Decimal {
	d, err := decimal.NewFromString(l.MinWithdrawal)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// OTPConfig covers manual-approval codes and vendor withdrawal codes.
type OTPConfig struct {
	Store              string        `mapstructure:"store"` // memory, redis
	TTL                time.Duration `mapstructure:"ttl"`
	MaxRequestsPerHour int           `mapstructure:"max_requests_per_hour"`
	RequestWindow      time.Duration `mapstructure:"request_window"`
	MaxAttempts        int           `mapstructure:"max_attempts"`
	Lockout            time.Duration `mapstructure:"lockout"`
	WithdrawalCodeTTL  time.Duration `mapstructure:"withdrawal_code_ttl"`
}

type CacheConfig struct {
	VendorTTL time.Duration `mapstructure:"vendor_ttl"`
	StatsTTL  time.Duration `mapstructure:"stats_ttl"`
}

type SweepConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// NotifyConfig points at the delivery service that renders email and WhatsApp.
// An empty endpoint keeps notifications in the log only.
type NotifyConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Secret   string        `mapstructure:"secret"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// CheckoutConfig holds the shared secret the checkout uses to sign callbacks.
type CheckoutConfig struct {
	Secret   string        `mapstructure:"secret"`
	MaxDrift time.Duration `mapstructure:"max_drift"`
	NonceTTL time.Duration `mapstructure:"nonce_ttl"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MPL_ (MarketPlace Ledger).
// Nested keys use underscore: MPL_DATABASE_HOST, MPL_OTP_STORE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "marketplace")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "marketplace-ledger")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("ledger.min_withdrawal", "1.00")
	v.SetDefault("ledger.max_tx_attempts", 3)
	v.SetDefault("ledger.retry_backoff", "50ms")
	v.SetDefault("ledger.auto_mark_paid", true)
	v.SetDefault("otp.store", "memory")
	v.SetDefault("otp.ttl", "60s")
	v.SetDefault("otp.max_requests_per_hour", 3)
	v.SetDefault("otp.request_window", "1h")
	v.SetDefault("otp.max_attempts", 5)
	v.SetDefault("otp.lockout", "15m")
	v.SetDefault("otp.withdrawal_code_ttl", "10m")
	v.SetDefault("cache.vendor_ttl", "5m")
	v.SetDefault("cache.stats_ttl", "2m")
	v.SetDefault("sweep.interval", "1m")
	v.SetDefault("notify.endpoint", "")
	v.SetDefault("notify.secret", "")
	v.SetDefault("notify.timeout", "10s")
	v.SetDefault("checkout.secret", "")
	v.SetDefault("checkout.max_drift", "60s")
	v.SetDefault("checkout.nonce_ttl", "120s")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("MPL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	minAmount, err := decimal.NewFromString(c.Ledger.MinWithdrawal)
	if err != nil {
		return fmt.Errorf("ledger.min_withdrawal: %w", err)
	}
	if !minAmount.IsPositive() {
		return fmt.Errorf("ledger.min_withdrawal must be positive, got %s", c.Ledger.MinWithdrawal)
	}
	if c.Ledger.MaxTxAttempts < 1 {
		return fmt.Errorf("ledger.max_tx_attempts must be at least 1")
	}
	switch c.OTP.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("otp.store must be memory or redis, got %q", c.OTP.Store)
	}
	if c.OTP.MaxAttempts < 1 || c.OTP.MaxRequestsPerHour < 1 {
		return fmt.Errorf("otp limits must be at least 1")
	}
	return nil
}
