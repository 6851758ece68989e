package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	NATS        NATSConfig        `mapstructure:"nats"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	Log         LogConfig         `mapstructure:"log"`
	Ledger      LedgerConfig      `mapstructure:"ledger"`
	Pricing     PricingConfig     `mapstructure:"pricing"`
	Boost       BoostConfig       `mapstructure:"boost"`
	Marketplace MarketplaceConfig `mapstructure:"marketplace"`
	RateLimit   RateLimitConfig   `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
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

// RedisConfig configures the processed-event cache, price cache and rate limiter store.
type RedisConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	PoolSize    int           `mapstructure:"pool_size"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// NATSConfig configures the JetStream event consumer and notification publisher.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	EventStream    string        `mapstructure:"event_stream"`
	EventSubject   string        `mapstructure:"event_subject"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	NotifySubject  string        `mapstructure:"notify_subject"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
	ConnectionName string        `mapstructure:"connection_name"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
	Admins []string      `mapstructure:"admins"` // wallets allowed on /admin routes
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// LedgerConfig holds system-wide ledger constants.
type LedgerConfig struct {
	LTVBP             int           `mapstructure:"ltv_bp"`
	ProcessedCacheTTL time.Duration `mapstructure:"processed_cache_ttl"`
}

// PricingConfig configures the external price oracles. JupiterURL is the
// fallback feed; leave it empty to use CoinGecko alone.
type PricingConfig struct {
	CoinGeckoURL string        `mapstructure:"coingecko_url"`
	JupiterURL   string        `mapstructure:"jupiter_url"`
	MaxAge       time.Duration `mapstructure:"max_age"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
	MaxRetries   int           `mapstructure:"max_retries"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// BoostConfig lists the tokens accepted for boosting.
type BoostConfig struct {
	Tokens []BoostTokenConfig `mapstructure:"tokens"`
}

// BoostTokenConfig describes one boost token and its pricing policy.
// Class is "discounted_market" or "fixed_internal".
type BoostTokenConfig struct {
	Mint          string `mapstructure:"mint"`
	Symbol        string `mapstructure:"symbol"`
	Class         string `mapstructure:"class"`
	CoinGeckoID   string `mapstructure:"coingecko_id"`
	DiscountBP    int    `mapstructure:"discount_bp"`
	FixedPriceUSD int64  `mapstructure:"fixed_price_usd"` // micro-USD
}

type MarketplaceConfig struct {
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// RateLimitConfig sets per-group request budgets over a sliding window.
// Groups missing from Limits keep their built-in budget.
type RateLimitConfig struct {
	Enabled bool             `mapstructure:"enabled"`
	Window  time.Duration    `mapstructure:"window"`
	Limits  map[string]int64 `mapstructure:"limits"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WXL_.
// Nested keys use underscore: WXL_DATABASE_HOST, WXL_LEDGER_LTV_BP, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wexel_ledger")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("redis.dial_timeout", "5s")
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.event_stream", "LEDGER_EVENTS")
	v.SetDefault("nats.event_subject", "ledger.events.>")
	v.SetDefault("nats.consumer_name", "wexel-ledger-reconciler")
	v.SetDefault("nats.notify_subject", "ledger.notifications")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 10)
	v.SetDefault("nats.connection_name", "wexel-ledger")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "wexel-ledger")
	v.SetDefault("jwt.admins", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("ledger.ltv_bp", 6000)
	v.SetDefault("ledger.processed_cache_ttl", "72h")
	v.SetDefault("pricing.coingecko_url", "https://api.coingecko.com/api/v3")
	v.SetDefault("pricing.jupiter_url", "https://api.jup.ag/price/v2")
	v.SetDefault("pricing.max_age", "5m")
	v.SetDefault("pricing.cache_ttl", "1m")
	v.SetDefault("pricing.max_retries", 3)
	v.SetDefault("pricing.timeout", "10s")
	v.SetDefault("marketplace.sweep_interval", "1m")
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.window", "1m")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WXL_DATABASE_HOST -> database.host
	v.SetEnvPrefix("WXL")
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ledger-level invariants that must hold before any engine starts.
func (c *Config) Validate() error {
	if c.Ledger.LTVBP <= 0 || c.Ledger.LTVBP > 10000 {
		return fmt.Errorf("ledger.ltv_bp must be in (0, 10000], got %d", c.Ledger.LTVBP)
	}
	seen := make(map[string]bool, len(c.Boost.Tokens))
	for _, t := range c.Boost.Tokens {
		if t.Mint == "" {
			return fmt.Errorf("boost token without mint")
		}
		if seen[t.Mint] {
			return fmt.Errorf("boost token %s configured twice", t.Mint)
		}
		seen[t.Mint] = true
		switch t.Class {
		case "discounted_market":
			if t.DiscountBP < 0 || t.DiscountBP >= 10000 {
				return fmt.Errorf("boost token %s: discount_bp must be in [0, 10000)", t.Mint)
			}
		case "fixed_internal":
			if t.FixedPriceUSD <= 0 {
				return fmt.Errorf("boost token %s: fixed_price_usd must be positive", t.Mint)
			}
		default:
			return fmt.Errorf("boost token %s: unknown class %q", t.Mint, t.Class)
		}
	}
	for group, limit := range c.RateLimit.Limits {
		if limit <= 0 {
			return fmt.Errorf("ratelimit.limits.%s must be positive, got %d", group, limit)
		}
	}
	return nil
}
