package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration. An empty URL disables event publishing.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
	Workers        int           `mapstructure:"workers"`
	QueueSize      int           `mapstructure:"queue_size"`
}

// RedisConfig holds Redis configuration. An empty URL keeps rate limits in process.
type RedisConfig struct {
	URL string `mapstructure:"url"`
}

// RateLimitConfig holds per client IP request budgets of the sign-in endpoints
type RateLimitConfig struct {
	Enabled                 bool    `mapstructure:"enabled"`
	KeyPrefix               string  `mapstructure:"key_prefix"`
	NonceRequestsPerMinute  int     `mapstructure:"nonce_requests_per_minute"`
	NonceBurst              int     `mapstructure:"nonce_burst"`
	VerifyRequestsPerMinute int     `mapstructure:"verify_requests_per_minute"`
	VerifyBurst             int     `mapstructure:"verify_burst"`
	LocalFallbackMultiplier float64 `mapstructure:"local_fallback_multiplier"`
	MaxLocalKeys            int     `mapstructure:"max_local_keys"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host               string   `mapstructure:"host"`
	Port               int      `mapstructure:"port"`
	ReadTimeout        int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout       int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout        int      `mapstructure:"idle_timeout"`  // in seconds
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	TrustedProxies     []string `mapstructure:"trusted_proxies"`
}

// AuthConfig holds the sign-in and session configuration
type AuthConfig struct {
	SessionSecret    string        `mapstructure:"session_secret"`
	SessionTTL       time.Duration `mapstructure:"session_ttl"`
	SessionIssuer    string        `mapstructure:"session_issuer"`
	CredentialSecret string        `mapstructure:"credential_secret"`
	NonceTTL         time.Duration `mapstructure:"nonce_ttl"`
	ExpectedDomain   string        `mapstructure:"expected_domain"`
	BcryptCost       int           `mapstructure:"bcrypt_cost"`
}

// RPCConfig holds the JSON-RPC endpoints used to verify smart account signatures
type RPCConfig struct {
	BaseMainnet     string `mapstructure:"base_mainnet"`
	BaseSepolia     string `mapstructure:"base_sepolia"`
	EthereumMainnet string `mapstructure:"ethereum_mainnet"`
	EthereumSepolia string `mapstructure:"ethereum_sepolia"`
}

// Endpoints returns the configured RPC URLs keyed by EVM chain ID
func (c *RPCConfig) Endpoints() map[uint64]string {
	endpoints := make(map[uint64]string)
	for chainID, url := range map[uint64]string{
		8453:     c.BaseMainnet,
		84532:    c.BaseSepolia,
		1:        c.EthereumMainnet,
		11155111: c.EthereumSepolia,
	} {
		if url != "" {
			endpoints[chainID] = url
		}
	}
	return endpoints
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Auth       AuthConfig      `mapstructure:"auth"`
	RPC        RPCConfig       `mapstructure:"rpc"`
	NATS       NATSConfig      `mapstructure:"nats"`
	Redis      RedisConfig     `mapstructure:"redis"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
}

// NonceSweeperConfig holds configuration for the nonce sweeper
type NonceSweeperConfig struct {
	Interval    time.Duration `mapstructure:"interval"`
	BatchSize   int           `mapstructure:"batch_size"`
	GracePeriod time.Duration `mapstructure:"grace_period"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Database     DatabaseConfig     `mapstructure:"database"`
	NonceSweeper NonceSweeperConfig `mapstructure:"nonce_sweeper"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("auth.session_ttl", "24h")
	v.SetDefault("auth.session_issuer", "subvault-api")
	v.SetDefault("auth.nonce_ttl", "5m")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("nats.stream_name", "SUBVAULT_EVENTS")
	v.SetDefault("nats.subject_prefix", "subvault")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "subvault-api")
	v.SetDefault("nats.publish_timeout", "5s")
	v.SetDefault("nats.workers", 4)
	v.SetDefault("nats.queue_size", 1024)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.key_prefix", "subvault:limiter:")
	v.SetDefault("rate_limit.nonce_requests_per_minute", 30)
	v.SetDefault("rate_limit.nonce_burst", 10)
	v.SetDefault("rate_limit.verify_requests_per_minute", 10)
	v.SetDefault("rate_limit.verify_burst", 5)
	v.SetDefault("rate_limit.local_fallback_multiplier", 1.0)
	v.SetDefault("rate_limit.max_local_keys", 10000)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if err := cfg.Database.validate(); err != nil {
		return nil, err
	}
	if cfg.Auth.SessionSecret == "" {
		return nil, errors.New("auth.session_secret is required")
	}
	if cfg.Auth.CredentialSecret == "" {
		return nil, errors.New("auth.credential_secret is required")
	}

	return &cfg, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("nonce_sweeper.interval", "1m")
	v.SetDefault("nonce_sweeper.batch_size", 1000)
	v.SetDefault("nonce_sweeper.grace_period", "1h")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// readConfig reads the config file; a missing file falls back to environment variables
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/sweeper/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("SUBVAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allowed_origins",
		"server.trusted_proxies",
		// Auth
		"auth.session_secret",
		"auth.session_ttl",
		"auth.session_issuer",
		"auth.credential_secret",
		"auth.nonce_ttl",
		"auth.expected_domain",
		"auth.bcrypt_cost",
		// RPC
		"rpc.base_mainnet",
		"rpc.base_sepolia",
		"rpc.ethereum_mainnet",
		"rpc.ethereum_sepolia",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.publish_timeout",
		"nats.workers",
		"nats.queue_size",
		// Redis
		"redis.url",
		// Rate limiting
		"rate_limit.enabled",
		"rate_limit.key_prefix",
		"rate_limit.nonce_requests_per_minute",
		"rate_limit.nonce_burst",
		"rate_limit.verify_requests_per_minute",
		"rate_limit.verify_burst",
		"rate_limit.local_fallback_multiplier",
		"rate_limit.max_local_keys",
		// Nonce sweeper
		"nonce_sweeper.interval",
		"nonce_sweeper.batch_size",
		"nonce_sweeper.grace_period",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

func (c *DatabaseConfig) validate() error {
	if c.Host == "" {
		return errors.New("database.host is required")
	}
	if c.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
