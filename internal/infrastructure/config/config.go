package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StoreBackendPostgres = "postgres"
	StoreBackendSQLite   = "sqlite"
	StoreBackendDynamoDB = "dynamodb"
)

// Config is read once at startup from the environment (.env is autoloaded by main).
type Config struct {
	Port string

	StoreBackend string
	Database     DatabaseConfig
	DynamoDB     DynamoDBConfig
	Ledger       LedgerConfig
	Jobs         JobsConfig
}

type DatabaseConfig struct {
	DSN             string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
	AutoMigrate     bool
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	LedgerTable     string
}

type LedgerConfig struct {
	ExpiringWindow     time.Duration
	AlertThreshold     decimal.Decimal
	AlertCacheTTL      time.Duration
	ConflictMaxRetries int
	Location           *time.Location
}

type JobsConfig struct {
	StatusRefreshCron string
}

// Load reads configuration from environment with sensible defaults.
func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", StoreBackendPostgres)),
	}

	cfg.Database = DatabaseConfig{
		DSN:             getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=contratos port=5432 sslmode=disable"),
		SQLitePath:      getEnv("SQLITE_PATH", "contratos.db"),
		MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
		ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		LogLevel:        strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")),
		AutoMigrate:     getBool("DB_AUTO_MIGRATE", true),
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	cfg.DynamoDB = DynamoDBConfig{
		Region:          getEnv("AWS_REGION", "us-east-1"),
		AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		LedgerTable:     getEnv("LEDGER_TABLE", "contract_ledger"),
	}

	cfg.Ledger = LedgerConfig{
		ExpiringWindow:     time.Duration(getInt("EXPIRING_WINDOW_DAYS", 30)) * 24 * time.Hour,
		AlertThreshold:     getDecimal("ALERT_THRESHOLD", decimal.NewFromInt(90)),
		AlertCacheTTL:      getDuration("ALERT_CACHE_TTL", 30*time.Second),
		ConflictMaxRetries: getInt("CONFLICT_MAX_RETRIES", 3),
		Location:           getLocation("TIMEZONE", "America/Sao_Paulo"),
	}

	cfg.Jobs = JobsConfig{
		StatusRefreshCron: getEnv("STATUS_REFRESH_CRON", "0 0 2 * * *"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Printf("[config] invalid integer for %s: %s", key, v)
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		log.Printf("[config] invalid boolean for %s: %s", key, v)
		return def
	}
	return b
}

// getDuration accepts Go durations ("30s", "5m") or plain seconds.
func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("[config] invalid duration for %s: %s", key, v)
	return def
}

func getDecimal(key string, def decimal.Decimal) decimal.Decimal {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		log.Printf("[config] invalid decimal for %s: %s", key, v)
		return def
	}
	return d
}

func getLocation(key, def string) *time.Location {
	name := getEnv(key, def)
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[config] unknown timezone %s, using UTC: %v", name, err)
		return time.UTC
	}
	return loc
}
