package config

import (
	"fmt"
	"strings"
)

// StoreBackend selects where operator settings are persisted.
type StoreBackend string

const (
	// StoreMemory keeps settings in process memory only.
	StoreMemory StoreBackend = "memory"
	// StoreSQLite keeps settings in a local SQLite file.
	StoreSQLite StoreBackend = "sqlite"
	// StoreRedis keeps settings in Redis.
	StoreRedis StoreBackend = "redis"
	// StorePostgres keeps settings in PostgreSQL.
	StorePostgres StoreBackend = "postgres"
)

// UnmarshalText implements encoding.TextUnmarshaler for StoreBackend.
func (b *StoreBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch StoreBackend(v) {
	case StoreMemory, StoreSQLite, StoreRedis, StorePostgres:
		*b = StoreBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid StoreBackend: %q (valid options: memory, sqlite, redis, postgres)", v)
	}
}

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"linkadmin"`
	Password string `env:"PASSWORD" envDefault:"linkadmin"`
	Name     string `env:"NAME"     envDefault:"linkadmin"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the kv_store schema is applied during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}

// StoreConfig groups the settings storage configuration.
type StoreConfig struct {
	Backend    StoreBackend `env:"STORE_BACKEND"     envDefault:"sqlite"`
	SQLitePath string       `env:"STORE_SQLITE_PATH" envDefault:"data/linkadmin.db"`
	// KeyPrefix namespaces Redis keys.
	KeyPrefix string `env:"STORE_KEY_PREFIX" envDefault:"linkadmin:"`

	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`
}

// Sanitize applies defaults to blank values.
func (s *StoreConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = StoreSQLite
	}
	s.SQLitePath = strings.TrimSpace(s.SQLitePath)
	if s.SQLitePath == "" {
		s.SQLitePath = "data/linkadmin.db"
	}
}
