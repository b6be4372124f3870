// Package config defines all configuration structures for the retrosynth
// engine. No I/O or parsing logic lives here — only plain data types and
// validation.
package config

import (
	"fmt"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables for the gin-based route API.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection parameters for the template
// catalog (D3).
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConns        int           `mapstructure:"max_conns"`
	MinConns        int           `mapstructure:"min_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	MigrationPath   string        `mapstructure:"migration_path"`
}

// Neo4jConfig holds Neo4j connection parameters for DAG export/mirroring
// (D5). Disabled by default; the engine itself never requires Neo4j to run.
type Neo4jConfig struct {
	Enabled               bool          `mapstructure:"enabled"`
	URI                   string        `mapstructure:"uri"`
	User                  string        `mapstructure:"user"`
	Password              string        `mapstructure:"password"`
	MaxConnectionPoolSize int           `mapstructure:"max_connection_pool_size"`
	ConnectionTimeout     time.Duration `mapstructure:"connection_timeout"`
	Database              string        `mapstructure:"database"`
}

// RedisConfig holds Redis connection parameters for the price cache (D2).
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	DefaultTTL   time.Duration `mapstructure:"default_ttl"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// KafkaConfig holds Apache Kafka producer parameters for route-completion
// events (D4). Disabled by default; build_tree and get_buyable_paths never
// depend on a broker being reachable.
type KafkaConfig struct {
	Enabled           bool     `mapstructure:"enabled"`
	Brokers           []string `mapstructure:"brokers"`
	GroupID           string   `mapstructure:"group_id"`
	AutoOffsetReset   string   `mapstructure:"auto_offset_reset"` // "earliest" | "latest"
	TimeoutMS         int      `mapstructure:"timeout_ms"`
	ProducerRetries   int      `mapstructure:"producer_retries"`
	BatchSize         int      `mapstructure:"batch_size"`
	AutoCreateTopics  bool     `mapstructure:"auto_create_topics"`
	ReplicationFactor int      `mapstructure:"replication_factor"`
	NumPartitions     int      `mapstructure:"num_partitions"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level            string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format           string `mapstructure:"format"` // "json" | "text"
	Output           string `mapstructure:"output"`
	EnableCaller     bool   `mapstructure:"enable_caller"`
	EnableStacktrace bool   `mapstructure:"enable_stacktrace"`
	SamplingRate     int    `mapstructure:"sampling_rate"`
}

// EngineConfig holds the ten recognized options of the core engine's
// Configure operation (§6). Every field here corresponds 1:1 to a Configure
// option; ApplyDefaults fills any zero-valued field with the documented
// default before the engine is built.
type EngineConfig struct {
	// TemplateMaxCount caps the number of templates considered per chemical.
	TemplateMaxCount uint `mapstructure:"template_max_count"`

	// TemplateMaxCumProb caps the cumulative relevance probability mass of
	// templates considered per chemical.
	TemplateMaxCumProb float64 `mapstructure:"template_max_cum_prob"`

	// FastFilterThreshold is the minimum plausibility score required to
	// accept an expansion outcome.
	FastFilterThreshold float64 `mapstructure:"fast_filter_threshold"`

	// MaxBranching caps the number of reaction children per chemical node.
	MaxBranching uint `mapstructure:"max_branching"`

	// MaxDepth bounds both expansion and path enumeration.
	MaxDepth uint `mapstructure:"max_depth"`

	// ExplorationWeight is the UCB exploration coefficient (w).
	ExplorationWeight float64 `mapstructure:"exploration_weight"`

	// MaxPPG is the price-per-gram ceiling below which a chemical is
	// considered buyable/terminal.
	MaxPPG float64 `mapstructure:"max_ppg"`

	// ExpansionTime is the wall-clock budget for the rollout loop.
	ExpansionTime time.Duration `mapstructure:"expansion_time"`

	// MaxChemicals optionally caps total chemical nodes created; 0 means
	// no cap.
	MaxChemicals uint `mapstructure:"max_chemicals"`

	// MaxReactions optionally caps total reaction nodes created; 0 means
	// no cap.
	MaxReactions uint `mapstructure:"max_reactions"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure for the retrosynth service.
// Every adapter and interface reads its settings from the relevant
// sub-struct.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Engine EngineConfig `mapstructure:"engine"`

	Database DatabaseConfig `mapstructure:"database"`
	Neo4j    Neo4jConfig    `mapstructure:"neo4j"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Log      LogConfig      `mapstructure:"log"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	// Engine
	if c.Engine.TemplateMaxCount < 1 {
		return fmt.Errorf("config: engine.template_max_count must be ≥ 1, got %d", c.Engine.TemplateMaxCount)
	}
	if c.Engine.TemplateMaxCumProb <= 0 || c.Engine.TemplateMaxCumProb > 1 {
		return fmt.Errorf("config: engine.template_max_cum_prob must be in (0, 1], got %f", c.Engine.TemplateMaxCumProb)
	}
	if c.Engine.FastFilterThreshold < 0 || c.Engine.FastFilterThreshold > 1 {
		return fmt.Errorf("config: engine.fast_filter_threshold must be in [0, 1], got %f", c.Engine.FastFilterThreshold)
	}
	if c.Engine.MaxBranching < 1 {
		return fmt.Errorf("config: engine.max_branching must be ≥ 1, got %d", c.Engine.MaxBranching)
	}
	if c.Engine.MaxDepth < 1 {
		return fmt.Errorf("config: engine.max_depth must be ≥ 1, got %d", c.Engine.MaxDepth)
	}
	if c.Engine.ExplorationWeight < 0 {
		return fmt.Errorf("config: engine.exploration_weight must be ≥ 0, got %f", c.Engine.ExplorationWeight)
	}
	if c.Engine.MaxPPG <= 0 {
		return fmt.Errorf("config: engine.max_ppg must be > 0, got %f", c.Engine.MaxPPG)
	}
	if c.Engine.ExpansionTime <= 0 {
		return fmt.Errorf("config: engine.expansion_time must be > 0, got %s", c.Engine.ExpansionTime)
	}

	// Database (template catalog)
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("config: database.port %d is out of range [1, 65535]", c.Database.Port)
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.db_name is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("config: database.max_conns must be ≥ 1, got %d", c.Database.MaxConns)
	}

	// Redis (price cache)
	if c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("config: redis.db must be ≥ 0, got %d", c.Redis.DB)
	}

	// Kafka (only validated when route-event publishing is enabled)
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("config: kafka.brokers must contain at least one broker address when kafka.enabled is true")
		}
		if c.Kafka.GroupID == "" {
			return fmt.Errorf("config: kafka.group_id is required when kafka.enabled is true")
		}
	}

	// Neo4j (only validated when the DAG mirror is enabled)
	if c.Neo4j.Enabled && c.Neo4j.URI == "" {
		return fmt.Errorf("config: neo4j.uri is required when neo4j.enabled is true")
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|text", c.Log.Format)
	}

	return nil
}

//Personal.AI order the ending
