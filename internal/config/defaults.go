// Package config provides configuration loading, defaults, and validation for
// the retrosynth engine.
package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort = 8080
	DefaultServerMode = "debug"

	DefaultDBHost     = "localhost"
	DefaultDBPort     = 5432
	DefaultDBName     = "retrosynth"
	DefaultDBMaxConns = 25

	DefaultRedisAddr = "localhost:6379"
	DefaultRedisDB   = 0

	DefaultKafkaBroker  = "localhost:9092"
	DefaultKafkaGroupID = "retrosynth-group"

	DefaultNeo4jURI = "bolt://localhost:7687"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	// Engine defaults, per §6 of SPEC_FULL.md.
	DefaultTemplateMaxCount    = 100
	DefaultTemplateMaxCumProb  = 0.995
	DefaultFastFilterThreshold = 0.75
	DefaultMaxBranching        = 10
	DefaultMaxDepth            = 3
	DefaultExplorationWeight   = 1.0
	DefaultMaxPPG              = 10.0
	DefaultExpansionTime       = 20 * time.Second
)

// ─────────────────────────────────────────────────────────────────────────────
// ApplyDefaults fills zero-value fields in cfg with well-known defaults.
// It must be called after unmarshalling raw config data and before Validate()
// so that optional-but-defaulted fields are never seen as missing.
// ─────────────────────────────────────────────────────────────────────────────

// ApplyDefaults fills every zero-value field in cfg with the service default.
// Fields that have already been set by the caller (non-zero values) are left
// unchanged so that explicit configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}

	// ── Engine ────────────────────────────────────────────────────────────────
	if cfg.Engine.TemplateMaxCount == 0 {
		cfg.Engine.TemplateMaxCount = DefaultTemplateMaxCount
	}
	if cfg.Engine.TemplateMaxCumProb == 0 {
		cfg.Engine.TemplateMaxCumProb = DefaultTemplateMaxCumProb
	}
	if cfg.Engine.FastFilterThreshold == 0 {
		cfg.Engine.FastFilterThreshold = DefaultFastFilterThreshold
	}
	if cfg.Engine.MaxBranching == 0 {
		cfg.Engine.MaxBranching = DefaultMaxBranching
	}
	if cfg.Engine.MaxDepth == 0 {
		cfg.Engine.MaxDepth = DefaultMaxDepth
	}
	if cfg.Engine.ExplorationWeight == 0 {
		cfg.Engine.ExplorationWeight = DefaultExplorationWeight
	}
	if cfg.Engine.MaxPPG == 0 {
		cfg.Engine.MaxPPG = DefaultMaxPPG
	}
	if cfg.Engine.ExpansionTime == 0 {
		cfg.Engine.ExpansionTime = DefaultExpansionTime
	}
	// MaxChemicals / MaxReactions: 0 is itself the documented "no cap" value,
	// so it is never overwritten here.

	// ── Database ──────────────────────────────────────────────────────────────
	if cfg.Database.Host == "" {
		cfg.Database.Host = DefaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDBPort
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = DefaultDBName
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = DefaultDBMaxConns
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}

	// ── Redis ─────────────────────────────────────────────────────────────────
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	// DB is an int; 0 is a valid explicit value so we cannot distinguish "not
	// set" from "set to 0".  We leave it as-is (0 is also the default).

	// ── Kafka ─────────────────────────────────────────────────────────────────
	if len(cfg.Kafka.Brokers) == 0 {
		cfg.Kafka.Brokers = []string{DefaultKafkaBroker}
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = DefaultKafkaGroupID
	}
	if cfg.Kafka.AutoOffsetReset == "" {
		cfg.Kafka.AutoOffsetReset = "earliest"
	}

	// ── Neo4j ─────────────────────────────────────────────────────────────────
	if cfg.Neo4j.URI == "" {
		cfg.Neo4j.URI = DefaultNeo4jURI
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

//Personal.AI order the ending
