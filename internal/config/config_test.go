package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newValidConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Mode:            "debug",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Engine: EngineConfig{
			TemplateMaxCount:    DefaultTemplateMaxCount,
			TemplateMaxCumProb:  DefaultTemplateMaxCumProb,
			FastFilterThreshold: DefaultFastFilterThreshold,
			MaxBranching:        DefaultMaxBranching,
			MaxDepth:            DefaultMaxDepth,
			ExplorationWeight:   DefaultExplorationWeight,
			MaxPPG:              DefaultMaxPPG,
			ExpansionTime:       DefaultExpansionTime,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "password",
			DBName:   "db",
			MaxConns: 10,
		},
		Neo4j: Neo4jConfig{
			Enabled:  false,
			URI:      "bolt://localhost:7687",
			User:     "neo4j",
			Password: "password",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Kafka: KafkaConfig{
			Enabled: false,
			Brokers: []string{"localhost:9092"},
			GroupID: "group",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := newValidConfig()
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_MissingDatabaseHost(t *testing.T) {
	cfg := newValidConfig()
	cfg.Database.Host = ""
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_Neo4jURIRequiredOnlyWhenEnabled(t *testing.T) {
	cfg := newValidConfig()
	cfg.Neo4j.Enabled = false
	cfg.Neo4j.URI = ""
	assert.NoError(t, cfg.Validate())

	cfg.Neo4j.Enabled = true
	assert.Error(t, cfg.Validate())

	cfg.Neo4j.URI = "bolt://localhost:7687"
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_InvalidLogLevel(t *testing.T) {
	cfg := newValidConfig()
	cfg.Log.Level = "invalid"
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_InvalidServerPort(t *testing.T) {
	cfg := newValidConfig()
	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_KafkaBrokersRequiredOnlyWhenEnabled(t *testing.T) {
	cfg := newValidConfig()
	cfg.Kafka.Enabled = false
	cfg.Kafka.Brokers = []string{}
	assert.NoError(t, cfg.Validate())

	cfg.Kafka.Enabled = true
	assert.Error(t, cfg.Validate())

	cfg.Kafka.Brokers = []string{"localhost:9092"}
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_EngineTemplateMaxCountZero(t *testing.T) {
	cfg := newValidConfig()
	cfg.Engine.TemplateMaxCount = 0
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_EngineTemplateMaxCumProbOutOfRange(t *testing.T) {
	cases := []float64{0, -0.1, 1.5}
	for _, v := range cases {
		cfg := newValidConfig()
		cfg.Engine.TemplateMaxCumProb = v
		assert.Error(t, cfg.Validate(), "cum_prob=%f", v)
	}
}

func TestConfig_Validate_EngineFastFilterThresholdOutOfRange(t *testing.T) {
	cases := []float64{-0.1, 1.1}
	for _, v := range cases {
		cfg := newValidConfig()
		cfg.Engine.FastFilterThreshold = v
		assert.Error(t, cfg.Validate(), "threshold=%f", v)
	}
}

func TestConfig_Validate_EngineMaxBranchingZero(t *testing.T) {
	cfg := newValidConfig()
	cfg.Engine.MaxBranching = 0
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_EngineMaxDepthZero(t *testing.T) {
	cfg := newValidConfig()
	cfg.Engine.MaxDepth = 0
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_EngineMaxPPGMustBePositive(t *testing.T) {
	cfg := newValidConfig()
	cfg.Engine.MaxPPG = 0
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_EngineExpansionTimeMustBePositive(t *testing.T) {
	cfg := newValidConfig()
	cfg.Engine.ExpansionTime = 0
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_EngineMaxChemicalsReactionsZeroIsNoCap(t *testing.T) {
	cfg := newValidConfig()
	cfg.Engine.MaxChemicals = 0
	cfg.Engine.MaxReactions = 0
	assert.NoError(t, cfg.Validate())
}

//Personal.AI order the ending
