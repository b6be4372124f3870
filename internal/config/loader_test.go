package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `
server:
  port: 8080
  mode: debug
engine:
  template_max_count: 100
  template_max_cum_prob: 0.995
  fast_filter_threshold: 0.75
  max_branching: 10
  max_depth: 3
  exploration_weight: 1.0
  max_ppg: 10
  expansion_time: 20s
database:
  host: "localhost"
  port: 5432
  user: "user"
  password: "password"
  db_name: "db"
redis:
  addr: "localhost:6379"
kafka:
  brokers: ["localhost:9092"]
  group_id: "group"
log:
  level: "info"
  format: "json"
`

func createTempConfigFile(t *testing.T, content string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func setEnvVars(t *testing.T, vars map[string]string) {
	for k, v := range vars {
		os.Setenv(k, v)
	}
	t.Cleanup(func() {
		for k := range vars {
			os.Unsetenv(k)
		}
	})
}

func TestLoad_FromFile_ValidConfig(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
}

func TestLoad_FromFile_FileNotFound(t *testing.T) {
	_, err := Load("non_existent_config.yaml")
	assert.Error(t, err)
}

func TestLoad_FromFile_InvalidYAML(t *testing.T) {
	path := createTempConfigFile(t, "invalid_yaml: [")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_FromFile_ValidationFailure(t *testing.T) {
	invalidConfig := `
server:
  port: 0
`
	path := createTempConfigFile(t, invalidConfig)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)
	setEnvVars(t, map[string]string{
		"RETROSYNTH_SERVER_PORT": "9999",
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestLoad_EnvOverride_NestedKey(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)
	setEnvVars(t, map[string]string{
		"RETROSYNTH_DATABASE_HOST": "db-host",
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "db-host", cfg.Database.Host)
}

func TestLoad_DefaultValues(t *testing.T) {
	minimalYAML := `
database:
  host: "localhost"
  port: 5432
  user: "user"
  password: "password"
  db_name: "db"
redis:
  addr: "localhost:6379"
kafka:
  brokers: ["localhost:9092"]
  group_id: "group"
`
	path := createTempConfigFile(t, minimalYAML)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, uint(DefaultTemplateMaxCount), cfg.Engine.TemplateMaxCount)
}

func TestLoadFromEnv_NoFile(t *testing.T) {
	setEnvVars(t, map[string]string{
		"RETROSYNTH_SERVER_PORT":     "8080",
		"RETROSYNTH_SERVER_MODE":     "debug",
		"RETROSYNTH_DATABASE_HOST":   "localhost",
		"RETROSYNTH_DATABASE_PORT":   "5432",
		"RETROSYNTH_DATABASE_USER":   "user",
		"RETROSYNTH_DATABASE_PASSWORD": "password",
		"RETROSYNTH_DATABASE_DB_NAME":  "db",
		"RETROSYNTH_REDIS_ADDR":       "localhost:6379",
		"RETROSYNTH_KAFKA_GROUP_ID":   "group",
		"RETROSYNTH_LOG_LEVEL":        "info",
		"RETROSYNTH_LOG_FORMAT":       "json",
	})

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "group", cfg.Kafka.GroupID)
}

func TestMustLoad_Success(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)
	assert.NotPanics(t, func() {
		MustLoad(path)
	})
}

func TestMustLoad_Panic(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad("non_existent.yaml")
	})
}

func TestWatch_ToleratesFileChange(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)

	changed := make(chan *Config, 1)
	Watch(path, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})

	updated := validConfigYAML + "\n# touch\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))

	// Watch is inherently async (fsnotify-backed); we only assert it doesn't
	// panic or error synchronously. A received callback is a bonus signal,
	// not a hard requirement, since fsnotify delivery timing is platform
	// dependent.
	select {
	case cfg := <-changed:
		assert.NotNil(t, cfg)
	default:
	}
}

//Personal.AI order the ending
