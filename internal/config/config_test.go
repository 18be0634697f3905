package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigContent = `
[development]
host = "localhost"
port = 9000
log_level = "trace"
log_to_stdout = true
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "coachdesk_db"
redis_host = "localhost"
redis_port = "6379"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"
roster_fetch_workers = 4

[production]
host = "0.0.0.0"
port = 9000
log_level = "debug"
logs_path = "/var/log/coachdesk/service.log"
postgres_host = "db"
postgres_port = "5432"
postgres_db_name = "coachdesk_db"
redis_host = "redis"
redis_port = "6379"
prometheus_metrics_host = "0.0.0.0"
prometheus_metrics_port = "2112"
login_rate_limit_allowed_per_min = 10
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigContent), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := Load("development", writeTestConfig(t))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.Equal(t, "coachdesk_db", cfg.PostgresDBName)
	assert.Equal(t, 4, cfg.RosterFetchWorkers)
	// not set in the file, defaulted
	assert.Equal(t, DefaultLoginRateLimitPerMin, cfg.LoginRateLimitAllowedPerMin)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_Production(t *testing.T) {
	cfg, err := Load("prod", writeTestConfig(t))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "/var/log/coachdesk/service.log", cfg.LogsPath)
	assert.Equal(t, 10, cfg.LoginRateLimitAllowedPerMin)
	assert.Equal(t, DefaultRosterFetchWorkers, cfg.RosterFetchWorkers)
}

func TestLoad_UnknownEnv(t *testing.T) {
	cfg, err := Load("staging", writeTestConfig(t))
	require.Error(t, err)
	assert.Nil(t, cfg)
}
