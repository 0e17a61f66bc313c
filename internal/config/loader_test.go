package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigs 在临时目录准备配置文件并切换工作目录
func writeConfigs(t *testing.T, base string, envFiles map[string]string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(base), 0o644))
	for name, content := range envFiles {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", name), []byte(content), 0o644))
	}
	t.Chdir(dir)
}

func TestLoadAppliesDefaults(t *testing.T) {
	writeConfigs(t, "app:\n  name: novel-maker-api\n", nil)
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.HTTP.Host)
	assert.Equal(t, 8080, cfg.Server.HTTP.Port)
	assert.NotEmpty(t, cfg.LLM.Models)
	assert.Greater(t, cfg.Server.HTTP.WriteTimeout, cfg.LLM.Timeout,
		"write timeout must exceed llm timeout so generation responses are not cut off")
}

func TestLoadExpandsEnvPlaceholders(t *testing.T) {
	writeConfigs(t, `
server:
  http:
    host: ${TEST_HTTP_HOST:0.0.0.0}
    port: ${TEST_HTTP_PORT:9090}
storage:
  sqlite:
    path: ${TEST_SQLITE_PATH:./data/app.db}
`, nil)
	t.Setenv("APP_ENV", "development")
	t.Setenv("TEST_HTTP_HOST", "10.0.0.1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1", cfg.Server.HTTP.Host, "set variable wins over default")
	assert.Equal(t, 9090, cfg.Server.HTTP.Port, "unset variable falls back to default")
	assert.Equal(t, "./data/app.db", cfg.Storage.SQLite.Path)
}

func TestLoadEnvSpecificOverride(t *testing.T) {
	writeConfigs(t,
		"observability:\n  logging:\n    level: info\n    format: json\n",
		map[string]string{
			"config.development.yaml": "observability:\n  logging:\n    level: debug\n",
		})
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format, "base value survives partial override")
}

func TestLoadMissingBaseConfigFails(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "development")

	_, err := Load()
	assert.Error(t, err)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_EXPAND_SET", "value")

	assert.Equal(t, "value", expandEnv("${TEST_EXPAND_SET}"))
	assert.Equal(t, "value", expandEnv("${TEST_EXPAND_SET:fallback}"))
	assert.Equal(t, "fallback", expandEnv("${TEST_EXPAND_UNSET:fallback}"))
	assert.Equal(t, "", expandEnv("${TEST_EXPAND_UNSET:}"))
	assert.Equal(t, "${TEST_EXPAND_UNSET}", expandEnv("${TEST_EXPAND_UNSET}"),
		"no default keeps placeholder intact")
	assert.Equal(t, "plain text", expandEnv("plain text"))
}
