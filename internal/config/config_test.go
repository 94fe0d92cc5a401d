package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SECRET_KEY_SUPERJOB_API", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID"} {
		t.Setenv(key, "")
	}
}

func TestLoadFile_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "C", "C++", "Java", "JavaScript", "PHP", "C#", "Swift", "Scala", "Go"}, cfg.Languages)
	assert.Equal(t, "https://api.hh.ru/vacancies", cfg.HeadHunter.BaseURL)
	assert.Equal(t, "RUR", cfg.HeadHunter.TargetCurrency)
	assert.Equal(t, map[string]string{"period": "30", "area": "1"}, cfg.HeadHunter.Filters)
	assert.Equal(t, "rub", cfg.SuperJob.TargetCurrency)
	assert.Equal(t, 100, cfg.SuperJob.PageSize)
	assert.Empty(t, cfg.SuperJob.Credential, "missing key must not be rejected")
	assert.Equal(t, 10*time.Minute, cfg.Timeout)
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoadFile_YAMLAndEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY_SUPERJOB_API", "v3.r.secret")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlData := `
languages: [Go, Rust]
timeout: 2m
headhunter:
  filters:
    area: "2"
superjob:
  credential: from-file
  page_size: 50
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Rust"}, cfg.Languages)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.Equal(t, map[string]string{"area": "2"}, cfg.HeadHunter.Filters)
	assert.Equal(t, "v3.r.secret", cfg.SuperJob.Credential)
	assert.Equal(t, 50, cfg.SuperJob.PageSize)
	assert.Equal(t, int64(42), cfg.TelegramChatID)
	assert.True(t, cfg.TelegramEnabled())
}

func TestLoadFile_InvalidChatID(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_BrokenYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("languages: [unterminated"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
