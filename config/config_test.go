package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Setenv("HF_TOKEN", "hf_from_env")
	path := writeConfig(t, `
http_server:
  port: 9090
database:
  path: /tmp/atrova-test.db
telegram:
  bot_token: "123:abc"
  mode: polling
llm:
  providers:
    - name: huggingface
      enabled: true
      priority: 1
      api_key: ${HF_TOKEN}
      model: meta-llama/Llama-3.2-3B-Instruct
    - name: gemini
      enabled: false
      priority: 2
      api_key: g-key
      model: gemini-2.5-flash
extraction:
  timeout: 10s
  scanner: balanced
  timezone: UTC
reminder:
  lookahead: 30m
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTPServer.AllowedOrigins)
	assert.Equal(t, "/tmp/atrova-test.db", cfg.Database.Path)
	assert.Equal(t, "polling", cfg.Telegram.Mode)

	require.Len(t, cfg.LLM.Providers, 2)
	assert.Equal(t, "hf_from_env", cfg.LLM.Providers[0].APIKey)
	assert.False(t, cfg.LLM.Providers[1].Enabled)
	assert.False(t, cfg.LLM.FallbackEnabled)
	assert.Equal(t, 1, cfg.LLM.RetryAttempts)

	assert.Equal(t, 10*time.Second, cfg.Extraction.Timeout)
	assert.Equal(t, "balanced", cfg.Extraction.Scanner)
	assert.Equal(t, "UTC", cfg.Extraction.Timezone)
	assert.Equal(t, time.Minute, cfg.Reminder.Interval)
	assert.Equal(t, 30*time.Minute, cfg.Reminder.Lookahead)
	assert.Equal(t, 30, cfg.RateLimit.PerMin)
}

func TestLoadFile_HuggingFaceKeyOnly(t *testing.T) {
	t.Setenv("HUGGINGFACE_API_KEY", "hf_only")
	path := writeConfig(t, "environment:\n  name: test\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cfg.LLM.Providers, 1)
	assert.Equal(t, "huggingface", cfg.LLM.Providers[0].Name)
	assert.Equal(t, DefaultHuggingFaceModel, cfg.LLM.Providers[0].Model)
	assert.Equal(t, "hf_only", cfg.LLM.Providers[0].APIKey)
	assert.Equal(t, 30*time.Second, cfg.Extraction.Timeout)
	assert.Equal(t, "first_brace", cfg.Extraction.Scanner)
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Setenv("HUGGINGFACE_API_KEY", "")

	tests := []struct {
		name string
		body string
	}{
		{"no providers", "environment:\n  name: test\n"},
		{"duplicate priority", `
llm:
  providers:
    - {name: qwen, enabled: true, priority: 1, api_key: a, model: qwen-plus}
    - {name: gemini, enabled: true, priority: 1, api_key: b, model: gemini-2.5-flash}
`},
		{"unknown scanner", `
llm:
  providers:
    - {name: qwen, enabled: true, priority: 1, api_key: a, model: qwen-plus}
extraction:
  scanner: greedy
`},
		{"bad timezone", `
llm:
  providers:
    - {name: qwen, enabled: true, priority: 1, api_key: a, model: qwen-plus}
extraction:
  timezone: Mars/Olympus
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, splitList([]string{"http://a, http://b", " "}))
	assert.Nil(t, splitList(nil))
}
