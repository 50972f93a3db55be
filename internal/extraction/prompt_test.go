package extraction

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskNamePrompt(t *testing.T) {
	text := `remind me to "buy milk" {soon}`
	p := TaskNamePrompt(text)

	assert.True(t, strings.HasPrefix(p, "[INST]"))
	assert.True(t, strings.HasSuffix(p, "[/INST]"))
	assert.Contains(t, p, text)
	assert.Contains(t, p, `"task"`)
	assert.Contains(t, p, "ONLY a single JSON object")
}

func TestTimestampPrompt(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	p := TimestampPrompt("dentist tomorrow at 5pm", now)

	assert.True(t, strings.HasPrefix(p, "[INST]"))
	assert.True(t, strings.HasSuffix(p, "[/INST]"))
	assert.Contains(t, p, "2024-01-01 09:00:00")
	assert.Contains(t, p, "dentist tomorrow at 5pm")
	assert.Contains(t, p, `"date"`)
	assert.Contains(t, p, "YYYY-MM-DD HH:MM:SS")
}
