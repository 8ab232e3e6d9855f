package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	assert.Equal(t, zerolog.WarnLevel, New().GetLevel())
}

func TestNew_DefaultsToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	assert.Equal(t, zerolog.InfoLevel, New().GetLevel())

	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, zerolog.InfoLevel, New().GetLevel())
}
