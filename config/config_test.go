package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	cfg := map[string]string{
		"PORT":  "9090",
		"EMPTY": "",
	}

	assert.Equal(t, "9090", GetString(cfg, "PORT", "8080"))
	assert.Equal(t, "8080", GetString(cfg, "MISSING", "8080"))
	// an empty value counts as unset
	assert.Equal(t, "fallback", GetString(cfg, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{
		"TIMEOUT": "45",
		"BAD":     "forty-five",
	}

	assert.Equal(t, 45, GetInt(cfg, "TIMEOUT", 60))
	assert.Equal(t, 60, GetInt(cfg, "MISSING", 60))
	assert.Equal(t, 60, GetInt(cfg, "BAD", 60))
}

func TestGetBool(t *testing.T) {
	cfg := map[string]string{
		"ENABLED":  "true",
		"DISABLED": "0",
		"BAD":      "yes please",
	}

	assert.True(t, GetBool(cfg, "ENABLED", false))
	assert.False(t, GetBool(cfg, "DISABLED", true))
	assert.True(t, GetBool(cfg, "BAD", true))
	assert.False(t, GetBool(cfg, "MISSING", false))
}

func TestSplit(t *testing.T) {
	key, value := split("DATABASE_URL=postgres://localhost:5432/app")
	assert.Equal(t, "DATABASE_URL", key)
	assert.Equal(t, "postgres://localhost:5432/app", value)

	key, value = split("FLAG")
	assert.Equal(t, "FLAG", key)
	assert.Equal(t, "", value)

	// values containing '=' keep everything after the first one
	_, value = split("OPTS=a=b=c")
	assert.Equal(t, "a=b=c", value)
}
