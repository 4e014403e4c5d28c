package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_STRING", "value")

	assert.Equal(t, "value", GetEnv("TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_STRING_MISSING", "fallback"))
}

func TestGetBoolEnv(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_BOOL_BAD", "not-a-bool")

	assert.True(t, GetBoolEnv("TEST_BOOL", false))
	assert.False(t, GetBoolEnv("TEST_BOOL_BAD", false))
	assert.True(t, GetBoolEnv("TEST_BOOL_MISSING", true))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_DURATION_BAD", "ninety")

	assert.Equal(t, 90*time.Second, GetDurationEnv("TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, GetDurationEnv("TEST_DURATION_BAD", time.Minute))
	assert.Equal(t, time.Minute, GetDurationEnv("TEST_DURATION_MISSING", time.Minute))
}

func TestGetSliceEnv(t *testing.T) {
	t.Setenv("TEST_SLICE", "a, b ,c")

	assert.Equal(t, []string{"a", "b", "c"}, GetSliceEnv("TEST_SLICE", nil))
	assert.Equal(t, []string{"x"}, GetSliceEnv("TEST_SLICE_MISSING", []string{"x"}))
}

func TestAdminCredentialSettings(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	assert.Empty(t, GetAdminEmail())
	assert.Empty(t, GetAdminPasswordHash())

	t.Setenv("ADMIN_EMAIL", "ops@example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$12$hash")

	assert.Equal(t, "ops@example.com", GetAdminEmail())
	assert.Equal(t, "$2a$12$hash", GetAdminPasswordHash())
}
