package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_ENV_VAR", "set-value")

	assert.Equal(t, "set-value", GetEnvOrDefault("TEST_ENV_VAR", "default"))
	assert.Equal(t, "default", GetEnvOrDefault("TEST_ENV_VAR_MISSING", "default"))
}

func TestParseInteger(t *testing.T) {
	assert.Equal(t, 42, ParseInteger("42", 0))
	assert.Equal(t, 7, ParseInteger("", 7))
	assert.Equal(t, 7, ParseInteger("not a number", 7))
	assert.Equal(t, -3, ParseInteger("-3", 0))
}

func TestParseBoolean(t *testing.T) {
	assert.True(t, ParseBoolean("true", false))
	assert.False(t, ParseBoolean("false", true))
	assert.True(t, ParseBoolean("1", false))
	assert.True(t, ParseBoolean("", true))
	assert.False(t, ParseBoolean("not a bool", false))
}

func TestParseArray(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseArray("a,b,c"))
	assert.Equal(t, []string{"a", "b"}, ParseArray(" a , b "))
	assert.Equal(t, []string{"a"}, ParseArray("a,,"))
	assert.Nil(t, ParseArray(""))
}
