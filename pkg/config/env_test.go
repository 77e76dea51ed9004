package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")

	assert.Equal(t, "value", GetEnvString("TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnvString("TEST_STRING_MISSING", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{name: "valid integer", value: "42", expected: 42},
		{name: "negative integer", value: "-7", expected: -7},
		{name: "invalid falls back to default", value: "not-a-number", expected: 10},
		{name: "empty falls back to default", value: "", expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			assert.Equal(t, tt.expected, GetEnvInt("TEST_INT", 10))
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      bool
		expected bool
	}{
		{name: "true", value: "true", def: false, expected: true},
		{name: "numeric true", value: "1", def: false, expected: true},
		{name: "false", value: "false", def: true, expected: false},
		{name: "invalid keeps default", value: "yes", def: false, expected: false},
		{name: "empty keeps default", value: "", def: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			assert.Equal(t, tt.expected, GetEnvBool("TEST_BOOL", tt.def))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "not-a-duration")
	assert.Equal(t, time.Minute, GetEnvDuration("TEST_DURATION", time.Minute))
}

func TestGetEnvStringList(t *testing.T) {
	t.Setenv("TEST_LIST", "a, b ,c,,")
	assert.Equal(t, []string{"a", "b", "c"}, GetEnvStringList("TEST_LIST", nil))

	t.Setenv("TEST_LIST", " , ")
	assert.Equal(t, []string{"fallback"}, GetEnvStringList("TEST_LIST", []string{"fallback"}))
}
