package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already canonical", "user@example.com", "user@example.com"},
		{"uppercase folded", "User@Example.COM", "user@example.com"},
		{"surrounding whitespace trimmed", "  user@example.com \t", "user@example.com"},
		{"both", " USER@EXAMPLE.COM ", "user@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeEmail(tt.input))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	s := &AuthService{}

	assert.NoError(t, s.validatePassword("abcdef12"))
	assert.Error(t, s.validatePassword("short1"), "too short")
	assert.Error(t, s.validatePassword("12345678"), "no letter")
	assert.Error(t, s.validatePassword("abcdefgh"), "no digit")
}
