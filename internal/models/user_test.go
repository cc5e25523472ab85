package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	for _, ok := range []string{"a@x.com", "jo@x.com", "first.last@sub.example.org"} {
		assert.True(t, IsValidEmail(ok), ok)
	}
	for _, bad := range []string{"", "not-an-email", "a@x", "@x.com", "a b@x.com", "a@x .com"} {
		assert.False(t, IsValidEmail(bad), bad)
	}
}

func TestUserSession_WellFormed(t *testing.T) {
	assert.True(t, UserSession{Name: "Ana", Email: "a@x.com"}.WellFormed())
	assert.False(t, UserSession{Name: "  ", Email: "a@x.com"}.WellFormed())
	assert.False(t, UserSession{Name: "Ana", Email: "nope"}.WellFormed())
	assert.False(t, UserSession{}.WellFormed())
}
