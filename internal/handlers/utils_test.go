package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTokenFromCookie(t *testing.T) {
	assert.Equal(t, "abc123", extractTokenFromCookie("auth_token=abc123"))
	assert.Equal(t, "abc123", extractTokenFromCookie("other=x; auth_token=abc123; more=y"))
	assert.Equal(t, "", extractTokenFromCookie("other=x"))
	assert.Equal(t, "", extractTokenFromCookie(""))
}
