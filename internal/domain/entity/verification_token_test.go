package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerificationToken_IsExpired(t *testing.T) {
	now := time.Now()
	token := &VerificationToken{
		Email:     "alice@x.com",
		Token:     "123456",
		ExpiresAt: now.Add(10 * time.Minute),
	}

	assert.False(t, token.IsExpired(now))
	assert.False(t, token.IsExpired(now.Add(9*time.Minute)))
	assert.True(t, token.IsExpired(now.Add(11*time.Minute)))
}
