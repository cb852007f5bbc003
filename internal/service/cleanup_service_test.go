package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCleanupService_RunOnce(t *testing.T) {
	codes := new(MockVerificationTokenRepository)
	pendingRepo := new(MockPendingUserRepository)

	svc, err := NewCleanupService(codes, pendingRepo, 24*time.Hour)
	require.NoError(t, err)

	codes.On("DeleteExpired", mock.Anything).Return(int64(3), nil)
	pendingRepo.On("DeleteOlderThan", mock.MatchedBy(func(cutoff time.Time) bool {
		// The cutoff is roughly now minus the pending TTL.
		expected := time.Now().Add(-24 * time.Hour)
		return cutoff.After(expected.Add(-time.Minute)) && cutoff.Before(expected.Add(time.Minute))
	})).Return(int64(1), nil)

	err = svc.RunOnce()

	require.NoError(t, err)
	codes.AssertExpectations(t)
	pendingRepo.AssertExpectations(t)
}

func TestCleanupService_DefaultTTL(t *testing.T) {
	codes := new(MockVerificationTokenRepository)
	pendingRepo := new(MockPendingUserRepository)

	svc, err := NewCleanupService(codes, pendingRepo, 0)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.pendingTTL)
}
