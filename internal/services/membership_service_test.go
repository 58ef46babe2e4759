package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/repositories"
)

func TestMembershipService_TeamIDs(t *testing.T) {
	ttl := 10 * time.Minute

	t.Run("cache hit skips postgres", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		cache := new(MockCacheRepository)
		cache.On("Get", mock.Anything, "membership:user:2").Return("[4,5]", nil)
		svc := NewMembershipService(userRepo, cache, ttl, zap.NewNop())

		ids, err := svc.TeamIDs(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, []uint64{4, 5}, ids)
		userRepo.AssertNotCalled(t, "TeamIDs", mock.Anything, mock.Anything)
	})

	t.Run("cache miss falls through and populates the cache", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		cache := new(MockCacheRepository)
		cache.On("Get", mock.Anything, "membership:user:2").Return("", repositories.ErrCacheMiss)
		userRepo.On("TeamIDs", mock.Anything, uint64(2)).Return([]uint64{4}, nil)
		cache.On("Set", mock.Anything, "membership:user:2", "[4]", ttl).Return(nil)
		svc := NewMembershipService(userRepo, cache, ttl, zap.NewNop())

		ids, err := svc.TeamIDs(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, []uint64{4}, ids)
		cache.AssertExpectations(t)
	})

	t.Run("membership-less user caches an empty list", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		cache := new(MockCacheRepository)
		cache.On("Get", mock.Anything, "membership:user:7").Return("", repositories.ErrCacheMiss)
		userRepo.On("TeamIDs", mock.Anything, uint64(7)).Return([]uint64{}, nil)
		cache.On("Set", mock.Anything, "membership:user:7", "[]", ttl).Return(nil)
		svc := NewMembershipService(userRepo, cache, ttl, zap.NewNop())

		ids, err := svc.TeamIDs(context.Background(), 7)

		require.NoError(t, err)
		assert.Empty(t, ids)
		assert.NotNil(t, ids)
	})
}

func TestMembershipService_Invalidate(t *testing.T) {
	userRepo := new(MockUserRepository)
	cache := new(MockCacheRepository)
	cache.On("Del", mock.Anything, []string{"membership:user:2", "membership:user:3"}).Return(nil)
	svc := NewMembershipService(userRepo, cache, time.Minute, zap.NewNop())

	svc.Invalidate(context.Background(), 2, 3)

	cache.AssertExpectations(t)
}
