package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/repositories"
)

type MembershipServiceInterface interface {
	TeamIDs(ctx context.Context, userID uint64) ([]uint64, error)
	Invalidate(ctx context.Context, userIDs ...uint64)
}

// MembershipService answers "which teams does this user belong to" with a
// short-lived redis cache in front of the membership table. Visibility checks
// hit this on every technician-scoped read, so the cache keeps the hot path
// off postgres.
type MembershipService struct {
	userRepo repositories.UserRepositoryInterface
	cache    repositories.CacheRepositoryInterface
	ttl      time.Duration
	logger   *zap.Logger
}

func NewMembershipService(
	userRepo repositories.UserRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	ttl time.Duration,
	logger *zap.Logger,
) MembershipServiceInterface {
	return &MembershipService{userRepo: userRepo, cache: cache, ttl: ttl, logger: logger}
}

func membershipKey(userID uint64) string {
	return fmt.Sprintf("membership:user:%d", userID)
}

func (s *MembershipService) TeamIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	key := membershipKey(userID)

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		var ids []uint64
		if err := json.Unmarshal([]byte(cached), &ids); err == nil {
			return ids, nil
		}
		// Unreadable entries are dropped and refetched.
		_ = s.cache.Del(ctx, key)
	} else if !errors.Is(err, repositories.ErrCacheMiss) {
		s.logger.Warn("membership cache read failed", zap.Uint64("userId", userID), zap.Error(err))
	}

	ids, err := s.userRepo.TeamIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uint64{}
	}

	if encoded, err := json.Marshal(ids); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded), s.ttl); err != nil {
			s.logger.Warn("membership cache write failed", zap.Uint64("userId", userID), zap.Error(err))
		}
	}
	return ids, nil
}

// Invalidate drops cached memberships after a roster change. Cache errors are
// logged and swallowed; the entries expire on their own anyway.
func (s *MembershipService) Invalidate(ctx context.Context, userIDs ...uint64) {
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, membershipKey(id))
	}
	if err := s.cache.Del(ctx, keys...); err != nil {
		s.logger.Warn("membership cache invalidation failed", zap.Error(err))
	}
}
