package usecases

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"intern-hub.backend/internal/domain/repositories"
	"intern-hub.backend/pkg/logger"
	"intern-hub.backend/pkg/redis"
)

const (
	statsCacheKey = "admin:directory_stats"
	statsCacheTTL = time.Minute
)

// StatsUsecase computes the admin dashboard counters, cached in Redis
// so repeated dashboard loads skip the aggregate queries. Without Redis
// every call hits the database.
type StatsUsecase struct {
	profileRepo repositories.ProfileRepository
}

// NewStatsUsecase creates a new stats usecase
func NewStatsUsecase(profileRepo repositories.ProfileRepository) *StatsUsecase {
	return &StatsUsecase{profileRepo: profileRepo}
}

// Get returns the cached stats snapshot, computing on a cache miss
func (u *StatsUsecase) Get(ctx context.Context) (*repositories.DirectoryStats, error) {
	if redis.Available() {
		if cached, err := redis.Get(ctx, statsCacheKey); err == nil {
			var stats repositories.DirectoryStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}
	return u.compute(ctx)
}

// Refresh recomputes the snapshot and rewrites the cache. The stats
// job calls this on a timer; without Redis there is no cache to keep
// warm, so the aggregate queries are skipped entirely.
func (u *StatsUsecase) Refresh(ctx context.Context) error {
	if !redis.Available() {
		return nil
	}
	_, err := u.compute(ctx)
	return err
}

func (u *StatsUsecase) compute(ctx context.Context) (*repositories.DirectoryStats, error) {
	since := time.Now().Add(-24 * time.Hour)
	stats, err := u.profileRepo.Stats(ctx, since)
	if err != nil {
		return nil, err
	}

	if redis.Available() {
		if payload, err := json.Marshal(stats); err == nil {
			if err := redis.Set(ctx, statsCacheKey, payload, statsCacheTTL); err != nil {
				logger.Warn(ctx, "stats cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}
