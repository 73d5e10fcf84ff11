package analytics

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/securewithdom/Dom-Creator-Dashboard/internal/db"
	"github.com/securewithdom/Dom-Creator-Dashboard/internal/platform"

	"github.com/redis/go-redis/v9"
)

// Provider results are cached so the real platform APIs, once wired in,
// do not get hammered on every dashboard load.
const cacheTTL = 5 * time.Minute

type Service struct {
	db       db.Querier
	redis    *redis.Client
	provider Provider
}

func NewService(db db.Querier, redisClient *redis.Client, provider Provider) *Service {
	return &Service{db: db, redis: redisClient, provider: provider}
}

// Dashboard assembles a snapshot for every platform. Metrics come from the
// provider (through the Redis cache when available); scheduled-post counts
// are always read live from Postgres.
func (s *Service) Dashboard(ctx context.Context) (map[platform.Platform]Snapshot, error) {
	out := make(map[platform.Platform]Snapshot, len(platform.All()))
	for _, p := range platform.All() {
		m, err := s.metrics(ctx, p)
		if err != nil {
			return nil, err
		}

		count, err := s.countScheduled(ctx, p)
		if err != nil {
			return nil, err
		}

		info := p.Info()
		out[p] = Snapshot{
			Name:           info.Name,
			Color:          info.Color,
			Followers:      m.Followers,
			Views7d:        m.Views7d,
			PostsScheduled: count,
			TopPosts:       m.TopPosts,
		}
	}
	return out, nil
}

func (s *Service) metrics(ctx context.Context, p platform.Platform) (Metrics, error) {
	key := cacheKey(p)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, key).Bytes(); err == nil {
			var m Metrics
			if err := json.Unmarshal(cached, &m); err == nil {
				return m, nil
			}
		}
	}

	m, err := s.provider.Metrics(ctx, p)
	if err != nil {
		return Metrics{}, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(m); err == nil {
			if err := s.redis.Set(ctx, key, data, cacheTTL).Err(); err != nil {
				log.Printf("analytics cache write error: %v", err)
			}
		}
	}
	return m, nil
}

func (s *Service) countScheduled(ctx context.Context, p platform.Platform) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM scheduled_posts WHERE platform=$1 AND NOT is_posted
	`, p).Scan(&count)
	return count, err
}

func cacheKey(p platform.Platform) string {
	return "analytics:" + string(p)
}
