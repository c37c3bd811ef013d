package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	editKeyPrefix  = "project:edit:"
	shareKeyPrefix = "project:share:"

	// expiredGrace keeps records readable past ExpiresAt so lookups can
	// answer 410 instead of 404 for a while after expiry.
	expiredGrace = 72 * time.Hour
)

// RedisStore persists projects in Redis. The full record lives under the
// edit token; the share slug is an indirection key pointing at the token.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) ttlFor(project *Project) time.Duration {
	if project.ExpiresAt.IsZero() {
		return 0
	}
	ttl := time.Until(project.ExpiresAt) + expiredGrace
	if ttl <= 0 {
		ttl = time.Minute
	}
	return ttl
}

func (s *RedisStore) Create(ctx context.Context, project *Project) error {
	raw, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	ttl := s.ttlFor(project)
	if err := s.client.Set(ctx, editKeyPrefix+project.EditToken, raw, ttl).Err(); err != nil {
		return fmt.Errorf("store project: %w", err)
	}
	if err := s.client.Set(ctx, shareKeyPrefix+project.ShareSlug, project.EditToken, ttl).Err(); err != nil {
		return fmt.Errorf("store share slug: %w", err)
	}
	return nil
}

func (s *RedisStore) GetByEditToken(ctx context.Context, token string) (*Project, error) {
	raw, err := s.client.Get(ctx, editKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	var project Project
	if err := json.Unmarshal(raw, &project); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	if project.Expired(time.Now()) {
		return &project, ErrExpired
	}
	return &project, nil
}

func (s *RedisStore) GetByShareSlug(ctx context.Context, slug string) (*Project, error) {
	token, err := s.client.Get(ctx, shareKeyPrefix+slug).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve share slug: %w", err)
	}
	return s.GetByEditToken(ctx, token)
}

func (s *RedisStore) UpdateSite(ctx context.Context, project *Project) error {
	key := editKeyPrefix + project.EditToken
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("check project: %w", err)
	}
	if exists == 0 {
		return ErrNotFound
	}
	raw, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	if err := s.client.Set(ctx, key, raw, s.ttlFor(project)).Err(); err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}
