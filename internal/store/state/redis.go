package state

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	configKey   = "escolar:state:config"
	studentsKey = "escolar:state:students"
)

// RedisStore keeps the snapshot in two Redis keys.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load reads both keys. Absent or unparsable values yield ErrNoState.
func (s *RedisStore) Load(ctx context.Context) (*Snapshot, error) {
	if s.client == nil {
		return nil, ErrNoState
	}

	snap := &Snapshot{}

	rawCfg, err := s.client.Get(ctx, configKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoState
		}
		return nil, fmt.Errorf("redis get %s: %w", configKey, err)
	}
	if err := json.Unmarshal(rawCfg, &snap.Config); err != nil {
		return nil, ErrNoState
	}

	rawStudents, err := s.client.Get(ctx, studentsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoState
		}
		return nil, fmt.Errorf("redis get %s: %w", studentsKey, err)
	}
	if err := json.Unmarshal(rawStudents, &snap.Students); err != nil {
		return nil, ErrNoState
	}

	return snap, nil
}

// Save writes both keys without expiry; this is durable state, not cache.
func (s *RedisStore) Save(ctx context.Context, snap *Snapshot) error {
	if s.client == nil {
		return nil
	}

	rawCfg, err := json.Marshal(snap.Config)
	if err != nil {
		return fmt.Errorf("marshal config state: %w", err)
	}
	rawStudents, err := json.Marshal(snap.Students)
	if err != nil {
		return fmt.Errorf("marshal students state: %w", err)
	}

	if err := s.client.Set(ctx, configKey, rawCfg, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", configKey, err)
	}
	if err := s.client.Set(ctx, studentsKey, rawStudents, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", studentsKey, err)
	}

	return nil
}
