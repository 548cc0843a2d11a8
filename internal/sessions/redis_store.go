package sessions

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

type RedisStore struct {
	client rueidis.Client
	prefix string
}

func NewRedisStore(client rueidis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStore) Create(ctx context.Context, token, username string, ttl time.Duration) error {
	cmd := s.client.B().Set().Key(s.prefix + token).Value(username).Ex(ttl).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *RedisStore) Get(ctx context.Context, token string) (string, error) {
	cmd := s.client.B().Get().Key(s.prefix + token).Build()
	username, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return "", ErrSessionNotFound
		}
		return "", err
	}

	return username, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	cmd := s.client.B().Del().Key(s.prefix + token).Build()
	return s.client.Do(ctx, cmd).Error()
}
