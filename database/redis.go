package database

import (
	"context"
	"time"

	"club_cinema/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr: config.Config("REDIS_ADDR"),
	})
}

// SessionStorage adapts the shared Redis client to fiber's session storage
// interface, so session state survives process restarts when SESSION_STORE
// is set to redis.
type SessionStorage struct {
	Prefix string
}

func (s *SessionStorage) Get(key string) ([]byte, error) {
	val, err := Redis.Get(context.Background(), s.Prefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return val, err
}

func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	return Redis.Set(context.Background(), s.Prefix+key, val, exp).Err()
}

func (s *SessionStorage) Delete(key string) error {
	return Redis.Del(context.Background(), s.Prefix+key).Err()
}

func (s *SessionStorage) Reset() error {
	iter := Redis.Scan(context.Background(), 0, s.Prefix+"*", 0).Iterator()
	for iter.Next(context.Background()) {
		if err := Redis.Del(context.Background(), iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close is a no-op: the client is shared with the reservation live feed
// and outlives the session store.
func (s *SessionStorage) Close() error {
	return nil
}
