package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher appends each message to a stream as a {"body": message} entry.
type RedisPublisher struct {
	redis   *redis.Client
	stream  string
	timeout time.Duration
}

func NewRedisPublisher(cfg Config) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	return &RedisPublisher{
		redis:   redis.NewClient(opt),
		stream:  cfg.StreamName,
		timeout: cfg.PublishTimeout(),
	}, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, message string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{"body": message},
	}).Err()
}

func (p *RedisPublisher) Close() error {
	return p.redis.Close()
}
