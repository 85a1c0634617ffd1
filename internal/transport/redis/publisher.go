package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/checkers/internal/entity"
)

var ErrEmptyChannel = errors.New("redis channel is empty")

// Publisher - pushes move events to a Redis pub/sub channel.
type Publisher struct {
	client  *redis.Client
	channel string
}

// New - connects to Redis and checks the connection.
func New(ctx context.Context, addr, channel string) (*Publisher, error) {
	if channel == "" {
		return nil, ErrEmptyChannel
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewWithClient(rdb, channel), nil
}

// NewWithClient - wraps an already connected client.
func NewWithClient(client *redis.Client, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

func (that *Publisher) Channel() string {
	return that.channel
}

// Publish - sends the event as JSON.
func (that *Publisher) Publish(ctx context.Context, event entity.MoveEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal move event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish move event: %w", err)
	}

	return nil
}

func (that *Publisher) Close() error {
	return that.client.Close()
}
