// internal/common/events/publisher.go
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"activity-service/internal/common/config"
	"activity-service/internal/common/logger"
)

const (
	TypeSignup     = "signup"
	TypeUnregister = "unregister"
)

// Event is the payload announced on the pub/sub channel after a
// successful mutation. It carries no registry state beyond the pair
// that changed.
type Event struct {
	Type     string    `json:"type"`
	Activity string    `json:"activity"`
	Email    string    `json:"email"`
	At       time.Time `json:"at"`
}

// Publisher announces signup/unregister events on Redis pub/sub.
// A nil or disabled Publisher is a no-op; publish failures are logged
// and never surfaced to the caller.
type Publisher struct {
	client  *redis.Client
	channel string
	logger  logger.Logger
}

// New builds a Publisher from config. Returns a no-op publisher when
// events are disabled.
func New(cfg config.EventsConfig, log logger.Logger) *Publisher {
	if !cfg.Enabled {
		return &Publisher{logger: log}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Address,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	return &Publisher{
		client:  client,
		channel: cfg.Channel,
		logger:  log,
	}
}

// NewWithClient wires an existing Redis client; used by tests.
func NewWithClient(client *redis.Client, channel string, log logger.Logger) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
		logger:  log,
	}
}

// Ping tests the Redis connection. No-op publishers always succeed.
func (p *Publisher) Ping(ctx context.Context) error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Ping(ctx).Err()
}

// Publish announces one event. Best effort only.
func (p *Publisher) Publish(ctx context.Context, eventType, activity, email string) {
	if p == nil || p.client == nil {
		return
	}

	evt := Event{
		Type:     eventType,
		Activity: activity,
		Email:    email,
		At:       time.Now().UTC(),
	}
	data, err := json.Marshal(evt)
	if err != nil {
		p.logger.Error("failed to marshal event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
		return
	}

	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		p.logger.Error("failed to publish event", map[string]interface{}{
			"type":     eventType,
			"activity": activity,
			"channel":  p.channel,
			"error":    err.Error(),
		})
	}
}

// Close closes the underlying Redis connection.
func (p *Publisher) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}
