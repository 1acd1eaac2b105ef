package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")
)

// Options addresses a single Redis node.
type Options struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// IRedis is the hash and pub/sub surface the session store needs.
// Implementations are safe for concurrent use.
type IRedis interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	// HSetWithTTL writes fields and refreshes the key TTL in one transaction. A zero ttl leaves it unchanged.
	HSetWithTTL(ctx context.Context, key string, fields map[string]string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	Publish(ctx context.Context, channel string, payload []byte) error
	// Subscribe returns once the server confirmed the subscription. The caller closes it.
	Subscribe(ctx context.Context, channel string) (*goredis.PubSub, error)

	Ping(ctx context.Context) error
	Close() error
}

// New builds a client. It does not dial; call Ping to verify the connection.
func New(opt Options) (IRedis, error) {
	if opt.Host == "" {
		return nil, ErrHostRequired
	}
	if opt.Port <= 0 || opt.Port > 65535 {
		return nil, ErrInvalidPort
	}
	return &redisImpl{client: goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", opt.Host, opt.Port),
		Password: opt.Password,
		DB:       opt.DB,
	})}, nil
}
