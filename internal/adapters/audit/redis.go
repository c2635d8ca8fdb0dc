package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"hotel_desk/internal/adapters/observability"
)

// RedisSink RPUSHes timestamped lines onto a list, so the audit trail can be
// collected off the box running the desk.
type RedisSink struct {
	c   *redis.Client
	key string
}

func NewRedis(addr, pass string, db int, key string) *RedisSink {
	return &RedisSink{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		key: key,
	}
}

func (s *RedisSink) Append(ctx context.Context, line string) error {
	entry := fmt.Sprintf("%s - %s", time.Now().Format(stampLayout), line)
	if err := s.c.RPush(ctx, s.key, entry).Err(); err != nil {
		observability.ObserveAudit("redis", "error")
		log.Error().Err(err).Str("key", s.key).Msg("audit redis append failed")
		return err
	}
	observability.ObserveAudit("redis", "append")
	return nil
}

func (s *RedisSink) Close() error { return s.c.Close() }
