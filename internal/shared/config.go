package shared

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv       string
	HotelName    string
	AuditBackend string // file | redis
	AuditLogPath string
	RedisAddr    string
	RedisPass    string
	RedisDB      int
	AuditListKey string
	OpsAddr      string // empty disables the ops endpoint
	Loyalty      bool
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	abool := func(k string, def bool) bool {
		if v := os.Getenv(k); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				return b
			}
		}
		return def
	}
	c := Config{
		AppEnv:       env("APP_ENV", "prod"),
		HotelName:    env("HOTEL_NAME", "Tbilisi Paradise"),
		AuditBackend: env("AUDIT_BACKEND", "file"),
		AuditLogPath: env("AUDIT_LOG_PATH", "hotel_log.txt"),
		RedisAddr:    env("REDIS_ADDR", "localhost:6379"),
		RedisPass:    env("REDIS_PASSWORD", ""),
		RedisDB:      atoi("REDIS_DB", 0),
		AuditListKey: env("AUDIT_REDIS_KEY", "hoteldesk:audit"),
		OpsAddr:      env("OPS_ADDR", ""),
		Loyalty:      abool("LOYALTY_ENABLED", true),
	}
	if c.AuditBackend != "file" && c.AuditBackend != "redis" {
		log.Warn().Str("backend", c.AuditBackend).Msg("unknown AUDIT_BACKEND, falling back to file")
		c.AuditBackend = "file"
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
