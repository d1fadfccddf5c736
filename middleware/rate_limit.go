package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/disparador-app/disparador_api/model"
	"github.com/disparador-app/disparador_api/shared"
)

// CounterStore is the fixed-window counter surface, served by redis.
type CounterStore interface {
	Increment(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) error
}

// DefaultConfigs bounds each sensitive endpoint type.
func DefaultConfigs() map[string]*model.RateLimitConfig {
	return map[string]*model.RateLimitConfig{
		// Device session creation - prevent device ID spam
		"session_create": {
			EndpointType: "session_create",
			MaxRequests:  5,
			WindowSize:   time.Minute * 15,
			Description:  "Device session creation rate limit",
		},

		// Session completion - prevent rapid fire completions
		"session_complete": {
			EndpointType: "session_complete",
			MaxRequests:  30,
			WindowSize:   time.Hour,
			Description:  "Session completion rate limit",
		},

		// AI breakdown - the expensive call
		"breakdown": {
			EndpointType: "breakdown",
			MaxRequests:  20,
			WindowSize:   time.Hour,
			Description:  "AI task breakdown rate limit",
		},

		// AI victory title
		"victory_title": {
			EndpointType: "victory_title",
			MaxRequests:  20,
			WindowSize:   time.Hour,
			Description:  "AI victory title rate limit",
		},
	}
}

// RateLimit enforces a fixed-window limit per device (or client IP before
// auth). A broken counter store lets requests through rather than blocking
// the product on redis availability.
func RateLimit(store CounterStore, cfg *model.RateLimitConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, _ := c.Locals(shared.DeviceID).(string)
		if caller == "" {
			caller = c.IP()
		}

		key := fmt.Sprintf("rl:%s:%s", cfg.EndpointType, caller)

		count, err := store.Increment(c.Context(), key)
		if err != nil {
			log.WithFields(log.Fields{"endpoint": cfg.EndpointType, "error": err.Error()}).
				Warn("Rate limit counter unavailable, allowing request")
			return c.Next()
		}

		if count == 1 {
			if err := store.Expire(c.Context(), key, cfg.WindowSize); err != nil {
				log.Printf("Failed to set rate limit window for %s: %v", key, err)
			}
		}

		if count > int64(cfg.MaxRequests) {
			return shared.ResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", fiber.Map{
				"endpoint":    cfg.EndpointType,
				"retry_after": cfg.WindowSize.Seconds(),
			})
		}

		return c.Next()
	}
}
