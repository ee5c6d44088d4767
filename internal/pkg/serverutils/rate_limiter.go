package serverutils

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// NewRateLimiter builds a fixed-window limiter over redis: one counter per
// client ip per window. A nil client disables limiting (local development
// without redis).
func NewRateLimiter(rdb *redis.Client, max int, window time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if rdb == nil {
			return ctx.Next()
		}

		windowStart := time.Now().Unix() / int64(window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%d", ctx.IP(), windowStart)

		count, err := rdb.Incr(ctx.Context(), key).Result()
		if err != nil {
			// Redis being down should not take the API with it.
			return ctx.Next()
		}
		if count == 1 {
			rdb.Expire(ctx.Context(), key, window)
		}

		if count > int64(max) {
			return ctx.Status(fiber.StatusTooManyRequests).
				JSON(ErrorResponse(fiber.StatusTooManyRequests, "Too many requests, please try again later"))
		}

		return ctx.Next()
	}
}
