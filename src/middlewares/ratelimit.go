package middlewares

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sbs/src/lib"
)

// RateLimit counts requests per client IP in redis. Without redis the
// limiter fails open; the contact form is the only consumer and losing the
// limit is better than losing the intake.
func RateLimit(limit int64, window time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rdb := lib.GetRedisClient()
		if rdb == nil {
			return
		}
		key := fmt.Sprintf("ratelimit:%s:%s", ctx.FullPath(), ctx.ClientIP())
		count, err := rdb.Incr(context.Background(), key).Result()
		if err != nil {
			log.Printf("[ratelimit] Error counting requests: %s\n", err.Error())
			return
		}
		if count == 1 {
			rdb.Expire(context.Background(), key, window)
		}
		if count > limit {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		}
	}
}
