package middleware

import (
	"net/http"
	"strconv"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"

	"juggle-backend/internal/utilities"
)

// DefaultRequestsPerSecond is used when no positive rate is configured.
const DefaultRequestsPerSecond = 5

func keyFunc(c *gin.Context) string {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		return "ip: " + c.ClientIP()
	}
	return "user: " + user.ID.String()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.Header("Retry-After", strconv.Itoa(int(time.Until(info.ResetTime).Seconds())+1))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, utilities.ErrorResponse{
		Error: "Too many requests. Please try again later.",
	})
}

// RateLimiterMiddleware allows reqPerSec requests per second per user, or per client IP before
// authentication.
func RateLimiterMiddleware(reqPerSec uint) gin.HandlerFunc {
	if reqPerSec == 0 {
		reqPerSec = DefaultRequestsPerSecond
	}

	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: reqPerSec,
	})

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		KeyFunc:      keyFunc,
		ErrorHandler: errorHandler,
	})
}
