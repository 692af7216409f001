package http_ratelimit_middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/movienight/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/movienight/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/movienight/internal/lib/logger/sl"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	classAnonymous     = "anonymous"
	classAuthenticated = "authenticated"
)

type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, error)
}

type Rule struct {
	Limit  int
	Window time.Duration
}

type Middleware struct {
	limiter       Limiter
	anonymous     Rule
	authenticated Rule
	rejected      *prometheus.CounterVec
	logger        *slog.Logger
}

type Option func(*Middleware)

func WithCounter(c *prometheus.CounterVec) Option {
	return func(m *Middleware) {
		m.rejected = c
	}
}

func New(limiter Limiter, anonymous, authenticated Rule, opts ...Option) *Middleware {
	m := &Middleware{
		limiter:       limiter,
		anonymous:     anonymous,
		authenticated: authenticated,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handler throttles authenticated callers by user id and everyone else by client ip.
// It must run after the auth middleware. Limiter outages let traffic through.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		class, key, rule := classAnonymous, "ip:"+ctx.ClientIP(), m.anonymous
		if user := http_auth_middleware.CurrentUser(ctx); !user.IsZero() {
			class, key, rule = classAuthenticated, "user:"+user.ID.String(), m.authenticated
		}

		allowed, remaining, err := m.limiter.Allow(ctx.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			m.logger.Warn("rate limiter unavailable", sl.Err(err))
			ctx.Next()
			return
		}

		ctx.Header("X-RateLimit-Limit", strconv.Itoa(rule.Limit))
		ctx.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			if m.rejected != nil {
				m.rejected.WithLabelValues(class).Inc()
			}
			ctx.Header("Retry-After", strconv.Itoa(int(rule.Window.Seconds())))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, http_common.ErrorResponse{
				Code:    http_common.CodeRateLimited,
				Message: "too many requests",
			})
			return
		}
		ctx.Next()
	}
}
