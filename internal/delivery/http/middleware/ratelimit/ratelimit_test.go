package http_ratelimit_middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_auth_middleware "github.com/humanbelnik/movienight/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/movienight/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type countingLimiter struct {
	hits map[string]int
	err  error
}

func (l *countingLimiter) Allow(_ context.Context, key string, limit int, _ time.Duration) (bool, int, error) {
	if l.err != nil {
		return false, 0, l.err
	}
	l.hits[key]++
	remaining := limit - l.hits[key]
	if remaining < 0 {
		remaining = 0
	}
	return l.hits[key] <= limit, remaining, nil
}

type RateLimitSuite struct {
	suite.Suite
}

func newEngine(limiter Limiter, user *model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	if user != nil {
		engine.Use(func(ctx *gin.Context) {
			ctx.Set(http_auth_middleware.ContextUserKey, *user)
		})
	}
	m := New(limiter, Rule{Limit: 2, Window: time.Hour}, Rule{Limit: 3, Window: time.Hour})
	engine.Use(m.Handler())
	engine.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	return engine
}

func hit(engine *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	return w
}

func (s *RateLimitSuite) TestAnonymousTier(t provider.T) {
	engine := newEngine(&countingLimiter{hits: map[string]int{}}, nil)

	assert.Equal(t, http.StatusOK, hit(engine).Code)
	assert.Equal(t, http.StatusOK, hit(engine).Code)
	w := hit(engine)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3600", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limited")
}

func (s *RateLimitSuite) TestAuthenticatedTier(t provider.T) {
	user := model.User{ID: uuid.New(), Email: "a@example.com"}
	limiter := &countingLimiter{hits: map[string]int{}}
	engine := newEngine(limiter, &user)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(engine).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(engine).Code)
	assert.Equal(t, 4, limiter.hits["user:"+user.ID.String()])
}

func (s *RateLimitSuite) TestFailsOpen(t provider.T) {
	engine := newEngine(&countingLimiter{err: errors.New("redis: connection refused")}, nil)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(engine).Code)
	}
}

func TestRateLimitSuite(t *testing.T) {
	suite.RunSuite(t, new(RateLimitSuite))
}
