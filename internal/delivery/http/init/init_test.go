package http_init

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingController struct{}

func (pingController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ping", func(ctx *gin.Context) { ctx.String(http.StatusOK, "pong") })
}

type ControllerPoolSuite struct {
	suite.Suite
}

func (s *ControllerPoolSuite) TestRouting(t provider.T) {
	gin.SetMode(gin.TestMode)

	pool := NewControllerPool([]string{"http://localhost:3000"})
	pool.Add(pingController{})
	pool.Mount("/metrics", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	}))
	pool.Register()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "Should serve controllers under api prefix", path: "/api/v1/ping", wantStatus: http.StatusOK, wantBody: "pong"},
		{name: "Should serve mounted handlers at root", path: "/metrics", wantStatus: http.StatusOK, wantBody: "# metrics"},
		{name: "Should not expose controllers outside prefix", path: "/ping", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t provider.T) {
			w := httptest.NewRecorder()
			pool.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func (s *ControllerPoolSuite) TestCORSPreflight(t provider.T) {
	gin.SetMode(gin.TestMode)

	pool := NewControllerPool([]string{"http://localhost:3000"})
	pool.Add(pingController{})
	pool.Register()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	pool.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func (s *ControllerPoolSuite) TestShutdown(t provider.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Should keep server from starting after early shutdown", func(t provider.T) {
		pool := NewControllerPool(nil)
		require.NoError(t, pool.Shutdown(context.Background()))

		done := make(chan struct{})
		go func() {
			pool.RunAll("0")
			close(done)
		}()

		require.Eventually(t, func() bool {
			select {
			case <-done:
				return true
			default:
				return false
			}
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("Should stop running server", func(t provider.T) {
		pool := NewControllerPool(nil)
		done := make(chan struct{})
		go func() {
			pool.RunAll("0")
			close(done)
		}()

		require.Eventually(t, func() bool {
			pool.mu.Lock()
			defer pool.mu.Unlock()
			return pool.server != nil
		}, time.Second, 10*time.Millisecond)
		require.NoError(t, pool.Shutdown(context.Background()))

		require.Eventually(t, func() bool {
			select {
			case <-done:
				return true
			default:
				return false
			}
		}, 2*time.Second, 10*time.Millisecond)
	})
}

func TestControllerPoolSuite(t *testing.T) {
	suite.RunSuite(t, new(ControllerPoolSuite))
}
