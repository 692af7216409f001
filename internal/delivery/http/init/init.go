package http_init

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine

	mu     sync.Mutex
	server *http.Server
	closed bool
}

func NewControllerPool(allowedOrigins []string, middlewares ...gin.HandlerFunc) *ControllerPool {
	engine := gin.Default()
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middlewares...)

	rg := engine.Group(apiPrefix)
	return &ControllerPool{
		pool:   make([]Controller, 0, 10),
		rg:     rg,
		engine: engine,
	}
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}

// Mount serves h outside the API prefix, e.g. the metrics endpoint.
func (pool *ControllerPool) Mount(path string, h http.Handler) {
	pool.engine.GET(path, gin.WrapH(h))
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

func (pool *ControllerPool) Handler() http.Handler {
	return pool.engine
}

// RunAll blocks until the server stops. It returns at once if Shutdown already ran.
func (pool *ControllerPool) RunAll(port string) {
	pool.mu.Lock()
	if pool.closed {
		pool.mu.Unlock()
		return
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           pool.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	pool.server = server
	pool.mu.Unlock()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}

func (pool *ControllerPool) Shutdown(ctx context.Context) error {
	pool.mu.Lock()
	pool.closed = true
	server := pool.server
	pool.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}
