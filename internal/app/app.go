package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
	"github.com/humanbelnik/movienight/internal/config"
	http_event "github.com/humanbelnik/movienight/internal/delivery/http/event"
	http_health "github.com/humanbelnik/movienight/internal/delivery/http/health"
	http_init "github.com/humanbelnik/movienight/internal/delivery/http/init"
	http_auth_middleware "github.com/humanbelnik/movienight/internal/delivery/http/middleware/auth"
	http_ratelimit_middleware "github.com/humanbelnik/movienight/internal/delivery/http/middleware/ratelimit"
	http_movie "github.com/humanbelnik/movienight/internal/delivery/http/movie"
	http_swagger "github.com/humanbelnik/movienight/internal/delivery/http/swagger"
	ws_event "github.com/humanbelnik/movienight/internal/delivery/ws/event"
	infra_kafka "github.com/humanbelnik/movienight/internal/infra/kafka"
	infra_metrics "github.com/humanbelnik/movienight/internal/infra/metrics"
	infra_pg_init "github.com/humanbelnik/movienight/internal/infra/postgres/init"
	infra_postgres_event "github.com/humanbelnik/movienight/internal/infra/postgres/event"
	infra_postgres_invitation "github.com/humanbelnik/movienight/internal/infra/postgres/invitation"
	infra_postgres_movie "github.com/humanbelnik/movienight/internal/infra/postgres/movie"
	infra_postgres_vote "github.com/humanbelnik/movienight/internal/infra/postgres/vote"
	infra_redis_init "github.com/humanbelnik/movienight/internal/infra/redis/init"
	infra_redis_ratelimit "github.com/humanbelnik/movienight/internal/infra/redis/ratelimit"
	infra_tmdb "github.com/humanbelnik/movienight/internal/infra/tmdb"
	"github.com/humanbelnik/movienight/internal/lib/logger/sl"
	jwt_auth "github.com/humanbelnik/movienight/internal/service/auth/jwt"
	"github.com/humanbelnik/movienight/internal/service/notification"
	"github.com/humanbelnik/movienight/internal/service/rsvp_token"
	usecase_event "github.com/humanbelnik/movienight/internal/usecase/event"
	usecase_invitation "github.com/humanbelnik/movienight/internal/usecase/invitation"
	usecase_movie "github.com/humanbelnik/movienight/internal/usecase/movie"
	usecase_vote "github.com/humanbelnik/movienight/internal/usecase/vote"
	"github.com/jmoiron/sqlx"
)

type closer interface {
	Close() error
}

type App struct {
	logger  *slog.Logger
	cfg     *config.Config
	pool    *http_init.ControllerPool
	hub     *ws_event.Hub
	hubCtx  context.Context
	stopHub context.CancelFunc
	closers []closer
}

func New(logger *slog.Logger, cfg *config.Config) *App {
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	metrics := infra_metrics.New()

	var transport notification.Transport
	closers := []closer{pgConn, redisConn}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := infra_kafka.NewMailProducer(cfg.Kafka.Brokers, cfg.Kafka.MailTopic)
		transport = producer
		closers = append(closers, producer)
	} else {
		logger.Warn("no kafka brokers configured, mails are only logged")
		transport = notification.NewLogTransport(logger)
	}

	hub := ws_event.NewHub(ws_event.WithHubLogger(logger))

	eventRepository := infra_postgres_event.New(pgConn)
	invitationRepository := infra_postgres_invitation.New(pgConn)
	voteRepository := infra_postgres_vote.New(pgConn)
	movieRepository := infra_postgres_movie.New(pgConn)

	rsvpSigner := rsvp_token.New(cfg.RSVP.Secret, cfg.RSVP.TokenTTL)
	notifier := notification.New(transport, rsvpSigner, cfg.Mail.From, cfg.RSVP.PublicBaseURL,
		notification.WithLogger(logger),
		notification.WithCounter(metrics.Notifications),
	)

	movieUC := usecase_movie.New(movieRepository, infra_tmdb.New(cfg.TMDB))
	invitationUC := usecase_invitation.New(invitationRepository, eventRepository, notifier, rsvpSigner,
		usecase_invitation.WithBroadcaster(hub),
		usecase_invitation.WithLogger(logger),
	)
	voteUC := usecase_vote.New(voteRepository, eventRepository, invitationUC, movieUC,
		usecase_vote.WithBroadcaster(hub),
		usecase_vote.WithCounter(metrics.Votes),
	)
	eventUC := usecase_event.New(eventRepository, invitationUC, voteUC, movieUC, notifier,
		usecase_event.WithBroadcaster(hub),
	)

	authMiddleware := http_auth_middleware.New(jwt_auth.New(cfg.Auth.JWTSecret))
	limiter := http_ratelimit_middleware.New(
		infra_redis_ratelimit.New(redisConn, "ratelimit"),
		http_ratelimit_middleware.Rule{Limit: cfg.RateLimit.DefaultLimit, Window: cfg.RateLimit.DefaultWindow},
		http_ratelimit_middleware.Rule{Limit: cfg.RateLimit.APILimit, Window: cfg.RateLimit.APIWindow},
		http_ratelimit_middleware.WithCounter(metrics.RateLimited),
	)

	controllerPool := http_init.NewControllerPool(cfg.HTTP.AllowedOrigins, metrics.Middleware())
	controllerPool.Mount("/metrics", metrics.Handler())
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_health.New(map[string]http_health.Check{
		"postgres": pingPostgres(pgConn),
		"redis":    pingRedis(redisConn),
	}))
	controllerPool.Add(http_movie.New(movieUC,
		[]gin.HandlerFunc{authMiddleware.AuthRequired(), limiter.Handler()},
		http_movie.WithLogger(logger),
	))
	controllerPool.Add(http_event.New(eventUC, invitationUC, voteUC, authMiddleware,
		http_event.WithLogger(logger),
		http_event.WithRateLimit(limiter.Handler()),
	))
	controllerPool.Add(ws_event.NewController(hub, eventUC, authMiddleware, ws_event.WithLogger(logger)))
	controllerPool.Register()

	hubCtx, stopHub := context.WithCancel(context.Background())
	return &App{
		logger:  logger,
		cfg:     cfg,
		pool:    controllerPool,
		hub:     hub,
		hubCtx:  hubCtx,
		stopHub: stopHub,
		closers: closers,
	}
}

// MustRun blocks serving HTTP until Stop is called.
func (a *App) MustRun() {
	go a.hub.Run(a.hubCtx)

	a.logger.Info("http server is running", slog.String("port", a.cfg.HTTP.Port))
	a.pool.RunAll(a.cfg.HTTP.Port)
}

func (a *App) Stop(ctx context.Context) error {
	const op = "app.Stop"

	err := a.pool.Shutdown(ctx)
	a.stopHub()
	for _, c := range a.closers {
		err = errors.Join(err, c.Close())
	}
	if err != nil {
		a.logger.Error("shutdown finished with errors", slog.String("op", op), sl.Err(err))
	}
	return err
}

func pingPostgres(db *sqlx.DB) http_health.Check {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return db.PingContext(ctx)
	}
}

func pingRedis(client *redis.Client) http_health.Check {
	return func(context.Context) error {
		return client.Ping().Err()
	}
}
