package http_auth_middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/movienight/internal/delivery/http/common"
	"github.com/humanbelnik/movienight/internal/lib/logger/sl"
	"github.com/humanbelnik/movienight/internal/model"
)

const ContextUserKey = "user"

type TokenVerifier interface {
	Verify(token string) (model.User, error)
}

type Middleware struct {
	verifier TokenVerifier
	logger   *slog.Logger
}

func New(verifier TokenVerifier) *Middleware {
	return &Middleware{
		verifier: verifier,
		logger:   slog.Default(),
	}
}

// AuthRequired rejects requests without a valid bearer token.
func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearer(ctx)
		if !ok {
			http_common.Abort(ctx, model.ErrUnauthenticated)
			return
		}
		if !m.authenticate(ctx, token) {
			return
		}
		ctx.Next()
	}
}

// AuthOptional resolves the caller when a bearer token is present. A present but invalid token is still rejected.
func (m *Middleware) AuthOptional() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearer(ctx)
		if ok && !m.authenticate(ctx, token) {
			return
		}
		ctx.Next()
	}
}

func (m *Middleware) authenticate(ctx *gin.Context, token string) bool {
	user, err := m.verifier.Verify(token)
	if err != nil {
		m.logger.Info("bearer token rejected", slog.String("path", ctx.FullPath()), sl.Err(err))
		http_common.Abort(ctx, model.ErrUnauthenticated)
		return false
	}
	ctx.Set(ContextUserKey, user)
	return true
}

func bearer(ctx *gin.Context) (string, bool) {
	header := ctx.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// CurrentUser returns the authenticated caller or the zero user.
func CurrentUser(ctx *gin.Context) model.User {
	v, ok := ctx.Get(ContextUserKey)
	if !ok {
		return model.User{}
	}
	user, _ := v.(model.User)
	return user
}
