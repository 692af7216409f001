package http_auth_middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/humanbelnik/movienight/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type staticVerifier struct {
	token string
	user  model.User
}

func (v staticVerifier) Verify(token string) (model.User, error) {
	if token != v.token {
		return model.User{}, model.ErrInvalidToken
	}
	return v.user, nil
}

type AuthMiddlewareSuite struct {
	suite.Suite
}

func newEngine(handler gin.HandlerFunc) (*gin.Engine, *model.User) {
	gin.SetMode(gin.TestMode)
	seen := &model.User{}
	engine := gin.New()
	engine.GET("/me", handler, func(ctx *gin.Context) {
		*seen = CurrentUser(ctx)
		ctx.Status(http.StatusOK)
	})
	return engine, seen
}

func request(engine *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareSuite) TestAuthRequired(t provider.T) {
	user := model.User{ID: uuid.New(), Email: "host@example.com"}
	m := New(staticVerifier{token: "good", user: user})

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"valid bearer", "Bearer good", http.StatusOK},
		{"case-insensitive scheme", "bearer good", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"bad token", "Bearer bad", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			engine, seen := newEngine(m.AuthRequired())

			w := request(engine, tc.header)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Equal(t, user, *seen)
			} else {
				assert.Contains(t, w.Body.String(), "not_authenticated")
			}
		})
	}
}

func (s *AuthMiddlewareSuite) TestAuthOptional(t provider.T) {
	user := model.User{ID: uuid.New(), Email: "guest@example.com"}
	m := New(staticVerifier{token: "good", user: user})

	t.Run("Should pass anonymous request", func(t provider.T) {
		engine, seen := newEngine(m.AuthOptional())

		w := request(engine, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, seen.IsZero())
	})

	t.Run("Should reject invalid bearer", func(t provider.T) {
		engine, _ := newEngine(m.AuthOptional())

		assert.Equal(t, http.StatusUnauthorized, request(engine, "Bearer bad").Code)
	})

	t.Run("Should resolve caller", func(t provider.T) {
		engine, seen := newEngine(m.AuthOptional())

		assert.Equal(t, http.StatusOK, request(engine, "Bearer good").Code)
		assert.Equal(t, user, *seen)
	})
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.RunSuite(t, new(AuthMiddlewareSuite))
}
