package jwt_auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/humanbelnik/movienight/internal/model"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Service verifies access tokens issued by the auth provider.
type Service struct {
	secret []byte
}

func New(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// NewToken is used by tests and local tooling; production tokens come from the auth provider.
func (s *Service) NewToken(user model.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) Verify(tokenString string) (model.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return model.User{}, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.User{}, ErrInvalidToken
	}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: bad user_id claim", ErrInvalidToken)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return model.User{}, fmt.Errorf("%w: missing email claim", ErrInvalidToken)
	}

	return model.User{ID: userID, Email: model.NormalizeEmail(email)}, nil
}
