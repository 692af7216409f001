package rsvp_token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/humanbelnik/movienight/internal/model"
)

const issuer = "movienight-rsvp"

type claims struct {
	EventID string `json:"event_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// Signer binds an (event, email) pair into a tamper-evident RSVP token.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// A zero ttl issues tokens that never expire.
func New(secret string, ttl time.Duration) *Signer {
	return &Signer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Signer) Sign(eventID uuid.UUID, email string) (string, error) {
	c := claims{
		EventID: eventID.String(),
		Email:   model.NormalizeEmail(email),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
	}
	if s.ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(s.now().Add(s.ttl))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign rsvp token: %w", err)
	}
	return token, nil
}

// Verify returns the email bound to the token. Any decode failure or an
// event mismatch yields model.ErrInvalidToken.
func (s *Signer) Verify(token string, eventID uuid.UUID) (string, error) {
	if token == "" {
		return "", model.ErrInvalidToken
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return "", errors.Join(model.ErrInvalidToken, err)
	}

	tokenEventID, err := uuid.Parse(c.EventID)
	if err != nil || tokenEventID != eventID {
		return "", fmt.Errorf("%w: event mismatch", model.ErrInvalidToken)
	}

	if c.Email == "" {
		return "", fmt.Errorf("%w: empty email", model.ErrInvalidToken)
	}

	return c.Email, nil
}
