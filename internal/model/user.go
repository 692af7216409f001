package model

import "github.com/google/uuid"

// User is the caller identity handed over by the auth provider.
type User struct {
	ID    uuid.UUID
	Email string
}

func (u User) IsZero() bool {
	return u.ID == uuid.Nil
}
