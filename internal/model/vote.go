package model

import (
	"time"

	"github.com/google/uuid"
)

// Reaction is a ternary vote: true, false or nil for unset.
type Reaction = *bool

type Vote struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	MovieID   MovieID
	UserID    uuid.UUID
	Vote      Reaction
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MovieTally struct {
	MovieID MovieID
	Title   string
	Yes     int
	No      int
	Unset   int
}

func (t MovieTally) Total() int {
	return t.Yes + t.No + t.Unset
}

func (t MovieTally) Score() int {
	return t.Yes - t.No
}

type Suggestion struct {
	MovieID MovieID
	Score   int
	Movie   *Movie
}
