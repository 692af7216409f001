package model

import (
	"time"

	"github.com/google/uuid"
)

type MovieID = int64

const (
	MinMovieOptions = 1
	MaxMovieOptions = 5
)

type Event struct {
	ID              uuid.UUID
	HostID          uuid.UUID
	HostEmail       string
	Title           string
	Description     string
	Date            time.Time
	Location        string
	MovieOptions    []MovieID
	SelectedMovieID *MovieID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (e *Event) IsHost(u User) bool {
	return e.HostID == u.ID
}

func (e *Event) HasOption(id MovieID) bool {
	for _, o := range e.MovieOptions {
		if o == id {
			return true
		}
	}
	return false
}

// Attendance partitions invitations by status.
type Attendance struct {
	Accepted     int
	Declined     int
	Pending      int
	TotalInvited int
}

type Summary struct {
	Event        Event
	Tally        []MovieTally
	Attendance   Attendance
	WinningMovie *MovieTally
}

// EventDetails is an event together with its guest list.
type EventDetails struct {
	Event       Event
	Invitations []Invitation
}
