package infra_postgres_event

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/movienight/internal/model"
	"github.com/lib/pq"
)

type EventDB struct {
	ID              uuid.UUID     `db:"id"`
	HostID          uuid.UUID     `db:"host_id"`
	HostEmail       string        `db:"host_email"`
	Title           string        `db:"title"`
	Description     string        `db:"description"`
	Date            time.Time     `db:"date"`
	Location        string        `db:"location"`
	MovieOptions    pq.Int64Array `db:"movie_options"`
	SelectedMovieID sql.NullInt64 `db:"selected_movie_id"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

func (e *EventDB) ToDomain() model.Event {
	ev := model.Event{
		ID:           e.ID,
		HostID:       e.HostID,
		HostEmail:    e.HostEmail,
		Title:        e.Title,
		Description:  e.Description,
		Date:         e.Date,
		Location:     e.Location,
		MovieOptions: []model.MovieID(e.MovieOptions),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.SelectedMovieID.Valid {
		id := e.SelectedMovieID.Int64
		ev.SelectedMovieID = &id
	}
	return ev
}

func FromDomain(e model.Event) EventDB {
	dto := EventDB{
		ID:           e.ID,
		HostID:       e.HostID,
		HostEmail:    e.HostEmail,
		Title:        e.Title,
		Description:  e.Description,
		Date:         e.Date,
		Location:     e.Location,
		MovieOptions: pq.Int64Array(e.MovieOptions),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.SelectedMovieID != nil {
		dto.SelectedMovieID = sql.NullInt64{Int64: *e.SelectedMovieID, Valid: true}
	}
	return dto
}
