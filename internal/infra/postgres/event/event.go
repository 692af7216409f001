package infra_postgres_event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/humanbelnik/movienight/internal/model"
	"github.com/jmoiron/sqlx"
)

const eventColumns = `id, host_id, host_email, title, description, date, location,
	movie_options, selected_movie_id, created_at, updated_at`

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, e model.Event) (model.Event, error) {
	dto := FromDomain(e)

	query := `
		INSERT INTO events (id, host_id, host_email, title, description, date, location, movie_options)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + eventColumns

	var created EventDB
	err := r.db.GetContext(ctx, &created, query,
		dto.ID,
		dto.HostID,
		dto.HostEmail,
		dto.Title,
		dto.Description,
		dto.Date,
		dto.Location,
		dto.MovieOptions,
	)
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	return created.ToDomain(), nil
}

func (r *Repository) LoadByID(ctx context.Context, id uuid.UUID) (model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var dto EventDB
	err := r.db.GetContext(ctx, &dto, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Event{}, model.ErrNotFound
		}
		return model.Event{}, fmt.Errorf("failed to load event: %w", err)
	}

	return dto.ToDomain(), nil
}

// LoadVisible returns the events the user hosts or is invited to.
func (r *Repository) LoadVisible(ctx context.Context, userID uuid.UUID, email string) ([]model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		WHERE e.host_id = $1
		   OR EXISTS (
				SELECT 1 FROM invitations i
				WHERE i.event_id = e.id AND i.email = $2
		   )
		ORDER BY e.date ASC, e.id ASC
	`

	var dtos []EventDB
	if err := r.db.SelectContext(ctx, &dtos, query, userID, email); err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	events := make([]model.Event, len(dtos))
	for i := range dtos {
		events[i] = dtos[i].ToDomain()
	}
	return events, nil
}

// Update replaces the editable fields. A selected movie dropped from the options is cleared.
func (r *Repository) Update(ctx context.Context, e model.Event) (model.Event, error) {
	dto := FromDomain(e)

	query := `
		UPDATE events
		SET title = $2, description = $3, date = $4, location = $5, movie_options = $6::bigint[],
			selected_movie_id = CASE
				WHEN selected_movie_id = ANY($6::bigint[]) THEN selected_movie_id
				ELSE NULL
			END,
			updated_at = now()
		WHERE id = $1
		RETURNING ` + eventColumns

	var updated EventDB
	err := r.db.GetContext(ctx, &updated, query,
		dto.ID,
		dto.Title,
		dto.Description,
		dto.Date,
		dto.Location,
		dto.MovieOptions,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Event{}, model.ErrNotFound
		}
		return model.Event{}, fmt.Errorf("failed to update event: %w", err)
	}

	return updated.ToDomain(), nil
}

func (r *Repository) SetSelectedMovie(ctx context.Context, id uuid.UUID, movieID model.MovieID) (model.Event, error) {
	query := `
		UPDATE events
		SET selected_movie_id = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + eventColumns

	var updated EventDB
	if err := r.db.GetContext(ctx, &updated, query, id, movieID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Event{}, model.ErrNotFound
		}
		return model.Event{}, fmt.Errorf("failed to set selected movie: %w", err)
	}

	return updated.ToDomain(), nil
}

// Delete removes the event; invitations and votes go with it by FK cascade.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrNotFound
	}

	return nil
}
