package infra_postgres_vote

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/movienight/internal/model"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type voteDTO struct {
	ID        uuid.UUID    `db:"id"`
	EventID   uuid.UUID    `db:"event_id"`
	MovieID   int64        `db:"movie_id"`
	UserID    uuid.UUID    `db:"user_id"`
	Vote      sql.NullBool `db:"vote"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

func (d voteDTO) toDomain() model.Vote {
	v := model.Vote{
		ID:        d.ID,
		EventID:   d.EventID,
		MovieID:   d.MovieID,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Vote.Valid {
		b := d.Vote.Bool
		v.Vote = &b
	}
	return v
}

func toNullBool(r model.Reaction) sql.NullBool {
	if r == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *r, Valid: true}
}

const voteColumns = `id, event_id, movie_id, user_id, vote, created_at, updated_at`

// Upsert keeps at most one row per (event, movie, user); the latest vote wins.
func (d *Driver) Upsert(ctx context.Context, v model.Vote) (model.Vote, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Vote{}, err
	}
	defer func() { _ = tx.Rollback() }()

	upsertQuery := `
		INSERT INTO votes (id, event_id, movie_id, user_id, vote)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_id, movie_id, user_id)
		DO UPDATE SET vote = EXCLUDED.vote, updated_at = now()
		RETURNING ` + voteColumns

	var dto voteDTO
	err = tx.GetContext(ctx, &dto, upsertQuery, uuid.New(), v.EventID, v.MovieID, v.UserID, toNullBool(v.Vote))
	if err != nil {
		return model.Vote{}, fmt.Errorf("failed to upsert vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.Vote{}, err
	}

	return dto.toDomain(), nil
}

func (d *Driver) LoadByEvent(ctx context.Context, eventID uuid.UUID) ([]model.Vote, error) {
	query := `SELECT ` + voteColumns + ` FROM votes WHERE event_id = $1 ORDER BY movie_id ASC, created_at ASC`

	var dtos []voteDTO
	if err := d.db.SelectContext(ctx, &dtos, query, eventID); err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}

	votes := make([]model.Vote, len(dtos))
	for i, dto := range dtos {
		votes[i] = dto.toDomain()
	}
	return votes, nil
}
