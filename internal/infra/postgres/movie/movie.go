package infra_postgres_movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/humanbelnik/movienight/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const movieColumns = `id, title, overview, poster_path, release_date, vote_average`

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Store upserts the movie and replaces its genre set.
func (r *Repository) Store(ctx context.Context, mm model.Movie) error {
	movieDB := FromDomain(mm)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO movies (id, title, overview, poster_path, release_date, vote_average)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			overview = EXCLUDED.overview,
			poster_path = EXCLUDED.poster_path,
			release_date = EXCLUDED.release_date,
			vote_average = EXCLUDED.vote_average,
			updated_at = now()
	`
	_, err = tx.ExecContext(ctx, query,
		movieDB.ID,
		movieDB.Title,
		movieDB.Overview,
		movieDB.PosterPath,
		movieDB.ReleaseDate,
		movieDB.VoteAverage,
	)
	if err != nil {
		return fmt.Errorf("failed to store movie: %w", err)
	}

	if err := storeGenres(ctx, tx, mm.Genres); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM movie_genres WHERE movie_id = $1`, mm.ID); err != nil {
		return fmt.Errorf("failed to reset movie genres: %w", err)
	}

	for _, g := range mm.Genres {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			mm.ID, g.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to link genre: %w", err)
		}
	}

	return tx.Commit()
}

// StoreStub writes an id-only row so votes can reference a movie TMDB could not describe.
func (r *Repository) StoreStub(ctx context.Context, id model.MovieID) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO movies (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, id)
	if err != nil {
		return fmt.Errorf("failed to store stub movie: %w", err)
	}
	return nil
}

func (r *Repository) StoreGenres(ctx context.Context, genres []model.Genre) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := storeGenres(ctx, tx, genres); err != nil {
		return err
	}
	return tx.Commit()
}

// Unnamed genres (TMDB list payloads carry ids only) never overwrite a known name.
func storeGenres(ctx context.Context, tx *sqlx.Tx, genres []model.Genre) error {
	query := `
		INSERT INTO genres (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET
			name = CASE WHEN EXCLUDED.name <> '' THEN EXCLUDED.name ELSE genres.name END
	`
	for _, g := range genres {
		if _, err := tx.ExecContext(ctx, query, g.ID, g.Name); err != nil {
			return fmt.Errorf("failed to store genre: %w", err)
		}
	}
	return nil
}

func (r *Repository) LoadByID(ctx context.Context, id model.MovieID) (model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	var movieDB MovieDB
	err := r.db.GetContext(ctx, &movieDB, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Movie{}, model.ErrNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to load movie by id: %w", err)
	}

	movies := []model.Movie{movieDB.ToDomain()}
	if err := r.loadGenres(ctx, movies); err != nil {
		return model.Movie{}, err
	}
	return movies[0], nil
}

func (r *Repository) LoadByIDs(ctx context.Context, ids []model.MovieID) ([]model.Movie, error) {
	if len(ids) == 0 {
		return []model.Movie{}, nil
	}

	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = ANY($1) ORDER BY id ASC`

	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query, pq.Int64Array(ids)); err != nil {
		return nil, fmt.Errorf("failed to query movies by ids: %w", err)
	}

	return r.toDomainWithGenres(ctx, moviesDB)
}

func (r *Repository) Load(ctx context.Context, limit, offset int) ([]model.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE title <> ''
		ORDER BY vote_average DESC, id ASC
		LIMIT $1 OFFSET $2
	`

	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}

	return r.toDomainWithGenres(ctx, moviesDB)
}

func (r *Repository) toDomainWithGenres(ctx context.Context, moviesDB []MovieDB) ([]model.Movie, error) {
	movies := make([]model.Movie, len(moviesDB))
	for i := range moviesDB {
		movies[i] = moviesDB[i].ToDomain()
	}
	if err := r.loadGenres(ctx, movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *Repository) loadGenres(ctx context.Context, movies []model.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	ids := make(pq.Int64Array, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}

	query := `
		SELECT mg.movie_id, mg.genre_id, g.name
		FROM movie_genres mg
		JOIN genres g ON g.id = mg.genre_id
		WHERE mg.movie_id = ANY($1)
		ORDER BY mg.movie_id ASC, g.id ASC
	`

	var rows []movieGenreDB
	if err := r.db.SelectContext(ctx, &rows, query, ids); err != nil {
		return fmt.Errorf("failed to query movie genres: %w", err)
	}

	attachGenres(movies, rows)
	return nil
}
