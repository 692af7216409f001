package infra_postgres_movie

import (
	"database/sql"

	"github.com/humanbelnik/movienight/internal/model"
)

type MovieDB struct {
	ID          int64        `db:"id"`
	Title       string       `db:"title"`
	Overview    string       `db:"overview"`
	PosterPath  string       `db:"poster_path"`
	ReleaseDate sql.NullTime `db:"release_date"`
	VoteAverage float64      `db:"vote_average"`
}

type movieGenreDB struct {
	MovieID int64  `db:"movie_id"`
	GenreID int64  `db:"genre_id"`
	Name    string `db:"name"`
}

func (m *MovieDB) ToDomain() model.Movie {
	mm := model.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		PosterPath:  m.PosterPath,
		VoteAverage: m.VoteAverage,
		Genres:      []model.Genre{},
	}
	if m.ReleaseDate.Valid {
		t := m.ReleaseDate.Time
		mm.ReleaseDate = &t
	}
	return mm
}

func FromDomain(mm model.Movie) MovieDB {
	dto := MovieDB{
		ID:          mm.ID,
		Title:       mm.Title,
		Overview:    mm.Overview,
		PosterPath:  mm.PosterPath,
		VoteAverage: mm.VoteAverage,
	}
	if mm.ReleaseDate != nil {
		dto.ReleaseDate = sql.NullTime{Time: *mm.ReleaseDate, Valid: true}
	}
	return dto
}

func attachGenres(movies []model.Movie, rows []movieGenreDB) {
	byMovie := make(map[int64][]model.Genre, len(movies))
	for _, r := range rows {
		byMovie[r.MovieID] = append(byMovie[r.MovieID], model.Genre{ID: r.GenreID, Name: r.Name})
	}
	for i := range movies {
		if g, ok := byMovie[movies[i].ID]; ok {
			movies[i].Genres = g
		}
	}
}

