package http_movie

import (
	"github.com/humanbelnik/movienight/internal/model"
)

type GenreDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MovieDTO struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Overview    string     `json:"overview"`
	PosterPath  string     `json:"poster_path"`
	ReleaseDate string     `json:"release_date,omitempty"`
	VoteAverage float64    `json:"vote_average"`
	Genres      []GenreDTO `json:"genres"`
}

func ToMovieDTO(m model.Movie) MovieDTO {
	dto := MovieDTO{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		PosterPath:  m.PosterPath,
		VoteAverage: m.VoteAverage,
		Genres:      make([]GenreDTO, 0, len(m.Genres)),
	}
	if m.ReleaseDate != nil {
		dto.ReleaseDate = m.ReleaseDate.Format("2006-01-02")
	}
	for _, g := range m.Genres {
		dto.Genres = append(dto.Genres, GenreDTO{ID: g.ID, Name: g.Name})
	}
	return dto
}

func ToMovieDTOs(movies []model.Movie) []MovieDTO {
	out := make([]MovieDTO, 0, len(movies))
	for _, m := range movies {
		out = append(out, ToMovieDTO(m))
	}
	return out
}

type SearchResponseDTO struct {
	Page         int        `json:"page"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
	Results      []MovieDTO `json:"results"`
}

func toSearchResponse(r model.SearchResult) SearchResponseDTO {
	return SearchResponseDTO{
		Page:         r.Page,
		TotalPages:   r.TotalPages,
		TotalResults: r.TotalResults,
		Results:      ToMovieDTOs(r.Movies),
	}
}
