package model

import "time"

const EmptyTitle string = ""

type Genre struct {
	ID   int64
	Name string
}

type Movie struct {
	ID          MovieID
	Title       string
	Overview    string
	PosterPath  string
	ReleaseDate *time.Time
	VoteAverage float64
	Genres      []Genre
}

// IsStub reports a row written without TMDB data.
func (m Movie) IsStub() bool {
	return m.Title == EmptyTitle
}

type SearchResult struct {
	Page         int
	TotalPages   int
	TotalResults int
	Movies       []Movie
}
