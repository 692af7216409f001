package infra_tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/humanbelnik/movienight/internal/config"
	"github.com/humanbelnik/movienight/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TMDBClientSuite struct {
	suite.Suite
}

func newClient(t provider.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(config.TMDB{BaseURL: server.URL + "/", APIKey: "secret", Timeout: time.Second})
}

func (s *TMDBClientSuite) TestMovie(t provider.T) {
	t.Parallel()

	t.Run("Should decode details with named genres", func(t provider.T) {
		t.Parallel()
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/movie/603", r.URL.Path)
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": 603,
				"title": "The Matrix",
				"overview": "A hacker learns the truth.",
				"poster_path": "/matrix.jpg",
				"release_date": "1999-03-31",
				"vote_average": 8.2,
				"genres": [{"id": 28, "name": "Action"}]
			}`))
		})

		got, err := client.Movie(context.Background(), 603)

		require.NoError(t, err)
		assert.Equal(t, "The Matrix", got.Title)
		assert.Equal(t, "/matrix.jpg", got.PosterPath)
		require.NotNil(t, got.ReleaseDate)
		assert.Equal(t, 1999, got.ReleaseDate.Year())
		assert.Equal(t, []model.Genre{{ID: 28, Name: "Action"}}, got.Genres)
	})

	t.Run("Should leave blank release date unset", func(t provider.T) {
		t.Parallel()
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id": 1, "title": "Untitled", "poster_path": null, "release_date": ""}`))
		})

		got, err := client.Movie(context.Background(), 1)

		require.NoError(t, err)
		assert.Nil(t, got.ReleaseDate)
		assert.Empty(t, got.PosterPath)
	})

	t.Run("Should map 404 to not found", func(t provider.T) {
		t.Parallel()
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.Movie(context.Background(), 999999)

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("Should map upstream failures to external service error", func(t provider.T) {
		t.Parallel()
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.Movie(context.Background(), 1)

		assert.ErrorIs(t, err, model.ErrExternalService)
	})

	t.Run("Should map malformed payloads to external service error", func(t provider.T) {
		t.Parallel()
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id": "oops"`))
		})

		_, err := client.Movie(context.Background(), 1)

		assert.ErrorIs(t, err, model.ErrExternalService)
	})
}

func (s *TMDBClientSuite) TestSearch(t provider.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "star wars", r.URL.Query().Get("query"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{
			"page": 2,
			"total_pages": 5,
			"total_results": 90,
			"results": [{"id": 11, "title": "Star Wars", "genre_ids": [12, 28]}]
		}`))
	})

	got, err := client.Search(context.Background(), "star wars", 2)

	require.NoError(t, err)
	assert.Equal(t, 90, got.TotalResults)
	require.Len(t, got.Movies, 1)
	assert.Equal(t, []model.Genre{{ID: 12}, {ID: 28}}, got.Movies[0].Genres)
}

func (s *TMDBClientSuite) TestGenres(t provider.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genre/movie/list", r.URL.Path)
		_, _ = w.Write([]byte(`{"genres": [{"id": 18, "name": "Drama"}, {"id": 35, "name": "Comedy"}]}`))
	})

	got, err := client.Genres(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []model.Genre{{ID: 18, Name: "Drama"}, {ID: 35, Name: "Comedy"}}, got)
}

func TestTMDBClientSuite(t *testing.T) {
	suite.RunSuite(t, new(TMDBClientSuite))
}
