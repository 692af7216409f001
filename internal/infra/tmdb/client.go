package infra_tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/humanbelnik/movienight/internal/config"
	"github.com/humanbelnik/movienight/internal/lib/logger/sl"
	"github.com/humanbelnik/movienight/internal/model"
)

const releaseDateLayout = "2006-01-02"

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(cfg config.TMDB) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: slog.Default(),
	}
}

type genreDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type movieDTO struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Overview    string     `json:"overview"`
	PosterPath  *string    `json:"poster_path"`
	ReleaseDate string     `json:"release_date"`
	VoteAverage float64    `json:"vote_average"`
	Genres      []genreDTO `json:"genres"`
	GenreIDs    []int64    `json:"genre_ids"`
}

type pageDTO struct {
	Page         int        `json:"page"`
	Results      []movieDTO `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

type genreListDTO struct {
	Genres []genreDTO `json:"genres"`
}

func (m movieDTO) toDomain() model.Movie {
	mm := model.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		VoteAverage: m.VoteAverage,
		Genres:      make([]model.Genre, 0, len(m.Genres)+len(m.GenreIDs)),
	}
	if m.PosterPath != nil {
		mm.PosterPath = *m.PosterPath
	}
	if t, err := time.Parse(releaseDateLayout, m.ReleaseDate); err == nil {
		mm.ReleaseDate = &t
	}
	// Details payloads carry full genres, list payloads only ids.
	if len(m.Genres) > 0 {
		for _, g := range m.Genres {
			mm.Genres = append(mm.Genres, model.Genre{ID: g.ID, Name: g.Name})
		}
	} else {
		for _, id := range m.GenreIDs {
			mm.Genres = append(mm.Genres, model.Genre{ID: id})
		}
	}
	return mm
}

func (p pageDTO) toDomain() model.SearchResult {
	res := model.SearchResult{
		Page:         p.Page,
		TotalPages:   p.TotalPages,
		TotalResults: p.TotalResults,
		Movies:       make([]model.Movie, len(p.Results)),
	}
	for i, m := range p.Results {
		res.Movies[i] = m.toDomain()
	}
	return res
}

func (c *Client) Movie(ctx context.Context, id model.MovieID) (model.Movie, error) {
	var dto movieDTO
	if err := c.get(ctx, "/movie/"+strconv.FormatInt(id, 10), nil, &dto); err != nil {
		return model.Movie{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) Popular(ctx context.Context, page int) (model.SearchResult, error) {
	var dto pageDTO
	if err := c.get(ctx, "/movie/popular", url.Values{"page": {strconv.Itoa(page)}}, &dto); err != nil {
		return model.SearchResult{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) Search(ctx context.Context, query string, page int) (model.SearchResult, error) {
	params := url.Values{
		"query": {query},
		"page":  {strconv.Itoa(page)},
	}

	var dto pageDTO
	if err := c.get(ctx, "/search/movie", params, &dto); err != nil {
		return model.SearchResult{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) Genres(ctx context.Context) ([]model.Genre, error) {
	var dto genreListDTO
	if err := c.get(ctx, "/genre/movie/list", nil, &dto); err != nil {
		return nil, err
	}

	genres := make([]model.Genre, len(dto.Genres))
	for i, g := range dto.Genres {
		genres[i] = model.Genre{ID: g.ID, Name: g.Name}
	}
	return genres, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to build request: %w", model.ErrExternalService, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("tmdb request failed", slog.String("path", path), sl.Err(err))
		return fmt.Errorf("%w: %w", model.ErrExternalService, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("tmdb %s: %w", path, model.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: tmdb returned status %d", model.ErrExternalService, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", model.ErrExternalService, err)
	}

	return nil
}
