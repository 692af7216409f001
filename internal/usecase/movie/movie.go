package usecase_movie

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/humanbelnik/movienight/internal/lib/logger/sl"
	"github.com/humanbelnik/movienight/internal/model"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

//go:generate mockery --name=MovieRepository --output=./mocks/movie/repository --filename=repository.go
type MovieRepository interface {
	Store(ctx context.Context, mm model.Movie) error
	StoreStub(ctx context.Context, id model.MovieID) error
	StoreGenres(ctx context.Context, genres []model.Genre) error
	LoadByID(ctx context.Context, id model.MovieID) (model.Movie, error)
	LoadByIDs(ctx context.Context, ids []model.MovieID) ([]model.Movie, error)
	Load(ctx context.Context, limit, offset int) ([]model.Movie, error)
}

//go:generate mockery --name=MetadataProvider --output=./mocks/movie/provider --filename=provider.go
type MetadataProvider interface {
	Movie(ctx context.Context, id model.MovieID) (model.Movie, error)
	Popular(ctx context.Context, page int) (model.SearchResult, error)
	Search(ctx context.Context, query string, page int) (model.SearchResult, error)
	Genres(ctx context.Context) ([]model.Genre, error)
}

type Usecase struct {
	repository MovieRepository
	provider   MetadataProvider
	logger     *slog.Logger
}

func New(
	repository MovieRepository,
	provider MetadataProvider,
) *Usecase {
	return &Usecase{
		repository: repository,
		provider:   provider,
		logger:     slog.Default(),
	}
}

// Get serves the local copy and refreshes stubs and unknown ids from the provider.
func (u *Usecase) Get(ctx context.Context, id model.MovieID) (model.Movie, error) {
	if id <= 0 {
		return model.Movie{}, model.NewFieldError("movie_id", "must be a positive integer")
	}

	local, err := u.repository.LoadByID(ctx, id)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.Movie{}, errors.Join(model.ErrInternal, err)
	}
	known := err == nil
	if known && !local.IsStub() {
		return local, nil
	}

	remote, err := u.provider.Movie(ctx, id)
	if err != nil {
		if known {
			u.logger.Warn("serving stub movie", slog.Int64("movie_id", id), sl.Err(err))
			return local, nil
		}
		return model.Movie{}, err
	}

	if err := u.repository.Store(ctx, remote); err != nil {
		return model.Movie{}, errors.Join(model.ErrInternal, err)
	}
	return remote, nil
}

// Ensure guarantees a catalog row for id. Provider failures leave a stub instead of an error.
func (u *Usecase) Ensure(ctx context.Context, id model.MovieID) error {
	_, err := u.repository.LoadByID(ctx, id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return errors.Join(model.ErrInternal, err)
	}

	remote, err := u.provider.Movie(ctx, id)
	if err != nil {
		u.logger.Warn("movie metadata unavailable, storing stub", slog.Int64("movie_id", id), sl.Err(err))
		if err := u.repository.StoreStub(ctx, id); err != nil {
			return errors.Join(model.ErrInternal, err)
		}
		return nil
	}

	if err := u.repository.Store(ctx, remote); err != nil {
		return errors.Join(model.ErrInternal, err)
	}
	return nil
}

func (u *Usecase) List(ctx context.Context, limit, offset int) ([]model.Movie, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	movies, err := u.repository.Load(ctx, limit, offset)
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}
	return movies, nil
}

func (u *Usecase) LoadByIDs(ctx context.Context, ids []model.MovieID) ([]model.Movie, error) {
	if len(ids) == 0 {
		return []model.Movie{}, nil
	}
	movies, err := u.repository.LoadByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}
	return movies, nil
}

// Popular fetches one page of the provider's popular list and caches every movie on it.
func (u *Usecase) Popular(ctx context.Context, page int) (model.SearchResult, error) {
	if page < 1 {
		page = 1
	}

	result, err := u.provider.Popular(ctx, page)
	if err != nil {
		return model.SearchResult{}, err
	}

	for _, m := range result.Movies {
		if err := u.repository.Store(ctx, m); err != nil {
			return model.SearchResult{}, errors.Join(model.ErrInternal, err)
		}
	}
	return result, nil
}

func (u *Usecase) Search(ctx context.Context, query string, page int) (model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.SearchResult{}, model.NewFieldError("query", "is required")
	}
	if page < 1 {
		page = 1
	}
	return u.provider.Search(ctx, query, page)
}

func (u *Usecase) SyncGenres(ctx context.Context) ([]model.Genre, error) {
	genres, err := u.provider.Genres(ctx)
	if err != nil {
		return nil, err
	}
	if err := u.repository.StoreGenres(ctx, genres); err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}
	return genres, nil
}
