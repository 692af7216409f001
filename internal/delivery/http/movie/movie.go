package http_movie

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/movienight/internal/delivery/http/common"
	"github.com/humanbelnik/movienight/internal/lib/logger/sl"
	"github.com/humanbelnik/movienight/internal/model"
)

//go:generate mockery --name=MovieUsecase --output=./mocks --filename=usecase.go
type MovieUsecase interface {
	Get(ctx context.Context, id model.MovieID) (model.Movie, error)
	List(ctx context.Context, limit, offset int) ([]model.Movie, error)
	Popular(ctx context.Context, page int) (model.SearchResult, error)
	Search(ctx context.Context, query string, page int) (model.SearchResult, error)
	SyncGenres(ctx context.Context) ([]model.Genre, error)
}

type Controller struct {
	usecase MovieUsecase
	guard   []gin.HandlerFunc
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New mounts the movie routes behind guard (auth, rate limit).
func New(usecase MovieUsecase, guard []gin.HandlerFunc, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		guard:   guard,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies", c.guard...)
	{
		movies.GET("", c.list)
		movies.GET("/popular", c.popular)
		movies.GET("/search", c.search)
		movies.POST("/genres/sync", c.syncGenres)
		movies.GET("/:movie_id", c.get)
	}
}

// list returns cached movies
// @Summary List cached movies
// @Tags Movies
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} MovieDTO
// @Failure 401 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /movies [get]
func (c *Controller) list(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	offset, _ := strconv.Atoi(ctx.Query("offset"))

	movies, err := c.usecase.List(ctx.Request.Context(), limit, offset)
	if err != nil {
		c.fail(ctx, "failed to list movies", err)
		return
	}
	ctx.JSON(http.StatusOK, ToMovieDTOs(movies))
}

// popular fetches and caches one page of popular movies
// @Summary Popular movies
// @Tags Movies
// @Produce json
// @Param page query int false "Page"
// @Success 200 {object} SearchResponseDTO
// @Failure 502 {object} http_common.ErrorResponse "Movie database unavailable"
// @Security BearerAuth
// @Router /movies/popular [get]
func (c *Controller) popular(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))

	result, err := c.usecase.Popular(ctx.Request.Context(), page)
	if err != nil {
		c.fail(ctx, "failed to load popular movies", err)
		return
	}
	ctx.JSON(http.StatusOK, toSearchResponse(result))
}

// search proxies a title search to the movie database
// @Summary Search movies
// @Tags Movies
// @Produce json
// @Param query query string true "Search text"
// @Param page query int false "Page"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 502 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /movies/search [get]
func (c *Controller) search(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))

	result, err := c.usecase.Search(ctx.Request.Context(), ctx.Query("query"), page)
	if err != nil {
		c.fail(ctx, "failed to search movies", err)
		return
	}
	ctx.JSON(http.StatusOK, toSearchResponse(result))
}

// get returns one movie, fetching it on first access
// @Summary Movie details
// @Tags Movies
// @Produce json
// @Param movie_id path int true "TMDB id"
// @Success 200 {object} MovieDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Failure 502 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /movies/{movie_id} [get]
func (c *Controller) get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("movie_id"), 10, 64)
	if err != nil {
		http_common.BadRequest(ctx, "movie_id", "must be an integer")
		return
	}

	movie, err := c.usecase.Get(ctx.Request.Context(), id)
	if err != nil {
		c.fail(ctx, "failed to get movie", err)
		return
	}
	ctx.JSON(http.StatusOK, ToMovieDTO(movie))
}

type SyncGenresResponseDTO struct {
	Synced int        `json:"synced"`
	Genres []GenreDTO `json:"genres"`
}

// syncGenres refreshes the genre dictionary
// @Summary Sync genres
// @Tags Movies
// @Produce json
// @Success 200 {object} SyncGenresResponseDTO
// @Failure 502 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /movies/genres/sync [post]
func (c *Controller) syncGenres(ctx *gin.Context) {
	genres, err := c.usecase.SyncGenres(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "failed to sync genres", err)
		return
	}

	resp := SyncGenresResponseDTO{Synced: len(genres), Genres: make([]GenreDTO, 0, len(genres))}
	for _, g := range genres {
		resp.Genres = append(resp.Genres, GenreDTO{ID: g.ID, Name: g.Name})
	}
	ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) fail(ctx *gin.Context, msg string, err error) {
	if status := http_common.Abort(ctx, err); status >= http.StatusInternalServerError {
		c.logger.Error(msg, sl.Err(err))
		return
	}
	c.logger.Info(msg, sl.Err(err))
}
