package http_event

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/movienight/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/movienight/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/movienight/internal/lib/logger/sl"
	"github.com/humanbelnik/movienight/internal/model"
	usecase_event "github.com/humanbelnik/movienight/internal/usecase/event"
	usecase_invitation "github.com/humanbelnik/movienight/internal/usecase/invitation"
)

//go:generate mockery --name=EventUsecase --output=./mocks/event --filename=event.go
type EventUsecase interface {
	Create(ctx context.Context, caller model.User, in usecase_event.CreateEventInput) (model.EventDetails, error)
	Get(ctx context.Context, caller model.User, id uuid.UUID) (model.EventDetails, error)
	List(ctx context.Context, caller model.User) ([]model.Event, error)
	Update(ctx context.Context, caller model.User, id uuid.UUID, in usecase_event.UpdateEventInput) (model.Event, error)
	Delete(ctx context.Context, caller model.User, id uuid.UUID) error
	VoteResults(ctx context.Context, caller model.User, id uuid.UUID) ([]model.MovieTally, error)
	Suggestions(ctx context.Context, caller model.User, id uuid.UUID) ([]model.Suggestion, error)
	Summary(ctx context.Context, caller model.User, id uuid.UUID) (model.Summary, error)
	Finalize(ctx context.Context, caller model.User, id uuid.UUID, movieID model.MovieID) (model.Event, error)
}

//go:generate mockery --name=InvitationUsecase --output=./mocks/invitation --filename=invitation.go
type InvitationUsecase interface {
	Invite(ctx context.Context, caller model.User, eventID uuid.UUID, emails []string) ([]model.Invitation, error)
	Respond(ctx context.Context, eventID uuid.UUID, req usecase_invitation.RSVPRequest, response string) (model.Invitation, error)
}

//go:generate mockery --name=VoteUsecase --output=./mocks/vote --filename=vote.go
type VoteUsecase interface {
	CastVote(ctx context.Context, caller model.User, eventID uuid.UUID, movieID model.MovieID, vote model.Reaction) (model.Vote, error)
}

type Controller struct {
	events      EventUsecase
	invitations InvitationUsecase
	votes       VoteUsecase
	auth        *http_auth_middleware.Middleware
	limit       gin.HandlerFunc
	logger      *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func WithRateLimit(h gin.HandlerFunc) ControllerOption {
	return func(c *Controller) {
		c.limit = h
	}
}

func New(
	events EventUsecase,
	invitations InvitationUsecase,
	votes VoteUsecase,
	auth *http_auth_middleware.Middleware,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		events:      events,
		invitations: invitations,
		votes:       votes,
		auth:        auth,
		limit:       func(ctx *gin.Context) { ctx.Next() },
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	events := router.Group("/events")

	// RSVP links from mails carry a token instead of a bearer.
	events.GET("/:event_id/respond_to_invitation", c.auth.AuthOptional(), c.limit, c.respond)
	events.POST("/:event_id/respond_to_invitation", c.auth.AuthOptional(), c.limit, c.respond)

	authed := events.Group("", c.auth.AuthRequired(), c.limit)
	{
		authed.POST("", c.create)
		authed.GET("", c.list)
		authed.GET("/:event_id", c.get)
		authed.PUT("/:event_id", c.update)
		authed.DELETE("/:event_id", c.delete)
		authed.POST("/:event_id/vote", c.vote)
		authed.GET("/:event_id/vote_results", c.voteResults)
		authed.POST("/:event_id/invite_guests", c.inviteGuests)
		authed.GET("/:event_id/movie_suggestions", c.movieSuggestions)
		authed.GET("/:event_id/event_summary", c.eventSummary)
		authed.POST("/:event_id/finalize_movie", c.finalizeMovie)
	}
}

// create makes a new event hosted by the caller
// @Summary Create event
// @Description Creates an event with 1-5 candidate movies and invites the guests by email
// @Tags Events
// @Accept json
// @Produce json
// @Param request body usecase_event.CreateEventInput true "Event"
// @Success 201 {object} EventDTO
// @Failure 400 {object} http_common.ErrorResponse "Validation error"
// @Failure 401 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (c *Controller) create(ctx *gin.Context) {
	var in usecase_event.CreateEventInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		http_common.BadRequest(ctx, "", "invalid request body: "+err.Error())
		return
	}

	details, err := c.events.Create(ctx.Request.Context(), http_auth_middleware.CurrentUser(ctx), in)
	if err != nil {
		c.fail(ctx, "failed to create event", err)
		return
	}
	ctx.JSON(http.StatusCreated, toEventDetailsDTO(details))
}

// list returns events the caller hosts or is invited to
// @Summary List events
// @Tags Events
// @Produce json
// @Success 200 {array} EventDTO
// @Security BearerAuth
// @Router /events [get]
func (c *Controller) list(ctx *gin.Context) {
	events, err := c.events.List(ctx.Request.Context(), http_auth_middleware.CurrentUser(ctx))
	if err != nil {
		c.fail(ctx, "failed to list events", err)
		return
	}

	out := make([]EventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, toEventDTO(e))
	}
	ctx.JSON(http.StatusOK, out)
}

// get returns one event with its guest list
// @Summary Get event
// @Tags Events
// @Produce json
// @Param event_id path string true "Event id"
// @Success 200 {object} EventDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /events/{event_id} [get]
func (c *Controller) get(ctx *gin.Context) {
	id, ok := eventID(ctx)
	if !ok {
		return
	}

	details, err := c.events.Get(ctx.Request.Context(), http_auth_middleware.CurrentUser(ctx), id)
	if err != nil {
		c.fail(ctx, "failed to get event", err)
		return
	}
	ctx.JSON(http.StatusOK, toEventDetailsDTO(details))
}

// update replaces the editable fields of an event
// @Summary Update event
// @Tags Events
// @Accept json
// @Produce json
// @Param event_id path string true "Event id"
// @Param request body usecase_event.UpdateEventInput true "Event"
// @Success 200 {object} EventDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 403 {object} http_common.ErrorResponse "Only the host can edit"
// @Security BearerAuth
// @Router /events/{event_id} [put]
func (c *Controller) update(ctx *gin.Context) {
	id, ok := eventID(ctx)
	if !ok {
		return
	}

	var in usecase_event.UpdateEventInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		http_common.BadRequest(ctx, "", "invalid request body: "+err.Error())
		return
	}

	event, err := c.events.Update(ctx.Request.Context(), http_auth_middleware.CurrentUser(ctx), id, in)
	if err != nil {
		c.fail(ctx, "failed to update event", err)
		return
	}
	ctx.JSON(http.StatusOK, toEventDTO(event))
}

// delete removes an event with its invitations and votes
// @Summary Delete event
// @Tags Events
// @Param event_id path string true "Event id"
// @Success 204
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /events/{event_id} [delete]
func (c *Controller) delete(ctx *gin.Context) {
	id, ok := eventID(ctx)
	if !ok {
		return
	}

	if err := c.events.Delete(ctx.Request.Context(), http_auth_middleware.CurrentUser(ctx), id); err != nil {
		c.fail(ctx, "failed to delete event", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

type VoteRequestDTO struct {
	MovieID int64 `json:"movie_id" binding:"required"`
	Vote    *bool `json:"vote"`
}

// vote records the caller's yes/no/unset vote on a movie option
// @Summary Vote on a movie
// @Tags Votes
// @Accept json
// @Produce json
// @Param event_id path string true "Event id"
// @Param request body VoteRequestDTO true "Vote"
// @Success 200 {object} VoteDTO
// @Failure 400 {object} http_common.ErrorResponse "Movie is not an option"
// @Failure 403 {object} http_common.ErrorResponse "Caller is not host or invitee"
// @Security BearerAuth
// @Router /events/{event_id}/vote [post]
func (c *Controller) vote(ctx *gin.Context) {
	id, ok := eventID(ctx)
	if !ok {
		return
	}

	var req VoteRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "movie_id", "movie_id is required")
		return
	}

	v, err := c.votes.CastVote(ctx.Request.Context(), http_auth_middleware.CurrentUser(ctx), id, req.MovieID, req.Vote)
	if err != nil {
		c.fail(ctx, "failed to cast vote", err)
		return
	}
	ctx.JSON(http.StatusOK, toVoteDTO(v))
}

// voteResults returns per-movie vote counts in option order
// @Summary Vote results
// @Tags Votes
// @Produce json
// @Param event_id path string true "Event id"
// @Success 200 {array} TallyDTO
// @Security BearerAuth
// @Router /events/{event_id}/vote_results [get]
func (c *Controller) voteResults(ctx *gin.Context) {
	id, ok := eventID(ctx)
	if !ok {
		return
	}

	tally, err := c.events.VoteResults(ctx.Request.Context(), http_auth_middleware.CurrentUser(ctx), id)
	if err != nil {
		c.fail(ctx, "failed to load vote results", err)
		return
	}
	ctx.JSON(http.StatusOK, toTallyDTOs(tally))
}

type InviteRequestDTO struct {
	Emails []string `json:"emails" binding:"required"`
}

// inviteGuests adds guests to the event
// @Summary Invite guests
// @Description Creates missing invitations and mails RSVP links to new guests only
// @Tags Invitations
// @Accept json
// @Produce json
// @Param event_id path string true "Event id"
// @Param request body InviteRequestDTO true "Emails"
// @Success 200 {array} InvitationDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 403 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /events/{event_id}/invite_guests [post]
func (c *Controller) inviteGuests(ctx *gin.Context) {
	id, ok := eventID(ctx)
	if !ok {
		return
	}

	var req InviteRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "emails", "emails is required")
		return
	}

	invitations, err := c.invitations.Invite(ctx.Request.Context(), http_auth_middleware.CurrentUser(ctx), id, req.Emails)
	if err != nil {
		c.fail(ctx, "failed to invite guests", err)
		return
	}
	ctx.JSON(http.StatusOK, toInvitationDTOs(invitations))
}

type RespondRequestDTO struct {
	Token  string `json:"token" form:"token"`
	Status string `json:"status" form:"status"`
}

// respond records an RSVP from a mail link (token) or from a logged in guest
// @Summary Respond to invitation
// @Description GET with a token renders an HTML confirmation page, everything else returns JSON
// @Tags Invitations
// @Produce json
// @Produce html
// @Param event_id path string true "Event id"
// @Param token query string false "Signed RSVP token"
// @Param status query string true "yes, no, accepted or declined"
// @Success 200 {object} InvitationDTO
// @Failure 400 {object} http_common.ErrorResponse "Invalid token or status"
// @Failure 401 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Router /events/{event_id}/respond_to_invitation [get]
// @Router /events/{event_id}/respond_to_invitation [post]
func (c *Controller) respond(ctx *gin.Context) {
	var req RespondRequestDTO
	if ctx.Request.Method == http.MethodGet {
		_ = ctx.ShouldBindQuery(&req)
	} else if err := ctx.ShouldBind(&req); err != nil {
		http_common.BadRequest(ctx, "", "invalid request body")
		return
	}
	if req.Token == "" {
		req.Token = ctx.Query("token")
	}
	asPage := ctx.Request.Method == http.MethodGet && req.Token != ""

	id, err := uuid.Parse(ctx.Param("event_id"))
	if err != nil {
		c.respondError(ctx, asPage, "failed to respond to invitation", model.ErrNotFound)
		return
	}

	inv, err := c.invitations.Respond(ctx.Request.Context(), id, usecase_invitation.RSVPRequest{
		Token:  req.Token,
		Caller: http_auth_middleware.CurrentUser(ctx),
	}, req.Status)
	if err != nil {
		c.respondError(ctx, asPage, "failed to respond to invitation", err)
		return
	}

	if asPage {
		renderRSVPPage(ctx, http.StatusOK, rsvpPageData{
			OK:       true,
			Accepted: inv.Status == model.InvitationAccepted,
			Email:    inv.Email,
			Status:   string(inv.Status),
		})
		return
	}
	ctx.JSON(http.StatusOK, toInvitationDTO(inv))
}

func (c *Controller) respondError(ctx *gin.Context, asPage bool, msg string, err error) {
	if !asPage {
		c.fail(ctx, msg, err)
		return
	}
	status, body := http_common.ErrorFor(err)
	c.logger.Info(msg, sl.Err(err))
	renderRSVPPage(ctx, status, rsvpPageData{Message: body.Message})
	ctx.Abort()
}

// movieSuggestions returns the top rated options
// @Summary Movie suggestions
// @Tags Votes
// @Produce json
// @Param event_id path string true "Event id"
// @Success 200 {array} SuggestionDTO
// @Security BearerAuth
// @Router /events/{event_id}/movie_suggestions [get]
func (c *Controller) movieSuggestions(ctx *gin.Context) {
	id, ok := eventID(ctx)
	if !ok {
		return
	}

	suggestions, err := c.events.Suggestions(ctx.Request.Context(), http_auth_middleware.CurrentUser(ctx), id)
	if err != nil {
		c.fail(ctx, "failed to load suggestions", err)
		return
	}
	ctx.JSON(http.StatusOK, toSuggestionDTOs(suggestions))
}

// eventSummary returns the event with tallies, attendance and the current winner
// @Summary Event summary
// @Tags Events
// @Produce json
// @Param event_id path string true "Event id"
// @Success 200 {object} SummaryDTO
// @Security BearerAuth
// @Router /events/{event_id}/event_summary [get]
func (c *Controller) eventSummary(ctx *gin.Context) {
	id, ok := eventID(ctx)
	if !ok {
		return
	}

	summary, err := c.events.Summary(ctx.Request.Context(), http_auth_middleware.CurrentUser(ctx), id)
	if err != nil {
		c.fail(ctx, "failed to build summary", err)
		return
	}
	ctx.JSON(http.StatusOK, toSummaryDTO(summary))
}

type FinalizeRequestDTO struct {
	MovieID int64 `json:"movie_id" binding:"required"`
}

// finalizeMovie pins the movie to watch and notifies guests
// @Summary Finalize movie
// @Tags Events
// @Accept json
// @Produce json
// @Param event_id path string true "Event id"
// @Param request body FinalizeRequestDTO true "Selected movie"
// @Success 200 {object} EventDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 403 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /events/{event_id}/finalize_movie [post]
func (c *Controller) finalizeMovie(ctx *gin.Context) {
	id, ok := eventID(ctx)
	if !ok {
		return
	}

	var req FinalizeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "movie_id", "movie_id is required")
		return
	}

	event, err := c.events.Finalize(ctx.Request.Context(), http_auth_middleware.CurrentUser(ctx), id, req.MovieID)
	if err != nil {
		c.fail(ctx, "failed to finalize movie", err)
		return
	}
	ctx.JSON(http.StatusOK, toEventDTO(event))
}

// eventID parses the path id; malformed ids are reported as missing events.
func eventID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("event_id"))
	if err != nil {
		http_common.Abort(ctx, model.ErrNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func (c *Controller) fail(ctx *gin.Context, msg string, err error) {
	if status := http_common.Abort(ctx, err); status >= http.StatusInternalServerError {
		c.logger.Error(msg, sl.Err(err))
		return
	}
	c.logger.Info(msg, sl.Err(err))
}
