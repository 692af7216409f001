package ws_event

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	http_common "github.com/humanbelnik/movienight/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/movienight/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/movienight/internal/lib/logger/sl"
	"github.com/humanbelnik/movienight/internal/model"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type EventAccess interface {
	Get(ctx context.Context, caller model.User, id uuid.UUID) (model.EventDetails, error)
}

type Controller struct {
	hub    *Hub
	access EventAccess
	auth   *http_auth_middleware.Middleware
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func NewController(hub *Hub, access EventAccess, auth *http_auth_middleware.Middleware, opts ...ControllerOption) *Controller {
	c := &Controller{
		hub:    hub,
		access: access,
		auth:   auth,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/events/:event_id/live", c.auth.AuthRequired(), c.live)
}

// live streams vote, RSVP and event changes to the host and invitees
// @Summary Live event updates
// @Description Upgrades to a websocket that receives {"type": ..., "payload": ...} frames
// @Tags Events
// @Param event_id path string true "Event id"
// @Success 101
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /events/{event_id}/live [get]
func (c *Controller) live(ctx *gin.Context) {
	eventID, err := uuid.Parse(ctx.Param("event_id"))
	if err != nil {
		http_common.Abort(ctx, model.ErrNotFound)
		return
	}

	caller := http_auth_middleware.CurrentUser(ctx)
	if _, err := c.access.Get(ctx.Request.Context(), caller, eventID); err != nil {
		http_common.Abort(ctx, err)
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("failed to upgrade to websocket", sl.Err(err))
		return
	}

	client := &Client{
		hub:     c.hub,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		userID:  caller.ID,
		eventID: eventID,
	}
	if !c.hub.join(client) {
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
