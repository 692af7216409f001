package http_event

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	event_mocks "github.com/humanbelnik/movienight/internal/delivery/http/event/mocks/event"
	invitation_mocks "github.com/humanbelnik/movienight/internal/delivery/http/event/mocks/invitation"
	vote_mocks "github.com/humanbelnik/movienight/internal/delivery/http/event/mocks/vote"
	http_auth_middleware "github.com/humanbelnik/movienight/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/movienight/internal/model"
	usecase_event "github.com/humanbelnik/movienight/internal/usecase/event"
	usecase_invitation "github.com/humanbelnik/movienight/internal/usecase/invitation"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const bearerToken = "test-token"

type tokenVerifier struct {
	user model.User
}

func (v tokenVerifier) Verify(token string) (model.User, error) {
	if token != bearerToken {
		return model.User{}, model.ErrInvalidToken
	}
	return v.user, nil
}

type EventControllerSuite struct {
	suite.Suite
}

type resources struct {
	engine      *gin.Engine
	events      *event_mocks.EventUsecase
	invitations *invitation_mocks.InvitationUsecase
	votes       *vote_mocks.VoteUsecase
	caller      model.User
}

func initResources(t provider.T) *resources {
	gin.SetMode(gin.TestMode)

	caller := model.User{ID: uuid.New(), Email: "host@example.com"}
	events := event_mocks.NewEventUsecase(t)
	invitations := invitation_mocks.NewInvitationUsecase(t)
	votes := vote_mocks.NewVoteUsecase(t)

	engine := gin.New()
	c := New(events, invitations, votes, http_auth_middleware.New(tokenVerifier{user: caller}))
	c.RegisterRoutes(engine.Group("/api/v1"))

	return &resources{
		engine:      engine,
		events:      events,
		invitations: invitations,
		votes:       votes,
		caller:      caller,
	}
}

func (r *resources) do(method, path string, body any, authorized bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}
	w := httptest.NewRecorder()
	r.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t provider.T, w *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *EventControllerSuite) TestCreate(t provider.T) {
	t.Parallel()

	t.Run("Should return created event with invitations", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		date := time.Date(2030, time.June, 1, 20, 0, 0, 0, time.UTC)
		event := model.Event{
			ID:           uuid.New(),
			HostID:       r.caller.ID,
			HostEmail:    r.caller.Email,
			Title:        "Friday Night",
			Date:         date,
			MovieOptions: []model.MovieID{10, 20},
		}
		invitation := model.Invitation{ID: uuid.New(), EventID: event.ID, Email: "alice@example.com", Status: model.InvitationPending}

		r.events.On("Create", mock.Anything, r.caller, mock.MatchedBy(func(in usecase_event.CreateEventInput) bool {
			return in.Title == "Friday Night" && in.Date.Equal(date) && len(in.Guests) == 1
		})).Return(model.EventDetails{Event: event, Invitations: []model.Invitation{invitation}}, nil).Once()

		w := r.do(http.MethodPost, "/api/v1/events", map[string]any{
			"title":         "Friday Night",
			"date":          date.Format(time.RFC3339),
			"movie_options": []int64{10, 20},
			"guests":        []string{"alice@example.com"},
		}, true)

		require.Equal(t, http.StatusCreated, w.Code)
		got := decode[EventDTO](t, w)
		assert.Equal(t, event.ID.String(), got.ID)
		assert.Equal(t, []int64{10, 20}, got.MovieOptions)
		require.Len(t, got.Invitations, 1)
		assert.Equal(t, "pending", got.Invitations[0].Status)
	})

	t.Run("Should expose validation field", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.events.On("Create", mock.Anything, r.caller, mock.Anything).
			Return(model.EventDetails{}, model.NewFieldError("title", "is required")).Once()

		w := r.do(http.MethodPost, "/api/v1/events", map[string]any{"title": ""}, true)

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decode[map[string]string](t, w)
		assert.Equal(t, "validation_error", body["code"])
		assert.Equal(t, "title", body["field"])
	})

	t.Run("Should require bearer", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		w := r.do(http.MethodPost, "/api/v1/events", map[string]any{}, false)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *EventControllerSuite) TestGet(t provider.T) {
	t.Parallel()

	t.Run("Should map hidden event to 404", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		id := uuid.New()
		r.events.On("Get", mock.Anything, r.caller, id).Return(model.EventDetails{}, model.ErrNotFound).Once()

		w := r.do(http.MethodGet, "/api/v1/events/"+id.String(), nil, true)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Should treat malformed id as missing", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		w := r.do(http.MethodGet, "/api/v1/events/not-a-uuid", nil, true)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *EventControllerSuite) TestVote(t provider.T) {
	t.Parallel()

	t.Run("Should pass null vote through", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		id := uuid.New()
		stored := model.Vote{ID: uuid.New(), EventID: id, MovieID: 10, UserID: r.caller.ID}
		r.votes.On("CastVote", mock.Anything, r.caller, id, model.MovieID(10), (*bool)(nil)).Return(stored, nil).Once()

		w := r.do(http.MethodPost, "/api/v1/events/"+id.String()+"/vote", map[string]any{"movie_id": 10, "vote": nil}, true)

		require.Equal(t, http.StatusOK, w.Code)
		got := decode[VoteDTO](t, w)
		assert.Nil(t, got.Vote)
		assert.Equal(t, int64(10), got.MovieID)
	})

	t.Run("Should map forbidden", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		id := uuid.New()
		r.votes.On("CastVote", mock.Anything, r.caller, id, model.MovieID(10), mock.Anything).
			Return(model.Vote{}, model.ErrForbidden).Once()

		w := r.do(http.MethodPost, "/api/v1/events/"+id.String()+"/vote", map[string]any{"movie_id": 10, "vote": true}, true)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Should require movie id", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		w := r.do(http.MethodPost, "/api/v1/events/"+uuid.NewString()+"/vote", map[string]any{"vote": true}, true)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "movie_id", decode[map[string]string](t, w)["field"])
	})
}

func (s *EventControllerSuite) TestRespond(t provider.T) {
	t.Parallel()

	t.Run("Should render confirmation page for link click", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		id := uuid.New()
		inv := model.Invitation{ID: uuid.New(), EventID: id, Email: "guest@example.com", Status: model.InvitationAccepted}
		r.invitations.On("Respond", mock.Anything, id, usecase_invitation.RSVPRequest{Token: "signed"}, "yes").Return(inv, nil).Once()

		w := r.do(http.MethodGet, "/api/v1/events/"+id.String()+"/respond_to_invitation?token=signed&status=yes", nil, false)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "guest@example.com")
		assert.Contains(t, w.Body.String(), "accepted")
	})

	t.Run("Should render error page for bad token", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		id := uuid.New()
		r.invitations.On("Respond", mock.Anything, id, usecase_invitation.RSVPRequest{Token: "forged"}, "no").
			Return(model.Invitation{}, model.ErrInvalidToken).Once()

		w := r.do(http.MethodGet, "/api/v1/events/"+id.String()+"/respond_to_invitation?token=forged&status=no", nil, false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired token")
	})

	t.Run("Should answer json for logged in guest", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		id := uuid.New()
		inv := model.Invitation{ID: uuid.New(), EventID: id, Email: r.caller.Email, Status: model.InvitationDeclined}
		r.invitations.On("Respond", mock.Anything, id, usecase_invitation.RSVPRequest{Caller: r.caller}, "declined").Return(inv, nil).Once()

		w := r.do(http.MethodPost, "/api/v1/events/"+id.String()+"/respond_to_invitation", map[string]any{"status": "declined"}, true)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "declined", decode[InvitationDTO](t, w).Status)
	})

	t.Run("Should reject anonymous request without token", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		id := uuid.New()
		r.invitations.On("Respond", mock.Anything, id, usecase_invitation.RSVPRequest{}, "yes").
			Return(model.Invitation{}, model.ErrUnauthenticated).Once()

		w := r.do(http.MethodPost, "/api/v1/events/"+id.String()+"/respond_to_invitation", map[string]any{"status": "yes"}, false)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *EventControllerSuite) TestSummary(t provider.T) {
	t.Parallel()

	r := initResources(t)
	id := uuid.New()
	winner := model.MovieTally{MovieID: 10, Yes: 2, No: 1}
	summary := model.Summary{
		Event:        model.Event{ID: id, MovieOptions: []model.MovieID{10, 20}},
		Tally:        []model.MovieTally{winner, {MovieID: 20, Unset: 1}},
		Attendance:   model.Attendance{Accepted: 1, Pending: 2, TotalInvited: 3},
		WinningMovie: &winner,
	}
	r.events.On("Summary", mock.Anything, r.caller, id).Return(summary, nil).Once()

	w := r.do(http.MethodGet, "/api/v1/events/"+id.String()+"/event_summary", nil, true)

	require.Equal(t, http.StatusOK, w.Code)
	got := decode[SummaryDTO](t, w)
	require.NotNil(t, got.WinningMovie)
	assert.Equal(t, int64(10), got.WinningMovie.MovieID)
	assert.Equal(t, 3, got.WinningMovie.Total)
	assert.Equal(t, 3, got.Attendance.TotalInvited)
	assert.Len(t, got.VoteTally, 2)
}

func (s *EventControllerSuite) TestFinalize(t provider.T) {
	t.Parallel()

	r := initResources(t)
	id := uuid.New()
	r.events.On("Finalize", mock.Anything, r.caller, id, model.MovieID(99)).Return(model.Event{}, model.ErrForbidden).Once()

	w := r.do(http.MethodPost, "/api/v1/events/"+id.String()+"/finalize_movie", map[string]any{"movie_id": 99}, true)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", decode[map[string]string](t, w)["code"])
}

func TestEventControllerSuite(t *testing.T) {
	suite.RunSuite(t, new(EventControllerSuite))
}
