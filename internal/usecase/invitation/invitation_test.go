package usecase_invitation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/humanbelnik/movienight/internal/model"
	broadcaster_mocks "github.com/humanbelnik/movienight/internal/usecase/invitation/mocks/invitation/broadcaster"
	events_mocks "github.com/humanbelnik/movienight/internal/usecase/invitation/mocks/invitation/events"
	notifier_mocks "github.com/humanbelnik/movienight/internal/usecase/invitation/mocks/invitation/notifier"
	repo_mocks "github.com/humanbelnik/movienight/internal/usecase/invitation/mocks/invitation/repository"
	token_mocks "github.com/humanbelnik/movienight/internal/usecase/invitation/mocks/invitation/token"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UsecaseInvitationUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase     *Usecase
	repository  *repo_mocks.InvitationRepository
	events      *events_mocks.EventLoader
	notifier    *notifier_mocks.Notifier
	tokens      *token_mocks.TokenVerifier
	broadcaster *broadcaster_mocks.Broadcaster
	ctx         context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewInvitationRepository(t)
	events := events_mocks.NewEventLoader(t)
	notifier := notifier_mocks.NewNotifier(t)
	tokens := token_mocks.NewTokenVerifier(t)
	broadcaster := broadcaster_mocks.NewBroadcaster(t)
	broadcaster.On("Publish", mock.Anything, mock.Anything).Maybe()

	return &resources{
		usecase:     New(repository, events, notifier, tokens, WithBroadcaster(broadcaster)),
		repository:  repository,
		events:      events,
		notifier:    notifier,
		tokens:      tokens,
		broadcaster: broadcaster,
		ctx:         context.Background(),
	}
}

func newHost() model.User {
	return model.User{ID: uuid.New(), Email: "host@example.com"}
}

func newEvent(host model.User) model.Event {
	return model.Event{
		ID:           uuid.New(),
		HostID:       host.ID,
		HostEmail:    host.Email,
		Title:        "Friday Night",
		Date:         time.Now().Add(48 * time.Hour),
		MovieOptions: []model.MovieID{10, 20, 30},
	}
}

func newInvitation(eventID uuid.UUID, email string) model.Invitation {
	return model.Invitation{
		ID:      uuid.New(),
		EventID: eventID,
		Email:   email,
		Status:  model.InvitationPending,
	}
}

func (suite *UsecaseInvitationUnitSuite) TestInvite(t provider.T) {
	t.Parallel()

	t.Run("Should create and notify new guests in request order", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		host := newHost()
		event := newEvent(host)
		a := newInvitation(event.ID, "alice@example.com")
		b := newInvitation(event.ID, "bob@example.com")

		r.events.On("LoadByID", r.ctx, event.ID).Return(event, nil).Once()
		r.repository.On("GetOrCreate", r.ctx, event.ID, "alice@example.com").Return(a, true, nil).Once()
		r.repository.On("GetOrCreate", r.ctx, event.ID, "bob@example.com").Return(b, true, nil).Once()
		r.notifier.On("Invitation", r.ctx, event, a).Return(nil).Once()
		r.notifier.On("Invitation", r.ctx, event, b).Return(nil).Once()

		got, err := r.usecase.Invite(r.ctx, host, event.ID, []string{" Alice@Example.com", "bob@example.com", "ALICE@example.com"})

		require.NoError(t, err)
		assert.Equal(t, []model.Invitation{a, b}, got)
	})

	t.Run("Should not duplicate or re-notify existing invitation", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		host := newHost()
		event := newEvent(host)
		existing := newInvitation(event.ID, "alice@example.com")
		existing.Status = model.InvitationAccepted

		r.events.On("LoadByID", r.ctx, event.ID).Return(event, nil).Once()
		r.repository.On("GetOrCreate", r.ctx, event.ID, "alice@example.com").Return(existing, false, nil).Once()

		got, err := r.usecase.Invite(r.ctx, host, event.ID, []string{"alice@example.com"})

		require.NoError(t, err)
		assert.Equal(t, []model.Invitation{existing}, got)
		r.notifier.AssertNotCalled(t, "Invitation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should keep invitation when mail delivery fails", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		host := newHost()
		event := newEvent(host)
		a := newInvitation(event.ID, "alice@example.com")

		r.events.On("LoadByID", r.ctx, event.ID).Return(event, nil).Once()
		r.repository.On("GetOrCreate", r.ctx, event.ID, a.Email).Return(a, true, nil).Once()
		r.notifier.On("Invitation", r.ctx, event, a).Return(errors.New("smtp down")).Once()

		got, err := r.usecase.Invite(r.ctx, host, event.ID, []string{a.Email})

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Should not mail anyone when a later insert fails", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		host := newHost()
		event := newEvent(host)
		a := newInvitation(event.ID, "alice@example.com")

		r.events.On("LoadByID", r.ctx, event.ID).Return(event, nil).Once()
		r.repository.On("GetOrCreate", r.ctx, event.ID, "alice@example.com").Return(a, true, nil).Once()
		r.repository.On("GetOrCreate", r.ctx, event.ID, "bob@example.com").
			Return(model.Invitation{}, false, errors.New("conn reset")).Once()

		_, err := r.usecase.Invite(r.ctx, host, event.ID, []string{"alice@example.com", "bob@example.com"})

		assert.ErrorIs(t, err, model.ErrInternal)
		r.notifier.AssertNotCalled(t, "Invitation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should forbid non-host", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		event := newEvent(newHost())
		guest := model.User{ID: uuid.New(), Email: gofakeit.Email()}
		r.events.On("LoadByID", r.ctx, event.ID).Return(event, nil).Once()

		_, err := r.usecase.Invite(r.ctx, guest, event.ID, []string{"x@example.com"})

		assert.ErrorIs(t, err, model.ErrForbidden)
	})

	t.Run("Should reject malformed email", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		host := newHost()
		event := newEvent(host)
		r.events.On("LoadByID", r.ctx, event.ID).Return(event, nil).Once()

		_, err := r.usecase.Invite(r.ctx, host, event.ID, []string{"not-an-email"})

		var fe *model.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "emails", fe.Field)
	})

	t.Run("Should reject host email", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		host := newHost()
		event := newEvent(host)
		r.events.On("LoadByID", r.ctx, event.ID).Return(event, nil).Once()

		_, err := r.usecase.Invite(r.ctx, host, event.ID, []string{"HOST@example.com"})

		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("Should report missing event", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		id := uuid.New()
		r.events.On("LoadByID", r.ctx, id).Return(model.Event{}, model.ErrNotFound).Once()

		_, err := r.usecase.Invite(r.ctx, newHost(), id, []string{"x@example.com"})

		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func (suite *UsecaseInvitationUnitSuite) TestRespond(t provider.T) {
	t.Parallel()

	host := newHost()
	event := newEvent(host)
	const guestEmail = "guest@example.com"

	testCases := []struct {
		name           string
		req            RSVPRequest
		response       string
		setupMocks     func(r *resources)
		expectedStatus model.InvitationStatus
		expectedError  error
	}{
		{
			name:     "Should accept via token with yes",
			req:      RSVPRequest{Token: "signed"},
			response: "yes",
			setupMocks: func(r *resources) {
				inv := newInvitation(event.ID, guestEmail)
				accepted := inv
				accepted.Status = model.InvitationAccepted
				r.tokens.On("Verify", "signed", event.ID).Return(guestEmail, nil).Once()
				r.events.On("LoadByID", r.ctx, event.ID).Return(event, nil).Once()
				r.repository.On("LoadByEventAndEmail", r.ctx, event.ID, guestEmail).Return(inv, nil).Once()
				r.repository.On("SetStatus", r.ctx, inv.ID, model.InvitationAccepted).Return(accepted, nil).Once()
				r.notifier.On("RSVPConfirmation", r.ctx, event, accepted).Return(nil).Once()
			},
			expectedStatus: model.InvitationAccepted,
		},
		{
			name:     "Should decline via caller with canonical value",
			req:      RSVPRequest{Caller: model.User{ID: uuid.New(), Email: "Guest@Example.com"}},
			response: "declined",
			setupMocks: func(r *resources) {
				inv := newInvitation(event.ID, guestEmail)
				declined := inv
				declined.Status = model.InvitationDeclined
				r.events.On("LoadByID", r.ctx, event.ID).Return(event, nil).Once()
				r.repository.On("LoadByEventAndEmail", r.ctx, event.ID, guestEmail).Return(inv, nil).Once()
				r.repository.On("SetStatus", r.ctx, inv.ID, model.InvitationDeclined).Return(declined, nil).Once()
				r.notifier.On("RSVPConfirmation", r.ctx, event, declined).Return(errors.New("smtp down")).Once()
			},
			expectedStatus: model.InvitationDeclined,
		},
		{
			name:     "Should fail closed on token for another event",
			req:      RSVPRequest{Token: "foreign"},
			response: "yes",
			setupMocks: func(r *resources) {
				r.tokens.On("Verify", "foreign", event.ID).Return("", model.ErrInvalidToken).Once()
			},
			expectedError: model.ErrInvalidToken,
		},
		{
			name:     "Should not fall back to caller when token is bad",
			req:      RSVPRequest{Token: "tampered", Caller: model.User{ID: uuid.New(), Email: guestEmail}},
			response: "yes",
			setupMocks: func(r *resources) {
				r.tokens.On("Verify", "tampered", event.ID).Return("", errors.New("signature is invalid")).Once()
			},
			expectedError: model.ErrInvalidToken,
		},
		{
			name:          "Should require identity",
			req:           RSVPRequest{},
			response:      "yes",
			setupMocks:    func(r *resources) {},
			expectedError: model.ErrUnauthenticated,
		},
		{
			name:     "Should reject unknown status",
			req:      RSVPRequest{Token: "signed"},
			response: "maybe",
			setupMocks: func(r *resources) {
				r.tokens.On("Verify", "signed", event.ID).Return(guestEmail, nil).Once()
			},
			expectedError: model.ErrValidation,
		},
		{
			name:     "Should report missing invitation",
			req:      RSVPRequest{Caller: model.User{ID: uuid.New(), Email: "stranger@example.com"}},
			response: "no",
			setupMocks: func(r *resources) {
				r.events.On("LoadByID", r.ctx, event.ID).Return(event, nil).Once()
				r.repository.On("LoadByEventAndEmail", r.ctx, event.ID, "stranger@example.com").
					Return(model.Invitation{}, model.ErrNotFound).Once()
			},
			expectedError: model.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.usecase.Respond(r.ctx, event.ID, tc.req, tc.response)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, got.Status)
		})
	}
}

func (suite *UsecaseInvitationUnitSuite) TestCanView(t provider.T) {
	t.Parallel()

	host := newHost()
	event := newEvent(host)

	t.Run("Should allow host without lookup", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		ok, err := r.usecase.CanView(r.ctx, event, host)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Should allow invitee by email", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		guest := model.User{ID: uuid.New(), Email: "Guest@Example.com"}
		r.repository.On("Exists", r.ctx, event.ID, "guest@example.com").Return(true, nil).Once()

		ok, err := r.usecase.CanView(r.ctx, event, guest)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Should deny stranger", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		stranger := model.User{ID: uuid.New(), Email: "who@example.com"}
		r.repository.On("Exists", r.ctx, event.ID, "who@example.com").Return(false, nil).Once()

		ok, err := r.usecase.CanView(r.ctx, event, stranger)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func (suite *UsecaseInvitationUnitSuite) TestAttendance(t provider.T) {
	t.Parallel()

	r := initResources(t)
	eventID := uuid.New()
	invitations := []model.Invitation{
		{Status: model.InvitationAccepted},
		{Status: model.InvitationAccepted},
		{Status: model.InvitationDeclined},
		{Status: model.InvitationPending},
	}
	r.repository.On("LoadByEvent", r.ctx, eventID).Return(invitations, nil).Once()

	got, err := r.usecase.Attendance(r.ctx, eventID)

	require.NoError(t, err)
	assert.Equal(t, model.Attendance{Accepted: 2, Declined: 1, Pending: 1, TotalInvited: 4}, got)
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseInvitationUnitSuite))
}
