package usecase_vote

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/movienight/internal/model"
	access_mocks "github.com/humanbelnik/movienight/internal/usecase/vote/mocks/vote/access"
	broadcaster_mocks "github.com/humanbelnik/movienight/internal/usecase/vote/mocks/vote/broadcaster"
	catalog_mocks "github.com/humanbelnik/movienight/internal/usecase/vote/mocks/vote/catalog"
	events_mocks "github.com/humanbelnik/movienight/internal/usecase/vote/mocks/vote/events"
	repo_mocks "github.com/humanbelnik/movienight/internal/usecase/vote/mocks/vote/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UsecaseVoteUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	repository *repo_mocks.VoteRepository
	events     *events_mocks.EventLoader
	access     *access_mocks.AccessChecker
	catalog    *catalog_mocks.MovieCatalog
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewVoteRepository(t)
	events := events_mocks.NewEventLoader(t)
	access := access_mocks.NewAccessChecker(t)
	catalog := catalog_mocks.NewMovieCatalog(t)
	broadcaster := broadcaster_mocks.NewBroadcaster(t)
	broadcaster.On("Publish", mock.Anything, mock.Anything).Maybe()

	return &resources{
		usecase:    New(repository, events, access, catalog, WithBroadcaster(broadcaster)),
		repository: repository,
		events:     events,
		access:     access,
		catalog:    catalog,
		ctx:        context.Background(),
	}
}

func reaction(v bool) model.Reaction {
	return &v
}

func newEvent() model.Event {
	return model.Event{
		ID:           uuid.New(),
		HostID:       uuid.New(),
		HostEmail:    "host@example.com",
		Title:        "Friday Night",
		Date:         time.Now().Add(24 * time.Hour),
		MovieOptions: []model.MovieID{10, 20, 30},
	}
}

func vote(eventID uuid.UUID, movieID model.MovieID, v model.Reaction) model.Vote {
	return model.Vote{ID: uuid.New(), EventID: eventID, MovieID: movieID, UserID: uuid.New(), Vote: v}
}

func (suite *UsecaseVoteUnitSuite) TestCastVote(t provider.T) {
	t.Parallel()

	event := newEvent()
	voter := model.User{ID: uuid.New(), Email: "guest@example.com"}

	testCases := []struct {
		name          string
		caller        model.User
		movieID       model.MovieID
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name:    "Should upsert vote of invitee",
			caller:  voter,
			movieID: 20,
			setupMocks: func(r *resources) {
				r.events.On("LoadByID", r.ctx, event.ID).Return(event, nil).Once()
				r.access.On("CanView", r.ctx, event, voter).Return(true, nil).Once()
				r.catalog.On("Ensure", r.ctx, model.MovieID(20)).Return(nil).Once()
				r.repository.On("Upsert", r.ctx, mock.MatchedBy(func(v model.Vote) bool {
					return v.EventID == event.ID && v.MovieID == 20 && v.UserID == voter.ID && v.Vote != nil && *v.Vote
				})).Return(model.Vote{ID: uuid.New(), EventID: event.ID, MovieID: 20, UserID: voter.ID, Vote: reaction(true)}, nil).Once()
			},
		},
		{
			name:    "Should reject movie outside options",
			caller:  voter,
			movieID: 99,
			setupMocks: func(r *resources) {
				r.events.On("LoadByID", r.ctx, event.ID).Return(event, nil).Once()
				r.access.On("CanView", r.ctx, event, voter).Return(true, nil).Once()
			},
			expectedError: model.ErrValidation,
		},
		{
			name:    "Should forbid stranger",
			caller:  voter,
			movieID: 10,
			setupMocks: func(r *resources) {
				r.events.On("LoadByID", r.ctx, event.ID).Return(event, nil).Once()
				r.access.On("CanView", r.ctx, event, voter).Return(false, nil).Once()
			},
			expectedError: model.ErrForbidden,
		},
		{
			name:          "Should require caller",
			caller:        model.User{},
			movieID:       10,
			setupMocks:    func(r *resources) {},
			expectedError: model.ErrUnauthenticated,
		},
		{
			name:    "Should report missing event",
			caller:  voter,
			movieID: 10,
			setupMocks: func(r *resources) {
				r.events.On("LoadByID", r.ctx, event.ID).Return(model.Event{}, model.ErrNotFound).Once()
			},
			expectedError: model.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.usecase.CastVote(r.ctx, tc.caller, event.ID, tc.movieID, reaction(true))

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.movieID, got.MovieID)
		})
	}
}

func (suite *UsecaseVoteUnitSuite) TestTally(t provider.T) {
	t.Parallel()

	event := newEvent()
	votes := []model.Vote{
		vote(event.ID, 10, reaction(true)),
		vote(event.ID, 10, reaction(true)),
		vote(event.ID, 10, reaction(false)),
		vote(event.ID, 20, reaction(false)),
		vote(event.ID, 20, nil),
		vote(event.ID, 77, reaction(true)),
	}

	r := initResources(t)
	r.repository.On("LoadByEvent", r.ctx, event.ID).Return(votes, nil).Once()
	r.catalog.On("LoadByIDs", r.ctx, event.MovieOptions).Return([]model.Movie{
		{ID: 10, Title: "Alien"},
		{ID: 20},
	}, nil).Once()

	got, err := r.usecase.Tally(r.ctx, event)

	require.NoError(t, err)
	assert.Equal(t, []model.MovieTally{
		{MovieID: 10, Title: "Alien", Yes: 2, No: 1},
		{MovieID: 20, No: 1, Unset: 1},
		{MovieID: 30},
	}, got)
	for _, tally := range got {
		assert.Equal(t, tally.Yes+tally.No+tally.Unset, tally.Total())
	}
}

func (suite *UsecaseVoteUnitSuite) TestSuggest(t provider.T) {
	t.Parallel()

	event := newEvent()
	event.MovieOptions = []model.MovieID{40, 30, 20, 10}
	votes := []model.Vote{
		vote(event.ID, 40, reaction(true)),
		vote(event.ID, 30, reaction(true)),
		vote(event.ID, 10, reaction(false)),
	}

	r := initResources(t)
	r.repository.On("LoadByEvent", r.ctx, event.ID).Return(votes, nil).Once()
	r.catalog.On("LoadByIDs", r.ctx, event.MovieOptions).Return([]model.Movie{}, nil).Once()
	r.catalog.On("LoadByIDs", r.ctx, []model.MovieID{30, 40, 20}).Return([]model.Movie{{ID: 30, Title: "Heat"}}, nil).Once()

	got, err := r.usecase.Suggest(r.ctx, event)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, model.MovieID(30), got[0].MovieID)
	assert.Equal(t, model.MovieID(40), got[1].MovieID)
	assert.Equal(t, model.MovieID(20), got[2].MovieID)
	assert.Equal(t, 1, got[0].Score)
	require.NotNil(t, got[0].Movie)
	assert.Equal(t, "Heat", got[0].Movie.Title)
	assert.Nil(t, got[1].Movie)
}

func (suite *UsecaseVoteUnitSuite) TestWinner(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		tally    []model.MovieTally
		expected *model.MovieID
	}{
		{
			name:     "Should pick lowest id when nobody voted",
			tally:    Count([]model.MovieID{10, 20, 30}, nil),
			expected: func() *model.MovieID { id := model.MovieID(10); return &id }(),
		},
		{
			name: "Should pick most yes votes",
			tally: []model.MovieTally{
				{MovieID: 10, Yes: 1, No: 0},
				{MovieID: 20, Yes: 3, No: 5},
			},
			expected: func() *model.MovieID { id := model.MovieID(20); return &id }(),
		},
		{
			name: "Should break yes ties by lowest id",
			tally: []model.MovieTally{
				{MovieID: 30, Yes: 2},
				{MovieID: 15, Yes: 2},
			},
			expected: func() *model.MovieID { id := model.MovieID(15); return &id }(),
		},
		{
			name:  "Should be nil without options",
			tally: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()

			got := Winner(tc.tally)

			if tc.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.expected, got.MovieID)
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseVoteUnitSuite))
}
