package usecase_vote

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/humanbelnik/movienight/internal/lib/logger/sl"
	"github.com/humanbelnik/movienight/internal/model"
	"github.com/prometheus/client_golang/prometheus"
)

const suggestionsLimit = 3

//go:generate mockery --name=VoteRepository --output=./mocks/vote/repository --filename=repository.go
type VoteRepository interface {
	Upsert(ctx context.Context, v model.Vote) (model.Vote, error)
	LoadByEvent(ctx context.Context, eventID uuid.UUID) ([]model.Vote, error)
}

//go:generate mockery --name=EventLoader --output=./mocks/vote/events --filename=events.go
type EventLoader interface {
	LoadByID(ctx context.Context, id uuid.UUID) (model.Event, error)
}

//go:generate mockery --name=AccessChecker --output=./mocks/vote/access --filename=access.go
type AccessChecker interface {
	CanView(ctx context.Context, event model.Event, user model.User) (bool, error)
}

//go:generate mockery --name=MovieCatalog --output=./mocks/vote/catalog --filename=catalog.go
type MovieCatalog interface {
	Ensure(ctx context.Context, id model.MovieID) error
	LoadByIDs(ctx context.Context, ids []model.MovieID) ([]model.Movie, error)
}

//go:generate mockery --name=Broadcaster --output=./mocks/vote/broadcaster --filename=broadcaster.go
type Broadcaster interface {
	Publish(eventID uuid.UUID, update model.Update)
}

type Usecase struct {
	repository  VoteRepository
	events      EventLoader
	access      AccessChecker
	catalog     MovieCatalog
	broadcaster Broadcaster
	votes       prometheus.Counter
	logger      *slog.Logger
}

type Option func(*Usecase)

func WithBroadcaster(b Broadcaster) Option {
	return func(u *Usecase) {
		u.broadcaster = b
	}
}

func WithCounter(c prometheus.Counter) Option {
	return func(u *Usecase) {
		u.votes = c
	}
}

func New(
	repository VoteRepository,
	events EventLoader,
	access AccessChecker,
	catalog MovieCatalog,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		repository: repository,
		events:     events,
		access:     access,
		catalog:    catalog,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CastVote records or overwrites the caller's vote on one of the event's movie options.
func (u *Usecase) CastVote(ctx context.Context, caller model.User, eventID uuid.UUID, movieID model.MovieID, vote model.Reaction) (model.Vote, error) {
	if caller.IsZero() {
		return model.Vote{}, model.ErrUnauthenticated
	}

	event, err := u.events.LoadByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Vote{}, err
		}
		return model.Vote{}, errors.Join(model.ErrInternal, err)
	}

	allowed, err := u.access.CanView(ctx, event, caller)
	if err != nil {
		return model.Vote{}, err
	}
	if !allowed {
		return model.Vote{}, model.ErrForbidden
	}

	if !event.HasOption(movieID) {
		return model.Vote{}, model.NewFieldError("movie_id", "movie %d is not an option of this event", movieID)
	}

	if err := u.catalog.Ensure(ctx, movieID); err != nil {
		return model.Vote{}, err
	}

	stored, err := u.repository.Upsert(ctx, model.Vote{
		EventID: event.ID,
		MovieID: movieID,
		UserID:  caller.ID,
		Vote:    vote,
	})
	if err != nil {
		return model.Vote{}, errors.Join(model.ErrInternal, err)
	}

	if u.votes != nil {
		u.votes.Inc()
	}
	if u.broadcaster != nil {
		u.broadcaster.Publish(event.ID, model.Update{
			Type: model.UpdateVoteCast,
			Payload: map[string]any{
				"movie_id": stored.MovieID,
				"user_id":  stored.UserID,
			},
		})
	}

	return stored, nil
}

// Tally counts votes per movie option in option order. Votes on movies no longer offered are ignored.
func (u *Usecase) Tally(ctx context.Context, event model.Event) ([]model.MovieTally, error) {
	votes, err := u.repository.LoadByEvent(ctx, event.ID)
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}

	tally := Count(event.MovieOptions, votes)

	titles := u.titles(ctx, event.MovieOptions)
	for i := range tally {
		if m, ok := titles[tally[i].MovieID]; ok {
			tally[i].Title = m.Title
		}
	}
	return tally, nil
}

// Suggest ranks options by yes minus no votes, lowest movie id first on ties.
func (u *Usecase) Suggest(ctx context.Context, event model.Event) ([]model.Suggestion, error) {
	tally, err := u.Tally(ctx, event)
	if err != nil {
		return nil, err
	}

	ranked := Rank(tally, suggestionsLimit)

	ids := make([]model.MovieID, 0, len(ranked))
	for _, s := range ranked {
		ids = append(ids, s.MovieID)
	}
	movies := u.titles(ctx, ids)
	for i := range ranked {
		if m, ok := movies[ranked[i].MovieID]; ok {
			movie := m
			ranked[i].Movie = &movie
		}
	}
	return ranked, nil
}

// Count is the pure tally over options; options with no votes report zeros.
func Count(options []model.MovieID, votes []model.Vote) []model.MovieTally {
	tally := make([]model.MovieTally, len(options))
	index := make(map[model.MovieID]int, len(options))
	for i, id := range options {
		tally[i] = model.MovieTally{MovieID: id}
		index[id] = i
	}

	for _, v := range votes {
		i, ok := index[v.MovieID]
		if !ok {
			continue
		}
		switch {
		case v.Vote == nil:
			tally[i].Unset++
		case *v.Vote:
			tally[i].Yes++
		default:
			tally[i].No++
		}
	}
	return tally
}

func Rank(tally []model.MovieTally, limit int) []model.Suggestion {
	ranked := make([]model.MovieTally, len(tally))
	copy(ranked, tally)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score() != ranked[j].Score() {
			return ranked[i].Score() > ranked[j].Score()
		}
		return ranked[i].MovieID < ranked[j].MovieID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]model.Suggestion, 0, len(ranked))
	for _, t := range ranked {
		out = append(out, model.Suggestion{MovieID: t.MovieID, Score: t.Score()})
	}
	return out
}

// Winner picks the option with most yes votes, lowest movie id on ties. Nil without options.
func Winner(tally []model.MovieTally) *model.MovieTally {
	var best *model.MovieTally
	for i := range tally {
		t := tally[i]
		if best == nil || t.Yes > best.Yes || (t.Yes == best.Yes && t.MovieID < best.MovieID) {
			best = &t
		}
	}
	return best
}

// titles is best effort: catalog failures degrade to missing details.
func (u *Usecase) titles(ctx context.Context, ids []model.MovieID) map[model.MovieID]model.Movie {
	out := make(map[model.MovieID]model.Movie, len(ids))
	if len(ids) == 0 {
		return out
	}

	movies, err := u.catalog.LoadByIDs(ctx, ids)
	if err != nil {
		u.logger.Warn("movie details unavailable", sl.Err(err))
		return out
	}
	for _, m := range movies {
		if m.IsStub() {
			continue
		}
		out[m.ID] = m
	}
	return out
}
