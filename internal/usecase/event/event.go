package usecase_event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/humanbelnik/movienight/internal/lib/logger/sl"
	"github.com/humanbelnik/movienight/internal/model"
	usecase_vote "github.com/humanbelnik/movienight/internal/usecase/vote"
)

//go:generate mockery --name=EventRepository --output=./mocks/event/repository --filename=repository.go
type EventRepository interface {
	Create(ctx context.Context, e model.Event) (model.Event, error)
	LoadByID(ctx context.Context, id uuid.UUID) (model.Event, error)
	LoadVisible(ctx context.Context, userID uuid.UUID, email string) ([]model.Event, error)
	Update(ctx context.Context, e model.Event) (model.Event, error)
	SetSelectedMovie(ctx context.Context, id uuid.UUID, movieID model.MovieID) (model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

//go:generate mockery --name=InvitationLedger --output=./mocks/event/invitations --filename=invitations.go
type InvitationLedger interface {
	NormalizeGuests(emails []string, field string) ([]string, error)
	Issue(ctx context.Context, event model.Event, emails []string) ([]model.Invitation, error)
	CanView(ctx context.Context, event model.Event, user model.User) (bool, error)
	List(ctx context.Context, eventID uuid.UUID) ([]model.Invitation, error)
	Attendance(ctx context.Context, eventID uuid.UUID) (model.Attendance, error)
}

//go:generate mockery --name=VoteTally --output=./mocks/event/votes --filename=votes.go
type VoteTally interface {
	Tally(ctx context.Context, event model.Event) ([]model.MovieTally, error)
	Suggest(ctx context.Context, event model.Event) ([]model.Suggestion, error)
}

//go:generate mockery --name=MovieCatalog --output=./mocks/event/catalog --filename=catalog.go
type MovieCatalog interface {
	Get(ctx context.Context, id model.MovieID) (model.Movie, error)
}

//go:generate mockery --name=Notifier --output=./mocks/event/notifier --filename=notifier.go
type Notifier interface {
	MovieFinalized(ctx context.Context, event model.Event, movieTitle string, recipients []string) error
}

//go:generate mockery --name=Broadcaster --output=./mocks/event/broadcaster --filename=broadcaster.go
type Broadcaster interface {
	Publish(eventID uuid.UUID, update model.Update)
}

type Usecase struct {
	repository  EventRepository
	invitations InvitationLedger
	votes       VoteTally
	catalog     MovieCatalog
	notifier    Notifier
	broadcaster Broadcaster
	validate    *validator.Validate
	now         func() time.Time
	logger      *slog.Logger
}

type Option func(*Usecase)

func WithBroadcaster(b Broadcaster) Option {
	return func(u *Usecase) {
		u.broadcaster = b
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	repository EventRepository,
	invitations InvitationLedger,
	votes VoteTally,
	catalog MovieCatalog,
	notifier Notifier,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		repository:  repository,
		invitations: invitations,
		votes:       votes,
		catalog:     catalog,
		notifier:    notifier,
		validate:    newValidator(),
		now:         time.Now,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Create stores a new event hosted by caller and invites every guest.
func (u *Usecase) Create(ctx context.Context, caller model.User, in CreateEventInput) (model.EventDetails, error) {
	if caller.IsZero() {
		return model.EventDetails{}, model.ErrUnauthenticated
	}

	in.Title = strings.TrimSpace(in.Title)
	if err := u.validate.Struct(in); err != nil {
		return model.EventDetails{}, fieldError(err)
	}
	if !in.Date.After(u.now()) {
		return model.EventDetails{}, model.NewFieldError("date", "must be in the future")
	}

	guests, err := u.invitations.NormalizeGuests(in.Guests, "guests")
	if err != nil {
		return model.EventDetails{}, err
	}
	hostEmail := model.NormalizeEmail(caller.Email)
	for _, g := range guests {
		if g == hostEmail {
			return model.EventDetails{}, model.NewFieldError("guests", "host cannot be a guest")
		}
	}

	event, err := u.repository.Create(ctx, model.Event{
		ID:           uuid.New(),
		HostID:       caller.ID,
		HostEmail:    hostEmail,
		Title:        in.Title,
		Description:  in.Description,
		Date:         in.Date,
		Location:     in.Location,
		MovieOptions: dedupeOptions(in.MovieOptions),
	})
	if err != nil {
		return model.EventDetails{}, errors.Join(model.ErrInternal, err)
	}

	invitations, err := u.invitations.Issue(ctx, event, guests)
	if err != nil {
		// Invitations cascade with the event and Issue mails only after all of them are stored.
		if derr := u.repository.Delete(context.WithoutCancel(ctx), event.ID); derr != nil {
			u.logger.Error("failed to roll back event",
				slog.String("event_id", event.ID.String()),
				sl.Err(derr),
			)
			err = errors.Join(err, derr)
		}
		return model.EventDetails{}, err
	}

	return model.EventDetails{Event: event, Invitations: invitations}, nil
}

// Get hides events the caller is not part of behind ErrNotFound.
func (u *Usecase) Get(ctx context.Context, caller model.User, id uuid.UUID) (model.EventDetails, error) {
	event, err := u.visible(ctx, caller, id)
	if err != nil {
		return model.EventDetails{}, err
	}

	invitations, err := u.invitations.List(ctx, event.ID)
	if err != nil {
		return model.EventDetails{}, err
	}
	return model.EventDetails{Event: event, Invitations: invitations}, nil
}

func (u *Usecase) List(ctx context.Context, caller model.User) ([]model.Event, error) {
	if caller.IsZero() {
		return nil, model.ErrUnauthenticated
	}
	events, err := u.repository.LoadVisible(ctx, caller.ID, model.NormalizeEmail(caller.Email))
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}
	return events, nil
}

func (u *Usecase) Update(ctx context.Context, caller model.User, id uuid.UUID, in UpdateEventInput) (model.Event, error) {
	event, err := u.hosted(ctx, caller, id)
	if err != nil {
		return model.Event{}, err
	}

	in.Title = strings.TrimSpace(in.Title)
	if err := u.validate.Struct(in); err != nil {
		return model.Event{}, fieldError(err)
	}

	event.Title = in.Title
	event.Description = in.Description
	event.Date = in.Date
	event.Location = in.Location
	event.MovieOptions = dedupeOptions(in.MovieOptions)

	updated, err := u.repository.Update(ctx, event)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Event{}, err
		}
		return model.Event{}, errors.Join(model.ErrInternal, err)
	}

	u.publish(updated.ID, model.Update{Type: model.UpdateEventChanged})
	return updated, nil
}

func (u *Usecase) Delete(ctx context.Context, caller model.User, id uuid.UUID) error {
	if _, err := u.hosted(ctx, caller, id); err != nil {
		return err
	}

	if err := u.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return errors.Join(model.ErrInternal, err)
	}

	u.publish(id, model.Update{Type: model.UpdateEventDeleted})
	return nil
}

func (u *Usecase) VoteResults(ctx context.Context, caller model.User, id uuid.UUID) ([]model.MovieTally, error) {
	event, err := u.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return u.votes.Tally(ctx, event)
}

func (u *Usecase) Suggestions(ctx context.Context, caller model.User, id uuid.UUID) ([]model.Suggestion, error) {
	event, err := u.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return u.votes.Suggest(ctx, event)
}

func (u *Usecase) Summary(ctx context.Context, caller model.User, id uuid.UUID) (model.Summary, error) {
	event, err := u.visible(ctx, caller, id)
	if err != nil {
		return model.Summary{}, err
	}

	tally, err := u.votes.Tally(ctx, event)
	if err != nil {
		return model.Summary{}, err
	}

	attendance, err := u.invitations.Attendance(ctx, event.ID)
	if err != nil {
		return model.Summary{}, err
	}

	return model.Summary{
		Event:        event,
		Tally:        tally,
		Attendance:   attendance,
		WinningMovie: usecase_vote.Winner(tally),
	}, nil
}

// Finalize pins the selected movie and mails every invitee. The host check precedes movie validation.
func (u *Usecase) Finalize(ctx context.Context, caller model.User, id uuid.UUID, movieID model.MovieID) (model.Event, error) {
	event, err := u.hosted(ctx, caller, id)
	if err != nil {
		return model.Event{}, err
	}

	if !event.HasOption(movieID) {
		return model.Event{}, model.NewFieldError("movie_id", "movie %d is not an option of this event", movieID)
	}

	event, err = u.repository.SetSelectedMovie(ctx, id, movieID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Event{}, err
		}
		return model.Event{}, errors.Join(model.ErrInternal, err)
	}

	title := fmt.Sprintf("movie #%d", movieID)
	if movie, err := u.catalog.Get(ctx, movieID); err != nil {
		u.logger.Warn("selected movie details unavailable", slog.Int64("movie_id", movieID), sl.Err(err))
	} else if !movie.IsStub() {
		title = movie.Title
	}

	invitations, err := u.invitations.List(ctx, event.ID)
	if err != nil {
		u.logger.Error("failed to load recipients", slog.String("event_id", event.ID.String()), sl.Err(err))
	} else if len(invitations) > 0 {
		recipients := make([]string, 0, len(invitations))
		for _, inv := range invitations {
			recipients = append(recipients, inv.Email)
		}
		if err := u.notifier.MovieFinalized(ctx, event, title, recipients); err != nil {
			u.logger.Warn("finalize mails partially failed", slog.String("event_id", event.ID.String()), sl.Err(err))
		}
	}

	u.publish(event.ID, model.Update{
		Type: model.UpdateMovieFinalized,
		Payload: map[string]any{
			"movie_id": movieID,
			"title":    title,
		},
	})
	return event, nil
}

func (u *Usecase) visible(ctx context.Context, caller model.User, id uuid.UUID) (model.Event, error) {
	if caller.IsZero() {
		return model.Event{}, model.ErrUnauthenticated
	}

	event, err := u.load(ctx, id)
	if err != nil {
		return model.Event{}, err
	}

	ok, err := u.invitations.CanView(ctx, event, caller)
	if err != nil {
		return model.Event{}, err
	}
	if !ok {
		return model.Event{}, model.ErrNotFound
	}
	return event, nil
}

func (u *Usecase) hosted(ctx context.Context, caller model.User, id uuid.UUID) (model.Event, error) {
	if caller.IsZero() {
		return model.Event{}, model.ErrUnauthenticated
	}

	event, err := u.load(ctx, id)
	if err != nil {
		return model.Event{}, err
	}
	if !event.IsHost(caller) {
		return model.Event{}, model.ErrForbidden
	}
	return event, nil
}

func (u *Usecase) load(ctx context.Context, id uuid.UUID) (model.Event, error) {
	event, err := u.repository.LoadByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Event{}, err
		}
		return model.Event{}, errors.Join(model.ErrInternal, err)
	}
	return event, nil
}

func (u *Usecase) publish(eventID uuid.UUID, update model.Update) {
	if u.broadcaster == nil {
		return
	}
	u.broadcaster.Publish(eventID, update)
}
