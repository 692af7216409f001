package usecase_invitation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/humanbelnik/movienight/internal/lib/logger/sl"
	"github.com/humanbelnik/movienight/internal/model"
)

//go:generate mockery --name=InvitationRepository --output=./mocks/invitation/repository --filename=repository.go
type InvitationRepository interface {
	GetOrCreate(ctx context.Context, eventID uuid.UUID, email string) (model.Invitation, bool, error)
	LoadByEventAndEmail(ctx context.Context, eventID uuid.UUID, email string) (model.Invitation, error)
	LoadByEvent(ctx context.Context, eventID uuid.UUID) ([]model.Invitation, error)
	Exists(ctx context.Context, eventID uuid.UUID, email string) (bool, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.InvitationStatus) (model.Invitation, error)
}

//go:generate mockery --name=EventLoader --output=./mocks/invitation/events --filename=events.go
type EventLoader interface {
	LoadByID(ctx context.Context, id uuid.UUID) (model.Event, error)
}

//go:generate mockery --name=Notifier --output=./mocks/invitation/notifier --filename=notifier.go
type Notifier interface {
	Invitation(ctx context.Context, event model.Event, inv model.Invitation) error
	RSVPConfirmation(ctx context.Context, event model.Event, inv model.Invitation) error
}

//go:generate mockery --name=TokenVerifier --output=./mocks/invitation/token --filename=token.go
type TokenVerifier interface {
	Verify(token string, eventID uuid.UUID) (string, error)
}

//go:generate mockery --name=Broadcaster --output=./mocks/invitation/broadcaster --filename=broadcaster.go
type Broadcaster interface {
	Publish(eventID uuid.UUID, update model.Update)
}

// RSVPRequest identifies the responder either by a signed link token or by the logged in caller.
type RSVPRequest struct {
	Token  string
	Caller model.User
}

type Usecase struct {
	repository  InvitationRepository
	events      EventLoader
	notifier    Notifier
	tokens      TokenVerifier
	broadcaster Broadcaster
	validate    *validator.Validate
	logger      *slog.Logger
}

type Option func(*Usecase)

func WithBroadcaster(b Broadcaster) Option {
	return func(u *Usecase) {
		u.broadcaster = b
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	repository InvitationRepository,
	events EventLoader,
	notifier Notifier,
	tokens TokenVerifier,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		repository: repository,
		events:     events,
		notifier:   notifier,
		tokens:     tokens,
		validate:   validator.New(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Invite adds guests to an event on behalf of its host.
func (u *Usecase) Invite(ctx context.Context, caller model.User, eventID uuid.UUID, emails []string) ([]model.Invitation, error) {
	if caller.IsZero() {
		return nil, model.ErrUnauthenticated
	}

	event, err := u.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsHost(caller) {
		return nil, model.ErrForbidden
	}

	return u.Issue(ctx, event, emails)
}

// Issue get-or-creates one invitation per distinct email and mails only the new ones.
// Invitations are returned in request order.
func (u *Usecase) Issue(ctx context.Context, event model.Event, emails []string) ([]model.Invitation, error) {
	normalized, err := u.NormalizeGuests(emails, "emails")
	if err != nil {
		return nil, err
	}
	for _, email := range normalized {
		if email == model.NormalizeEmail(event.HostEmail) {
			return nil, model.NewFieldError("emails", "host cannot be invited to their own event")
		}
	}

	invitations := make([]model.Invitation, 0, len(normalized))
	created := make([]model.Invitation, 0, len(normalized))
	for _, email := range normalized {
		inv, isNew, err := u.repository.GetOrCreate(ctx, event.ID, email)
		if err != nil {
			return nil, errors.Join(model.ErrInternal, err)
		}
		invitations = append(invitations, inv)
		if isNew {
			created = append(created, inv)
		}
	}

	for _, inv := range created {
		if err := u.notifier.Invitation(ctx, event, inv); err != nil {
			u.logger.Warn("invitation mail not sent",
				slog.String("event_id", event.ID.String()),
				slog.String("email", inv.Email),
				sl.Err(err),
			)
		}
	}

	if len(created) > 0 {
		u.publish(event.ID, model.Update{
			Type:    model.UpdateInvitationsChanged,
			Payload: map[string]any{"invited": len(created)},
		})
	}

	return invitations, nil
}

// NormalizeGuests trims, lowercases, validates and de-duplicates emails keeping first occurrence order.
func (u *Usecase) NormalizeGuests(emails []string, field string) ([]string, error) {
	if len(emails) == 0 {
		return nil, model.NewFieldError(field, "at least one email is required")
	}

	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, raw := range emails {
		email := model.NormalizeEmail(raw)
		if err := u.validate.Var(email, "required,email"); err != nil {
			return nil, model.NewFieldError(field, "%q is not a valid email", raw)
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out, nil
}

// Respond records an RSVP. A token wins over the caller identity and fails closed.
func (u *Usecase) Respond(ctx context.Context, eventID uuid.UUID, req RSVPRequest, response string) (model.Invitation, error) {
	var email string
	switch {
	case req.Token != "":
		e, err := u.tokens.Verify(req.Token, eventID)
		if err != nil {
			return model.Invitation{}, model.ErrInvalidToken
		}
		email = e
	case !req.Caller.IsZero():
		email = model.NormalizeEmail(req.Caller.Email)
	default:
		return model.Invitation{}, model.ErrUnauthenticated
	}

	status, ok := model.ParseRSVPStatus(response)
	if !ok {
		return model.Invitation{}, model.NewFieldError("status", "must be one of yes, no, accepted, declined")
	}

	event, err := u.loadEvent(ctx, eventID)
	if err != nil {
		return model.Invitation{}, err
	}

	inv, err := u.repository.LoadByEventAndEmail(ctx, eventID, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Invitation{}, err
		}
		return model.Invitation{}, errors.Join(model.ErrInternal, err)
	}

	inv, err = u.repository.SetStatus(ctx, inv.ID, status)
	if err != nil {
		return model.Invitation{}, errors.Join(model.ErrInternal, err)
	}

	if err := u.notifier.RSVPConfirmation(ctx, event, inv); err != nil {
		u.logger.Warn("rsvp confirmation not sent",
			slog.String("event_id", eventID.String()),
			slog.String("email", inv.Email),
			sl.Err(err),
		)
	}

	u.publish(eventID, model.Update{
		Type: model.UpdateRSVP,
		Payload: map[string]any{
			"email":  inv.Email,
			"status": inv.Status,
		},
	})

	return inv, nil
}

func (u *Usecase) List(ctx context.Context, eventID uuid.UUID) ([]model.Invitation, error) {
	invitations, err := u.repository.LoadByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}
	return invitations, nil
}

func (u *Usecase) Attendance(ctx context.Context, eventID uuid.UUID) (model.Attendance, error) {
	invitations, err := u.List(ctx, eventID)
	if err != nil {
		return model.Attendance{}, err
	}
	return countAttendance(invitations), nil
}

func countAttendance(invitations []model.Invitation) model.Attendance {
	var a model.Attendance
	for _, inv := range invitations {
		switch inv.Status {
		case model.InvitationAccepted:
			a.Accepted++
		case model.InvitationDeclined:
			a.Declined++
		default:
			a.Pending++
		}
	}
	a.TotalInvited = len(invitations)
	return a
}

// CanView reports whether user is the host or an invitee of event.
func (u *Usecase) CanView(ctx context.Context, event model.Event, user model.User) (bool, error) {
	if user.IsZero() {
		return false, nil
	}
	if event.IsHost(user) {
		return true, nil
	}
	ok, err := u.repository.Exists(ctx, event.ID, model.NormalizeEmail(user.Email))
	if err != nil {
		return false, errors.Join(model.ErrInternal, err)
	}
	return ok, nil
}

func (u *Usecase) loadEvent(ctx context.Context, id uuid.UUID) (model.Event, error) {
	event, err := u.events.LoadByID(ctx, id)
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
