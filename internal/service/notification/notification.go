package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/humanbelnik/movienight/internal/lib/logger/sl"
	"github.com/humanbelnik/movienight/internal/model"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	KindInvitation   = "invitation"
	KindConfirmation = "rsvp_confirmation"
	KindFinalized    = "movie_finalized"
)

type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html,omitempty"`
	Kind    string   `json:"kind"`
}

type Transport interface {
	Send(ctx context.Context, msg Message) error
}

type TokenSigner interface {
	Sign(eventID uuid.UUID, email string) (string, error)
}

type Service struct {
	transport Transport
	signer    TokenSigner
	from      string
	baseURL   string
	sent      *prometheus.CounterVec
	logger    *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithCounter records every delivery attempt by kind and outcome.
func WithCounter(c *prometheus.CounterVec) Option {
	return func(s *Service) {
		s.sent = c
	}
}

func New(transport Transport, signer TokenSigner, from, baseURL string, opts ...Option) *Service {
	s := &Service{
		transport: transport,
		signer:    signer,
		from:      from,
		baseURL:   strings.TrimRight(baseURL, "/"),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Invitation(ctx context.Context, event model.Event, inv model.Invitation) error {
	token, err := s.signer.Sign(event.ID, inv.Email)
	if err != nil {
		return fmt.Errorf("failed to sign rsvp token: %w", err)
	}

	data := invitationData{
		Title:    event.Title,
		Date:     event.Date.UTC().Format("Mon, 02 Jan 2006 15:04 MST"),
		Location: event.Location,
		Host:     event.HostEmail,
		YesLink:  s.rsvpLink(event.ID, token, "yes"),
		NoLink:   s.rsvpLink(event.ID, token, "no"),
	}

	msg, err := render(invitationTemplates, data)
	if err != nil {
		return err
	}
	msg.To = []string{inv.Email}
	msg.Subject = "Invitation to " + event.Title
	msg.Kind = KindInvitation

	return s.send(ctx, msg)
}

func (s *Service) RSVPConfirmation(ctx context.Context, event model.Event, inv model.Invitation) error {
	data := confirmationData{
		Title:    event.Title,
		Date:     event.Date.UTC().Format("Mon, 02 Jan 2006 15:04 MST"),
		Location: event.Location,
		Accepted: inv.Status == model.InvitationAccepted,
	}

	msg, err := render(confirmationTemplates, data)
	if err != nil {
		return err
	}
	msg.To = []string{inv.Email}
	msg.Subject = "RSVP confirmed for " + event.Title
	msg.Kind = KindConfirmation

	return s.send(ctx, msg)
}

// MovieFinalized mails each recipient separately; one failed delivery does not stop the rest.
func (s *Service) MovieFinalized(ctx context.Context, event model.Event, movieTitle string, recipients []string) error {
	data := finalizedData{
		Title:      event.Title,
		Date:       event.Date.UTC().Format("Mon, 02 Jan 2006 15:04 MST"),
		Location:   event.Location,
		MovieTitle: movieTitle,
	}

	msg, err := render(finalizedTemplates, data)
	if err != nil {
		return err
	}
	msg.Subject = "Movie selected for " + event.Title
	msg.Kind = KindFinalized

	var errs []error
	for _, to := range recipients {
		m := msg
		m.To = []string{to}
		if err := s.send(ctx, m); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", to, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Service) send(ctx context.Context, msg Message) error {
	msg.From = s.from

	err := s.transport.Send(ctx, msg)
	outcome := "sent"
	if err != nil {
		outcome = "failed"
		s.logger.Error("notification delivery failed",
			slog.String("kind", msg.Kind),
			slog.Any("to", msg.To),
			sl.Err(err),
		)
	}
	if s.sent != nil {
		s.sent.WithLabelValues(msg.Kind, outcome).Inc()
	}
	return err
}

func (s *Service) rsvpLink(eventID uuid.UUID, token, status string) string {
	q := url.Values{
		"token":  {token},
		"status": {status},
	}
	return fmt.Sprintf("%s/events/%s/respond_to_invitation?%s", s.baseURL, eventID, q.Encode())
}
