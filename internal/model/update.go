package model

// Live update types pushed to clients watching an event.
const (
	UpdateVoteCast           = "VOTE_CAST"
	UpdateInvitationsChanged = "INVITATIONS_CHANGED"
	UpdateRSVP               = "RSVP"
	UpdateEventChanged       = "EVENT_CHANGED"
	UpdateEventDeleted       = "EVENT_DELETED"
	UpdateMovieFinalized     = "MOVIE_FINALIZED"
)

type Update struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}
