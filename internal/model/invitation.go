package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

type Invitation struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	Email     string
	Status    InvitationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ParseRSVPStatus accepts the email-link vocabulary (yes/no) and the canonical values.
func ParseRSVPStatus(raw string) (InvitationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", string(InvitationAccepted):
		return InvitationAccepted, true
	case "no", string(InvitationDeclined):
		return InvitationDeclined, true
	}
	return "", false
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
