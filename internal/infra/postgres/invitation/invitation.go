package infra_postgres_invitation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/movienight/internal/model"
	"github.com/jmoiron/sqlx"
)

type invitationDTO struct {
	ID        uuid.UUID `db:"id"`
	EventID   uuid.UUID `db:"event_id"`
	Email     string    `db:"email"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (d invitationDTO) toDomain() model.Invitation {
	return model.Invitation{
		ID:        d.ID,
		EventID:   d.EventID,
		Email:     d.Email,
		Status:    model.InvitationStatus(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

const invitationColumns = `id, event_id, email, status, created_at, updated_at`

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

// GetOrCreate returns the invitation for (eventID, email), inserting a pending one when absent.
// created is true only for the call that inserted the row.
func (d *Driver) GetOrCreate(ctx context.Context, eventID uuid.UUID, email string) (model.Invitation, bool, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Invitation{}, false, err
	}
	defer func() { _ = tx.Rollback() }()

	insertQuery := `
		INSERT INTO invitations (id, event_id, email, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id, email) DO NOTHING
		RETURNING ` + invitationColumns

	var dto invitationDTO
	created := true
	err = tx.GetContext(ctx, &dto, insertQuery, uuid.New(), eventID, email, string(model.InvitationPending))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return model.Invitation{}, false, fmt.Errorf("failed to insert invitation: %w", err)
		}

		created = false
		selectQuery := `SELECT ` + invitationColumns + ` FROM invitations WHERE event_id = $1 AND email = $2`
		if err := tx.GetContext(ctx, &dto, selectQuery, eventID, email); err != nil {
			return model.Invitation{}, false, fmt.Errorf("failed to load existing invitation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return model.Invitation{}, false, err
	}

	return dto.toDomain(), created, nil
}

func (d *Driver) LoadByEventAndEmail(ctx context.Context, eventID uuid.UUID, email string) (model.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE event_id = $1 AND email = $2`

	var dto invitationDTO
	if err := d.db.GetContext(ctx, &dto, query, eventID, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Invitation{}, model.ErrNotFound
		}
		return model.Invitation{}, fmt.Errorf("failed to load invitation: %w", err)
	}

	return dto.toDomain(), nil
}

func (d *Driver) LoadByEvent(ctx context.Context, eventID uuid.UUID) ([]model.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE event_id = $1 ORDER BY created_at ASC, email ASC`

	var dtos []invitationDTO
	if err := d.db.SelectContext(ctx, &dtos, query, eventID); err != nil {
		return nil, fmt.Errorf("failed to query invitations: %w", err)
	}

	invitations := make([]model.Invitation, len(dtos))
	for i, dto := range dtos {
		invitations[i] = dto.toDomain()
	}
	return invitations, nil
}

func (d *Driver) Exists(ctx context.Context, eventID uuid.UUID, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM invitations WHERE event_id = $1 AND email = $2)`
	if err := d.db.GetContext(ctx, &exists, query, eventID, email); err != nil {
		return false, fmt.Errorf("failed to check invitation: %w", err)
	}
	return exists, nil
}

func (d *Driver) SetStatus(ctx context.Context, id uuid.UUID, status model.InvitationStatus) (model.Invitation, error) {
	query := `
		UPDATE invitations
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + invitationColumns

	var dto invitationDTO
	if err := d.db.GetContext(ctx, &dto, query, id, string(status)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Invitation{}, model.ErrNotFound
		}
		return model.Invitation{}, fmt.Errorf("failed to update invitation status: %w", err)
	}

	return dto.toDomain(), nil
}
