package dto

import (
	"time"

	"github.com/google/uuid"

	"wildlife-report-api/internal/domain"
)

// RegisterParticipantRequest represents the request to register a user as a participant.
// Registering the same user twice returns the existing participant instead of failing.
type RegisterParticipantRequest struct {
	UserID uuid.UUID `json:"userId"`
}

// CreateUnregisteredParticipantRequest represents the request to create a
// participant that has no user account. Name is required, email is optional.
type CreateUnregisteredParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// ParticipantResponse represents participant information with identity fields
// resolved, regardless of whether the participant wraps a user account
type ParticipantResponse struct {
	ID        uuid.UUID              `json:"id"`
	Kind      domain.ParticipantKind `json:"kind"`
	UserID    *uuid.UUID             `json:"userId,omitempty"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

// RegisterParticipantResponse wraps a participant with a flag telling the
// caller whether this registration created a new row
type RegisterParticipantResponse struct {
	Participant ParticipantResponse `json:"participant"`
	Created     bool                `json:"created"`
}

// ToParticipantResponse converts a participant model into its response shape
func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:        p.ID,
		Kind:      p.Kind,
		UserID:    p.UserID,
		Name:      p.DisplayName(),
		Email:     p.ContactEmail(),
		CreatedAt: p.CreatedAt,
	}
}
