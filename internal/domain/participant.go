package domain

import "github.com/google/uuid"

// ParticipantKind discriminates the two participant variants sharing one table
type ParticipantKind string

const (
	// ParticipantKindRegistered wraps an existing User account
	ParticipantKindRegistered ParticipantKind = "REGISTERED"
	// ParticipantKindUnregistered carries its own name and email
	ParticipantKindUnregistered ParticipantKind = "UNREGISTERED"
)

// Participant represents a person involved in a report
// This is a polymorphic entity - the Kind column selects the variant
// ⚠️ IMPORTANT: registered participants resolve name/email through the wrapped
// User; unregistered participants store both columns themselves
type Participant struct {
	BaseModel
	Kind ParticipantKind `gorm:"type:varchar(20);not null;index:idx_participants_kind" json:"kind"`
	// UserID is set only for registered participants. The unique index keeps
	// at most one registered participant per user; NULLs (unregistered rows)
	// do not collide.
	UserID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_participants_user_id" json:"user_id,omitempty"`
	User   *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// Name and Email are populated only for unregistered participants
	Name  string `gorm:"type:varchar(255)" json:"name,omitempty"`
	Email string `gorm:"type:varchar(255)" json:"email,omitempty"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}

// IsRegistered returns true if the participant wraps a user account
func (p *Participant) IsRegistered() bool {
	return p.Kind == ParticipantKindRegistered
}

// DisplayName resolves the participant name according to its kind
// For registered participants the wrapped User must be preloaded,
// otherwise an empty string is returned
func (p *Participant) DisplayName() string {
	if p.IsRegistered() {
		if p.User != nil {
			return p.User.Name
		}
		return ""
	}
	return p.Name
}

// ContactEmail resolves the participant email according to its kind
func (p *Participant) ContactEmail() string {
	if p.IsRegistered() {
		if p.User != nil {
			return p.User.Email
		}
		return ""
	}
	return p.Email
}
