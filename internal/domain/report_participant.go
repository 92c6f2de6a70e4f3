package domain

import "github.com/google/uuid"

// Role represents the role a participant plays in a report
type Role string

const (
	RoleCreator  Role = "CREATOR"
	RoleReporter Role = "REPORTER"
	RoleObserver Role = "OBSERVER"
)

// Roles lists every valid role value
var Roles = []Role{RoleCreator, RoleReporter, RoleObserver}

// Valid returns true if the role is one of the enumerated values
func (r Role) Valid() bool {
	switch r {
	case RoleCreator, RoleReporter, RoleObserver:
		return true
	}
	return false
}

// ReportParticipant is the association object between Report and Participant
// It carries the role and mirrors the participant kind, so role queries can be
// answered per variant without joining the participants table
type ReportParticipant struct {
	BaseModel
	ReportID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_report_participants_report_id;uniqueIndex:uq_report_participants_report_role;uniqueIndex:uq_report_participants_report_participant" json:"report_id"`
	ParticipantID uuid.UUID       `gorm:"type:uuid;not null;index:idx_report_participants_participant_id;uniqueIndex:uq_report_participants_report_participant" json:"participant_id"`
	Kind          ParticipantKind `gorm:"type:varchar(20);not null" json:"kind"`
	Role          Role            `gorm:"type:varchar(20);not null;uniqueIndex:uq_report_participants_report_role;check:role IN ('CREATOR','REPORTER','OBSERVER')" json:"role"`
	Report        *Report         `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"report,omitempty"`
	Participant   *Participant    `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE" json:"participant,omitempty"`
}

// TableName specifies the table name for ReportParticipant
func (ReportParticipant) TableName() string {
	return "report_participants"
}
