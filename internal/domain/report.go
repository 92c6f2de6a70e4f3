package domain

import (
	"gorm.io/datatypes"
)

// Report represents a single sighting report of a species
type Report struct {
	BaseModel
	Species string         `gorm:"type:varchar(255);not null;index:idx_reports_species" json:"species"`
	Details datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`
	// Participants holds the association rows linking this report to its
	// participants. The participant itself is reached through the association
	// object, never through a direct FK on the report.
	Participants []ReportParticipant `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
}

// TableName specifies the table name for Report
func (Report) TableName() string {
	return "reports"
}
