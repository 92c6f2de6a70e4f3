package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"wildlife-report-api/internal/domain"
)

// CreateReportRequest represents the request to create a sighting report
type CreateReportRequest struct {
	Species string          `json:"species"`
	Details json.RawMessage `json:"details,omitempty"`
}

// AddParticipantRequest represents the request to attach an existing
// participant to a report under a role
type AddParticipantRequest struct {
	ParticipantID uuid.UUID   `json:"participantId"`
	Role          domain.Role `json:"role"`
}

// ReportParticipantResponse represents one participation entry on a report
type ReportParticipantResponse struct {
	ID          uuid.UUID           `json:"id"`
	Role        domain.Role         `json:"role"`
	Participant ParticipantResponse `json:"participant"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// ReportResponse represents a report with its participations resolved
type ReportResponse struct {
	ID           uuid.UUID                   `json:"id"`
	Species      string                      `json:"species"`
	Details      json.RawMessage             `json:"details,omitempty"`
	Participants []ReportParticipantResponse `json:"participants"`
	CreatedAt    time.Time                   `json:"createdAt"`
}

// ToReportParticipantResponse converts an association row into its response
// shape. The participant relation must be loaded.
func ToReportParticipantResponse(rp *domain.ReportParticipant) ReportParticipantResponse {
	resp := ReportParticipantResponse{
		ID:        rp.ID,
		Role:      rp.Role,
		CreatedAt: rp.CreatedAt,
	}
	if rp.Participant != nil {
		resp.Participant = ToParticipantResponse(rp.Participant)
	}
	return resp
}

// ToReportResponse converts a report model into its response shape
func ToReportResponse(r *domain.Report) ReportResponse {
	participants := make([]ReportParticipantResponse, 0, len(r.Participants))
	for i := range r.Participants {
		participants = append(participants, ToReportParticipantResponse(&r.Participants[i]))
	}
	return ReportResponse{
		ID:           r.ID,
		Species:      r.Species,
		Details:      json.RawMessage(r.Details),
		Participants: participants,
		CreatedAt:    r.CreatedAt,
	}
}
