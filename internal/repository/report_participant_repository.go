package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wildlife-report-api/internal/domain"
)

// ReportParticipantRepository defines the interface for association data access
type ReportParticipantRepository interface {
	Attach(ctx context.Context, association *domain.ReportParticipant) error
	FindByReportID(ctx context.Context, reportID uuid.UUID) ([]*domain.ReportParticipant, error)
	FindByParticipantID(ctx context.Context, participantID uuid.UUID) ([]*domain.ReportParticipant, error)
	FindByReportAndRole(ctx context.Context, reportID uuid.UUID, role domain.Role) (*domain.ReportParticipant, error)
	FindByReportAndParticipant(ctx context.Context, reportID, participantID uuid.UUID) (*domain.ReportParticipant, error)
	Detach(ctx context.Context, reportID, participantID uuid.UUID) error
	DeleteByReportID(ctx context.Context, reportID uuid.UUID) error
}

// reportParticipantRepositoryImpl is the GORM implementation of ReportParticipantRepository
type reportParticipantRepositoryImpl struct {
	db *gorm.DB
}

// NewReportParticipantRepository creates a new instance of ReportParticipantRepository
func NewReportParticipantRepository(db *gorm.DB) ReportParticipantRepository {
	return &reportParticipantRepositoryImpl{db: db}
}

// Attach creates a new association row between a report and a participant.
// Unique index violations ((report, role) or (report, participant)) surface
// as-is; the service layer maps them to conflict errors.
func (r *reportParticipantRepositoryImpl) Attach(ctx context.Context, association *domain.ReportParticipant) error {
	if err := r.db.WithContext(ctx).Create(association).Error; err != nil {
		return err
	}
	return nil
}

// FindByReportID returns the association rows of a report with participants
// and their wrapped users eagerly loaded
func (r *reportParticipantRepositoryImpl) FindByReportID(ctx context.Context, reportID uuid.UUID) ([]*domain.ReportParticipant, error) {
	var associations []*domain.ReportParticipant
	if err := r.db.WithContext(ctx).
		Preload("Participant.User").
		Where("report_id = ?", reportID).
		Order("created_at ASC").
		Find(&associations).Error; err != nil {
		return nil, err
	}
	return associations, nil
}

// FindByParticipantID returns the association rows of a participant with
// reports eagerly loaded
func (r *reportParticipantRepositoryImpl) FindByParticipantID(ctx context.Context, participantID uuid.UUID) ([]*domain.ReportParticipant, error) {
	var associations []*domain.ReportParticipant
	if err := r.db.WithContext(ctx).
		Preload("Report").
		Where("participant_id = ?", participantID).
		Order("created_at ASC").
		Find(&associations).Error; err != nil {
		return nil, err
	}
	return associations, nil
}

// FindByReportAndRole finds the association holding a role on a report
func (r *reportParticipantRepositoryImpl) FindByReportAndRole(ctx context.Context, reportID uuid.UUID, role domain.Role) (*domain.ReportParticipant, error) {
	var association domain.ReportParticipant
	if err := r.db.WithContext(ctx).
		Preload("Participant.User").
		Where("report_id = ? AND role = ?", reportID, role).
		First(&association).Error; err != nil {
		return nil, err
	}
	return &association, nil
}

// FindByReportAndParticipant finds the association between a report and a participant
func (r *reportParticipantRepositoryImpl) FindByReportAndParticipant(ctx context.Context, reportID, participantID uuid.UUID) (*domain.ReportParticipant, error) {
	var association domain.ReportParticipant
	if err := r.db.WithContext(ctx).
		Where("report_id = ? AND participant_id = ?", reportID, participantID).
		First(&association).Error; err != nil {
		return nil, err
	}
	return &association, nil
}

// Detach removes the association between a report and a participant
func (r *reportParticipantRepositoryImpl) Detach(ctx context.Context, reportID, participantID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Delete(&domain.ReportParticipant{}, "report_id = ? AND participant_id = ?", reportID, participantID).Error; err != nil {
		return err
	}
	return nil
}

// DeleteByReportID removes all association rows of a report
func (r *reportParticipantRepositoryImpl) DeleteByReportID(ctx context.Context, reportID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Delete(&domain.ReportParticipant{}, "report_id = ?", reportID).Error; err != nil {
		return err
	}
	return nil
}
