package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wildlife-report-api/internal/domain"
)

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	FindAll(ctx context.Context) ([]*domain.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountParticipants(ctx context.Context, reportID uuid.UUID) (int64, error)
}

// reportRepositoryImpl is the GORM implementation of ReportRepository
type reportRepositoryImpl struct {
	db *gorm.DB
}

// NewReportRepository creates a new instance of ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// Create creates a new report
func (r *reportRepositoryImpl) Create(ctx context.Context, report *domain.Report) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a report by its ID with its participants eagerly loaded.
// Association rows, their participants and the wrapped users come back in a
// fixed number of queries regardless of participant count (no N+1).
func (r *reportRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	var report domain.Report
	if err := r.db.WithContext(ctx).
		Preload("Participants.Participant.User").
		First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// FindAll returns all reports with participants eagerly loaded
func (r *reportRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Report, error) {
	var reports []*domain.Report
	if err := r.db.WithContext(ctx).
		Preload("Participants.Participant.User").
		Order("created_at ASC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// Delete removes a report and its association rows in one transaction.
// The schema also declares ON DELETE CASCADE, but the explicit delete keeps
// the behavior identical across drivers that ship with FK enforcement off.
func (r *reportRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.ReportParticipant{}, "report_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Report{}, "id = ?", id).Error
	})
}

// Count returns the total number of reports
func (r *reportRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Report{}).Count(&count).Error
	return count, err
}

// CountParticipants returns the number of participants attached to a report
// as a single aggregation over the association table
func (r *reportRepositoryImpl) CountParticipants(ctx context.Context, reportID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ReportParticipant{}).
		Where("report_id = ?", reportID).
		Count(&count).Error
	return count, err
}
