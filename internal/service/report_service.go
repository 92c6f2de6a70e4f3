package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wildlife-report-api/internal/domain"
	"wildlife-report-api/internal/dto"
	"wildlife-report-api/internal/metrics"
	"wildlife-report-api/internal/repository"
	"wildlife-report-api/internal/response"
)

// ReportService defines the interface for report business logic
type ReportService interface {
	CreateReport(ctx context.Context, req *dto.CreateReportRequest) (*dto.ReportResponse, error)
	GetReport(ctx context.Context, reportID uuid.UUID) (*dto.ReportResponse, error)
	ListReports(ctx context.Context) ([]*dto.ReportResponse, error)
	AddParticipant(ctx context.Context, reportID uuid.UUID, req *dto.AddParticipantRequest) (*dto.ReportParticipantResponse, error)
	RemoveParticipant(ctx context.Context, reportID, participantID uuid.UUID) error
	DeleteReport(ctx context.Context, reportID uuid.UUID) error
	ParticipantsCount(ctx context.Context, reportID uuid.UUID) (int64, error)
	ReportsCount(ctx context.Context, participantID uuid.UUID) (int64, error)
}

// reportServiceImpl is the implementation of ReportService
type reportServiceImpl struct {
	reportRepo      repository.ReportRepository
	participantRepo repository.ParticipantRepository
	assocRepo       repository.ReportParticipantRepository
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewReportService creates a new instance of ReportService
func NewReportService(
	reportRepo repository.ReportRepository,
	participantRepo repository.ParticipantRepository,
	assocRepo repository.ReportParticipantRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) ReportService {
	return &reportServiceImpl{
		reportRepo:      reportRepo,
		participantRepo: participantRepo,
		assocRepo:       assocRepo,
		metrics:         m,
		logger:          logger,
	}
}

// CreateReport creates a new sighting report
func (s *reportServiceImpl) CreateReport(ctx context.Context, req *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	if req.Species == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Species is required", "")
	}

	report := &domain.Report{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Species:   req.Species,
	}
	if len(req.Details) > 0 {
		report.Details = datatypes.JSON(req.Details)
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		s.logger.Error("Failed to create report",
			zap.String("species", req.Species),
			zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create report", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementReportCreated()
	}

	resp := dto.ToReportResponse(report)
	return &resp, nil
}

// GetReport fetches a report with all participations and their wrapped users
// loaded in one round of queries
func (s *reportServiceImpl) GetReport(ctx context.Context, reportID uuid.UUID) (*dto.ReportResponse, error) {
	report, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Report not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch report", err.Error())
	}

	resp := dto.ToReportResponse(report)
	return &resp, nil
}

// ListReports fetches all reports with participations loaded
func (s *reportServiceImpl) ListReports(ctx context.Context) ([]*dto.ReportResponse, error) {
	reports, err := s.reportRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list reports", err.Error())
	}

	responses := make([]*dto.ReportResponse, 0, len(reports))
	for _, report := range reports {
		resp := dto.ToReportResponse(report)
		responses = append(responses, &resp)
	}
	return responses, nil
}

// AddParticipant attaches an existing participant to a report under a role.
// Each role is held by at most one participant per report, and a participant
// appears at most once per report.
func (s *reportServiceImpl) AddParticipant(ctx context.Context, reportID uuid.UUID, req *dto.AddParticipantRequest) (*dto.ReportParticipantResponse, error) {
	if !req.Role.Valid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid role", string(req.Role))
	}

	if _, err := s.reportRepo.FindByID(ctx, reportID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Report not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify report", err.Error())
	}

	participant, err := s.participantRepo.FindByID(ctx, req.ParticipantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Participant not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify participant", err.Error())
	}

	association := &domain.ReportParticipant{
		BaseModel:     domain.BaseModel{ID: uuid.New()},
		ReportID:      reportID,
		ParticipantID: participant.ID,
		Kind:          participant.Kind,
		Role:          req.Role,
	}
	if err := s.assocRepo.Attach(ctx, association); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, response.NewAppError(response.ErrCodeConflict,
				"Role already taken or participant already on report", err.Error())
		}
		s.logger.Error("Failed to attach participant",
			zap.String("report_id", reportID.String()),
			zap.String("participant_id", participant.ID.String()),
			zap.String("role", string(req.Role)),
			zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to attach participant", err.Error())
	}

	association.Participant = participant
	resp := dto.ToReportParticipantResponse(association)
	return &resp, nil
}

// RemoveParticipant detaches a participant from a report. The participant row
// itself survives.
func (s *reportServiceImpl) RemoveParticipant(ctx context.Context, reportID, participantID uuid.UUID) error {
	if _, err := s.assocRepo.FindByReportAndParticipant(ctx, reportID, participantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Participant not on report", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify participation", err.Error())
	}

	if err := s.assocRepo.Detach(ctx, reportID, participantID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to detach participant", err.Error())
	}
	return nil
}

// DeleteReport deletes a report and its association rows. Participants are
// never deleted here; orphaned unregistered ones are swept by the cleanup job.
func (s *reportServiceImpl) DeleteReport(ctx context.Context, reportID uuid.UUID) error {
	if _, err := s.reportRepo.FindByID(ctx, reportID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Report not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify report", err.Error())
	}

	if err := s.reportRepo.Delete(ctx, reportID); err != nil {
		s.logger.Error("Failed to delete report",
			zap.String("report_id", reportID.String()),
			zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete report", err.Error())
	}
	return nil
}

// ParticipantsCount returns how many participants a report has, computed as a
// single aggregation
func (s *reportServiceImpl) ParticipantsCount(ctx context.Context, reportID uuid.UUID) (int64, error) {
	count, err := s.reportRepo.CountParticipants(ctx, reportID)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to count participants", err.Error())
	}
	return count, nil
}

// ReportsCount returns how many reports a participant appears on
func (s *reportServiceImpl) ReportsCount(ctx context.Context, participantID uuid.UUID) (int64, error) {
	count, err := s.participantRepo.CountReports(ctx, participantID)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to count reports", err.Error())
	}
	return count, nil
}
