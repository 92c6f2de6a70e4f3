package service

import (
	"context"

	"github.com/google/uuid"

	"wildlife-report-api/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	ExistsFunc      func(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockParticipantRepository is a mock implementation of ParticipantRepository
type MockParticipantRepository struct {
	CreateFunc                func(ctx context.Context, participant *domain.Participant) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	FindRegisteredByUserFunc  func(ctx context.Context, userID uuid.UUID) (*domain.Participant, error)
	GetOrCreateRegisteredFunc func(ctx context.Context, userID uuid.UUID) (*domain.Participant, bool, error)
	FindOrphansFunc           func(ctx context.Context) ([]*domain.Participant, error)
	DeleteBatchFunc           func(ctx context.Context, ids []uuid.UUID) error
	CountFunc                 func(ctx context.Context) (int64, error)
	CountReportsFunc          func(ctx context.Context, participantID uuid.UUID) (int64, error)
}

func (m *MockParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, participant)
	}
	return nil
}

func (m *MockParticipantRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockParticipantRepository) FindRegisteredByUser(ctx context.Context, userID uuid.UUID) (*domain.Participant, error) {
	if m.FindRegisteredByUserFunc != nil {
		return m.FindRegisteredByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockParticipantRepository) GetOrCreateRegistered(ctx context.Context, userID uuid.UUID) (*domain.Participant, bool, error) {
	if m.GetOrCreateRegisteredFunc != nil {
		return m.GetOrCreateRegisteredFunc(ctx, userID)
	}
	return nil, false, nil
}

func (m *MockParticipantRepository) FindOrphans(ctx context.Context) ([]*domain.Participant, error) {
	if m.FindOrphansFunc != nil {
		return m.FindOrphansFunc(ctx)
	}
	return nil, nil
}

func (m *MockParticipantRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if m.DeleteBatchFunc != nil {
		return m.DeleteBatchFunc(ctx, ids)
	}
	return nil
}

func (m *MockParticipantRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockParticipantRepository) CountReports(ctx context.Context, participantID uuid.UUID) (int64, error) {
	if m.CountReportsFunc != nil {
		return m.CountReportsFunc(ctx, participantID)
	}
	return 0, nil
}

// MockReportRepository is a mock implementation of ReportRepository
type MockReportRepository struct {
	CreateFunc            func(ctx context.Context, report *domain.Report) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	FindAllFunc           func(ctx context.Context) ([]*domain.Report, error)
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	CountFunc             func(ctx context.Context) (int64, error)
	CountParticipantsFunc func(ctx context.Context, reportID uuid.UUID) (int64, error)
}

func (m *MockReportRepository) Create(ctx context.Context, report *domain.Report) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, report)
	}
	return nil
}

func (m *MockReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockReportRepository) FindAll(ctx context.Context) ([]*domain.Report, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockReportRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockReportRepository) CountParticipants(ctx context.Context, reportID uuid.UUID) (int64, error) {
	if m.CountParticipantsFunc != nil {
		return m.CountParticipantsFunc(ctx, reportID)
	}
	return 0, nil
}

// MockReportParticipantRepository is a mock implementation of ReportParticipantRepository
type MockReportParticipantRepository struct {
	AttachFunc                     func(ctx context.Context, association *domain.ReportParticipant) error
	FindByReportIDFunc             func(ctx context.Context, reportID uuid.UUID) ([]*domain.ReportParticipant, error)
	FindByParticipantIDFunc        func(ctx context.Context, participantID uuid.UUID) ([]*domain.ReportParticipant, error)
	FindByReportAndRoleFunc        func(ctx context.Context, reportID uuid.UUID, role domain.Role) (*domain.ReportParticipant, error)
	FindByReportAndParticipantFunc func(ctx context.Context, reportID, participantID uuid.UUID) (*domain.ReportParticipant, error)
	DetachFunc                     func(ctx context.Context, reportID, participantID uuid.UUID) error
	DeleteByReportIDFunc           func(ctx context.Context, reportID uuid.UUID) error
}

func (m *MockReportParticipantRepository) Attach(ctx context.Context, association *domain.ReportParticipant) error {
	if m.AttachFunc != nil {
		return m.AttachFunc(ctx, association)
	}
	return nil
}

func (m *MockReportParticipantRepository) FindByReportID(ctx context.Context, reportID uuid.UUID) ([]*domain.ReportParticipant, error) {
	if m.FindByReportIDFunc != nil {
		return m.FindByReportIDFunc(ctx, reportID)
	}
	return nil, nil
}

func (m *MockReportParticipantRepository) FindByParticipantID(ctx context.Context, participantID uuid.UUID) ([]*domain.ReportParticipant, error) {
	if m.FindByParticipantIDFunc != nil {
		return m.FindByParticipantIDFunc(ctx, participantID)
	}
	return nil, nil
}

func (m *MockReportParticipantRepository) FindByReportAndRole(ctx context.Context, reportID uuid.UUID, role domain.Role) (*domain.ReportParticipant, error) {
	if m.FindByReportAndRoleFunc != nil {
		return m.FindByReportAndRoleFunc(ctx, reportID, role)
	}
	return nil, nil
}

func (m *MockReportParticipantRepository) FindByReportAndParticipant(ctx context.Context, reportID, participantID uuid.UUID) (*domain.ReportParticipant, error) {
	if m.FindByReportAndParticipantFunc != nil {
		return m.FindByReportAndParticipantFunc(ctx, reportID, participantID)
	}
	return nil, nil
}

func (m *MockReportParticipantRepository) Detach(ctx context.Context, reportID, participantID uuid.UUID) error {
	if m.DetachFunc != nil {
		return m.DetachFunc(ctx, reportID, participantID)
	}
	return nil
}

func (m *MockReportParticipantRepository) DeleteByReportID(ctx context.Context, reportID uuid.UUID) error {
	if m.DeleteByReportIDFunc != nil {
		return m.DeleteByReportIDFunc(ctx, reportID)
	}
	return nil
}
