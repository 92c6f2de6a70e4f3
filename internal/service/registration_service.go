package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wildlife-report-api/internal/domain"
	"wildlife-report-api/internal/dto"
	"wildlife-report-api/internal/metrics"
	"wildlife-report-api/internal/repository"
	"wildlife-report-api/internal/response"
)

// RegistrationService defines the interface for participant registration logic
type RegistrationService interface {
	RegisterUserParticipant(ctx context.Context, req *dto.RegisterParticipantRequest) (*dto.RegisterParticipantResponse, error)
	RegisterUnregisteredParticipant(ctx context.Context, req *dto.CreateUnregisteredParticipantRequest) (*dto.ParticipantResponse, error)
	GetParticipant(ctx context.Context, participantID uuid.UUID) (*dto.ParticipantResponse, error)
}

// registrationServiceImpl is the implementation of RegistrationService
type registrationServiceImpl struct {
	participantRepo repository.ParticipantRepository
	userRepo        repository.UserRepository
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewRegistrationService creates a new instance of RegistrationService
func NewRegistrationService(
	participantRepo repository.ParticipantRepository,
	userRepo repository.UserRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) RegistrationService {
	return &registrationServiceImpl{
		participantRepo: participantRepo,
		userRepo:        userRepo,
		metrics:         m,
		logger:          logger,
	}
}

// RegisterUserParticipant registers a user as a participant. A user that is
// already registered gets the existing participant back with Created=false;
// this is never an error.
func (s *registrationServiceImpl) RegisterUserParticipant(ctx context.Context, req *dto.RegisterParticipantRequest) (*dto.RegisterParticipantResponse, error) {
	if req.UserID == uuid.Nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "User ID is required", "")
	}

	exists, err := s.userRepo.Exists(ctx, req.UserID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
	}

	participant, created, err := s.participantRepo.GetOrCreateRegistered(ctx, req.UserID)
	if err != nil {
		s.logger.Error("Failed to register participant",
			zap.String("user_id", req.UserID.String()),
			zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to register participant", err.Error())
	}

	if created {
		if s.metrics != nil {
			s.metrics.IncrementParticipantRegistered()
		}
	} else {
		if s.metrics != nil {
			s.metrics.IncrementParticipantDedup()
		}
		s.logger.Info("Reusing existing registered participant",
			zap.String("user_id", req.UserID.String()),
			zap.String("participant_id", participant.ID.String()))
	}

	resp := dto.ToParticipantResponse(participant)
	return &dto.RegisterParticipantResponse{Participant: resp, Created: created}, nil
}

// RegisterUnregisteredParticipant creates a participant without a user account
func (s *registrationServiceImpl) RegisterUnregisteredParticipant(ctx context.Context, req *dto.CreateUnregisteredParticipantRequest) (*dto.ParticipantResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Participant name is required", "")
	}

	participant := &domain.Participant{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Kind:      domain.ParticipantKindUnregistered,
		Name:      name,
		Email:     strings.TrimSpace(req.Email),
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		s.logger.Error("Failed to create unregistered participant",
			zap.String("name", name),
			zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create participant", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementParticipantRegistered()
	}

	resp := dto.ToParticipantResponse(participant)
	return &resp, nil
}

// GetParticipant fetches a participant with its wrapped user resolved
func (s *registrationServiceImpl) GetParticipant(ctx context.Context, participantID uuid.UUID) (*dto.ParticipantResponse, error) {
	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Participant not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch participant", err.Error())
	}

	resp := dto.ToParticipantResponse(participant)
	return &resp, nil
}
