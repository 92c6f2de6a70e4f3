package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wildlife-report-api/internal/domain"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.Participant) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	FindRegisteredByUser(ctx context.Context, userID uuid.UUID) (*domain.Participant, error)
	GetOrCreateRegistered(ctx context.Context, userID uuid.UUID) (*domain.Participant, bool, error)
	FindOrphans(ctx context.Context) ([]*domain.Participant, error)
	DeleteBatch(ctx context.Context, ids []uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountReports(ctx context.Context, participantID uuid.UUID) (int64, error)
}

// participantRepositoryImpl is the GORM implementation of ParticipantRepository
type participantRepositoryImpl struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new instance of ParticipantRepository
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepositoryImpl{db: db}
}

// Create creates a new participant
func (r *participantRepositoryImpl) Create(ctx context.Context, participant *domain.Participant) error {
	if err := r.db.WithContext(ctx).Create(participant).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a participant by its ID with the wrapped user preloaded
func (r *participantRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	var participant domain.Participant
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&participant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// FindRegisteredByUser finds the registered participant wrapping a user
func (r *participantRepositoryImpl) FindRegisteredByUser(ctx context.Context, userID uuid.UUID) (*domain.Participant, error) {
	var participant domain.Participant
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("kind = ? AND user_id = ?", domain.ParticipantKindRegistered, userID).
		First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// GetOrCreateRegistered returns the registered participant for a user,
// creating it on first registration. A second registration attempt for the
// same user is deduplicated silently and returns the pre-existing row.
// The boolean reports whether a new row was created.
func (r *participantRepositoryImpl) GetOrCreateRegistered(ctx context.Context, userID uuid.UUID) (*domain.Participant, bool, error) {
	existing, err := r.FindRegisteredByUser(ctx, userID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	participant := &domain.Participant{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Kind:      domain.ParticipantKindRegistered,
		UserID:    &userID,
	}
	if err := r.db.WithContext(ctx).Create(participant).Error; err != nil {
		// A concurrent registration may have hit the unique user_id index
		// first; resolve to the winner's row.
		if IsUniqueViolation(err) {
			existing, findErr := r.FindRegisteredByUser(ctx, userID)
			if findErr != nil {
				return nil, false, findErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	return r.reloadWithUser(ctx, participant)
}

// reloadWithUser refetches a freshly created participant so the wrapped user
// relation is populated like every other read path
func (r *participantRepositoryImpl) reloadWithUser(ctx context.Context, participant *domain.Participant) (*domain.Participant, bool, error) {
	loaded, err := r.FindByID(ctx, participant.ID)
	if err != nil {
		return nil, false, err
	}
	return loaded, true, nil
}

// FindOrphans returns unregistered participants with no remaining association
// rows. Unregistered participants exist per report, so these are leftovers
// from report deletion.
func (r *participantRepositoryImpl) FindOrphans(ctx context.Context) ([]*domain.Participant, error) {
	var participants []*domain.Participant
	if err := r.db.WithContext(ctx).
		Where("kind = ?", domain.ParticipantKindUnregistered).
		Where("NOT EXISTS (SELECT 1 FROM report_participants rp WHERE rp.participant_id = participants.id)").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// DeleteBatch deletes participants by their IDs
func (r *participantRepositoryImpl) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(&domain.Participant{}, "id IN ?", ids).Error; err != nil {
		return err
	}
	return nil
}

// Count returns the total number of participants
func (r *participantRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Participant{}).Count(&count).Error
	return count, err
}

// CountReports returns the number of reports a participant is attached to
// as a single aggregation over the association table
func (r *participantRepositoryImpl) CountReports(ctx context.Context, participantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ReportParticipant{}).
		Where("participant_id = ?", participantID).
		Count(&count).Error
	return count, err
}

// IsUniqueViolation reports whether err is a unique constraint violation.
// GORM translates some driver errors to ErrDuplicatedKey; the string checks
// cover the raw postgres and sqlite messages.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
