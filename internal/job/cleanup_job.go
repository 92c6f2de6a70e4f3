package job

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wildlife-report-api/internal/metrics"
	"wildlife-report-api/internal/repository"
)

// CleanupJob sweeps unregistered participants that no report references
// anymore. Registered participants are never touched: they represent a user's
// standing identity and survive with zero reports.
type CleanupJob struct {
	participantRepo repository.ParticipantRepository
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	participantRepo repository.ParticipantRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		participantRepo: participantRepo,
		metrics:         m,
		logger:          logger,
	}
}

// Run executes one sweep. It satisfies cron.Job so the scheduler can invoke
// it directly.
func (j *CleanupJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting cleanup job for orphaned unregistered participants")

	orphans, err := j.participantRepo.FindOrphans(ctx)
	if err != nil {
		j.logger.Error("Failed to find orphaned participants",
			zap.Error(err),
		)
		return
	}

	if len(orphans) == 0 {
		j.logger.Info("No orphaned participants found")
		return
	}

	ids := make([]uuid.UUID, 0, len(orphans))
	for _, orphan := range orphans {
		ids = append(ids, orphan.ID)
		j.logger.Debug("Marking orphaned participant for deletion",
			zap.String("participant_id", orphan.ID.String()),
			zap.String("name", orphan.Name),
		)
	}

	if err := j.participantRepo.DeleteBatch(ctx, ids); err != nil {
		j.logger.Error("Failed to delete orphaned participants",
			zap.Int("count", len(ids)),
			zap.Error(err),
		)
		return
	}

	if j.metrics != nil {
		j.metrics.AddOrphansCleaned(len(ids))
	}

	j.logger.Info("Cleanup job completed",
		zap.Int("deleted", len(ids)),
	)
}
