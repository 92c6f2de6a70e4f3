package job

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs registered jobs on a cron schedule
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewScheduler creates a new Scheduler instance
func NewScheduler(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: logger,
	}
}

// AddJob registers a job under a cron spec, e.g. "@hourly" or "0 3 * * *"
func (s *Scheduler) AddJob(spec string, job cron.Job) error {
	_, err := s.cron.AddJob(spec, job)
	if err != nil {
		s.logger.Error("Failed to register job",
			zap.String("spec", spec),
			zap.Error(err),
		)
		return err
	}
	s.logger.Info("Registered job", zap.String("spec", spec))
	return nil
}

// Start begins running jobs in their own goroutines
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}
