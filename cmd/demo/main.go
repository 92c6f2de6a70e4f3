package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wildlife-report-api/internal/config"
	"wildlife-report-api/internal/database"
	"wildlife-report-api/internal/domain"
	"wildlife-report-api/internal/dto"
	"wildlife-report-api/internal/job"
	"wildlife-report-api/internal/metrics"
	"wildlife-report-api/internal/repository"
	"wildlife-report-api/internal/service"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting wildlife report walkthrough",
		zap.String("env", cfg.App.Env),
		zap.String("driver", cfg.Database.Driver),
	)

	db, err := database.New(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime.Std(),
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
		logger.Fatal("Failed to migrate schema", zap.Error(err))
	}

	m := metrics.New()
	database.RegisterMetricsCallbacks(db, m)
	stop := make(chan struct{})
	defer close(stop)
	database.StartDBStatsCollector(db, m, 15*time.Second, stop)

	userRepo := repository.NewUserRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	reportRepo := repository.NewReportRepository(db)
	assocRepo := repository.NewReportParticipantRepository(db)

	registrationSvc := service.NewRegistrationService(participantRepo, userRepo, m, logger)
	reportSvc := service.NewReportService(reportRepo, participantRepo, assocRepo, m, logger)
	cleanupJob := job.NewCleanupJob(participantRepo, m, logger)

	ctx := context.Background()
	if err := run(ctx, logger, userRepo, registrationSvc, reportSvc, cleanupJob); err != nil {
		logger.Fatal("Walkthrough failed", zap.Error(err))
	}

	if reports, err := reportRepo.Count(ctx); err == nil {
		m.SetReportsTotal(reports)
	}
	if participants, err := participantRepo.Count(ctx); err == nil {
		m.SetParticipantsTotal(participants)
	}

	if cfg.Cleanup.Enabled {
		scheduler := job.NewScheduler(logger)
		if err := scheduler.AddJob(cfg.Cleanup.Schedule, cleanupJob); err != nil {
			logger.Fatal("Failed to schedule cleanup job", zap.Error(err))
		}
		scheduler.Start()
		defer scheduler.Stop()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("Shutting down")
	}
}

// run walks through the association model end to end: registration dedup,
// role attachment, eager loading, derived counts and cascade delete
func run(
	ctx context.Context,
	logger *zap.Logger,
	userRepo repository.UserRepository,
	registrationSvc service.RegistrationService,
	reportSvc service.ReportService,
	cleanupJob *job.CleanupJob,
) error {
	// Two user accounts
	alice := &domain.User{BaseModel: domain.BaseModel{ID: uuid.New()}, Name: "Alice", Email: "alice@example.com"}
	bob := &domain.User{BaseModel: domain.BaseModel{ID: uuid.New()}, Name: "Bob", Email: "bob@example.com"}
	for _, u := range []*domain.User{alice, bob} {
		if err := userRepo.Create(ctx, u); err != nil {
			return err
		}
	}

	// Register Alice twice. The second call comes back with the same
	// participant and Created=false instead of failing.
	aliceFirst, err := registrationSvc.RegisterUserParticipant(ctx, &dto.RegisterParticipantRequest{UserID: alice.ID})
	if err != nil {
		return err
	}
	aliceAgain, err := registrationSvc.RegisterUserParticipant(ctx, &dto.RegisterParticipantRequest{UserID: alice.ID})
	if err != nil {
		return err
	}
	logger.Info("Registration dedup",
		zap.Bool("first_created", aliceFirst.Created),
		zap.Bool("second_created", aliceAgain.Created),
		zap.Bool("same_row", aliceFirst.Participant.ID == aliceAgain.Participant.ID),
	)

	bobReg, err := registrationSvc.RegisterUserParticipant(ctx, &dto.RegisterParticipantRequest{UserID: bob.ID})
	if err != nil {
		return err
	}

	// Two participants without accounts
	max, err := registrationSvc.RegisterUnregisteredParticipant(ctx, &dto.CreateUnregisteredParticipantRequest{
		Name: "Max Mustermann", Email: "max@mustermann.com",
	})
	if err != nil {
		return err
	}
	marlene, err := registrationSvc.RegisterUnregisteredParticipant(ctx, &dto.CreateUnregisteredParticipantRequest{
		Name: "Marlene Mustermann",
	})
	if err != nil {
		return err
	}

	// Three sighting reports
	capercaillie, err := reportSvc.CreateReport(ctx, &dto.CreateReportRequest{
		Species: "Capercaillie",
		Details: []byte(`{"location":"Black Forest","count":2}`),
	})
	if err != nil {
		return err
	}
	blueTit, err := reportSvc.CreateReport(ctx, &dto.CreateReportRequest{Species: "Blue Tit"})
	if err != nil {
		return err
	}
	redPanda, err := reportSvc.CreateReport(ctx, &dto.CreateReportRequest{Species: "Red Panda"})
	if err != nil {
		return err
	}

	// Attach participants under roles. Each role is unique per report.
	attachments := []struct {
		reportID      uuid.UUID
		participantID uuid.UUID
		role          domain.Role
	}{
		{capercaillie.ID, aliceFirst.Participant.ID, domain.RoleCreator},
		{capercaillie.ID, max.ID, domain.RoleObserver},
		{blueTit.ID, bobReg.Participant.ID, domain.RoleCreator},
		{blueTit.ID, marlene.ID, domain.RoleReporter},
		{redPanda.ID, aliceFirst.Participant.ID, domain.RoleCreator},
	}
	for _, a := range attachments {
		if _, err := reportSvc.AddParticipant(ctx, a.reportID, &dto.AddParticipantRequest{
			ParticipantID: a.participantID,
			Role:          a.role,
		}); err != nil {
			return err
		}
	}

	// A second creator on the same report is a conflict
	if _, err := reportSvc.AddParticipant(ctx, capercaillie.ID, &dto.AddParticipantRequest{
		ParticipantID: bobReg.Participant.ID,
		Role:          domain.RoleCreator,
	}); err != nil {
		logger.Info("Duplicate role rejected as expected", zap.String("error", err.Error()))
	}

	// One fetch loads the report, its associations, the participants and
	// their wrapped users
	loaded, err := reportSvc.GetReport(ctx, capercaillie.ID)
	if err != nil {
		return err
	}
	for _, p := range loaded.Participants {
		logger.Info("Report participant",
			zap.String("species", loaded.Species),
			zap.String("role", string(p.Role)),
			zap.String("name", p.Participant.Name),
			zap.String("kind", string(p.Participant.Kind)),
		)
	}

	// Derived counts are single aggregations
	participantCount, err := reportSvc.ParticipantsCount(ctx, capercaillie.ID)
	if err != nil {
		return err
	}
	aliceReports, err := reportSvc.ReportsCount(ctx, aliceFirst.Participant.ID)
	if err != nil {
		return err
	}
	logger.Info("Derived counts",
		zap.Int64("capercaillie_participants", participantCount),
		zap.Int64("alice_reports", aliceReports),
	)

	// Deleting a report removes its association rows. Alice's participant
	// survives with one report fewer.
	if err := reportSvc.DeleteReport(ctx, redPanda.ID); err != nil {
		return err
	}
	aliceReports, err = reportSvc.ReportsCount(ctx, aliceFirst.Participant.ID)
	if err != nil {
		return err
	}
	logger.Info("After cascade delete", zap.Int64("alice_reports", aliceReports))

	// Detaching Marlene leaves her unregistered row orphaned; the cleanup
	// job sweeps it
	if err := reportSvc.RemoveParticipant(ctx, blueTit.ID, marlene.ID); err != nil {
		return err
	}
	cleanupJob.Run()

	return nil
}

func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
