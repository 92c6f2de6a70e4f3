package repository

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wildlife-report-api/internal/domain"
)

// setupTestDB creates an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Report{},
		&domain.Participant{},
		&domain.ReportParticipant{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      name,
		Email:     email,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedReport(t *testing.T, db *gorm.DB, species string) *domain.Report {
	t.Helper()

	report := &domain.Report{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Species:   species,
	}
	if err := db.Create(report).Error; err != nil {
		t.Fatalf("failed to seed report: %v", err)
	}
	return report
}

func seedRegisteredParticipant(t *testing.T, db *gorm.DB, userID uuid.UUID) *domain.Participant {
	t.Helper()

	participant := &domain.Participant{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Kind:      domain.ParticipantKindRegistered,
		UserID:    &userID,
	}
	if err := db.Create(participant).Error; err != nil {
		t.Fatalf("failed to seed registered participant: %v", err)
	}
	return participant
}

func seedUnregisteredParticipant(t *testing.T, db *gorm.DB, name, email string) *domain.Participant {
	t.Helper()

	participant := &domain.Participant{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Kind:      domain.ParticipantKindUnregistered,
		Name:      name,
		Email:     email,
	}
	if err := db.Create(participant).Error; err != nil {
		t.Fatalf("failed to seed unregistered participant: %v", err)
	}
	return participant
}

func seedAssociation(t *testing.T, db *gorm.DB, report *domain.Report, participant *domain.Participant, role domain.Role) *domain.ReportParticipant {
	t.Helper()

	association := &domain.ReportParticipant{
		BaseModel:     domain.BaseModel{ID: uuid.New()},
		ReportID:      report.ID,
		ParticipantID: participant.ID,
		Kind:          participant.Kind,
		Role:          role,
	}
	if err := db.Create(association).Error; err != nil {
		t.Fatalf("failed to seed association: %v", err)
	}
	return association
}
