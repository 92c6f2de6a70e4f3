package database

import (
	"testing"

	"go.uber.org/zap"
)

func TestNew_SQLite(t *testing.T) {
	db, err := New(Config{
		Driver:       "sqlite",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer Close(db)

	if err := SafeAutoMigrate(db, zap.NewNop()); err != nil {
		t.Fatalf("SafeAutoMigrate() error = %v", err)
	}

	// Migration is idempotent on an already-migrated schema
	if err := SafeAutoMigrate(db, zap.NewNop()); err != nil {
		t.Fatalf("SafeAutoMigrate() second run error = %v", err)
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(Config{Driver: "oracle"})
	if err == nil {
		t.Fatal("New() with unsupported driver should fail")
	}
}
