package database

import (
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/cerahati/backend/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(Config{Driver: "sqlite"})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func TestOpenSQLiteMemory(t *testing.T) {
	db := openTestDB(t)

	if err := db.Exec("SELECT 1").Error; err != nil {
		t.Fatalf("expected health query to succeed: %v", err)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(Config{Driver: "oracle"}); err == nil {
		t.Fatal("expected unsupported driver error")
	}
}

func TestAutoMigrateAndSeedData(t *testing.T) {
	db := openTestDB(t)

	if err := AutoMigrateAndSeed(db); err != nil {
		t.Fatalf("auto migrate and seed failed: %v", err)
	}

	var prayerCount int64
	if err := db.Model(&models.Prayer{}).Count(&prayerCount).Error; err != nil {
		t.Fatalf("count prayers: %v", err)
	}
	if prayerCount < 2 {
		t.Fatalf("expected at least 2 seeded prayers, got %d", prayerCount)
	}

	// Seeding twice must not duplicate rows.
	if err := SeedData(db); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	var again int64
	if err := db.Model(&models.Prayer{}).Count(&again).Error; err != nil {
		t.Fatalf("count prayers: %v", err)
	}
	if again != prayerCount {
		t.Fatalf("expected seed to be idempotent, got %d then %d", prayerCount, again)
	}
}

func TestBuildMySQLDSNDefaults(t *testing.T) {
	dsn, err := buildMySQLDSN(Config{
		User: "cerahati",
		Name: "cerahati",
	})
	if err != nil {
		t.Fatalf("build dsn: %v", err)
	}

	expected := "cerahati@tcp(127.0.0.1:3306)/cerahati?charset=utf8mb4&loc=Local&parseTime=True"
	if dsn != expected {
		t.Fatalf("expected %q, got %q", expected, dsn)
	}
}

func TestBuildPostgresDSNDefaults(t *testing.T) {
	dsn, err := buildPostgresDSN(Config{
		User: "cerahati",
		Name: "cerahati",
	})
	if err != nil {
		t.Fatalf("build dsn: %v", err)
	}

	expected := "host=localhost port=5432 user=cerahati dbname=cerahati sslmode=disable"
	if dsn != expected {
		t.Fatalf("expected %q, got %q", expected, dsn)
	}
}

func TestBuildDSNRequiresUserAndName(t *testing.T) {
	if _, err := buildMySQLDSN(Config{}); err == nil {
		t.Fatal("expected error for missing mysql credentials")
	}
	if _, err := buildPostgresDSN(Config{}); err == nil {
		t.Fatal("expected error for missing postgres credentials")
	}
}

func TestBuildPostgresDSNWithOptions(t *testing.T) {
	dsn, err := buildPostgresDSN(Config{
		User:     "user",
		Name:     "db",
		Host:     "db.example.com",
		Port:     6543,
		Password: "pass",
		Options: map[string]string{
			"sslmode": "require",
		},
	})
	if err != nil {
		t.Fatalf("build dsn: %v", err)
	}

	for _, part := range []string{"host=db.example.com", "port=6543", "password=pass", "sslmode=require"} {
		if !strings.Contains(dsn, part) {
			t.Fatalf("dsn %q missing %q", dsn, part)
		}
	}
}
