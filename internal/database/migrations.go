package database

import (
	"gorm.io/gorm"

	"github.com/cerahati/backend/internal/models"
)

// AutoMigrate creates or updates the database schema for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Orphanage{},
		&models.User{},
		&models.Donation{},
		&models.Bookmark{},
		&models.Prayer{},
		&models.CacheEntry{},
	)
}

// SeedData inserts a handful of prayers so a fresh install is not empty.
// Rows are matched by name, so re-running the seed is safe.
func SeedData(db *gorm.DB) error {
	prayers := []models.Prayer{
		{Nama: "Doa untuk anak yatim", Isi: "Ya Allah, lindungilah anak-anak yatim di mana pun mereka berada."},
		{Nama: "Doa sebelum bersedekah", Isi: "Ya Allah, terimalah sedekah kami dan berkahilah harta kami."},
	}

	for _, prayer := range prayers {
		if err := db.Where(models.Prayer{Nama: prayer.Nama}).Attrs(prayer).FirstOrCreate(&models.Prayer{}).Error; err != nil {
			return err
		}
	}

	return nil
}
