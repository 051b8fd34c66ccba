package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/cerahati/backend/internal/models"
	appErrors "github.com/cerahati/backend/pkg/errors"
)

// PrayerService manages the doa catalogue.
type PrayerService struct {
	db *gorm.DB
}

// NewPrayerService constructs a prayer service.
func NewPrayerService(db *gorm.DB) (*PrayerService, error) {
	if db == nil {
		return nil, errors.New("prayer service: db is required")
	}
	return &PrayerService{db: db}, nil
}

// PrayerInput captures the editable fields of a prayer.
type PrayerInput struct {
	Nama string
	Isi  string
}

// List returns every prayer.
func (s *PrayerService) List(ctx context.Context) ([]models.Prayer, error) {
	ctx = ensuredContext(ctx)

	var rows []models.Prayer
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get returns a single prayer by id.
func (s *PrayerService) Get(ctx context.Context, id uint) (*models.Prayer, error) {
	ctx = ensuredContext(ctx)

	var row models.Prayer
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrPrayerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts a new prayer.
func (s *PrayerService) Create(ctx context.Context, input PrayerInput) (*models.Prayer, error) {
	ctx = ensuredContext(ctx)

	row := models.Prayer{
		Nama: strings.TrimSpace(input.Nama),
		Isi:  input.Isi,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update replaces a prayer's title and body.
func (s *PrayerService) Update(ctx context.Context, id uint, input PrayerInput) error {
	ctx = ensuredContext(ctx)

	result := s.db.WithContext(ctx).Model(&models.Prayer{}).Where("id_doa = ?", id).Updates(map[string]interface{}{
		"nama": strings.TrimSpace(input.Nama),
		"isi":  input.Isi,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrPrayerNotFound
	}
	return nil
}

// Delete removes a prayer by id.
func (s *PrayerService) Delete(ctx context.Context, id uint) error {
	ctx = ensuredContext(ctx)

	result := s.db.WithContext(ctx).Where("id_doa = ?", id).Delete(&models.Prayer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrPrayerNotFound
	}
	return nil
}
