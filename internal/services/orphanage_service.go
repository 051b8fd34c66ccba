package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/cerahati/backend/internal/models"
	appErrors "github.com/cerahati/backend/pkg/errors"
)

// OrphanageService manages CRUD operations for rumah yatim records.
type OrphanageService struct {
	db *gorm.DB
}

// NewOrphanageService constructs an orphanage service once a database handle is supplied.
func NewOrphanageService(db *gorm.DB) (*OrphanageService, error) {
	if db == nil {
		return nil, errors.New("orphanage service: db is required")
	}
	return &OrphanageService{db: db}, nil
}

// OrphanageInput captures the mutable fields of an orphanage profile.
type OrphanageInput struct {
	NamaPanti    string
	NamaKota     string
	NamaPengurus string
	Alamat       string
	Foto         string
	Deskripsi    string
	JumlahAnak   int
	Kapasitas    int
	Kontak       string
	Latitude     float64
	Longtitude   float64
}

// List returns every orphanage.
func (s *OrphanageService) List(ctx context.Context) ([]models.Orphanage, error) {
	ctx = ensuredContext(ctx)

	var rows []models.Orphanage
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get returns a single orphanage by id.
func (s *OrphanageService) Get(ctx context.Context, id uint) (*models.Orphanage, error) {
	ctx = ensuredContext(ctx)

	var row models.Orphanage
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrOrphanageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts a new orphanage and returns it with its generated id.
func (s *OrphanageService) Create(ctx context.Context, input OrphanageInput) (*models.Orphanage, error) {
	ctx = ensuredContext(ctx)

	row := models.Orphanage{
		NamaPanti:    strings.TrimSpace(input.NamaPanti),
		NamaKota:     strings.TrimSpace(input.NamaKota),
		NamaPengurus: strings.TrimSpace(input.NamaPengurus),
		Alamat:       input.Alamat,
		Foto:         input.Foto,
		Deskripsi:    input.Deskripsi,
		JumlahAnak:   input.JumlahAnak,
		Kapasitas:    input.Kapasitas,
		Kontak:       input.Kontak,
		Latitude:     input.Latitude,
		Longtitude:   input.Longtitude,
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update replaces the mutable fields of an orphanage.
func (s *OrphanageService) Update(ctx context.Context, id uint, input OrphanageInput) error {
	ctx = ensuredContext(ctx)

	result := s.db.WithContext(ctx).Model(&models.Orphanage{}).Where("id = ?", id).Updates(map[string]interface{}{
		"nama_panti":    strings.TrimSpace(input.NamaPanti),
		"nama_kota":     strings.TrimSpace(input.NamaKota),
		"nama_pengurus": strings.TrimSpace(input.NamaPengurus),
		"alamat":        input.Alamat,
		"foto":          input.Foto,
		"deskripsi":     input.Deskripsi,
		"jumlah_anak":   input.JumlahAnak,
		"kapasitas":     input.Kapasitas,
		"kontak":        input.Kontak,
		"latitude":      input.Latitude,
		"longtitude":    input.Longtitude,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrOrphanageNotFound
	}
	return nil
}

// Delete removes an orphanage by id.
func (s *OrphanageService) Delete(ctx context.Context, id uint) error {
	ctx = ensuredContext(ctx)

	result := s.db.WithContext(ctx).Delete(&models.Orphanage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrOrphanageNotFound
	}
	return nil
}

// Search finds orphanages whose name or city matches the query.
func (s *OrphanageService) Search(ctx context.Context, query string) ([]models.Orphanage, error) {
	ctx = ensuredContext(ctx)

	pattern := "%" + strings.TrimSpace(query) + "%"
	var rows []models.Orphanage
	if err := s.db.WithContext(ctx).
		Where("nama_panti LIKE ? OR nama_kota LIKE ?", pattern, pattern).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByCity returns orphanages located in the given city.
func (s *OrphanageService) ListByCity(ctx context.Context, city string) ([]models.Orphanage, error) {
	ctx = ensuredContext(ctx)

	var rows []models.Orphanage
	if err := s.db.WithContext(ctx).Where("nama_kota = ?", city).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, appErrors.ErrNoOrphanagesInCity
	}
	return rows, nil
}
