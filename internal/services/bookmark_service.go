package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cerahati/backend/internal/models"
	appErrors "github.com/cerahati/backend/pkg/errors"
)

// BookmarkService manages user bookmarks on orphanages.
type BookmarkService struct {
	db *gorm.DB
}

// NewBookmarkService constructs a bookmark service.
func NewBookmarkService(db *gorm.DB) (*BookmarkService, error) {
	if db == nil {
		return nil, errors.New("bookmark service: db is required")
	}
	return &BookmarkService{db: db}, nil
}

// BookmarkInput captures the fields of a bookmark.
type BookmarkInput struct {
	UserID       uint
	RumahYatimID uint
}

// List returns all bookmarks.
func (s *BookmarkService) List(ctx context.Context) ([]models.Bookmark, error) {
	ctx = ensuredContext(ctx)

	var rows []models.Bookmark
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get returns a single bookmark by id.
func (s *BookmarkService) Get(ctx context.Context, id uint) (*models.Bookmark, error) {
	ctx = ensuredContext(ctx)

	var row models.Bookmark
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrBookmarkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create stores a new bookmark.
func (s *BookmarkService) Create(ctx context.Context, input BookmarkInput) (*models.Bookmark, error) {
	ctx = ensuredContext(ctx)

	row := models.Bookmark{
		UserID:       input.UserID,
		RumahYatimID: input.RumahYatimID,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update repoints an existing bookmark.
func (s *BookmarkService) Update(ctx context.Context, id uint, input BookmarkInput) error {
	ctx = ensuredContext(ctx)

	result := s.db.WithContext(ctx).Model(&models.Bookmark{}).Where("id = ?", id).Updates(map[string]interface{}{
		"user_id":        input.UserID,
		"rumah_yatim_id": input.RumahYatimID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrBookmarkNotFound
	}
	return nil
}

// Delete removes a bookmark by id.
func (s *BookmarkService) Delete(ctx context.Context, id uint) error {
	ctx = ensuredContext(ctx)

	result := s.db.WithContext(ctx).Delete(&models.Bookmark{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrBookmarkNotFound
	}
	return nil
}

// ListByUser returns the bookmarks a user has saved, joined with the
// orphanage's name and address. An empty result is reported as not found.
func (s *BookmarkService) ListByUser(ctx context.Context, userID uint) ([]models.UserBookmark, error) {
	ctx = ensuredContext(ctx)

	var rows []models.UserBookmark
	err := s.db.WithContext(ctx).
		Table("bookmark").
		Select("bookmark.*, rumah_yatim.nama_panti, rumah_yatim.alamat").
		Joins("JOIN rumah_yatim ON rumah_yatim.id = bookmark.rumah_yatim_id").
		Where("bookmark.user_id = ?", userID).
		Order("bookmark.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, appErrors.ErrNoBookmarksForUser
	}
	return rows, nil
}

// ListByOrphanage returns the bookmarks pointing at an orphanage.
func (s *BookmarkService) ListByOrphanage(ctx context.Context, orphanageID uint) ([]models.Bookmark, error) {
	ctx = ensuredContext(ctx)

	var rows []models.Bookmark
	err := s.db.WithContext(ctx).
		Where("rumah_yatim_id = ?", orphanageID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, appErrors.ErrNoBookmarksForHome
	}
	return rows, nil
}
