package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cerahati/backend/internal/models"
	appErrors "github.com/cerahati/backend/pkg/errors"
)

// UserService manages donor accounts.
type UserService struct {
	db *gorm.DB
}

// NewUserService constructs a user service.
func NewUserService(db *gorm.DB) (*UserService, error) {
	if db == nil {
		return nil, errors.New("user service: db is required")
	}
	return &UserService{db: db}, nil
}

// UserInput captures the fields supplied on registration and profile updates.
type UserInput struct {
	Username string
	Name     string
	Email    string
	Password string
}

// List returns all registered users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	ctx = ensuredContext(ctx)

	var rows []models.User
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get returns a single user by id.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	ctx = ensuredContext(ctx)

	var row models.User
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetByUsername returns a user by their unique username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx = ensuredContext(ctx)

	var row models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create registers a new user. The password is stored as a bcrypt hash.
func (s *UserService) Create(ctx context.Context, input UserInput) (*models.User, error) {
	ctx = ensuredContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	row := models.User{
		Username: strings.TrimSpace(input.Username),
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: string(hash),
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update replaces a user's profile fields. An empty password leaves the
// stored hash untouched.
func (s *UserService) Update(ctx context.Context, id uint, input UserInput) error {
	ctx = ensuredContext(ctx)

	updates := map[string]interface{}{
		"username": strings.TrimSpace(input.Username),
		"name":     strings.TrimSpace(input.Name),
		"email":    strings.ToLower(strings.TrimSpace(input.Email)),
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		updates["password"] = string(hash)
	}

	result := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	ctx = ensuredContext(ctx)

	result := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

// UserProfile summarizes a donor's account alongside their giving totals.
type UserProfile struct {
	User                models.User `json:"user"`
	DonationCount       int64       `json:"donation_count"`
	TotalDonations      float64     `json:"total_donations"`
	OrphanagesSupported int64       `json:"orphanages_supported"`
}

// Profile returns the profile summary for a user.
func (s *UserService) Profile(ctx context.Context, id uint) (*UserProfile, error) {
	ctx = ensuredContext(ctx)

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	type totals struct {
		DonationCount       int64
		TotalDonations      float64
		OrphanagesSupported int64
	}
	var t totals
	err = s.db.WithContext(ctx).
		Table("donation").
		Select("COUNT(id) AS donation_count, COALESCE(SUM(amount), 0) AS total_donations, COUNT(DISTINCT rumah_yatim_id) AS orphanages_supported").
		Where("user_id = ? AND status = ?", id, models.DonationStatusCompleted).
		Scan(&t).Error
	if err != nil {
		return nil, err
	}

	return &UserProfile{
		User:                *user,
		DonationCount:       t.DonationCount,
		TotalDonations:      t.TotalDonations,
		OrphanagesSupported: t.OrphanagesSupported,
	}, nil
}

// UserActivity lists a user's recent donations and saved bookmarks.
type UserActivity struct {
	Donations []models.Donation `json:"donations"`
	Bookmarks []models.Bookmark `json:"bookmarks"`
}

// Activity returns a user's recent donations and bookmarks.
func (s *UserService) Activity(ctx context.Context, id uint) (*UserActivity, error) {
	ctx = ensuredContext(ctx)

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	activity := &UserActivity{
		Donations: []models.Donation{},
		Bookmarks: []models.Bookmark{},
	}
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", id).
		Order("created_at DESC").
		Limit(20).
		Find(&activity.Donations).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", id).
		Order("created_at DESC").
		Limit(20).
		Find(&activity.Bookmarks).Error; err != nil {
		return nil, err
	}
	return activity, nil
}

// MonthlyDonationSummary is one month of a user's giving history.
type MonthlyDonationSummary struct {
	Month               string  `json:"month"`
	DonationCount       int64   `json:"donation_count"`
	TotalAmount         float64 `json:"total_amount"`
	OrphanagesSupported int64   `json:"orphanages_supported"`
}

// MonthlyDonations rolls up a user's donations by calendar month, newest
// month first. A user with no donations gets an empty history.
func (s *UserService) MonthlyDonations(ctx context.Context, id uint) ([]MonthlyDonationSummary, error) {
	ctx = ensuredContext(ctx)

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	var rows []models.Donation
	if err := s.db.WithContext(ctx).Where("user_id = ?", id).Find(&rows).Error; err != nil {
		return nil, err
	}

	type monthTotals struct {
		summary MonthlyDonationSummary
		homes   map[uint]struct{}
	}
	totals := map[string]*monthTotals{}
	for _, d := range rows {
		key := monthKey(d.CreatedAt)
		t, ok := totals[key]
		if !ok {
			t = &monthTotals{summary: MonthlyDonationSummary{Month: key}, homes: map[uint]struct{}{}}
			totals[key] = t
		}
		t.summary.DonationCount++
		t.summary.TotalAmount += d.Amount
		t.homes[d.RumahYatimID] = struct{}{}
	}

	months := make([]MonthlyDonationSummary, 0, len(totals))
	for _, t := range totals {
		t.summary.OrphanagesSupported = int64(len(t.homes))
		months = append(months, t.summary)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month > months[j].Month })
	return months, nil
}

// UserEngagement summarises how actively a user donates and bookmarks.
type UserEngagement struct {
	ID                     uint    `json:"id"`
	Name                   string  `json:"name"`
	DonationCount          int64   `json:"donation_count"`
	BookmarkCount          int64   `json:"bookmark_count"`
	OrphanagesSupported    int64   `json:"orphanages_supported"`
	TotalDonated           float64 `json:"total_donated"`
	DaysSinceFirstDonation *int64  `json:"days_since_first_donation"`
	DaysSinceLastDonation  *int64  `json:"days_since_last_donation"`
	DonationsLast30Days    int64   `json:"donations_last_30_days"`
	BookmarksLast30Days    int64   `json:"bookmarks_last_30_days"`
}

// Engagement computes the engagement summary for a user. The day counters
// stay null until the user has donated at least once.
func (s *UserService) Engagement(ctx context.Context, id uint) (*UserEngagement, error) {
	ctx = ensuredContext(ctx)

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var donations []models.Donation
	if err := s.db.WithContext(ctx).Where("user_id = ?", id).Find(&donations).Error; err != nil {
		return nil, err
	}
	var bookmarks []models.Bookmark
	if err := s.db.WithContext(ctx).Where("user_id = ?", id).Find(&bookmarks).Error; err != nil {
		return nil, err
	}

	engagement := &UserEngagement{
		ID:            user.ID,
		Name:          user.Name,
		DonationCount: int64(len(donations)),
		BookmarkCount: int64(len(bookmarks)),
	}

	now := time.Now()
	cutoff := now.AddDate(0, 0, -30)
	homes := map[uint]struct{}{}
	var first, last *time.Time
	for _, d := range donations {
		engagement.TotalDonated += d.Amount
		homes[d.RumahYatimID] = struct{}{}

		created := d.CreatedAt
		if first == nil || created.Before(*first) {
			f := created
			first = &f
		}
		if last == nil || created.After(*last) {
			l := created
			last = &l
		}
		if created.After(cutoff) {
			engagement.DonationsLast30Days++
		}
	}
	engagement.OrphanagesSupported = int64(len(homes))
	if first != nil {
		days := int64(now.Sub(*first).Hours() / 24)
		engagement.DaysSinceFirstDonation = &days
	}
	if last != nil {
		days := int64(now.Sub(*last).Hours() / 24)
		engagement.DaysSinceLastDonation = &days
	}
	for _, b := range bookmarks {
		if b.CreatedAt.After(cutoff) {
			engagement.BookmarksLast30Days++
		}
	}
	return engagement, nil
}

// Authenticate verifies a username/password pair and returns the matching user.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	ctx = ensuredContext(ctx)

	var row models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(row.Password), []byte(password)) != nil {
		return nil, appErrors.ErrInvalidCredentials
	}
	return &row, nil
}
