package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cerahati/backend/internal/models"
	appErrors "github.com/cerahati/backend/pkg/errors"
)

// DonationService manages donation records.
type DonationService struct {
	db *gorm.DB
}

// NewDonationService constructs a donation service.
func NewDonationService(db *gorm.DB) (*DonationService, error) {
	if db == nil {
		return nil, errors.New("donation service: db is required")
	}
	return &DonationService{db: db}, nil
}

// DonationInput captures the fields supplied when recording or updating a donation.
type DonationInput struct {
	UserID        uint
	RumahYatimID  uint
	Amount        float64
	PaymentMethod string
	Status        string
}

// List returns all donations.
func (s *DonationService) List(ctx context.Context) ([]models.Donation, error) {
	ctx = ensuredContext(ctx)

	var rows []models.Donation
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get returns a single donation by id.
func (s *DonationService) Get(ctx context.Context, id uint) (*models.Donation, error) {
	ctx = ensuredContext(ctx)

	var row models.Donation
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrDonationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create records a new donation. A transaction id is generated when none is
// carried over from the payment gateway.
func (s *DonationService) Create(ctx context.Context, input DonationInput) (*models.Donation, error) {
	ctx = ensuredContext(ctx)

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = models.DonationStatusPending
	}

	row := models.Donation{
		UserID:        input.UserID,
		RumahYatimID:  input.RumahYatimID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Status:        status,
		TransactionID: uuid.NewString(),
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update replaces the mutable fields of a donation.
func (s *DonationService) Update(ctx context.Context, id uint, input DonationInput) error {
	ctx = ensuredContext(ctx)

	result := s.db.WithContext(ctx).Model(&models.Donation{}).Where("id = ?", id).Updates(map[string]interface{}{
		"user_id":        input.UserID,
		"rumah_yatim_id": input.RumahYatimID,
		"amount":         input.Amount,
		"payment_method": input.PaymentMethod,
		"status":         input.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrDonationNotFound
	}
	return nil
}

// Delete removes a donation by id.
func (s *DonationService) Delete(ctx context.Context, id uint) error {
	ctx = ensuredContext(ctx)

	result := s.db.WithContext(ctx).Delete(&models.Donation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrDonationNotFound
	}
	return nil
}

// ListByUser returns a user's donations joined with their profile and the
// orphanage name. An empty result is reported as not found.
func (s *DonationService) ListByUser(ctx context.Context, userID uint) ([]models.UserDonation, error) {
	ctx = ensuredContext(ctx)

	var rows []models.UserDonation
	err := s.db.WithContext(ctx).
		Table("donation").
		Select("donation.*, users.name, users.email, rumah_yatim.nama_panti").
		Joins("JOIN users ON users.id = donation.user_id").
		Joins("JOIN rumah_yatim ON rumah_yatim.id = donation.rumah_yatim_id").
		Where("donation.user_id = ?", userID).
		Order("donation.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, appErrors.ErrNoDonationsForUser
	}
	return rows, nil
}

// PaymentTrend summarises the donations made with one payment method in one
// calendar month.
type PaymentTrend struct {
	PaymentMethod     string  `json:"payment_method"`
	Month             string  `json:"month"`
	TotalTransactions int64   `json:"total_transactions"`
	TotalAmount       float64 `json:"total_amount"`
	AverageAmount     float64 `json:"average_amount"`
}

// PaymentTrends rolls up all donations by payment method and month, newest
// month first, largest amount first within a month.
func (s *DonationService) PaymentTrends(ctx context.Context) ([]PaymentTrend, error) {
	ctx = ensuredContext(ctx)

	var rows []models.Donation
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	type bucket struct{ method, month string }
	totals := map[bucket]*PaymentTrend{}
	for _, d := range rows {
		key := bucket{method: d.PaymentMethod, month: monthKey(d.CreatedAt)}
		t, ok := totals[key]
		if !ok {
			t = &PaymentTrend{PaymentMethod: key.method, Month: key.month}
			totals[key] = t
		}
		t.TotalTransactions++
		t.TotalAmount += d.Amount
	}

	trends := make([]PaymentTrend, 0, len(totals))
	for _, t := range totals {
		t.AverageAmount = t.TotalAmount / float64(t.TotalTransactions)
		trends = append(trends, *t)
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Month != trends[j].Month {
			return trends[i].Month > trends[j].Month
		}
		return trends[i].TotalAmount > trends[j].TotalAmount
	})
	return trends, nil
}

// OrphanageImpact summarises what donations have meant for one orphanage.
type OrphanageImpact struct {
	ID                  uint       `json:"id"`
	NamaPanti           string     `json:"nama_panti"`
	JumlahAnak          int        `json:"jumlah_anak"`
	TotalDonations      int64      `json:"total_donations"`
	TotalDonated        float64    `json:"total_donated"`
	UniqueDonors        int64      `json:"unique_donors"`
	AverageDonation     float64    `json:"average_donation"`
	FirstDonationDate   *time.Time `json:"first_donation_date"`
	LastDonationDate    *time.Time `json:"last_donation_date"`
	DonationPeriodDays  int64      `json:"donation_period_days"`
	DonationPerChild    float64    `json:"donation_per_child"`
	DonationsLast30Days int64      `json:"donations_last_30_days"`
	AmountLast30Days    float64    `json:"amount_last_30_days"`
}

// ImpactAnalysis computes the impact summary for an orphanage. The orphanage
// itself must exist; having received no donations yet is not an error.
func (s *DonationService) ImpactAnalysis(ctx context.Context, orphanageID uint) (*OrphanageImpact, error) {
	ctx = ensuredContext(ctx)

	var home models.Orphanage
	err := s.db.WithContext(ctx).First(&home, orphanageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrOrphanageNotFound
	}
	if err != nil {
		return nil, err
	}

	var rows []models.Donation
	if err := s.db.WithContext(ctx).Where("rumah_yatim_id = ?", orphanageID).Find(&rows).Error; err != nil {
		return nil, err
	}

	impact := &OrphanageImpact{
		ID:         home.ID,
		NamaPanti:  home.NamaPanti,
		JumlahAnak: home.JumlahAnak,
	}

	donors := map[uint]struct{}{}
	cutoff := time.Now().AddDate(0, 0, -30)
	for _, d := range rows {
		impact.TotalDonations++
		impact.TotalDonated += d.Amount
		donors[d.UserID] = struct{}{}

		created := d.CreatedAt
		if impact.FirstDonationDate == nil || created.Before(*impact.FirstDonationDate) {
			first := created
			impact.FirstDonationDate = &first
		}
		if impact.LastDonationDate == nil || created.After(*impact.LastDonationDate) {
			last := created
			impact.LastDonationDate = &last
		}
		if created.After(cutoff) {
			impact.DonationsLast30Days++
			impact.AmountLast30Days += d.Amount
		}
	}
	impact.UniqueDonors = int64(len(donors))
	if impact.TotalDonations > 0 {
		impact.AverageDonation = impact.TotalDonated / float64(impact.TotalDonations)
	}
	if impact.FirstDonationDate != nil && impact.LastDonationDate != nil {
		impact.DonationPeriodDays = int64(impact.LastDonationDate.Sub(*impact.FirstDonationDate).Hours() / 24)
	}
	if home.JumlahAnak > 0 {
		impact.DonationPerChild = impact.TotalDonated / float64(home.JumlahAnak)
	}
	return impact, nil
}

// TimelineEntry summarises one month of donations to an orphanage.
type TimelineEntry struct {
	Month          int      `json:"month"`
	Year           int      `json:"year"`
	DonationCount  int64    `json:"donation_count"`
	TotalAmount    float64  `json:"total_amount"`
	AverageAmount  float64  `json:"average_amount"`
	UniqueDonors   int64    `json:"unique_donors"`
	PaymentMethods []string `json:"payment_methods"`
}

// Timeline rolls up an orphanage's donations into a month-by-month history,
// newest month first. An orphanage with no donations at all is reported as
// not found.
func (s *DonationService) Timeline(ctx context.Context, orphanageID uint) ([]TimelineEntry, error) {
	ctx = ensuredContext(ctx)

	var rows []models.Donation
	if err := s.db.WithContext(ctx).Where("rumah_yatim_id = ?", orphanageID).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, appErrors.ErrNoDonationTimeline
	}

	type bucket struct{ year, month int }
	type monthTotals struct {
		entry   TimelineEntry
		donors  map[uint]struct{}
		methods map[string]struct{}
	}
	totals := map[bucket]*monthTotals{}
	for _, d := range rows {
		key := bucket{year: d.CreatedAt.Year(), month: int(d.CreatedAt.Month())}
		t, ok := totals[key]
		if !ok {
			t = &monthTotals{
				entry:   TimelineEntry{Month: key.month, Year: key.year},
				donors:  map[uint]struct{}{},
				methods: map[string]struct{}{},
			}
			totals[key] = t
		}
		t.entry.DonationCount++
		t.entry.TotalAmount += d.Amount
		t.donors[d.UserID] = struct{}{}
		if d.PaymentMethod != "" {
			t.methods[d.PaymentMethod] = struct{}{}
		}
	}

	entries := make([]TimelineEntry, 0, len(totals))
	for _, t := range totals {
		t.entry.AverageAmount = t.entry.TotalAmount / float64(t.entry.DonationCount)
		t.entry.UniqueDonors = int64(len(t.donors))
		t.entry.PaymentMethods = make([]string, 0, len(t.methods))
		for m := range t.methods {
			t.entry.PaymentMethods = append(t.entry.PaymentMethods, m)
		}
		sort.Strings(t.entry.PaymentMethods)
		entries = append(entries, t.entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Year != entries[j].Year {
			return entries[i].Year > entries[j].Year
		}
		return entries[i].Month > entries[j].Month
	})
	return entries, nil
}

// ListByOrphanage returns all donations received by an orphanage.
func (s *DonationService) ListByOrphanage(ctx context.Context, orphanageID uint) ([]models.Donation, error) {
	ctx = ensuredContext(ctx)

	var rows []models.Donation
	err := s.db.WithContext(ctx).
		Where("rumah_yatim_id = ?", orphanageID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, appErrors.ErrNoDonationsForHome
	}
	return rows, nil
}
