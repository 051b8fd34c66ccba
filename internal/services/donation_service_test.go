package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cerahati/backend/internal/database/testutil"
	"github.com/cerahati/backend/internal/models"
	appErrors "github.com/cerahati/backend/pkg/errors"
)

func newDonationService(t *testing.T) (*DonationService, *gorm.DB) {
	t.Helper()

	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewDonationService(db)
	require.NoError(t, err)
	return svc, db
}

func seedDonor(t *testing.T, db *gorm.DB) (models.User, models.Orphanage) {
	t.Helper()

	user := models.User{Username: "budi", Name: "Budi", Email: "budi@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	home := models.Orphanage{NamaPanti: "Kasih Ibu", NamaKota: "Bandung"}
	require.NoError(t, db.Create(&home).Error)

	return user, home
}

func TestDonationServiceCreateGeneratesTransactionID(t *testing.T) {
	svc, db := newDonationService(t)
	ctx := context.Background()
	user, home := seedDonor(t, db)

	created, err := svc.Create(ctx, DonationInput{
		UserID:        user.ID,
		RumahYatimID:  home.ID,
		Amount:        50000,
		PaymentMethod: "transfer",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.TransactionID)
	require.Equal(t, models.DonationStatusPending, created.Status)

	second, err := svc.Create(ctx, DonationInput{
		UserID:       user.ID,
		RumahYatimID: home.ID,
		Amount:       75000,
		Status:       models.DonationStatusCompleted,
	})
	require.NoError(t, err)
	require.NotEqual(t, created.TransactionID, second.TransactionID)
	require.Equal(t, models.DonationStatusCompleted, second.Status)
}

func TestDonationServiceUpdateAndDelete(t *testing.T) {
	svc, db := newDonationService(t)
	ctx := context.Background()
	user, home := seedDonor(t, db)

	created, err := svc.Create(ctx, DonationInput{UserID: user.ID, RumahYatimID: home.ID, Amount: 50000})
	require.NoError(t, err)

	err = svc.Update(ctx, created.ID, DonationInput{
		UserID:       user.ID,
		RumahYatimID: home.ID,
		Amount:       50000,
		Status:       models.DonationStatusCompleted,
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, models.DonationStatusCompleted, got.Status)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, appErrors.ErrDonationNotFound)
}

func TestDonationServiceListByUser(t *testing.T) {
	svc, db := newDonationService(t)
	ctx := context.Background()
	user, home := seedDonor(t, db)

	_, err := svc.Create(ctx, DonationInput{UserID: user.ID, RumahYatimID: home.ID, Amount: 50000})
	require.NoError(t, err)

	rows, err := svc.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Budi", rows[0].Name)
	require.Equal(t, "budi@example.com", rows[0].Email)
	require.Equal(t, "Kasih Ibu", rows[0].NamaPanti)

	_, err = svc.ListByUser(ctx, 9999)
	require.ErrorIs(t, err, appErrors.ErrNoDonationsForUser)
}

func TestDonationServiceListByOrphanage(t *testing.T) {
	svc, db := newDonationService(t)
	ctx := context.Background()
	user, home := seedDonor(t, db)

	_, err := svc.Create(ctx, DonationInput{UserID: user.ID, RumahYatimID: home.ID, Amount: 50000})
	require.NoError(t, err)

	rows, err := svc.ListByOrphanage(ctx, home.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, err = svc.ListByOrphanage(ctx, 9999)
	require.ErrorIs(t, err, appErrors.ErrNoDonationsForHome)
}

func seedDonationAt(t *testing.T, db *gorm.DB, userID, homeID uint, amount float64, method string, createdAt time.Time) {
	t.Helper()

	row := models.Donation{
		UserID:        userID,
		RumahYatimID:  homeID,
		Amount:        amount,
		PaymentMethod: method,
		Status:        models.DonationStatusCompleted,
		TransactionID: uuid.NewString(),
		CreatedAt:     createdAt,
	}
	require.NoError(t, db.Create(&row).Error)
}

func TestDonationServicePaymentTrends(t *testing.T) {
	svc, db := newDonationService(t)
	ctx := context.Background()
	user, home := seedDonor(t, db)

	june := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	july := time.Date(2025, time.July, 2, 9, 0, 0, 0, time.UTC)
	seedDonationAt(t, db, user.ID, home.ID, 50000, "transfer", june)
	seedDonationAt(t, db, user.ID, home.ID, 30000, "transfer", june)
	seedDonationAt(t, db, user.ID, home.ID, 20000, "ewallet", june)
	seedDonationAt(t, db, user.ID, home.ID, 10000, "transfer", july)

	trends, err := svc.PaymentTrends(ctx)
	require.NoError(t, err)
	require.Len(t, trends, 3)

	require.Equal(t, "2025-07", trends[0].Month)
	require.Equal(t, "transfer", trends[0].PaymentMethod)
	require.EqualValues(t, 1, trends[0].TotalTransactions)

	require.Equal(t, "2025-06", trends[1].Month)
	require.Equal(t, "transfer", trends[1].PaymentMethod)
	require.EqualValues(t, 2, trends[1].TotalTransactions)
	require.InDelta(t, 80000, trends[1].TotalAmount, 0.001)
	require.InDelta(t, 40000, trends[1].AverageAmount, 0.001)

	require.Equal(t, "2025-06", trends[2].Month)
	require.Equal(t, "ewallet", trends[2].PaymentMethod)
}

func TestDonationServiceImpactAnalysis(t *testing.T) {
	svc, db := newDonationService(t)
	ctx := context.Background()
	user, _ := seedDonor(t, db)

	other := models.User{Username: "siti", Name: "Siti", Email: "siti@example.com", Password: "x"}
	require.NoError(t, db.Create(&other).Error)

	home := models.Orphanage{NamaPanti: "Harapan Bunda", NamaKota: "Jakarta", JumlahAnak: 10}
	require.NoError(t, db.Create(&home).Error)

	now := time.Now().UTC()
	seedDonationAt(t, db, user.ID, home.ID, 100000, "transfer", now.AddDate(0, 0, -60))
	seedDonationAt(t, db, other.ID, home.ID, 50000, "ewallet", now.AddDate(0, 0, -1))

	impact, err := svc.ImpactAnalysis(ctx, home.ID)
	require.NoError(t, err)
	require.Equal(t, home.ID, impact.ID)
	require.Equal(t, "Harapan Bunda", impact.NamaPanti)
	require.EqualValues(t, 2, impact.TotalDonations)
	require.InDelta(t, 150000, impact.TotalDonated, 0.001)
	require.EqualValues(t, 2, impact.UniqueDonors)
	require.InDelta(t, 75000, impact.AverageDonation, 0.001)
	require.EqualValues(t, 59, impact.DonationPeriodDays)
	require.InDelta(t, 15000, impact.DonationPerChild, 0.001)
	require.EqualValues(t, 1, impact.DonationsLast30Days)
	require.InDelta(t, 50000, impact.AmountLast30Days, 0.001)

	_, err = svc.ImpactAnalysis(ctx, 9999)
	require.ErrorIs(t, err, appErrors.ErrOrphanageNotFound)
}

func TestDonationServiceImpactAnalysisWithoutDonations(t *testing.T) {
	svc, db := newDonationService(t)
	ctx := context.Background()

	home := models.Orphanage{NamaPanti: "Baru Berdiri", NamaKota: "Medan", JumlahAnak: 5}
	require.NoError(t, db.Create(&home).Error)

	impact, err := svc.ImpactAnalysis(ctx, home.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, impact.TotalDonations)
	require.Nil(t, impact.FirstDonationDate)
	require.Nil(t, impact.LastDonationDate)
	require.Zero(t, impact.DonationPerChild)
}

func TestDonationServiceTimeline(t *testing.T) {
	svc, db := newDonationService(t)
	ctx := context.Background()
	user, home := seedDonor(t, db)

	other := models.User{Username: "siti", Name: "Siti", Email: "siti@example.com", Password: "x"}
	require.NoError(t, db.Create(&other).Error)

	may := time.Date(2025, time.May, 5, 8, 0, 0, 0, time.UTC)
	july := time.Date(2025, time.July, 20, 8, 0, 0, 0, time.UTC)
	seedDonationAt(t, db, user.ID, home.ID, 40000, "transfer", may)
	seedDonationAt(t, db, other.ID, home.ID, 60000, "ewallet", may)
	seedDonationAt(t, db, user.ID, home.ID, 25000, "transfer", july)

	entries, err := svc.Timeline(ctx, home.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, 2025, entries[0].Year)
	require.Equal(t, 7, entries[0].Month)
	require.EqualValues(t, 1, entries[0].DonationCount)

	require.Equal(t, 5, entries[1].Month)
	require.EqualValues(t, 2, entries[1].DonationCount)
	require.InDelta(t, 100000, entries[1].TotalAmount, 0.001)
	require.InDelta(t, 50000, entries[1].AverageAmount, 0.001)
	require.EqualValues(t, 2, entries[1].UniqueDonors)
	require.Equal(t, []string{"ewallet", "transfer"}, entries[1].PaymentMethods)

	_, err = svc.Timeline(ctx, 9999)
	require.ErrorIs(t, err, appErrors.ErrNoDonationTimeline)
}
