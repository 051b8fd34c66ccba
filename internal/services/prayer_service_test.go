package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cerahati/backend/internal/database/testutil"
	appErrors "github.com/cerahati/backend/pkg/errors"
)

func TestPrayerServiceUpdate(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewPrayerService(db)
	require.NoError(t, err)
	ctx := context.Background()

	created, err := svc.Create(ctx, PrayerInput{Nama: "Doa Makan", Isi: "Allahumma bariklana"})
	require.NoError(t, err)

	err = svc.Update(ctx, created.ID, PrayerInput{Nama: "Doa Sebelum Makan", Isi: "Allahumma bariklana fima razaqtana"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Doa Sebelum Makan", got.Nama)
	require.Equal(t, "Allahumma bariklana fima razaqtana", got.Isi)

	err = svc.Update(ctx, 9999, PrayerInput{Nama: "x", Isi: "y"})
	require.ErrorIs(t, err, appErrors.ErrPrayerNotFound)
}
