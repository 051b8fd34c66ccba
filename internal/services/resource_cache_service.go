package services

import (
	"context"
	"errors"

	"github.com/cerahati/backend/internal/cache"
	"github.com/cerahati/backend/internal/models"
)

// ResourceCacheService serves the cached read endpoints. It layers the
// read-through resolver over the plain CRUD services; writes still go
// straight to the database and rely on TTL expiry for freshness.
type ResourceCacheService struct {
	store      cache.Store
	orphanages *OrphanageService
	users      *UserService
	donations  *DonationService
	bookmarks  *BookmarkService
	prayers    *PrayerService
}

// NewResourceCacheService wires the resolver to a cache store and the
// underlying services.
func NewResourceCacheService(
	store cache.Store,
	orphanages *OrphanageService,
	users *UserService,
	donations *DonationService,
	bookmarks *BookmarkService,
	prayers *PrayerService,
) (*ResourceCacheService, error) {
	if store == nil {
		return nil, errors.New("resource cache service: store is required")
	}
	if orphanages == nil || users == nil || donations == nil || bookmarks == nil || prayers == nil {
		return nil, errors.New("resource cache service: all resource services are required")
	}
	return &ResourceCacheService{
		store:      store,
		orphanages: orphanages,
		users:      users,
		donations:  donations,
		bookmarks:  bookmarks,
		prayers:    prayers,
	}, nil
}

// Orphanages returns the cached orphanage listing.
func (s *ResourceCacheService) Orphanages(ctx context.Context) (*Resolved[[]models.Orphanage], error) {
	kind := cache.KindOrphanage
	return readThrough(ctx, s.store, string(kind), kind.CollectionKey(), cache.ResourceTTL,
		func(ctx context.Context) ([]models.Orphanage, error) {
			return s.orphanages.List(ctx)
		})
}

// Orphanage returns a cached single orphanage.
func (s *ResourceCacheService) Orphanage(ctx context.Context, id uint) (*Resolved[models.Orphanage], error) {
	kind := cache.KindOrphanage
	return readThrough(ctx, s.store, string(kind), kind.ItemKey(id), cache.ResourceTTL,
		func(ctx context.Context) (models.Orphanage, error) {
			row, err := s.orphanages.Get(ctx, id)
			if err != nil {
				return models.Orphanage{}, err
			}
			return *row, nil
		})
}

// Users returns the cached user listing.
func (s *ResourceCacheService) Users(ctx context.Context) (*Resolved[[]models.User], error) {
	kind := cache.KindUser
	return readThrough(ctx, s.store, string(kind), kind.CollectionKey(), cache.ResourceTTL,
		func(ctx context.Context) ([]models.User, error) {
			return s.users.List(ctx)
		})
}

// User returns a cached single user.
func (s *ResourceCacheService) User(ctx context.Context, id uint) (*Resolved[models.User], error) {
	kind := cache.KindUser
	return readThrough(ctx, s.store, string(kind), kind.ItemKey(id), cache.ResourceTTL,
		func(ctx context.Context) (models.User, error) {
			row, err := s.users.Get(ctx, id)
			if err != nil {
				return models.User{}, err
			}
			return *row, nil
		})
}

// Donations returns the cached donation listing.
func (s *ResourceCacheService) Donations(ctx context.Context) (*Resolved[[]models.Donation], error) {
	kind := cache.KindDonation
	return readThrough(ctx, s.store, string(kind), kind.CollectionKey(), cache.ResourceTTL,
		func(ctx context.Context) ([]models.Donation, error) {
			return s.donations.List(ctx)
		})
}

// Donation returns a cached single donation.
func (s *ResourceCacheService) Donation(ctx context.Context, id uint) (*Resolved[models.Donation], error) {
	kind := cache.KindDonation
	return readThrough(ctx, s.store, string(kind), kind.ItemKey(id), cache.ResourceTTL,
		func(ctx context.Context) (models.Donation, error) {
			row, err := s.donations.Get(ctx, id)
			if err != nil {
				return models.Donation{}, err
			}
			return *row, nil
		})
}

// DonationsByUser returns a user's donation history from cache, keyed per user.
func (s *ResourceCacheService) DonationsByUser(ctx context.Context, userID uint) (*Resolved[[]models.UserDonation], error) {
	kind := cache.KindDonation
	return readThrough(ctx, s.store, string(kind), kind.ScopedKey("user", userID), cache.ResourceTTL,
		func(ctx context.Context) ([]models.UserDonation, error) {
			return s.donations.ListByUser(ctx, userID)
		})
}

// Bookmarks returns the cached bookmark listing.
func (s *ResourceCacheService) Bookmarks(ctx context.Context) (*Resolved[[]models.Bookmark], error) {
	kind := cache.KindBookmark
	return readThrough(ctx, s.store, string(kind), kind.CollectionKey(), cache.ResourceTTL,
		func(ctx context.Context) ([]models.Bookmark, error) {
			return s.bookmarks.List(ctx)
		})
}

// Bookmark returns a cached single bookmark.
func (s *ResourceCacheService) Bookmark(ctx context.Context, id uint) (*Resolved[models.Bookmark], error) {
	kind := cache.KindBookmark
	return readThrough(ctx, s.store, string(kind), kind.ItemKey(id), cache.ResourceTTL,
		func(ctx context.Context) (models.Bookmark, error) {
			row, err := s.bookmarks.Get(ctx, id)
			if err != nil {
				return models.Bookmark{}, err
			}
			return *row, nil
		})
}

// Prayers returns the cached prayer listing.
func (s *ResourceCacheService) Prayers(ctx context.Context) (*Resolved[[]models.Prayer], error) {
	kind := cache.KindPrayer
	return readThrough(ctx, s.store, string(kind), kind.CollectionKey(), cache.ResourceTTL,
		func(ctx context.Context) ([]models.Prayer, error) {
			return s.prayers.List(ctx)
		})
}

// Prayer returns a cached single prayer.
func (s *ResourceCacheService) Prayer(ctx context.Context, id uint) (*Resolved[models.Prayer], error) {
	kind := cache.KindPrayer
	return readThrough(ctx, s.store, string(kind), kind.ItemKey(id), cache.ResourceTTL,
		func(ctx context.Context) (models.Prayer, error) {
			row, err := s.prayers.Get(ctx, id)
			if err != nil {
				return models.Prayer{}, err
			}
			return *row, nil
		})
}
