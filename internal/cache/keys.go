package cache

import (
	"strconv"
	"time"
)

// Kind identifies a cacheable resource family. Each kind owns a disjoint key
// prefix, so collection, item, and scoped keys can never collide across kinds.
type Kind string

const (
	KindOrphanage Kind = "orphanage"
	KindUser      Kind = "user"
	KindDonation  Kind = "donation"
	KindBookmark  Kind = "bookmark"
	KindPrayer    Kind = "prayer"
)

// LeaderboardKey is the single fixed key for the cached donor ranking.
const LeaderboardKey = "donatur:leaderboard"

// Per-kind entry lifetimes. The leaderboard tolerates more staleness because
// it is expensive to recompute and has an explicit refresh route.
const (
	ResourceTTL    = 300 * time.Second
	LeaderboardTTL = 3600 * time.Second
)

// CollectionKey returns the key under which the full listing of a kind is
// cached, e.g. "orphanages".
func (k Kind) CollectionKey() string {
	return string(k) + "s"
}

// ItemKey returns the key for a single record, e.g. "orphanage:7". The kind
// prefix keeps item keys out of the collection namespace.
func (k Kind) ItemKey(id uint) string {
	return string(k) + ":" + strconv.FormatUint(uint64(id), 10)
}

// ScopedKey returns the key for a subset of a collection owned by another
// resource, e.g. "donations:user:3".
func (k Kind) ScopedKey(scope string, id uint) string {
	return k.CollectionKey() + ":" + scope + ":" + strconv.FormatUint(uint64(id), 10)
}
