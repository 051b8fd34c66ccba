package models

// LeaderboardEntry is a derived ranking row aggregated from completed
// donations. It is never persisted; it exists only in the cache or as a
// transient query result.
type LeaderboardEntry struct {
	Rank           int     `json:"rank"`
	UserID         uint    `json:"user_id"`
	Username       string  `json:"username"`
	DonationCount  int64   `json:"donation_count"`
	TotalDonations float64 `json:"total_donations"`
}
