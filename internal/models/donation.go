package models

import "time"

// Donation statuses as stored in the status column.
const (
	DonationStatusPending   = "Pending"
	DonationStatusCompleted = "Completed"
	DonationStatusFailed    = "Failed"
)

// Donation records a single payment from a user towards an orphanage.
type Donation struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint    `gorm:"column:user_id;index;not null" json:"user_id"`
	RumahYatimID  uint    `gorm:"column:rumah_yatim_id;index;not null" json:"rumah_yatim_id"`
	Amount        float64 `gorm:"column:amount;not null" json:"amount"`
	PaymentMethod string  `gorm:"column:payment_method" json:"payment_method"`
	Status        string  `gorm:"column:status;index;default:Pending" json:"status"`
	TransactionID string  `gorm:"column:transaction_id;uniqueIndex" json:"transaction_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the legacy (singular) table name.
func (Donation) TableName() string { return "donation" }

// UserDonation is a donation row joined with donor and orphanage names,
// produced by the by-user listing.
type UserDonation struct {
	Donation
	Name      string `json:"name"`
	Email     string `json:"email"`
	NamaPanti string `json:"nama_panti"`
}
