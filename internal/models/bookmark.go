package models

import "time"

// Bookmark marks an orphanage a user wants to follow.
type Bookmark struct {
	ID           uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint `gorm:"column:user_id;index;not null" json:"user_id"`
	RumahYatimID uint `gorm:"column:rumah_yatim_id;index;not null" json:"rumah_yatim_id"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the legacy (singular) table name.
func (Bookmark) TableName() string { return "bookmark" }

// UserBookmark is a bookmark row joined with the orphanage's name and
// address, produced by the by-user listing.
type UserBookmark struct {
	Bookmark
	NamaPanti string `json:"nama_panti"`
	Alamat    string `json:"alamat"`
}
