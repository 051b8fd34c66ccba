package models

import "time"

// Prayer (doa) is a short devotional text shown in the mobile app.
type Prayer struct {
	ID   uint   `gorm:"primaryKey;autoIncrement;column:id_doa" json:"id_doa"`
	Nama string `gorm:"column:nama;not null" json:"nama"`
	Isi  string `gorm:"column:isi;type:text" json:"isi"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the legacy table name.
func (Prayer) TableName() string { return "doa" }
