package models

import "time"

// Orphanage is a rumah yatim profile as maintained by the platform operators.
// Column and JSON names follow the legacy MySQL schema, including the
// misspelled "longtitude" column which is part of the public API.
type Orphanage struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	NamaPanti    string  `gorm:"column:nama_panti;not null" json:"nama_panti"`
	NamaKota     string  `gorm:"column:nama_kota;index" json:"nama_kota"`
	NamaPengurus string  `gorm:"column:nama_pengurus" json:"nama_pengurus"`
	Alamat       string  `gorm:"column:alamat" json:"alamat"`
	Foto         string  `gorm:"column:foto" json:"foto"`
	Deskripsi    string  `gorm:"column:deskripsi;type:text" json:"deskripsi"`
	JumlahAnak   int     `gorm:"column:jumlah_anak" json:"jumlah_anak"`
	Kapasitas    int     `gorm:"column:kapasitas" json:"kapasitas"`
	Kontak       string  `gorm:"column:kontak" json:"kontak"`
	Latitude     float64 `gorm:"column:latitude" json:"latitude"`
	Longtitude   float64 `gorm:"column:longtitude" json:"longtitude"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the legacy table name.
func (Orphanage) TableName() string { return "rumah_yatim" }
