package models

import "time"

// User is a registered donor account. The password column stores a bcrypt
// hash and is never serialized.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Donations []Donation `gorm:"foreignKey:UserID" json:"-"`
	Bookmarks []Bookmark `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the legacy table name.
func (User) TableName() string { return "users" }
