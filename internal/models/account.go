package models

import "time"

type Account struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	SalonName string `gorm:"size:100;not null" json:"salon_name"`
	Address   string `gorm:"size:255" json:"address"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
