package models

import "time"

type Staff struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	AccountID string `gorm:"size:36;index" json:"account_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Role  string `gorm:"size:100;not null" json:"role"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	Color string `gorm:"size:100" json:"color"`
	Photo string `gorm:"type:text" json:"photo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
