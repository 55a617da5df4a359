package models

import "time"

type Appointment struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	AccountID string `gorm:"size:36;index;uniqueIndex:idx_slot" json:"account_id"`

	// booking ou block; bloqueios não têm cliente nem serviço
	Kind string `gorm:"size:10;not null" json:"kind"`

	ClientID  *string `gorm:"size:36;index" json:"client_id"`
	ServiceID *string `gorm:"size:36" json:"service_id"`
	StaffID   string  `gorm:"size:36;uniqueIndex:idx_slot" json:"staff_id"`

	Date string `gorm:"size:10;index;uniqueIndex:idx_slot" json:"date"`
	Time string `gorm:"size:5;uniqueIndex:idx_slot" json:"time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes         string  `gorm:"size:255" json:"notes"`
	PaymentMethod *string `gorm:"size:10" json:"payment_method"`

	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
