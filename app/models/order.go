package models

import "time"

// Order is the subset of a store order the webhook processor touches:
// shipping tracking metadata and the note trail.
type Order struct {
	ID             uint64      `gorm:"primaryKey" json:"id"`
	Status         string      `gorm:"type:varchar(32);not null;default:'processing';index" json:"status"`
	TrackingNumber string      `gorm:"type:varchar(100)" json:"tracking_number"`
	Notes          []OrderNote `gorm:"foreignKey:OrderID" json:"notes,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// OrderNote is an append-only annotation on an order.
type OrderNote struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	OrderID   uint64    `gorm:"not null;index" json:"order_id"`
	Note      string    `gorm:"type:text;not null" json:"note"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
