package models

import "time"

// PaymentGateway is a registered checkout gateway. The set of enabled rows is
// the "all available gateways" baseline the currency rules filter against.
type PaymentGateway struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Enabled   bool      `gorm:"not null;default:true;index" json:"enabled"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
