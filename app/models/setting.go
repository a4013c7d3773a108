package models

import "time"

// Setting keys for the per-module configuration blobs. Each module persists
// one JSON document under its key.
const (
	SettingKeyWebhookEndpoint = "webhook_endpoint_slug"
	SettingKeyOrderControl    = "order_control_settings"
	SettingKeyGatewayRules    = "payment_gateway_settings"
	SettingKeyCurrency        = "currency_settings"
)

// DefaultWebhookSlug is used when no endpoint slug has been configured.
const DefaultWebhookSlug = "shipping-webhook"

// Setting represents a system setting stored as a key/value row.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:255;not null;uniqueIndex" json:"key" validate:"required,min=1,max=255"`
	Value     string    `gorm:"type:text" json:"value"`
	Type      string    `gorm:"size:50;not null" json:"type"` // string or json
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
