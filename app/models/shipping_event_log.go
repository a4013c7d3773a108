package models

import "time"

// Log status lifecycle: every row starts as pending and is moved exactly once
// to success or error after processing.
const (
	LogStatusPending = "pending"
	LogStatusSuccess = "success"
	LogStatusError   = "error"
)

// ShippingEventLog stores one row per received webhook delivery. Rows are
// inserted before processing starts so every payload is recorded even when
// processing fails. Rows are never deleted.
type ShippingEventLog struct {
	ID             uint64     `gorm:"primaryKey" json:"id"`
	RequestBody    string     `gorm:"type:longtext;not null" json:"request_body"`
	RequestParams  string     `gorm:"type:longtext" json:"request_params"`
	RequestHeaders string     `gorm:"type:longtext" json:"request_headers"`
	IPAddress      string     `gorm:"type:varchar(45)" json:"ip_address"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ResponseData   string     `gorm:"type:longtext" json:"response_data"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	ProcessedAt    *time.Time `gorm:"type:timestamp;default:null" json:"processed_at,omitempty"`
}

// TableName keeps the historical table name used by the receiver.
func (ShippingEventLog) TableName() string {
	return "shipping_event_logs"
}

// IsTerminal reports whether the log row has reached its final status.
func (l *ShippingEventLog) IsTerminal() bool {
	return l.Status == LogStatusSuccess || l.Status == LogStatusError
}
