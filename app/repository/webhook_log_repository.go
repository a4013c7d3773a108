package repository

import (
	"time"

	"github.com/Darkace01/commerce-control-suite/app/models"
	"gorm.io/gorm"
)

// webhookLogRepository implements the WebhookLogRepository interface
type webhookLogRepository struct {
	db *gorm.DB
}

// NewWebhookLogRepository creates a new webhook log repository instance
func NewWebhookLogRepository(db *gorm.DB) WebhookLogRepository {
	return &webhookLogRepository{db: db}
}

// Create inserts a new log row. The row id is populated on success.
func (r *webhookLogRepository) Create(log *models.ShippingEventLog) error {
	return r.db.Create(log).Error
}

// GetByID retrieves a log row by its ID
func (r *webhookLogRepository) GetByID(id uint64) (*models.ShippingEventLog, error) {
	var log models.ShippingEventLog
	err := r.db.First(&log, id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// MarkProcessed transitions a pending row to its terminal status and records
// the processing outcome.
func (r *webhookLogRepository) MarkProcessed(id uint64, status, responseData string, processedAt time.Time) error {
	return r.db.Model(&models.ShippingEventLog{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        status,
			"response_data": responseData,
			"processed_at":  processedAt,
		}).Error
}

// Recent retrieves the newest log rows, newest first.
func (r *webhookLogRepository) Recent(limit int) ([]models.ShippingEventLog, error) {
	var logs []models.ShippingEventLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

// Count returns the total number of log rows
func (r *webhookLogRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ShippingEventLog{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of log rows with the given status
func (r *webhookLogRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ShippingEventLog{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
