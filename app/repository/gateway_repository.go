package repository

import (
	"github.com/Darkace01/commerce-control-suite/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gatewayRepository implements the GatewayRepository interface
type gatewayRepository struct {
	db *gorm.DB
}

// NewGatewayRepository creates a new payment gateway repository instance
func NewGatewayRepository(db *gorm.DB) GatewayRepository {
	return &gatewayRepository{db: db}
}

// GetAll retrieves every registered gateway in display order.
func (r *gatewayRepository) GetAll() ([]models.PaymentGateway, error) {
	var gateways []models.PaymentGateway
	err := r.db.Order("position ASC, id ASC").Find(&gateways).Error
	return gateways, err
}

// GetEnabled retrieves the gateways currently available at checkout.
func (r *gatewayRepository) GetEnabled() ([]models.PaymentGateway, error) {
	var gateways []models.PaymentGateway
	err := r.db.Where("enabled = ?", true).Order("position ASC, id ASC").Find(&gateways).Error
	return gateways, err
}

// Upsert creates or updates a gateway registry row.
func (r *gatewayRepository) Upsert(gateway *models.PaymentGateway) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "enabled", "position", "updated_at"}),
	}).Create(gateway).Error
}
