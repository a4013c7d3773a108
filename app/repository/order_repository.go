package repository

import (
	"github.com/Darkace01/commerce-control-suite/app/models"
	"gorm.io/gorm"
)

// orderRepository implements the OrderRepository interface
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// GetByID retrieves an order by its ID
func (r *orderRepository) GetByID(id uint64) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SetTrackingNumber stores the shipping tracking number on an order.
func (r *orderRepository) SetTrackingNumber(id uint64, trackingNumber string) error {
	return r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("tracking_number", trackingNumber).Error
}

// AddNote appends a note to an order's trail.
func (r *orderRepository) AddNote(id uint64, note string) error {
	return r.db.Create(&models.OrderNote{OrderID: id, Note: note}).Error
}
