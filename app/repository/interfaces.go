package repository

import (
	"time"

	"github.com/Darkace01/commerce-control-suite/app/models"
	"gorm.io/gorm"
)

// WebhookLogRepository defines the database operations for the shipping event
// log table.
type WebhookLogRepository interface {
	Create(log *models.ShippingEventLog) error
	GetByID(id uint64) (*models.ShippingEventLog, error)
	MarkProcessed(id uint64, status, responseData string, processedAt time.Time) error
	Recent(limit int) ([]models.ShippingEventLog, error)
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
}

// SettingRepository defines the interface for the per-module settings blobs.
type SettingRepository interface {
	GetValue(key string) (string, error)
	SetValue(key, value string) error

	WebhookSlug() (string, error)
	SaveWebhookSlug(slug string) error
	OrderControl() (*models.OrderControlSettings, error)
	SaveOrderControl(settings *models.OrderControlSettings) error
	GatewayRules() (*models.PaymentGatewaySettings, error)
	SaveGatewayRules(settings *models.PaymentGatewaySettings) error
	Currency() (*models.CurrencySettings, error)
	SaveCurrency(settings *models.CurrencySettings) error
}

// ProductRepository defines the interface for product lookups and per-product
// currency price overrides.
type ProductRepository interface {
	GetByID(id uint) (*models.Product, error)
	List(offset, limit int) ([]models.Product, error)
	Count() (int64, error)
	CategoryIDs(productID uint) ([]uint, error)
	UpsertCurrencyPrice(productID uint, code string, price float64) error
	DeleteCurrencyPrice(productID uint, code string) error
}

// OrderRepository defines the interface for the order updates the webhook
// processor performs.
type OrderRepository interface {
	GetByID(id uint64) (*models.Order, error)
	SetTrackingNumber(id uint64, trackingNumber string) error
	AddNote(id uint64, note string) error
}

// GatewayRepository defines the interface for the payment gateway registry.
type GatewayRepository interface {
	GetAll() ([]models.PaymentGateway, error)
	GetEnabled() ([]models.PaymentGateway, error)
	Upsert(gateway *models.PaymentGateway) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	WebhookLog WebhookLogRepository
	Setting    SettingRepository
	Product    ProductRepository
	Order      OrderRepository
	Gateway    GatewayRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		WebhookLog: NewWebhookLogRepository(db),
		Setting:    NewSettingRepository(db),
		Product:    NewProductRepository(db),
		Order:      NewOrderRepository(db),
		Gateway:    NewGatewayRepository(db),
	}
}
