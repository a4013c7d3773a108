package repository

import (
	"errors"

	"github.com/Darkace01/commerce-control-suite/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the ProductRepository interface
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// GetByID retrieves a product with its categories and currency overrides.
func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Categories").Preload("CurrencyPrices").First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List retrieves products with pagination
func (r *productRepository) List(offset, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Categories").Order("name ASC").
		Offset(offset).Limit(limit).Find(&products).Error
	return products, err
}

// Count returns the total number of products
func (r *productRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}

// CategoryIDs returns the category ids a product belongs to.
func (r *productRepository) CategoryIDs(productID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Table("product_categories").
		Where("product_id = ?", productID).
		Pluck("category_id", &ids).Error
	return ids, err
}

// UpsertCurrencyPrice creates or updates the fixed price override for one
// product/currency pair.
func (r *productRepository) UpsertCurrencyPrice(productID uint, code string, price float64) error {
	override := models.ProductCurrencyPrice{
		ProductID:    productID,
		CurrencyCode: code,
		Price:        price,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "product_id"},
			{Name: "currency_code"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
	}).Create(&override).Error
}

// DeleteCurrencyPrice removes the override for one product/currency pair.
// Removing a missing override is not an error.
func (r *productRepository) DeleteCurrencyPrice(productID uint, code string) error {
	err := r.db.Where("product_id = ? AND currency_code = ?", productID, code).
		Delete(&models.ProductCurrencyPrice{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
