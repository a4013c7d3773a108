package models

import "time"

// Product is a storefront product with its base price in the store's default
// currency. Per-currency fixed prices live in ProductCurrencyPrice rows and
// take precedence over rate conversion.
type Product struct {
	ID             uint                   `gorm:"primaryKey" json:"id"`
	Name           string                 `gorm:"size:255;not null" json:"name" validate:"required,min=1,max=255"`
	Slug           string                 `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	BasePrice      float64                `gorm:"type:decimal(12,4);not null" json:"base_price"`
	Categories     []Category             `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	CurrencyPrices []ProductCurrencyPrice `gorm:"foreignKey:ProductID" json:"currency_prices,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// CategoryIDs returns the ids of the loaded categories.
func (p *Product) CategoryIDs() []uint {
	ids := make([]uint, 0, len(p.Categories))
	for _, c := range p.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// CurrencyOverrides returns the fixed per-currency prices as a lookup map.
func (p *Product) CurrencyOverrides() map[string]float64 {
	overrides := make(map[string]float64, len(p.CurrencyPrices))
	for _, cp := range p.CurrencyPrices {
		overrides[cp.CurrencyCode] = cp.Price
	}
	return overrides
}

// ProductCurrencyPrice is a fixed price override for one product in one
// currency, independent of the global rate table.
type ProductCurrencyPrice struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductID    uint      `gorm:"not null;index:ux_product_currency,unique,priority:1" json:"product_id"`
	CurrencyCode string    `gorm:"type:varchar(3);not null;index:ux_product_currency,unique,priority:2" json:"currency_code"`
	Price        float64   `gorm:"type:decimal(12,4);not null" json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Category groups products for the order restriction scope.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Slug      string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
