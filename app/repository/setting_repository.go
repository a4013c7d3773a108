package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Darkace01/commerce-control-suite/app/models"
	"gorm.io/gorm"
)

// settingRepository implements the SettingRepository interface
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository instance
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// GetValue retrieves a specific setting value by key
func (r *settingRepository) GetValue(key string) (string, error) {
	var setting models.Setting
	err := r.db.Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil // Return empty string for non-existent settings
		}
		return "", err
	}
	return setting.Value, nil
}

// SetValue sets a specific setting value by key
func (r *settingRepository) SetValue(key, value string) error {
	return r.setValueTyped(key, value, "string")
}

func (r *settingRepository) setValueTyped(key, value, valueType string) error {
	var setting models.Setting
	err := r.db.Where("setting_key = ?", key).First(&setting).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.Setting{
			Key:   key,
			Value: value,
			Type:  valueType,
		}
		return r.db.Create(&setting).Error
	} else if err != nil {
		return err
	}

	setting.Value = value
	setting.Type = valueType
	return r.db.Save(&setting).Error
}

// loadJSON decodes the JSON blob stored under key into out. A missing row
// leaves out untouched so defaults survive.
func (r *settingRepository) loadJSON(key string, out any) error {
	value, err := r.GetValue(key)
	if err != nil {
		return err
	}
	if value == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return fmt.Errorf("failed to decode setting %s: %w", key, err)
	}
	return nil
}

func (r *settingRepository) saveJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode setting %s: %w", key, err)
	}
	return r.setValueTyped(key, string(data), "json")
}

// WebhookSlug returns the configured webhook endpoint slug or the default.
func (r *settingRepository) WebhookSlug() (string, error) {
	slug, err := r.GetValue(models.SettingKeyWebhookEndpoint)
	if err != nil {
		return "", err
	}
	if slug == "" {
		return models.DefaultWebhookSlug, nil
	}
	return slug, nil
}

// SaveWebhookSlug persists the webhook endpoint slug.
func (r *settingRepository) SaveWebhookSlug(slug string) error {
	return r.SetValue(models.SettingKeyWebhookEndpoint, slug)
}

// OrderControl returns the order control settings, falling back to defaults
// when nothing has been saved yet.
func (r *settingRepository) OrderControl() (*models.OrderControlSettings, error) {
	settings := models.DefaultOrderControlSettings()
	if err := r.loadJSON(models.SettingKeyOrderControl, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveOrderControl validates and persists the order control settings.
func (r *settingRepository) SaveOrderControl(settings *models.OrderControlSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return r.saveJSON(models.SettingKeyOrderControl, settings)
}

// GatewayRules returns the payment gateway rule list.
func (r *settingRepository) GatewayRules() (*models.PaymentGatewaySettings, error) {
	settings := models.DefaultPaymentGatewaySettings()
	if err := r.loadJSON(models.SettingKeyGatewayRules, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveGatewayRules persists the payment gateway rule list.
func (r *settingRepository) SaveGatewayRules(settings *models.PaymentGatewaySettings) error {
	return r.saveJSON(models.SettingKeyGatewayRules, settings)
}

// Currency returns the currency switcher settings.
func (r *settingRepository) Currency() (*models.CurrencySettings, error) {
	settings := models.DefaultCurrencySettings()
	if err := r.loadJSON(models.SettingKeyCurrency, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveCurrency validates and persists the currency settings.
func (r *settingRepository) SaveCurrency(settings *models.CurrencySettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return r.saveJSON(models.SettingKeyCurrency, settings)
}
