package models

import (
	"github.com/go-playground/validator/v10"
)

// Restriction scopes for the order availability policy.
const (
	RestrictionAll        = "all"
	RestrictionCategories = "categories"
	RestrictionProducts   = "products"
)

// DefaultDisabledMessage is shown to customers when ordering is blocked and no
// custom message has been configured.
const DefaultDisabledMessage = "Orders are currently disabled. Please try again later."

// OrderControlSettings is the single global configuration record for the order
// availability policy. Times of day use "15:04", datetimes use
// "2006-01-02T15:04" (the HTML datetime-local format the original admin form
// produced); empty datetime bounds are unbounded.
type OrderControlSettings struct {
	EnableOrders         bool   `json:"enable_orders"`
	RestrictionType      string `json:"restriction_type" validate:"required,oneof=all categories products"`
	RestrictedCategories []uint `json:"restricted_categories"`
	RestrictedProducts   []uint `json:"restricted_products"`
	EnableTimeframe      bool   `json:"enable_timeframe"`
	StartTime            string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime              string `json:"end_time" validate:"omitempty,datetime=15:04"`
	EnableDateRange      bool   `json:"enable_date_range"`
	StartDatetime        string `json:"start_datetime" validate:"omitempty,datetime=2006-01-02T15:04"`
	EndDatetime          string `json:"end_datetime" validate:"omitempty,datetime=2006-01-02T15:04"`
	RedirectURL          string `json:"redirect_url" validate:"omitempty,url"`
	DisabledMessage      string `json:"disabled_message"`
}

// DefaultOrderControlSettings mirrors the defaults the receiver shipped with:
// ordering enabled around the clock for all products.
func DefaultOrderControlSettings() OrderControlSettings {
	return OrderControlSettings{
		EnableOrders:         true,
		RestrictionType:      RestrictionAll,
		RestrictedCategories: []uint{},
		RestrictedProducts:   []uint{},
		EnableTimeframe:      false,
		StartTime:            "00:00",
		EndTime:              "23:59",
		EnableDateRange:      false,
		StartDatetime:        "",
		EndDatetime:          "",
		RedirectURL:          "",
		DisabledMessage:      DefaultDisabledMessage,
	}
}

// Validate checks the settings before they are persisted. Invalid input is
// rejected at the admin-save boundary and the stored record stays untouched.
func (s *OrderControlSettings) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// Message returns the configured disabled message or the default text.
func (s *OrderControlSettings) Message() string {
	if s.DisabledMessage == "" {
		return DefaultDisabledMessage
	}
	return s.DisabledMessage
}
