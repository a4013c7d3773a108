package models

import (
	"github.com/go-playground/validator/v10"
)

// CurrencyRate is one entry of the global rate table: a currency code with its
// display symbol and a multiplicative exchange rate relative to the store's
// default currency.
type CurrencyRate struct {
	Code   string  `json:"code" validate:"required,uppercase,len=3"`
	Symbol string  `json:"symbol" validate:"required"`
	Rate   float64 `json:"rate" validate:"required,gt=0"`
}

// CurrencySettings is the single global configuration record for the currency
// switcher and rate table.
type CurrencySettings struct {
	EnableCurrencySwitcher bool           `json:"enable_currency_switcher"`
	DefaultCurrency        string         `json:"default_currency" validate:"required,uppercase,len=3"`
	Currencies             []CurrencyRate `json:"currencies" validate:"dive"`
}

// DefaultCurrencySettings returns the switcher disabled with USD as the store
// currency and an empty rate table.
func DefaultCurrencySettings() CurrencySettings {
	return CurrencySettings{
		EnableCurrencySwitcher: false,
		DefaultCurrency:        "USD",
		Currencies:             []CurrencyRate{},
	}
}

// Validate checks the settings before they are persisted.
func (s *CurrencySettings) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// RateFor looks up the exchange rate for a currency code in the rate table.
func (s *CurrencySettings) RateFor(code string) (float64, bool) {
	for _, c := range s.Currencies {
		if c.Code == code {
			return c.Rate, true
		}
	}
	return 0, false
}

// SymbolFor looks up the configured symbol for a currency code.
func (s *CurrencySettings) SymbolFor(code string) (string, bool) {
	for _, c := range s.Currencies {
		if c.Code == code {
			return c.Symbol, true
		}
	}
	return "", false
}

// AvailableCurrencies returns the default currency followed by every
// configured code, deduplicated in stored order.
func (s *CurrencySettings) AvailableCurrencies() []string {
	codes := []string{s.DefaultCurrency}
	seen := map[string]struct{}{s.DefaultCurrency: {}}
	for _, c := range s.Currencies {
		if _, ok := seen[c.Code]; ok {
			continue
		}
		seen[c.Code] = struct{}{}
		codes = append(codes, c.Code)
	}
	return codes
}

// IsAvailable reports whether the code is the default currency or present in
// the rate table.
func (s *CurrencySettings) IsAvailable(code string) bool {
	if code == s.DefaultCurrency {
		return true
	}
	_, ok := s.RateFor(code)
	return ok
}
