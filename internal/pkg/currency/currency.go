// Package currency resolves storefront prices and symbols for the currency
// switcher. Resolution order for prices: default currency short-circuit, then
// per-product fixed override, then global rate table, then unchanged base
// price (silent fallback).
package currency

import (
	"strings"

	"github.com/Darkace01/commerce-control-suite/app/models"
)

// ResolveCurrent picks the effective currency for a request. The requested
// code is honored only when the switcher is on and the code is configured;
// anything else falls back to the store default.
func ResolveCurrent(requested string, settings models.CurrencySettings) string {
	if !settings.EnableCurrencySwitcher {
		return settings.DefaultCurrency
	}
	code := strings.ToUpper(strings.TrimSpace(requested))
	if code == "" || !settings.IsAvailable(code) {
		return settings.DefaultCurrency
	}
	return code
}

// ResolvePrice converts a base price into the current currency. Overrides are
// the product's fixed per-currency prices and win over rate conversion.
func ResolvePrice(basePrice float64, overrides map[string]float64, current string, settings models.CurrencySettings) float64 {
	if current == settings.DefaultCurrency {
		return basePrice
	}

	if override, ok := overrides[current]; ok {
		return override
	}

	if rate, ok := settings.RateFor(current); ok && rate > 0 {
		return basePrice * rate
	}

	return basePrice
}

// ResolveSymbol returns the configured symbol for the current currency, or
// defaultSymbol when the code is not the current currency or has no entry in
// the rate table.
func ResolveSymbol(code, current string, settings models.CurrencySettings, defaultSymbol string) string {
	if code != current {
		return defaultSymbol
	}
	if symbol, ok := settings.SymbolFor(code); ok {
		return symbol
	}
	return defaultSymbol
}
