package currency

import (
	"testing"

	"github.com/Darkace01/commerce-control-suite/app/models"
)

func testSettings() models.CurrencySettings {
	return models.CurrencySettings{
		EnableCurrencySwitcher: true,
		DefaultCurrency:        "USD",
		Currencies: []models.CurrencyRate{
			{Code: "EUR", Symbol: "€", Rate: 0.92},
			{Code: "NGN", Symbol: "₦", Rate: 1540.5},
		},
	}
}

func TestResolvePrice(t *testing.T) {
	settings := testSettings()

	tests := []struct {
		name      string
		base      float64
		overrides map[string]float64
		current   string
		want      float64
	}{
		{name: "default currency unchanged", base: 100, current: "USD", want: 100},
		{name: "rate conversion", base: 100, current: "EUR", want: 92},
		{name: "override beats rate", base: 100, overrides: map[string]float64{"EUR": 89.99}, current: "EUR", want: 89.99},
		{name: "unconfigured currency falls back", base: 100, current: "GBP", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePrice(tt.base, tt.overrides, tt.current, settings)
			if got != tt.want {
				t.Fatalf("ResolvePrice = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveCurrent(t *testing.T) {
	settings := testSettings()

	if got := ResolveCurrent("eur", settings); got != "EUR" {
		t.Fatalf("expected lower-case request to resolve to EUR, got %s", got)
	}
	if got := ResolveCurrent("GBP", settings); got != "USD" {
		t.Fatalf("expected unknown currency to fall back to default, got %s", got)
	}
	if got := ResolveCurrent("", settings); got != "USD" {
		t.Fatalf("expected empty request to fall back to default, got %s", got)
	}

	settings.EnableCurrencySwitcher = false
	if got := ResolveCurrent("EUR", settings); got != "USD" {
		t.Fatalf("expected disabled switcher to ignore the request, got %s", got)
	}
}

func TestResolveSymbol(t *testing.T) {
	settings := testSettings()

	if got := ResolveSymbol("EUR", "EUR", settings, "$"); got != "€" {
		t.Fatalf("expected configured symbol, got %s", got)
	}
	if got := ResolveSymbol("EUR", "USD", settings, "$"); got != "$" {
		t.Fatalf("expected default symbol when code is not current, got %s", got)
	}
	if got := ResolveSymbol("GBP", "GBP", settings, "£"); got != "£" {
		t.Fatalf("expected default symbol for unconfigured currency, got %s", got)
	}
}

func TestAvailableCurrencies(t *testing.T) {
	settings := testSettings()
	got := settings.AvailableCurrencies()
	want := []string{"USD", "EUR", "NGN"}
	if len(got) != len(want) {
		t.Fatalf("AvailableCurrencies = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AvailableCurrencies = %v, want %v", got, want)
		}
	}
}
