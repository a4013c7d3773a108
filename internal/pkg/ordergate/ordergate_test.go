package ordergate

import (
	"testing"
	"time"

	"github.com/Darkace01/commerce-control-suite/app/models"
)

func at(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOrdersEnabled_KillSwitch(t *testing.T) {
	settings := models.DefaultOrderControlSettings()
	settings.EnableOrders = false
	settings.EnableTimeframe = true
	settings.StartTime = "00:00"
	settings.EndTime = "23:59"

	if OrdersEnabled(settings, at("2024-01-15T12:00")) {
		t.Fatalf("expected orders disabled regardless of time settings")
	}
}

func TestWithinTimeframe_NormalWindow(t *testing.T) {
	settings := models.DefaultOrderControlSettings()
	settings.EnableTimeframe = true
	settings.StartTime = "09:00"
	settings.EndTime = "17:00"

	tests := []struct {
		now  string
		want bool
	}{
		{"2024-01-15T08:59", false},
		{"2024-01-15T09:00", true},
		{"2024-01-15T12:30", true},
		{"2024-01-15T17:00", true},
		{"2024-01-15T17:01", false},
	}

	for _, tt := range tests {
		if got := OrdersEnabled(settings, at(tt.now)); got != tt.want {
			t.Fatalf("OrdersEnabled at %s = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestWithinTimeframe_OvernightWindow(t *testing.T) {
	settings := models.DefaultOrderControlSettings()
	settings.EnableTimeframe = true
	settings.StartTime = "22:00"
	settings.EndTime = "06:00"

	tests := []struct {
		now  string
		want bool
	}{
		{"2024-01-15T21:59", false},
		{"2024-01-15T22:00", true},
		{"2024-01-15T23:30", true},
		{"2024-01-16T03:00", true},
		{"2024-01-16T06:00", true},
		{"2024-01-16T06:01", false},
		{"2024-01-16T12:00", false},
	}

	for _, tt := range tests {
		if got := OrdersEnabled(settings, at(tt.now)); got != tt.want {
			t.Fatalf("OrdersEnabled at %s = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestWithinTimeframe_EmptyBoundsAreOpen(t *testing.T) {
	settings := models.DefaultOrderControlSettings()
	settings.EnableTimeframe = true
	settings.StartTime = ""
	settings.EndTime = "06:00"

	if !OrdersEnabled(settings, at("2024-01-15T12:00")) {
		t.Fatalf("expected timeframe with missing bound to be open")
	}
}

func TestDateRange(t *testing.T) {
	settings := models.DefaultOrderControlSettings()
	settings.EnableDateRange = true
	settings.StartDatetime = "2024-01-01T00:00"
	settings.EndDatetime = "2024-01-31T23:59"

	if !OrdersEnabled(settings, at("2024-01-15T12:00")) {
		t.Fatalf("expected mid-range time to pass")
	}
	if OrdersEnabled(settings, at("2024-02-01T00:00")) {
		t.Fatalf("expected time after range to fail")
	}
	if OrdersEnabled(settings, at("2023-12-31T23:59")) {
		t.Fatalf("expected time before range to fail")
	}
}

func TestDateRange_OpenEnds(t *testing.T) {
	settings := models.DefaultOrderControlSettings()
	settings.EnableDateRange = true
	settings.StartDatetime = "2024-01-01T00:00"
	settings.EndDatetime = ""

	if !OrdersEnabled(settings, at("2030-06-01T12:00")) {
		t.Fatalf("expected missing end bound to be open-ended")
	}
}

func TestDateRangeAndTimeframeApplyConjunctively(t *testing.T) {
	settings := models.DefaultOrderControlSettings()
	settings.EnableDateRange = true
	settings.StartDatetime = "2024-01-01T00:00"
	settings.EndDatetime = "2024-01-31T23:59"
	settings.EnableTimeframe = true
	settings.StartTime = "09:00"
	settings.EndTime = "17:00"

	// Inside date range but outside the daily window.
	if OrdersEnabled(settings, at("2024-01-15T20:00")) {
		t.Fatalf("expected time outside daily window to fail even inside date range")
	}
	// Inside both.
	if !OrdersEnabled(settings, at("2024-01-15T10:00")) {
		t.Fatalf("expected time inside both windows to pass")
	}
	// Inside daily window but outside the date range.
	if OrdersEnabled(settings, at("2024-02-10T10:00")) {
		t.Fatalf("expected time outside date range to fail even inside daily window")
	}
}

func TestCanOrder_RestrictionScopes(t *testing.T) {
	blockedNow := at("2024-01-15T20:00")

	settings := models.DefaultOrderControlSettings()
	settings.EnableTimeframe = true
	settings.StartTime = "09:00"
	settings.EndTime = "17:00"

	restricted := ProductInfo{ID: 7, CategoryIDs: []uint{3, 5}}
	unrelated := ProductInfo{ID: 8, CategoryIDs: []uint{9}}

	// Scope "all": every product is gated.
	settings.RestrictionType = models.RestrictionAll
	if CanOrder(restricted, settings, blockedNow) || CanOrder(unrelated, settings, blockedNow) {
		t.Fatalf("expected all products blocked outside the window")
	}

	// Scope "categories": only products in a restricted category are gated.
	settings.RestrictionType = models.RestrictionCategories
	settings.RestrictedCategories = []uint{5}
	if CanOrder(restricted, settings, blockedNow) {
		t.Fatalf("expected product in restricted category to be blocked")
	}
	if !CanOrder(unrelated, settings, blockedNow) {
		t.Fatalf("expected product outside restricted categories to stay orderable")
	}

	// Scope "products": only listed products are gated.
	settings.RestrictionType = models.RestrictionProducts
	settings.RestrictedProducts = []uint{7}
	if CanOrder(restricted, settings, blockedNow) {
		t.Fatalf("expected listed product to be blocked")
	}
	if !CanOrder(unrelated, settings, blockedNow) {
		t.Fatalf("expected unlisted product to stay orderable")
	}

	// Unknown scope: always allowed.
	settings.RestrictionType = "something-else"
	if !CanOrder(restricted, settings, blockedNow) {
		t.Fatalf("expected unknown restriction type to allow ordering")
	}
}

func TestCanOrder_EmptyRestrictedCategoriesNeverMatch(t *testing.T) {
	settings := models.DefaultOrderControlSettings()
	settings.RestrictionType = models.RestrictionCategories
	settings.RestrictedCategories = []uint{}
	settings.EnableTimeframe = true
	settings.StartTime = "09:00"
	settings.EndTime = "17:00"

	product := ProductInfo{ID: 1, CategoryIDs: []uint{2}}
	if !CanOrder(product, settings, at("2024-01-15T20:00")) {
		t.Fatalf("expected empty restriction list to leave products orderable")
	}
}

func TestCanOrder_Idempotent(t *testing.T) {
	settings := models.DefaultOrderControlSettings()
	settings.EnableTimeframe = true
	settings.StartTime = "09:00"
	settings.EndTime = "17:00"
	now := at("2024-01-15T12:00")
	product := ProductInfo{ID: 1}

	first := CanOrder(product, settings, now)
	second := CanOrder(product, settings, now)
	if first != second {
		t.Fatalf("expected identical inputs to produce identical results")
	}
}

func TestEvaluateCheckout(t *testing.T) {
	settings := models.DefaultOrderControlSettings()
	settings.EnableOrders = false
	settings.DisabledMessage = "Closed for maintenance"
	settings.RedirectURL = "https://shop.example.com/closed"

	result := EvaluateCheckout(settings, at("2024-01-15T12:00"), "https://shop.example.com")
	if result.Allowed {
		t.Fatalf("expected checkout blocked")
	}
	if result.Message != "Closed for maintenance" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	if result.RedirectURL != "https://shop.example.com/closed" {
		t.Fatalf("unexpected redirect: %q", result.RedirectURL)
	}

	// Empty redirect falls back to the home URL; empty message to the default.
	settings.RedirectURL = ""
	settings.DisabledMessage = ""
	result = EvaluateCheckout(settings, at("2024-01-15T12:00"), "https://shop.example.com")
	if result.RedirectURL != "https://shop.example.com" {
		t.Fatalf("expected home URL fallback, got %q", result.RedirectURL)
	}
	if result.Message != models.DefaultDisabledMessage {
		t.Fatalf("expected default message, got %q", result.Message)
	}

	settings.EnableOrders = true
	result = EvaluateCheckout(settings, at("2024-01-15T12:00"), "https://shop.example.com")
	if !result.Allowed || result.Message != "" {
		t.Fatalf("expected open checkout with no message")
	}
}
