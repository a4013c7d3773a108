// Package ordergate evaluates whether ordering is currently permitted, based
// on the order control settings and the current time. All checks are pure
// functions so the same settings and clock always produce the same answer.
package ordergate

import (
	"time"

	"github.com/Darkace01/commerce-control-suite/app/models"
)

// datetimeLayout matches the datetime-local values the admin form stores.
const datetimeLayout = "2006-01-02T15:04"

// ProductInfo is the product view the policy needs: its id and the ids of the
// categories it belongs to.
type ProductInfo struct {
	ID          uint
	CategoryIDs []uint
}

// GateResult is the outcome of the checkout-wide gate.
type GateResult struct {
	Allowed     bool   `json:"allowed"`
	Message     string `json:"message,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// CanOrder reports whether the given product can be ordered right now.
//
// The global kill switch always wins. Otherwise the restriction scope decides
// whether the time window applies to this product at all: products outside the
// restricted categories/products are always orderable.
func CanOrder(product ProductInfo, settings models.OrderControlSettings, now time.Time) bool {
	if !settings.EnableOrders {
		return false
	}

	switch settings.RestrictionType {
	case models.RestrictionAll:
		return withinAllowedPeriod(settings, now)

	case models.RestrictionCategories:
		if intersects(product.CategoryIDs, settings.RestrictedCategories) {
			return withinAllowedPeriod(settings, now)
		}
		return true

	case models.RestrictionProducts:
		if containsID(settings.RestrictedProducts, product.ID) {
			return withinAllowedPeriod(settings, now)
		}
		return true

	default:
		return true
	}
}

// OrdersEnabled is the checkout-wide predicate: it ignores restriction
// scoping and only applies the kill switch and the time window.
func OrdersEnabled(settings models.OrderControlSettings, now time.Time) bool {
	if !settings.EnableOrders {
		return false
	}
	return withinAllowedPeriod(settings, now)
}

// EvaluateCheckout runs the checkout-wide gate and, when ordering is blocked,
// returns the configured customer message and redirect target. An empty
// redirect URL falls back to homeURL.
func EvaluateCheckout(settings models.OrderControlSettings, now time.Time, homeURL string) GateResult {
	if OrdersEnabled(settings, now) {
		return GateResult{Allowed: true}
	}

	redirect := settings.RedirectURL
	if redirect == "" {
		redirect = homeURL
	}
	return GateResult{
		Allowed:     false,
		Message:     settings.Message(),
		RedirectURL: redirect,
	}
}

// withinAllowedPeriod applies the date range and time-of-day checks. Both are
// independently enabled and apply conjunctively when both are on.
func withinAllowedPeriod(settings models.OrderControlSettings, now time.Time) bool {
	if settings.EnableDateRange {
		if start, ok := parseDatetime(settings.StartDatetime, now.Location()); ok && now.Before(start) {
			return false
		}
		if end, ok := parseDatetime(settings.EndDatetime, now.Location()); ok && now.After(end) {
			return false
		}
	}

	if settings.EnableTimeframe {
		return withinTimeframe(settings, now)
	}

	return true
}

// withinTimeframe compares the current time of day against the configured
// window. "HH:MM" strings compare lexically, which matches chronological
// order. A start after the end is an overnight window (e.g. 22:00 to 06:00).
func withinTimeframe(settings models.OrderControlSettings, now time.Time) bool {
	start := settings.StartTime
	end := settings.EndTime
	if start == "" || end == "" {
		return true
	}

	current := now.Format("15:04")
	if start <= end {
		return current >= start && current <= end
	}
	return current >= start || current <= end
}

// parseDatetime interprets an admin-form datetime in the clock's location. An
// empty or malformed value means the bound is unset.
func parseDatetime(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(datetimeLayout, value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func intersects(a, b []uint) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[uint]struct{}, len(b))
	for _, id := range b {
		set[id] = struct{}{}
	}
	for _, id := range a {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
