// Package gateways filters the checkout payment gateway list by currency
// rules.
package gateways

import (
	"github.com/Darkace01/commerce-control-suite/app/models"
)

// AllowedGateways returns the gateways permitted for the current currency.
//
// Enabled rules matching the currency contribute their gateways additively in
// stored order. When no enabled rule matches, the full available list is
// returned unfiltered: absent configuration never blocks checkout. Otherwise
// the accumulated set is intersected with the available gateways, preserving
// their display order.
func AllowedGateways(current string, rules []models.PaymentGatewayRule, available []models.PaymentGateway) []models.PaymentGateway {
	allowed := make(map[string]struct{})
	for _, rule := range rules {
		if !rule.Enabled || !rule.MatchesCurrency(current) {
			continue
		}
		for _, id := range rule.Gateways {
			allowed[id] = struct{}{}
		}
	}

	if len(allowed) == 0 {
		return available
	}

	filtered := make([]models.PaymentGateway, 0, len(available))
	for _, gw := range available {
		if _, ok := allowed[gw.ID]; ok {
			filtered = append(filtered, gw)
		}
	}
	return filtered
}
