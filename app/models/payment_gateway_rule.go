package models

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PaymentGatewayRule maps a set of currencies to the payment gateways allowed
// for them. Rules carry a generated id so edits and deletes reference a stable
// identity instead of a list position.
type PaymentGatewayRule struct {
	ID         string   `json:"id"`
	Name       string   `json:"name" validate:"required,min=1,max=255"`
	Currencies []string `json:"currencies"`
	Gateways   []string `json:"gateways"`
	Enabled    bool     `json:"enabled"`
}

// MatchesCurrency reports whether the rule applies to the given currency code.
func (r *PaymentGatewayRule) MatchesCurrency(code string) bool {
	for _, c := range r.Currencies {
		if c == code {
			return true
		}
	}
	return false
}

// Validate checks the rule before it is persisted.
func (r *PaymentGatewayRule) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// PaymentGatewaySettings holds the ordered rule list for the gateway filter.
// List order is significant: matching enabled rules contribute gateways in
// stored order.
type PaymentGatewaySettings struct {
	Rules []PaymentGatewayRule `json:"rules"`
}

// DefaultPaymentGatewaySettings returns an empty rule set, which leaves all
// gateways available (fail-open).
func DefaultPaymentGatewaySettings() PaymentGatewaySettings {
	return PaymentGatewaySettings{Rules: []PaymentGatewayRule{}}
}

// AddRule appends a rule and assigns it a fresh id.
func (s *PaymentGatewaySettings) AddRule(rule PaymentGatewayRule) PaymentGatewayRule {
	rule.ID = uuid.NewString()
	s.Rules = append(s.Rules, rule)
	return rule
}

// FindRule returns the index of the rule with the given id, or -1.
func (s *PaymentGatewaySettings) FindRule(id string) int {
	for i := range s.Rules {
		if s.Rules[i].ID == id {
			return i
		}
	}
	return -1
}

// UpdateRule replaces the rule with the given id, keeping its position and id.
func (s *PaymentGatewaySettings) UpdateRule(id string, rule PaymentGatewayRule) bool {
	i := s.FindRule(id)
	if i < 0 {
		return false
	}
	rule.ID = id
	s.Rules[i] = rule
	return true
}

// RemoveRule deletes the rule with the given id. Remaining rules keep their
// ids, so references held elsewhere stay valid.
func (s *PaymentGatewaySettings) RemoveRule(id string) bool {
	i := s.FindRule(id)
	if i < 0 {
		return false
	}
	s.Rules = append(s.Rules[:i], s.Rules[i+1:]...)
	return true
}

// ToggleRule flips the enabled flag of the rule with the given id and returns
// the new state.
func (s *PaymentGatewaySettings) ToggleRule(id string) (bool, bool) {
	i := s.FindRule(id)
	if i < 0 {
		return false, false
	}
	s.Rules[i].Enabled = !s.Rules[i].Enabled
	return s.Rules[i].Enabled, true
}
