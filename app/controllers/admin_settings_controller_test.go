package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"shipping-webhook", "shipping-webhook"},
		{"Shipping Webhook", "shipping-webhook"},
		{"  My__Endpoint!! ", "my-endpoint"},
		{"UPPER/CASE/path", "upper-case-path"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.input), "slugify(%q)", tt.input)
	}
}

func TestGatewayRulePayloadNormalization(t *testing.T) {
	payload := gatewayRulePayload{
		Name:       "  Euro cards  ",
		Currencies: []string{" eur ", "USD", ""},
		Gateways:   []string{" stripe ", "", "paypal"},
		Enabled:    true,
	}

	rule := payload.toRule()
	assert.Equal(t, "Euro cards", rule.Name)
	assert.Equal(t, []string{"EUR", "USD"}, rule.Currencies)
	assert.Equal(t, []string{"stripe", "paypal"}, rule.Gateways)
	assert.True(t, rule.Enabled)
}
