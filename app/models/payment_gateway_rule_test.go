package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentGatewaySettingsAddRule(t *testing.T) {
	settings := DefaultPaymentGatewaySettings()

	first := settings.AddRule(PaymentGatewayRule{Name: "Euro cards", Currencies: []string{"EUR"}, Gateways: []string{"stripe"}, Enabled: true})
	second := settings.AddRule(PaymentGatewayRule{Name: "US wallets", Currencies: []string{"USD"}, Gateways: []string{"paypal"}, Enabled: true})

	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, settings.Rules, 2)
	assert.Equal(t, first.ID, settings.Rules[0].ID)
}

func TestPaymentGatewaySettingsUpdateRuleKeepsIDAndPosition(t *testing.T) {
	settings := DefaultPaymentGatewaySettings()
	first := settings.AddRule(PaymentGatewayRule{Name: "Euro cards", Enabled: true})
	settings.AddRule(PaymentGatewayRule{Name: "US wallets", Enabled: true})

	ok := settings.UpdateRule(first.ID, PaymentGatewayRule{Name: "Euro cards v2", Currencies: []string{"EUR", "CHF"}})
	require.True(t, ok)

	assert.Equal(t, first.ID, settings.Rules[0].ID)
	assert.Equal(t, "Euro cards v2", settings.Rules[0].Name)
	assert.False(t, settings.Rules[0].Enabled)
}

func TestPaymentGatewaySettingsRemoveRuleKeepsOtherIDs(t *testing.T) {
	settings := DefaultPaymentGatewaySettings()
	first := settings.AddRule(PaymentGatewayRule{Name: "one"})
	second := settings.AddRule(PaymentGatewayRule{Name: "two"})
	third := settings.AddRule(PaymentGatewayRule{Name: "three"})

	require.True(t, settings.RemoveRule(second.ID))
	assert.Len(t, settings.Rules, 2)
	assert.Equal(t, first.ID, settings.Rules[0].ID)
	assert.Equal(t, third.ID, settings.Rules[1].ID)

	assert.False(t, settings.RemoveRule("no-such-id"))
}

func TestPaymentGatewaySettingsToggleRule(t *testing.T) {
	settings := DefaultPaymentGatewaySettings()
	rule := settings.AddRule(PaymentGatewayRule{Name: "Euro cards", Enabled: true})

	enabled, ok := settings.ToggleRule(rule.ID)
	require.True(t, ok)
	assert.False(t, enabled)

	enabled, ok = settings.ToggleRule(rule.ID)
	require.True(t, ok)
	assert.True(t, enabled)

	_, ok = settings.ToggleRule("no-such-id")
	assert.False(t, ok)
}

func TestPaymentGatewayRuleMatchesCurrency(t *testing.T) {
	rule := PaymentGatewayRule{Currencies: []string{"EUR", "CHF"}}

	assert.True(t, rule.MatchesCurrency("EUR"))
	assert.True(t, rule.MatchesCurrency("CHF"))
	assert.False(t, rule.MatchesCurrency("USD"))
	assert.False(t, (&PaymentGatewayRule{}).MatchesCurrency("EUR"))
}

func TestPaymentGatewayRuleValidate(t *testing.T) {
	valid := PaymentGatewayRule{Name: "Euro cards"}
	assert.NoError(t, valid.Validate())

	invalid := PaymentGatewayRule{Name: ""}
	assert.Error(t, invalid.Validate())
}
