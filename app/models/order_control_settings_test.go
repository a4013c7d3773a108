package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderControlSettingsDefaults(t *testing.T) {
	s := DefaultOrderControlSettings()

	assert.True(t, s.EnableOrders)
	assert.Equal(t, RestrictionAll, s.RestrictionType)
	assert.Equal(t, "00:00", s.StartTime)
	assert.Equal(t, "23:59", s.EndTime)
	assert.False(t, s.EnableTimeframe)
	assert.False(t, s.EnableDateRange)
	assert.NoError(t, s.Validate())
}

func TestOrderControlSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*OrderControlSettings)
		wantErr bool
	}{
		{"defaults pass", func(s *OrderControlSettings) {}, false},
		{"unknown restriction type", func(s *OrderControlSettings) { s.RestrictionType = "none" }, true},
		{"bad time format", func(s *OrderControlSettings) { s.StartTime = "9am" }, true},
		{"bad datetime format", func(s *OrderControlSettings) { s.StartDatetime = "2025-12-01" }, true},
		{"valid datetime", func(s *OrderControlSettings) { s.StartDatetime = "2025-12-01T08:30" }, false},
		{"bad redirect url", func(s *OrderControlSettings) { s.RedirectURL = "not a url" }, true},
		{"valid redirect url", func(s *OrderControlSettings) { s.RedirectURL = "https://shop.example.com/closed" }, false},
		{"empty times allowed", func(s *OrderControlSettings) { s.StartTime, s.EndTime = "", "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultOrderControlSettings()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderControlSettingsMessage(t *testing.T) {
	s := DefaultOrderControlSettings()
	assert.Equal(t, DefaultDisabledMessage, s.Message())

	s.DisabledMessage = "Back on Monday."
	assert.Equal(t, "Back on Monday.", s.Message())

	s.DisabledMessage = ""
	assert.Equal(t, DefaultDisabledMessage, s.Message())
}
