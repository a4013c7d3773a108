package webhook

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/Darkace01/commerce-control-suite/app/repository"
)

// OrderEventProcessor applies shipping events to orders. It reads the order
// id, tracking number, status and event type from the payload, stores the
// tracking number and leaves an order note describing the event. An unknown
// order id is not an error; the event is still acknowledged and logged.
type OrderEventProcessor struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewOrderEventProcessor creates the default payload processor.
func NewOrderEventProcessor(orders repository.OrderRepository) *OrderEventProcessor {
	return &OrderEventProcessor{orders: orders, now: time.Now}
}

func (p *OrderEventProcessor) Process(_ context.Context, params map[string]any) (map[string]any, error) {
	orderID := paramUint64(params, "order_id")
	trackingNumber := paramString(params, "tracking_number")
	status := paramString(params, "status")
	eventType := paramString(params, "event_type")
	if eventType == "" {
		eventType = "shipping_update"
	}

	result := map[string]any{
		"event_type":      eventType,
		"order_id":        orderID,
		"tracking_number": trackingNumber,
		"status":          status,
		"processed_at":    p.now().UTC().Format(time.RFC3339),
	}

	if orderID == 0 {
		result["order_updated"] = false
		return result, nil
	}

	if _, err := p.orders.GetByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result["order_updated"] = false
			return result, nil
		}
		return nil, fmt.Errorf("load order %d: %w", orderID, err)
	}

	if trackingNumber != "" {
		if err := p.orders.SetTrackingNumber(orderID, trackingNumber); err != nil {
			return nil, fmt.Errorf("set tracking number on order %d: %w", orderID, err)
		}
	}

	note := fmt.Sprintf("Shipping event %q received", eventType)
	if trackingNumber != "" {
		note += fmt.Sprintf(", tracking number %s", trackingNumber)
	}
	if status != "" {
		note += fmt.Sprintf(", status %s", status)
	}
	if err := p.orders.AddNote(orderID, note); err != nil {
		return nil, fmt.Errorf("add note to order %d: %w", orderID, err)
	}

	result["order_updated"] = true
	return result, nil
}

// paramUint64 reads a numeric payload field. JSON decoding yields float64 for
// numbers, form decoding yields strings, so both are accepted.
func paramUint64(params map[string]any, key string) uint64 {
	switch v := params[key].(type) {
	case float64:
		if v < 0 {
			return 0
		}
		return uint64(v)
	case int:
		if v < 0 {
			return 0
		}
		return uint64(v)
	case uint64:
		return v
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func paramString(params map[string]any, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}
