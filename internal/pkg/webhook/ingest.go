// Package webhook receives shipping event callbacks, records them in the
// event log and hands the payload to a pluggable event processor.
//
// The flow is log-first, process-second: the pending log row must be written
// before processing starts, so every received payload is durably recorded even
// when processing fails. Exactly one update then moves the row to success or
// error. There is no retry, deduplication or idempotency key; every delivery
// creates its own row.
package webhook

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/Darkace01/commerce-control-suite/app/models"
	"github.com/Darkace01/commerce-control-suite/app/repository"
)

// EventProcessor handles a parsed webhook payload. It returns the response
// data to record on success, or an error to record on failure. The ingestor
// treats it as an opaque operation.
type EventProcessor interface {
	Process(ctx context.Context, params map[string]any) (map[string]any, error)
}

// ProcessorFunc adapts a plain function to the EventProcessor interface.
type ProcessorFunc func(ctx context.Context, params map[string]any) (map[string]any, error)

func (f ProcessorFunc) Process(ctx context.Context, params map[string]any) (map[string]any, error) {
	return f(ctx, params)
}

// ReceiveInput carries everything the ingestor records about a delivery.
type ReceiveInput struct {
	Body     []byte
	Params   map[string]any
	Headers  map[string]string
	ClientIP string
}

// Result is the outcome of one delivery. LogID is always set once the pending
// row has been written, including when processing fails.
type Result struct {
	LogID uint64
	Data  map[string]any
}

// Ingestor wires the log repository to the event processor.
type Ingestor struct {
	logs       repository.WebhookLogRepository
	processor  EventProcessor
	now        func() time.Time
	invalidate func(logID uint64)
}

// Option configures an Ingestor.
type Option func(*Ingestor)

// WithClock overrides the ingestor clock, used in tests.
func WithClock(now func() time.Time) Option {
	return func(ing *Ingestor) { ing.now = now }
}

// WithCacheInvalidation registers a hook called with the log id after every
// log write so cached statistics and the cached detail row do not serve stale
// state past their TTL.
func WithCacheInvalidation(fn func(logID uint64)) Option {
	return func(ing *Ingestor) { ing.invalidate = fn }
}

// NewIngestor creates an ingestor from the log repository and processor.
func NewIngestor(logs repository.WebhookLogRepository, processor EventProcessor, opts ...Option) *Ingestor {
	ing := &Ingestor{
		logs:      logs,
		processor: processor,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(ing)
	}
	return ing
}

// Receive records the delivery and processes it.
//
// When the pending row cannot be written, processing never starts and the
// returned result is nil. When processing fails, the result still carries the
// log id alongside the error so callers can report both.
func (ing *Ingestor) Receive(ctx context.Context, in ReceiveInput) (*Result, error) {
	entry := &models.ShippingEventLog{
		RequestBody:    string(in.Body),
		RequestParams:  marshalJSON(in.Params),
		RequestHeaders: marshalJSON(in.Headers),
		IPAddress:      in.ClientIP,
		Status:         models.LogStatusPending,
	}
	if err := ing.logs.Create(entry); err != nil {
		return nil, err
	}
	ing.invalidateCaches(entry.ID)

	data, err := ing.processor.Process(ctx, in.Params)
	if err != nil {
		response := marshalJSON(map[string]any{"error": err.Error()})
		if updErr := ing.logs.MarkProcessed(entry.ID, models.LogStatusError, response, ing.now()); updErr != nil {
			// The processing error is the interesting one; the failed status
			// update only costs audit fidelity.
			log.Printf("webhook log %d: failed to record error status: %v", entry.ID, updErr)
		}
		ing.invalidateCaches(entry.ID)
		return &Result{LogID: entry.ID}, err
	}

	if err := ing.logs.MarkProcessed(entry.ID, models.LogStatusSuccess, marshalJSON(data), ing.now()); err != nil {
		return &Result{LogID: entry.ID, Data: data}, err
	}
	ing.invalidateCaches(entry.ID)

	return &Result{LogID: entry.ID, Data: data}, nil
}

func (ing *Ingestor) invalidateCaches(logID uint64) {
	if ing.invalidate != nil {
		ing.invalidate(logID)
	}
}

func marshalJSON(v any) string {
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// ClientIP resolves the client address for audit metadata. Header values win
// over the socket address, first non-empty: X-Client-IP, then the first entry
// of X-Forwarded-For, then the remote address. Trivially spoofable, which is
// acceptable because nothing authorizes against it.
func ClientIP(clientIPHeader, forwardedFor, remoteAddr string) string {
	if ip := strings.TrimSpace(clientIPHeader); ip != "" {
		return ip
	}
	if forwardedFor != "" {
		first := strings.Split(forwardedFor, ",")[0]
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return strings.TrimSpace(remoteAddr)
}
