package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Darkace01/commerce-control-suite/app/models"
	"github.com/Darkace01/commerce-control-suite/internal/pkg/webhook"
)

type stubLogRepo struct {
	rows   map[uint64]*models.ShippingEventLog
	nextID uint64
}

func newStubLogRepo() *stubLogRepo {
	return &stubLogRepo{rows: make(map[uint64]*models.ShippingEventLog), nextID: 1}
}

func (r *stubLogRepo) Create(entry *models.ShippingEventLog) error {
	entry.ID = r.nextID
	r.nextID++
	copied := *entry
	r.rows[entry.ID] = &copied
	return nil
}

func (r *stubLogRepo) GetByID(id uint64) (*models.ShippingEventLog, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (r *stubLogRepo) MarkProcessed(id uint64, status, responseData string, processedAt time.Time) error {
	row, ok := r.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	row.Status = status
	row.ResponseData = responseData
	row.ProcessedAt = &processedAt
	return nil
}

func (r *stubLogRepo) Recent(limit int) ([]models.ShippingEventLog, error) { return nil, nil }
func (r *stubLogRepo) Count() (int64, error)                              { return int64(len(r.rows)), nil }
func (r *stubLogRepo) CountByStatus(string) (int64, error)                { return 0, nil }

func newWebhookTestApp(t *testing.T, repo *stubLogRepo, processor webhook.EventProcessor) *fiber.App {
	t.Helper()

	prevIngestor, prevLookup := webhookIngestor, webhookSlugLookup
	t.Cleanup(func() {
		webhookIngestor, webhookSlugLookup = prevIngestor, prevLookup
	})

	webhookIngestor = webhook.NewIngestor(repo, processor)
	webhookSlugLookup = func() (string, error) { return "shipping-webhook", nil }

	app := fiber.New()
	app.Post("/api/v1/webhooks/:slug", HandleWebhookReceive)
	return app
}

func TestWebhookReceiveSuccess(t *testing.T) {
	repo := newStubLogRepo()
	processor := webhook.ProcessorFunc(func(_ context.Context, params map[string]any) (map[string]any, error) {
		return map[string]any{"order_updated": true}, nil
	})
	app := newWebhookTestApp(t, repo, processor)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/shipping-webhook",
		strings.NewReader(`{"order_id":42,"tracking_number":"TRK-1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-IP", "203.0.113.9")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(1), payload["log_id"])

	row, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, models.LogStatusSuccess, row.Status)
	assert.Equal(t, "203.0.113.9", row.IPAddress)
}

func TestWebhookReceiveWrongSlug(t *testing.T) {
	repo := newStubLogRepo()
	processor := webhook.ProcessorFunc(func(_ context.Context, params map[string]any) (map[string]any, error) {
		t.Fatal("processor must not run for an unknown slug")
		return nil, nil
	})
	app := newWebhookTestApp(t, repo, processor)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/other-slug", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Empty(t, repo.rows)
}

func TestWebhookReceiveProcessingError(t *testing.T) {
	repo := newStubLogRepo()
	processor := webhook.ProcessorFunc(func(_ context.Context, params map[string]any) (map[string]any, error) {
		return nil, errors.New("downstream unavailable")
	})
	app := newWebhookTestApp(t, repo, processor)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/shipping-webhook", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, float64(1), payload["log_id"])

	row, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, models.LogStatusError, row.Status)
}

func TestCollectParamsMergesQueryAndBody(t *testing.T) {
	app := fiber.New()
	app.Post("/hook", func(c *fiber.Ctx) error {
		params := collectParams(c, c.Body())
		assert.Equal(t, "abc", params["source"])
		assert.Equal(t, float64(42), params["order_id"])
		// body fields win over query parameters
		assert.Equal(t, "shipped", params["status"])
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/hook?source=abc&status=pending",
		strings.NewReader(`{"order_id":42,"status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
