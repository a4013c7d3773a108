package controllers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Darkace01/commerce-control-suite/app/repository"
	"github.com/Darkace01/commerce-control-suite/internal/pkg/statistics"
	"github.com/Darkace01/commerce-control-suite/internal/pkg/webhook"
)

var (
	webhookIngestor   *webhook.Ingestor
	webhookSlugLookup func() (string, error)
)

// InitializeWebhookController wires the ingestor to the global repositories.
// Must be called after the repository factory is initialized.
func InitializeWebhookController() {
	repos := repository.GetGlobalRepositories()
	processor := webhook.NewOrderEventProcessor(repos.Order)
	webhookIngestor = webhook.NewIngestor(repos.WebhookLog, processor,
		webhook.WithCacheInvalidation(func(logID uint64) {
			statistics.InvalidateLogCaches()
			statistics.InvalidateLogDetail(logID)
		}),
	)
	webhookSlugLookup = repos.Setting.WebhookSlug
}

// HandleWebhookReceive accepts a shipping event delivery. The path slug must
// match the configured endpoint slug; any other slug is a 404 so the endpoint
// location stays configurable.
func HandleWebhookReceive(c *fiber.Ctx) error {
	slug, err := webhookSlugLookup()
	if err != nil {
		log.Printf("webhook: failed to load endpoint slug: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Webhook endpoint unavailable",
		})
	}
	if c.Params("slug") != slug {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Unknown webhook endpoint"})
	}

	body := c.Body()
	params := collectParams(c, body)
	headers := make(map[string]string)
	for key, values := range c.GetReqHeaders() {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	result, err := webhookIngestor.Receive(c.Context(), webhook.ReceiveInput{
		Body:     body,
		Params:   params,
		Headers:  headers,
		ClientIP: webhook.ClientIP(c.Get("X-Client-IP"), c.Get("X-Forwarded-For"), c.IP()),
	})
	if err != nil {
		if result == nil {
			log.Printf("webhook: failed to record delivery: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to record webhook delivery",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Webhook processing failed",
			"error":   err.Error(),
			"log_id":  result.LogID,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Webhook processed",
		"log_id":  result.LogID,
		"data":    result.Data,
	})
}

// collectParams merges query parameters with the JSON body fields. Body fields
// win on key collision. A non-JSON body is not an error here; the processor
// decides whether the fields it needs are present.
func collectParams(c *fiber.Ctx, body []byte) map[string]any {
	params := make(map[string]any)
	for key, values := range c.Queries() {
		params[key] = values
	}
	if len(body) > 0 {
		var fields map[string]any
		if err := json.Unmarshal(body, &fields); err == nil {
			for key, value := range fields {
				params[key] = value
			}
		}
	}
	return params
}
