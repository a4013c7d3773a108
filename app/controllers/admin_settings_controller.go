package controllers

import (
	"log"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Darkace01/commerce-control-suite/app/models"
	"github.com/Darkace01/commerce-control-suite/app/repository"
)

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// slugify normalizes an endpoint slug the way the admin form did: lowercase,
// non-alphanumeric runs collapsed to single dashes.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugCleaner.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// HandleAdminGetWebhookSettings returns the configured webhook endpoint slug.
func HandleAdminGetWebhookSettings(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetSettingRepository()
	slug, err := repo.WebhookSlug()
	if err != nil {
		log.Printf("admin settings: load webhook slug failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load webhook settings"})
	}
	return c.JSON(fiber.Map{"slug": slug, "path": "/api/v1/webhooks/" + slug})
}

// HandleAdminUpdateWebhookSettings changes the webhook endpoint slug. The
// value is slugified before persisting; an input with no usable characters is
// rejected rather than silently mapped to the default.
func HandleAdminUpdateWebhookSettings(c *fiber.Ctx) error {
	var payload struct {
		Slug string `json:"slug"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	slug := slugify(payload.Slug)
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Slug must contain at least one alphanumeric character"})
	}

	repo := repository.GetGlobalFactory().GetSettingRepository()
	if err := repo.SaveWebhookSlug(slug); err != nil {
		log.Printf("admin settings: save webhook slug failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to save webhook settings"})
	}

	return c.JSON(fiber.Map{"slug": slug, "path": "/api/v1/webhooks/" + slug})
}

// HandleAdminGetOrderControl returns the order availability settings.
func HandleAdminGetOrderControl(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetSettingRepository()
	settings, err := repo.OrderControl()
	if err != nil {
		log.Printf("admin settings: load order control failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load order control settings"})
	}
	return c.JSON(fiber.Map{"settings": settings})
}

// HandleAdminUpdateOrderControl replaces the order availability settings.
// Validation failures leave the stored settings untouched.
func HandleAdminUpdateOrderControl(c *fiber.Ctx) error {
	settings := models.DefaultOrderControlSettings()
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	repo := repository.GetGlobalFactory().GetSettingRepository()
	if err := repo.SaveOrderControl(&settings); err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_failed", "message": err.Error()})
		}
		log.Printf("admin settings: save order control failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to save order control settings"})
	}

	return c.JSON(fiber.Map{"settings": settings})
}

// HandleAdminGetCurrency returns the currency switcher settings.
func HandleAdminGetCurrency(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetSettingRepository()
	settings, err := repo.Currency()
	if err != nil {
		log.Printf("admin settings: load currency failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load currency settings"})
	}
	return c.JSON(fiber.Map{"settings": settings})
}

// HandleAdminUpdateCurrency replaces the currency switcher settings. Currency
// codes are normalized to uppercase before validation.
func HandleAdminUpdateCurrency(c *fiber.Ctx) error {
	settings := models.DefaultCurrencySettings()
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	settings.DefaultCurrency = strings.ToUpper(strings.TrimSpace(settings.DefaultCurrency))
	for i := range settings.Currencies {
		settings.Currencies[i].Code = strings.ToUpper(strings.TrimSpace(settings.Currencies[i].Code))
	}

	repo := repository.GetGlobalFactory().GetSettingRepository()
	if err := repo.SaveCurrency(&settings); err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_failed", "message": err.Error()})
		}
		log.Printf("admin settings: save currency failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to save currency settings"})
	}

	return c.JSON(fiber.Map{"settings": settings})
}
