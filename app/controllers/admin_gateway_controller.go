package controllers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Darkace01/commerce-control-suite/app/models"
	"github.com/Darkace01/commerce-control-suite/app/repository"
)

// gatewayRulePayload is the request body for rule create and update.
type gatewayRulePayload struct {
	Name       string   `json:"name"`
	Currencies []string `json:"currencies"`
	Gateways   []string `json:"gateways"`
	Enabled    bool     `json:"enabled"`
}

func (p *gatewayRulePayload) toRule() models.PaymentGatewayRule {
	currencies := make([]string, 0, len(p.Currencies))
	for _, code := range p.Currencies {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			currencies = append(currencies, code)
		}
	}
	gateways := make([]string, 0, len(p.Gateways))
	for _, id := range p.Gateways {
		id = strings.TrimSpace(id)
		if id != "" {
			gateways = append(gateways, id)
		}
	}
	return models.PaymentGatewayRule{
		Name:       strings.TrimSpace(p.Name),
		Currencies: currencies,
		Gateways:   gateways,
		Enabled:    p.Enabled,
	}
}

// HandleAdminListGatewayRules returns the ordered rule list.
func HandleAdminListGatewayRules(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetSettingRepository()
	settings, err := repo.GatewayRules()
	if err != nil {
		log.Printf("admin gateway rules: load failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load gateway rules"})
	}
	return c.JSON(fiber.Map{"rules": settings.Rules})
}

// HandleAdminCreateGatewayRule appends a new rule with a generated id.
func HandleAdminCreateGatewayRule(c *fiber.Ctx) error {
	var payload gatewayRulePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	rule := payload.toRule()
	if err := rule.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_failed", "message": err.Error()})
	}

	repo := repository.GetGlobalFactory().GetSettingRepository()
	settings, err := repo.GatewayRules()
	if err != nil {
		log.Printf("admin gateway rules: load failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load gateway rules"})
	}

	created := settings.AddRule(rule)
	if err := repo.SaveGatewayRules(settings); err != nil {
		log.Printf("admin gateway rules: save failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to save gateway rules"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"rule": created})
}

// HandleAdminUpdateGatewayRule replaces the rule with the given id in place.
func HandleAdminUpdateGatewayRule(c *fiber.Ctx) error {
	id := c.Params("id")

	var payload gatewayRulePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	rule := payload.toRule()
	if err := rule.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation_failed", "message": err.Error()})
	}

	repo := repository.GetGlobalFactory().GetSettingRepository()
	settings, err := repo.GatewayRules()
	if err != nil {
		log.Printf("admin gateway rules: load failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load gateway rules"})
	}

	if !settings.UpdateRule(id, rule) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Gateway rule not found"})
	}
	if err := repo.SaveGatewayRules(settings); err != nil {
		log.Printf("admin gateway rules: save failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to save gateway rules"})
	}

	return c.JSON(fiber.Map{"rule": settings.Rules[settings.FindRule(id)]})
}

// HandleAdminDeleteGatewayRule removes the rule with the given id.
func HandleAdminDeleteGatewayRule(c *fiber.Ctx) error {
	id := c.Params("id")

	repo := repository.GetGlobalFactory().GetSettingRepository()
	settings, err := repo.GatewayRules()
	if err != nil {
		log.Printf("admin gateway rules: load failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load gateway rules"})
	}

	if !settings.RemoveRule(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Gateway rule not found"})
	}
	if err := repo.SaveGatewayRules(settings); err != nil {
		log.Printf("admin gateway rules: save failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to save gateway rules"})
	}

	return c.JSON(fiber.Map{"deleted": id})
}

// HandleAdminToggleGatewayRule flips the enabled flag of one rule.
func HandleAdminToggleGatewayRule(c *fiber.Ctx) error {
	id := c.Params("id")

	repo := repository.GetGlobalFactory().GetSettingRepository()
	settings, err := repo.GatewayRules()
	if err != nil {
		log.Printf("admin gateway rules: load failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load gateway rules"})
	}

	enabled, ok := settings.ToggleRule(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Gateway rule not found"})
	}
	if err := repo.SaveGatewayRules(settings); err != nil {
		log.Printf("admin gateway rules: save failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to save gateway rules"})
	}

	return c.JSON(fiber.Map{"id": id, "enabled": enabled})
}

// HandleAdminListGateways returns the payment gateway registry.
func HandleAdminListGateways(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetGatewayRepository()
	gateways, err := repo.GetAll()
	if err != nil {
		log.Printf("admin gateways: list failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load gateways"})
	}
	return c.JSON(fiber.Map{"gateways": gateways})
}

// HandleAdminUpsertGateway creates or updates a registry row. The gateway id
// comes from the path so the operation is idempotent.
func HandleAdminUpsertGateway(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Gateway id missing"})
	}

	var payload struct {
		Title    string `json:"title"`
		Enabled  bool   `json:"enabled"`
		Position int    `json:"position"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}
	if strings.TrimSpace(payload.Title) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Title is required"})
	}

	gateway := &models.PaymentGateway{
		ID:       id,
		Title:    strings.TrimSpace(payload.Title),
		Enabled:  payload.Enabled,
		Position: payload.Position,
	}
	repo := repository.GetGlobalFactory().GetGatewayRepository()
	if err := repo.Upsert(gateway); err != nil {
		log.Printf("admin gateways: upsert %s failed: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to save gateway"})
	}

	return c.JSON(fiber.Map{"gateway": gateway})
}
